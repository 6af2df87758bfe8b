package services

import (
	"context"
	"strings"

	"OrgRegistryAPI/internal/model"
)

type ActivityStore interface {
	Create(ctx context.Context, activity *model.Activity) error
	GetByID(ctx context.Context, id string) (*model.Activity, error)
	List(ctx context.Context) ([]model.Activity, error)
	Update(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, id string) error
}

type ActivityService struct {
	Repo ActivityStore
}

func NewActivityService(repo ActivityStore) *ActivityService {
	return &ActivityService{Repo: repo}
}

func (s *ActivityService) Create(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	activity.Code = strings.TrimSpace(activity.Code)
	activity.Name = strings.TrimSpace(activity.Name)
	if err := s.Repo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Get(ctx context.Context, id string) (*model.Activity, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ActivityService) List(ctx context.Context) ([]model.Activity, error) {
	return s.Repo.List(ctx)
}

func (s *ActivityService) Update(ctx context.Context, id string, activity *model.Activity) (*model.Activity, error) {
	activity.ID = id
	activity.Code = strings.TrimSpace(activity.Code)
	activity.Name = strings.TrimSpace(activity.Name)
	if err := s.Repo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
