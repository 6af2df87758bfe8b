package services

import (
	"context"
	"strings"

	"OrgRegistryAPI/internal/model"
)

type BusinessUnitStore interface {
	Create(ctx context.Context, bu *model.BusinessUnit) error
	GetByID(ctx context.Context, id string) (*model.BusinessUnit, error)
	List(ctx context.Context) ([]model.BusinessUnit, error)
	Update(ctx context.Context, bu *model.BusinessUnit) error
	Delete(ctx context.Context, id string) error
}

type BusinessUnitService struct {
	Repo BusinessUnitStore
}

func NewBusinessUnitService(repo BusinessUnitStore) *BusinessUnitService {
	return &BusinessUnitService{Repo: repo}
}

func (s *BusinessUnitService) Create(ctx context.Context, bu *model.BusinessUnit) (*model.BusinessUnit, error) {
	bu.Name = strings.TrimSpace(bu.Name)
	if err := s.Repo.Create(ctx, bu); err != nil {
		return nil, err
	}
	return bu, nil
}

func (s *BusinessUnitService) Get(ctx context.Context, id string) (*model.BusinessUnit, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *BusinessUnitService) List(ctx context.Context) ([]model.BusinessUnit, error) {
	return s.Repo.List(ctx)
}

func (s *BusinessUnitService) Update(ctx context.Context, id string, bu *model.BusinessUnit) (*model.BusinessUnit, error) {
	bu.ID = id
	bu.Name = strings.TrimSpace(bu.Name)
	if err := s.Repo.Update(ctx, bu); err != nil {
		return nil, err
	}
	return bu, nil
}

func (s *BusinessUnitService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
