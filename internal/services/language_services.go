package services

import (
	"context"
	"strings"

	"OrgRegistryAPI/internal/model"
)

type LanguageStore interface {
	Create(ctx context.Context, lang *model.Language) error
	GetByID(ctx context.Context, id string) (*model.Language, error)
	List(ctx context.Context) ([]model.Language, error)
	Update(ctx context.Context, lang *model.Language) error
	Delete(ctx context.Context, id string) error
}

type LanguageService struct {
	Repo LanguageStore
}

func NewLanguageService(repo LanguageStore) *LanguageService {
	return &LanguageService{Repo: repo}
}

func (s *LanguageService) Create(ctx context.Context, lang *model.Language) (*model.Language, error) {
	lang.Code = strings.TrimSpace(lang.Code)
	lang.Name = strings.TrimSpace(lang.Name)
	if err := s.Repo.Create(ctx, lang); err != nil {
		return nil, err
	}
	return lang, nil
}

func (s *LanguageService) Get(ctx context.Context, id string) (*model.Language, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *LanguageService) List(ctx context.Context) ([]model.Language, error) {
	return s.Repo.List(ctx)
}

func (s *LanguageService) Update(ctx context.Context, id string, lang *model.Language) (*model.Language, error) {
	lang.ID = id
	lang.Code = strings.TrimSpace(lang.Code)
	lang.Name = strings.TrimSpace(lang.Name)
	if err := s.Repo.Update(ctx, lang); err != nil {
		return nil, err
	}
	return lang, nil
}

func (s *LanguageService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
