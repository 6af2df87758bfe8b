package services

import (
	"context"
	"strings"

	"OrgRegistryAPI/internal/model"
)

type SiteStore interface {
	Create(ctx context.Context, site *model.Site) error
	GetByID(ctx context.Context, id string) (*model.Site, error)
	List(ctx context.Context) ([]model.Site, error)
	Update(ctx context.Context, site *model.Site) error
	Delete(ctx context.Context, id string) error
}

type SiteService struct {
	Repo SiteStore
}

func NewSiteService(repo SiteStore) *SiteService {
	return &SiteService{Repo: repo}
}

func (s *SiteService) Create(ctx context.Context, site *model.Site) (*model.Site, error) {
	site.Name = strings.TrimSpace(site.Name)
	if err := s.Repo.Create(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *SiteService) Get(ctx context.Context, id string) (*model.Site, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *SiteService) List(ctx context.Context) ([]model.Site, error) {
	return s.Repo.List(ctx)
}

func (s *SiteService) Update(ctx context.Context, id string, site *model.Site) (*model.Site, error) {
	site.ID = id
	site.Name = strings.TrimSpace(site.Name)
	if err := s.Repo.Update(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *SiteService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
