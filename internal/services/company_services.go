package services

import (
	"context"
	"strings"

	"OrgRegistryAPI/internal/model"
)

type CompanyStore interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id string) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id string) error
}

type CompanyService struct {
	Repo CompanyStore
}

func NewCompanyService(repo CompanyStore) *CompanyService {
	return &CompanyService{Repo: repo}
}

func (s *CompanyService) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	company.Name = strings.TrimSpace(company.Name)
	if err := s.Repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*model.Company, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context) ([]model.Company, error) {
	return s.Repo.List(ctx)
}

func (s *CompanyService) Update(ctx context.Context, id string, company *model.Company) (*model.Company, error) {
	company.ID = id
	company.Name = strings.TrimSpace(company.Name)
	if err := s.Repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
