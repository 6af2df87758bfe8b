package services

import (
	"context"
	"strings"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/model"
)

type AssessorStore interface {
	Create(ctx context.Context, a *model.Assessor) error
	GetByID(ctx context.Context, id string) (*model.Assessor, error)
	List(ctx context.Context) ([]model.Assessor, error)
	Update(ctx context.Context, a *model.Assessor) error
	Delete(ctx context.Context, id string) error
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
}

type AssessorService struct {
	Repo AssessorStore
}

func NewAssessorService(repo AssessorStore) *AssessorService {
	return &AssessorService{Repo: repo}
}

func validateAssessor(a *model.Assessor) error {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Email = strings.TrimSpace(a.Email)
	if a.FirstName == "" || a.LastName == "" || a.Email == "" {
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "First name, last name and email are required")
	}
	return nil
}

func (s *AssessorService) Create(ctx context.Context, a *model.Assessor) (*model.Assessor, error) {
	if err := validateAssessor(a); err != nil {
		return nil, err
	}
	exists, err := s.Repo.EmailExists(ctx, a.Email, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "ASSESSOR_EXISTS", "An assessor with this email already exists")
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessorService) Get(ctx context.Context, id string) (*model.Assessor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *AssessorService) List(ctx context.Context) ([]model.Assessor, error) {
	return s.Repo.List(ctx)
}

func (s *AssessorService) Update(ctx context.Context, id string, a *model.Assessor) (*model.Assessor, error) {
	if err := validateAssessor(a); err != nil {
		return nil, err
	}
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.Repo.EmailExists(ctx, a.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "ASSESSOR_EXISTS", "An assessor with this email already exists")
	}
	a.ID = id
	a.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssessorService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
