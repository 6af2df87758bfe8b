package services

import (
	"context"
	"strings"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/model"
)

type AreaStore interface {
	Create(ctx context.Context, area *model.Area) error
	GetByID(ctx context.Context, id string) (*model.Area, error)
	List(ctx context.Context) ([]model.Area, error)
	Update(ctx context.Context, area *model.Area) error
	Delete(ctx context.Context, id string) error
	NameExists(ctx context.Context, name, excludeID string) (bool, error)
}

// CountryRefCounter counts countries referencing an area. Implemented
// by repository.CountryRepository.
type CountryRefCounter interface {
	CountByArea(ctx context.Context, areaID string) (int, error)
}

type AreaService struct {
	Repo      AreaStore
	Countries CountryRefCounter
}

func NewAreaService(repo AreaStore, countries CountryRefCounter) *AreaService {
	return &AreaService{Repo: repo, Countries: countries}
}

func validateAreaName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperr.New(apperr.Validation, "VALIDATION_ERROR", "Area name is required")
	}
	if len(name) > 100 {
		return "", apperr.New(apperr.Validation, "VALIDATION_ERROR", "Area name cannot exceed 100 characters")
	}
	return name, nil
}

func (s *AreaService) Create(ctx context.Context, name string) (*model.Area, error) {
	name, err := validateAreaName(name)
	if err != nil {
		return nil, err
	}
	exists, err := s.Repo.NameExists(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "AREA_EXISTS", "This area already exists")
	}
	area := &model.Area{Name: name}
	if err := s.Repo.Create(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *AreaService) Get(ctx context.Context, id string) (*model.Area, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *AreaService) List(ctx context.Context) ([]model.Area, error) {
	return s.Repo.List(ctx)
}

func (s *AreaService) Update(ctx context.Context, id, name string) (*model.Area, error) {
	name, err := validateAreaName(name)
	if err != nil {
		return nil, err
	}
	area, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.Repo.NameExists(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "AREA_EXISTS", "This area already exists")
	}
	area.Name = name
	if err := s.Repo.Update(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

// Delete removes an area unless countries still reference it.
func (s *AreaService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := s.Countries.CountByArea(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Newf(apperr.Forbidden, "REFERENCED_BY_COUNTRIES", "Cannot delete this area: %d country(ies) are associated with it", n).
			WithDetails(map[string]any{"count": n})
	}
	return s.Repo.Delete(ctx, id)
}
