package services

import (
	"context"
	"regexp"
	"strings"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/model"
)

var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

type CountryStore interface {
	Create(ctx context.Context, country *model.Country) error
	GetByID(ctx context.Context, id string) (*model.Country, error)
	List(ctx context.Context) ([]model.Country, error)
	Update(ctx context.Context, country *model.Country) error
	Delete(ctx context.Context, id string) error
	CodeExists(ctx context.Context, code, excludeID string) (bool, error)
}

// AreaGetter resolves area references for validation and expansion.
type AreaGetter interface {
	GetByID(ctx context.Context, id string) (*model.Area, error)
}

type CountryService struct {
	Repo  CountryStore
	Areas AreaGetter
}

func NewCountryService(repo CountryStore, areas AreaGetter) *CountryService {
	return &CountryService{Repo: repo, Areas: areas}
}

type CountryInput struct {
	AreaID string `json:"area_id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameEN string `json:"name_en"`
}

func (s *CountryService) validate(ctx context.Context, in *CountryInput) error {
	in.AreaID = strings.TrimSpace(in.AreaID)
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Name = strings.TrimSpace(in.Name)
	in.NameEN = strings.TrimSpace(in.NameEN)
	switch {
	case in.AreaID == "":
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Area is required")
	case !countryCodePattern.MatchString(in.Code):
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Country code must be exactly 2 uppercase letters")
	case in.Name == "":
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Country name is required")
	case in.NameEN == "":
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Country english name is required")
	}
	if _, err := s.Areas.GetByID(ctx, in.AreaID); err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Referenced area does not exist")
		}
		return err
	}
	return nil
}

func (s *CountryService) Create(ctx context.Context, in CountryInput) (*model.Country, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}
	exists, err := s.Repo.CodeExists(ctx, in.Code, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "COUNTRY_EXISTS", "This country code already exists")
	}
	country := &model.Country{AreaID: in.AreaID, Code: in.Code, Name: in.Name, NameEN: in.NameEN}
	if err := s.Repo.Create(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

// Get returns one country, expanding the area reference on request.
func (s *CountryService) Get(ctx context.Context, id string, expand []string) (*model.Country, error) {
	country, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.expandCountry(ctx, country, expand)
	return country, nil
}

func (s *CountryService) List(ctx context.Context, expand []string) ([]model.Country, error) {
	countries, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range countries {
		s.expandCountry(ctx, &countries[i], expand)
	}
	return countries, nil
}

func (s *CountryService) expandCountry(ctx context.Context, country *model.Country, expand []string) {
	if hasExpand(expand, "area") {
		if area, err := s.Areas.GetByID(ctx, country.AreaID); err == nil {
			country.Area = area
		}
	}
}

func (s *CountryService) Update(ctx context.Context, id string, in CountryInput) (*model.Country, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}
	country, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.Repo.CodeExists(ctx, in.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "COUNTRY_EXISTS", "This country code already exists")
	}
	country.AreaID, country.Code, country.Name, country.NameEN = in.AreaID, in.Code, in.Name, in.NameEN
	if err := s.Repo.Update(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

func (s *CountryService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
