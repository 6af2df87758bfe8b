package services

import (
	"context"
	"strings"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/model"
)

type PrivilegeStore interface {
	Create(ctx context.Context, p *model.Privilege) error
	GetByID(ctx context.Context, id string) (*model.Privilege, error)
	List(ctx context.Context) ([]model.Privilege, error)
	Update(ctx context.Context, p *model.Privilege) error
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, up *model.UserPrivilege) error
	Unassign(ctx context.Context, userID, privilegeID string) error
	ListByUser(ctx context.Context, userID string) ([]model.Privilege, error)
}

// UserGetter checks user existence for assignments.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type PrivilegeService struct {
	Repo  PrivilegeStore
	Users UserGetter
}

func NewPrivilegeService(repo PrivilegeStore, users UserGetter) *PrivilegeService {
	return &PrivilegeService{Repo: repo, Users: users}
}

func validatePrivilege(p *model.Privilege) error {
	p.Code = strings.TrimSpace(p.Code)
	p.Name = strings.TrimSpace(p.Name)
	if p.Code == "" || p.Name == "" {
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Privilege code and name are required")
	}
	return nil
}

func (s *PrivilegeService) Create(ctx context.Context, p *model.Privilege) (*model.Privilege, error) {
	if err := validatePrivilege(p); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PrivilegeService) Get(ctx context.Context, id string) (*model.Privilege, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *PrivilegeService) List(ctx context.Context) ([]model.Privilege, error) {
	return s.Repo.List(ctx)
}

func (s *PrivilegeService) Update(ctx context.Context, id string, p *model.Privilege) (*model.Privilege, error) {
	if err := validatePrivilege(p); err != nil {
		return nil, err
	}
	p.ID = id
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PrivilegeService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Assign links an existing privilege to an existing user.
func (s *PrivilegeService) Assign(ctx context.Context, userID, privilegeID string) (*model.UserPrivilege, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetByID(ctx, privilegeID); err != nil {
		return nil, err
	}
	up := &model.UserPrivilege{UserID: userID, PrivilegeID: privilegeID}
	if err := s.Repo.Assign(ctx, up); err != nil {
		return nil, err
	}
	return up, nil
}

func (s *PrivilegeService) Unassign(ctx context.Context, userID, privilegeID string) error {
	return s.Repo.Unassign(ctx, userID, privilegeID)
}

func (s *PrivilegeService) ListForUser(ctx context.Context, userID string) ([]model.Privilege, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.Repo.ListByUser(ctx, userID)
}
