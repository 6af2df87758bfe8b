package services

import (
	"context"
	"regexp"
	"strings"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/model"
)

var roleCodePattern = regexp.MustCompile(`^[A-Z_]+$`)

type RoleStore interface {
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id string) error
	CodeExists(ctx context.Context, code, excludeID string) (bool, error)
}

// UserRefCounter counts users referencing a role. Implemented by
// repository.UserRepository.
type UserRefCounter interface {
	CountByRole(ctx context.Context, roleID string) (int, error)
}

type RoleService struct {
	Repo  RoleStore
	Users UserRefCounter
}

func NewRoleService(repo RoleStore, users UserRefCounter) *RoleService {
	return &RoleService{Repo: repo, Users: users}
}

type RoleInput struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func validateRole(in *RoleInput) error {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case in.Code == "":
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Role code is required")
	case len(in.Code) > 50:
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Role code cannot exceed 50 characters")
	case !roleCodePattern.MatchString(in.Code):
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Role code may only contain uppercase letters and underscores")
	case in.Name == "":
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Role name is required")
	case len(in.Name) > 100:
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Role name cannot exceed 100 characters")
	case len(in.Description) > 500:
		return apperr.New(apperr.Validation, "VALIDATION_ERROR", "Role description cannot exceed 500 characters")
	}
	return nil
}

func (s *RoleService) Create(ctx context.Context, in RoleInput) (*model.Role, error) {
	if err := validateRole(&in); err != nil {
		return nil, err
	}
	exists, err := s.Repo.CodeExists(ctx, in.Code, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "ROLE_EXISTS", "This role code already exists")
	}
	role := &model.Role{Code: in.Code, Name: in.Name, Description: in.Description}
	if err := s.Repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Get(ctx context.Context, id string) (*model.Role, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *RoleService) List(ctx context.Context) ([]model.Role, error) {
	return s.Repo.List(ctx)
}

func (s *RoleService) Update(ctx context.Context, id string, in RoleInput) (*model.Role, error) {
	if err := validateRole(&in); err != nil {
		return nil, err
	}
	role, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	exists, err := s.Repo.CodeExists(ctx, in.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "ROLE_EXISTS", "This role code already exists")
	}
	role.Code, role.Name, role.Description = in.Code, in.Name, in.Description
	if err := s.Repo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// Delete removes a role unless users still reference it. The count and
// the delete are two separate store operations; a concurrent create of
// a referencing user is not guarded against.
func (s *RoleService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := s.Users.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Newf(apperr.Forbidden, "REFERENCED_BY_USERS", "Cannot delete this role: %d user(s) are associated with it", n).
			WithDetails(map[string]any{"count": n})
	}
	return s.Repo.Delete(ctx, id)
}
