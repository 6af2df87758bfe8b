package services

import (
	"context"
	"strings"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// UserStore describes the persistence operations the user and auth
// services need. Implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	UsernameExists(ctx context.Context, username, excludeID string) (bool, error)
}

// RoleGetter and AssessorGetter resolve references for opt-in expansion.
type RoleGetter interface {
	GetByID(ctx context.Context, id string) (*model.Role, error)
}

type AssessorGetter interface {
	GetByID(ctx context.Context, id string) (*model.Assessor, error)
}

type UserService struct {
	Repo      UserStore
	Roles     RoleGetter
	Assessors AssessorGetter
	Tokens    *middleware.TokenService
}

func NewUserService(repo UserStore, roles RoleGetter, assessors AssessorGetter, tokens *middleware.TokenService) *UserService {
	return &UserService{Repo: repo, Roles: roles, Assessors: assessors, Tokens: tokens}
}

type CreateUserInput struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	RoleID     *string `json:"role_id"`
	AssessorID *string `json:"assessor_id"`
	IsActive   *bool   `json:"is_active"`
}

type UpdateUserInput struct {
	Username   *string `json:"username"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	RoleID     *string `json:"role_id"`
	AssessorID *string `json:"assessor_id"`
	IsActive   *bool   `json:"is_active"`
}

// Create applies the bootstrap policy: the very first user may be
// created without a token; once any user exists a signature-valid token
// is required. Returns the sanitized record and whether it was the
// first user.
func (s *UserService) Create(ctx context.Context, token string, in CreateUserInput) (*model.User, bool, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, false, err
	}
	if count > 0 {
		if token == "" {
			return nil, false, apperr.New(apperr.Unauthorized, "TOKEN_REQUIRED", "Token required for user creation when users exist in database")
		}
		// Signature and expiry only; the creating account is not
		// re-checked for existence or activation here.
		if _, err := s.Tokens.Verify(token); err != nil {
			return nil, false, apperr.New(apperr.Unauthorized, "INVALID_TOKEN", "Invalid or expired token")
		}
	}

	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, false, apperr.New(apperr.Validation, "MISSING_FIELDS", "Username and password are required")
	}
	exists, err := s.Repo.UsernameExists(ctx, username, "")
	if err != nil {
		return nil, false, err
	}
	if exists {
		return nil, false, apperr.New(apperr.Conflict, "USER_EXISTS", "User with this username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, apperr.Wrap(err)
	}
	u := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		RoleID:       in.RoleID,
		AssessorID:   in.AssessorID,
		IsActive:     true,
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, false, err
	}
	u.PasswordHash = ""
	return u, count == 0, nil
}

// Get returns one user, expanding role/assessor references on request.
func (s *UserService) Get(ctx context.Context, id string, expand []string) (*model.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	s.expandUser(ctx, u, expand)
	return u, nil
}

func (s *UserService) List(ctx context.Context, expand []string) ([]model.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
		s.expandUser(ctx, &users[i], expand)
	}
	return users, nil
}

// expandUser fills referenced records when asked. A dangling reference
// is left unexpanded rather than failing the read.
func (s *UserService) expandUser(ctx context.Context, u *model.User, expand []string) {
	if hasExpand(expand, "role") && u.RoleID != nil {
		if role, err := s.Roles.GetByID(ctx, *u.RoleID); err == nil {
			u.Role = role
		}
	}
	if hasExpand(expand, "assessor") && u.AssessorID != nil {
		if a, err := s.Assessors.GetByID(ctx, *u.AssessorID); err == nil {
			u.Assessor = a
		}
	}
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*model.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, apperr.New(apperr.Validation, "MISSING_FIELDS", "Username cannot be empty")
		}
		exists, err := s.Repo.UsernameExists(ctx, username, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.New(apperr.Conflict, "USER_EXISTS", "User with this username already exists")
		}
		u.Username = username
	}
	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.RoleID != nil {
		u.RoleID = in.RoleID
	}
	if in.AssessorID != nil {
		u.AssessorID = in.AssessorID
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func hasExpand(expand []string, key string) bool {
	for _, e := range expand {
		if strings.EqualFold(strings.TrimSpace(e), key) {
			return true
		}
	}
	return false
}
