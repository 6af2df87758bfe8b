package services

import (
	"context"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/model"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users          UserStore
	Tokens         *middleware.TokenService
	MinPasswordLen int
}

func NewAuthService(users UserStore, tokens *middleware.TokenService, minPasswordLen int) *AuthService {
	if minPasswordLen <= 0 {
		minPasswordLen = 6
	}
	return &AuthService{Users: users, Tokens: tokens, MinPasswordLen: minPasswordLen}
}

// Login authenticates username + password and mints a session token.
// The returned user is sanitized. Unknown usernames and hash mismatches
// produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	if username == "" || password == "" {
		return "", nil, apperr.New(apperr.Validation, "MISSING_CREDENTIALS", "Username and password are required.")
	}
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return "", nil, apperr.New(apperr.Validation, "INVALID_CREDENTIALS", "Invalid credentials.")
		}
		return "", nil, err
	}
	if !u.IsActive {
		return "", nil, apperr.New(apperr.Forbidden, "ACCOUNT_DEACTIVATED", "Account is deactivated.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.Validation, "INVALID_CREDENTIALS", "Invalid credentials.")
	}
	token, err := s.Tokens.Issue(u.ID, u.Username)
	if err != nil {
		return "", nil, apperr.Wrap(err)
	}
	u.PasswordHash = ""
	return token, u, nil
}

// Verify returns the live, sanitized view of an already-authenticated
// user.
func (s *AuthService) Verify(ctx context.Context, userID string) (*model.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// ChangePassword verifies the current password and persists a new hash.
// Outstanding tokens stay valid; tokens are stateless and cannot be
// revoked server-side.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperr.New(apperr.Validation, "MISSING_FIELDS", "Current and new password are required.")
	}
	if len(newPassword) < s.MinPasswordLen {
		return apperr.Newf(apperr.Validation, "PASSWORD_TOO_SHORT", "New password must be at least %d characters long.", s.MinPasswordLen)
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return apperr.New(apperr.Validation, "INVALID_CREDENTIALS", "Current password is incorrect.")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Wrap(err)
	}
	return s.Users.UpdatePassword(ctx, userID, string(hash))
}

// Refresh mints a fresh token for an identity that already passed the
// access guard. The previous token is not invalidated.
func (s *AuthService) Refresh(userID, username string) (string, error) {
	token, err := s.Tokens.Issue(userID, username)
	if err != nil {
		return "", apperr.Wrap(err)
	}
	return token, nil
}

// SetupStatus reports whether the first user still needs to be created.
func (s *AuthService) SetupStatus(ctx context.Context) (firstUserRequired bool, userCount int, err error) {
	n, err := s.Users.Count(ctx)
	if err != nil {
		return false, 0, err
	}
	return n == 0, n, nil
}
