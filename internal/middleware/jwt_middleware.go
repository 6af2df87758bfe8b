package middleware

import (
	"context"
	"net/http"
	"strings"

	"OrgRegistryAPI/internal/apperr"
	"OrgRegistryAPI/internal/model"

	"github.com/labstack/echo/v4"
)

// Identity is the read-only per-request view of the authenticated user.
type Identity struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FirstName string  `json:"first_name,omitempty"`
	LastName  string  `json:"last_name,omitempty"`
	RoleID    *string `json:"role_id,omitempty"`
}

// UserFinder is the store lookup the guard needs.
type UserFinder interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// AccessGuard resolves bearer tokens to live, active users and attaches
// an identity context to the request.
type AccessGuard struct {
	Tokens *TokenService
	Users  UserFinder
}

func NewAccessGuard(tokens *TokenService, users UserFinder) *AccessGuard {
	return &AccessGuard{Tokens: tokens, Users: users}
}

const identityKey = "auth_identity"

// Require returns an Echo middleware enforcing a valid token bound to an
// existing, active user. Every failure short-circuits with a 401.
func (g *AccessGuard) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := BearerToken(c)
			if !ok {
				return unauthorized(c, "NO_TOKEN", "Access denied. No valid token provided.")
			}
			claims, err := g.Tokens.Verify(tokenString)
			if err != nil {
				if err == ErrTokenExpired {
					return unauthorized(c, "TOKEN_EXPIRED", "Token has expired.")
				}
				return unauthorized(c, "INVALID_TOKEN", "Invalid token.")
			}
			user, err := g.Users.GetByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if apperr.KindOf(err) == apperr.NotFound {
					return unauthorized(c, "USER_NOT_FOUND", "User no longer exists.")
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Authentication error.", "code": "AUTH_ERROR"})
			}
			if !user.IsActive {
				return unauthorized(c, "USER_INACTIVE", "User account is deactivated.")
			}
			c.Set(identityKey, &Identity{
				ID:        user.ID,
				Username:  user.Username,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				RoleID:    user.RoleID,
			})
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, code, message string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": message, "code": code})
}

// BearerToken extracts the token from the Authorization header. Reports
// false when the header is absent or not a Bearer scheme.
func BearerToken(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return "", false
	}
	parts := strings.Fields(auth)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// GetIdentity returns the identity attached by Require, or nil.
func GetIdentity(c echo.Context) *Identity {
	if id, ok := c.Get(identityKey).(*Identity); ok {
		return id
	}
	return nil
}
