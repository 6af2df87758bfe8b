package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		token, user, err := authSvc.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":   true,
			"token":     token,
			"user":      user,
			"expiresIn": authSvc.Tokens.TTL().String(),
		})
	}
}

// verifyHandler returns the live user behind an already-validated token.
func verifyHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := middleware.GetIdentity(c)
		user, err := authSvc.Verify(c.Request().Context(), identity.ID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"user":    user,
			"valid":   true,
		})
	}
}

func setupStatusHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		firstUserRequired, userCount, err := authSvc.SetupStatus(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"firstUserRequired": firstUserRequired,
			"userCount":         userCount,
		})
	}
}

func changePasswordHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(changePasswordRequest)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		identity := middleware.GetIdentity(c)
		if err := authSvc.ChangePassword(c.Request().Context(), identity.ID, req.CurrentPassword, req.NewPassword); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Password updated successfully."})
	}
}

// refreshHandler mints a new token; the presented one stays valid until
// its own expiry.
func refreshHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := middleware.GetIdentity(c)
		token, err := authSvc.Refresh(identity.ID, identity.Username)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":   true,
			"token":     token,
			"expiresIn": authSvc.Tokens.TTL().String(),
		})
	}
}

// logoutHandler is client-local; stateless tokens have no server-side
// revocation list.
func logoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Logged out successfully."})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, guard *middleware.AccessGuard) {
	// public
	g.POST("/login", loginHandler(authSvc))
	g.GET("/setup-status", setupStatusHandler(authSvc))

	// authenticated
	protected := g.Group("")
	protected.Use(guard.Require())
	protected.GET("/verify", verifyHandler(authSvc))
	protected.PUT("/change-password", changePasswordHandler(authSvc))
	protected.POST("/refresh", refreshHandler(authSvc))
	protected.POST("/logout", logoutHandler())
}
