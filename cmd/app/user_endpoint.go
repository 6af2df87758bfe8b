package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// createUserHandler carries the bootstrap policy: the token (when
// present) is handed to the service, which decides whether one is
// required based on the current user count.
func createUserHandler(userSvc *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(services.CreateUserInput)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		token, _ := middleware.BearerToken(c)
		user, first, err := userSvc.Create(c.Request().Context(), token, *req)
		if err != nil {
			return writeError(c, err)
		}
		message := "User created successfully"
		if first {
			message = "First user created successfully"
		}
		return c.JSON(http.StatusCreated, echo.Map{"message": message, "user": user})
	}
}

func registerUserRoutes(g *echo.Group, userSvc *services.UserService, guard *middleware.AccessGuard) {
	// conditional auth, see createUserHandler
	g.POST("", createUserHandler(userSvc))

	protected := g.Group("")
	protected.Use(guard.Require())

	protected.GET("", func(c echo.Context) error {
		users, err := userSvc.List(c.Request().Context(), expandParam(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, users)
	})

	protected.GET("/:id", func(c echo.Context) error {
		user, err := userSvc.Get(c.Request().Context(), c.Param("id"), expandParam(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, user)
	})

	protected.PUT("/:id", func(c echo.Context) error {
		req := new(services.UpdateUserInput)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		user, err := userSvc.Update(c.Request().Context(), c.Param("id"), *req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, user)
	})

	protected.DELETE("/:id", func(c echo.Context) error {
		if err := userSvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
