package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerRoleRoutes(g *echo.Group, roleSvc *services.RoleService, guard *middleware.AccessGuard) {
	g.Use(guard.Require())

	g.POST("", func(c echo.Context) error {
		req := new(services.RoleInput)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		role, err := roleSvc.Create(c.Request().Context(), *req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, role)
	})

	g.GET("", func(c echo.Context) error {
		roles, err := roleSvc.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, roles)
	})

	g.GET("/:id", func(c echo.Context) error {
		role, err := roleSvc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, role)
	})

	g.PUT("/:id", func(c echo.Context) error {
		req := new(services.RoleInput)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		role, err := roleSvc.Update(c.Request().Context(), c.Param("id"), *req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, role)
	})

	// blocked while users still reference the role
	g.DELETE("/:id", func(c echo.Context) error {
		if err := roleSvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
