package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/model"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerAssessorRoutes(g *echo.Group, assessorSvc *services.AssessorService, guard *middleware.AccessGuard) {
	g.Use(guard.Require())

	g.POST("", func(c echo.Context) error {
		req := new(model.Assessor)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		assessor, err := assessorSvc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, assessor)
	})

	g.GET("", func(c echo.Context) error {
		assessors, err := assessorSvc.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, assessors)
	})

	g.GET("/:id", func(c echo.Context) error {
		assessor, err := assessorSvc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, assessor)
	})

	g.PUT("/:id", func(c echo.Context) error {
		req := new(model.Assessor)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		assessor, err := assessorSvc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, assessor)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		if err := assessorSvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
