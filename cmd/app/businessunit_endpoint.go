package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/model"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerBusinessUnitRoutes(g *echo.Group, buSvc *services.BusinessUnitService, guard *middleware.AccessGuard) {
	g.Use(guard.Require())

	g.POST("", func(c echo.Context) error {
		req := new(model.BusinessUnit)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		bu, err := buSvc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, bu)
	})

	g.GET("", func(c echo.Context) error {
		units, err := buSvc.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, units)
	})

	g.GET("/:id", func(c echo.Context) error {
		bu, err := buSvc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, bu)
	})

	g.PUT("/:id", func(c echo.Context) error {
		req := new(model.BusinessUnit)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		bu, err := buSvc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, bu)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		if err := buSvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
