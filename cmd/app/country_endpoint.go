package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCountryRoutes(g *echo.Group, countrySvc *services.CountryService, guard *middleware.AccessGuard) {
	g.Use(guard.Require())

	g.POST("", func(c echo.Context) error {
		req := new(services.CountryInput)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		country, err := countrySvc.Create(c.Request().Context(), *req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, country)
	})

	g.GET("", func(c echo.Context) error {
		countries, err := countrySvc.List(c.Request().Context(), expandParam(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, countries)
	})

	g.GET("/:id", func(c echo.Context) error {
		country, err := countrySvc.Get(c.Request().Context(), c.Param("id"), expandParam(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, country)
	})

	g.PUT("/:id", func(c echo.Context) error {
		req := new(services.CountryInput)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		country, err := countrySvc.Update(c.Request().Context(), c.Param("id"), *req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, country)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		if err := countrySvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
