package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/model"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerSiteRoutes(g *echo.Group, siteSvc *services.SiteService, guard *middleware.AccessGuard) {
	g.Use(guard.Require())

	g.POST("", func(c echo.Context) error {
		req := new(model.Site)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		site, err := siteSvc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, site)
	})

	g.GET("", func(c echo.Context) error {
		sites, err := siteSvc.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, sites)
	})

	g.GET("/:id", func(c echo.Context) error {
		site, err := siteSvc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, site)
	})

	g.PUT("/:id", func(c echo.Context) error {
		req := new(model.Site)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		site, err := siteSvc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, site)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		if err := siteSvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
