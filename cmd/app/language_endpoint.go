package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/model"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerLanguageRoutes(g *echo.Group, languageSvc *services.LanguageService, guard *middleware.AccessGuard) {
	g.Use(guard.Require())

	g.POST("", func(c echo.Context) error {
		req := new(model.Language)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		lang, err := languageSvc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, lang)
	})

	g.GET("", func(c echo.Context) error {
		languages, err := languageSvc.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, languages)
	})

	g.GET("/:id", func(c echo.Context) error {
		lang, err := languageSvc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, lang)
	})

	g.PUT("/:id", func(c echo.Context) error {
		req := new(model.Language)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		lang, err := languageSvc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, lang)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		if err := languageSvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
