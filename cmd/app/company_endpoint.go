package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/model"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCompanyRoutes(g *echo.Group, companySvc *services.CompanyService, guard *middleware.AccessGuard) {
	g.Use(guard.Require())

	g.POST("", func(c echo.Context) error {
		req := new(model.Company)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		company, err := companySvc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, company)
	})

	g.GET("", func(c echo.Context) error {
		companies, err := companySvc.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, companies)
	})

	g.GET("/:id", func(c echo.Context) error {
		company, err := companySvc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, company)
	})

	g.PUT("/:id", func(c echo.Context) error {
		req := new(model.Company)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		company, err := companySvc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, company)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		if err := companySvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
