package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type areaRequest struct {
	Name string `json:"name"`
}

func registerAreaRoutes(g *echo.Group, areaSvc *services.AreaService, guard *middleware.AccessGuard) {
	g.Use(guard.Require())

	g.POST("", func(c echo.Context) error {
		req := new(areaRequest)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		area, err := areaSvc.Create(c.Request().Context(), req.Name)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, area)
	})

	g.GET("", func(c echo.Context) error {
		areas, err := areaSvc.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, areas)
	})

	g.GET("/:id", func(c echo.Context) error {
		area, err := areaSvc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, area)
	})

	g.PUT("/:id", func(c echo.Context) error {
		req := new(areaRequest)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		area, err := areaSvc.Update(c.Request().Context(), c.Param("id"), req.Name)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, area)
	})

	// blocked while countries still reference the area
	g.DELETE("/:id", func(c echo.Context) error {
		if err := areaSvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
