package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/model"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerActivityRoutes(g *echo.Group, activitySvc *services.ActivityService, guard *middleware.AccessGuard) {
	g.Use(guard.Require())

	g.POST("", func(c echo.Context) error {
		req := new(model.Activity)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		activity, err := activitySvc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, activity)
	})

	g.GET("", func(c echo.Context) error {
		activities, err := activitySvc.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, activities)
	})

	g.GET("/:id", func(c echo.Context) error {
		activity, err := activitySvc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, activity)
	})

	g.PUT("/:id", func(c echo.Context) error {
		req := new(model.Activity)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		activity, err := activitySvc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, activity)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		if err := activitySvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
