package main

import (
	"net/http"

	"OrgRegistryAPI/internal/middleware"
	"OrgRegistryAPI/internal/model"
	"OrgRegistryAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type assignPrivilegeRequest struct {
	UserID      string `json:"user_id"`
	PrivilegeID string `json:"privilege_id"`
}

func registerPrivilegeRoutes(g *echo.Group, privilegeSvc *services.PrivilegeService, guard *middleware.AccessGuard) {
	g.Use(guard.Require())

	g.POST("", func(c echo.Context) error {
		req := new(model.Privilege)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		privilege, err := privilegeSvc.Create(c.Request().Context(), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, privilege)
	})

	g.GET("", func(c echo.Context) error {
		privileges, err := privilegeSvc.List(c.Request().Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, privileges)
	})

	// privileges assigned to one user
	g.GET("/user/:id", func(c echo.Context) error {
		privileges, err := privilegeSvc.ListForUser(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, privileges)
	})

	g.POST("/assign", func(c echo.Context) error {
		req := new(assignPrivilegeRequest)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		up, err := privilegeSvc.Assign(c.Request().Context(), req.UserID, req.PrivilegeID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, up)
	})

	g.DELETE("/assign", func(c echo.Context) error {
		userID := c.QueryParam("user_id")
		privilegeID := c.QueryParam("privilege_id")
		if userID == "" || privilegeID == "" {
			return invalidRequest(c)
		}
		if err := privilegeSvc.Unassign(c.Request().Context(), userID, privilegeID); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})

	g.GET("/:id", func(c echo.Context) error {
		privilege, err := privilegeSvc.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, privilege)
	})

	g.PUT("/:id", func(c echo.Context) error {
		req := new(model.Privilege)
		if err := c.Bind(req); err != nil {
			return invalidRequest(c)
		}
		privilege, err := privilegeSvc.Update(c.Request().Context(), c.Param("id"), req)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, privilege)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		if err := privilegeSvc.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
	})
}
