package main

import (
	"errors"
	"net/http"
	"strings"

	"OrgRegistryAPI/internal/apperr"

	"github.com/labstack/echo/v4"
)

// writeError maps a tagged service error to the transport envelope:
// {error, code?, details?}. Untagged errors never leak detail.
func writeError(c echo.Context, err error) error {
	var e *apperr.Error
	if !errors.As(err, &e) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error", "code": "INTERNAL_ERROR"})
	}
	body := echo.Map{"error": e.Message}
	if e.Code != "" {
		body["code"] = e.Code
	}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	return c.JSON(statusFor(e.Kind), body)
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.Conflict:
		return http.StatusConflict
	case apperr.Unauthorized:
		return http.StatusUnauthorized
	case apperr.Forbidden:
		return http.StatusForbidden
	case apperr.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// expandParam reads the opt-in ?expand=a,b relationship expansion list.
func expandParam(c echo.Context) []string {
	raw := c.QueryParam("expand")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func invalidRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request", "code": "VALIDATION_ERROR"})
}
