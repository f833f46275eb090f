package handler

import (
	"net/http"

	"hdnotes/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthStatus is the liveness payload.
type HealthStatus struct {
	Status string `json:"status"`
}

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthStatus{Status: "ok"})
}
