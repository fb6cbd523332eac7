// Package handler contains the HTTP handlers of the web delivery.
package handler

import (
	"net/http"

	"redcolabora/internal/delivery/web/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"}, "Service is healthy")
}
