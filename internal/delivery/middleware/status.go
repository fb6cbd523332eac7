package middleware

import (
	"net/http"

	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusFromError mirrors the status the error handler will choose.
func statusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
