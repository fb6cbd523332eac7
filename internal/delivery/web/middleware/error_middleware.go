package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"redcolabora/config"
	deliverycontext "redcolabora/internal/delivery/context"
	"redcolabora/internal/delivery/web/response"
	"redcolabora/internal/delivery/web/view"
	domainerrors "redcolabora/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

type errorReply struct {
	status  int
	code    string
	message string
	details string
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Requests under /api get
// the JSON envelope, everything else an HTML page.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	reply := m.classify(err)
	if reply.status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	details := ""
	if m.debug {
		details = reply.details
	}

	var writeErr error
	switch {
	case c.Request().Method == http.MethodHead:
		writeErr = c.NoContent(reply.status)
	case isAPIRequest(c):
		writeErr = response.Error(c, reply.status, reply.code, reply.message, details)
	case reply.status == http.StatusUnauthorized:
		writeErr = c.Redirect(http.StatusSeeOther, "/login")
	case reply.status == http.StatusNotFound:
		writeErr = c.Render(reply.status, "not_found", view.Page{
			Title:    "No encontrado",
			Identity: deliverycontext.GetIdentity(c),
			Data:     view.ErrorData{Status: reply.status, Message: reply.message},
		})
	default:
		writeErr = c.Render(reply.status, "error", view.Page{
			Title:    "Error",
			Identity: deliverycontext.GetIdentity(c),
			Data: view.ErrorData{
				Status:    reply.status,
				Message:   reply.message,
				Details:   details,
				RequestID: deliverycontext.RequestIDFromContext(c.Request().Context()),
			},
		})
	}

	if writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) classify(err error) errorReply {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errorReply{
			status:  appErr.HTTPCode(),
			code:    appErr.ErrorCode(),
			message: appErr.Message(),
			details: err.Error(),
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		reply := errorReply{status: httpErr.Code, code: "HTTP_ERROR", details: err.Error()}
		switch httpErr.Code {
		case http.StatusNotFound:
			reply.message = domainerrors.ErrNotFound.Message()
		case http.StatusRequestEntityTooLarge:
			reply.message = "La solicitud es demasiado grande"
		default:
			reply.message = http.StatusText(httpErr.Code)
		}

		return reply
	}

	return errorReply{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: domainerrors.ErrInternalError.Message(),
		details: err.Error(),
	}
}

func isAPIRequest(c echo.Context) bool {
	path := c.Request().URL.Path

	return path == "/api" || strings.HasPrefix(path, "/api/") || path == "/health"
}
