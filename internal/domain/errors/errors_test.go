package errors

import (
	"net/http"
	"testing"

	"redcolabora/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	err := ErrBackend.WithDetails("connection refused")

	assert.True(t, errors.Is(err, ErrBackend))
	assert.False(t, errors.Is(err, ErrInternalError))
	assert.Equal(t, "connection refused", err.Details())
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrBusinessNotFound.WrapMessage("loading detail page")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "BUSINESS_NOT_FOUND", appErr.ErrorCode())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("comment", MsgCommentTooShort)

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, MsgCommentTooShort, err.Message())
	assert.Equal(t, "comment", err.Field)

	var validationErr *ValidationError
	assert.True(t, errors.As(errors.Wrap(err, "submit review"), &validationErr))
	assert.Equal(t, "comment", validationErr.Field)
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("relation \"businesses\" does not exist")
	err := NewDatabaseExecuteError(cause, "search businesses")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Details(), "search businesses")
	assert.NotContains(t, err.Message(), "relation")
}
