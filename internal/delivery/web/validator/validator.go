// Package validator adapts the shared request validation to echo.
package validator

import (
	"redcolabora/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() echo.Validator {
	return &CustomValidator{validate: validation.New()}
}

// Validate reports the first failing field as a ValidationError.
func (cv *CustomValidator) Validate(i any) error {
	return validation.ToError(cv.validate.Struct(i))
}
