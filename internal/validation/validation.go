// Package validation configures go-playground/validator for the module's
// request DTOs and maps its failures onto domain validation errors. Both the
// echo binder and the usecases validate through it, so a field is reported
// under the same name whichever layer rejects it.
package validation

import (
	"reflect"
	"strings"

	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/errors"

	"github.com/go-playground/validator/v10"
)

var nameTags = []string{"form", "query", "param"}

// New returns a validator that names fields after their form, query or param tag.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range nameTags {
			if name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]; name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	return validate
}

// ToError turns the first failed rule into a field-scoped ValidationError.
func ToError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	fieldErr := validationErrs[0]

	return domainerrors.NewValidationError(fieldErr.Field(), messageForRule(fieldErr))
}

func messageForRule(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		if fieldErr.Field() == "name" {
			return domainerrors.MsgNameRequired
		}

		return domainerrors.MsgInvalidFieldFormat
	case "email":
		return domainerrors.MsgInvalidEmail
	case "url":
		return domainerrors.MsgInvalidWebsite
	case "max":
		return domainerrors.MsgFieldTooLong
	default:
		return domainerrors.MsgInvalidFieldFormat
	}
}
