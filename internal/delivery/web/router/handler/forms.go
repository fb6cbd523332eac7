package handler

import (
	"strings"

	"redcolabora/internal/delivery/web/view"
	domainerrors "redcolabora/internal/domain/errors"
	"redcolabora/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// searchQuery is shared by the search page and the JSON endpoint.
type searchQuery struct {
	Comuna   string `query:"comuna" validate:"max=120"`
	Category string `query:"category" validate:"max=120"`
	Seq      uint64 `query:"seq"`
}

// bindSearchQuery binds and trims the filters, then validates what the store
// would actually receive.
func bindSearchQuery(c echo.Context) (searchQuery, error) {
	var query searchQuery
	if err := c.Bind(&query); err != nil {
		return query, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	query.Comuna = strings.TrimSpace(query.Comuna)
	query.Category = strings.TrimSpace(query.Category)

	return query, c.Validate(&query)
}

type reviewForm struct {
	Rating  int    `form:"rating"`
	Comment string `form:"comment"`
}

type recommendationForm struct {
	Recommended bool `form:"recommended"`
}

type editForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Comuna      string `form:"comuna"`
	Category    string `form:"category"`
	Phone       string `form:"phone"`
	Email       string `form:"email"`
	Website     string `form:"website"`
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type resendForm struct {
	Email string `form:"email"`
}

type registerForm struct {
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
	Type            string `form:"type"`
	Comuna          string `form:"comuna"`
	Consent         bool   `form:"consent"`
}

// businessID parses the :id path parameter. Anything that is not a UUID
// cannot name a business.
func businessID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "invalid business id")
	}

	return id, nil
}

// formFailure splits an error into a field error or a form-level message.
// ok is false when the error is not something the form can display.
func formFailure(err error) (state view.FormState, ok bool) {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return view.FormState{Errors: map[string]string{validationErr.Field: validationErr.Msg}}, true
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && !errors.IsAny(err, domainerrors.ErrUnauthenticated, domainerrors.ErrBusinessNotFound) {
		return view.FormState{FormError: appErr.Message()}, true
	}

	return view.FormState{}, false
}
