package view

import (
	"redcolabora/internal/domain/entity"
	"redcolabora/internal/usecase"
)

// Page is what every template receives. Data holds the page-specific view model.
type Page struct {
	Title    string
	Identity *entity.Identity
	Data     any
}

// SearchData backs the search page.
type SearchData struct {
	Comuna     string
	Category   string
	Businesses []*entity.Business
	Error      string
}

// Filtered reports whether any filter is active, which shows the reset link.
func (d SearchData) Filtered() bool {
	return d.Comuna != "" || d.Category != ""
}

// FormState carries submitted values and errors back into a form.
type FormState struct {
	Errors    map[string]string
	FormError string
}

// HasErrors reports whether the form should render in its failed state.
func (f FormState) HasErrors() bool {
	return f.FormError != "" || len(f.Errors) > 0
}

// ReviewForm is the review form of the business page.
type ReviewForm struct {
	FormState
	Rating  int
	Comment string
}

// EditForm is the owner's profile editor.
type EditForm struct {
	FormState
	Values usecase.BusinessProfileInput
}

// BusinessData backs the business page.
type BusinessData struct {
	*usecase.BusinessDetail
	ShareURL            string
	Notice              string
	RecommendationError string
	Review              ReviewForm
	Edit                EditForm
}

// LoginData backs the login page.
type LoginData struct {
	Email             string
	Error             string
	NeedsConfirmation bool
	ResendSuccess     bool
}

// RegisterData backs the registration page.
type RegisterData struct {
	Email   string
	Type    string
	Comuna  string
	Consent bool
	Field   string
	Error   string
}

// AccountData backs the profile and dashboard pages.
type AccountData struct {
	Email   string
	Profile *entity.Profile
}

// TypeLabel is the greeting used on the dashboard.
func (d AccountData) TypeLabel() string {
	if d.Profile == nil {
		return entity.AccountTypeConsumer.Label()
	}

	return d.Profile.Type.Label()
}

// ErrorData backs the error pages.
type ErrorData struct {
	Status    int
	Message   string
	Details   string
	RequestID string
}
