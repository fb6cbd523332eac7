package supabase

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	domainerrors "redcolabora/internal/domain/errors"
)

const (
	statusErrorPrefix = "response status code "
	maxErrorBodyBytes = 64 << 10
)

// apiError merges the error shapes the auth service has used across versions.
type apiError struct {
	Status           int    `json:"-"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	MessageField     string `json:"message"`
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func parseAPIError(status int, body []byte) *apiError {
	apiErr := &apiError{}
	_ = json.Unmarshal(body, apiErr)
	apiErr.Status = status

	if apiErr.message() == "" {
		apiErr.Msg = strings.TrimSpace(string(body))
	}

	return apiErr
}

// parseClientError recovers status and body from the errors auth-go returns
// for non-success responses ("response status code 400: {...}").
func parseClientError(err error) (*apiError, bool) {
	if err == nil {
		return nil, false
	}

	rest, ok := strings.CutPrefix(err.Error(), statusErrorPrefix)
	if !ok {
		return nil, false
	}

	code, body, _ := strings.Cut(rest, ":")
	status, convErr := strconv.Atoi(strings.TrimSpace(code))
	if convErr != nil || status < http.StatusBadRequest {
		return nil, false
	}

	body = strings.TrimSpace(body)
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}

	return parseAPIError(status, []byte(body)), true
}

func (e *apiError) message() string {
	for _, candidate := range []string{e.Msg, e.MessageField, e.ErrorDescription, e.ErrorField} {
		if candidate != "" {
			return candidate
		}
	}

	return ""
}

func (e *apiError) code() string {
	if e.ErrorCode != "" {
		return e.ErrorCode
	}

	return e.ErrorField
}

// classifyAPIError maps provider failures onto the domain error taxonomy.
func classifyAPIError(e *apiError) error {
	message := strings.ToLower(e.message())
	code := strings.ToLower(e.code())

	switch {
	case code == "email_not_confirmed" || strings.Contains(message, "email not confirmed"):
		return domainerrors.ErrEmailNotConfirmed
	case code == "user_already_exists" || code == "email_exists" ||
		strings.Contains(message, "already registered") || strings.Contains(message, "already been registered"):
		return domainerrors.ErrAlreadyRegistered
	case code == "invalid_credentials" || code == "invalid_grant" || strings.Contains(message, "invalid login credentials"):
		return domainerrors.ErrInvalidCredentials.WithDetails(e.message())
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden ||
		code == "bad_jwt" || code == "session_not_found" || code == "refresh_token_not_found":
		return domainerrors.ErrUnauthenticated.WithDetails(e.message())
	case code == "weak_password" || code == "validation_failed" || e.Status == http.StatusUnprocessableEntity:
		return domainerrors.NewValidationError("password", e.message())
	default:
		return domainerrors.ErrBackend.WithDetails(e.message())
	}
}
