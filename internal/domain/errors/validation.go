package errors

import "net/http"

// Messages shown next to form fields.
const (
	MsgRatingRequired     = "Por favor selecciona una calificación"
	MsgRatingOutOfRange   = "La calificación debe estar entre 1 y 5"
	MsgCommentTooShort    = "El comentario debe tener al menos 10 caracteres"
	MsgNameRequired       = "El nombre del negocio es obligatorio"
	MsgInvalidEmail       = "Ingresa un correo válido"
	MsgInvalidWebsite     = "Ingresa una URL válida (incluye https://)"
	MsgFieldTooLong       = "El texto es demasiado largo"
	MsgAccountType        = "Selecciona si eres PYME o consumidor"
	MsgComunaRequired     = "Por favor ingresa tu comuna"
	MsgConsentRequired    = "Debes aceptar el tratamiento de datos según la Ley 19.628"
	MsgPasswordsMismatch  = "Las contraseñas no coinciden"
	MsgPasswordTooShort   = "La contraseña debe tener al menos 6 caracteres"
	MsgEmailRequired      = "Ingresa tu correo"
	MsgPasswordRequired   = "Ingresa tu contraseña"
	MsgInvalidFieldFormat = "El valor ingresado no es válido"
)

// ValidationError is a field-scoped input error detected before any backend call.
type ValidationError struct {
	Field string
	Msg   string
}

// NewValidationError creates a validation error for a form field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Msg: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Msg
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return e.Msg
}

func (e *ValidationError) Details() string {
	return e.Field
}

// Is lets callers match any validation error against ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
