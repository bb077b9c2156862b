package utils

import (
	"errors"
	"net/http"
)

// AppError is an error carrying the HTTP status it should surface with.
// Every store or upstream failure is mapped to one of these at the service
// boundary; nothing below the services leaks raw driver errors to handlers.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidationError reports missing or malformed input (400)
func NewValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// NewConflictError reports a unique-constraint violation (409)
func NewConflictError(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// NewAuthError reports a missing, invalid or expired credential (401)
func NewAuthError(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

// NewForbiddenError reports an authenticated caller that does not own the
// resource (403)
func NewForbiddenError(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message}
}

// NewNotFoundError reports that no matching row exists (404). Ownership
// mismatches on delete surface as this same error so existence under another
// owner is not revealed.
func NewNotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// NewUpstreamError reports an external dependency failure (500)
func NewUpstreamError(message string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message}
}

// NewInternalError reports an unexpected store failure (500)
func NewInternalError(message string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message}
}

// ErrorStatus returns the HTTP status for an error, defaulting to 500 for
// anything that is not an AppError
func ErrorStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
