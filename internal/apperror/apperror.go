package apperror

import (
	"errors"
	"net/http"
)

// Error is a domain error carrying the HTTP status it should surface as.
// Services return these; handlers map them with Status.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an error with an explicit status code.
func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// BadRequest signals invalid input or a rejected self-action (400).
func BadRequest(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

// Forbidden signals a protection-rule violation (403).
func Forbidden(message string) *Error {
	return &Error{Code: http.StatusForbidden, Message: message}
}

// NotFound signals a missing entity (404).
func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message}
}

// Conflict signals a duplicate/uniqueness violation (409).
func Conflict(message string) *Error {
	return &Error{Code: http.StatusConflict, Message: message}
}

// Status returns the HTTP status for err. Unknown errors map to 500.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// IsDomain reports whether err is a domain error safe to show to the caller.
func IsDomain(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr)
}
