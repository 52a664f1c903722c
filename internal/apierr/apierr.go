// Package apierr defines the error taxonomy exposed over HTTP.  Every
// business error leaving the API boundary is translated into an Error,
// which serializes as {"error":{"type":...,"message":...,"code":...}}.
// Internal error detail never reaches the client; it belongs in the
// server log.
package apierr

import "net/http"

// Error is a classified application error carrying the HTTP status it
// maps to and the machine-readable code returned to clients.
type Error struct {
	Status  int    `json:"-"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *Error) Error() string { return e.Message }

// Body is the JSON envelope written for an Error.
type Body struct {
	Error *Error `json:"error"`
}

// Envelope wraps an Error for serialization.
func Envelope(e *Error) Body { return Body{Error: e} }

const (
	typeValidation = "validation_error"
	typeApplication = "application_error"
	typeInternal   = "internal_server_error"
)

// Validation reports a malformed or out-of-range field.  The code
// identifies the offending field (e.g. INVALID_EMAIL).
func Validation(code, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Type: typeValidation, Message: message, Code: code}
}

// BadRequest reports a request that could not be interpreted at all,
// such as a body that fails to bind.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Type: typeApplication, Message: message, Code: "BAD_REQUEST"}
}

// NotFound reports an unknown resource (PNR, user, ...).
func NotFound(resource string) *Error {
	return &Error{Status: http.StatusNotFound, Type: typeApplication, Message: resource + " not found", Code: "RESOURCE_NOT_FOUND"}
}

// Conflict reports a uniqueness violation such as a duplicate email.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Type: typeApplication, Message: message, Code: "CONFLICT"}
}

// Unauthorized reports failed authentication.  The message is constant
// on purpose: it must not reveal whether the email or the password was
// wrong.
func Unauthorized() *Error {
	return &Error{Status: http.StatusUnauthorized, Type: typeApplication, Message: "invalid credentials", Code: "INVALID_CREDENTIALS"}
}

// AuthRequired reports a missing or invalid access token on a
// protected endpoint.
func AuthRequired() *Error {
	return &Error{Status: http.StatusUnauthorized, Type: typeApplication, Message: "authentication required", Code: "AUTHENTICATION_REQUIRED"}
}

// Persistence reports a failed store operation.
func Persistence() *Error {
	return &Error{Status: http.StatusInternalServerError, Type: typeInternal, Message: "database operation failed", Code: "DATABASE_ERROR"}
}

// Internal is the catch-all for unexpected failures.
func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Type: typeInternal, Message: "an unexpected error occurred", Code: "INTERNAL_ERROR"}
}
