// Package errs define custom error types and utilities.
//
// Every failure the API reports belongs to one of three kinds:
//
//   - validation: the client sent a payload that misses required data (400)
//   - not found:  no card matched the requested id (404)
//   - storage:    the database or the connection to it failed (500)
//
// Each kind is an *HTTPError that serializes to the same JSON shape, so
// clients always receive consistent error bodies.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "module_code", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is serialized
// directly to JSON.
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: whether the client may show Message to end users as is.
//   - Errors: list of per-field errors (validation).
//   - cause: the underlying error, logged server-side and never serialized.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`

	cause error
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Cause returns the underlying error, if any.
func (e *HTTPError) Cause() error {
	return e.cause
}

// Is makes errors.Is(err, &HTTPError{}) true for any *HTTPError.
// It does NOT compare Code/Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		cause:    e.cause,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
