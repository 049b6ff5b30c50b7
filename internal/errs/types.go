package errs

import (
	"net/http"
)

// Codes the API uses on top of the plain status texts.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeStorage          = "INTERNAL_SERVER_ERROR"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is always the generic status text, never the real error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     CodeStorage,
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewStorageError reports a database failure as a generic 500 while
// keeping the driver error for the server-side log.
func NewStorageError(cause error) *HTTPError {
	err := NewInternalServerError()
	err.cause = cause
	return err
}

// ValidationError reports missing or malformed request data as a 400.
func ValidationError(message string, fieldErrors []FieldError) *HTTPError {
	code := CodeValidationFailed
	return NewBadRequestError(message, true, &code, fieldErrors)
}
