package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageErrorHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")

	err := NewStorageError(cause)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Internal Server Error", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Cause())

	body, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.NotContains(t, string(body), "connection refused")
	assert.JSONEq(t, `{"code":"INTERNAL_SERVER_ERROR","message":"Internal Server Error","status":500,"override":false,"errors":null}`, string(body))
}

func TestValidationError(t *testing.T) {
	err := ValidationError("Validation failed", []FieldError{{Field: "title", Error: "is required"}})

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeValidationFailed, err.Code)
	assert.True(t, err.Override)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, "title", err.Errors[0].Field)
}

func TestNotFoundErrorDefaultsCode(t *testing.T) {
	err := NewNotFoundError("Card not found", true, nil)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)

	custom := "CARD_NOT_FOUND"
	assert.Equal(t, custom, NewNotFoundError("Card not found", true, &custom).Code)
}

func TestErrorsAsFindsWrappedHTTPError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), NewNotFoundError("Card not found", true, nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessageCopies(t *testing.T) {
	original := NewNotFoundError("Resource not found", false, nil)
	copied := original.WithMessage("Card not found")

	assert.Equal(t, "Resource not found", original.Message)
	assert.Equal(t, "Card not found", copied.Message)
	assert.Equal(t, original.Status, copied.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
}
