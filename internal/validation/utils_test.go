package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/cards-api/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	ID         int64  `param:"id" json:"-" validate:"required,min=1"`
	ModuleCode string `json:"module_code" validate:"required"`
	Status     string `json:"status" validate:"omitempty,max=5"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "status", Message: "is not a known status"}}
}

func newContext(method, target, body string, names, values []string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(http.MethodPut, "/cards/3", `{"module_code":"CS101"}`, []string{"id"}, []string{"3"})

	payload := &samplePayload{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, int64(3), payload.ID)
	assert.Equal(t, "CS101", payload.ModuleCode)
}

func TestBindAndValidateReportsJSONFieldNames(t *testing.T) {
	c := newContext(http.MethodPut, "/cards/3", `{"status":"TOO_LONG"}`, []string{"id"}, []string{"3"})

	httpErr := asHTTPError(t, BindAndValidate(c, &samplePayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.CodeValidationFailed, httpErr.Code)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "module_code", Error: "is required"},
		{Field: "status", Error: "must not exceed 5 characters"},
	}, httpErr.Errors)
}

func TestBindAndValidateNonNumericID(t *testing.T) {
	c := newContext(http.MethodPut, "/cards/abc", `{"module_code":"CS101"}`, []string{"id"}, []string{"abc"})

	httpErr := asHTTPError(t, BindAndValidate(c, &samplePayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindErrorFromValueBinder(t *testing.T) {
	err := echo.NewBindingError("id", []string{"abc"}, "failed to bind field value to int64", errors.New("invalid syntax"))

	httpErr := asHTTPError(t, bindError(err))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "id", httpErr.Errors[0].Field)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(http.MethodPut, "/cards/1", `{"module_code":`, []string{"id"}, []string{"1"})

	httpErr := asHTTPError(t, BindAndValidate(c, &samplePayload{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(http.MethodGet, "/", "", nil, nil)

	httpErr := asHTTPError(t, BindAndValidate(c, &customPayload{}))
	assert.Equal(t, []errs.FieldError{{Field: "status", Error: "is not a known status"}}, httpErr.Errors)
}
