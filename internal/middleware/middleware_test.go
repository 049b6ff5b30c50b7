package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/cards-api/internal/config"
	"github.com/deppfellow/cards-api/internal/errs"
	"github.com/deppfellow/cards-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginPolicy(t *testing.T) {
	p := NewOriginPolicy(
		[]string{"http://localhost:5173", "https://cards.example.com/"},
		[]string{"vercel.app"},
	)

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:5173", true},
		{"https://cards.example.com", true},
		{"HTTPS://CARDS.EXAMPLE.COM", true},
		{"https://preview-123.vercel.app", true},
		{"https://preview.vercel.app:8443", true},
		{"https://evilvercel.app", false},
		{"https://vercel.app.evil.com", false},
		{"http://localhost:3000", false},
		{"not a url", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Allowed(tt.origin), tt.origin)
	}
}

func TestOriginPolicyWildcard(t *testing.T) {
	p := NewOriginPolicy([]string{"*"}, nil)
	assert.True(t, p.Allowed("https://anything.example"))
}

func TestOriginPolicyNoSuffixes(t *testing.T) {
	p := NewOriginPolicy([]string{"http://localhost:5173"}, nil)
	assert.False(t, p.Allowed("https://x.vercel.app"))
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("abc-123"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("has space"))
	assert.False(t, validRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-id", rec.Body.String())
	assert.Equal(t, "upstream-id", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Body.String(), 36)
}

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins:        []string{"http://localhost:5173"},
				CORSAllowedOriginSuffixes: []string{".vercel.app"},
			},
		},
		Logger: &logger,
	}
}

func serveError(t *testing.T, handlerErr error) (*httptest.ResponseRecorder, errs.HTTPError) {
	t.Helper()
	global := NewGlobalMiddlewares(newTestServer())

	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.GET("/boom", func(echo.Context) error { return handlerErr })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestGlobalErrorHandlerNotFoundFromDriver(t *testing.T) {
	rec, body := serveError(t, pkgerrors.Wrap(pgx.ErrNoRows, "table:cards: get card 1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Card not found", body.Message)
}

func TestGlobalErrorHandlerHidesStorageCause(t *testing.T) {
	rec, body := serveError(t, pkgerrors.New("dial tcp 10.0.0.3:5432: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, errs.CodeStorage, body.Code)
	assert.Equal(t, "Internal Server Error", body.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestGlobalErrorHandlerLogsStorageCause(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	global := NewGlobalMiddlewares(newTestServer())

	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(LoggerKey, &logger)
			return next(c)
		}
	})
	e.GET("/cards/:id", func(echo.Context) error {
		return errs.NewStorageError(pkgerrors.New("dial tcp 10.9.9.9:5432: connection refused"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.9.9.9")
	assert.Contains(t, buf.String(), "dial tcp 10.9.9.9:5432: connection refused")
}

func TestGlobalErrorHandlerValidation(t *testing.T) {
	rec, body := serveError(t, errs.ValidationError("Validation failed", []errs.FieldError{{Field: "title", Error: "is required"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, body.Override)
	assert.Equal(t, []errs.FieldError{{Field: "title", Error: "is required"}}, body.Errors)
}

func TestGlobalErrorHandlerUnknownRoute(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer())
	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusMethodNotAllowed, statusOf(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusNotFound, statusOf(errs.NewNotFoundError("x", false, nil)))
	assert.Equal(t, http.StatusNotFound, statusOf(pgx.ErrNoRows))
	assert.Equal(t, http.StatusInternalServerError, statusOf(pkgerrors.New("boom")))
}

func TestCORSHeaders(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer())
	e := echo.New()
	e.Use(global.CORS())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	request := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if origin != "" {
			req.Header.Set(echo.HeaderOrigin, origin)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := request("https://pr-9.vercel.app")
	assert.Equal(t, "https://pr-9.vercel.app", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec = request("https://evil.example")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec = request("")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsCollectUsesErrorStatus(t *testing.T) {
	m := NewMetricsMiddleware()

	e := echo.New()
	e.Use(m.Collect())
	e.GET("/cards/:id", func(echo.Context) error {
		return pkgerrors.Wrap(pgx.ErrNoRows, "table:cards: get card 1")
	})
	e.GET("/metrics", m.Handler())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cards/1", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/cards/:id",status="404"} 1`)
}
