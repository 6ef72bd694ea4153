package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hidaya/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	logs := testutils.CaptureLogs(t)

	e := echo.New()
	setupErrorHandling(e)
	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())

	logOutput := logs.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, `error="a deliberate unhandled error occurred"`)
	assert.Contains(t, logOutput, "stack_trace=")

	// A real stack trace runs through the debug package and back to this file.
	assert.Contains(t, logOutput, "runtime/debug/stack.go")
	assert.Contains(t, logOutput, "internal/server/errors_test.go")
}

func TestHTTPErrorHandler_HTTPErrors(t *testing.T) {
	logs := testutils.CaptureLogs(t)

	e := echo.New()
	setupErrorHandling(e)
	badRequest := func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "open must be true or false")
	}
	e.GET("/partials/menu", badRequest)
	e.GET("/api/features/annotate", badRequest)
	e.HEAD("/partials/menu", badRequest)

	tests := []struct {
		name     string
		method   string
		target   string
		wantBody string
	}{
		{"html routes answer with the message", http.MethodGet, "/partials/menu", "open must be true or false"},
		{"api routes answer with json", http.MethodGet, "/api/features/annotate", `{"code":"bad_request","message":"open must be true or false"}` + "\n"},
		{"head requests have no body", http.MethodHead, "/partials/menu", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}

	// Client errors are not logged as failures.
	assert.NotContains(t, logs.String(), "level=ERROR")
}
