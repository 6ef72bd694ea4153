package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hidaya/internal/handlers"
	"github.com/nfrund/hidaya/internal/middleware"
)

// setupErrorHandling installs the central HTTP error handler. HTTP errors
// keep their status; anything else is logged with a stack trace and answered
// with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := middleware.FromContext(c.Request().Context())
		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			if code >= http.StatusInternalServerError {
				logger.Error("HTTP error", "status", code, "error", err, "path", c.Request().URL.Path)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var writeErr error
		switch {
		case c.Request().Method == http.MethodHead:
			writeErr = c.NoContent(code)
		case strings.HasPrefix(c.Request().URL.Path, "/api/"):
			writeErr = c.JSON(code, handlers.ErrorResponse{
				Code:    strings.ReplaceAll(strings.ToLower(http.StatusText(code)), " ", "_"),
				Message: message,
			})
		default:
			writeErr = c.String(code, message)
		}
		if writeErr != nil {
			logger.Error("Failed to write error response", "error", writeErr)
		}
	}
}
