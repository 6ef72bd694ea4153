package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// RequestLogger injects a request-scoped logger into the request context and
// logs one line per completed request. It reads the request id set by echo's
// RequestID middleware, so it must be placed after it in the chain.
func RequestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		logger := slog.Default().With("request_id", reqID)
		c.SetRequest(req.WithContext(WithLogger(req.Context(), logger)))

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}

		level := slog.LevelInfo
		status := c.Response().Status
		if status >= 500 {
			level = slog.LevelError
		}
		logger.Log(req.Context(), level, "Request handled",
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"htmx", req.Header.Get("HX-Request") == "true",
		)
		return nil
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request-scoped logger, or the default logger when
// none was injected.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
