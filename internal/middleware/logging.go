package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ivargas/eventmesh/internal/correlation"
)

// RequestLogger logs one structured line per request, tagged with the
// correlation token so a request can be followed across services. Runs after
// the correlation middleware.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			correlation.Logger(req.Context()).Info("http",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", c.Response().Status),
				slog.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}
