// Package correlation carries the per-request trace token across service
// hops. The token arrives on the X-Correlation-ID header (or is generated on
// entry), lives in the request's context for the duration of the request and
// is echoed on every response and attached to every outbound call. It has no
// meaning beyond log correlation.
package correlation

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Header is the wire name of the correlation token.
const Header = "X-Correlation-ID"

type ctxKey struct{}

// NewContext returns a context carrying the given token.
func NewContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// FromContext returns the token stored in ctx, or "" when the context is not
// request-scoped.
func FromContext(ctx context.Context) string {
	token, _ := ctx.Value(ctxKey{}).(string)
	return token
}

// Middleware reads the inbound correlation token, generating a fresh one when
// the header is absent, stores it in the request context and sets the
// response header up front so even error responses echo it back.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(Header)
			if token == "" {
				token = uuid.New().String()
			}
			c.Response().Header().Set(Header, token)
			req := c.Request()
			c.SetRequest(req.WithContext(NewContext(req.Context(), token)))
			return next(c)
		}
	}
}

// Attach copies the token from ctx onto an outbound request's headers. A
// request made outside any inbound request carries no token.
func Attach(ctx context.Context, h http.Header) {
	if token := FromContext(ctx); token != "" {
		h.Set(Header, token)
	}
}

// Logger returns the default logger tagged with the context's token, so every
// request-scoped log line carries a cid attribute.
func Logger(ctx context.Context) *slog.Logger {
	token := FromContext(ctx)
	if token == "" {
		token = "no-request"
	}
	return slog.Default().With(slog.String("cid", token))
}
