package handler_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ivargas/eventmesh/internal/config"
	"github.com/ivargas/eventmesh/internal/peer"
	"github.com/ivargas/eventmesh/internal/router"
	"github.com/ivargas/eventmesh/internal/store"
)

// fakeVerifier stands in for the peer client and records every lookup so
// tests can assert on check order and short-circuiting.
type fakeVerifier struct {
	exists    func(resource string, id int) peer.Status
	organizer func(id int) peer.OrganizerStatus
	calls     []string
}

func (f *fakeVerifier) CheckExists(_ context.Context, _, resource string, id int) peer.Status {
	f.calls = append(f.calls, fmt.Sprintf("%s/%d", resource, id))
	if f.exists == nil {
		return peer.Exists
	}
	return f.exists(resource, id)
}

func (f *fakeVerifier) CheckOrganizer(_ context.Context, _ string, id int) peer.OrganizerStatus {
	f.calls = append(f.calls, fmt.Sprintf("is_organizer/%d", id))
	if f.organizer == nil {
		return peer.Authorized
	}
	return f.organizer(id)
}

// newServer builds a service instance the way the binaries do, with the full
// middleware chain, and hands the Echo instance to register routes on.
func newServer() *echo.Echo {
	return router.New(config.Service{})
}

func tempStore[T store.Record](t *testing.T, file string) *store.Store[T] {
	t.Helper()
	return store.New[T](filepath.Join(t.TempDir(), file))
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, r)
	return rec
}
