package peer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivargas/eventmesh/internal/correlation"
)

func TestCheckExists(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Status
	}{
		{"exists", http.StatusOK, Exists},
		{"not found", http.StatusNotFound, NotFound},
		{"peer error", http.StatusInternalServerError, Unreachable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/7", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(time.Second)
			got := c.CheckExists(context.Background(), srv.URL, "users", 7)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckExistsUnreachablePeer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewClient(time.Second)
	got := c.CheckExists(context.Background(), srv.URL, "users", 1)
	assert.Equal(t, Unreachable, got)
}

func TestCheckExistsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(20 * time.Millisecond)
	got := c.CheckExists(context.Background(), srv.URL, "users", 1)
	assert.Equal(t, Unreachable, got)
}

func TestCheckExistsForwardsCorrelationToken(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(correlation.Header)
	}))
	defer srv.Close()

	ctx := correlation.NewContext(context.Background(), "trace-42")
	c := NewClient(time.Second)
	got := c.CheckExists(ctx, srv.URL, "users", 1)
	require.Equal(t, Exists, got)
	assert.Equal(t, "trace-42", seen)
}

func TestCheckOrganizer(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   OrganizerStatus
	}{
		{"authorized", http.StatusOK, "true", Authorized},
		{"not organizer", http.StatusOK, "false", NotOrganizer},
		{"user missing", http.StatusNotFound, `{"error":"User not found"}`, OrganizerNotFound},
		{"peer error", http.StatusBadGateway, "", OrganizerUnreachable},
		{"garbage body", http.StatusOK, "not-json", OrganizerUnreachable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/3/is_organizer", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(time.Second)
			got := c.CheckOrganizer(context.Background(), srv.URL, 3)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckOrganizerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(time.Second)
	got := c.CheckOrganizer(context.Background(), srv.URL, 3)
	assert.Equal(t, OrganizerUnreachable, got)
}
