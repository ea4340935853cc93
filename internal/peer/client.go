// Package peer performs the synchronous existence and authorization lookups
// a service runs against its peers before accepting a write. No service holds
// a copy of peer data; the owning service is always asked directly. Lookups
// are bounded by the client timeout so a dead peer cannot stall a request
// forever.
package peer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ivargas/eventmesh/internal/correlation"
)

// Status is the outcome of an existence lookup.
type Status int

const (
	// Exists means the peer resolved the id.
	Exists Status = iota
	// NotFound means the peer answered and the id does not resolve.
	NotFound
	// Unreachable means the peer could not be consulted: transport failure,
	// timeout, or an answer that is neither found nor not-found.
	Unreachable
)

// OrganizerStatus is the outcome of an organizer authorization lookup.
type OrganizerStatus int

const (
	// Authorized means the user exists and carries the organizer flag.
	Authorized OrganizerStatus = iota
	// OrganizerNotFound means the user id does not resolve.
	OrganizerNotFound
	// NotOrganizer means the user exists but is not an organizer.
	NotOrganizer
	// OrganizerUnreachable means the users service could not be consulted.
	OrganizerUnreachable
)

// Client issues validation lookups against peer services.
type Client struct {
	http *http.Client
}

// NewClient returns a client whose lookups are bounded by timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// CheckExists asks the service at baseURL whether resource id resolves, e.g.
// CheckExists(ctx, usersURL, "users", 7) issues GET {usersURL}/users/7. The
// correlation token in ctx is forwarded.
func (c *Client) CheckExists(ctx context.Context, baseURL, resource string, id int) Status {
	resp, err := c.get(ctx, fmt.Sprintf("%s/%s/%d", baseURL, resource, id))
	if err != nil {
		return Unreachable
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		return Exists
	case http.StatusNotFound:
		return NotFound
	default:
		return Unreachable
	}
}

// CheckOrganizer asks the users service whether the given user id exists and
// is flagged as an organizer. The endpoint answers a bare JSON boolean.
func (c *Client) CheckOrganizer(ctx context.Context, usersBaseURL string, id int) OrganizerStatus {
	resp, err := c.get(ctx, fmt.Sprintf("%s/users/%d/is_organizer", usersBaseURL, id))
	if err != nil {
		return OrganizerUnreachable
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusNotFound:
		return OrganizerNotFound
	case http.StatusOK:
	default:
		return OrganizerUnreachable
	}
	var organizer bool
	if err := json.NewDecoder(resp.Body).Decode(&organizer); err != nil {
		return OrganizerUnreachable
	}
	if !organizer {
		return NotOrganizer
	}
	return Authorized
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	correlation.Attach(ctx, req.Header)
	return c.http.Do(req)
}
