// Package client implements the generic admin-side access pattern for the
// blog API: a typed HTTP resource per entity, collection reconciliation for
// relation option lists, route resolution for edit views, and a form
// controller driving the create/update flow.
package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Entity is the constraint for remotely persisted records: an opaque string
// identifier that is empty for not-yet-created instances.
type Entity interface {
	GetID() string
}

// Client holds the shared transport configuration. It carries no mutable
// state beyond its configuration and is safe to share across every Resource
// for the process lifetime.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithToken sets a bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a Client for the given base URL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RemoteError is any non-success transport response. It is returned as-is;
// no operation retries.
type RemoteError struct {
	Status int
	Method string
	URL    string
	Body   []byte
}

func (e *RemoteError) Error() string {
	msg := strings.TrimSpace(string(e.Body))
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.URL, e.Status, msg)
}

// IsRemoteStatus reports whether err is a RemoteError with the given status.
func IsRemoteStatus(err error, status int) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Status == status
}
