// Package client is the data-fetching layer the presentation shell uses to
// obtain a Catalog from the server. Each successful call replaces the
// previous catalog wholesale; values are never patched incrementally.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/zoocast/catalog-api/internal/models"
	"github.com/zoocast/catalog-api/internal/services/catalog"
)

// ErrUnavailable flags a feed endpoint that could not be reached or that
// answered with a non-success status.
var ErrUnavailable = errors.New("catalog unavailable")

// UnavailableError carries the transport-level detail behind ErrUnavailable.
type UnavailableError struct {
	URL   string
	Cause error
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("fetching catalog from %s: %v", e.URL, e.Cause)
}

func (e UnavailableError) Unwrap() error {
	return e.Cause
}

func (e UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

// Client fetches and validates the catalog served at /api/feed.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a client for the given server base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchCatalog retrieves /api/feed, decodes the body and runs the schema
// check before handing the catalog to the caller. A body that does not
// match the schema surfaces as catalog.ValidationError.
func (c *Client) FetchCatalog(ctx context.Context) (*models.Catalog, error) {
	endpoint := c.baseURL + "/api/feed"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, UnavailableError{URL: endpoint, Cause: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, UnavailableError{URL: endpoint, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, UnavailableError{
			URL:   endpoint,
			Cause: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var decoded models.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, catalog.NewValidationError("catalog", fmt.Sprintf("body is not a catalog: %v", err))
	}

	if err := catalog.Validate(&decoded); err != nil {
		return nil, err
	}

	return &decoded, nil
}
