package algolia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driven"
	"github.com/custodia-labs/hitlist/internal/logger"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 8 << 20

// Ensure Client implements the interface.
var _ driven.ItemSource = (*Client)(nil)

// Client queries the HN search endpoint.
type Client struct {
	cfg         Config
	http        *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a client. Zero config fields take their defaults.
func NewClient(cfg Config) *Client {
	cfg = cfg.normalise()
	return &Client{
		cfg:         cfg,
		http:        &http.Client{Timeout: cfg.Timeout},
		rateLimiter: NewRateLimiter(cfg.Rate),
	}
}

// SetHTTPClient replaces the underlying HTTP client.
func (c *Client) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.http = hc
	}
}

// Endpoint returns the configured search URL.
func (c *Client) Endpoint() string {
	return c.cfg.Endpoint
}

// Search fetches the hits for term in arrival order.
func (c *Client) Search(ctx context.Context, term string) ([]domain.Item, error) {
	reqURL, err := c.searchURL(term)
	if err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("GET %s", reqURL)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	c.rateLimiter.Update(resp)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrTransport, err)
	}

	items, err := decodeHits(body)
	if err != nil {
		return nil, err
	}
	logger.Debug("search %q: %d hits", term, len(items))
	return items, nil
}

// searchURL composes the request URL. Existing query parameters on the
// endpoint are kept.
func (c *Client) searchURL(term string) (string, error) {
	u, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: endpoint %q: %v", domain.ErrInvalidInput, c.cfg.Endpoint, err)
	}
	q := u.Query()
	q.Set("query", term)
	q.Set("hitsPerPage", strconv.Itoa(c.cfg.HitsPerPage))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
