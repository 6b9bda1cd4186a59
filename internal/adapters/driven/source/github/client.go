package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driven"
	"github.com/custodia-labs/hitlist/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.ItemSource = (*Client)(nil)

// Client searches GitHub issues and pull requests.
type Client struct {
	cfg         Config
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates a client. Zero config fields take their defaults.
func NewClient(cfg Config) (*Client, error) {
	cfg = cfg.normalise()

	hc := &http.Client{}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		hc = oauth2.NewClient(context.Background(), ts)
	}
	hc.Timeout = cfg.Timeout

	client := gh.NewClient(hc)
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: github base url %q: %v", domain.ErrInvalidInput, cfg.BaseURL, err)
		}
		client.BaseURL = u
	}

	return &Client{
		cfg:         cfg,
		gh:          client,
		rateLimiter: NewRateLimiter(cfg.Rate),
	}, nil
}

// Endpoint returns the API root in use.
func (c *Client) Endpoint() string {
	return c.gh.BaseURL.String()
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// Search returns the issues matching term in the API's relevance order.
func (c *Client) Search(ctx context.Context, term string) ([]domain.Item, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", domain.ErrTransport, err)
	}

	opts := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: c.cfg.PerPage}}
	logger.Debug("github search %q", term)
	result, resp, err := c.gh.Search.Issues(ctx, term, opts)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "search issues")
	}
	if result == nil {
		return nil, fmt.Errorf("%w: empty search result", domain.ErrMalformedResponse)
	}

	items := make([]domain.Item, 0, len(result.Issues))
	for _, issue := range result.Issues {
		if issue.GetID() == 0 {
			continue
		}
		items = append(items, toItem(issue))
	}
	logger.Debug("github search %q: %d of %d issues", term, len(items), result.GetTotal())
	return items, nil
}

func toItem(issue *gh.Issue) domain.Item {
	return domain.Item{
		Title:       issue.GetTitle(),
		URL:         issue.GetHTMLURL(),
		Author:      issue.GetUser().GetLogin(),
		NumComments: issue.GetComments(),
		Points:      issue.GetReactions().GetTotalCount(),
		ObjectID:    strconv.FormatInt(issue.GetID(), 10),
	}
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   c.rateLimiter.ResetTime(),
			Remaining: c.rateLimiter.Remaining(),
			Limit:     c.rateLimiter.Limit(),
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &RateLimitError{
			ResetAt:   c.rateLimiter.ResetTime(),
			Remaining: 0,
			Limit:     c.rateLimiter.Limit(),
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, operation, err)
	}

	return fmt.Errorf("%w: %s: %v", domain.ErrTransport, operation, err)
}
