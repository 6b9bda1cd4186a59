package algolia

import (
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the public HN search endpoint.
	DefaultEndpoint = "https://hn.algolia.com/api/v1/search"

	// DefaultHitsPerPage is the page size requested per search.
	DefaultHitsPerPage = 20

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultRate is the proactive request rate in requests per second.
	DefaultRate = 2.0

	// MaxHitsPerPage is the largest page size the API honours.
	MaxHitsPerPage = 1000
)

// Config holds the client settings.
type Config struct {
	// Endpoint is the search URL without query parameters.
	Endpoint string

	// HitsPerPage is sent as the hitsPerPage parameter.
	HitsPerPage int

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// Rate is the maximum request rate in requests per second.
	// Zero or negative disables throttling.
	Rate float64
}

// DefaultConfig returns the default client settings.
func DefaultConfig() Config {
	return Config{
		Endpoint:    DefaultEndpoint,
		HitsPerPage: DefaultHitsPerPage,
		Timeout:     DefaultTimeout,
		Rate:        DefaultRate,
	}
}

// normalise fills zero values with defaults and clamps the page size.
func (c Config) normalise() Config {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.HitsPerPage <= 0 {
		c.HitsPerPage = DefaultHitsPerPage
	}
	if c.HitsPerPage > MaxHitsPerPage {
		c.HitsPerPage = MaxHitsPerPage
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
