package github

import (
	"strings"
	"time"
)

const (
	// DefaultPerPage is the page size requested per search.
	DefaultPerPage = 20

	// MaxPerPage is the largest page size the search API honours.
	MaxPerPage = 100

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRate is the proactive request rate. Authenticated search
	// allows 30 requests per minute.
	DefaultRate = 0.5
)

// Config holds the client settings.
type Config struct {
	// Token is a personal access or OAuth token. Empty searches
	// anonymously with a lower quota.
	Token string

	// BaseURL overrides the API root, e.g. for GitHub Enterprise.
	// Empty uses https://api.github.com/.
	BaseURL string

	// PerPage is the number of results requested.
	PerPage int

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// Rate is the maximum request rate in requests per second.
	// Zero or negative disables proactive throttling.
	Rate float64
}

// normalise fills zero values with defaults and clamps the page size.
func (c Config) normalise() Config {
	c.Token = strings.TrimSpace(c.Token)
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL != "" && !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.PerPage <= 0 {
		c.PerPage = DefaultPerPage
	}
	if c.PerPage > MaxPerPage {
		c.PerPage = MaxPerPage
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
