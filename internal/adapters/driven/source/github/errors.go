package github

import (
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// RateLimitError represents a rate limit exceeded error with reset time.
// It matches domain.ErrTransport with errors.Is.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// Unwrap returns domain.ErrTransport.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrTransport
}

// APIError represents a GitHub API error response.
// It matches domain.ErrTransport with errors.Is.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap returns domain.ErrTransport.
func (e *APIError) Unwrap() error {
	return domain.ErrTransport
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}
