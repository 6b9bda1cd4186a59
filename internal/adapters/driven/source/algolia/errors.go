package algolia

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/hitlist/internal/core/domain"
)

// StatusError reports a non-success HTTP status from the endpoint.
// It matches domain.ErrTransport with errors.Is.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("algolia: status %d from %s", e.StatusCode, e.URL)
}

// Unwrap returns domain.ErrTransport.
func (e *StatusError) Unwrap() error {
	return domain.ErrTransport
}

// IsRateLimited checks if the error indicates the endpoint throttled us.
func IsRateLimited(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}
