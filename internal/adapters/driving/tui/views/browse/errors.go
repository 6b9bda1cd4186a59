package browse

import "errors"

// Error definitions for the browse view.
var (
	// ErrNoBrowser indicates that no list browser was provided.
	ErrNoBrowser = errors.New("list browser is required")
)
