package cli

import "errors"

var (
	// ErrBrowserNotConfigured indicates no list browser was wired.
	ErrBrowserNotConfigured = errors.New("browser not configured")

	// ErrHistoryNotConfigured indicates no history service was wired.
	ErrHistoryNotConfigured = errors.New("history service not configured")

	// ErrNoTerm indicates a search was requested without a term and no
	// remembered term exists.
	ErrNoTerm = errors.New("no search term given")
)
