package tui

import "errors"

// ErrMissingBrowser is returned when the list browser is not provided.
var ErrMissingBrowser = errors.New("tui: list browser is required")
