// Package mcp exposes the result browser to AI assistants over the
// Model Context Protocol.
package mcp

import "errors"

// ErrMissingBrowser is returned when the browser is not provided.
var ErrMissingBrowser = errors.New("mcp: browser is required")
