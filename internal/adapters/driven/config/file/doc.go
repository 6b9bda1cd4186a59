// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - StateStore: TOML-based UI state (last search term, last sort key)
package file
