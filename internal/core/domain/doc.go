// Package domain defines the core business entities for hitlist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Item: A ranked entry returned by an item source
//   - SortKey / SortState: The column ordering selected by the user
//   - FetchState: The lifecycle of the latest search request
//   - Intent: A discrete user or completion event consumed by the core
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
