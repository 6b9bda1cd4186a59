package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSortKey indicates a sort key outside the enumerated set.
	ErrUnknownSortKey = errors.New("unknown sort key")

	// Fetch Errors.

	// ErrTransport indicates the request to the item source failed,
	// either at the network level or with a non-success status.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse indicates the item source answered but the
	// payload did not carry a hits list.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrSourceUnavailable indicates no item source is configured.
	ErrSourceUnavailable = errors.New("item source unavailable")

	// ErrHistoryUnavailable indicates no history store is configured.
	ErrHistoryUnavailable = errors.New("history store unavailable")
)
