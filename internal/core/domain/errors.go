package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrParseFailure indicates text does not structurally parse into a
	// Netlist. Recovered locally: it never blocks validation dispatch,
	// because the rule engine may still produce syntax-level
	// diagnostics for unparseable text.
	ErrParseFailure = errors.New("parse failure")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrHistoryUnavailable indicates no submission history store is
	// configured.
	ErrHistoryUnavailable = errors.New("history unavailable")

	// ErrValidationUnavailable indicates the remote validation service
	// is not configured.
	ErrValidationUnavailable = errors.New("validation service unavailable")
)
