package driven

import (
	"context"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// ValidationService is the remote rule engine consumed as a black box.
//
// Implementations resolve the engine's failure convention exactly once
// at this boundary: a call that "fails" but carries a validation_result
// payload (the engine's way of saying "your document is invalid") must
// be returned as a successful outcome carrying that result. Only
// transport-level failures with no diagnostic payload return an error.
//
// Calls must have a finite timeout and be safe to repeat on every
// debounced edit.
type ValidationService interface {
	// ValidateText validates raw document text. The text is sent even
	// when it does not structurally parse, because the engine may
	// produce syntax-level diagnostics.
	ValidateText(ctx context.Context, rawText string) (*domain.ValidationResult, error)

	// ValidateNetlist validates an already parsed netlist.
	ValidateNetlist(ctx context.Context, netlist *domain.Netlist) (*domain.ValidationResult, error)

	// Ping checks the service is reachable without validating anything.
	Ping(ctx context.Context) error
}

// NetlistParser turns raw document text into a Netlist.
//
// On failure implementations return an error wrapping
// domain.ErrParseFailure and no partial netlist. They never panic on
// malformed input.
type NetlistParser interface {
	Parse(rawText string) (*domain.Netlist, error)
}
