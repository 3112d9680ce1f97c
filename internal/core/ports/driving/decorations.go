package driving

import (
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// DecorationService maps diagnostics onto text coordinates for the
// editor sink.
type DecorationService interface {
	// BuildDecorations produces the complete decoration set for the
	// given diagnostics. Every call replaces the previous set
	// atomically; incremental updates are not supported. Diagnostics
	// without an anchorable location are dropped, never an error.
	BuildDecorations(diagnostics []domain.ValidationError) []domain.Decoration

	// ResolveNavigationTarget returns the cursor position for a
	// diagnostic, or nil when the diagnostic has no anchorable
	// location. It never returns an error.
	ResolveNavigationTarget(diagnostic domain.ValidationError) *domain.CursorPosition
}
