package services

import (
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driving"
	"github.com/custodia-labs/netwiz-cli/internal/logger"
)

// Ensure LocationIndex implements the interface.
var _ driving.DecorationService = (*LocationIndex)(nil)

// LocationIndex maps hierarchical diagnostic locations onto linear
// text coordinates for the editor sink. It trusts the producer's
// pre-resolved line/column fields and never recomputes them from raw
// character offsets.
type LocationIndex struct{}

// NewLocationIndex creates a new location index.
func NewLocationIndex() *LocationIndex {
	return &LocationIndex{}
}

// BuildDecorations produces the full decoration set for the given
// diagnostics. Diagnostics without a location, or with a location
// violating the ordering invariant or carrying non-positive line or
// column numbers, are dropped: such values mark an un-anchorable
// diagnostic, not a fault. Overlapping spans are all retained; the
// rendering sink layers them.
func (x *LocationIndex) BuildDecorations(diagnostics []domain.ValidationError) []domain.Decoration {
	decorations := make([]domain.Decoration, 0, len(diagnostics))
	for i := range diagnostics {
		d := &diagnostics[i]
		if d.Location == nil {
			continue
		}
		if !d.Location.Anchorable() {
			logger.Debug("Dropping un-anchorable diagnostic: rule=%s span=%d:%d-%d:%d",
				d.ErrorType.Name,
				d.Location.StartLineNumber, d.Location.StartLineCharacterNumber,
				d.Location.EndLineNumber, d.Location.EndLineCharacterNumber)
			continue
		}
		decorations = append(decorations, domain.Decoration{
			StartLine:   d.Location.StartLineNumber,
			StartColumn: d.Location.StartLineCharacterNumber,
			EndLine:     d.Location.EndLineNumber,
			EndColumn:   d.Location.EndLineCharacterNumber,
			Severity:    d.Severity,
			Message:     d.Message,
			Rule:        d.ErrorType.Name,
		})
	}
	return decorations
}

// ResolveNavigationTarget returns the cursor position a click on the
// diagnostic should move the editor to, or nil when the diagnostic
// cannot be anchored. Callers disable navigation on nil instead of
// failing.
func (x *LocationIndex) ResolveNavigationTarget(diagnostic domain.ValidationError) *domain.CursorPosition {
	loc := diagnostic.Location
	if loc == nil || !loc.Anchorable() {
		return nil
	}
	return &domain.CursorPosition{
		Line:   loc.StartLineNumber,
		Column: loc.StartLineCharacterNumber,
	}
}
