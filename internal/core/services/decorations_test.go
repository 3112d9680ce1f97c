package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

func anchoredDiagnostic(startLine, startCol, endLine, endCol int) domain.ValidationError {
	return domain.ValidationError{
		ErrorType: domain.TypeBlankComponentName,
		Message:   "Component names cannot be blank",
		Severity:  domain.SeverityError,
		Location: &domain.LocationInfo{
			Key:                      "name",
			Kind:                     domain.KindString,
			StartCharacterNumber:     1,
			StartLineNumber:          startLine,
			StartLineCharacterNumber: startCol,
			EndCharacterNumber:       10,
			EndLineNumber:            endLine,
			EndLineCharacterNumber:   endCol,
		},
	}
}

func TestBuildDecorations_AnchoredDiagnostic(t *testing.T) {
	index := NewLocationIndex()

	decorations := index.BuildDecorations([]domain.ValidationError{
		anchoredDiagnostic(3, 5, 3, 12),
	})

	require.Len(t, decorations, 1)
	assert.Equal(t, 3, decorations[0].StartLine)
	assert.Equal(t, 5, decorations[0].StartColumn)
	assert.Equal(t, 3, decorations[0].EndLine)
	assert.Equal(t, 12, decorations[0].EndColumn)
	assert.Equal(t, domain.SeverityError, decorations[0].Severity)
	assert.Equal(t, "Component names cannot be blank", decorations[0].Message)
	assert.Equal(t, "blank_component_name", decorations[0].Rule)
}

func TestBuildDecorations_NilLocationOmitted(t *testing.T) {
	index := NewLocationIndex()

	decorations := index.BuildDecorations([]domain.ValidationError{
		{
			ErrorType: domain.TypeMissingGround,
			Message:   "No ground nets found",
			Severity:  domain.SeverityError,
		},
	})

	assert.Empty(t, decorations)
}

func TestBuildDecorations_InvalidSpansDropped(t *testing.T) {
	tests := []struct {
		name string
		diag domain.ValidationError
	}{
		{"start line after end line", anchoredDiagnostic(5, 1, 3, 1)},
		{"start column after end column on same line", anchoredDiagnostic(3, 12, 3, 5)},
		{"zero start line", anchoredDiagnostic(0, 5, 3, 12)},
		{"negative start column", anchoredDiagnostic(3, -1, 3, 12)},
		{"zero end line", anchoredDiagnostic(3, 5, 0, 12)},
		{"zero end column", anchoredDiagnostic(3, 5, 3, 0)},
	}

	index := NewLocationIndex()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, index.BuildDecorations([]domain.ValidationError{tt.diag}))
		})
	}
}

func TestBuildDecorations_OverlappingSpansRetained(t *testing.T) {
	index := NewLocationIndex()

	decorations := index.BuildDecorations([]domain.ValidationError{
		anchoredDiagnostic(3, 5, 3, 20),
		anchoredDiagnostic(3, 10, 3, 15),
	})

	// No merging or prioritising: the rendering sink layers overlaps.
	assert.Len(t, decorations, 2)
}

func TestBuildDecorations_WarningsAndErrorsSameShape(t *testing.T) {
	warning := anchoredDiagnostic(1, 1, 1, 4)
	warning.Severity = domain.SeverityWarning

	decorations := NewLocationIndex().BuildDecorations([]domain.ValidationError{
		anchoredDiagnostic(1, 1, 1, 4),
		warning,
	})

	require.Len(t, decorations, 2)
	assert.Equal(t, domain.SeverityError, decorations[0].Severity)
	assert.Equal(t, domain.SeverityWarning, decorations[1].Severity)
}

func TestBuildDecorations_ReplacesWholeSet(t *testing.T) {
	index := NewLocationIndex()

	first := index.BuildDecorations([]domain.ValidationError{
		anchoredDiagnostic(1, 1, 1, 4),
		anchoredDiagnostic(2, 1, 2, 4),
	})
	second := index.BuildDecorations(nil)

	assert.Len(t, first, 2)
	assert.Empty(t, second)
	assert.NotNil(t, second)
}

func TestResolveNavigationTarget(t *testing.T) {
	index := NewLocationIndex()

	target := index.ResolveNavigationTarget(anchoredDiagnostic(3, 5, 4, 2))

	require.NotNil(t, target)
	assert.Equal(t, 3, target.Line)
	assert.Equal(t, 5, target.Column)
}

func TestResolveNavigationTarget_NilLocation(t *testing.T) {
	index := NewLocationIndex()

	target := index.ResolveNavigationTarget(domain.ValidationError{
		ErrorType: domain.TypeMissingGround,
		Message:   "No ground nets found",
		Severity:  domain.SeverityError,
	})

	assert.Nil(t, target)
}

func TestResolveNavigationTarget_InvalidLocation(t *testing.T) {
	index := NewLocationIndex()

	target := index.ResolveNavigationTarget(anchoredDiagnostic(0, 0, 0, 0))

	assert.Nil(t, target)
}
