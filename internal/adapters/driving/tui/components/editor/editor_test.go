package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

func TestEditorSetAndGetValue(t *testing.T) {
	e := NewNetlistEditor(nil)

	e.SetValue(`{"components": [], "nets": []}`)
	assert.Equal(t, `{"components": [], "nets": []}`, e.Value())
}

func TestEditorMoveCursor(t *testing.T) {
	e := NewNetlistEditor(nil)
	e.SetDimensions(80, 10)
	e.SetValue("line one\nline two\nline three")

	e.MoveCursor(domain.CursorPosition{Line: 3, Column: 6})
	assert.Equal(t, 3, e.CursorLine())

	e.MoveCursor(domain.CursorPosition{Line: 1, Column: 1})
	assert.Equal(t, 1, e.CursorLine())
}

func TestEditorDecorationsReplacedAsSet(t *testing.T) {
	e := NewNetlistEditor(nil)

	first := []domain.Decoration{
		{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 5, Severity: domain.SeverityError},
		{StartLine: 2, StartColumn: 3, EndLine: 4, EndColumn: 2, Severity: domain.SeverityWarning},
	}
	e.SetDecorations(first)
	require.Len(t, e.Decorations(), 2)

	// A new outcome replaces the whole set.
	e.SetDecorations(nil)
	assert.Empty(t, e.Decorations())
}

func TestEditorDecorationsAt(t *testing.T) {
	e := NewNetlistEditor(nil)
	e.SetDecorations([]domain.Decoration{
		{StartLine: 2, StartColumn: 1, EndLine: 4, EndColumn: 1, Severity: domain.SeverityError},
		{StartLine: 3, StartColumn: 1, EndLine: 3, EndColumn: 9, Severity: domain.SeverityWarning},
	})

	assert.Len(t, e.DecorationsAt(3), 2)
	assert.Len(t, e.DecorationsAt(2), 1)
	assert.Empty(t, e.DecorationsAt(5))
}

func TestEditorView_CleanDocumentHasNoGutter(t *testing.T) {
	e := NewNetlistEditor(nil)
	e.SetDimensions(40, 5)
	e.SetValue("line one\nline two")

	assert.NotContains(t, e.View(), gutterMarker)
}

func TestEditorView_GutterMarksDecoratedLines(t *testing.T) {
	e := NewNetlistEditor(nil)
	e.SetDimensions(40, 5)
	e.SetValue("line one\nline two\nline three")
	e.SetDecorations([]domain.Decoration{
		{StartLine: 2, StartColumn: 1, EndLine: 2, EndColumn: 9, Severity: domain.SeverityError},
	})

	rows := strings.Split(e.View(), "\n")
	require.GreaterOrEqual(t, len(rows), 3)
	assert.NotContains(t, rows[0], gutterMarker)
	assert.Contains(t, rows[1], gutterMarker)
	assert.NotContains(t, rows[2], gutterMarker)
}

func TestEditorView_GutterSpansMultiLineDecoration(t *testing.T) {
	e := NewNetlistEditor(nil)
	e.SetDimensions(40, 5)
	e.SetValue("a\nb\nc\nd")
	e.SetDecorations([]domain.Decoration{
		{StartLine: 1, StartColumn: 1, EndLine: 3, EndColumn: 1, Severity: domain.SeverityWarning},
	})

	rows := strings.Split(e.View(), "\n")
	require.GreaterOrEqual(t, len(rows), 4)
	for _, row := range rows[:3] {
		assert.Contains(t, row, gutterMarker)
	}
	assert.NotContains(t, rows[3], gutterMarker)
}
