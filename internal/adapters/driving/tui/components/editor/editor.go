// Package editor provides the netlist text editor component for the TUI.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// gutterMarker is the glyph drawn beside a line carrying diagnostics.
const gutterMarker = "▌"

// NetlistEditor wraps a bubbles textarea with decoration tracking.
// Decorations are replaced as a whole set on every accepted validation
// outcome; they are never edited incrementally.
type NetlistEditor struct {
	textarea    textarea.Model
	styles      *styles.Styles
	decorations []domain.Decoration
	width       int
	height      int
}

// NewNetlistEditor creates a new netlist editor component.
func NewNetlistEditor(s *styles.Styles) *NetlistEditor {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = `{"components": [], "nets": []}`
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.Focus()

	return &NetlistEditor{
		textarea: ta,
		styles:   s,
		width:    80,
		height:   20,
	}
}

// Init initialises the editor.
func (e *NetlistEditor) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles editor messages.
func (e *NetlistEditor) Update(msg tea.Msg) (*NetlistEditor, tea.Cmd) {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)
	return e, cmd
}

// View renders the editor with a decoration gutter on its left edge.
// The gutter is omitted while the decoration set is empty so a clean
// document draws exactly the bare textarea.
func (e *NetlistEditor) View() string {
	if len(e.decorations) == 0 {
		return e.textarea.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, e.gutterView(), e.textarea.View())
}

// gutterView renders one marker cell per visible row. The textarea
// keeps the cursor in view, so once the document outgrows the
// viewport the first visible line follows the cursor.
func (e *NetlistEditor) gutterView() string {
	first := 1
	if line := e.CursorLine(); line > e.height {
		first = line - e.height + 1
	}

	rows := make([]string, 0, e.height)
	for i := 0; i < e.height; i++ {
		rows = append(rows, e.gutterCell(first+i))
	}
	return strings.Join(rows, "\n")
}

// gutterCell renders the marker for one 1-based line. Errors win over
// warnings when both cover the line.
func (e *NetlistEditor) gutterCell(line int) string {
	decorations := e.DecorationsAt(line)
	if len(decorations) == 0 {
		return " "
	}

	severity := domain.SeverityWarning
	for _, dec := range decorations {
		if dec.Severity == domain.SeverityError {
			severity = domain.SeverityError
			break
		}
	}

	colour := e.styles.Theme().Warning
	if severity == domain.SeverityError {
		colour = e.styles.Theme().Error
	}
	return e.styles.GutterMark.Foreground(colour).Render(gutterMarker)
}

// Value returns the current document text.
func (e *NetlistEditor) Value() string {
	return e.textarea.Value()
}

// SetValue replaces the document text.
func (e *NetlistEditor) SetValue(value string) {
	e.textarea.SetValue(value)
}

// Focus sets focus on the editor.
func (e *NetlistEditor) Focus() tea.Cmd {
	return e.textarea.Focus()
}

// Blur removes focus from the editor.
func (e *NetlistEditor) Blur() {
	e.textarea.Blur()
}

// Focused returns whether the editor is focused.
func (e *NetlistEditor) Focused() bool {
	return e.textarea.Focused()
}

// CursorLine returns the 1-based line the cursor is on.
func (e *NetlistEditor) CursorLine() int {
	return e.textarea.Line() + 1
}

// MoveCursor places the cursor at a 1-based line and column.
// Out-of-range positions are clamped by the underlying textarea.
func (e *NetlistEditor) MoveCursor(position domain.CursorPosition) {
	for e.textarea.Line() > 0 {
		e.textarea.CursorUp()
	}
	e.textarea.SetCursor(0)
	for i := 1; i < position.Line; i++ {
		e.textarea.CursorDown()
	}
	e.textarea.SetCursor(position.Column - 1)
}

// SetDecorations replaces the decoration set.
func (e *NetlistEditor) SetDecorations(decorations []domain.Decoration) {
	e.decorations = decorations
}

// Decorations returns the current decoration set.
func (e *NetlistEditor) Decorations() []domain.Decoration {
	return e.decorations
}

// DecorationsAt returns the decorations covering a 1-based line.
func (e *NetlistEditor) DecorationsAt(line int) []domain.Decoration {
	var out []domain.Decoration
	for _, dec := range e.decorations {
		if dec.StartLine <= line && line <= dec.EndLine {
			out = append(out, dec)
		}
	}
	return out
}

// SetDimensions sets the editor dimensions.
func (e *NetlistEditor) SetDimensions(width, height int) {
	e.width = width
	e.height = height
	e.textarea.SetWidth(width)
	e.textarea.SetHeight(height)
}
