// Package diaglist provides a navigable diagnostics panel for the TUI.
package diaglist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// DiagList displays validation diagnostics in a navigable list.
type DiagList struct {
	diagnostics []domain.ValidationError
	selected    int
	styles      *styles.Styles
	width       int
	height      int
}

// NewDiagList creates a new diagnostics list component.
func NewDiagList(s *styles.Styles) *DiagList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &DiagList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the diagnostics list.
func (d *DiagList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (d *DiagList) Update(msg tea.Msg) (*DiagList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			d.MoveUp()
		case tea.KeyDown:
			d.MoveDown()
		default:
		}
		switch msg.String() {
		case "k":
			d.MoveUp()
		case "j":
			d.MoveDown()
		}
	}
	return d, nil
}

// View renders the diagnostics list.
func (d *DiagList) View() string {
	if len(d.diagnostics) == 0 {
		return d.styles.Muted.Render("No diagnostics")
	}

	lines := make([]string, 0, len(d.diagnostics)+2)
	header := d.styles.Subtitle.Render(fmt.Sprintf("Diagnostics (%d)", len(d.diagnostics)))
	lines = append(lines, header, "")

	visibleCount := d.height - 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if d.selected >= visibleCount {
		start = d.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(d.diagnostics) {
		end = len(d.diagnostics)
	}

	for i := start; i < end; i++ {
		lines = append(lines, d.renderLine(i))
	}

	return strings.Join(lines, "\n")
}

// renderLine renders one diagnostic row.
func (d *DiagList) renderLine(i int) string {
	diag := d.diagnostics[i]

	marker := "E"
	if diag.Severity == domain.SeverityWarning {
		marker = "W"
	}

	loc := ""
	if diag.Location != nil && diag.Location.Anchorable() {
		loc = fmt.Sprintf("%d:%d ", diag.Location.StartLineNumber, diag.Location.StartLineCharacterNumber)
	}

	text := fmt.Sprintf("%s %s[%s] %s", marker, loc, diag.ErrorType.Name, diag.Message)
	if i == d.selected {
		return d.styles.Selected.Render("> " + text)
	}
	return d.styles.SeverityStyle(string(diag.Severity)).Render("  " + text)
}

// SetDiagnostics replaces the displayed diagnostics. The selection is
// clamped into the new range.
func (d *DiagList) SetDiagnostics(diagnostics []domain.ValidationError) {
	d.diagnostics = diagnostics
	if d.selected >= len(diagnostics) {
		d.selected = 0
	}
}

// Diagnostics returns the displayed diagnostics.
func (d *DiagList) Diagnostics() []domain.ValidationError {
	return d.diagnostics
}

// Selected returns the currently selected diagnostic, or nil.
func (d *DiagList) Selected() *domain.ValidationError {
	if len(d.diagnostics) == 0 || d.selected < 0 || d.selected >= len(d.diagnostics) {
		return nil
	}
	return &d.diagnostics[d.selected]
}

// SelectedIndex returns the selected index.
func (d *DiagList) SelectedIndex() int {
	return d.selected
}

// MoveUp moves the selection up.
func (d *DiagList) MoveUp() {
	if d.selected > 0 {
		d.selected--
	}
}

// MoveDown moves the selection down.
func (d *DiagList) MoveDown() {
	if d.selected < len(d.diagnostics)-1 {
		d.selected++
	}
}

// SetDimensions sets the list dimensions.
func (d *DiagList) SetDimensions(width, height int) {
	d.width = width
	d.height = height
}
