// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/styles"
)

// State represents the current validation state for display.
type State string

const (
	// StateIdle means no validation is scheduled or in flight.
	StateIdle State = "idle"
	// StatePending means a debounce window or validation call is open.
	StatePending State = "pending"
	// StateValid means the latest result found no errors.
	StateValid State = "valid"
	// StateInvalid means the latest result carries diagnostics.
	StateInvalid State = "invalid"
	// StateFailed means the validation service was unreachable.
	StateFailed State = "failed"
)

// Bar displays validation status and keybinding hints.
type Bar struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	state        State
	message      string
	errorCount   int
	warningCount int
	width        int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateIdle,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the validation state.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StatePending:
		return s.styles.Muted.Render("Validating...")
	case StateValid:
		if s.warningCount > 0 {
			return s.styles.Warning.Render(fmt.Sprintf("Valid (%d warnings)", s.warningCount))
		}
		return s.styles.Success.Render("Valid")
	case StateInvalid:
		return s.styles.Error.Render(
			fmt.Sprintf("%d errors, %d warnings", s.errorCount, s.warningCount))
	case StateFailed:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Validation unavailable: %s", s.message))
		}
		return s.styles.Error.Render("Validation unavailable")
	case StateIdle:
		return s.styles.Muted.Render("Ready")
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateInvalid {
		bindings = s.keymap.DiagnosticsHelp()
	} else {
		bindings = s.keymap.EditorHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message shown in the failed state.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetCounts sets the diagnostic counts.
func (s *Bar) SetCounts(errorCount, warningCount int) {
	s.errorCount = errorCount
	s.warningCount = warningCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to the idle state.
func (s *Bar) Clear() {
	s.state = StateIdle
	s.message = ""
	s.errorCount = 0
	s.warningCount = 0
}
