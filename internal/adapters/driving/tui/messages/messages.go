// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewEditor is the netlist editor with live validation feedback.
	ViewEditor
	// ViewGraph is the derived connectivity graph view.
	ViewGraph
	// ViewHistory lists recorded validation runs.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewEditor:
		return "editor"
	case ViewGraph:
		return "graph"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// DebounceFired is sent when a debounce timer elapses. The token
// identifies the text-change burst that armed the timer; the session
// controller decides whether it is still current.
type DebounceFired struct {
	Token domain.DebounceToken
}

// ValidationCompleted carries an accepted validation outcome back to
// the model. Stale outcomes are discarded before this message is sent.
type ValidationCompleted struct {
	Snapshot domain.SessionSnapshot
}

// NavigateTo moves the editor cursor to a diagnostic's location.
type NavigateTo struct {
	Position domain.CursorPosition
}

// HistoryLoaded carries recorded validation runs from the service.
type HistoryLoaded struct {
	Submissions []domain.NetlistSubmission
	Err         error
}

// SubmissionSelected signals a recorded run was chosen for loading
// into the editor.
type SubmissionSelected struct {
	Submission domain.NetlistSubmission
}

// DocumentReloaded signals the open document changed outside the
// editor (file watch) and carries the new text.
type DocumentReloaded struct {
	Text string
}

// SubmissionRecorded signals the current session was saved to history.
type SubmissionRecorded struct {
	Submission *domain.NetlistSubmission
	Err        error
}

// SubmissionDeleted signals a recorded run was removed.
type SubmissionDeleted struct {
	ID  string
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
