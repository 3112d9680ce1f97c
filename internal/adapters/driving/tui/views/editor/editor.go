// Package editor provides the live-validation editor view for the TUI.
//
// The view owns the timing half of the session protocol: every text
// change arms a debounce tick carrying the controller's token, and only
// a tick whose token survives to the end of the quiet period dispatches
// a validation call. Outcomes flow back as ValidationCompleted messages;
// stale outcomes are discarded inside the controller and never reach
// the view.
package editor

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editorcomp "github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/components/editor"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/components/diaglist"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driving"
)

// View represents the editor view with diagnostics panel and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	editor    *editorcomp.NetlistEditor
	diaglist  *diaglist.DiagList
	statusbar *status.Bar

	session    driving.SessionController
	decoration driving.DecorationService
	submission driving.SubmissionService
	ctx        context.Context

	width       int
	height      int
	ready       bool
	focusEditor bool // true = editing, false = navigating diagnostics
	lastText    string
	snapshot    domain.SessionSnapshot
}

// NewView creates a new editor view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	session driving.SessionController,
	decoration driving.DecorationService,
	submission driving.SubmissionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		editor:      editorcomp.NewNetlistEditor(s),
		diaglist:    diaglist.NewDiagList(s),
		statusbar:   status.NewBar(s, km),
		session:     session,
		decoration:  decoration,
		submission:  submission,
		ctx:         context.Background(),
		width:       80,
		height:      24,
		focusEditor: true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.editor.Init()
}

// Update handles messages for the editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DebounceFired:
		req, ok := v.session.DebounceElapsed(msg.Token)
		if !ok {
			// A newer edit superseded this window.
			return v, nil
		}
		return v, v.validateCmd(req)

	case messages.ValidationCompleted:
		v.applySnapshot(msg.Snapshot)
		return v, nil

	case messages.NavigateTo:
		v.editor.MoveCursor(msg.Position)
		v.focusEditor = true
		return v, v.editor.Focus()

	case messages.SubmissionRecorded:
		if msg.Err != nil {
			v.statusbar.SetMessage(msg.Err.Error())
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg routes key input between the editor and the panel.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.ToggleFocus) {
		v.focusEditor = !v.focusEditor
		if v.focusEditor {
			return v, v.editor.Focus()
		}
		v.editor.Blur()
		return v, nil
	}

	if keymap.Matches(keyStr, v.keymap.ShowGraph) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewGraph}
		}
	}

	if keymap.Matches(keyStr, v.keymap.Record) {
		return v, v.recordCmd()
	}

	if v.focusEditor {
		return v.handleEditorKey(msg)
	}
	return v.handleDiagnosticsKey(msg)
}

// handleEditorKey forwards input to the textarea and arms a debounce
// window when the text actually changed.
func (v *View) handleEditorKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	if text := v.editor.Value(); text != v.lastText {
		v.lastText = text
		token := v.session.TextChanged(text)
		v.statusbar.SetState(status.StatePending)
		cmds = append(cmds, v.debounceCmd(token))
	}

	return v, tea.Batch(cmds...)
}

// handleDiagnosticsKey navigates the diagnostics panel.
func (v *View) handleDiagnosticsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		v.focusEditor = true
		return v, v.editor.Focus()
	}

	if msg.Type == tea.KeyEnter {
		selected := v.diaglist.Selected()
		if selected == nil {
			return v, nil
		}
		target := v.decoration.ResolveNavigationTarget(*selected)
		if target == nil {
			// Whole-document diagnostic: nowhere to jump.
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.NavigateTo{Position: *target}
		}
	}

	v.diaglist, _ = v.diaglist.Update(msg)
	return v, nil
}

// debounceCmd arms the quiet-period timer for a text-change token.
func (v *View) debounceCmd(token domain.DebounceToken) tea.Cmd {
	return tea.Tick(v.session.DebounceWindow(), func(time.Time) tea.Msg {
		return messages.DebounceFired{Token: token}
	})
}

// validateCmd performs the remote call off the update loop. The
// staleness guard runs in Accept; a discarded outcome produces no
// message at all.
func (v *View) validateCmd(req domain.ValidationRequest) tea.Cmd {
	return func() tea.Msg {
		outcome := v.session.Validate(v.ctx, req)
		snapshot, ok := v.session.Accept(outcome)
		if !ok {
			return nil
		}
		return messages.ValidationCompleted{Snapshot: snapshot}
	}
}

// recordCmd saves the current session to history.
func (v *View) recordCmd() tea.Cmd {
	if v.submission == nil {
		return nil
	}
	snapshot := v.session.Snapshot()
	return func() tea.Msg {
		sub, err := v.submission.Record(v.ctx, snapshot.RawText, "", snapshot.Netlist, snapshot.Result)
		return messages.SubmissionRecorded{Submission: sub, Err: err}
	}
}

// applySnapshot publishes an accepted outcome into the widgets.
func (v *View) applySnapshot(snapshot domain.SessionSnapshot) {
	v.snapshot = snapshot

	var diagnostics []domain.ValidationError
	if snapshot.Result != nil {
		diagnostics = snapshot.Result.Diagnostics()
	}

	v.editor.SetDecorations(v.decoration.BuildDecorations(diagnostics))
	v.diaglist.SetDiagnostics(diagnostics)

	switch {
	case snapshot.State == domain.StateFailed:
		v.statusbar.SetState(status.StateFailed)
		if len(diagnostics) > 0 {
			v.statusbar.SetMessage(diagnostics[0].Message)
		}
	case snapshot.Result == nil:
		v.statusbar.SetState(status.StateIdle)
	case snapshot.Result.IsValid:
		v.statusbar.SetState(status.StateValid)
		v.statusbar.SetCounts(0, len(snapshot.Result.Warnings))
	default:
		v.statusbar.SetState(status.StateInvalid)
		v.statusbar.SetCounts(len(snapshot.Result.Errors), len(snapshot.Result.Warnings))
	}
}

// LoadText replaces the document, as when loading a history entry.
// It arms a debounce window exactly like typing would.
func (v *View) LoadText(text string) tea.Cmd {
	v.editor.SetValue(text)
	v.lastText = text
	token := v.session.TextChanged(text)
	v.statusbar.SetState(status.StatePending)
	return v.debounceCmd(token)
}

// View renders the editor with diagnostics panel and status bar.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	title := v.styles.Title.Render("Netlist Editor")

	editorPane := v.styles.Border.Render(v.editor.View())
	diagPane := v.styles.Border.Width(v.width - 4).Render(v.diaglist.View())

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(editorPane)
	b.WriteString("\n")
	b.WriteString(diagPane)
	b.WriteString("\n")
	b.WriteString(v.statusbar.View())

	return lipgloss.NewStyle().Width(v.width).Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	editorHeight := height - 12
	if editorHeight < 5 {
		editorHeight = 5
	}
	v.editor.SetDimensions(width-4, editorHeight)
	v.diaglist.SetDimensions(width-4, 7)
	v.statusbar.SetWidth(width)
}

// Snapshot returns the last accepted session snapshot.
func (v *View) Snapshot() domain.SessionSnapshot {
	return v.snapshot
}

// Text returns the current document text.
func (v *View) Text() string {
	return v.editor.Value()
}

// FocusedOnEditor reports whether input goes to the textarea.
func (v *View) FocusedOnEditor() bool {
	return v.focusEditor
}

// Diagnostics returns the displayed diagnostics.
func (v *View) Diagnostics() []domain.ValidationError {
	return v.diaglist.Diagnostics()
}
