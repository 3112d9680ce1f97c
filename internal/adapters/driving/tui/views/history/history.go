// Package history provides the recorded validation runs view for the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driving"
)

// listLimit caps how many runs the view loads at once.
const listLimit = 50

// View lists recorded validation runs and loads them back into the
// editor.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	submission driving.SubmissionService
	ctx        context.Context

	submissions []domain.NetlistSubmission
	selected    int
	err         error
	width       int
	height      int
	ready       bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, km *keymap.KeyMap, submission driving.SubmissionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		submission: submission,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the recorded runs.
func (v *View) Init() tea.Cmd {
	return v.loadCmd()
}

// loadCmd fetches recorded runs from the service.
func (v *View) loadCmd() tea.Cmd {
	if v.submission == nil {
		return func() tea.Msg {
			return messages.HistoryLoaded{Submissions: nil}
		}
	}
	return func() tea.Msg {
		submissions, err := v.submission.List(v.ctx, listLimit)
		return messages.HistoryLoaded{Submissions: submissions, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.HistoryLoaded:
		v.submissions = msg.Submissions
		v.err = msg.Err
		if v.selected >= len(v.submissions) {
			v.selected = 0
		}
		return v, nil

	case messages.SubmissionDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadCmd()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles navigation and selection.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case "down", "j":
		if v.selected < len(v.submissions)-1 {
			v.selected++
		}
		return v, nil

	case "enter":
		if v.selected < len(v.submissions) {
			submission := v.submissions[v.selected]
			return v, func() tea.Msg {
				return messages.SubmissionSelected{Submission: submission}
			}
		}
		return v, nil

	case "d":
		if v.submission != nil && v.selected < len(v.submissions) {
			id := v.submissions[v.selected].ID
			return v, func() tea.Msg {
				err := v.submission.Delete(v.ctx, id)
				return messages.SubmissionDeleted{ID: id, Err: err}
			}
		}
		return v, nil

	case "q":
		return v, tea.Quit
	}

	return v, nil
}

// View renders the history list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Validation History"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	if len(v.submissions) == 0 {
		b.WriteString(v.styles.Muted.Render("No recorded runs"))
	}

	for i, submission := range v.submissions {
		line := v.renderLine(submission)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("enter: load into editor | d: delete | esc: back | q: quit"))
	return b.String()
}

// renderLine renders one history row.
func (v *View) renderLine(submission domain.NetlistSubmission) string {
	verdict := "?"
	if submission.Result != nil {
		if submission.Result.IsValid {
			verdict = v.styles.Success.Render("valid")
		} else {
			verdict = v.styles.Error.Render(
				fmt.Sprintf("%d errors", len(submission.Result.Errors)))
		}
	}

	name := submission.Filename
	if name == "" {
		name = submission.ID
		if len(name) > 8 {
			name = name[:8]
		}
	}

	return fmt.Sprintf("%s  %s  %s",
		submission.SubmittedAt.Format("2006-01-02 15:04"), name, verdict)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Submissions returns the displayed submissions.
func (v *View) Submissions() []domain.NetlistSubmission {
	return v.submissions
}

// SelectedIndex returns the selected index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
