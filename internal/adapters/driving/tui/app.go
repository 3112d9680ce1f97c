package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/styles"
	editorview "github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/views/editor"
	graphview "github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/views/graph"
	historyview "github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/views/menu"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// menuView is the main navigation menu.
	menuView *menu.View

	// editorView is the live-validation editor.
	editorView *editorview.View

	// graphView is the derived connectivity graph view.
	graphView *graphview.View

	// historyView lists recorded validation runs.
	historyView *historyview.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s),
		editorView:  editorview.NewView(s, km, ports.Session, ports.Decoration, ports.Submission),
		graphView:   graphview.NewView(s, ports.Graph),
		historyView: historyview.NewView(s, km, ports.Submission),
		currentView: messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.editorView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("netwiz - Netlist Validation"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.editorView.SetDimensions(msg.Width, msg.Height)
		a.graphView.SetDimensions(msg.Width, msg.Height)
		a.historyView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewEditor:
			a.editorView, cmd = a.editorView.Update(msg)
			return a, cmd

		case messages.ViewGraph:
			a.graphView, cmd = a.graphView.Update(msg)
			return a, cmd

		case messages.ViewHistory:
			a.historyView, cmd = a.historyView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewEditor:
			return a, a.editorView.Init()
		case messages.ViewGraph:
			// Re-derive from the latest accepted snapshot.
			a.graphView.SetNetlist(a.ports.Session.Snapshot().Netlist)
			return a, a.graphView.Init()
		case messages.ViewHistory:
			return a, a.historyView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.ValidationCompleted:
		a.editorView, cmd = a.editorView.Update(msg)
		return a, cmd

	case messages.DebounceFired:
		a.editorView, cmd = a.editorView.Update(msg)
		return a, cmd

	case messages.NavigateTo:
		a.currentView = messages.ViewEditor
		a.editorView, cmd = a.editorView.Update(msg)
		return a, cmd

	case messages.SubmissionSelected:
		// Load a recorded run into the editor and revalidate it.
		a.currentView = messages.ViewEditor
		return a, a.editorView.LoadText(msg.Submission.RawText)

	case messages.DocumentReloaded:
		// External file edit: treated as a text change, debounce and
		// staleness apply as usual.
		return a, a.editorView.LoadText(msg.Text)

	case messages.HistoryLoaded, messages.SubmissionDeleted:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.SubmissionRecorded:
		a.editorView, cmd = a.editorView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewEditor:
		a.editorView, cmd = a.editorView.Update(msg)
	case messages.ViewGraph:
		a.graphView, cmd = a.graphView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewEditor:
		return a.editorView.View()
	case messages.ViewGraph:
		return a.graphView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help screen.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	sections := []struct {
		title string
		lines []string
	}{
		{"Editor", []string{
			"type        edit the netlist document",
			"tab         switch between editor and diagnostics",
			"enter       jump to the selected diagnostic",
			"ctrl+g      show connectivity graph",
			"ctrl+s      save the current run to history",
		}},
		{"History", []string{
			"enter       load a recorded run into the editor",
			"d           delete the selected run",
		}},
		{"Global", []string{
			"esc         back",
			"?           help",
			"q/ctrl+c    quit",
		}},
	}

	for _, section := range sections {
		b.WriteString(a.styles.Subtitle.Render(section.title))
		b.WriteString("\n")
		for _, line := range section.lines {
			b.WriteString(a.styles.Normal.Render("  " + line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("esc: back"))
	return b.String()
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.editorView.SetDimensions(width, height)
	a.graphView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}
