package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/netwiz-cli/internal/logger"
)

var editWatch bool

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the interactive editor",
	Long: `Open the interactive terminal editor with live validation.

The document revalidates as you type, after a short debounce. Diagnostics
appear beside the editor with gutter markers; press tab to move between
the editor and the diagnostics list, and enter to jump to a diagnostic's
location.

With a file argument the document is loaded from disk. --watch reloads
the buffer whenever the file changes outside the editor.

Controls:
  tab      - Switch editor / diagnostics focus
  enter    - Jump to the selected diagnostic
  ctrl+g   - Show the connectivity graph
  ctrl+s   - Save the current run to history
  esc      - Back
  q        - Quit (from menu)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().BoolVarP(&editWatch, "watch", "w", false, "reload the buffer when the file changes on disk")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(sessionController, graphService, decorationService)
	ports.Submission = submissionService

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	var filename string
	if len(args) > 0 {
		filename = args[0]
		data, readErr := os.ReadFile(filename)
		if readErr != nil {
			return fmt.Errorf("reading %s: %w", filename, readErr)
		}
		go func() {
			p.Send(messages.ViewChanged{View: messages.ViewEditor})
			p.Send(messages.DocumentReloaded{Text: string(data)})
		}()
	}

	if editWatch {
		if filename == "" {
			return fmt.Errorf("--watch requires a file argument")
		}
		stop, watchErr := watchFile(filename, p)
		if watchErr != nil {
			return fmt.Errorf("watching %s: %w", filename, watchErr)
		}
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// watchFile sends DocumentReloaded to the program whenever the file is
// written on disk. Editors that replace the file on save emit Create or
// Rename on the path, so the path is re-added after such events.
func watchFile(filename string, p *tea.Program) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: watching the file directly breaks when the
	// editor renames a temp file over it.
	dir := filepath.Dir(filename)
	if err := watcher.Add(dir); err != nil {
		watcher.Close() //nolint:errcheck
		return nil, err
	}

	target, err := filepath.Abs(filename)
	if err != nil {
		watcher.Close() //nolint:errcheck
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				path, absErr := filepath.Abs(event.Name)
				if absErr != nil || path != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				data, readErr := os.ReadFile(filename)
				if readErr != nil {
					logger.Warn("reload failed: %v", readErr)
					continue
				}
				p.Send(messages.DocumentReloaded{Text: string(data)})
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("file watch: %v", watchErr)
			}
		}
	}()

	return func() { watcher.Close() }, nil //nolint:errcheck
}
