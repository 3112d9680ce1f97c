// Package graph provides the connectivity graph view for the TUI.
package graph

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driving"
)

// View renders the derived connectivity graph of the open document.
type View struct {
	styles *styles.Styles
	graph  driving.GraphService

	current domain.Graph
	scroll  int
	width   int
	height  int
	ready   bool
}

// NewView creates a new graph view.
func NewView(s *styles.Styles, graphService driving.GraphService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:  s,
		graph:   graphService,
		current: domain.EmptyGraph(),
		width:   80,
		height:  24,
	}
}

// Init initialises the graph view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetNetlist re-derives the graph from a netlist. Derivation is pure,
// so this is safe to call on every snapshot.
func (v *View) SetNetlist(netlist *domain.Netlist) {
	v.current = v.graph.Derive(netlist)
	v.scroll = 0
}

// Graph returns the currently displayed graph.
func (v *View) Graph() domain.Graph {
	return v.current
}

// Update handles messages for the graph view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewEditor}
			}
		case "up", "k":
			if v.scroll > 0 {
				v.scroll--
			}
		case "down", "j":
			if v.scroll < v.maxScroll() {
				v.scroll++
			}
		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the graph as node and edge listings.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Connectivity Graph"))
	b.WriteString("\n\n")

	if v.current.Empty() {
		b.WriteString(v.styles.Muted.Render("No netlist to derive from"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("esc: editor | q: quit"))
		return b.String()
	}

	summary := fmt.Sprintf("%d components, %d connections", len(v.current.Nodes), len(v.current.Edges))
	b.WriteString(v.styles.Subtitle.Render(summary))
	b.WriteString("\n\n")

	lines := v.contentLines()
	visible := v.height - 8
	if visible < 1 {
		visible = 1
	}
	end := v.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[v.scroll:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("↑/↓: scroll | esc: editor | q: quit"))
	return b.String()
}

// contentLines builds the scrollable node and edge listing.
func (v *View) contentLines() []string {
	lines := make([]string, 0, len(v.current.Nodes)+len(v.current.Edges)+3)

	lines = append(lines, v.styles.Subtitle.Render("Nodes"))
	for _, node := range v.current.Nodes {
		label := node.ID
		if node.Type != "" {
			label = fmt.Sprintf("%s (%s)", node.ID, node.Type)
		}
		if node.Value != "" {
			label += " = " + node.Value
		}
		lines = append(lines, v.styles.Normal.Render("  "+label))
	}

	lines = append(lines, "", v.styles.Subtitle.Render("Edges"))
	for _, edge := range v.current.Edges {
		lines = append(lines, v.styles.Normal.Render(
			fmt.Sprintf("  %s -- %s  via %s", edge.Source, edge.Target, edge.Net)))
	}

	return lines
}

// maxScroll returns the largest useful scroll offset.
func (v *View) maxScroll() int {
	visible := v.height - 8
	if visible < 1 {
		visible = 1
	}
	max := len(v.contentLines()) - visible
	if max < 0 {
		return 0
	}
	return max
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
