package graph

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/netwiz-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// MockGraphService implements driving.GraphService for testing.
type MockGraphService struct {
	DeriveFunc func(netlist *domain.Netlist) domain.Graph
}

func (m *MockGraphService) Derive(netlist *domain.Netlist) domain.Graph {
	if m.DeriveFunc != nil {
		return m.DeriveFunc(netlist)
	}
	return domain.EmptyGraph()
}

func testGraph() domain.Graph {
	return domain.Graph{
		Nodes: []domain.Node{
			{ID: "R1", Type: domain.ComponentResistor, Value: "10k"},
			{ID: "C1", Type: domain.ComponentCapacitor},
		},
		Edges: []domain.Edge{
			{Source: "C1", Target: "R1", Net: "N1"},
		},
	}
}

func TestGraphViewEmpty(t *testing.T) {
	v := NewView(nil, &MockGraphService{})
	v.SetDimensions(80, 24)

	v.SetNetlist(nil)
	assert.Contains(t, v.View(), "No netlist to derive from")
}

func TestGraphViewRendersNodesAndEdges(t *testing.T) {
	v := NewView(nil, &MockGraphService{
		DeriveFunc: func(*domain.Netlist) domain.Graph { return testGraph() },
	})
	v.SetDimensions(80, 24)
	v.SetNetlist(&domain.Netlist{})

	out := v.View()
	assert.Contains(t, out, "2 components, 1 connections")
	assert.Contains(t, out, "R1 (RESISTOR) = 10k")
	assert.Contains(t, out, "C1 -- R1  via N1")
}

func TestGraphViewEscReturnsToEditor(t *testing.T) {
	v := NewView(nil, &MockGraphService{})
	v.SetDimensions(80, 24)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewEditor, changed.View)
}

func TestGraphViewScrollClamped(t *testing.T) {
	v := NewView(nil, &MockGraphService{
		DeriveFunc: func(*domain.Netlist) domain.Graph { return testGraph() },
	})
	v.SetDimensions(80, 24)
	v.SetNetlist(&domain.Netlist{})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, v.scroll)
}
