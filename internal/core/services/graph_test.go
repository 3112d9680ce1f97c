package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

func testNetlist() *domain.Netlist {
	return &domain.Netlist{
		Components: []domain.Component{
			{Name: "U1", Type: domain.ComponentIC, Value: "3.3V",
				Pins: []domain.Pin{{Number: "1"}, {Number: "2"}}},
			{Name: "R1", Type: domain.ComponentResistor, Value: "10k",
				Pins: []domain.Pin{{Number: "1"}, {Number: "2"}}},
			{Name: "C1", Type: domain.ComponentCapacitor, Value: "100nF",
				Pins: []domain.Pin{{Number: "1"}, {Number: "2"}}},
		},
		Nets: []domain.Net{
			{Name: "VCC", NetType: "power", Connections: []domain.NetConnection{
				{Component: "U1", Pin: "1"},
				{Component: "R1", Pin: "1"},
			}},
		},
	}
}

func TestDerive_NilNetlist(t *testing.T) {
	deriver := NewGraphDeriver()

	graph := deriver.Derive(nil)

	assert.NotNil(t, graph.Nodes)
	assert.NotNil(t, graph.Edges)
	assert.True(t, graph.Empty())
}

func TestDerive_OneNodePerComponent(t *testing.T) {
	deriver := NewGraphDeriver()

	graph := deriver.Derive(testNetlist())

	require.Len(t, graph.Nodes, 3)
	assert.Equal(t, domain.Node{ID: "U1", Type: domain.ComponentIC, Value: "3.3V"}, graph.Nodes[0])
	assert.Equal(t, domain.Node{ID: "R1", Type: domain.ComponentResistor, Value: "10k"}, graph.Nodes[1])
}

func TestDerive_RepeatedComponentCollapses(t *testing.T) {
	// A net touching {A, A, B, C} yields exactly A-B, A-C, B-C.
	netlist := &domain.Netlist{
		Components: []domain.Component{
			{Name: "A"}, {Name: "B"}, {Name: "C"},
		},
		Nets: []domain.Net{
			{Name: "N1", Connections: []domain.NetConnection{
				{Component: "A", Pin: "1"},
				{Component: "A", Pin: "2"},
				{Component: "B", Pin: "1"},
				{Component: "C", Pin: "1"},
			}},
		},
	}

	graph := NewGraphDeriver().Derive(netlist)

	require.Len(t, graph.Edges, 3)
	assert.Equal(t, domain.Edge{Source: "A", Target: "B", Net: "N1"}, graph.Edges[0])
	assert.Equal(t, domain.Edge{Source: "A", Target: "C", Net: "N1"}, graph.Edges[1])
	assert.Equal(t, domain.Edge{Source: "B", Target: "C", Net: "N1"}, graph.Edges[2])
}

func TestDerive_SingleComponentNet(t *testing.T) {
	netlist := &domain.Netlist{
		Components: []domain.Component{{Name: "U1"}},
		Nets: []domain.Net{
			{Name: "SELF", Connections: []domain.NetConnection{
				{Component: "U1", Pin: "1"},
				{Component: "U1", Pin: "2"},
			}},
		},
	}

	graph := NewGraphDeriver().Derive(netlist)

	assert.Len(t, graph.Nodes, 1)
	assert.Empty(t, graph.Edges)
}

func TestDerive_EmptyNet(t *testing.T) {
	netlist := &domain.Netlist{
		Nets: []domain.Net{{Name: "FLOATING", Connections: []domain.NetConnection{}}},
	}

	graph := NewGraphDeriver().Derive(netlist)

	assert.Empty(t, graph.Edges)
}

func TestDerive_ParallelEdgesNotDeduplicated(t *testing.T) {
	// Two nets joining the same pair are two distinct electrical
	// relationships and must stay individually inspectable.
	netlist := &domain.Netlist{
		Components: []domain.Component{{Name: "U1"}, {Name: "U2"}},
		Nets: []domain.Net{
			{Name: "DATA", Connections: []domain.NetConnection{
				{Component: "U1", Pin: "1"}, {Component: "U2", Pin: "1"},
			}},
			{Name: "CLK", Connections: []domain.NetConnection{
				{Component: "U1", Pin: "2"}, {Component: "U2", Pin: "2"},
			}},
		},
	}

	graph := NewGraphDeriver().Derive(netlist)

	require.Len(t, graph.Edges, 2)
	assert.Equal(t, "DATA", graph.Edges[0].Net)
	assert.Equal(t, "CLK", graph.Edges[1].Net)
	assert.Equal(t, graph.Edges[0].Source, graph.Edges[1].Source)
	assert.Equal(t, graph.Edges[0].Target, graph.Edges[1].Target)
}

func TestDerive_UnknownComponentRetained(t *testing.T) {
	// A connection referencing a component absent from the netlist is
	// kept as a node-less endpoint; the rendering sink decides how to
	// draw it.
	netlist := &domain.Netlist{
		Components: []domain.Component{{Name: "U1"}},
		Nets: []domain.Net{
			{Name: "N1", Connections: []domain.NetConnection{
				{Component: "U1", Pin: "1"},
				{Component: "GHOST", Pin: "1"},
			}},
		},
	}

	graph := NewGraphDeriver().Derive(netlist)

	require.Len(t, graph.Nodes, 1)
	require.Len(t, graph.Edges, 1)
	assert.Equal(t, domain.Edge{Source: "GHOST", Target: "U1", Net: "N1"}, graph.Edges[0])
}

func TestDerive_BlankComponentNameRetained(t *testing.T) {
	// A blank component name is still an endpoint. Naming rules are
	// the rule engine's concern, not the deriver's.
	netlist := &domain.Netlist{
		Components: []domain.Component{{Name: "A"}},
		Nets: []domain.Net{
			{Name: "N1", Connections: []domain.NetConnection{
				{Component: "", Pin: "1"},
				{Component: "A", Pin: "2"},
			}},
		},
	}

	graph := NewGraphDeriver().Derive(netlist)

	require.Len(t, graph.Edges, 1)
	assert.Equal(t, domain.Edge{Source: "", Target: "A", Net: "N1"}, graph.Edges[0])
}

func TestDerive_Deterministic(t *testing.T) {
	deriver := NewGraphDeriver()
	netlist := testNetlist()

	first := deriver.Derive(netlist)
	second := deriver.Derive(netlist)

	assert.Equal(t, first, second)
}

func TestDerive_EdgeCountQuadratic(t *testing.T) {
	// k distinct components yield k*(k-1)/2 edges.
	connections := make([]domain.NetConnection, 0, 5)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		connections = append(connections, domain.NetConnection{Component: name, Pin: "1"})
	}
	netlist := &domain.Netlist{
		Nets: []domain.Net{{Name: "BUS", Connections: connections}},
	}

	graph := NewGraphDeriver().Derive(netlist)

	assert.Len(t, graph.Edges, 10)
}
