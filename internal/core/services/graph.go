package services

import (
	"sort"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driving"
)

// Ensure GraphDeriver implements the interface.
var _ driving.GraphService = (*GraphDeriver)(nil)

// GraphDeriver maps a netlist to its renderable connectivity graph.
// It is stateless; Derive is a pure function of its input.
type GraphDeriver struct{}

// NewGraphDeriver creates a new graph deriver.
func NewGraphDeriver() *GraphDeriver {
	return &GraphDeriver{}
}

// Derive produces one node per component and, for every net, one edge
// per unordered pair of distinct components the net connects. A net
// connecting k distinct components yields k*(k-1)/2 edges; 0 or 1
// distinct components yield none. Multiple nets joining the same pair
// yield parallel edges, each tagged with its originating net.
//
// A connection referencing a component absent from the netlist is kept
// as a node-less endpoint; the rendering sink decides how to draw it.
// A nil netlist returns the empty-graph sentinel.
func (g *GraphDeriver) Derive(netlist *domain.Netlist) domain.Graph {
	if netlist == nil {
		return domain.EmptyGraph()
	}

	nodes := make([]domain.Node, 0, len(netlist.Components))
	for i := range netlist.Components {
		c := &netlist.Components[i]
		nodes = append(nodes, domain.Node{
			ID:    c.Name,
			Type:  c.Type,
			Value: c.Value,
		})
	}

	edges := make([]domain.Edge, 0)
	for i := range netlist.Nets {
		net := &netlist.Nets[i]
		edges = append(edges, netEdges(net)...)
	}

	return domain.Graph{Nodes: nodes, Edges: edges}
}

// netEdges emits the pairwise edges for one net. Repeated connections
// to the same component collapse to one endpoint before pairing, so a
// net touching {A, A, B, C} yields exactly A-B, A-C, B-C.
func netEdges(net *domain.Net) []domain.Edge {
	seen := make(map[string]bool, len(net.Connections))
	endpoints := make([]string, 0, len(net.Connections))
	for _, conn := range net.Connections {
		if seen[conn.Component] {
			continue
		}
		seen[conn.Component] = true
		endpoints = append(endpoints, conn.Component)
	}

	if len(endpoints) < 2 {
		return nil
	}

	// Lexical endpoint order keeps output deterministic so the
	// rendering sink can diff successive graphs.
	sort.Strings(endpoints)

	edges := make([]domain.Edge, 0, len(endpoints)*(len(endpoints)-1)/2)
	for i := 0; i < len(endpoints); i++ {
		for j := i + 1; j < len(endpoints); j++ {
			edges = append(edges, domain.Edge{
				Source: endpoints[i],
				Target: endpoints[j],
				Net:    net.Name,
			})
		}
	}
	return edges
}
