package domain

// Node is one renderable graph vertex. Identity is the component name.
type Node struct {
	// ID is the component name.
	ID string `json:"id"`

	// Type is the component kind, carried for display.
	Type ComponentType `json:"type,omitempty"`

	// Value is the component value, carried for display.
	Value string `json:"value,omitempty"`
}

// Edge is one pairwise electrical relationship between two components,
// tagged with the net that produced it. Multiple nets connecting the
// same pair yield multiple parallel edges.
type Edge struct {
	// Source is the lexically smaller endpoint component name.
	Source string `json:"source"`

	// Target is the lexically larger endpoint component name.
	Target string `json:"target"`

	// Net names the originating net.
	Net string `json:"net"`
}

// Graph is the renderable connectivity view of a netlist, consumed by
// the graph rendering sink.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// EmptyGraph returns the empty-graph sentinel published when no content
// is loaded. Both slices are non-nil so rendering sinks can diff
// without nil checks.
func EmptyGraph() Graph {
	return Graph{Nodes: []Node{}, Edges: []Edge{}}
}

// Empty reports whether the graph has no nodes and no edges.
func (g Graph) Empty() bool {
	return len(g.Nodes) == 0 && len(g.Edges) == 0
}
