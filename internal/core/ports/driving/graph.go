package driving

import (
	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// GraphService derives the renderable connectivity graph of a netlist.
type GraphService interface {
	// Derive maps a netlist to graph nodes and edges. It is pure and
	// deterministic: equal input produces structurally equal output,
	// so rendering sinks can diff successive graphs. A nil netlist
	// yields the empty-graph sentinel, never an error.
	Derive(netlist *domain.Netlist) domain.Graph
}
