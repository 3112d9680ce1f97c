package mcp

import (
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driven"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driving"
)

// Ports aggregates the interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Validation is the remote rule engine.
	Validation driven.ValidationService

	// Parser turns raw text into a netlist for graph derivation.
	Parser driven.NetlistParser

	// Graph derives the renderable connectivity graph.
	Graph driving.GraphService

	// Submission manages the local history of validation runs.
	// Optional: history resources return empty lists when nil.
	Submission driving.SubmissionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Validation == nil {
		return ErrMissingValidationService
	}
	if p.Parser == nil {
		return ErrMissingParser
	}
	if p.Graph == nil {
		return ErrMissingGraphService
	}
	return nil
}
