// Package tui provides an interactive terminal user interface for netwiz.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session orchestrates debounced validation of the open document.
	Session driving.SessionController

	// Graph derives the renderable connectivity graph.
	Graph driving.GraphService

	// Decoration maps diagnostics onto editor coordinates.
	Decoration driving.DecorationService

	// Submission manages the local history of validation runs.
	// Optional: history features are hidden when nil.
	Submission driving.SubmissionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	session driving.SessionController,
	graph driving.GraphService,
	decoration driving.DecorationService,
) *Ports {
	return &Ports{
		Session:    session,
		Graph:      graph,
		Decoration: decoration,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionController
	}
	if p.Graph == nil {
		return ErrMissingGraphService
	}
	if p.Decoration == nil {
		return ErrMissingDecorationService
	}
	return nil
}
