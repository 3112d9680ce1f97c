package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// ValidateInput is the input schema for the validate_netlist tool.
type ValidateInput struct {
	NetlistJSON string `json:"netlist_json" jsonschema:"the netlist document as JSON text"`
}

// ValidateOutput is the output schema for the validate_netlist tool.
type ValidateOutput struct {
	IsValid  bool               `json:"is_valid"`
	Errors   []DiagnosticOutput `json:"errors"`
	Warnings []DiagnosticOutput `json:"warnings"`
}

// DiagnosticOutput represents a single validation diagnostic.
type DiagnosticOutput struct {
	Rule        string `json:"rule"`
	Message     string `json:"message"`
	Severity    string `json:"severity"`
	ComponentID string `json:"component_id,omitempty"`
	NetID       string `json:"net_id,omitempty"`
	Line        int    `json:"line,omitempty"`
	Column      int    `json:"column,omitempty"`
}

// GraphInput is the input schema for the derive_graph tool.
type GraphInput struct {
	NetlistJSON string `json:"netlist_json" jsonschema:"the netlist document as JSON text"`
}

// GraphOutput is the output schema for the derive_graph tool.
type GraphOutput struct {
	Nodes []domain.Node `json:"nodes"`
	Edges []domain.Edge `json:"edges"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_netlist",
		Description: "Validate a netlist document against the rule engine",
	}, s.handleValidate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "derive_graph",
		Description: "Derive the component connectivity graph of a netlist",
	}, s.handleDeriveGraph)
}

// handleValidate handles the validate_netlist tool invocation.
// Raw text is sent even when it does not parse, so the rule engine can
// report syntax-level diagnostics.
func (s *Server) handleValidate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ValidateInput,
) (*mcp.CallToolResult, ValidateOutput, error) {
	result, err := s.ports.Validation.ValidateText(ctx, input.NetlistJSON)
	if err != nil {
		return nil, ValidateOutput{}, err
	}

	output := ValidateOutput{
		IsValid:  result.IsValid,
		Errors:   make([]DiagnosticOutput, len(result.Errors)),
		Warnings: make([]DiagnosticOutput, len(result.Warnings)),
	}
	for i := range result.Errors {
		output.Errors[i] = diagnosticOutput(result.Errors[i])
	}
	for i := range result.Warnings {
		output.Warnings[i] = diagnosticOutput(result.Warnings[i])
	}

	return nil, output, nil
}

// handleDeriveGraph handles the derive_graph tool invocation.
func (s *Server) handleDeriveGraph(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GraphInput,
) (*mcp.CallToolResult, GraphOutput, error) {
	netlist, err := s.ports.Parser.Parse(input.NetlistJSON)
	if err != nil {
		return nil, GraphOutput{}, err
	}

	graph := s.ports.Graph.Derive(netlist)
	return nil, GraphOutput{Nodes: graph.Nodes, Edges: graph.Edges}, nil
}

func diagnosticOutput(diag domain.ValidationError) DiagnosticOutput {
	out := DiagnosticOutput{
		Rule:        diag.ErrorType.Name,
		Message:     diag.Message,
		Severity:    string(diag.Severity),
		ComponentID: diag.ComponentID,
		NetID:       diag.NetID,
	}
	if diag.Location != nil {
		out.Line = diag.Location.StartLineNumber
		out.Column = diag.Location.StartLineCharacterNumber
	}
	return out
}
