// Package mcp provides an MCP (Model Context Protocol) server adapter for netwiz.
// It enables AI assistants to validate netlists and inspect their connectivity.
package mcp

import "errors"

// ErrMissingValidationService is returned when the validation service is not provided.
var ErrMissingValidationService = errors.New("mcp: validation service is required")

// ErrMissingParser is returned when the netlist parser is not provided.
var ErrMissingParser = errors.New("mcp: netlist parser is required")

// ErrMissingGraphService is returned when the graph service is not provided.
var ErrMissingGraphService = errors.New("mcp: graph service is required")
