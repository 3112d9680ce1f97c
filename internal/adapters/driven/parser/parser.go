// Package parser provides netlist parsing from raw JSON text.
package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driven"
)

// Ensure JSONParser implements the interface.
var _ driven.NetlistParser = (*JSONParser)(nil)

// JSONParser parses netlist documents from JSON text.
type JSONParser struct{}

// NewJSONParser creates a new JSON netlist parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes raw JSON text into a netlist. Malformed or empty input
// returns an error wrapping domain.ErrParseFailure and a nil netlist.
func (p *JSONParser) Parse(rawText string) (*domain.Netlist, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("empty document: %w", domain.ErrParseFailure)
	}

	dec := json.NewDecoder(strings.NewReader(rawText))

	var netlist domain.Netlist
	if err := dec.Decode(&netlist); err != nil {
		return nil, fmt.Errorf("decode netlist: %v: %w", err, domain.ErrParseFailure)
	}

	// Reject trailing content after the top-level object.
	if dec.More() {
		return nil, fmt.Errorf("trailing content after netlist object: %w", domain.ErrParseFailure)
	}

	return &netlist, nil
}
