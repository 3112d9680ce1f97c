// Package domain defines the core business entities for NetWiz.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Netlist: Components and the nets connecting their pins
//   - ValidationError / ValidationResult: Diagnostics from the rule engine
//   - LocationInfo: Tree-shaped position of a diagnostic in source text
//   - Graph: Renderable connectivity view of a netlist
//   - Decoration: Text-span marker for one diagnostic
//   - SessionSnapshot: Immutable published state of a validation session
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
