// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The graph deriver and location index are pure functions of their
// input; the session controller owns the only mutable session state.
package services
