// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ValidationService: Remote rule engine (black box, finite timeout)
//   - NetlistParser: Raw text to Netlist, or a ParseFailure value
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SubmissionStore: Local submission history. Without it, the
//     history commands and save-from-editor are disabled.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
