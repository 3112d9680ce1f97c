package domain

import "time"

// NetlistSubmission is a locally recorded validation run: the raw text,
// the parsed netlist if any, and the result it produced.
type NetlistSubmission struct {
	// ID is the unique submission identifier.
	ID string

	// RawText is the submitted document text.
	RawText string

	// Netlist is the parsed model, nil when the text did not parse.
	Netlist *Netlist

	// Filename is the originating file, if the text came from one.
	Filename string

	// SubmittedAt is when the submission was recorded.
	SubmittedAt time.Time

	// Result is the validation result attached to this submission.
	Result *ValidationResult
}
