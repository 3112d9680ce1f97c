package domain

// Decoration is a visual marker anchored to a text span, representing
// one diagnostic. Error and warning decorations are structurally
// identical; Severity is a rendering hint. All coordinates are 1-based.
type Decoration struct {
	// StartLine and StartColumn anchor the start of the span.
	StartLine   int `json:"start_line"`
	StartColumn int `json:"start_column"`

	// EndLine and EndColumn anchor the end of the span.
	EndLine   int `json:"end_line"`
	EndColumn int `json:"end_column"`

	// Severity is the diagnostic severity rendering hint.
	Severity Severity `json:"severity"`

	// Message is the diagnostic message shown with the marker.
	Message string `json:"message"`

	// Rule is the machine identifier of the producing rule.
	Rule string `json:"rule"`
}

// CursorPosition is a 1-based line/column navigation target pushed to
// the text-editor sink when the user clicks a diagnostic.
type CursorPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}
