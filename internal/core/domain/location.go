package domain

// Kind classifies a JSON element within the parsed document tree.
type Kind string

// JSON element kinds tracked by the document parser.
const (
	KindKey     Kind = "key"
	KindObject  Kind = "object"
	KindList    Kind = "list"
	KindNull    Kind = "null"
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
)

// LocationInfo is a tree-shaped position descriptor for a diagnostic.
// Diagnostics are generated against a parsed document tree, not raw
// text, so each carries enough structural context (the ancestor chain)
// to be re-anchored into whatever raw text the client currently holds.
//
// All offsets and line/column fields are 1-based to match conventional
// text-editor coordinate systems.
type LocationInfo struct {
	// Parents is the ancestor chain from the document root, oldest first.
	Parents []LocationInfo `json:"parents,omitempty"`

	// Key is the name of this element.
	Key string `json:"key"`

	// Kind is the JSON element kind.
	Kind Kind `json:"kind"`

	// StartCharacterNumber is the absolute character offset where the
	// element starts.
	StartCharacterNumber int `json:"start_character_number"`

	// StartLineNumber is the line where the element starts.
	StartLineNumber int `json:"start_line_number"`

	// StartLineCharacterNumber is the column where the element starts.
	StartLineCharacterNumber int `json:"start_line_character_number"`

	// EndCharacterNumber is the absolute character offset where the
	// element ends.
	EndCharacterNumber int `json:"end_character_number"`

	// EndLineNumber is the line where the element ends.
	EndLineNumber int `json:"end_line_number"`

	// EndLineCharacterNumber is the column where the element ends.
	EndLineCharacterNumber int `json:"end_line_character_number"`
}

// Level returns the nesting depth of this element.
func (l *LocationInfo) Level() int {
	return len(l.Parents)
}

// Anchorable reports whether this location can be mapped onto a text
// span. A location is anchorable when the start does not follow the end
// and every line/column field is positive. Un-anchorable locations
// (typically whole-document rules) produce no decoration and no
// navigation target.
func (l *LocationInfo) Anchorable() bool {
	if l.StartCharacterNumber > l.EndCharacterNumber {
		return false
	}
	if l.StartLineNumber <= 0 || l.StartLineCharacterNumber <= 0 {
		return false
	}
	if l.EndLineNumber <= 0 || l.EndLineCharacterNumber <= 0 {
		return false
	}
	if l.StartLineNumber > l.EndLineNumber {
		return false
	}
	if l.StartLineNumber == l.EndLineNumber &&
		l.StartLineCharacterNumber > l.EndLineCharacterNumber {
		return false
	}
	return true
}
