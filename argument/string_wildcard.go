package argument

import (
	"github.com/Bloeckchengrafik/lieutenant/parser"
)

// Wildcard is the extraction of a wildcard argument: the entire trimmed
// remainder of the command line, spaces and all.
type Wildcard string

// String returns the captured text.
func (w Wildcard) String() string {
	return string(w)
}

// WildcardParser captures everything that is left on the line. It fails only
// when the trimmed remainder is empty.
type WildcardParser struct{}

// Parse implements parser.Fragment.
func (WildcardParser) Parse(_ parser.State, input string) (Wildcard, string, parser.State, error) {
	trimmed := parser.TrimSpace(input)
	if trimmed == "" {
		return "", input, nil, parser.ErrEmptyInput
	}
	return Wildcard(trimmed), "", nil, nil
}

// Regex implements parser.Fragment.
func (WildcardParser) Regex() string {
	return `.*`
}
