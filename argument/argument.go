// Package argument provides the typed argument leaves of the grammar
// language: boolean, 32-bit unsigned integer, 32-bit float, identifier
// string, wildcard rest-of-input, and closed-set choice.
//
// Each leaf parses a single whitespace-delimited token (the wildcard takes
// the entire remainder) and contributes one value to the grammar's
// extraction. Leaves never consume the space separating them from the next
// token; the grammar inserts explicit OneOrMoreSpace fragments for that.
package argument

import (
	"strings"

	"github.com/Bloeckchengrafik/lieutenant/parser"
)

// token splits the leading whitespace-delimited token off a trimmed input,
// splitting at the first byte of the \s class. The returned rest keeps the
// separating whitespace for the next fragment.
func token(trimmed string) (tok, rest string) {
	if i := strings.IndexAny(trimmed, " \t\n\f\r"); i >= 0 {
		return trimmed[:i], trimmed[i:]
	}
	return trimmed, ""
}

// head trims the input and splits off the first token, failing with
// ErrEmptyInput when nothing is left.
func head(input string) (tok, rest string, err error) {
	trimmed := parser.TrimSpace(input)
	if trimmed == "" {
		return "", input, parser.ErrEmptyInput
	}
	tok, rest = token(trimmed)
	return tok, rest, nil
}
