package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Literal matches an exact byte sequence at the head of the input.
type Literal struct {
	Value string
}

// NewLiteral returns a fragment matching value exactly.
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// Parse implements Fragment.
func (l Literal) Parse(_ State, input string) (Unit, string, State, error) {
	if !strings.HasPrefix(input, l.Value) {
		return Unit{}, input, nil, fmt.Errorf("expected literal %q at input %q", l.Value, input)
	}
	return Unit{}, input[len(l.Value):], nil, nil
}

// Regex implements Fragment. Regex metacharacters in the literal are escaped.
func (l Literal) Regex() string {
	return regexp.QuoteMeta(l.Value)
}
