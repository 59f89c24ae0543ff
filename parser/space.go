package parser

import (
	"fmt"
	"strings"
)

// spaceCutset is the whitespace alphabet of the \s regex class. Trimming is
// restricted to these bytes so that the parser never accepts separators the
// synthesized regex would reject.
const spaceCutset = " \t\n\f\r"

// TrimLeftSpace trims leading whitespace as the space fragments do.
func TrimLeftSpace(s string) string {
	return strings.TrimLeft(s, spaceCutset)
}

// TrimSpace trims whitespace from both ends as the argument leaves do.
func TrimSpace(s string) string {
	return strings.Trim(s, spaceCutset)
}

// OneOrMoreSpace consumes mandatory whitespace between two tokens. It fails
// when the input does not start with at least one whitespace byte.
type OneOrMoreSpace struct{}

// Parse implements Fragment.
func (OneOrMoreSpace) Parse(_ State, input string) (Unit, string, State, error) {
	out := TrimLeftSpace(input)
	if len(out) == len(input) {
		return Unit{}, input, nil, fmt.Errorf("%w at input %q", ErrExpectedSpace, input)
	}
	return Unit{}, out, nil, nil
}

// Regex implements Fragment.
func (OneOrMoreSpace) Regex() string {
	return `\s+`
}

// MaybeSpaces consumes optional whitespace. With EndGuard set it is the
// terminal fragment of a closed grammar: after trimming, any remaining input
// is a failure.
type MaybeSpaces struct {
	EndGuard bool
}

// Parse implements Fragment.
func (m MaybeSpaces) Parse(_ State, input string) (Unit, string, State, error) {
	out := TrimLeftSpace(input)
	if m.EndGuard && out != "" {
		return Unit{}, input, nil, fmt.Errorf("%w, got %q", ErrExpectedEnd, out)
	}
	return Unit{}, out, nil, nil
}

// Regex implements Fragment.
func (MaybeSpaces) Regex() string {
	return `\s*`
}
