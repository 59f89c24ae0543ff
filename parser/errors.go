package parser

import "errors"

// Common parse failures. Leaf parsers wrap these where extra context helps;
// callers classify with errors.Is.
var (
	// ErrEmptyInput indicates a token was required but the (trimmed) input
	// was empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrExpectedSpace indicates OneOrMoreSpace found no leading whitespace.
	ErrExpectedSpace = errors.New("expected a space")

	// ErrExpectedEnd indicates trailing input survived an end-guarded
	// MaybeSpaces fragment.
	ErrExpectedEnd = errors.New("expected end of string")
)
