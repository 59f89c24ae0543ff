package argument

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Bloeckchengrafik/lieutenant/parser"
)

// ChoiceParser accepts exactly one member of a closed string set. A member
// matches when it equals the remaining input or is followed by a space; the
// longest matching member wins.
type ChoiceParser struct {
	choices []string
}

// NewChoice builds a choice leaf over the given members. Member order is
// preserved for regex synthesis; matching itself is longest-first.
func NewChoice(choices ...string) ChoiceParser {
	cs := make([]string, len(choices))
	copy(cs, choices)
	return ChoiceParser{choices: cs}
}

// Choices returns the members of the set in insertion order.
func (c ChoiceParser) Choices() []string {
	cs := make([]string, len(c.choices))
	copy(cs, c.choices)
	return cs
}

// Parse implements parser.Fragment.
func (c ChoiceParser) Parse(_ parser.State, input string) (string, string, parser.State, error) {
	if parser.TrimSpace(input) == "" {
		return "", input, nil, parser.ErrEmptyInput
	}

	best := -1
	for i, choice := range c.choices {
		if input != choice && !strings.HasPrefix(input, choice+" ") {
			continue
		}
		if best < 0 || len(choice) > len(c.choices[best]) {
			best = i
		}
	}
	if best < 0 {
		return "", input, nil, fmt.Errorf("%w for input %q", ErrUnknownChoice, input)
	}
	matched := c.choices[best]
	return matched, input[len(matched):], nil, nil
}

// Regex implements parser.Fragment.
func (c ChoiceParser) Regex() string {
	escaped := make([]string, len(c.choices))
	for i, choice := range c.choices {
		escaped[i] = regexp.QuoteMeta(choice)
	}
	return "(" + strings.Join(escaped, "|") + ")"
}
