package argument

import (
	"github.com/Bloeckchengrafik/lieutenant/parser"
)

// StringParser accepts a single identifier token: a greedy run of
// non-whitespace bytes.
type StringParser struct{}

// Parse implements parser.Fragment.
func (StringParser) Parse(_ parser.State, input string) (string, string, parser.State, error) {
	tok, rest, err := head(input)
	if err != nil {
		return "", input, nil, err
	}
	return tok, rest, nil, nil
}

// Regex implements parser.Fragment.
func (StringParser) Regex() string {
	return `\S+`
}
