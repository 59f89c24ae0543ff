package argument

import (
	"github.com/Bloeckchengrafik/lieutenant/parser"
)

// BoolParser accepts exactly "true" or "false" before the next space or the
// end of input. Near-misses such as "tru" or "1" are rejected.
type BoolParser struct{}

// Parse implements parser.Fragment.
func (BoolParser) Parse(_ parser.State, input string) (bool, string, parser.State, error) {
	tok, rest, err := head(input)
	if err != nil {
		return false, input, nil, err
	}
	switch tok {
	case "true":
		return true, rest, nil, nil
	case "false":
		return false, rest, nil, nil
	}
	return false, input, nil, badToken("boolean", "expected true or false, got "+tok)
}

// Regex implements parser.Fragment.
func (BoolParser) Regex() string {
	return "(true|false)"
}
