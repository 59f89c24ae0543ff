package argument

import (
	"strconv"
	"strings"

	"github.com/Bloeckchengrafik/lieutenant/parser"
)

// Uint32Parser consumes an optional sign followed by ASCII digits from the
// head of the input and parses them as a 32-bit unsigned integer.
//
// The sign is tolerated at the token level for symmetry with the regex, but
// a '-' makes the 32-bit unsigned conversion fail, so negative input is
// reported as a bad token.
type Uint32Parser struct{}

// Parse implements parser.Fragment.
func (Uint32Parser) Parse(_ parser.State, input string) (uint32, string, parser.State, error) {
	if parser.TrimSpace(input) == "" {
		return 0, input, nil, parser.ErrEmptyInput
	}

	i := 0
	if input[0] == '+' || input[0] == '-' {
		i = 1
	}
	digits := 0
	for i < len(input) && input[i] >= '0' && input[i] <= '9' {
		i++
		digits++
	}
	tok := input[:i]
	if digits == 0 {
		return 0, input, nil, badToken("integer", "not a number: "+strconv.Quote(tok))
	}
	if tok[0] == '-' {
		return 0, input, nil, badToken("integer", "negative value "+tok+" out of unsigned range")
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 32)
	if err != nil {
		return 0, input, nil, badToken("integer", tok+" out of 32-bit range")
	}
	return uint32(v), input[i:], nil, nil
}

// Regex implements parser.Fragment.
func (Uint32Parser) Regex() string {
	return `[+\-]?\d+`
}

// Float32Parser accepts a token parseable as a 32-bit binary float: an
// optional sign, an optional integer part followed by a dot, and a mandatory
// digit run. ".123", "0.123" and "123" are accepted; "123.", ".." and
// "a.b" are not.
type Float32Parser struct{}

// Parse implements parser.Fragment.
func (Float32Parser) Parse(_ parser.State, input string) (float32, string, parser.State, error) {
	tok, rest, err := head(input)
	if err != nil {
		return 0, input, nil, err
	}
	if !floatShape(tok) {
		return 0, input, nil, badToken("float", "malformed number "+strconv.Quote(tok))
	}
	v, perr := strconv.ParseFloat(tok, 32)
	if perr != nil {
		return 0, input, nil, badToken("float", "malformed number "+strconv.Quote(tok))
	}
	return float32(v), rest, nil, nil
}

// floatShape checks the token against the same shape the regex admits,
// keeping the parser's language inside the regex's. strconv alone is looser:
// it accepts "123.", hex floats and "inf".
func floatShape(tok string) bool {
	s := tok
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	if dot >= 0 {
		for i := 0; i < dot; i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
		s = s[dot+1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Regex implements parser.Fragment.
func (Float32Parser) Regex() string {
	return `[+-]?([0-9]*[.])?[0-9]+`
}
