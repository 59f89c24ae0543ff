// Package command provides the typed command grammar builder and the
// command objects built from it.
//
// A grammar starts from a leading keyword literal and grows through a
// fluent chain; every argument appended extends the statically typed
// extraction, so the handler bound with OnCall receives exactly the values
// the grammar parses, with no reflection involved. A closed command parses
// and dispatches raw input strings and renders itself as a regular
// expression for the shared dispatcher.
package command

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"

	"github.com/Bloeckchengrafik/lieutenant/dfa"
	"github.com/Bloeckchengrafik/lieutenant/parser"
)

// tracer traces with key 'lieutenant.command'.
func tracer() tracing.Trace {
	return tracing.Select("lieutenant.command")
}

// Command-level failures. Parse failures of the underlying grammar are
// wrapped, not replaced; classify with errors.Is against the parser and
// argument package sentinels.
var (
	// ErrTooManyArguments indicates the command shape matched but trailing
	// input remained.
	ErrTooManyArguments = errors.New("too many arguments")
)

// ID identifies a command within a dispatcher. It tags the accepting states
// of the merged dispatch DFA.
type ID struct {
	id int
}

// IDOf returns the ID with the given value.
func IDOf(value int) ID {
	return ID{id: value}
}

// Int returns the numeric value of the ID.
func (i ID) Int() int {
	return i.id
}

// Command is a closed grammar bound to a two-stage handler. It is immutable
// and safe for concurrent use; per-call parser state lives on the stack.
type Command[GS, R any] struct {
	keyword    string
	regex      string
	guard      *dfa.DFA[ID]
	compileErr error
	invoke     func(gs GS, input string) (R, error)
}

// Keyword returns the leading literal the grammar was started with.
func (c *Command[GS, R]) Keyword() string {
	return c.keyword
}

// Regex returns the regular expression of the full grammar, end guard
// included. Its language contains every input the grammar accepts.
func (c *Command[GS, R]) Regex() string {
	return c.regex
}

// Call parses input through the grammar and, on success, applies the bound
// handler to the extraction and then to gamestate.
//
// Failures: ErrTooManyArguments when the command shape matched a prefix of
// the input but not all of it; otherwise the underlying parse error, wrapped.
func (c *Command[GS, R]) Call(gamestate GS, input string) (R, error) {
	var zero R
	if c.compileErr != nil {
		return zero, errors.Wrap(c.compileErr, "command regex did not compile")
	}
	return c.invoke(gamestate, input)
}

// guardScan runs the command's compiled DFA over input in early-termination
// mode. full reports whether the whole input is in the regex language;
// prefix whether some proper prefix is.
func (c *Command[GS, R]) guardScan(input string) (full, prefix bool) {
	m := c.guard.Matcher()
	n := len(input)
	if m.IsAccepting() {
		if n == 0 {
			return true, false
		}
		prefix = true
	}
	for i := 0; i < n; i++ {
		if !m.Advance(input[i]) {
			return false, prefix
		}
		if m.IsAccepting() {
			if i == n-1 {
				full = true
			} else {
				prefix = true
			}
		}
	}
	return full, prefix
}

// newCommand closes a grammar fragment over a handler: the end guard is
// appended, the dispatch regex synthesized and compiled, and the typed parse
// loop captured in a closure.
func newCommand[E, GS, R any](frag parser.Fragment[E], keyword string, handler func(E) func(GS) R) *Command[GS, R] {
	closed := parser.Terminated(frag, parser.MaybeSpaces{EndGuard: true})

	cmd := &Command[GS, R]{
		keyword: keyword,
		regex:   closed.Regex(),
	}
	cmd.guard, cmd.compileErr = dfa.Compile[ID](cmd.regex)

	cmd.invoke = func(gs GS, input string) (R, error) {
		var zero R
		var st parser.State
		var lastErr error

		for {
			ext, _, next, err := closed.Parse(st, input)
			if err == nil {
				if full, _ := cmd.guardScan(input); !full {
					return zero, ErrTooManyArguments
				}
				return handler(ext)(gs), nil
			}
			lastErr = err
			if next == nil {
				break
			}
			tracer().Debugf("command %q: retrying next alternative after: %v", cmd.keyword, err)
			st = next
		}

		if full, prefix := cmd.guardScan(input); prefix && !full {
			return zero, ErrTooManyArguments
		}
		return zero, errors.Wrap(lastErr, "not able to parse input")
	}
	return cmd
}
