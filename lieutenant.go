// Package lieutenant is a command-parsing library for in-game chat and
// console commands.
//
// A host application builds a typed grammar per command with the command
// package, binds a two-stage handler, and registers the commands with a
// Dispatcher. The dispatcher compiles every command's regular expression
// into one merged DFA, tagged with command identifiers, and routes raw
// input strings: the DFA narrows the input down to candidate commands, and
// each candidate's own grammar — which is authoritative for acceptance —
// parses, extracts and invokes.
//
// Basic usage:
//
//	give := command.OnCall(
//	    command.Literal("/give").Space().Uint32().Space().Str(),
//	    func(ext parser.Pair[uint32, string]) func(*World) string {
//	        return func(w *World) string {
//	            return w.Give(ext.A, ext.B)
//	        }
//	    })
//
//	d := lieutenant.NewDispatcher[*World, string]()
//	d.Register(give)
//	if err := d.Build(); err != nil {
//	    log.Fatal(err)
//	}
//	out, err := d.Dispatch(world, "/give 32 minecraft:chicken")
//
// Compiled commands and dispatchers are immutable after Build and safe for
// concurrent use.
package lieutenant

import (
	"sort"

	"github.com/coregx/ahocorasick"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"

	"github.com/Bloeckchengrafik/lieutenant/command"
	"github.com/Bloeckchengrafik/lieutenant/dfa"
	"github.com/Bloeckchengrafik/lieutenant/nfa"
)

// tracer traces with key 'lieutenant'.
func tracer() tracing.Trace {
	return tracing.Select("lieutenant")
}

// Dispatch failures.
var (
	// ErrNoMatch indicates no registered command accepted the input.
	ErrNoMatch = errors.New("no command matched")

	// ErrNotBuilt indicates Dispatch was called before Build.
	ErrNotBuilt = errors.New("dispatcher not built")
)

// Dispatcher routes raw input strings across a set of registered commands.
//
// Register all commands first, then call Build once; afterwards the
// dispatcher is immutable and safe for concurrent use.
type Dispatcher[GS, R any] struct {
	commands []*command.Command[GS, R]
	dfa      *dfa.DFA[command.ID]
	keywords *ahocorasick.Automaton
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher[GS, R any]() *Dispatcher[GS, R] {
	return &Dispatcher[GS, R]{}
}

// Register adds commands to the dispatcher. The registration order fixes
// the command identifiers and the candidate try order on dispatch.
func (d *Dispatcher[GS, R]) Register(cmds ...*command.Command[GS, R]) {
	d.commands = append(d.commands, cmds...)
}

// Build compiles the merged dispatch DFA: each command's regex becomes an
// NFA whose accepting states are tagged with the command's identifier, the
// NFAs are merged via or, and the union is determinized once. A keyword
// automaton over the commands' leading literals serves as a cheap
// prefilter.
func (d *Dispatcher[GS, R]) Build() error {
	var merged *nfa.NFA[command.ID]
	kb := ahocorasick.NewBuilder()

	for i, cmd := range d.commands {
		n, err := nfa.Compile[command.ID](cmd.Regex())
		if err != nil {
			return errors.Wrapf(err, "command %q", cmd.Keyword())
		}
		n.AssociateAccepts(command.IDOf(i))
		if merged == nil {
			merged = n
		} else {
			merged = merged.Or(n)
		}
		kb.AddPattern([]byte(cmd.Keyword()))
	}
	if merged == nil {
		merged = nfa.Literal[command.ID]("")
	}

	compiled, err := dfa.FromNFA(merged)
	if err != nil {
		return errors.Wrap(err, "dispatch automaton")
	}
	d.dfa = compiled

	if len(d.commands) > 0 {
		keywords, err := kb.Build()
		if err != nil {
			return errors.Wrap(err, "keyword prefilter")
		}
		d.keywords = keywords
	}

	tracer().Debugf("built dispatcher: %d commands, %d DFA states, ~%d bytes of transition tables",
		len(d.commands), d.dfa.States(), d.dfa.RoughSizeBytes())
	return nil
}

// Dispatch routes input to the first command that parses it and returns
// that command's handler result.
//
// The merged DFA over-approximates every registered grammar, so inputs it
// rejects are rejected outright with ErrNoMatch. Inputs it accepts yield a
// candidate set from the accepting state's associations; candidates are
// tried in registration order and each candidate's parser has the final
// word.
func (d *Dispatcher[GS, R]) Dispatch(gamestate GS, input string) (R, error) {
	var zero R
	if d.dfa == nil {
		return zero, ErrNotBuilt
	}

	if len(d.commands) > 0 && d.keywords != nil && !d.keywords.IsMatch([]byte(input)) {
		return zero, errors.Wrap(ErrNoMatch, "no command keyword in input")
	}

	end, err := d.dfa.FindString(input)
	if err != nil {
		return zero, errors.Wrap(ErrNoMatch, "input outside every command shape")
	}

	ids := d.dfa.Associations(end)
	sort.Slice(ids, func(i, j int) bool { return ids[i].Int() < ids[j].Int() })
	tracer().Debugf("dispatching %q across %d candidate commands", input, len(ids))

	var lastErr error
	for _, id := range ids {
		if id.Int() < 0 || id.Int() >= len(d.commands) {
			continue
		}
		out, callErr := d.commands[id.Int()].Call(gamestate, input)
		if callErr == nil {
			return out, nil
		}
		lastErr = callErr
	}

	if lastErr != nil {
		return zero, lastErr
	}
	return zero, ErrNoMatch
}

// Commands returns the registered commands in registration order.
func (d *Dispatcher[GS, R]) Commands() []*command.Command[GS, R] {
	out := make([]*command.Command[GS, R], len(d.commands))
	copy(out, d.commands)
	return out
}

// Size returns a rough estimate of the merged DFA's transition-table
// memory. Zero before Build.
func (d *Dispatcher[GS, R]) Size() uint64 {
	if d.dfa == nil {
		return 0
	}
	return d.dfa.RoughSizeBytes()
}
