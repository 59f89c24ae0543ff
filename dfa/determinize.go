package dfa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"

	"github.com/Bloeckchengrafik/lieutenant/internal/conv"
	"github.com/Bloeckchengrafik/lieutenant/internal/sparse"
	"github.com/Bloeckchengrafik/lieutenant/nfa"
)

// tracer traces with key 'lieutenant.dfa'.
func tracer() tracing.Trace {
	return tracing.Select("lieutenant.dfa")
}

// Compile builds a DFA for a pattern of the dispatch regex subset using the
// default configuration. Associations must be attached to the NFA before
// determinization, so callers that need them should use nfa.Compile followed
// by FromNFA.
func Compile[A comparable](pattern string) (*DFA[A], error) {
	return CompileWithConfig[A](pattern, DefaultConfig())
}

// CompileWithConfig builds a DFA for a pattern with a custom configuration.
func CompileWithConfig[A comparable](pattern string, config Config) (*DFA[A], error) {
	n, err := nfa.Compile[A](pattern)
	if err != nil {
		return nil, err
	}
	return FromNFAWithConfig(n, config)
}

// FromNFA determinizes an NFA via subset construction using the default
// configuration.
func FromNFA[A comparable](n *nfa.NFA[A]) (*DFA[A], error) {
	return FromNFAWithConfig(n, DefaultConfig())
}

// FromNFAWithConfig determinizes an NFA via subset construction.
//
// Every NFA state reachable from the start contributes to exactly one DFA
// state set, and each DFA state's association set is the union over its NFA
// set. Transitions are computed per byte-equivalence-class representative
// and then compressed into pooled byte classes. Construction fails with
// ErrTooManyStates once more than config.MaxStates states are needed.
func FromNFAWithConfig[A comparable](n *nfa.NFA[A], config Config) (*DFA[A], error) {
	if config.MaxStates <= 0 {
		config.MaxStates = DefaultConfig().MaxStates
	}

	d := &DFA[A]{
		endSet: make(map[StateID]struct{}),
		pool:   newPool(),
	}
	if n.States() == 0 {
		return d, nil
	}

	classes := n.ByteClasses()
	det := &determinizer[A]{
		n:       n,
		d:       d,
		config:  config,
		classes: classes,
		reps:    classes.Representatives(),
		seen:    sparse.NewSparseSet(conv.IntToUint32(n.States())),
		moved:   sparse.NewSparseSet(conv.IntToUint32(n.States())),
		ids:     make(map[string]StateID),
	}

	start := det.closure([]nfa.StateID{n.Start()})
	if _, err := det.add(start); err != nil {
		return nil, err
	}

	for next := StateID(0); int(next) < len(d.states); next++ {
		if err := det.process(next); err != nil {
			return nil, err
		}
	}

	tracer().Debugf("determinized %d NFA states into %d DFA states, %d byte classes",
		n.States(), len(d.states), len(d.pool.classes))
	return d, nil
}

// determinizer carries the worklist state of one subset construction.
type determinizer[A comparable] struct {
	n       *nfa.NFA[A]
	d       *DFA[A]
	config  Config
	classes nfa.ByteClasses
	reps    []byte
	seen    *sparse.SparseSet
	moved   *sparse.SparseSet

	// ids maps the canonical key of a sorted NFA state set to the DFA
	// state representing it.
	ids map[string]StateID

	// sets holds, per DFA state, the sorted NFA state set it represents.
	sets [][]nfa.StateID
}

// closure returns the epsilon closure of seed as a sorted state set.
func (det *determinizer[A]) closure(seed []nfa.StateID) []nfa.StateID {
	det.seen.Clear()
	stack := make([]nfa.StateID, 0, len(seed))
	for _, s := range seed {
		if !det.seen.Contains(uint32(s)) {
			det.seen.Insert(uint32(s))
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range det.n.Epsilons(s) {
			if !det.seen.Contains(uint32(e)) {
				det.seen.Insert(uint32(e))
				stack = append(stack, e)
			}
		}
	}

	sorted := treeset.NewWith(utils.UInt32Comparator)
	for _, v := range det.seen.Values() {
		sorted.Add(v)
	}
	out := make([]nfa.StateID, 0, sorted.Size())
	for _, v := range sorted.Values() {
		out = append(out, nfa.StateID(v.(uint32)))
	}
	return out
}

// key canonicalizes a sorted state set for deduplication.
func key(set []nfa.StateID) string {
	var sb strings.Builder
	for i, s := range set {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(s), 10))
	}
	return sb.String()
}

// add creates a DFA state for a closed, sorted NFA state set: accepting if
// any member accepts, associated with the union of member associations.
// Fails once the configured state cap would be exceeded.
func (det *determinizer[A]) add(set []nfa.StateID) (StateID, error) {
	if len(det.d.states) >= det.config.MaxStates {
		return InvalidState, fmt.Errorf("%w: more than %d states needed",
			ErrTooManyStates, det.config.MaxStates)
	}

	id := StateID(conv.IntToUint32(len(det.d.states)))
	st := dfaState[A]{}

	accept := false
	for _, s := range set {
		if det.n.IsAccept(s) {
			accept = true
		}
		for _, v := range det.n.Associations(s) {
			if st.assoc == nil {
				st.assoc = make(map[A]struct{})
			}
			st.assoc[v] = struct{}{}
		}
	}

	det.d.states = append(det.d.states, st)
	det.sets = append(det.sets, set)
	det.ids[key(set)] = id
	if accept {
		det.d.ends = append(det.d.ends, id)
		det.d.endSet[id] = struct{}{}
	}
	return id, nil
}

// lookupOrAdd resolves a closed set to its DFA state, creating one if the
// set is new. New states extend the worklist implicitly: construction
// processes DFA states in creation order.
func (det *determinizer[A]) lookupOrAdd(set []nfa.StateID) (StateID, error) {
	if id, ok := det.ids[key(set)]; ok {
		return id, nil
	}
	return det.add(set)
}

// move computes the set of NFA states reachable from set on input byte b,
// before epsilon closure.
func (det *determinizer[A]) move(set []nfa.StateID, b byte) []nfa.StateID {
	det.moved.Clear()
	var out []nfa.StateID
	for _, s := range set {
		for _, tr := range det.n.Transitions(s) {
			if b < tr.Lo || b > tr.Hi {
				continue
			}
			if !det.moved.Contains(uint32(tr.Next)) {
				det.moved.Insert(uint32(tr.Next))
				out = append(out, tr.Next)
			}
		}
	}
	return out
}

// process fills in the transitions of one DFA state: one destination per
// byte equivalence class, expanded to a 256-entry row, then compressed into
// a pooled byte class and a column table.
func (det *determinizer[A]) process(id StateID) error {
	set := det.sets[id]

	destByClass := make([]StateID, det.classes.AlphabetLen())
	for _, rep := range det.reps {
		dest := InvalidState
		if moved := det.move(set, rep); len(moved) > 0 {
			var err error
			dest, err = det.lookupOrAdd(det.closure(moved))
			if err != nil {
				return err
			}
		}
		destByClass[det.classes.Get(rep)] = dest
	}

	var row [256]StateID
	for b := 0; b < 256; b++ {
		row[b] = destByClass[det.classes.Get(byte(b))]
	}
	det.setTransitions(id, &row)
	return nil
}

// setTransitions compresses a dense 256-entry transition row: bytes with the
// same destination share a column, columns are numbered in order of first
// occurrence, and the resulting byte class is interned in the pool.
func (det *determinizer[A]) setTransitions(id StateID, row *[256]StateID) {
	var class ByteClass
	var table []StateID
	cols := make(map[StateID]byte)

	for b := 0; b < 256; b++ {
		dest := row[b]
		col, ok := cols[dest]
		if !ok {
			col = byte(len(table))
			cols[dest] = col
			table = append(table, dest)
		}
		class[b] = col
	}

	det.d.states[id].table = table
	det.d.states[id].class = det.d.pool.intern(class)
}
