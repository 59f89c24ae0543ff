package dfa

import (
	"errors"
	"fmt"
)

// StateID uniquely identifies a DFA state.
type StateID uint32

// InvalidState marks a missing transition in a state's column table.
const InvalidState StateID = 0xFFFFFFFF

// Common DFA errors.
var (
	// ErrNoStates indicates a Find on a DFA with no states at all.
	ErrNoStates = errors.New("dfa has no states")

	// ErrTooManyStates indicates subset construction hit the configured
	// Config.MaxStates cap.
	ErrTooManyStates = errors.New("dfa state limit exceeded")
)

// StuckError reports that matching stopped in a non-accepting situation:
// either a byte had no transition, or the input ended outside an accepting
// state. State is the last state reached; its associations tell the caller
// which patterns were still in play.
type StuckError struct {
	State StateID
}

// Error implements the error interface.
func (e *StuckError) Error() string {
	return fmt.Sprintf("no match: stuck at state %d", e.State)
}

// dfaState stores one state's transitions in compressed form: a byte-class
// id into the shared pool and a column table listing the destination for
// each distinct column. Column indices are always below the table length.
type dfaState[A comparable] struct {
	class ByteClassID
	table []StateID
	assoc map[A]struct{}
}

// DFA is a deterministic automaton with byte-class-compressed transition
// tables and per-state association sets. It is immutable after construction
// and safe for concurrent use.
type DFA[A comparable] struct {
	states []dfaState[A]
	ends   []StateID
	endSet map[StateID]struct{}
	pool   *pool
}

// States returns the number of DFA states.
func (d *DFA[A]) States() int {
	return len(d.states)
}

// Ends returns the accepting state IDs.
func (d *DFA[A]) Ends() []StateID {
	out := make([]StateID, len(d.ends))
	copy(out, d.ends)
	return out
}

// IsEnd reports whether id is an accepting state.
func (d *DFA[A]) IsEnd(id StateID) bool {
	_, ok := d.endSet[id]
	return ok
}

// ClassCount returns the number of distinct byte classes in the pool.
func (d *DFA[A]) ClassCount() int {
	return len(d.pool.classes)
}

// RoughSizeBytes estimates the transition-table memory of the DFA. Byte
// class deduplication is what keeps this small: automata with thousands of
// states typically share a handful of distinct classes.
func (d *DFA[A]) RoughSizeBytes() uint64 {
	return uint64(len(d.pool.classes)) * 256
}

// Next returns the state reached from id on input byte b, or InvalidState
// if there is no transition.
func (d *DFA[A]) Next(id StateID, b byte) StateID {
	s := &d.states[id]
	col := d.pool.classes[s.class][b]
	return s.table[col]
}

// Associations returns the values associated with a state, in unspecified
// order. A state's associations are the union over the NFA states it was
// built from.
func (d *DFA[A]) Associations(id StateID) []A {
	if int(id) >= len(d.states) {
		return nil
	}
	s := d.states[id]
	out := make([]A, 0, len(s.assoc))
	for v := range s.assoc {
		out = append(out, v)
	}
	return out
}

// IsAssociatedWith reports whether a state carries the given value.
func (d *DFA[A]) IsAssociatedWith(id StateID, value A) bool {
	if int(id) >= len(d.states) {
		return false
	}
	_, ok := d.states[id].assoc[value]
	return ok
}

// Find walks the DFA over the whole input. It returns the final state when
// that state accepts. A missing transition or a non-accepting final state
// yields a StuckError carrying the last state reached; a DFA without states
// yields ErrNoStates.
func (d *DFA[A]) Find(input []byte) (StateID, error) {
	if len(d.states) == 0 {
		return InvalidState, ErrNoStates
	}

	current := StateID(0)
	for _, b := range input {
		next := d.Next(current, b)
		if next == InvalidState {
			return InvalidState, &StuckError{State: current}
		}
		current = next
	}
	if d.IsEnd(current) {
		return current, nil
	}
	return InvalidState, &StuckError{State: current}
}

// FindString is Find on the bytes of s.
func (d *DFA[A]) FindString(s string) (StateID, error) {
	return d.Find([]byte(s))
}
