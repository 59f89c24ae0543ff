package nfa

import (
	"github.com/Bloeckchengrafik/lieutenant/internal/conv"
)

// Empty returns an NFA accepting exactly the empty string.
func Empty[A comparable]() *NFA[A] {
	return &NFA[A]{
		states:  make([]state[A], 1),
		start:   0,
		accepts: []StateID{0},
	}
}

// Literal returns an NFA accepting exactly the byte sequence of s: a line of
// byte edges with a single accepting tail.
func Literal[A comparable](s string) *NFA[A] {
	n := &NFA[A]{states: make([]state[A], len(s)+1)}
	for i := 0; i < len(s); i++ {
		b := s[i]
		n.states[i].transitions = []Transition{{
			Lo:   b,
			Hi:   b,
			Next: StateID(conv.IntToUint32(i + 1)),
		}}
	}
	n.start = 0
	n.accepts = []StateID{StateID(conv.IntToUint32(len(s)))}
	return n
}

// noMatch returns an NFA that accepts nothing.
func noMatch[A comparable]() *NFA[A] {
	return &NFA[A]{states: make([]state[A], 1)}
}

// newStateID appends a fresh empty state and returns its id.
func (n *NFA[A]) newStateID() StateID {
	n.states = append(n.states, state[A]{})
	return StateID(conv.IntToUint32(len(n.states) - 1))
}

// addEpsilon adds an epsilon edge from one state to another.
func (n *NFA[A]) addEpsilon(from, to StateID) {
	s := &n.states[from]
	s.epsilons = append(s.epsilons, to)
}

// addTransition adds a byte-range edge from one state to another.
func (n *NFA[A]) addTransition(from StateID, lo, hi byte, to StateID) {
	s := &n.states[from]
	s.transitions = append(s.transitions, Transition{Lo: lo, Hi: hi, Next: to})
}

// absorb copies all states of src into n, remapping state IDs, and returns
// the offset added to src's IDs. Association sets are copied.
func (n *NFA[A]) absorb(src *NFA[A]) StateID {
	offset := StateID(conv.IntToUint32(len(n.states)))
	for i := range src.states {
		s := src.states[i]
		ns := state[A]{}
		if len(s.transitions) > 0 {
			ns.transitions = make([]Transition, len(s.transitions))
			for j, tr := range s.transitions {
				tr.Next += offset
				ns.transitions[j] = tr
			}
		}
		if len(s.epsilons) > 0 {
			ns.epsilons = make([]StateID, len(s.epsilons))
			for j, e := range s.epsilons {
				ns.epsilons[j] = e + offset
			}
		}
		if len(s.assoc) > 0 {
			ns.assoc = make(map[A]struct{}, len(s.assoc))
			for v := range s.assoc {
				ns.assoc[v] = struct{}{}
			}
		}
		n.states = append(n.states, ns)
	}
	return offset
}

// clone returns a deep copy of the NFA.
func (n *NFA[A]) clone() *NFA[A] {
	out := &NFA[A]{}
	out.absorb(n)
	out.start = n.start
	out.accepts = make([]StateID, len(n.accepts))
	copy(out.accepts, n.accepts)
	return out
}

// Or returns a fresh NFA accepting the union of both languages: a new start
// with epsilon edges to both operands and a single new accept reached from
// every accepting state of either operand. Association sets of both
// operands are carried over.
func (n *NFA[A]) Or(m *NFA[A]) *NFA[A] {
	out := &NFA[A]{}
	start := out.newStateID()
	offN := out.absorb(n)
	offM := out.absorb(m)
	accept := out.newStateID()

	out.addEpsilon(start, n.start+offN)
	out.addEpsilon(start, m.start+offM)
	for _, a := range n.accepts {
		out.addEpsilon(a+offN, accept)
	}
	for _, a := range m.accepts {
		out.addEpsilon(a+offM, accept)
	}

	out.start = start
	out.accepts = []StateID{accept}
	return out
}

// Concat returns a fresh NFA accepting the concatenation of both languages:
// epsilon edges run from this NFA's accepting states to the start of the
// other.
func (n *NFA[A]) Concat(m *NFA[A]) *NFA[A] {
	out := &NFA[A]{}
	offN := out.absorb(n)
	offM := out.absorb(m)

	for _, a := range n.accepts {
		out.addEpsilon(a+offN, m.start+offM)
	}

	out.start = n.start + offN
	out.accepts = make([]StateID, len(m.accepts))
	for i, a := range m.accepts {
		out.accepts[i] = a + offM
	}
	return out
}

// Repeat returns a fresh NFA matching between min and max repetitions of
// this NFA's language. max < 0 means unbounded. Repeat(0, 1) is the
// optional, Repeat(0, -1) the star and Repeat(1, -1) the plus form; other
// counts unroll into copies.
func (n *NFA[A]) Repeat(min, max int) *NFA[A] {
	if min < 0 {
		min = 0
	}
	switch {
	case min == 0 && max == 0:
		return Empty[A]()
	case min == 0 && max == 1:
		return n.optional()
	case min == 0 && max < 0:
		return n.star()
	case min == 1 && max < 0:
		return n.plus()
	}

	var out *NFA[A]
	if min == 0 {
		out = Empty[A]()
	} else {
		out = n.clone()
		for i := 1; i < min; i++ {
			out = out.Concat(n)
		}
	}
	if max < 0 {
		return out.Concat(n.star())
	}
	for i := min; i < max; i++ {
		out = out.Concat(n.optional())
	}
	return out
}

// optional wraps the NFA so the empty string is also accepted.
func (n *NFA[A]) optional() *NFA[A] {
	out := &NFA[A]{}
	start := out.newStateID()
	off := out.absorb(n)
	accept := out.newStateID()

	out.addEpsilon(start, n.start+off)
	out.addEpsilon(start, accept)
	for _, a := range n.accepts {
		out.addEpsilon(a+off, accept)
	}

	out.start = start
	out.accepts = []StateID{accept}
	return out
}

// star wraps the NFA in a zero-or-more loop.
func (n *NFA[A]) star() *NFA[A] {
	out := &NFA[A]{}
	hub := out.newStateID()
	off := out.absorb(n)

	out.addEpsilon(hub, n.start+off)
	for _, a := range n.accepts {
		out.addEpsilon(a+off, hub)
	}

	out.start = hub
	out.accepts = []StateID{hub}
	return out
}

// plus wraps the NFA in a one-or-more loop.
func (n *NFA[A]) plus() *NFA[A] {
	out := n.clone()
	for _, a := range out.accepts {
		out.addEpsilon(a, out.start)
	}
	return out
}
