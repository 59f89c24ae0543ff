package dfa

// Matcher is the early-termination streaming matcher: it consumes one byte
// at a time and surfaces, after every byte, whether any future input can
// still be accepted and which associations the current state carries.
//
// Hosts use this for prefix-based dispatch: once a unique association is
// locked in, routing can happen before the rest of the input arrives.
// A Matcher is cheap to create and must not be shared across goroutines;
// the underlying DFA may be.
type Matcher[A comparable] struct {
	d       *DFA[A]
	current StateID
	dead    bool
}

// Matcher returns a streaming matcher positioned at the start state.
func (d *DFA[A]) Matcher() *Matcher[A] {
	return &Matcher[A]{
		d:    d,
		dead: len(d.states) == 0,
	}
}

// Advance consumes one input byte. It returns false once the matcher is
// dead: the byte had no transition, so no continuation of the input can be
// accepted anymore.
func (m *Matcher[A]) Advance(b byte) bool {
	if m.dead {
		return false
	}
	next := m.d.Next(m.current, b)
	if next == InvalidState {
		m.dead = true
		return false
	}
	m.current = next
	return true
}

// CanContinue reports whether any transition leaves the current state, i.e.
// whether some longer input could still reach an accepting state.
func (m *Matcher[A]) CanContinue() bool {
	if m.dead {
		return false
	}
	s := &m.d.states[m.current]
	for _, dest := range s.table {
		if dest != InvalidState {
			return true
		}
	}
	return false
}

// IsAccepting reports whether the input consumed so far is accepted.
func (m *Matcher[A]) IsAccepting() bool {
	return !m.dead && m.d.IsEnd(m.current)
}

// State returns the current state. Only meaningful while the matcher is
// alive.
func (m *Matcher[A]) State() StateID {
	return m.current
}

// Associations returns the association set of the current state, in
// unspecified order.
func (m *Matcher[A]) Associations() []A {
	if m.dead {
		return nil
	}
	return m.d.Associations(m.current)
}
