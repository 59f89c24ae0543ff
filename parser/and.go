package parser

// And sequences two fragments. The extraction is the pair of both
// extractions; the remainder is whatever the second fragment left over.
//
// And implements backtracking-by-iteration: when B fails but offers another
// alternative, B is retried on the same remainder; when B exhausts its
// alternatives, A is re-parsed from its next alternative and B restarts.
type And[EA, EB any] struct {
	A Fragment[EA]
	B Fragment[EB]
}

// NewAnd sequences a before b.
func NewAnd[EA, EB any](a Fragment[EA], b Fragment[EB]) And[EA, EB] {
	return And[EA, EB]{A: a, B: b}
}

// andState records which alternative of each side the next attempt starts
// from. aState is fed to A verbatim; bState to B under A's current
// alternative.
type andState struct {
	aState State
	bState State
}

// Parse implements Fragment.
func (s And[EA, EB]) Parse(state State, input string) (Pair[EA, EB], string, State, error) {
	var zero Pair[EA, EB]
	cur := andState{}
	if state != nil {
		cur = state.(andState)
	}

	for {
		xa, r1, aNext, errA := s.A.Parse(cur.aState, input)
		if errA != nil {
			if aNext == nil {
				return zero, input, nil, errA
			}
			cur = andState{aState: aNext}
			continue
		}

		xb, r2, bNext, errB := s.B.Parse(cur.bState, r1)
		if errB == nil {
			var next State
			switch {
			case bNext != nil:
				next = andState{aState: cur.aState, bState: bNext}
			case aNext != nil:
				next = andState{aState: aNext}
			}
			return Pair[EA, EB]{A: xa, B: xb}, r2, next, nil
		}

		switch {
		case bNext != nil:
			cur.bState = bNext
		case aNext != nil:
			cur = andState{aState: aNext}
		default:
			return zero, input, nil, errB
		}
	}
}

// Regex implements Fragment. The language of the sequence is the
// concatenation of both languages.
func (s And[EA, EB]) Regex() string {
	return s.A.Regex() + s.B.Regex()
}
