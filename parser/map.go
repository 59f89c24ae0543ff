package parser

// mapped projects the extraction of a fragment through a pure function,
// leaving parsing behaviour and alternative enumeration untouched.
type mapped[A, B any] struct {
	inner Fragment[A]
	fn    func(A) B
}

// Map projects the extraction of f through fn.
func Map[A, B any](f Fragment[A], fn func(A) B) Fragment[B] {
	return mapped[A, B]{inner: f, fn: fn}
}

// Parse implements Fragment.
func (m mapped[A, B]) Parse(state State, input string) (B, string, State, error) {
	x, rest, next, err := m.inner.Parse(state, input)
	if err != nil {
		var zero B
		return zero, rest, next, err
	}
	return m.fn(x), rest, next, nil
}

// Regex implements Fragment.
func (m mapped[A, B]) Regex() string {
	return m.inner.Regex()
}

// Terminated sequences a before b and keeps only a's extraction. Used to
// attach non-contributing fragments such as separators to a typed chain.
func Terminated[E any](a Fragment[E], b Fragment[Unit]) Fragment[E] {
	return Map(NewAnd(a, b), func(p Pair[E, Unit]) E { return p.A })
}

// Preceded sequences a before b and keeps only b's extraction.
func Preceded[E any](a Fragment[Unit], b Fragment[E]) Fragment[E] {
	return Map(NewAnd(a, b), func(p Pair[Unit, E]) E { return p.B })
}

// Discard drops the extraction of f.
func Discard[E any](f Fragment[E]) Fragment[Unit] {
	return Map(f, func(E) Unit { return Unit{} })
}
