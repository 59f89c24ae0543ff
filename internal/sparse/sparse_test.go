package sparse

import "testing"

func TestSparseSetBasics(t *testing.T) {
	s := NewSparseSet(16)

	if s.Size() != 0 {
		t.Errorf("new set size = %d", s.Size())
	}
	if s.Contains(3) {
		t.Error("empty set contains 3")
	}

	s.Insert(3)
	s.Insert(7)
	s.Insert(3) // duplicate is a no-op

	if s.Size() != 2 {
		t.Errorf("size = %d, want 2", s.Size())
	}
	if !s.Contains(3) || !s.Contains(7) || s.Contains(4) {
		t.Error("membership wrong after inserts")
	}

	vals := s.Values()
	if len(vals) != 2 || vals[0] != 3 || vals[1] != 7 {
		t.Errorf("values = %v, want insertion order [3 7]", vals)
	}
}

func TestSparseSetClear(t *testing.T) {
	s := NewSparseSet(8)
	s.Insert(1)
	s.Insert(2)
	s.Clear()

	if s.Size() != 0 || s.Contains(1) || s.Contains(2) {
		t.Error("clear did not empty the set")
	}

	// Stale sparse entries must not resurrect membership.
	s.Insert(2)
	if s.Contains(1) {
		t.Error("1 resurrected after clear")
	}
	if !s.Contains(2) {
		t.Error("2 missing after reinsert")
	}
}

func TestSparseSetOutOfRange(t *testing.T) {
	s := NewSparseSet(4)
	if s.Contains(100) {
		t.Error("out-of-range value reported present")
	}
}
