package nfa

import (
	"unicode/utf8"
)

// byteRange is an inclusive range of byte values within one position of a
// UTF-8 sequence.
type byteRange struct {
	Lo byte
	Hi byte
}

// utf8Sequences expands an inclusive range of code points into a union of
// byte-sequence ranges. Each element is a sequence of 1 to 4 byte ranges;
// a byte string matches when its bytes fall pairwise into one sequence.
//
// This is the standard decomposition: the range is first split at the UTF-8
// encoded-length boundaries (and around the surrogate gap), then each
// same-length piece is split recursively so that every resulting sequence is
// a valid cross product of byte ranges.
func utf8Sequences(lo, hi rune) [][]byteRange {
	if lo > hi {
		return nil
	}

	// Surrogates are not valid scalar values; cut them out.
	if lo < 0xD800 && hi > 0xDFFF {
		out := utf8Sequences(lo, 0xD7FF)
		return append(out, utf8Sequences(0xE000, hi)...)
	}
	if lo >= 0xD800 && lo <= 0xDFFF {
		lo = 0xE000
		if lo > hi {
			return nil
		}
	}
	if hi >= 0xD800 && hi <= 0xDFFF {
		hi = 0xD7FF
		if lo > hi {
			return nil
		}
	}

	// Split at encoded-length boundaries.
	for _, boundary := range []rune{0x7F, 0x7FF, 0xFFFF} {
		if lo <= boundary && hi > boundary {
			out := utf8Sequences(lo, boundary)
			return append(out, utf8Sequences(boundary+1, hi)...)
		}
	}

	var s, e [4]byte
	ns := utf8.EncodeRune(s[:], lo)
	ne := utf8.EncodeRune(e[:], hi)
	if ns != ne {
		// Unreachable after boundary splitting.
		return nil
	}
	return splitSameLength(s[:ns], e[:ne])
}

// splitSameLength expands two equal-length UTF-8 encodings into byte-range
// sequences covering every encoding between them.
func splitSameLength(start, end []byte) [][]byteRange {
	n := len(start)
	if n == 1 {
		return [][]byteRange{{{Lo: start[0], Hi: end[0]}}}
	}

	if start[0] == end[0] {
		var out [][]byteRange
		for _, tail := range splitSameLength(start[1:], end[1:]) {
			seq := append([]byteRange{{Lo: start[0], Hi: start[0]}}, tail...)
			out = append(out, seq)
		}
		return out
	}

	var out [][]byteRange
	lo0, hi0 := start[0], end[0]

	// Peel off a sequence for the first lead byte unless its continuation
	// suffix already spans the full 80-BF space.
	if !allContinuationMin(start[1:]) {
		for _, tail := range splitSameLength(start[1:], continuationMax(n-1)) {
			seq := append([]byteRange{{Lo: start[0], Hi: start[0]}}, tail...)
			out = append(out, seq)
		}
		lo0 = start[0] + 1
	}
	if !allContinuationMax(end[1:]) {
		for _, tail := range splitSameLength(continuationMin(n-1), end[1:]) {
			seq := append([]byteRange{{Lo: end[0], Hi: end[0]}}, tail...)
			out = append(out, seq)
		}
		hi0 = end[0] - 1
	}

	if lo0 <= hi0 {
		seq := []byteRange{{Lo: lo0, Hi: hi0}}
		for i := 1; i < n; i++ {
			seq = append(seq, byteRange{Lo: 0x80, Hi: 0xBF})
		}
		out = append(out, seq)
	}
	return out
}

func allContinuationMin(bs []byte) bool {
	for _, b := range bs {
		if b != 0x80 {
			return false
		}
	}
	return true
}

func allContinuationMax(bs []byte) bool {
	for _, b := range bs {
		if b != 0xBF {
			return false
		}
	}
	return true
}

func continuationMin(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = 0x80
	}
	return out
}

func continuationMax(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = 0xBF
	}
	return out
}
