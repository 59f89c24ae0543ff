package nfa

import (
	"errors"
	"testing"
)

// TestCompile_Supported checks that every construct of the dispatch regex
// subset compiles.
func TestCompile_Supported(t *testing.T) {
	patterns := []string{
		"",
		"hello",
		`/give\s+[+\-]?\d+`,
		`(true|false)`,
		`\S+`,
		`\s*`,
		`[a-zA-Z0-9]`,
		`[0-9]*[.][0-9]+`,
		`(e|f\\r|minecraft:chicken)`,
		`.*`,
		`a{2,4}`,
		`(ab)+c?`,
		"привет",
		"😀",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			n, err := Compile[int](pattern)
			if err != nil {
				t.Fatalf("expected success, got error: %v", err)
			}
			if n.States() == 0 {
				t.Error("NFA has no states")
			}
		})
	}
}

// TestCompile_Unsupported checks that anchors and look-around are rejected
// with ErrRegexUnsupported rather than silently mis-compiled.
func TestCompile_Unsupported(t *testing.T) {
	patterns := []string{
		`^abc`,
		`abc$`,
		`\babc`,
		`a\Bb`,
		`\Aabc`,
		`abc\z`,
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			_, err := Compile[int](pattern)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrRegexUnsupported) {
				t.Errorf("expected ErrRegexUnsupported, got %v", err)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Errorf("expected *CompileError, got %T", err)
			} else if ce.Pattern != pattern {
				t.Errorf("CompileError.Pattern = %q", ce.Pattern)
			}
		})
	}
}

func TestCompile_SyntaxError(t *testing.T) {
	_, err := Compile[int]("(unclosed")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompileError, got %T", err)
	}
}

func TestCompile_RepeatTooLarge(t *testing.T) {
	_, err := Compile[int]("a{0,500}")
	if !errors.Is(err, ErrTooComplex) {
		t.Errorf("expected ErrTooComplex, got %v", err)
	}
}

// TestUTF8Sequences sanity-checks the range decomposition against the
// well-known UTF-8 layout.
func TestUTF8Sequences(t *testing.T) {
	// All two-byte encodings.
	seqs := utf8Sequences(0x80, 0x7FF)
	if len(seqs) != 1 {
		t.Fatalf("two-byte range: %d sequences", len(seqs))
	}
	if seqs[0][0] != (byteRange{0xC2, 0xDF}) || seqs[0][1] != (byteRange{0x80, 0xBF}) {
		t.Errorf("two-byte range = %v", seqs[0])
	}

	// ASCII stays single-range.
	seqs = utf8Sequences('a', 'z')
	if len(seqs) != 1 || len(seqs[0]) != 1 || seqs[0][0] != (byteRange{'a', 'z'}) {
		t.Errorf("ascii range = %v", seqs)
	}

	// The surrogate gap is skipped.
	for _, seq := range utf8Sequences(0, 0x10FFFF) {
		for _, br := range seq {
			if br.Lo > br.Hi {
				t.Errorf("inverted range %v", br)
			}
		}
	}
	if len(utf8Sequences(0xD800, 0xDFFF)) != 0 {
		t.Error("surrogates must produce no sequences")
	}

	// Each sequence length matches a valid encoded length.
	for _, seq := range utf8Sequences(0x80, 0x10FFFF) {
		if len(seq) < 2 || len(seq) > 4 {
			t.Errorf("sequence of length %d", len(seq))
		}
	}
}

func TestCompileClassAsciiAndUnicodeSplit(t *testing.T) {
	c := NewCompiler[int](DefaultCompilerConfig())
	// [0x41-0x7F] pure ASCII plus [0x80-0x10FFFF] everything else.
	n := c.compileClass([]rune{0x41, 0x10FFFF})
	if n.States() < 2 {
		t.Fatalf("states = %d", n.States())
	}
	asciiEdges := 0
	for _, tr := range n.Transitions(n.Start()) {
		if tr.Hi <= 0x7F {
			asciiEdges++
		}
	}
	if asciiEdges != 1 {
		t.Errorf("ascii edges at start = %d, want 1", asciiEdges)
	}
}
