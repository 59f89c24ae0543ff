// Package parser provides the grammar-fragment contract and the primitive
// fragments and combinators that command grammars are assembled from.
//
// A fragment parses a prefix of its input and contributes a statically typed
// extraction to the grammar it is part of. Fragments compose with And
// (sequencing, tuple concatenation) and Opt (optional wrapping). Every
// fragment also renders itself as a regular expression whose language
// over-approximates the set of inputs the fragment accepts; the regex is
// consumed by the nfa and dfa packages to build dispatch automata.
package parser

// State is an opaque alternative cursor for iterative parsing.
//
// A fragment that can interpret its input in more than one way hands back a
// non-nil State, after a success as well as after a failure; re-invoking
// Parse with that state selects the next alternative. nil always selects the first alternative.
// A nil next state returned with a failure means the fragment has no further
// alternatives to offer.
type State any

// Fragment is the contract every grammar fragment implements.
//
// Parse attempts the alternative identified by state on input. On success it
// returns the extraction and the unconsumed remainder (including any space
// that separated the matched token from the next one; consuming separators is
// the job of an explicit OneOrMoreSpace fragment). The returned next state,
// valid on both success and failure, enumerates further alternatives.
//
// Regex returns a regular expression that matches at least every input the
// fragment accepts. The parser remains authoritative for acceptance; the
// regex may over-approximate.
type Fragment[E any] interface {
	Parse(state State, input string) (ext E, rest string, next State, err error)
	Regex() string
}

// Unit is the extraction of fragments that match input without contributing
// a value, such as literals and whitespace.
type Unit struct{}

// Pair is the concatenation of two extractions. Sequencing fragments with
// And nests pairs to the left, so a grammar with extractions x, y, z yields
// Pair[Pair[x, y], z].
type Pair[A, B any] struct {
	A A
	B B
}
