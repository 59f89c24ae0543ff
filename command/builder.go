package command

import (
	"github.com/Bloeckchengrafik/lieutenant/argument"
	"github.com/Bloeckchengrafik/lieutenant/parser"
)

// Builder is a grammar chain that has not extracted any values yet: the
// command keyword, further literals and whitespace. The first argument
// fragment turns it into a Chain carrying the extraction type.
type Builder struct {
	frag    parser.Fragment[parser.Unit]
	keyword string
}

// Literal begins a command grammar with its keyword, conventionally of the
// form "/name".
func Literal(value string) *Builder {
	return &Builder{
		frag:    parser.NewLiteral(value),
		keyword: value,
	}
}

func (b *Builder) with(f parser.Fragment[parser.Unit]) *Builder {
	return &Builder{frag: parser.Terminated(b.frag, f), keyword: b.keyword}
}

// Literal appends an exact literal match.
func (b *Builder) Literal(value string) *Builder {
	return b.with(parser.NewLiteral(value))
}

// Space appends mandatory whitespace.
func (b *Builder) Space() *Builder {
	return b.with(parser.OneOrMoreSpace{})
}

// OptSpace appends optional whitespace.
func (b *Builder) OptSpace() *Builder {
	return b.with(parser.Discard(parser.NewOpt[parser.Unit](parser.OneOrMoreSpace{})))
}

// FollowedBy appends an arbitrary non-extracting fragment. Extracting
// fragments go through Arg.
func (b *Builder) FollowedBy(f parser.Fragment[parser.Unit]) *Builder {
	return b.with(f)
}

// Bool appends a boolean argument.
func (b *Builder) Bool() *Chain[bool] {
	return Arg[bool](b, argument.BoolParser{})
}

// Uint32 appends a 32-bit unsigned integer argument.
func (b *Builder) Uint32() *Chain[uint32] {
	return Arg[uint32](b, argument.Uint32Parser{})
}

// Float32 appends a 32-bit float argument.
func (b *Builder) Float32() *Chain[float32] {
	return Arg[float32](b, argument.Float32Parser{})
}

// Str appends an identifier-string argument: one non-whitespace token.
func (b *Builder) Str() *Chain[string] {
	return Arg[string](b, argument.StringParser{})
}

// Wildcard appends a wildcard argument capturing the rest of the line.
func (b *Builder) Wildcard() *Chain[argument.Wildcard] {
	return Arg[argument.Wildcard](b, argument.WildcardParser{})
}

// Choice appends a closed-set string argument.
func (b *Builder) Choice(choices ...string) *Chain[string] {
	return Arg[string](b, argument.NewChoice(choices...))
}

// OptBool appends an optional boolean argument.
func (b *Builder) OptBool() *Chain[parser.Option[bool]] {
	return OptArg[bool](b, argument.BoolParser{})
}

// OptUint32 appends an optional 32-bit unsigned integer argument.
func (b *Builder) OptUint32() *Chain[parser.Option[uint32]] {
	return OptArg[uint32](b, argument.Uint32Parser{})
}

// OptFloat32 appends an optional 32-bit float argument.
func (b *Builder) OptFloat32() *Chain[parser.Option[float32]] {
	return OptArg[float32](b, argument.Float32Parser{})
}

// OptStr appends an optional identifier-string argument.
func (b *Builder) OptStr() *Chain[parser.Option[string]] {
	return OptArg[string](b, argument.StringParser{})
}

// OptChoice appends an optional closed-set string argument.
func (b *Builder) OptChoice(choices ...string) *Chain[parser.Option[string]] {
	return OptArg[string](b, argument.NewChoice(choices...))
}

// Arg appends the first extracting fragment to a keyword-only chain.
func Arg[T any](b *Builder, f parser.Fragment[T]) *Chain[T] {
	return &Chain[T]{
		frag:    parser.Preceded(b.frag, f),
		keyword: b.keyword,
	}
}

// OptArg appends the first extracting fragment as an optional.
func OptArg[T any](b *Builder, f parser.Fragment[T]) *Chain[parser.Option[T]] {
	return Arg[parser.Option[T]](b, parser.NewOpt(f))
}

// Chain is a grammar chain with extraction type E. Appending an argument of
// type T yields a Chain with extraction Pair[E, T]; the pairs nest to the
// left in the order the arguments were declared.
type Chain[E any] struct {
	frag    parser.Fragment[E]
	keyword string
}

func (c *Chain[E]) with(f parser.Fragment[parser.Unit]) *Chain[E] {
	return &Chain[E]{frag: parser.Terminated(c.frag, f), keyword: c.keyword}
}

// Literal appends an exact literal match.
func (c *Chain[E]) Literal(value string) *Chain[E] {
	return c.with(parser.NewLiteral(value))
}

// Space appends mandatory whitespace.
func (c *Chain[E]) Space() *Chain[E] {
	return c.with(parser.OneOrMoreSpace{})
}

// OptSpace appends optional whitespace.
func (c *Chain[E]) OptSpace() *Chain[E] {
	return c.with(parser.Discard(parser.NewOpt[parser.Unit](parser.OneOrMoreSpace{})))
}

// FollowedBy appends an arbitrary non-extracting fragment.
func (c *Chain[E]) FollowedBy(f parser.Fragment[parser.Unit]) *Chain[E] {
	return c.with(f)
}

// Bool appends a boolean argument.
func (c *Chain[E]) Bool() *Chain[parser.Pair[E, bool]] {
	return Next[E, bool](c, argument.BoolParser{})
}

// Uint32 appends a 32-bit unsigned integer argument.
func (c *Chain[E]) Uint32() *Chain[parser.Pair[E, uint32]] {
	return Next[E, uint32](c, argument.Uint32Parser{})
}

// Float32 appends a 32-bit float argument.
func (c *Chain[E]) Float32() *Chain[parser.Pair[E, float32]] {
	return Next[E, float32](c, argument.Float32Parser{})
}

// Str appends an identifier-string argument.
func (c *Chain[E]) Str() *Chain[parser.Pair[E, string]] {
	return Next[E, string](c, argument.StringParser{})
}

// Wildcard appends a wildcard argument capturing the rest of the line.
func (c *Chain[E]) Wildcard() *Chain[parser.Pair[E, argument.Wildcard]] {
	return Next[E, argument.Wildcard](c, argument.WildcardParser{})
}

// Choice appends a closed-set string argument.
func (c *Chain[E]) Choice(choices ...string) *Chain[parser.Pair[E, string]] {
	return Next[E, string](c, argument.NewChoice(choices...))
}

// OptBool appends an optional boolean argument.
func (c *Chain[E]) OptBool() *Chain[parser.Pair[E, parser.Option[bool]]] {
	return OptNext[E, bool](c, argument.BoolParser{})
}

// OptUint32 appends an optional 32-bit unsigned integer argument.
func (c *Chain[E]) OptUint32() *Chain[parser.Pair[E, parser.Option[uint32]]] {
	return OptNext[E, uint32](c, argument.Uint32Parser{})
}

// OptFloat32 appends an optional 32-bit float argument.
func (c *Chain[E]) OptFloat32() *Chain[parser.Pair[E, parser.Option[float32]]] {
	return OptNext[E, float32](c, argument.Float32Parser{})
}

// OptStr appends an optional identifier-string argument.
func (c *Chain[E]) OptStr() *Chain[parser.Pair[E, parser.Option[string]]] {
	return OptNext[E, string](c, argument.StringParser{})
}

// OptChoice appends an optional closed-set string argument.
func (c *Chain[E]) OptChoice(choices ...string) *Chain[parser.Pair[E, parser.Option[string]]] {
	return OptNext[E, string](c, argument.NewChoice(choices...))
}

// Next appends an extracting fragment to a chain.
func Next[E, T any](c *Chain[E], f parser.Fragment[T]) *Chain[parser.Pair[E, T]] {
	return &Chain[parser.Pair[E, T]]{
		frag:    parser.NewAnd(c.frag, f),
		keyword: c.keyword,
	}
}

// OptNext appends an extracting fragment as an optional.
func OptNext[E, T any](c *Chain[E], f parser.Fragment[T]) *Chain[parser.Pair[E, parser.Option[T]]] {
	return Next[E, parser.Option[T]](c, parser.NewOpt(f))
}

// OnCall closes a grammar: the end guard is appended and the two-stage
// handler bound. The first stage receives the extraction; the closure it
// returns receives the caller's game state at dispatch time.
func OnCall[E, GS, R any](c *Chain[E], handler func(E) func(GS) R) *Command[GS, R] {
	return newCommand(c.frag, c.keyword, handler)
}

// OnCall0 closes a grammar without extractions.
func OnCall0[GS, R any](b *Builder, handler func(GS) R) *Command[GS, R] {
	return newCommand(b.frag, b.keyword, func(parser.Unit) func(GS) R { return handler })
}
