// Package stateful provides the descent combinators for grammars that thread a mutable
// context, such as a symbol table or scope stack, through every rule of a parse.
//
// A context belongs to exactly one parse at a time. Parsers receive it as *C and may mutate it.
//
// By default a failed attempt's mutations remain visible to the caller. Contexts implementing
// Checkpointer are rolled back after every failed attempt made by a combinator in this package.
package stateful

import (
	"reflect"

	"github.com/alecthomas/descent"
)

// A Parser attempts to recognise one grammar unit in tokens starting at pos, with exclusive
// access to ctx.
//
// The position contract is the same as descent.Parser.
type Parser[T, C, A any] interface {
	Parse(tokens []T, pos int, ctx *C) (A, int, error)
}

// ParseFunc is a function implementing Parser.
type ParseFunc[T, C, A any] func(tokens []T, pos int, ctx *C) (A, int, error)

// Parse calls f.
func (f ParseFunc[T, C, A]) Parse(tokens []T, pos int, ctx *C) (A, int, error) {
	return f(tokens, pos, ctx)
}

// Lift adapts a function producing a concrete value V into a Parser producing fragments of type A.
func Lift[T, C, V, A any](f func(tokens []T, pos int, ctx *C) (V, int, error), into func(V) A) Parser[T, C, A] {
	return ParseFunc[T, C, A](func(tokens []T, pos int, ctx *C) (A, int, error) {
		v, next, err := f(tokens, pos, ctx)
		if err != nil {
			var zero A
			return zero, pos, err
		}
		return into(v), next, nil
	})
}

// As adapts a function producing V into a Parser producing A, where A is an interface V implements.
func As[A, T, C, V any](f func(tokens []T, pos int, ctx *C) (V, int, error)) Parser[T, C, A] {
	return ParseFunc[T, C, A](func(tokens []T, pos int, ctx *C) (A, int, error) {
		var zero A
		v, next, err := f(tokens, pos, ctx)
		if err != nil {
			return zero, pos, err
		}
		a, ok := any(v).(A)
		if !ok {
			return zero, pos, &descent.ConversionError{
				Pos:  pos,
				From: reflect.TypeOf((*V)(nil)).Elem().String(),
				To:   reflect.TypeOf((*A)(nil)).Elem().String(),
			}
		}
		return a, next, nil
	})
}

// Stateless adapts a context-free parser for use in a context-threading grammar.
func Stateless[C, T, A any](p descent.Parser[T, A]) Parser[T, C, A] {
	return ParseFunc[T, C, A](func(tokens []T, pos int, _ *C) (A, int, error) {
		return p.Parse(tokens, pos)
	})
}
