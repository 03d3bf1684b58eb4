package stateful

import (
	"io"

	"github.com/alecthomas/descent"
)

// Trace the parse of p to "w".
func Trace[T, C, A any](w io.Writer, name string, p Parser[T, C, A]) Parser[T, C, A] {
	return Traced(descent.NewTracer(w), name, p)
}

// Traced wraps p so that each attempt is written to t.
func Traced[T, C, A any](t *descent.Tracer, name string, p Parser[T, C, A]) Parser[T, C, A] {
	return ParseFunc[T, C, A](func(tokens []T, pos int, ctx *C) (A, int, error) {
		t.Enter(name, pos, descent.Describe(tokens, pos))
		ast, next, err := p.Parse(tokens, pos, ctx)
		t.Exit(name, next, ast, err)
		return ast, next, err
	})
}
