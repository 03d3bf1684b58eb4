package descent

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"
)

// A Tracer writes a trace of parser attempts to an io.Writer.
//
// Parsers wrapped by the same Tracer are indented by nesting depth.
type Tracer struct {
	w      io.Writer
	indent int
}

// NewTracer creates a Tracer writing to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// Trace the parse of p to "w".
func Trace[T, A any](w io.Writer, name string, p Parser[T, A]) Parser[T, A] {
	return Traced(NewTracer(w), name, p)
}

// Traced wraps p so that each attempt is written to t.
func Traced[T, A any](t *Tracer, name string, p Parser[T, A]) Parser[T, A] {
	return ParseFunc[T, A](func(tokens []T, pos int) (A, int, error) {
		t.Enter(name, pos, Describe(tokens, pos))
		ast, next, err := p.Parse(tokens, pos)
		t.Exit(name, next, ast, err)
		return ast, next, err
	})
}

// Enter records the start of an attempt at pos, where "token" describes the current token.
func (t *Tracer) Enter(name string, pos int, token string) {
	fmt.Fprintf(t.w, "%s%s @%d %q\n", strings.Repeat(" ", t.indent), name, pos, token)
	t.indent += 2
}

// Exit records the outcome of the most recent attempt.
func (t *Tracer) Exit(name string, next int, fragment interface{}, err error) {
	t.indent -= 2
	prefix := strings.Repeat(" ", t.indent)
	if err != nil {
		fmt.Fprintf(t.w, "%s%s fail: %s\n", prefix, name, err)
		return
	}
	fmt.Fprintf(t.w, "%s%s ok @%d %s\n", prefix, name, next, repr.String(fragment))
}
