package calc

import (
	"io"

	"github.com/alecthomas/descent"
	"github.com/alecthomas/descent/stateful"
)

// An Option to modify the behaviour of the parser.
type Option func(g *grammar)

// Trace the parse of statements and expressions to "w".
func Trace(w io.Writer) Option {
	return func(g *grammar) {
		t := descent.NewTracer(w)
		g.statement = stateful.Traced(t, "statement", g.statement)
		g.expr = stateful.Traced(t, "expr", g.expr)
		g.term = stateful.Traced(t, "term", g.term)
		g.unary = stateful.Traced(t, "unary", g.unary)
		g.factor = stateful.Traced(t, "factor", g.factor)
	}
}
