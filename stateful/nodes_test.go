package stateful_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/descent"
	"github.com/alecthomas/descent/stateful"
)

// symbols is a context recording declared identifiers, without rollback.
type symbols struct {
	declared []string
}

// scopes is a context with rollback.
type scopes struct {
	symbols
	rollbacks int
}

func (s *scopes) Checkpoint() func() {
	n := len(s.declared)
	return func() {
		s.rollbacks++
		s.declared = s.declared[:n]
	}
}

// declare consumes "var" followed by an identifier and records it, then requires a ";".
func declare[C interface{ add(string) }](tokens []string, pos int, ctx C) (string, int, error) {
	if pos >= len(tokens) || tokens[pos] != "var" {
		return "", pos, descent.Errorf(pos, "expected var")
	}
	if pos+1 >= len(tokens) {
		return "", pos, descent.Errorf(pos+1, "expected name")
	}
	name := tokens[pos+1]
	ctx.add(name)
	if pos+2 >= len(tokens) || tokens[pos+2] != ";" {
		return "", pos, descent.Errorf(pos+2, "expected ;")
	}
	return name, pos + 3, nil
}

func (s *symbols) add(name string) { s.declared = append(s.declared, name) }

func declaration[C any, P interface {
	*C
	add(string)
}]() stateful.Parser[string, C, string] {
	return stateful.ParseFunc[string, C, string](func(tokens []string, pos int, ctx *C) (string, int, error) {
		return declare[P](tokens, pos, P(ctx))
	})
}

// reference matches a previously declared identifier.
var reference = stateful.ParseFunc[string, symbols, string](func(tokens []string, pos int, ctx *symbols) (string, int, error) {
	if pos < len(tokens) {
		for _, name := range ctx.declared {
			if name == tokens[pos] {
				return name, pos + 1, nil
			}
		}
	}
	return "", pos, descent.Errorf(pos, "undeclared")
})

func literal(want string) stateful.Parser[string, symbols, string] {
	return stateful.Stateless[symbols](descent.Token(want))
}

func TestCombineThreadsContext(t *testing.T) {
	tokens := []string{"var", "x", ";", "x"}
	ctx := &symbols{}
	name, next, err := stateful.Combine(tokens, 0, ctx, errors.New("expected statement"),
		stateful.Parser[string, symbols, string](reference),
		declaration[symbols](),
	)
	require.NoError(t, err)
	require.Equal(t, "x", name)
	require.Equal(t, 3, next)
	require.Equal(t, []string{"x"}, ctx.declared)

	// The declaration is visible to later rules sharing the context.
	name, next, err = reference.Parse(tokens, next, ctx)
	require.NoError(t, err)
	require.Equal(t, "x", name)
	require.Equal(t, 4, next)
}

func TestCombineWithoutCheckpointKeepsPartialMutations(t *testing.T) {
	// "var y" without ";" declares y and then fails.
	tokens := []string{"var", "y", "z"}
	ctx := &symbols{}
	_, next, err := stateful.CombineSyntax(tokens, 0, ctx, descent.Expected(tokens), "statement",
		declaration[symbols](),
		stateful.Parser[string, symbols, string](reference),
	)
	require.EqualError(t, err, `pos 0: unexpected token "var" (expected statement)`)
	require.Equal(t, 0, next)
	require.Equal(t, []string{"y"}, ctx.declared)
}

func TestCombineWithCheckpointRollsBack(t *testing.T) {
	tokens := []string{"var", "y", "z"}
	ctx := &scopes{}
	_, next, err := stateful.Combine(tokens, 0, ctx, errors.New("expected statement"),
		declaration[scopes](),
	)
	require.Error(t, err)
	require.Equal(t, 0, next)
	require.Empty(t, ctx.declared)
	require.Equal(t, 1, ctx.rollbacks)

	// Successful alternatives are kept.
	tokens = []string{"var", "y", ";"}
	_, _, err = stateful.Combine(tokens, 0, ctx, errors.New("expected statement"),
		declaration[scopes](),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"y"}, ctx.declared)
	require.Equal(t, 1, ctx.rollbacks)
}

func TestManyDelimitedWithContext(t *testing.T) {
	tokens := []string{"var", "a", ";", ",", "var", "b", ";", ",", "var", "c"}
	ctx := &scopes{}
	names, next := stateful.ManyDelimited(tokens, 0, ctx, declaration[scopes](), ",")
	require.Equal(t, []string{"a", "b"}, names)
	require.Equal(t, 7, next)
	// The incomplete "var c" was rolled back.
	require.Equal(t, []string{"a", "b"}, ctx.declared)

	names, next, err := stateful.DelimitedByFunc(declaration[scopes](), func(t string) bool { return t == "," }).Parse(tokens, 4, ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, names)
	require.Equal(t, 7, next)
}

func TestManyDelimitedScenario(t *testing.T) {
	tokens := []string{"x", ",", "x", ",", "x"}
	ctx := &symbols{declared: []string{"x"}}
	names, next := stateful.ManyDelimited(tokens, 0, ctx, stateful.Parser[string, symbols, string](reference), ",")
	require.Equal(t, []string{"x", "x", "x"}, names)
	require.Equal(t, 5, next)

	names, next = stateful.ManyDelimited(tokens[:2], 0, ctx, stateful.Parser[string, symbols, string](reference), ",")
	require.Equal(t, []string{"x"}, names)
	require.Equal(t, 1, next)
}

func TestManyAndMaybe(t *testing.T) {
	tokens := []string{"var", "a", ";", "var", "b", ";", "a", "b", "c"}
	ctx := &symbols{}
	names, next, err := stateful.ManyOf(declaration[symbols]()).Parse(tokens, 0, ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)
	require.Equal(t, 6, next)

	refs, next := stateful.Many(tokens, next, ctx, stateful.Parser[string, symbols, string](reference))
	require.Equal(t, []string{"a", "b"}, refs)
	require.Equal(t, 8, next)

	v, after := stateful.Maybe(tokens, next, ctx, stateful.Parser[string, symbols, string](reference))
	require.False(t, v.Valid)
	require.Equal(t, 8, after)

	v, after = stateful.Maybe(tokens, 7, ctx, stateful.Parser[string, symbols, string](reference))
	require.Equal(t, descent.Some("b"), v)
	require.Equal(t, 8, after)

	ov, after, err := stateful.Opt(literal("c")).Parse(tokens, 8, ctx)
	require.NoError(t, err)
	require.Equal(t, descent.Some("c"), ov)
	require.Equal(t, 9, after)
}

func TestManyOfOptStopsOnZeroWidthSuccess(t *testing.T) {
	ctx := &symbols{}
	never := literal("never")
	values, next := stateful.Many([]string{"a"}, 0, ctx, never)
	require.Empty(t, values)
	require.Equal(t, 0, next)

	optional, next := stateful.Many([]string{"a"}, 0, ctx, stateful.Opt(never))
	require.Equal(t, []descent.Optional[string]{descent.None[string]()}, optional)
	require.Equal(t, 0, next)
}

type stmt interface{ stmt() }

type decl struct{ Name string }

func (decl) stmt() {}

func TestAsAndLift(t *testing.T) {
	tokens := []string{"var", "q", ";"}
	ctx := &symbols{}
	p := stateful.As[stmt](stateful.Lift(declare[*symbols], func(name string) decl { return decl{name} }).Parse)
	s, next, err := p.Parse(tokens, 0, ctx)
	require.NoError(t, err)
	require.Equal(t, decl{"q"}, s)
	require.Equal(t, 3, next)

	bad := stateful.As[stmt](declare[*symbols])
	_, next, err = bad.Parse(tokens, 0, &symbols{})
	require.EqualError(t, err, "pos 0: can't convert string to stateful_test.stmt")
	require.Equal(t, 0, next)
}

func TestOneOfSyntax(t *testing.T) {
	tokens := []string{"if"}
	p := stateful.OneOfSyntax(descent.Expected(tokens), "keyword", literal("while"), literal("if"))
	kw, next, err := p.Parse(tokens, 0, &symbols{})
	require.NoError(t, err)
	require.Equal(t, "if", kw)
	require.Equal(t, 1, next)

	_, _, err = stateful.OneOf(errors.New("nope"), literal("while")).Parse(tokens, 0, &symbols{})
	require.EqualError(t, err, "nope")
}

func TestManyAndMaybeRollBackFailedAttempts(t *testing.T) {
	tokens := []string{"var", "a", ";", "var", "b"}
	ctx := &scopes{}
	names, next := stateful.Many(tokens, 0, ctx, declaration[scopes]())
	require.Equal(t, []string{"a"}, names)
	require.Equal(t, 3, next)
	// The incomplete "var b" declared b before failing.
	require.Equal(t, []string{"a"}, ctx.declared)
	require.Equal(t, 1, ctx.rollbacks)

	v, after := stateful.Maybe(tokens, next, ctx, declaration[scopes]())
	require.False(t, v.Valid)
	require.Equal(t, 3, after)
	require.Equal(t, []string{"a"}, ctx.declared)
	require.Equal(t, 2, ctx.rollbacks)
}

func TestManyOfOptMatchesManyWhenConsuming(t *testing.T) {
	tokens := []string{"var", "a", ";", "var", "b", ";", "x"}
	plain, plainNext := stateful.Many(tokens, 0, &symbols{}, declaration[symbols]())
	wrapped, wrappedNext := stateful.Many(tokens, 0, &symbols{}, stateful.Opt(declaration[symbols]()))
	require.Equal(t, []string{"a", "b"}, plain)
	require.Equal(t, plainNext, wrappedNext)
	require.Equal(t, []descent.Optional[string]{descent.Some("a"), descent.Some("b")}, wrapped)
}
