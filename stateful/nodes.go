package stateful

import "github.com/alecthomas/descent"

// Combine tries each parser in order at pos and returns the first success.
//
// If every parser fails, err is returned along with pos.
func Combine[T, C, A any](tokens []T, pos int, ctx *C, err error, parsers ...Parser[T, C, A]) (A, int, error) {
	for _, p := range parsers {
		if ast, next, perr := attempt(p, tokens, pos, ctx); perr == nil {
			return ast, next, nil
		}
	}
	var zero A
	return zero, pos, err
}

// CombineSyntax tries each parser in order at pos and returns the first success.
//
// If every parser fails, a single error is constructed by syn from pos and data.
func CombineSyntax[T, C, A, D any](tokens []T, pos int, ctx *C, syn descent.SyntaxError[D], data D, parsers ...Parser[T, C, A]) (A, int, error) {
	for _, p := range parsers {
		if ast, next, err := attempt(p, tokens, pos, ctx); err == nil {
			return ast, next, nil
		}
	}
	var zero A
	return zero, pos, syn.SyntaxError(pos, data)
}

// OneOf returns a Parser applying Combine to parsers.
func OneOf[T, C, A any](err error, parsers ...Parser[T, C, A]) Parser[T, C, A] {
	return ParseFunc[T, C, A](func(tokens []T, pos int, ctx *C) (A, int, error) {
		return Combine(tokens, pos, ctx, err, parsers...)
	})
}

// OneOfSyntax returns a Parser applying CombineSyntax to parsers.
func OneOfSyntax[T, C, A, D any](syn descent.SyntaxError[D], data D, parsers ...Parser[T, C, A]) Parser[T, C, A] {
	return ParseFunc[T, C, A](func(tokens []T, pos int, ctx *C) (A, int, error) {
		return CombineSyntax(tokens, pos, ctx, syn, data, parsers...)
	})
}

// Many applies p repeatedly, collecting fragments until p fails. It never fails.
//
// As with descent.Many, a success that does not advance the position ends the repetition and
// is collected only if nothing else was.
func Many[T, C, A any](tokens []T, pos int, ctx *C, p Parser[T, C, A]) ([]A, int) {
	var out []A
	for {
		ast, next, err := attempt(p, tokens, pos, ctx)
		if err != nil {
			return out, pos
		}
		if next <= pos {
			// Only a repetition that matched nothing else records the empty match.
			if len(out) == 0 {
				out = append(out, ast)
			}
			return out, pos
		}
		out = append(out, ast)
		pos = next
	}
}

// ManyOf returns a Parser applying Many to p. It never fails.
func ManyOf[T, C, A any](p Parser[T, C, A]) Parser[T, C, []A] {
	return ParseFunc[T, C, []A](func(tokens []T, pos int, ctx *C) ([]A, int, error) {
		out, next := Many(tokens, pos, ctx, p)
		return out, next, nil
	})
}

// ManyDelimited applies p repeatedly, expecting delimiter between successive elements.
//
// A delimiter that is not followed by a successful element is not consumed.
func ManyDelimited[T comparable, C, A any](tokens []T, pos int, ctx *C, p Parser[T, C, A], delimiter T) ([]A, int) {
	return ManyDelimitedFunc(tokens, pos, ctx, p, func(t T) bool { return t == delimiter })
}

// ManyDelimitedFunc is like ManyDelimited but identifies delimiters with a predicate.
func ManyDelimitedFunc[T, C, A any](tokens []T, pos int, ctx *C, p Parser[T, C, A], isDelimiter func(T) bool) ([]A, int) {
	var out []A
	for {
		ast, next, err := attempt(p, tokens, pos, ctx)
		if err != nil {
			if len(out) > 0 {
				pos--
			}
			return out, pos
		}
		out = append(out, ast)
		pos = next
		if pos >= len(tokens) || !isDelimiter(tokens[pos]) {
			return out, pos
		}
		pos++
	}
}

// DelimitedBy returns a Parser applying ManyDelimited to p. It never fails.
func DelimitedBy[T comparable, C, A any](p Parser[T, C, A], delimiter T) Parser[T, C, []A] {
	return ParseFunc[T, C, []A](func(tokens []T, pos int, ctx *C) ([]A, int, error) {
		out, next := ManyDelimited(tokens, pos, ctx, p, delimiter)
		return out, next, nil
	})
}

// DelimitedByFunc returns a Parser applying ManyDelimitedFunc to p. It never fails.
func DelimitedByFunc[T, C, A any](p Parser[T, C, A], isDelimiter func(T) bool) Parser[T, C, []A] {
	return ParseFunc[T, C, []A](func(tokens []T, pos int, ctx *C) ([]A, int, error) {
		out, next := ManyDelimitedFunc(tokens, pos, ctx, p, isDelimiter)
		return out, next, nil
	})
}

// Maybe applies p once, absorbing any failure.
func Maybe[T, C, A any](tokens []T, pos int, ctx *C, p Parser[T, C, A]) (descent.Optional[A], int) {
	ast, next, err := attempt(p, tokens, pos, ctx)
	if err != nil {
		return descent.None[A](), pos
	}
	return descent.Some(ast), next
}

// Opt returns a Parser applying Maybe to p. It never fails.
func Opt[T, C, A any](p Parser[T, C, A]) Parser[T, C, descent.Optional[A]] {
	return ParseFunc[T, C, descent.Optional[A]](func(tokens []T, pos int, ctx *C) (descent.Optional[A], int, error) {
		out, next := Maybe(tokens, pos, ctx, p)
		return out, next, nil
	})
}
