package descent

import "fmt"

// Combine tries each parser in order at pos and returns the first success.
//
// If every parser fails, err is returned along with pos. The errors of individual alternatives
// are discarded.
func Combine[T, A any](tokens []T, pos int, err error, parsers ...Parser[T, A]) (A, int, error) {
	for _, p := range parsers {
		if ast, next, perr := p.Parse(tokens, pos); perr == nil {
			return ast, next, nil
		}
	}
	var zero A
	return zero, pos, err
}

// CombineSyntax tries each parser in order at pos and returns the first success.
//
// If every parser fails, a single error is constructed by syn from pos and data.
func CombineSyntax[T, A, D any](tokens []T, pos int, syn SyntaxError[D], data D, parsers ...Parser[T, A]) (A, int, error) {
	for _, p := range parsers {
		if ast, next, err := p.Parse(tokens, pos); err == nil {
			return ast, next, nil
		}
	}
	var zero A
	return zero, pos, syn.SyntaxError(pos, data)
}

// OneOf returns a Parser applying Combine to parsers.
func OneOf[T, A any](err error, parsers ...Parser[T, A]) Parser[T, A] {
	return ParseFunc[T, A](func(tokens []T, pos int) (A, int, error) {
		return Combine(tokens, pos, err, parsers...)
	})
}

// OneOfSyntax returns a Parser applying CombineSyntax to parsers.
func OneOfSyntax[T, A, D any](syn SyntaxError[D], data D, parsers ...Parser[T, A]) Parser[T, A] {
	return ParseFunc[T, A](func(tokens []T, pos int) (A, int, error) {
		return CombineSyntax(tokens, pos, syn, data, parsers...)
	})
}

// Many applies p repeatedly, collecting fragments until p fails.
//
// Many never fails. The returned position is the one following the last successful application,
// or pos if there were none.
//
// A success that does not advance the position ends the repetition, otherwise p would match
// forever. Its fragment is collected only if it is the first, so Many(Opt(p)) equals Many(p)
// whenever p consumes input on success, and yields a single absent element where p matches
// nothing. Grammars should not rely on this: a repeated parser is expected to either fail or
// consume input.
func Many[T, A any](tokens []T, pos int, p Parser[T, A]) ([]A, int) {
	var out []A
	for {
		ast, next, err := p.Parse(tokens, pos)
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
func ManyOf[T, A any](p Parser[T, A]) Parser[T, []A] {
	return ParseFunc[T, []A](func(tokens []T, pos int) ([]A, int, error) {
		out, next := Many(tokens, pos, p)
		return out, next, nil
	})
}

// ManyDelimited applies p repeatedly, expecting delimiter between successive elements.
//
// Repetition stops when p fails or when the token following an element is not delimiter. A
// delimiter that is not followed by a successful element is not consumed.
func ManyDelimited[T comparable, A any](tokens []T, pos int, p Parser[T, A], delimiter T) ([]A, int) {
	return ManyDelimitedFunc(tokens, pos, p, func(t T) bool { return t == delimiter })
}

// ManyDelimitedFunc is like ManyDelimited but identifies delimiters with a predicate.
//
// This is useful when token equality includes positional information.
func ManyDelimitedFunc[T, A any](tokens []T, pos int, p Parser[T, A], isDelimiter func(T) bool) ([]A, int) {
	var out []A
	for {
		ast, next, err := p.Parse(tokens, pos)
		if err != nil {
			if len(out) > 0 {
				// Give back the delimiter consumed after the previous element.
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
func DelimitedBy[T comparable, A any](p Parser[T, A], delimiter T) Parser[T, []A] {
	return ParseFunc[T, []A](func(tokens []T, pos int) ([]A, int, error) {
		out, next := ManyDelimited(tokens, pos, p, delimiter)
		return out, next, nil
	})
}

// DelimitedByFunc returns a Parser applying ManyDelimitedFunc to p. It never fails.
func DelimitedByFunc[T, A any](p Parser[T, A], isDelimiter func(T) bool) Parser[T, []A] {
	return ParseFunc[T, []A](func(tokens []T, pos int) ([]A, int, error) {
		out, next := ManyDelimitedFunc(tokens, pos, p, isDelimiter)
		return out, next, nil
	})
}

// Maybe applies p once.
//
// On failure the error is discarded and an invalid Optional is returned with pos unchanged.
func Maybe[T, A any](tokens []T, pos int, p Parser[T, A]) (Optional[A], int) {
	ast, next, err := p.Parse(tokens, pos)
	if err != nil {
		return None[A](), pos
	}
	return Some(ast), next
}

// Opt returns a Parser applying Maybe to p. It never fails.
func Opt[T, A any](p Parser[T, A]) Parser[T, Optional[A]] {
	return ParseFunc[T, Optional[A]](func(tokens []T, pos int) (Optional[A], int, error) {
		out, next := Maybe(tokens, pos, p)
		return out, next, nil
	})
}

// Token matches a single token equal to want.
func Token[T comparable](want T) Parser[T, T] {
	return Satisfy(fmt.Sprint(want), func(t T) bool { return t == want })
}

// Satisfy matches a single token for which pred returns true.
//
// "expected" describes the token in errors.
func Satisfy[T any](expected string, pred func(T) bool) Parser[T, T] {
	return ParseFunc[T, T](func(tokens []T, pos int) (T, int, error) {
		if pos < len(tokens) && pred(tokens[pos]) {
			return tokens[pos], pos + 1, nil
		}
		var zero T
		return zero, pos, &UnexpectedTokenError{Unexpected: Describe(tokens, pos), Expected: expected, Pos: pos}
	})
}

// EOF matches the end of the token sequence without consuming anything.
func EOF[T any]() Parser[T, struct{}] {
	return ParseFunc[T, struct{}](func(tokens []T, pos int) (struct{}, int, error) {
		if pos >= len(tokens) {
			return struct{}{}, pos, nil
		}
		return struct{}{}, pos, &UnexpectedTokenError{Unexpected: Describe(tokens, pos), Expected: "<EOF>", Pos: pos}
	})
}
