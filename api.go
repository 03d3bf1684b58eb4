package descent

// A Parser attempts to recognise one grammar unit in tokens starting at pos.
//
// On success it returns the produced fragment and the position immediately after the consumed
// tokens, which must not be less than pos. On failure it returns a non-nil error and the caller
// continues from its own position as if the attempt never happened.
type Parser[T, A any] interface {
	Parse(tokens []T, pos int) (A, int, error)
}

// ParseFunc is a function implementing Parser.
type ParseFunc[T, A any] func(tokens []T, pos int) (A, int, error)

// Parse calls f.
func (f ParseFunc[T, A]) Parse(tokens []T, pos int) (A, int, error) { return f(tokens, pos) }

// Lift adapts a function producing a concrete value V into a Parser producing fragments of type A.
//
// "into" is applied once to each successful value. Errors are passed through unchanged.
func Lift[T, V, A any](f func(tokens []T, pos int) (V, int, error), into func(V) A) Parser[T, A] {
	return ParseFunc[T, A](func(tokens []T, pos int) (A, int, error) {
		v, next, err := f(tokens, pos)
		if err != nil {
			var zero A
			return zero, pos, err
		}
		return into(v), next, nil
	})
}

// As adapts a function producing V into a Parser producing A, where A is an interface V implements.
//
// eg.
//
//	number := descent.As[Expr](parseNumber) // parseNumber returns (*Number, int, error)
//
// A value that does not implement A fails with a *ConversionError.
func As[A, T, V any](f func(tokens []T, pos int) (V, int, error)) Parser[T, A] {
	return ParseFunc[T, A](func(tokens []T, pos int) (A, int, error) {
		var zero A
		v, next, err := f(tokens, pos)
		if err != nil {
			return zero, pos, err
		}
		a, ok := any(v).(A)
		if !ok {
			return zero, pos, &ConversionError{Pos: pos, From: typeName[V](), To: typeName[A]()}
		}
		return a, next, nil
	})
}

// SyntaxError is implemented by anything that can construct a position-tagged error from
// caller-supplied data, such as a description of what was expected.
type SyntaxError[D any] interface {
	SyntaxError(pos int, data D) error
}

// SyntaxErrorFunc is a function implementing SyntaxError.
type SyntaxErrorFunc[D any] func(pos int, data D) error

// SyntaxError calls f.
func (f SyntaxErrorFunc[D]) SyntaxError(pos int, data D) error { return f(pos, data) }

// Optional is the result of Maybe.
//
// Valid is false if the underlying parser failed.
type Optional[A any] struct {
	Value A
	Valid bool
}

// Some returns a valid Optional holding v.
func Some[A any](v A) Optional[A] { return Optional[A]{Value: v, Valid: true} }

// None returns an invalid Optional.
func None[A any]() Optional[A] { return Optional[A]{} }
