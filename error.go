package descent

import (
	"fmt"
	"reflect"
)

// Error represents an error while parsing.
//
// The error will contain the token position at which it occurred.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() int
}

// UnexpectedTokenError is returned by the leaf parsers and by Expected when a token does not match.
type UnexpectedTokenError struct {
	Unexpected string
	Expected   string
	Pos        int
}

func (u *UnexpectedTokenError) Error() string { return formatError(u.Pos, u.Message()) }

func (u *UnexpectedTokenError) Message() string { // nolint: golint
	var expected string
	if u.Expected != "" {
		expected = fmt.Sprintf(" (expected %s)", u.Expected)
	}
	return fmt.Sprintf("unexpected token %q%s", u.Unexpected, expected)
}

func (u *UnexpectedTokenError) Position() int { return u.Pos } // nolint: golint

// Expected returns a SyntaxError that describes the token found in tokens at the failure position.
//
// The data passed to SyntaxError is a description of what was expected.
func Expected[T any](tokens []T) SyntaxError[string] {
	return SyntaxErrorFunc[string](func(pos int, expected string) error {
		return &UnexpectedTokenError{Unexpected: Describe(tokens, pos), Expected: expected, Pos: pos}
	})
}

// ConversionError is returned by As when a parsed value does not implement the fragment type.
type ConversionError struct {
	Pos  int
	From string
	To   string
}

func (c *ConversionError) Error() string { return formatError(c.Pos, c.Message()) }

func (c *ConversionError) Message() string { // nolint: golint
	return fmt.Sprintf("can't convert %s to %s", c.From, c.To)
}

func (c *ConversionError) Position() int { return c.Pos } // nolint: golint

type parseError struct {
	Msg string
	Pos int
	Err error
}

func (p *parseError) Error() string {
	if p.Err == nil {
		return formatError(p.Pos, p.Msg)
	}
	return formatError(p.Pos, p.Msg+": "+p.Err.Error())
}

func (p *parseError) Message() string { return p.Msg }
func (p *parseError) Position() int   { return p.Pos }
func (p *parseError) Unwrap() error   { return p.Err }

// AnnotateError wraps an existing error with a position.
//
// If the existing error is already an Error it will be returned unmodified.
func AnnotateError(pos int, err error) error {
	if perr, ok := err.(Error); ok {
		return perr
	}
	return &parseError{Msg: err.Error(), Pos: pos}
}

// Errorf creates a new Error at the given position.
func Errorf(pos int, format string, args ...interface{}) error {
	return &parseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Wrapf attempts to wrap an existing error in a new message.
//
// The original error is available through errors.Unwrap.
func Wrapf(pos int, err error, format string, args ...interface{}) error {
	return &parseError{Msg: fmt.Sprintf(format, args...), Pos: pos, Err: err}
}

func formatError(pos int, message string) string {
	return fmt.Sprintf("pos %d: %s", pos, message)
}

// Describe renders the token at pos for diagnostics, or "<EOF>" past the end of tokens.
func Describe[T any](tokens []T, pos int) string {
	if pos < 0 || pos >= len(tokens) {
		return "<EOF>"
	}
	return fmt.Sprint(tokens[pos])
}

func typeName[V any]() string {
	return reflect.TypeOf((*V)(nil)).Elem().String()
}
