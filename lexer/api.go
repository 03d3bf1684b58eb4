package lexer

import (
	"fmt"
	"text/scanner"
)

const (
	// EOF represents an end of file.
	EOF rune = scanner.EOF
)

// A Lexer returns tokens from a source.
type Lexer interface {
	// Next consumes and returns the next token.
	Next() (Token, error)
}

// ConsumeAll reads all tokens from a Lexer, excluding the terminating EOF token.
func ConsumeAll(lexer Lexer) ([]Token, error) {
	tokens := make([]Token, 0, 64)
	for {
		token, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		if token.EOF() {
			return tokens, nil
		}
		tokens = append(tokens, token)
	}
}

// Position of a token.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// A Token returned by a Lexer.
type Token struct {
	// Type of token, one of the text/scanner token classes or the rune itself for punctuation.
	Type  rune
	Value string
	Pos   Position
}

// EOF returns true if this Token is an EOF token.
func (t Token) EOF() bool {
	return t.Type == EOF
}

// Is returns true if the token has the given type and value.
//
// Positions are ignored, which makes Is suitable for delimiter matching.
func (t Token) Is(typ rune, value string) bool {
	return t.Type == typ && t.Value == value
}

func (t Token) String() string {
	if t.EOF() {
		return "<EOF>"
	}
	return t.Value
}

func (t Token) GoString() string {
	if t.Pos == (Position{}) {
		return fmt.Sprintf("Token{%d, %q}", t.Type, t.Value)
	}
	return fmt.Sprintf("Token@%s{%d, %q}", t.Pos.String(), t.Type, t.Value)
}
