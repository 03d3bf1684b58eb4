package lexer

import (
	"io"
	"strings"
	"text/scanner"
)

// textScannerLexer is a Lexer based on text/scanner.Scanner
type textScannerLexer struct {
	scanner  *scanner.Scanner
	filename string
	err      error
}

// Lex an io.Reader with text/scanner.Scanner.
//
// Comments are skipped. Tokens keep their source text, so string literals are not unquoted.
func Lex(filename string, r io.Reader) Lexer {
	s := &scanner.Scanner{}
	s.Init(r)
	s.Filename = filename
	return LexWithScanner(filename, s)
}

// LexWithScanner creates a Lexer from a user-provided scanner.Scanner.
//
// Useful if you need to customise the Scanner.
func LexWithScanner(filename string, scan *scanner.Scanner) Lexer {
	lexer := &textScannerLexer{
		filename: filename,
		scanner:  scan,
	}
	scan.Error = func(s *scanner.Scanner, msg string) {
		if lexer.err == nil {
			lexer.err = Errorf(lexer.position(s.Pos()), "%s", msg)
		}
	}
	return lexer
}

// LexString returns a new default lexer over a string.
func LexString(filename, s string) Lexer {
	return Lex(filename, strings.NewReader(s))
}

// Tokenize lexes all of s.
func Tokenize(filename, s string) ([]Token, error) {
	return ConsumeAll(LexString(filename, s))
}

func (t *textScannerLexer) Next() (Token, error) {
	typ := t.scanner.Scan()
	text := t.scanner.TokenText()
	pos := t.position(t.scanner.Position)
	if t.err != nil {
		return Token{}, t.err
	}
	return Token{
		Type:  typ,
		Value: text,
		Pos:   pos,
	}, nil
}

func (t *textScannerLexer) position(p scanner.Position) Position {
	return Position{
		Filename: t.filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}
