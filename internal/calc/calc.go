package calc

import (
	"errors"

	"github.com/alecthomas/descent"
	"github.com/alecthomas/descent/lexer"
)

// Parse source into a Program.
//
// "globals" are names that may be referenced without a preceding let. Errors are reported at
// source positions.
func Parse(filename, source string, globals []string, options ...Option) (*Program, error) {
	tokens, err := lexer.Tokenize(filename, source)
	if err != nil {
		return nil, err
	}
	program, err := ParseTokens(tokens, NewScope(globals...), options...)
	if err != nil {
		return nil, locate(tokens, err)
	}
	return program, nil
}

// ParseTokens parses a token slice into a Program, declaring names in scope as it goes.
//
// Errors are reported at token indices.
func ParseTokens(tokens []lexer.Token, scope *Scope, options ...Option) (*Program, error) {
	return newGrammar(tokens, options...).program(scope)
}

// locate translates the token index of a parse error into a source position.
func locate(tokens []lexer.Token, err error) error {
	var perr descent.Error
	if !errors.As(err, &perr) {
		return err
	}
	pos := perr.Position()
	if pos < len(tokens) {
		return lexer.Errorf(tokens[pos].Pos, "%s", perr.Message())
	}
	end := lexer.Position{Line: 1, Column: 1}
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		end = last.Pos
		end.Offset += len(last.Value)
		end.Column += len(last.Value)
	}
	return lexer.Errorf(end, "%s", perr.Message())
}
