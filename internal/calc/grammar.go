package calc

import (
	"strconv"
	"strings"
	"text/scanner"

	"github.com/alecthomas/descent"
	"github.com/alecthomas/descent/lexer"
	"github.com/alecthomas/descent/stateful"
)

type (
	exprParser = stateful.Parser[lexer.Token, Scope, Expr]
	stmtParser = stateful.Parser[lexer.Token, Scope, Stmt]
)

type grammar struct {
	tokens   []lexer.Token
	expected descent.SyntaxError[string]

	statement stmtParser
	expr      exprParser
	term      exprParser
	unary     exprParser
	factor    exprParser
}

func newGrammar(tokens []lexer.Token, options ...Option) *grammar {
	g := &grammar{tokens: tokens, expected: descent.Expected(tokens)}
	g.statement = stateful.ParseFunc[lexer.Token, Scope, Stmt](g.parseStatement)
	g.expr = g.binary("+-", func(tokens []lexer.Token, pos int, ctx *Scope) (Expr, int, error) {
		return g.term.Parse(tokens, pos, ctx)
	})
	g.term = g.binary("*/", func(tokens []lexer.Token, pos int, ctx *Scope) (Expr, int, error) {
		return g.unary.Parse(tokens, pos, ctx)
	})
	g.unary = stateful.ParseFunc[lexer.Token, Scope, Expr](g.parseUnary)
	g.factor = stateful.ParseFunc[lexer.Token, Scope, Expr](g.parseFactor)
	for _, option := range options {
		option(g)
	}
	return g
}

func isDelimiter(t lexer.Token) bool { return t.Is(';', ";") }

func punct(r rune) descent.Parser[lexer.Token, lexer.Token] {
	return descent.Satisfy(strconv.Quote(string(r)), func(t lexer.Token) bool { return t.Type == r })
}

var (
	letKeyword = descent.Satisfy(`"let"`, func(t lexer.Token) bool { return t.Is(scanner.Ident, "let") })
	identifier = descent.Lift(
		descent.Satisfy("identifier", func(t lexer.Token) bool { return t.Type == scanner.Ident && t.Value != "let" }).Parse,
		func(t lexer.Token) *Variable { return &Variable{Pos: t.Pos, Name: t.Value} },
	)
	numberToken = descent.Satisfy("number", func(t lexer.Token) bool { return t.Type == scanner.Int || t.Type == scanner.Float })
)

// program parses statements up to the end of input.
func (g *grammar) program(ctx *Scope) (*Program, error) {
	stmts, next := stateful.ManyDelimitedFunc(g.tokens, 0, ctx, g.statement, isDelimiter)
	if len(stmts) == 0 {
		return nil, g.expected.SyntaxError(0, "statement")
	}
	if _, _, err := descent.EOF[lexer.Token]().Parse(g.tokens, next); err != nil {
		return nil, g.expected.SyntaxError(next, "end of input")
	}
	return &Program{Stmts: stmts}, nil
}

func (g *grammar) parseStatement(tokens []lexer.Token, pos int, ctx *Scope) (Stmt, int, error) {
	return stateful.CombineSyntax(tokens, pos, ctx, g.expected, "statement",
		stateful.As[Stmt](g.parseLet),
		stateful.Lift(g.expr.Parse, func(e Expr) Stmt { return &ExprStmt{Expr: e} }),
	)
}

func (g *grammar) parseLet(tokens []lexer.Token, pos int, ctx *Scope) (*Let, int, error) {
	let, next, err := letKeyword.Parse(tokens, pos)
	if err != nil {
		return nil, pos, err
	}
	name, next, err := identifier.Parse(tokens, next)
	if err != nil {
		return nil, pos, err
	}
	_, next, err = punct('=').Parse(tokens, next)
	if err != nil {
		return nil, pos, err
	}
	value, next, err := g.expr.Parse(tokens, next, ctx)
	if err != nil {
		return nil, pos, err
	}
	// Declared after the value so that "let x = x" refers to an outer x.
	ctx.Declare(name.Name)
	return &Let{Pos: let.Pos, Name: name.Name, Value: value}, next, nil
}

type operation struct {
	op    lexer.Token
	right Expr
}

// binary parses left-associative chains of "operand { op operand }" for the operators in ops.
func (g *grammar) binary(ops string, operand stateful.ParseFunc[lexer.Token, Scope, Expr]) exprParser {
	operator := descent.Satisfy("operator", func(t lexer.Token) bool {
		return t.Type > 0 && strings.ContainsRune(ops, t.Type)
	})
	tail := stateful.ParseFunc[lexer.Token, Scope, operation](func(tokens []lexer.Token, pos int, ctx *Scope) (operation, int, error) {
		op, next, err := operator.Parse(tokens, pos)
		if err != nil {
			return operation{}, pos, err
		}
		right, next, err := operand.Parse(tokens, next, ctx)
		if err != nil {
			return operation{}, pos, err
		}
		return operation{op: op, right: right}, next, nil
	})
	return stateful.ParseFunc[lexer.Token, Scope, Expr](func(tokens []lexer.Token, pos int, ctx *Scope) (Expr, int, error) {
		left, next, err := operand.Parse(tokens, pos, ctx)
		if err != nil {
			return nil, pos, err
		}
		tails, next := stateful.Many[lexer.Token, Scope, operation](tokens, next, ctx, tail)
		for _, t := range tails {
			left = &Binary{Pos: t.op.Pos, Op: t.op.Value, Left: left, Right: t.right}
		}
		return left, next, nil
	})
}

func (g *grammar) parseUnary(tokens []lexer.Token, pos int, ctx *Scope) (Expr, int, error) {
	return stateful.Combine(tokens, pos, ctx, g.expected.SyntaxError(pos, "expression"),
		stateful.As[Expr](g.parseNegation),
		g.factor,
	)
}

func (g *grammar) parseNegation(tokens []lexer.Token, pos int, ctx *Scope) (*Unary, int, error) {
	minus, next, err := punct('-').Parse(tokens, pos)
	if err != nil {
		return nil, pos, err
	}
	operand, next, err := g.unary.Parse(tokens, next, ctx)
	if err != nil {
		return nil, pos, err
	}
	return &Unary{Pos: minus.Pos, Op: "-", Operand: operand}, next, nil
}

func (g *grammar) parseFactor(tokens []lexer.Token, pos int, ctx *Scope) (Expr, int, error) {
	return stateful.CombineSyntax(tokens, pos, ctx, g.expected, "expression",
		stateful.As[Expr](g.parseNumber),
		stateful.As[Expr](g.parseVariable),
		stateful.ParseFunc[lexer.Token, Scope, Expr](g.parseParens),
		stateful.As[Expr](g.parseBlock),
	)
}

func (g *grammar) parseNumber(tokens []lexer.Token, pos int, ctx *Scope) (*Number, int, error) {
	token, next, err := numberToken.Parse(tokens, pos)
	if err != nil {
		return nil, pos, err
	}
	value, err := strconv.ParseFloat(token.Value, 64)
	if err != nil {
		if n, ierr := strconv.ParseInt(token.Value, 0, 64); ierr == nil {
			value = float64(n)
		} else {
			return nil, pos, descent.Wrapf(pos, err, "invalid number %q", token.Value)
		}
	}
	return &Number{Pos: token.Pos, Value: value}, next, nil
}

func (g *grammar) parseVariable(tokens []lexer.Token, pos int, ctx *Scope) (*Variable, int, error) {
	v, next, err := identifier.Parse(tokens, pos)
	if err != nil {
		return nil, pos, err
	}
	if !ctx.Declared(v.Name) {
		return nil, pos, descent.Errorf(pos, "undeclared variable %q", v.Name)
	}
	return v, next, nil
}

func (g *grammar) parseParens(tokens []lexer.Token, pos int, ctx *Scope) (Expr, int, error) {
	_, next, err := punct('(').Parse(tokens, pos)
	if err != nil {
		return nil, pos, err
	}
	expr, next, err := g.expr.Parse(tokens, next, ctx)
	if err != nil {
		return nil, pos, err
	}
	_, next, err = punct(')').Parse(tokens, next)
	if err != nil {
		return nil, pos, err
	}
	return expr, next, nil
}

// parseBlock opens a scope for the duration of the block. If the block fails the scope is left
// open; the enclosing alternation rolls it back.
func (g *grammar) parseBlock(tokens []lexer.Token, pos int, ctx *Scope) (*Block, int, error) {
	open, next, err := punct('{').Parse(tokens, pos)
	if err != nil {
		return nil, pos, err
	}
	ctx.Push()
	stmts, next := stateful.ManyDelimitedFunc(tokens, next, ctx, g.statement, isDelimiter)
	if len(stmts) == 0 {
		return nil, pos, g.expected.SyntaxError(next, "statement")
	}
	_, next, err = punct('}').Parse(tokens, next)
	if err != nil {
		return nil, pos, err
	}
	ctx.Pop()
	return &Block{Pos: open.Pos, Stmts: stmts}, next, nil
}
