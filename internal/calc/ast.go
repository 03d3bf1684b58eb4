// Package calc implements a small calculator language with let bindings and block scopes.
//
//	program = stmt { ";" stmt } EOF .
//	stmt    = "let" Ident "=" expr | expr .
//	expr    = term { ("+" | "-") term } .
//	term    = unary { ("*" | "/") unary } .
//	unary   = "-" unary | factor .
//	factor  = Number | Ident | "(" expr ")" | "{" stmt { ";" stmt } "}" .
//
// Identifiers must be declared by an enclosing or earlier let before use. This is checked while
// parsing, using a Scope threaded through the grammar.
package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/descent/lexer"
)

// Expr is an expression node.
type Expr interface {
	fmt.Stringer
	eval(env *env) (float64, error)
}

// Stmt is a statement node.
type Stmt interface {
	fmt.Stringer
	exec(env *env) (float64, error)
}

// Program is a sequence of statements. Its value is that of the last statement.
type Program struct {
	Stmts []Stmt
}

func (p *Program) String() string { return joinStmts(p.Stmts) }

// Let binds the value of an expression to a name in the current block.
type Let struct {
	Pos   lexer.Position
	Name  string
	Value Expr
}

func (l *Let) String() string { return fmt.Sprintf("let %s = %s", l.Name, l.Value) }

// ExprStmt is an expression evaluated for its value.
type ExprStmt struct {
	Expr Expr
}

func (e *ExprStmt) String() string { return e.Expr.String() }

// Number literal.
type Number struct {
	Pos   lexer.Position
	Value float64
}

func (n *Number) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// Variable reference.
type Variable struct {
	Pos  lexer.Position
	Name string
}

func (v *Variable) String() string { return v.Name }

// Unary operator.
type Unary struct {
	Pos     lexer.Position
	Op      string
	Operand Expr
}

func (u *Unary) String() string { return u.Op + u.Operand.String() }

// Binary operator.
type Binary struct {
	Pos   lexer.Position
	Op    string
	Left  Expr
	Right Expr
}

func (b *Binary) String() string { return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right) }

// Block introduces a new scope. Its value is that of the last statement.
type Block struct {
	Pos   lexer.Position
	Stmts []Stmt
}

func (b *Block) String() string { return "{" + joinStmts(b.Stmts) + "}" }

func joinStmts(stmts []Stmt) string {
	out := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		out = append(out, stmt.String())
	}
	return strings.Join(out, "; ")
}
