package calc

import (
	"github.com/alecthomas/descent/lexer"
)

// env holds variable values, one frame per open block.
type env struct {
	frames []map[string]float64
}

func (e *env) push() { e.frames = append(e.frames, map[string]float64{}) }
func (e *env) pop()  { e.frames = e.frames[:len(e.frames)-1] }

func (e *env) set(name string, value float64) { e.frames[len(e.frames)-1][name] = value }

func (e *env) get(name string) (float64, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, true
		}
	}
	return 0, false
}

// Eval evaluates the program, returning the value of its last statement.
//
// "globals" predeclared with NewScope must be given values here.
func (p *Program) Eval(globals map[string]float64) (float64, error) {
	e := &env{}
	e.push()
	for name, value := range globals {
		e.set(name, value)
	}
	return execAll(e, p.Stmts)
}

func execAll(e *env, stmts []Stmt) (float64, error) {
	var (
		value float64
		err   error
	)
	for _, stmt := range stmts {
		value, err = stmt.exec(e)
		if err != nil {
			return 0, err
		}
	}
	return value, nil
}

func (l *Let) exec(e *env) (float64, error) {
	value, err := l.Value.eval(e)
	if err != nil {
		return 0, err
	}
	e.set(l.Name, value)
	return value, nil
}

func (s *ExprStmt) exec(e *env) (float64, error) { return s.Expr.eval(e) }

func (n *Number) eval(*env) (float64, error) { return n.Value, nil }

func (v *Variable) eval(e *env) (float64, error) {
	value, ok := e.get(v.Name)
	if !ok {
		return 0, lexer.Errorf(v.Pos, "%q has no value", v.Name)
	}
	return value, nil
}

func (u *Unary) eval(e *env) (float64, error) {
	value, err := u.Operand.eval(e)
	if err != nil {
		return 0, err
	}
	return -value, nil
}

func (b *Binary) eval(e *env) (float64, error) {
	left, err := b.Left.eval(e)
	if err != nil {
		return 0, err
	}
	right, err := b.Right.eval(e)
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, lexer.Errorf(b.Pos, "division by zero")
		}
		return left / right, nil
	}
	return 0, lexer.Errorf(b.Pos, "unsupported operator %q", b.Op)
}

func (b *Block) eval(e *env) (float64, error) {
	e.push()
	defer e.pop()
	return execAll(e, b.Stmts)
}
