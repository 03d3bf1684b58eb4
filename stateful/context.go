package stateful

// Checkpointer can be implemented by a context to undo the mutations of failed attempts.
//
// Checkpoint captures the current state and returns a function restoring it.
type Checkpointer interface {
	Checkpoint() (rollback func())
}

// attempt runs p and, if it fails and ctx supports it, restores ctx to its prior state.
func attempt[T, C, A any](p Parser[T, C, A], tokens []T, pos int, ctx *C) (A, int, error) {
	cp, ok := any(ctx).(Checkpointer)
	if !ok {
		return p.Parse(tokens, pos, ctx)
	}
	rollback := cp.Checkpoint()
	ast, next, err := p.Parse(tokens, pos, ctx)
	if err != nil {
		rollback()
	}
	return ast, next, err
}
