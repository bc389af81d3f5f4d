package stream

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// checkpoints is a stack of cursor marks. M is whatever a stream needs to
// restore its cursor.
type checkpoints[M any] struct {
	stack *arraystack.Stack
}

func newCheckpoints[M any]() checkpoints[M] {
	return checkpoints[M]{stack: arraystack.New()}
}

func (cp checkpoints[M]) push(m M) {
	cp.stack.Push(m)
}

// pop removes the topmost mark. Popping from an empty stack is an error of
// the client, which we trace but otherwise ignore.
func (cp checkpoints[M]) pop() (M, bool) {
	v, ok := cp.stack.Pop()
	if !ok {
		tracer().Errorf("no checkpoint left to restore or release")
		var zero M
		return zero, false
	}
	return v.(M), true
}

func (cp checkpoints[M]) depth() int {
	return cp.stack.Size()
}
