// Package machine implements the expidle virtual machine, a toy
// concatenative evaluator: a program is a queue of terms, a step pops
// the front term and either pushes a number on the data stack or
// applies a word to it. Every value the machine manipulates is a
// bignum.Value. The machine can report an execution trace after every
// step, which is the main debugging tool of the language.
package machine

import (
	"context"
	"errors"
	"fmt"

	"github.com/basp/expidle/lang/bignum"
	"github.com/basp/expidle/lang/token"
)

var (
	// ErrUnderflow is returned when a word needs more operands than the
	// data stack holds.
	ErrUnderflow = errors.New("stack underflow")
	// ErrUnknownWord is returned when a program applies a word that is
	// not in the universe.
	ErrUnknownWord = errors.New("unknown word")
)

// Run executes prog on the thread and returns the final data stack,
// bottom first. The thread is reusable: each Run starts from an empty
// stack and a queue holding the program's terms. Execution stops at
// the first failing word, when ctx is cancelled, or when the thread's
// MaxSteps is exhausted.
func (th *Thread) Run(ctx context.Context, prog *Program) ([]bignum.Value, error) {
	th.init(ctx)
	defer th.ctxCancel()
	th.queue = append(th.queue, prog.Terms...)

	for len(th.queue) > 0 {
		th.steps++
		if th.steps > th.maxSteps {
			return th.Stack(), fmt.Errorf("thread cancelled: too many steps (%d)", th.MaxSteps)
		}
		if th.cancelled.Load() {
			return th.Stack(), fmt.Errorf("thread cancelled: %s", context.Cause(th.ctx))
		}

		t := th.queue[0]
		th.queue = th.queue[1:]

		if err := th.step(t); err != nil {
			line, col := t.Pos.LineCol()
			return th.Stack(), fmt.Errorf("%s: %s: %w",
				token.MakePosition(prog.Filename, 0, line, col), t, err)
		}

		if th.Trace != nil {
			th.Trace(TraceStep{
				Step:  int(th.steps),
				Term:  t,
				Stack: th.Stack(),
				Queue: th.Queue(),
			})
		}
	}
	return th.Stack(), nil
}

// step executes a single term against the thread.
func (th *Thread) step(t Term) error {
	if t.Kind == PushNumber {
		th.push(t.Num)
		return nil
	}
	b, ok := Universe.Get(t.Word)
	if !ok {
		return ErrUnknownWord
	}
	return b(th)
}

// Queue returns a copy of the terms still waiting to run, front first.
func (th *Thread) Queue() []Term {
	q := make([]Term, len(th.queue))
	copy(q, th.queue)
	return q
}
