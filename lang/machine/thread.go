package machine

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"github.com/basp/expidle/lang/bignum"
)

type Thread struct {
	// Name is an optional name that describes the thread, mostly for debugging.
	Name string

	// Stdout and Stderr are the standard output abstractions for the thread;
	// the print word writes to Stdout. If nil, os.Stdout and os.Stderr are
	// used, respectively.
	Stdout io.Writer
	Stderr io.Writer

	// MaxSteps is the maximum number of machine steps (one term executed per
	// step) before the thread is cancelled. A value <= 0 means no limit.
	MaxSteps int

	// Trace, if non-nil, is called after every machine step with a snapshot
	// of the thread's state. The snapshot slices are copies and may be
	// retained by the hook.
	Trace func(TraceStep)

	ctx       context.Context
	ctxCancel func()
	cancelled atomic.Bool

	steps, maxSteps uint64

	stack []bignum.Value
	queue []Term
}

func (th *Thread) init(ctx context.Context) {
	// per-run initialization of thread
	if th.MaxSteps <= 0 {
		th.maxSteps = ^uint64(0)
	} else {
		th.maxSteps = uint64(th.MaxSteps)
	}
	th.steps = 0
	th.stack = th.stack[:0]
	th.queue = th.queue[:0]
	th.cancelled.Store(false)

	if ctx == nil {
		th.ctx = context.Background()
		th.ctxCancel = func() {}
		return
	}
	th.ctx, th.ctxCancel = context.WithCancel(ctx)
	if ctx.Err() != nil {
		// already done, no need to wait for the goroutine to notice
		th.cancelled.Store(true)
		return
	}
	go func() {
		<-th.ctx.Done()
		th.cancelled.Store(true)
	}()
}

func (th *Thread) stdout() io.Writer {
	if th.Stdout != nil {
		return th.Stdout
	}
	return os.Stdout
}

func (th *Thread) stderr() io.Writer {
	if th.Stderr != nil {
		return th.Stderr
	}
	return os.Stderr
}

// push adds v on top of the data stack.
func (th *Thread) push(v bignum.Value) {
	th.stack = append(th.stack, v)
}

// pop removes and returns the top of the data stack.
func (th *Thread) pop() (bignum.Value, error) {
	if len(th.stack) == 0 {
		return bignum.Value{}, ErrUnderflow
	}
	v := th.stack[len(th.stack)-1]
	th.stack = th.stack[:len(th.stack)-1]
	return v, nil
}

// pop2 removes the two topmost values; y is the top, x below it.
func (th *Thread) pop2() (x, y bignum.Value, err error) {
	if y, err = th.pop(); err != nil {
		return x, y, err
	}
	x, err = th.pop()
	return x, y, err
}

// peek returns the value i positions below the top without removing
// it, 0 being the top itself.
func (th *Thread) peek(i int) (bignum.Value, error) {
	if len(th.stack) <= i {
		return bignum.Value{}, ErrUnderflow
	}
	return th.stack[len(th.stack)-1-i], nil
}

// Stack returns a copy of the data stack, bottom first.
func (th *Thread) Stack() []bignum.Value {
	s := make([]bignum.Value, len(th.stack))
	copy(s, th.stack)
	return s
}
