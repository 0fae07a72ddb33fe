package machine

import (
	"fmt"
	"io"
	"strings"

	"github.com/basp/expidle/lang/bignum"
)

// A TraceStep is the snapshot handed to a thread's Trace hook after
// each machine step: the term that just ran and the resulting state.
// The slices are copies owned by the hook.
type TraceStep struct {
	Step  int
	Term  Term
	Stack []bignum.Value // bottom first
	Queue []Term         // front first, what remains to run
}

// String renders the step on a single line, the form used by the trace
// golden files:
//
//	3: mul | stack [2 * 10^2] | queue [print]
func (ts TraceStep) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d: %s | stack [", ts.Step, ts.Term)
	for i, v := range ts.Stack {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("] | queue [")
	for i, t := range ts.Queue {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// TraceTo sets the thread's Trace hook to write each step's rendering
// on its own line to w.
func (th *Thread) TraceTo(w io.Writer) {
	th.Trace = func(ts TraceStep) {
		fmt.Fprintln(w, ts)
	}
}
