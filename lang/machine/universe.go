package machine

import (
	"fmt"

	"github.com/basp/expidle/lang/bignum"
	"github.com/dolthub/swiss"
)

// A Builtin is the implementation of a predefined word. It manipulates
// the thread's data stack and may write to the thread's Stdout.
type Builtin func(th *Thread) error

// Universe defines the set of predefined words of the language. This
// should not be modified, so that the language built-ins are always
// available.
var Universe = func() *swiss.Map[string, Builtin] {
	builtins := map[string]Builtin{
		// arithmetic
		"add": binaryWord(bignum.Value.Add),
		"sub": binaryWord(bignum.Value.Sub),
		"mul": binaryWord(bignum.Value.Mul),
		"div": binaryWord(bignum.Value.Div),
		"neg": unaryWord(bignum.Value.Neg),

		// comparison and ordering
		"cmp":  cmpWord,
		"min":  pickWord(func(c int) bool { return c <= 0 }),
		"max":  pickWord(func(c int) bool { return c >= 0 }),
		"sign": signWord,

		// stack shuffling
		"dup":  dupWord,
		"drop": dropWord,
		"swap": swapWord,
		"over": overWord,

		// output
		"print": printWord,
	}
	m := swiss.NewMap[string, Builtin](uint32(len(builtins)))
	for name, b := range builtins {
		m.Put(name, b)
	}
	return m
}()

// Words returns the names of the predefined words, in no particular
// order. Callers that need a stable order must sort.
func Words() []string {
	names := make([]string, 0, Universe.Count())
	Universe.Iter(func(name string, _ Builtin) bool {
		names = append(names, name)
		return false
	})
	return names
}

func binaryWord(op func(x, y bignum.Value) bignum.Value) Builtin {
	return func(th *Thread) error {
		x, y, err := th.pop2()
		if err != nil {
			return err
		}
		th.push(op(x, y))
		return nil
	}
}

func unaryWord(op func(x bignum.Value) bignum.Value) Builtin {
	return func(th *Thread) error {
		x, err := th.pop()
		if err != nil {
			return err
		}
		th.push(op(x))
		return nil
	}
}

// cmpWord pushes -1, 0 or 1 per the total order of the operands, so
// NaN operands still compare instead of failing.
func cmpWord(th *Thread) error {
	x, y, err := th.pop2()
	if err != nil {
		return err
	}
	th.push(bignum.FromFloat64(float64(x.Cmp(y))))
	return nil
}

// pickWord keeps one of the two topmost values based on the total
// order; it implements min and max.
func pickWord(keepX func(c int) bool) Builtin {
	return func(th *Thread) error {
		x, y, err := th.pop2()
		if err != nil {
			return err
		}
		if keepX(x.Cmp(y)) {
			th.push(x)
		} else {
			th.push(y)
		}
		return nil
	}
}

// signWord pushes -1, 0 or 1 for the sign of the top value. The sign
// of NaN is undefined, so the word fails on it; the error wraps
// bignum.ErrNaNSign.
func signWord(th *Thread) error {
	x, err := th.pop()
	if err != nil {
		return err
	}
	s, err := x.Sign()
	if err != nil {
		return err
	}
	th.push(bignum.FromFloat64(float64(s)))
	return nil
}

func dupWord(th *Thread) error {
	x, err := th.peek(0)
	if err != nil {
		return err
	}
	th.push(x)
	return nil
}

func dropWord(th *Thread) error {
	_, err := th.pop()
	return err
}

func swapWord(th *Thread) error {
	x, y, err := th.pop2()
	if err != nil {
		return err
	}
	th.push(y)
	th.push(x)
	return nil
}

func overWord(th *Thread) error {
	x, err := th.peek(1)
	if err != nil {
		return err
	}
	th.push(x)
	return nil
}

func printWord(th *Thread) error {
	x, err := th.pop()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(th.stdout(), x)
	return err
}
