package machine_test

import (
	"bytes"
	"context"
	"sort"
	"testing"

	"github.com/basp/expidle/lang/bignum"
	"github.com/basp/expidle/lang/machine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string, th *machine.Thread) ([]bignum.Value, error) {
	t.Helper()
	prog, err := machine.CompileSource("test.xi", []byte(src))
	require.NoError(t, err)
	return th.Run(context.Background(), prog)
}

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []bignum.Value
	}{
		{"empty program", "", []bignum.Value{}},
		{"push", "1 2 3", []bignum.Value{
			bignum.One, bignum.New(2, 0), bignum.New(3, 0),
		}},
		{"add", "1 2 add", []bignum.Value{bignum.New(3, 0)}},
		{"sub order", "5 2 sub", []bignum.Value{bignum.New(3, 0)}},
		{"mul", "100 2 mul", []bignum.Value{bignum.New(2, 2)}},
		{"div order", "1 4 div", []bignum.Value{bignum.New(2.5, -1)}},
		{"neg", "5 neg", []bignum.Value{bignum.New(-5, 0)}},
		{"negative literal", "-5", []bignum.Value{bignum.New(-5, 0)}},
		{"div by zero saturates", "1 0 div", []bignum.Value{bignum.PosInf}},
		{"nan result", "0 0 div", []bignum.Value{bignum.NaN}},
		{"huge literal", "1e999 1 add", []bignum.Value{bignum.PosInf}},
		{"cmp less", "1 2 cmp", []bignum.Value{bignum.New(-1, 0)}},
		{"cmp equal zeros", "0 -0 cmp", []bignum.Value{bignum.Zero}},
		{"min", "3 7 min", []bignum.Value{bignum.New(3, 0)}},
		{"max", "3 7 max", []bignum.Value{bignum.New(7, 0)}},
		{"sign", "-42 sign", []bignum.Value{bignum.New(-1, 0)}},
		{"dup", "2 dup", []bignum.Value{bignum.New(2, 0), bignum.New(2, 0)}},
		{"drop", "1 2 drop", []bignum.Value{bignum.One}},
		{"swap", "1 2 swap", []bignum.Value{bignum.New(2, 0), bignum.One}},
		{"over", "1 2 over", []bignum.Value{
			bignum.One, bignum.New(2, 0), bignum.One,
		}},
		{"comments ignored", "1 -- push one\n2 add", []bignum.Value{bignum.New(3, 0)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var th machine.Thread
			got, err := run(t, c.src, &th)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantIs  error
		wantMsg string
	}{
		{"unknown word", "1 2 frobnicate", machine.ErrUnknownWord, "test.xi:1:5: frobnicate: unknown word"},
		{"underflow", "1 add", machine.ErrUnderflow, "test.xi:1:3: add: stack underflow"},
		{"underflow empty", "dup", machine.ErrUnderflow, "test.xi:1:1: dup: stack underflow"},
		{"sign of nan", "0 0 div sign", bignum.ErrNaNSign, "test.xi:1:9: sign: bignum: sign is undefined for NaN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var th machine.Thread
			_, err := run(t, c.src, &th)
			require.Error(t, err)
			require.ErrorIs(t, err, c.wantIs)
			assert.EqualError(t, err, c.wantMsg)
		})
	}
}

func TestRunMaxSteps(t *testing.T) {
	th := machine.Thread{MaxSteps: 3}
	_, err := run(t, "1 2 3 4 5", &th)
	require.ErrorContains(t, err, "too many steps")

	th = machine.Thread{MaxSteps: 5}
	got, err := run(t, "1 2 3 4 5", &th)
	require.NoError(t, err)
	require.Len(t, got, 5)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prog, err := machine.CompileSource("test.xi", []byte("1 2 add"))
	require.NoError(t, err)

	var th machine.Thread
	_, err = th.Run(ctx, prog)
	require.ErrorContains(t, err, "thread cancelled")
}

func TestThreadReuse(t *testing.T) {
	var th machine.Thread
	got, err := run(t, "1 2 add", &th)
	require.NoError(t, err)
	require.Equal(t, []bignum.Value{bignum.New(3, 0)}, got)

	// a second run starts from an empty stack
	got, err = run(t, "10", &th)
	require.NoError(t, err)
	require.Equal(t, []bignum.Value{bignum.New(1, 1)}, got)
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	th := machine.Thread{Stdout: &out}
	got, err := run(t, "100 2 mul print", &th)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, "2 * 10^2\n", out.String())
}

func TestTraceHook(t *testing.T) {
	var steps []machine.TraceStep
	th := machine.Thread{Trace: func(ts machine.TraceStep) { steps = append(steps, ts) }}
	_, err := run(t, "1 2 add", &th)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, 1, steps[0].Step)
	assert.Equal(t, machine.PushNumber, steps[0].Term.Kind)
	assert.Equal(t, []bignum.Value{bignum.One}, steps[0].Stack)
	assert.Len(t, steps[0].Queue, 2)

	assert.Equal(t, "add", steps[2].Term.Word)
	assert.Equal(t, []bignum.Value{bignum.New(3, 0)}, steps[2].Stack)
	assert.Empty(t, steps[2].Queue)
}

func TestWords(t *testing.T) {
	words := machine.Words()
	sort.Strings(words)
	require.Equal(t, []string{
		"add", "cmp", "div", "drop", "dup", "max", "min", "mul",
		"neg", "over", "print", "sign", "sub", "swap",
	}, words)
}
