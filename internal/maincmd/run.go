package maincmd

import (
	"context"
	"fmt"

	"github.com/basp/expidle/lang/machine"
	"github.com/basp/expidle/lang/scanner"
	"github.com/mna/mainer"
)

// Run executes the program files on the machine, one thread per file,
// and prints each file's final data stack (bottom first) to stdout.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	toksByFile, err := scanner.ScanFiles(ctx, args...)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}

	th := machine.Thread{
		Stdout:   stdio.Stdout,
		Stderr:   stdio.Stderr,
		MaxSteps: c.MaxSteps,
	}
	if c.Trace {
		th.TraceTo(stdio.Stderr)
	}

	for i, toks := range toksByFile {
		prog, err := machine.Compile(args[i], toks)
		if err != nil {
			return printError(stdio, err)
		}
		stack, err := th.Run(ctx, prog)
		if err != nil {
			return printError(stdio, err)
		}
		for _, v := range stack {
			fmt.Fprintln(stdio.Stdout, v)
		}
	}
	return nil
}
