package maincmd

import (
	"context"
	"fmt"

	"github.com/basp/expidle/lang/scanner"
	"github.com/basp/expidle/lang/token"
	"github.com/mna/mainer"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	toksByFile, err := scanner.ScanFiles(ctx, args...)
	for i, toks := range toksByFile {
		for _, tok := range toks {
			line, col := tok.Value.Pos.LineCol()
			fmt.Fprintf(stdio.Stdout, "%s: %s", token.MakePosition(args[i], 0, line, col), tok.Token)
			if lit := tok.Token.Literal(tok.Value); lit != "" {
				fmt.Fprintf(stdio.Stdout, " %s", lit)
			}
			fmt.Fprintln(stdio.Stdout)
		}
	}
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
