package machine

import (
	"fmt"
	"strings"

	"github.com/basp/expidle/lang/bignum"
	"github.com/basp/expidle/lang/scanner"
	"github.com/basp/expidle/lang/token"
)

// TermKind identifies what a program term does when it reaches the
// front of the queue.
type TermKind uint8

const (
	// PushNumber pushes the term's number on the data stack.
	PushNumber TermKind = iota
	// ApplyWord executes the named word against the data stack.
	ApplyWord
)

// A Term is one element of a program: either a number literal or a
// word. Terms are immutable once compiled.
type Term struct {
	Kind TermKind
	Num  bignum.Value // valid when Kind == PushNumber
	Word string       // valid when Kind == ApplyWord
	Pos  token.Pos
}

func (t Term) String() string {
	if t.Kind == PushNumber {
		return t.Num.String()
	}
	return t.Word
}

// A Program is an immutable sequence of terms ready to run, the
// initial content of a thread's queue.
type Program struct {
	Filename string
	Terms    []Term
}

// Compile turns a scanned token stream into a Program. Comments are
// skipped; word resolution happens at run time so that tracing shows
// the failing term in place. An ILLEGAL token aborts compilation since
// the scanner already reported it.
func Compile(filename string, toks []scanner.TokenAndValue) (*Program, error) {
	p := &Program{Filename: filename}
	for _, tv := range toks {
		switch tv.Token {
		case token.NUMBER:
			p.Terms = append(p.Terms, Term{
				Kind: PushNumber,
				Num:  bignum.FromFloat64(tv.Value.Num),
				Pos:  tv.Value.Pos,
			})
		case token.WORD:
			p.Terms = append(p.Terms, Term{
				Kind: ApplyWord,
				Word: tv.Value.Raw,
				Pos:  tv.Value.Pos,
			})
		case token.COMMENT, token.EOF:
			// skipped
		default:
			line, col := tv.Value.Pos.LineCol()
			return nil, fmt.Errorf("%s: cannot compile %s %q",
				token.MakePosition(filename, 0, line, col), tv.Token, tv.Value.Raw)
		}
	}
	return p, nil
}

// CompileSource is a convenience wrapper that scans and compiles a
// single in-memory source buffer.
func CompileSource(filename string, src []byte) (*Program, error) {
	var (
		s    scanner.Scanner
		toks []scanner.TokenAndValue
		errs []string
	)
	s.Init(filename, src, func(pos token.Position, msg string) {
		errs = append(errs, fmt.Sprintf("%s: %s", pos, msg))
	})
	var tv token.Value
	for {
		tok := s.Scan(&tv)
		toks = append(toks, scanner.TokenAndValue{Token: tok, Value: tv})
		if tok == token.EOF {
			break
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(errs, "\n"))
	}
	return Compile(filename, toks)
}
