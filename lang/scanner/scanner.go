// Some of the scanner package is adapted from the Go source code:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/basp/expidle/lang/token"
)

// TokenAndValue combines the token type with the token value type in the same
// struct.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
}

// ScanFiles is a helper function that tokenizes the source files and returns
// the list of tokens, grouped by the file at the same index, and produces any
// error encountered. The error, if non-nil, is guaranteed to implement
// Unwrap() []error.
func ScanFiles(ctx context.Context, files ...string) ([][]TokenAndValue, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var (
		s      Scanner
		tokVal token.Value
		errs   []error
	)

	tokensByFile := make([][]TokenAndValue, len(files))
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		b, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", token.MakePosition(file, 0, 0, 0), err))
			continue
		}

		s.Init(file, b, func(pos token.Position, msg string) {
			errs = append(errs, fmt.Errorf("%s: %s", pos, msg))
		})
		for {
			tok := s.Scan(&tokVal)
			tokensByFile[i] = append(tokensByFile[i], TokenAndValue{
				Token: tok,
				Value: tokVal,
			})
			if tok == token.EOF {
				break
			}
		}
	}
	return tokensByFile, errors.Join(errs...)
}

// PrintError prints the list of errors wrapped in err to w, one per line. If
// err does not wrap a list of errors, it is printed as-is.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var list interface{ Unwrap() []error }
	if errors.As(err, &list) {
		for _, e := range list.Unwrap() {
			fmt.Fprintf(w, "%s\n", e)
		}
		return
	}
	fmt.Fprintf(w, "%s\n", err)
}

// Scanner tokenizes source files for the machine to consume.
type Scanner struct {
	// immutable state after Init
	filename string
	src      []byte
	err      func(pos token.Position, msg string) // error handler for scanning errors

	// mutable scanning state
	invalidByte byte // when cur==RuneError due to failed utf8 decode, this is the invalid byte
	cur         rune // current character
	line, col   int  // line/col position of cur
	off         int  // character offset in bytes of cur
	roff        int  // reading offset in bytes (position after current character)
}

// Init initializes the scanner to tokenize a new file.
func (s *Scanner) Init(filename string, src []byte, errHandler func(token.Position, string)) {
	s.filename = filename
	s.src = src
	s.err = errHandler

	s.invalidByte = 0
	s.cur = ' '
	s.line, s.col = 1, 0
	s.off = 0
	s.roff = 0
	s.advance()
}

// peek returns the byte following the most recently read character without
// advancing the scanner. If the scanner is at EOF, peek returns 0.
func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

// read the next Unicode char into s.cur; s.cur < 0 means end-of-file.
func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		if s.cur == '\n' {
			s.line++
			s.col = 0
		}
		s.cur = -1
		return
	}

	s.off = s.roff
	if s.cur == '\n' {
		s.line++
		s.col = 0
	}

	// fast path if the rune is an ASCII char, no decoding necessary
	s.invalidByte = 0
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		// not ASCII
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.roff, s.line, s.col, "illegal UTF-8 encoding")
			// store the actual invalid byte
			s.invalidByte = s.src[s.roff]
		}
	}
	s.roff += w
	s.cur = r
	s.col++
}

func (s *Scanner) error(off, line, col int, msg string) {
	checkSafePos(line, col)
	s.err(token.MakePosition(s.filename, off, line, col), msg)
}

func checkSafePos(line, col int) {
	if line > token.MaxLines {
		panic(fmt.Sprintf("number of lines exceeded: %d", line))
	}
	if col > token.MaxCols {
		panic(fmt.Sprintf("number of columns exceeded at line %d: %d", line, col))
	}
}

func makeSafePos(line, col int) token.Pos {
	checkSafePos(line, col)
	return token.MakePos(line, col)
}

// Scan returns the next token in the source file.
func (s *Scanner) Scan(tokVal *token.Value) (tok token.Token) {
	s.skipWhitespace()

	// current token start
	startOff, startLine, startCol := s.off, s.line, s.col

	switch cur := s.cur; {
	case isLetter(cur):
		lit := s.word()
		tok = token.WORD
		*tokVal = token.Value{Raw: lit, Pos: makeSafePos(startLine, startCol)}

	case isDigit(cur), cur == '.' && isDigit(rune(s.peek())):
		var lit string
		tok, lit = s.number()
		*tokVal = token.Value{Raw: lit, Pos: makeSafePos(startLine, startCol)}
		if tok == token.NUMBER {
			tokVal.Num = numberToFloat(lit)
		}

	case cur == '-':
		// a '-' starts either a comment ('--'), a negative number
		// literal, or nothing valid
		switch {
		case s.peek() == '-':
			s.advance()
			s.advance()
			lit := s.comment(startOff)
			tok = token.COMMENT
			*tokVal = token.Value{Raw: lit, Pos: makeSafePos(startLine, startCol)}

		case isDigit(rune(s.peek())):
			s.advance()
			var lit string
			tok, lit = s.number()
			lit = "-" + lit
			*tokVal = token.Value{Raw: lit, Pos: makeSafePos(startLine, startCol)}
			if tok == token.NUMBER {
				tokVal.Num = numberToFloat(lit)
			}

		default:
			s.advance()
			tok = token.ILLEGAL
			*tokVal = token.Value{Raw: "-", Pos: makeSafePos(startLine, startCol)}
			s.error(startOff, startLine, startCol, "illegal character '-'")
		}

	case cur == -1:
		tok = token.EOF
		*tokVal = token.Value{Pos: makeSafePos(startLine, startCol)}

	default:
		s.advance() // always make progress
		tok = token.ILLEGAL
		raw := string(cur)
		if s.invalidByte != 0 {
			raw = string(s.invalidByte)
		}
		*tokVal = token.Value{Raw: raw, Pos: makeSafePos(startLine, startCol)}
		s.error(startOff, startLine, startCol, fmt.Sprintf("illegal character %#U", cur))
	}
	return tok
}

// word scans a run of letters, digits and underscores starting with a
// letter.
func (s *Scanner) word() string {
	start := s.off
	for isLetter(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

// comment scans a '--' line comment, the opening dashes already
// consumed. The literal includes the dashes and runs to the end of the
// line, newline excluded.
func (s *Scanner) comment(startOff int) string {
	for s.cur != '\n' && s.cur != -1 {
		s.advance()
	}
	return string(s.src[startOff:s.off])
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.cur) {
		s.advance()
	}
}

func isWhitespace(rn rune) bool {
	return rn == ' ' || rn == '\t' || rn == '\n' || rn == '\r'
}

func isLetter(rn rune) bool {
	return 'a' <= rn && rn <= 'z' ||
		'A' <= rn && rn <= 'Z' ||
		rn == '_' ||
		rn >= utf8.RuneSelf && unicode.IsLetter(rn)
}

func isDigit(rn rune) bool {
	return '0' <= rn && rn <= '9'
}
