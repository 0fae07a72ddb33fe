package scanner

import (
	"strconv"

	"github.com/basp/expidle/lang/token"
)

// number scans a decimal number literal: an integer part, an optional
// fractional part and an optional exponent part. The sign, if any, has
// already been consumed by the caller.
func (s *Scanner) number() (tok token.Token, lit string) {
	start := s.off
	tok = token.NUMBER

	digsep := 0 // bit 0: digit present

	// integer part
	if s.cur != '.' {
		digsep |= s.digits()
	}

	// fractional part
	if s.cur == '.' {
		s.advance()
		digsep |= s.digits()
	}

	if digsep&1 == 0 {
		tok = token.ILLEGAL
		s.error(s.off, s.line, s.col, "number has no digits")
	}

	// exponent part
	if lower(s.cur) == 'e' {
		s.advance()
		if s.cur == '+' || s.cur == '-' {
			s.advance()
		}
		if s.digits()&1 == 0 {
			tok = token.ILLEGAL
			s.error(s.off, s.line, s.col, "exponent has no digits")
		}
	}

	return tok, string(s.src[start:s.off])
}

// digits scans a run of decimal digits; bit 0 of the result is set if
// at least one digit was present.
func (s *Scanner) digits() (digsep int) {
	for isDigit(s.cur) {
		digsep = 1
		s.advance()
	}
	return digsep
}

func lower(rn rune) rune { return ('a' - 'A') | rn }

// numberToFloat decodes a scanned number literal. Out-of-range
// literals saturate into an infinity, which the machine's numeric type
// classifies for itself, so the range error is deliberately ignored.
func numberToFloat(lit string) float64 {
	f, _ := strconv.ParseFloat(lit, 64)
	return f
}
