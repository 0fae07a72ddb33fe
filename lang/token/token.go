package token

import "strconv"

// A Token represents a lexical token of the expidle word language. The
// language is flat: a program is nothing but numbers and words, so the
// token set is tiny.
type Token int8

//nolint:revive
const (
	ILLEGAL Token = iota
	EOF

	// Tokens with values
	COMMENT // -- code comment
	NUMBER  // 123, 1.23, 1.23e45
	WORD    // add, dup, print, ...

	maxToken = WORD
)

func (tok Token) String() string { return tokenNames[tok] }

var tokenNames = [...]string{
	ILLEGAL: "illegal token",
	EOF:     "end of file",

	COMMENT: "comment",
	NUMBER:  "number literal",
	WORD:    "word",
}

// Value records the raw text, position and decoded value associated
// with each token.
type Value struct {
	Raw string  // raw text of token
	Num float64 // decoded number
	Pos Pos     // start position of token
}

// Literal returns the string representation of the literal value of
// the token from its associated Value struct. If tok is not a literal,
// it returns an empty string.
func (tok Token) Literal(v Value) string {
	switch tok {
	case WORD:
		return v.Raw
	case NUMBER:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case COMMENT:
		return v.Raw
	default:
		return ""
	}
}
