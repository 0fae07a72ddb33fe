package token

import (
	"fmt"
	"strconv"
)

const (
	lineBits = 18
	colBits  = 32 - lineBits

	// MaxLines is the maximum 1-based line number value that can be encoded in
	// Pos.
	MaxLines = (1 << lineBits) - 1
	// MaxCols is the maximum 1-based column number value that can be encoded in
	// Pos.
	MaxCols = (1 << colBits) - 1

	lineMask = MaxLines
	colMask  = MaxCols
)

// Pos is an efficient encoding of a 1-based line and column position in a
// 32-bit unsigned integer. A value of 0 for either line or column should be
// interpreted as "unknown".
type Pos uint32

// MakePos creates a Pos value encoding the provided line and col. It is the
// caller's responsibility to ensure the values are > 0 and <= the maximum
// allowed.
func MakePos(line, col int) Pos {
	return Pos(col<<lineBits | line)
}

// LineCol returns the line and column values encoded in Pos.
func (p Pos) LineCol() (int, int) {
	l := p & lineMask
	c := (p >> lineBits) & colMask
	return int(l), int(c)
}

// Unknown returns true if either line or column value is unknown.
func (p Pos) Unknown() bool {
	l, c := p.LineCol()
	return l == 0 || c == 0
}

// Position is a full position, with the file name and byte offset in
// addition to the line and column. It is the type handed to scanning
// error handlers and rendered in diagnostics.
type Position struct {
	Filename string
	Offset   int // byte offset in the file
	Line     int // 1-based, 0 means unknown
	Col      int // 1-based, 0 means unknown
}

// MakePosition creates a Position from its components.
func MakePosition(filename string, off, line, col int) Position {
	return Position{Filename: filename, Offset: off, Line: line, Col: col}
}

// String renders the position as "file:line:col", with "-" for unknown
// line or column values and the file name omitted when empty.
func (p Position) String() string {
	line, col := "-", "-"
	if p.Line > 0 {
		line = strconv.Itoa(p.Line)
	}
	if p.Col > 0 {
		col = strconv.Itoa(p.Col)
	}
	if p.Filename == "" {
		return fmt.Sprintf("%s:%s", line, col)
	}
	return fmt.Sprintf("%s:%s:%s", p.Filename, line, col)
}
