package jcheck

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// advance returns the location n bytes to the right of lc on the same line.
func (lc LineCol) advance(n int) LineCol { return LineCol{Line: lc.Line, Column: lc.Column + n} }
