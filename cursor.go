// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

// A Cursor is a read-only position in a sequence of tokens.  Reading past the
// end of the sequence is not an error: the cursor reports a token of kind
// EndOfStream instead.
//
// A Cursor does not copy the sequence; the caller must not modify it while the
// cursor is in use.
type Cursor struct {
	toks []Token
	pos  int
}

// NewCursor constructs a cursor positioned at the first of toks.
func NewCursor(toks []Token) *Cursor { return &Cursor{toks: toks} }

// Peek returns the current token without advancing.
func (c *Cursor) Peek() Token {
	if c.pos < len(c.toks) {
		return c.toks[c.pos]
	}
	return c.eos()
}

// Read returns the current token and advances past it.
func (c *Cursor) Read() Token {
	tok := c.Peek()
	if c.pos < len(c.toks) {
		c.pos++
	}
	return tok
}

// AtEnd reports whether all the tokens have been read.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.toks) }

// Offset reports the index of the current token in the sequence.
func (c *Cursor) Offset() int { return c.pos }

// eos returns an EndOfStream token located just past the last token.
func (c *Cursor) eos() Token {
	if len(c.toks) == 0 {
		return Token{Kind: EndOfStream, Pos: LineCol{Line: 1}}
	}
	last := c.toks[len(c.toks)-1]
	return Token{Kind: EndOfStream, Pos: last.Pos.advance(len(last.Text))}
}
