// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"cmp"
	"fmt"
)

// Validate reports whether toks is exactly one well-formed JSON value.  It
// returns nil if so; otherwise it returns an error of concrete type
// [*ParseError] describing the first token that does not fit the grammar.
//
// The caller is expected to reject an empty sequence before calling
// Validate. If toks is empty, Validate reports ErrEmptyInput.
//
// Validate does not limit the nesting depth of its input. Use a [Checker]
// with a maximum depth to bound it.
func Validate(toks []Token) error { return validate(toks, 0) }

func validate(toks []Token, maxDepth int) error {
	if len(toks) == 0 {
		return ErrEmptyInput
	}
	v := &validator{c: NewCursor(toks), maxDepth: maxDepth}
	if err := v.parseValue(); err != nil {
		return err
	}
	if !v.c.AtEnd() {
		tok := v.c.Peek()
		return v.fail(tok, "unexpected %v after value", tok)
	}
	return nil
}

// A validator matches a token sequence against the JSON grammar by recursive
// descent. Each parse method consumes tokens from c and reports whether they
// matched. The depth of recursion is the nesting depth of the input.
type validator struct {
	c        *Cursor
	depth    int // current nesting depth
	maxDepth int // maximum nesting depth, 0 for no limit
}

// parseValue consumes a single value of any type.
func (v *validator) parseValue() error {
	switch tok := v.c.Peek(); {
	case tok.Kind.IsSimpleValue():
		v.c.Read()
		return nil
	case tok.Kind == LeftBrace:
		return v.parseObject()
	case tok.Kind == LeftBracket:
		return v.parseArray()
	default:
		return v.fail(tok, "unexpected %v", tok)
	}
}

// parseObject consumes an object.
// Precondition: token == LeftBrace.
func (v *validator) parseObject() error {
	if err := v.enter(v.c.Read()); err != nil {
		return err
	}
	defer v.leave()

	var err error
	switch tok := v.c.Peek(); tok.Kind {
	case RightBrace:
		// empty object
	case StringLiteral:
		err = v.parseMembers()
	default:
		err = v.fail(tok, "expected %v or %v, got %v", StringLiteral, RightBrace, tok)
	}

	// The closing brace is consumed whether or not the members matched, but
	// a failure among the members takes precedence.
	end := v.expect(RightBrace)
	return cmp.Or(err, end)
}

// parseMembers consumes one or more comma-separated key:value members.
// Precondition: token == StringLiteral.
// Postcondition: token == RightBrace.
func (v *validator) parseMembers() error {
	for {
		if err := v.expect(StringLiteral); err != nil {
			return err
		} else if err := v.expect(Colon); err != nil {
			return err
		} else if err := v.parseValue(); err != nil {
			return err
		}

		// A comma must be followed by another member; a trailing comma is
		// caught by the key check at the top of the loop.
		switch tok := v.c.Peek(); tok.Kind {
		case Comma:
			v.c.Read()
		case RightBrace:
			return nil
		default:
			return v.fail(tok, "expected %v or %v, got %v", Comma, RightBrace, tok)
		}
	}
}

// parseArray consumes an array.
// Precondition: token == LeftBracket.
func (v *validator) parseArray() error {
	if err := v.enter(v.c.Read()); err != nil {
		return err
	}
	defer v.leave()

	var err error
	if v.c.Peek().Kind != RightBracket {
		err = v.parseElements()
	}

	// As for objects, the closing bracket is always consumed.
	end := v.expect(RightBracket)
	return cmp.Or(err, end)
}

// parseElements consumes one or more comma-separated values.
func (v *validator) parseElements() error {
	for {
		if err := v.parseValue(); err != nil {
			return err
		}
		if v.c.Peek().Kind != Comma {
			return nil
		}
		v.c.Read()
	}
}

// expect consumes a single token, which must have the given kind.
func (v *validator) expect(kind Kind) error {
	if tok := v.c.Read(); tok.Kind != kind {
		return v.fail(tok, "expected %v, got %v", kind, tok)
	}
	return nil
}

// enter records the opening of a nested object or array at open.
func (v *validator) enter(open Token) error {
	if v.maxDepth > 0 && v.depth >= v.maxDepth {
		return v.fail(open, "nesting depth exceeds %d", v.maxDepth)
	}
	v.depth++
	return nil
}

func (v *validator) leave() { v.depth-- }

func (v *validator) fail(tok Token, msg string, args ...any) error {
	return &ParseError{Pos: tok.Pos, Token: tok, Message: fmt.Sprintf(msg, args...)}
}
