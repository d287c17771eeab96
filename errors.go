// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenize is the base error for all lexical failures.
	// Every *TokenizeError unwraps to it.
	ErrTokenize = errors.New("illegal character")

	// ErrParse is the base error for all grammar failures.
	// Every *ParseError unwraps to it.
	ErrParse = errors.New("invalid JSON")

	// ErrEmptyInput is reported when the input contains no tokens.
	ErrEmptyInput = errors.New("nothing to parse")
)

// TokenizeError is the concrete type of errors reported by the lexer.
type TokenizeError struct {
	Pos     LineCol // location of the offending byte
	Char    rune    // the offending character, or -1 at end of line
	Message string
}

// Error satisfies the error interface.
func (e *TokenizeError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Pos, e.Message)
}

// Unwrap supports error wrapping.
func (e *TokenizeError) Unwrap() error { return ErrTokenize }

// ParseError is the concrete type of errors reported by the validator.
type ParseError struct {
	Pos     LineCol // location of the offending token; zero if unknown
	Token   Token   // the offending token (EndOfStream if input ran out)
	Message string
	Err     error // underlying cause, if any
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Pos.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("at %s: %s", e.Pos, e.Message)
}

// Unwrap supports error wrapping. A ParseError always matches ErrParse, and
// also its underlying cause if it has one.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}
