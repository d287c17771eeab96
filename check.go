// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tailscale/hujson"
)

// A Checker tokenizes and validates complete inputs. A zero Checker is ready
// for use and applies the same rules as Tokenize and Validate.
type Checker struct {
	maxDepth int  // maximum nesting depth, 0 for no limit
	jwcc     bool // standardize JWCC input before checking
}

// NewChecker constructs a new Checker with default settings.
func NewChecker() *Checker { return new(Checker) }

// SetMaxDepth configures the maximum nesting depth of objects and arrays
// accepted by c. If n ≤ 0, there is no limit.
func (c *Checker) SetMaxDepth(n int) { c.maxDepth = max(n, 0) }

// AllowJWCC configures c to accept (true) or reject (false) the JSON With
// Commas and Comments extensions. If enabled, comments and trailing commas are
// stripped from the input before it is checked. This requires buffering the
// complete input.
//
// Stripping requires the input to be well-formed JWCC, which is stricter than
// the lexer in some respects: numbers may not have leading zeroes, strings may
// not contain raw control characters, and a backslash in a string begins an
// escape sequence. Input that fails these rules is reported as a
// [*ParseError] without a location, before the lexer runs.
func (c *Checker) AllowJWCC(ok bool) { c.jwcc = ok }

// Check reads the complete input from r and reports whether it is a single
// well-formed JSON value.  It returns nil if so. Otherwise the error has
// concrete type [*TokenizeError] or [*ParseError], or is ErrEmptyInput if r
// contains no tokens. Errors reading r are returned as-is.
func (c *Checker) Check(r io.Reader) error {
	if c.jwcc {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		std, err := hujson.Standardize(data)
		if err != nil {
			return &ParseError{Message: fmt.Sprintf("invalid JWCC: %v", err), Err: err}
		}
		r = bytes.NewReader(std)
	}

	toks, err := Tokenize(r)
	if err != nil {
		return err
	} else if len(toks) == 0 {
		return ErrEmptyInput
	}
	return validate(toks, c.maxDepth)
}

// Check reads the complete input from r and reports whether it is a single
// well-formed JSON value, using a Checker with default settings.
func Check(r io.Reader) error { return new(Checker).Check(r) }
