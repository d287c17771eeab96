// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jcheck implements a JSON conformance checker.
//
// Checking is done in two stages. The lexer reads the complete input and
// produces a sequence of tokens; the validator then matches that sequence
// against the JSON value grammar by recursive descent. Neither stage builds a
// value: the only result is whether the input is valid.
//
// # Tokenizing
//
// Tokenize reads input line by line and returns its tokens, or reports the
// first illegal character:
//
//	toks, err := jcheck.Tokenize(input)
//	if err != nil {
//	   log.Fatalf("Tokenize failed: %v", err)
//	}
//
// The lexer accepts a deliberately small subset of JSON:
//
//   - Strings have no escape sequences; a string ends at the next quotation
//     mark on the same line.
//   - Numbers are unsigned decimal integers; there is no sign, fraction, or
//     exponent.
//   - The only whitespace is the space character. Lines may end in LF or
//     CRLF, but a tab anywhere outside a string is illegal.
//
// # Validating
//
// Validate reports whether a non-empty token sequence is exactly one JSON
// value. A bare string, number, or constant is a complete value; trailing
// commas and leftover tokens after the value are errors:
//
//	if len(toks) == 0 {
//	   log.Fatal("Nothing to parse")
//	} else if err := jcheck.Validate(toks); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Lexical errors have concrete type *jcheck.TokenizeError, and grammar errors
// have concrete type *jcheck.ParseError. Both report the line and column of
// the failure.
//
// # Checking
//
// The Checker type combines both stages and adds options: a limit on the
// nesting depth of objects and arrays, and support for JSON With Commas and
// Comments (JWCC) input.
//
//	c := jcheck.NewChecker()
//	c.SetMaxDepth(100)
//	if err := c.Check(input); err != nil {
//	   log.Fatalf("Check failed: %v", err)
//	}
package jcheck
