// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"go4.org/mem"
)

// Tokenize reads r as a sequence of lines and returns the tokens of the input
// in order of appearance. Lines may be terminated by LF or CRLF; the
// terminator is not part of the line. A carriage return that is not followed
// by LF is an ordinary (illegal) character.
//
// Tokenize fails at the first illegal character, misspelled constant, or
// unterminated string. In case of a lexical error, the returned error has
// concrete type [*TokenizeError] and no tokens are returned. Errors reading
// r are returned as-is.
//
// An input with no tokens, including an empty input, returns an empty
// sequence without error.
func Tokenize(r io.Reader) ([]Token, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	var lx lexer
	for {
		line, err := br.ReadBytes('\n')
		if len(line) != 0 {
			if trim, ok := bytes.CutSuffix(line, []byte("\n")); ok {
				line = bytes.TrimSuffix(trim, []byte("\r"))
			}
			if lerr := lx.scanLine(mem.B(line)); lerr != nil {
				return nil, lerr
			}
		}
		if err == io.EOF {
			return lx.toks, nil
		} else if err != nil {
			return nil, fmt.Errorf("line %d: %w", lx.line+1, err)
		}
	}
}

// TokenizeLines returns the tokens of the given lines, in order.  Each line
// is scanned independently, as if it were a line of input to Tokenize.
func TokenizeLines(lines []string) ([]Token, error) {
	var lx lexer
	for _, line := range lines {
		if err := lx.scanLine(mem.S(line)); err != nil {
			return nil, err
		}
	}
	return lx.toks, nil
}

// TokenizeString returns the tokens of s. It is shorthand for calling
// Tokenize with a reader of s.
func TokenizeString(s string) ([]Token, error) {
	return Tokenize(strings.NewReader(s))
}

// MustTokenize returns the tokens of s, or panics if s does not tokenize.
// It is intended for use in tests and examples with constant input.
func MustTokenize(s string) []Token {
	toks, err := TokenizeString(s)
	if err != nil {
		panic(fmt.Sprintf("tokenize %q: %v", s, err))
	}
	return toks
}

// A lexer accumulates tokens across the lines of a single input.
type lexer struct {
	toks []Token
	line int // number of lines scanned so far
}

func (lx *lexer) emit(kind Kind, text mem.RO, pos LineCol) {
	lx.toks = append(lx.toks, Token{Kind: kind, Text: text.StringCopy(), Pos: pos})
}

// scanLine appends the tokens of a single line of input.
func (lx *lexer) scanLine(text mem.RO) error {
	lx.line++
	i := 0
	for i < text.Len() {
		pos := LineCol{Line: lx.line, Column: i}
		rest := text.SliceFrom(i)
		ch := text.At(i)

		// Discard insignificant space. Other whitespace is not recognized.
		if ch == ' ' {
			i++
			continue
		}

		// Handle punctuation.
		if k, ok := selfDelim(ch); ok {
			lx.emit(k, rest.SliceTo(1), pos)
			i++
			continue
		}

		var n int
		var err error
		switch {
		case ch == '"':
			n, err = scanString(rest, pos)
			if err == nil {
				lx.emit(StringLiteral, rest.SliceTo(n), pos)
			}

		case isDigit(ch):
			n = scanDigits(rest)
			lx.emit(NumberLiteral, rest.SliceTo(n), pos)

		case ch == 't' || ch == 'f' || ch == 'n':
			var kind Kind
			kind, n, err = scanConstant(rest, pos)
			if err == nil {
				lx.emit(kind, rest.SliceTo(n), pos)
			}

		default:
			r, _ := mem.DecodeRune(rest)
			return &TokenizeError{Pos: pos, Char: r, Message: fmt.Sprintf("unexpected %q", r)}
		}
		if err != nil {
			return err
		}
		i += n
	}
	return nil
}

// scanString reports the length of the string literal at the front of text,
// including both quotation marks. The contents are not interpreted, so a
// backslash does not protect a following quote.
func scanString(text mem.RO, pos LineCol) (int, error) {
	end := mem.IndexByte(text.SliceFrom(1), '"')
	if end < 0 {
		return 0, &TokenizeError{Pos: pos, Char: -1, Message: "unterminated string"}
	}
	return end + 2, nil
}

// scanDigits reports the length of the run of ASCII digits at the front of text.
func scanDigits(text mem.RO) int {
	n := 0
	for n < text.Len() && isDigit(text.At(n)) {
		n++
	}
	return n
}

var constants = [...]struct {
	word mem.RO
	kind Kind
}{
	{mem.S("true"), True},
	{mem.S("false"), False},
	{mem.S("null"), Null},
}

// scanConstant reports the kind and length of the constant at the front of
// text, whose first byte is known to be t, f, or n. The constant need not be
// followed by a delimiter.
func scanConstant(text mem.RO, pos LineCol) (Kind, int, error) {
	for _, c := range constants {
		if c.word.At(0) != text.At(0) {
			continue
		}
		if mem.HasPrefix(text, c.word) {
			return c.kind, c.word.Len(), nil
		}

		// Report the first byte that disagrees with the expected spelling.
		for j := 1; j < c.word.Len(); j++ {
			if j >= text.Len() {
				return Invalid, 0, &TokenizeError{
					Pos:     pos.advance(j),
					Char:    -1,
					Message: fmt.Sprintf("incomplete constant, want %q", c.word.StringCopy()),
				}
			} else if text.At(j) != c.word.At(j) {
				r, _ := mem.DecodeRune(text.SliceFrom(j))
				return Invalid, 0, &TokenizeError{
					Pos:     pos.advance(j),
					Char:    r,
					Message: fmt.Sprintf("unexpected %q in constant, want %q", r, c.word.StringCopy()),
				}
			}
		}
	}
	panic(fmt.Sprintf("scanConstant: unexpected start %q", text.At(0)))
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

var self = [...]Kind{LeftBrace, RightBrace, LeftBracket, RightBracket, Colon, Comma}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[]:,", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
