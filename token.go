// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck

import "fmt"

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid       Kind = iota // invalid token
	LeftBrace                 // left brace "{"
	RightBrace                // right brace "}"
	LeftBracket               // left square bracket "["
	RightBracket              // right square bracket "]"
	Colon                     // colon ":"
	Comma                     // comma ","
	StringLiteral             // quoted string, no escapes
	True                      // constant: true
	False                     // constant: false
	Null                      // constant: null
	NumberLiteral             // unsigned decimal digits

	// EndOfStream is reported by a Cursor that has run past its last token.
	// The lexer never produces it.
	EndOfStream
)

var kindStr = [...]string{
	Invalid:       "invalid token",
	LeftBrace:     `"{"`,
	RightBrace:    `"}"`,
	LeftBracket:   `"["`,
	RightBracket:  `"]"`,
	Colon:         `":"`,
	Comma:         `","`,
	StringLiteral: "string",
	True:          "true",
	False:         "false",
	Null:          "null",
	NumberLiteral: "number",
	EndOfStream:   "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsSimpleValue reports whether a token of kind k is a complete JSON value by
// itself, that is: a string, number, true, false, or null.
func (k Kind) IsSimpleValue() bool {
	switch k {
	case StringLiteral, NumberLiteral, True, False, Null:
		return true
	}
	return false
}

// A Token is a single lexical unit of the input.
type Token struct {
	Kind Kind
	Text string  // source text, including quotes for a StringLiteral
	Pos  LineCol // location of the first byte of the token
}

// String renders the token for use in diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case StringLiteral, NumberLiteral:
		return fmt.Sprintf("%v %s", t.Kind, t.Text)
	}
	return t.Kind.String()
}
