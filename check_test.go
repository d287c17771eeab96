// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jcheck_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jcheck"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{`{}`, nil},
		{`{"key": "value"}`, nil},
		{`{"key": [1,2,3]}`, nil},
		{`"just a string"`, nil},
		{"[1,\r\n 2]\r\n", nil},

		{"", jcheck.ErrEmptyInput},
		{"   \n \n", jcheck.ErrEmptyInput},

		{`{key: "value"}`, jcheck.ErrTokenize},
		{"{\t}", jcheck.ErrTokenize},
		{`[-1]`, jcheck.ErrTokenize},

		{`{"key":"value",}`, jcheck.ErrParse},
		{`["value","value2",]`, jcheck.ErrParse},
		{`{} {}`, jcheck.ErrParse},
		{`{"a": // comment`, jcheck.ErrTokenize},
	}
	for _, test := range tests {
		err := jcheck.Check(strings.NewReader(test.input))
		if test.want == nil && err != nil {
			t.Errorf("Check %#q: unexpected error: %v", test.input, err)
		} else if !errors.Is(err, test.want) {
			t.Errorf("Check %#q: got error %v, want %v", test.input, err, test.want)
		}
	}
}

func TestCheckerDepth(t *testing.T) {
	nest := func(n int) string {
		return strings.Repeat(`[{"a":`, n) + "1" + strings.Repeat(`}]`, n)
	}
	tests := []struct {
		max   int
		input string
		ok    bool
	}{
		{0, nest(500), true},
		{1, `1`, true},
		{1, `[]`, true},
		{1, `{"a":[]}`, false},
		{2, `{"a":[]}`, true},
		{2, `{"a":[{}]}`, false},
		{10, nest(5), true},  // depth 10
		{10, nest(6), false}, // depth 12
		{-5, nest(6), true},  // no limit
	}
	for _, test := range tests {
		c := jcheck.NewChecker()
		c.SetMaxDepth(test.max)
		err := c.Check(strings.NewReader(test.input))
		if test.ok && err != nil {
			t.Errorf("Check %#q [max %d]: unexpected error: %v", test.input, test.max, err)
		} else if !test.ok {
			if !errors.Is(err, jcheck.ErrParse) {
				t.Errorf("Check %#q [max %d]: got %v, want %v", test.input, test.max, err, jcheck.ErrParse)
			} else if !strings.Contains(err.Error(), "nesting depth exceeds") {
				t.Errorf("Check %#q [max %d]: wrong error: %v", test.input, test.max, err)
			}
		}
	}
}

func TestCheckerJWCC(t *testing.T) {
	tests := []struct {
		input string
		plain error // result without JWCC
		jwcc  error // result with JWCC
	}{
		{`{"a": 1}`, nil, nil},
		{`{"a": 1,}`, jcheck.ErrParse, nil},
		{`[1, 2, /* three */ 3,]`, jcheck.ErrTokenize, nil},
		{"{\n  // a comment\n  \"a\": [true, null,],\n}\n", jcheck.ErrTokenize, nil},

		// Comments do not hide the rules the lexer applies to what remains.
		{`[1.5] // fraction`, jcheck.ErrTokenize, jcheck.ErrTokenize},
		{`"a" /* trailing */`, jcheck.ErrTokenize, nil},

		// Stripping comments requires well-formed JWCC, whose lexical rules
		// are stricter than those of the lexer.
		{`[007]`, nil, jcheck.ErrParse},
		{`["a\"]`, nil, jcheck.ErrParse},
		{"[\"tab\there\"]", nil, jcheck.ErrParse},
	}
	for _, test := range tests {
		c := jcheck.NewChecker()
		if err := c.Check(strings.NewReader(test.input)); !errors.Is(err, test.plain) {
			t.Errorf("Check %#q: got %v, want %v", test.input, err, test.plain)
		}
		c.AllowJWCC(true)
		if err := c.Check(strings.NewReader(test.input)); !errors.Is(err, test.jwcc) {
			t.Errorf("Check %#q [jwcc]: got %v, want %v", test.input, err, test.jwcc)
		}
	}

	// Input that is not even valid JWCC is reported as such.
	c := jcheck.NewChecker()
	c.AllowJWCC(true)
	err := c.Check(strings.NewReader(`{"a": }`))
	var perr *jcheck.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Check: got %v, want *ParseError", err)
	}
	if perr.Err == nil || !errors.Is(err, perr.Err) {
		t.Errorf("Check: error %v does not wrap its cause", err)
	}
	if !strings.HasPrefix(err.Error(), "invalid JWCC: ") {
		t.Errorf("Check: got error %q, want invalid JWCC", err)
	}
}

func TestCheckFiles(t *testing.T) {
	tests := []struct {
		name string
		want error
	}{
		{"step1/valid.json", nil},
		{"step1/invalid.json", jcheck.ErrEmptyInput},
		{"step2/valid.json", nil},
		{"step2/valid2.json", nil},
		{"step2/invalid.json", jcheck.ErrParse},
		{"step2/invalid2.json", jcheck.ErrTokenize},
		{"step3/valid.json", nil},
		{"step3/invalid.json", jcheck.ErrTokenize},
		{"step4/valid.json", nil},
		{"step4/valid2.json", nil},
		{"step4/invalid.json", jcheck.ErrTokenize},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := os.Open(filepath.Join("testdata", test.name))
			if err != nil {
				t.Fatalf("Open test input: %v", err)
			}
			defer f.Close()
			if err := jcheck.Check(f); !errors.Is(err, test.want) {
				t.Errorf("Check: got %v, want %v", err, test.want)
			}
		})
	}
}
