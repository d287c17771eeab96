// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jcheck reports whether its input is a well-formed JSON value.
//
// Usage:
//
//	jcheck [-jwcc] [-max-depth N] FILE
//
// If FILE is "-", input is read from stdin, which must not be a terminal.
// The exit status is 0 if the input is valid, 1 if it is not or cannot be
// read, and 2 for a usage error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/creachadair/jcheck"
	"golang.org/x/term"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// stdinIsTerminal reports whether the process's standard input is an
// interactive terminal.
var stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "jcheck: ", 0)

	fs := flag.NewFlagSet("jcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	allowJWCC := fs.Bool("jwcc", false, "Accept comments and trailing commas (JWCC)")
	maxDepth := fs.Int("max-depth", 0, "Maximum nesting depth of objects and arrays (0 means no limit)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: jcheck [options] FILE

Report whether FILE contains a single well-formed JSON value.
Use "-" as FILE to read from stdin (which must not be a terminal).

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); errors.Is(err, flag.ErrHelp) {
		return exitOK
	} else if err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	var input io.Reader
	if path := fs.Arg(0); path == "-" {
		if stdinIsTerminal() {
			fs.Usage()
			return exitUsage
		}
		fmt.Fprintln(stdout, "Using <stdin>")
		input = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			logger.Print(err)
			return exitFail
		}
		defer f.Close()
		input = f
	}

	c := jcheck.NewChecker()
	c.SetMaxDepth(*maxDepth)
	c.AllowJWCC(*allowJWCC)

	err := c.Check(input)
	var terr *jcheck.TokenizeError
	switch {
	case err == nil:
		fmt.Fprintln(stdout, "Parse successful")
		return exitOK
	case errors.As(err, &terr):
		logger.Printf("illegal character found: %v", terr)
	case errors.Is(err, jcheck.ErrEmptyInput):
		logger.Print("Did not find anything to parse")
	case errors.Is(err, jcheck.ErrParse):
		fmt.Fprintf(stdout, "Parse failed: %v\n", err)
	default:
		logger.Printf("Reading input: %v", err)
	}
	return exitFail
}
