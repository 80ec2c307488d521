/*
File    : golox/main/main.go
Author  : akashmaji(@iisc.ac.in)

Package main is the command-line entry point for golox. It supports two
modes: no arguments starts the interactive REPL, one argument runs that
file as a Lox script, and anything else is a usage error.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/lox"
	"github.com/akashmaji946/golox/repl"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	prompt  = "golox >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   ▄████  ▒█████   ██▓     ▒█████  ▒██   ██▒
  ██▒ ▀█▒▒██▒  ██▒▓██▒    ▒██▒  ██▒▒▒ █ █ ▒░
 ▒██░▄▄▄░▒██░  ██▒▒██░    ▒██░  ██▒░░  █   ░
 ░▓█  ██▓▒██   ██░▒██░    ▒██   ██░ ░ █ █ ▒
 ░▒▓███▀▒░ ████▓▒░░██████▒░ ████▓▒░▒██▒ ▒██▒
  ░▒   ▒ ░ ▒░▒░▒░ ░ ▒░▓  ░░ ▒░▒░▒░ ▒▒ ░ ░▓ ░
`
)

// exit codes mirror the convention the source follows: 64 is a usage
// error (EX_USAGE), 65 is a compile-time failure (EX_DATAERR), 70 is a
// runtime failure (EX_SOFTWARE).
const (
	exitUsage   = 64
	exitDataErr = 65
	exitSoftErr = 70
)

func main() {
	switch len(os.Args) {
	case 1:
		runPrompt()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(exitUsage)
	}
}

// runFile executes one script to completion and exits with a code that
// reflects whether it hit a compile error, a runtime error, or neither.
func runFile(path string) {
	session := lox.New(os.Stderr, os.Stdout)

	source, err := os.ReadFile(path)
	if err != nil {
		rerr := diagnostics.Wrap(lexer.Token{}, "Could not read file "+path, err)
		session.Sink.RuntimeError(rerr)
		os.Exit(exitUsage)
	}

	session.Run(string(source))

	if session.Sink.HadError {
		os.Exit(exitDataErr)
	}
	if session.Sink.HadRuntimeError {
		os.Exit(exitSoftErr)
	}
}

func runPrompt() {
	r := repl.NewRepl(banner, version, author, line, prompt)
	r.Start(os.Stdout)
}
