/*
File    : golox/lox/lox.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package lox wires the lexer, parser, resolver, and evaluator into the
// single `Run` entry point the command-line front end and the REPL both
// call. It owns nothing the pipeline stages don't already own; its only
// job is gluing one stage's output to the next stage's input and
// sharing one diagnostics.Sink and one eval.Interpreter across an
// entire REPL session (or exactly one batch run).
package lox

import (
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

// Lox is a single interpreter session: one diagnostics.Sink and one
// eval.Interpreter, reused across every Run call so that a REPL's
// global variables and function definitions persist from line to line.
type Lox struct {
	Sink   *diagnostics.Sink
	interp *eval.Interpreter
}

// New builds a session writing compile diagnostics to stderr and
// runtime diagnostics plus `print` output to stdout.
func New(stderr, stdout io.Writer) *Lox {
	sink := diagnostics.NewSink(stderr, stdout)
	interp := eval.New(sink)
	interp.SetStdout(stdout)
	return &Lox{Sink: sink, interp: interp}
}

// Run lexes, parses, resolves, and interprets source. It always runs
// every stage it can: a lexer error does not block parsing of the
// tokens it did manage to produce, but resolution and interpretation
// are both skipped once diagnostics.Sink.HadError has been set, since
// executing code the resolver flagged as statically invalid would
// either panic or produce a result nobody asked for.
func (l *Lox) Run(source string) {
	tokens := lexer.NewLexer(source, l.Sink).ScanTokens()

	program := parser.NewParser(tokens, l.Sink).Parse()
	if l.Sink.HadError {
		return
	}

	resolver.New(l.interp, l.Sink).Resolve(program)
	if l.Sink.HadError {
		return
	}

	l.interp.Interpret(program)
}

// compile-time check that *diagnostics.Sink satisfies every reporter
// interface the pipeline stages declare for themselves.
var (
	_ interface {
		Error(line int, message string)
	} = (*diagnostics.Sink)(nil)
	_ interface {
		ErrorAtToken(tok lexer.Token, message string)
	} = (*diagnostics.Sink)(nil)
	_ interface {
		Resolve(expr ast.Expr, depth int)
	} = (*eval.Interpreter)(nil)
)
