/*
File    : golox/diagnostics/diagnostics.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package diagnostics is the error channel shared by every stage of the
// golox pipeline. It replaces the source interpreter's global
// had_error/had_runtime_error module variables with a Sink value that the
// lexer, parser, resolver, and interpreter each hold a reference to, per
// the REDESIGN FLAGS in the language specification this package
// implements.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/lexer"
	"github.com/juju/errors"
)

// Sink collects compile-time and runtime diagnostics for one run of the
// interpreter. A REPL reuses a single Sink across lines and resets
// HadError between them; a batch run uses a fresh Sink per file.
type Sink struct {
	// Stderr receives compile-time diagnostics; Stdout receives the
	// runtime-error text, preserving the source's asymmetric behavior
	// (see the Open Questions section of the specification).
	Stderr io.Writer
	Stdout io.Writer

	HadError        bool
	HadRuntimeError bool
}

// NewSink builds a Sink writing compile errors to stderr and runtime
// errors to stdout.
func NewSink(stderr, stdout io.Writer) *Sink {
	return &Sink{Stderr: stderr, Stdout: stdout}
}

// Reset clears HadError, as the REPL does after every line so that one
// bad line does not poison the rest of the session.
func (s *Sink) Reset() {
	s.HadError = false
}

// Error reports a compile-time error with no specific token, used by the
// lexer which only knows a line number.
func (s *Sink) Error(line int, message string) {
	s.report(line, "", message)
}

// ErrorAtToken reports a compile-time error located at a specific token,
// used by the parser and resolver. The "<WHERE>" clause distinguishes an
// error at end-of-file from one at a named lexeme.
func (s *Sink) ErrorAtToken(tok lexer.Token, message string) {
	if tok.Type == lexer.EOF {
		s.report(tok.Line, " at end", message)
	} else {
		s.report(tok.Line, " at '"+tok.Lexeme+"'", message)
	}
}

func (s *Sink) report(line int, where, message string) {
	fmt.Fprintf(s.Stderr, "[line %d] Error%s: %s\n", line, where, message)
	s.HadError = true
}

// RuntimeError is the payload carried by a runtime failure: the token
// whose line the failure is attributed to, and a message. It wraps with
// juju/errors so the underlying cause (if any) survives alongside the
// Lox-level message.
type RuntimeError struct {
	Token   lexer.Token
	Message string
	cause   error
}

// NewRuntimeError builds a RuntimeError with no wrapped cause.
func NewRuntimeError(tok lexer.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

// Wrap annotates an existing error with the offending token and message,
// keeping the original error retrievable via errors.Cause.
func Wrap(tok lexer.Token, message string, cause error) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message, cause: errors.Annotate(cause, message)}
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	return e.Message
}

// Cause returns the wrapped error, if any, satisfying juju/errors'
// causer convention.
func (e *RuntimeError) Cause() error {
	return e.cause
}

// RuntimeError reports a runtime failure: the message followed by the
// offending line, both written to standard output. This mirrors the
// source's behavior exactly; see the specification's Open Questions for
// why runtime diagnostics land on stdout while compile diagnostics land
// on stderr.
func (s *Sink) RuntimeError(err *RuntimeError) {
	fmt.Fprintf(s.Stdout, "%s\n[line %d]\n", err.Message, err.Token.Line)
	s.HadRuntimeError = true
}
