/*
File    : golox/eval/interpreter.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package eval is the tree-walking evaluator: the last stage of the
// golox pipeline. It executes a resolved statement list directly
// against a chain of Environment values, consulting the resolver's
// distance table instead of re-deriving scope depth at run time.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/lexer"
)

// Interpreter walks a program's statements once, in order, mutating its
// own environment chain as it goes. It implements both ast.ExprVisitor
// and ast.StmtVisitor, and it implements the resolver's distanceRecorder
// interface via Resolve, so the resolver can write into it without the
// resolver package importing eval.
type Interpreter struct {
	sink    *diagnostics.Sink
	stdout  io.Writer
	globals *Environment
	current *Environment
	locals  map[ast.Expr]int
}

// New builds an Interpreter with a fresh globals environment
// pre-populated with clock(), reporting runtime failures to sink and
// `print` output to os.Stdout.
func New(sink *diagnostics.Sink) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", newClock())
	return &Interpreter{
		sink:    sink,
		stdout:  os.Stdout,
		globals: globals,
		current: globals,
		locals:  make(map[ast.Expr]int),
	}
}

// SetStdout redirects where `print` statements write, for embedding or
// for tests that want to capture program output without touching the
// real os.Stdout.
func (i *Interpreter) SetStdout(w io.Writer) {
	i.stdout = w
}

// Resolve records that expr was resolved distance scopes out from
// wherever it is evaluated. Called by the resolver, never by eval code
// itself.
func (i *Interpreter) Resolve(expr ast.Expr, distance int) {
	i.locals[expr] = distance
}

// Interpret executes every statement in program in order. It stops at
// the first runtime error and reports it through the sink; statements
// already executed have already taken effect.
func (i *Interpreter) Interpret(program []ast.Stmt) {
	for _, stmt := range program {
		if err := i.execute(stmt); err != nil {
			if rerr, ok := err.(*diagnostics.RuntimeError); ok {
				i.sink.RuntimeError(rerr)
			}
			return
		}
	}
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.Accept(i)
}

func (i *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	return expr.Accept(i)
}

// lookUpVariable reads name either directly at its resolved distance,
// or (when the resolver left it unresolved) from globals. expr is the
// Variable or Assign node whose identity keys the distance table.
func (i *Interpreter) lookUpVariable(name lexer.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.current.GetAt(distance, name.Lexeme), nil
	}
	return i.globals.Get(name)
}
