/*
File    : golox/eval/callable.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"time"

	"github.com/akashmaji946/golox/ast"
)

// Callable is anything invocable with `(...)` syntax: the native clock
// function and user-declared functions both satisfy it.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, arguments []interface{}) (interface{}, error)
	String() string
}

// nativeFunction adapts a Go func to Callable, for clock() and any
// future built-in that needs no Lox-level closure or declaration node.
type nativeFunction struct {
	arity int
	name  string
	fn    func(arguments []interface{}) (interface{}, error)
}

func (n *nativeFunction) Arity() int { return n.arity }

func (n *nativeFunction) Call(interp *Interpreter, arguments []interface{}) (interface{}, error) {
	return n.fn(arguments)
}

func (n *nativeFunction) String() string { return "<native fn>" }

// newClock returns the single native function golox exposes: clock(),
// which reports the host's wall-clock time in seconds.
func newClock() Callable {
	return &nativeFunction{
		arity: 0,
		name:  "clock",
		fn: func(arguments []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	}
}

// LoxFunction is a user-declared function: its declaration node plus the
// environment that was current at the point of declaration. Capturing
// that environment by pointer, rather than copying its bindings, is
// what makes closures observe later mutations of variables they close
// over.
type LoxFunction struct {
	declaration *ast.FunctionStmt
	closure     *Environment
}

// NewLoxFunction builds a LoxFunction closing over closure.
func NewLoxFunction(declaration *ast.FunctionStmt, closure *Environment) *LoxFunction {
	return &LoxFunction{declaration: declaration, closure: closure}
}

func (f *LoxFunction) Arity() int { return len(f.declaration.Params) }

// Call runs the function body in a fresh environment enclosed by the
// closure (not by the caller's environment), binds each parameter to
// its matching argument, and executes the body. A returnSignal raised
// while executing the body is caught here and becomes the call's
// result; falling off the end of the body without one yields nil.
func (f *LoxFunction) Call(interp *Interpreter, arguments []interface{}) (interface{}, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if signal, ok := err.(*returnSignal); ok {
		return signal.value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *LoxFunction) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// returnSignal is the non-local unwind strategy called out in the
// specification as the source's approach: a return statement raises
// this value as a Go error up through block/if/while execution, and
// only LoxFunction.Call observes and consumes it. It is never shown to
// the diagnostics sink; executeBlock's callers other than Call must
// propagate it unchanged rather than reporting it.
type returnSignal struct {
	value interface{}
}

func (r *returnSignal) Error() string { return "return" }
