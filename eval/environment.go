/*
File    : golox/eval/environment.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/lexer"
)

// Environment is a single lexical scope: a name->value map plus an
// optional link to the enclosing scope, forming a chain. The head of
// the chain is the innermost scope; walking Enclosing pointers leads to
// globals. Unlike the teacher's Scope type, Environment is always
// shared by pointer, never copied: a closure keeps a live reference to
// the exact Environment that was current at the point of declaration,
// so later assignments through any alias are visible to the closure.
type Environment struct {
	values    map[string]interface{}
	Enclosing *Environment
}

// NewEnvironment creates a scope enclosed by enclosing, or a fresh
// global scope when enclosing is nil.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), Enclosing: enclosing}
}

// Define binds name to value in this environment, overwriting any
// existing binding of the same name in this same scope. Unlike Assign,
// Define never walks the enclosing chain: redeclaring a global, for
// instance on a later REPL line, always succeeds.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks up name in this environment, falling back to enclosing
// scopes. A miss anywhere along the chain is always a runtime error;
// golox has no notion of an implicit nil for an undeclared name.
func (e *Environment) Get(name lexer.Token) (interface{}, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, diagnostics.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// Assign rebinds an existing name, walking the enclosing chain until it
// finds the scope that declared it. Assigning to a name that was never
// declared anywhere in the chain is a runtime error, just like Get.
func (e *Environment) Assign(name lexer.Token, value interface{}) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return diagnostics.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// ancestor walks exactly distance Enclosing links up from e. The
// resolver guarantees distance is always in range for whatever name is
// being looked up at the call site, so no bounds check is needed here.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance scopes out,
// bypassing the chain walk Get would otherwise do. Used for variable
// reads the resolver has already proven are local.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).values[name]
}

// AssignAt rebinds name directly in the environment distance scopes
// out. Used for assignments the resolver has already proven are local.
func (e *Environment) AssignAt(distance int, name lexer.Token, value interface{}) {
	e.ancestor(distance).values[name.Lexeme] = value
}
