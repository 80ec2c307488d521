/*
File    : golox/resolver/resolver.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package resolver performs the static pass between parsing and
// evaluation: it walks the AST once, maintaining a stack of lexical
// scopes, and records for every variable read or assignment how many
// enclosing scopes to skip before reaching its binding. This lets the
// interpreter look a variable up by distance instead of walking the
// environment chain and guessing, which is what makes closures see the
// binding that was in scope at declaration time rather than whatever
// happens to be bound by the same name when the closure runs.
package resolver

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

// reporter is the narrow slice of diagnostics.Sink the resolver needs.
type reporter interface {
	ErrorAtToken(tok lexer.Token, message string)
}

// distanceRecorder is the narrow slice of eval.Interpreter the resolver
// writes into: one entry per Variable/Assign expression, keyed by node
// identity, so the interpreter never has to search for a binding it
// already statically knows the depth of.
type distanceRecorder interface {
	Resolve(expr ast.Expr, depth int)
}

type functionType int

const (
	functionTypeNone functionType = iota
	functionTypeFunction
)

// scope maps a name to whether its binding has finished initializing.
// false between declare and define, true afterward; a read of a
// false-valued name in the innermost scope is the "own initializer"
// compile error.
type scope map[string]bool

// Resolver is a single-use ast.ExprVisitor/ast.StmtVisitor pair that
// mutates only the interpreter's distance table; it never touches
// runtime state.
type Resolver struct {
	interp          distanceRecorder
	sink            reporter
	scopes          []scope
	currentFunction functionType
}

// New creates a Resolver that records distances into interp and reports
// static errors to sink.
func New(interp distanceRecorder, sink reporter) *Resolver {
	return &Resolver{interp: interp, sink: sink, currentFunction: functionTypeNone}
}

// Resolve walks every statement in program. Globals are never pushed as
// a scope, so a name the resolver never finds in an enclosing scope is
// left unresolved and treated as global at runtime.
func (r *Resolver) Resolve(program []ast.Stmt) {
	for _, stmt := range program {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	_ = stmt.Accept(r)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	_, _ = expr.Accept(r)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope, marked not-yet-initialized.
// Redeclaring a name already present in that same scope is a compile
// error (but shadowing an outer scope's name is always fine).
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	innermost := r.scopes[len(r.scopes)-1]
	if _, exists := innermost[name.Lexeme]; exists {
		r.sink.ErrorAtToken(name, "Already a variable with this name in this scope.")
	}
	innermost[name.Lexeme] = false
}

// define marks name as initialized in the innermost scope.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks scopes from innermost to outermost looking for
// name; the first match records its distance. No match leaves expr
// unresolved, i.e. global.
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.interp.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

// resolveFunction resolves a function's parameters and body in a fresh
// scope, tracking currentFunction so a bare 'return' inside it is valid
// even though the function itself sits at a scope where a `return`
// outside it would not be.
func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	for _, stmt := range fn.Body {
		r.resolveStmt(stmt)
	}
	r.endScope()

	r.currentFunction = enclosingFunction
}
