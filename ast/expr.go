/*
File    : golox/ast/expr.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package ast defines the two algebraic node families of the Lox syntax
// tree, expressions and statements. Each family is a tagged variant
// realized as a Go interface plus one concrete type per alternative,
// dispatched through a Visitor rather than type switches so that adding
// an evaluation pass (interpreter, resolver) only means implementing one
// more Visitor, not touching the node definitions. Nodes are immutable
// after construction; the resolver never mutates a node, it records
// distances in a side table keyed by node identity.
package ast

import "github.com/akashmaji946/golox/lexer"

// Expr is implemented by every expression node. Accept dispatches to the
// matching method on v.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor is implemented once per pass that walks expressions (the
// resolver, the interpreter). Each Visit method returns the value
// produced by evaluating that node, or an error.
type ExprVisitor interface {
	VisitLiteralExpr(expr *Literal) (interface{}, error)
	VisitGroupingExpr(expr *Grouping) (interface{}, error)
	VisitUnaryExpr(expr *Unary) (interface{}, error)
	VisitBinaryExpr(expr *Binary) (interface{}, error)
	VisitLogicalExpr(expr *Logical) (interface{}, error)
	VisitVariableExpr(expr *Variable) (interface{}, error)
	VisitAssignExpr(expr *Assign) (interface{}, error)
	VisitCallExpr(expr *Call) (interface{}, error)
}

// Literal is a pre-parsed constant value: nil, a bool, a float64, or a
// string.
type Literal struct {
	Value interface{}
}

func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// Grouping is a parenthesized expression, kept as its own node so the
// printer (if one existed) could distinguish "(1)" from "1".
type Grouping struct {
	Expression Expr
}

func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// Unary is a prefix operator ('-' or '!') applied to Right.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// Binary is an infix arithmetic, comparison, or equality operator.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// Logical is 'and'/'or'. It is kept distinct from Binary because its
// evaluation short-circuits and returns an unconverted operand value
// rather than a boolean.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// Variable is a read of the binding named Name. The resolver annotates
// this node's identity (not the node itself) with a lexical depth in the
// interpreter's resolution table; an unresolved reference is global.
type Variable struct {
	Name lexer.Token
}

func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// Assign writes Value to the binding named Name, and evaluates to the
// assigned value.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// Call invokes Callee with Arguments. Paren is the closing ')' token,
// kept so a runtime error (arity mismatch, non-callable) can be
// attributed to a line.
type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (e *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }
