/*
File    : golox/ast/stmt.go
Author  : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/golox/lexer"

// Stmt is implemented by every statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// StmtVisitor is implemented once per pass that walks statements.
type StmtVisitor interface {
	VisitExpressionStmt(stmt *ExpressionStmt) error
	VisitPrintStmt(stmt *PrintStmt) error
	VisitVarStmt(stmt *VarStmt) error
	VisitBlockStmt(stmt *BlockStmt) error
	VisitIfStmt(stmt *IfStmt) error
	VisitWhileStmt(stmt *WhileStmt) error
	VisitFunctionStmt(stmt *FunctionStmt) error
	VisitReturnStmt(stmt *ReturnStmt) error
}

// ExpressionStmt evaluates Expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expression, stringifies it, and writes a line.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares Name, binding it to Initializer's value (or nil if
// Initializer is absent).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil if no initializer was given
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope enclosing Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt executes ThenBranch when Condition is truthy, else ElseBranch
// (which is nil when the source had no else clause).
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt loops Body while Condition is truthy. The parser desugars
// 'for' into a WhileStmt wrapped in a BlockStmt, so there is no separate
// ForStmt node.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function. It doubles as the declaration
// node a closure captures when the statement executes and reads again
// at every call, so Params and Body outlive the statement's own
// execution.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds the enclosing function call with Value's result (or
// nil when Value is absent). Keyword is the 'return' token, kept for
// diagnostics attributing a top-level return to a line.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil if no value was given
}

func (s *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }
