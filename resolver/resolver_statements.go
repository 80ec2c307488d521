/*
File    : golox/resolver/resolver_statements.go
Author  : akashmaji(@iisc.ac.in)
*/
package resolver

import "github.com/akashmaji946/golox/ast"

func (r *Resolver) VisitBlockStmt(stmt *ast.BlockStmt) error {
	r.beginScope()
	r.Resolve(stmt.Statements)
	r.endScope()
	return nil
}

func (r *Resolver) VisitExpressionStmt(stmt *ast.ExpressionStmt) error {
	r.resolveExpr(stmt.Expression)
	return nil
}

func (r *Resolver) VisitPrintStmt(stmt *ast.PrintStmt) error {
	r.resolveExpr(stmt.Expression)
	return nil
}

func (r *Resolver) VisitVarStmt(stmt *ast.VarStmt) error {
	r.declare(stmt.Name)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.define(stmt.Name)
	return nil
}

func (r *Resolver) VisitFunctionStmt(stmt *ast.FunctionStmt) error {
	// The name is declared and defined in the *enclosing* scope before
	// resolving the body, so the function can call itself recursively.
	r.declare(stmt.Name)
	r.define(stmt.Name)

	r.resolveFunction(stmt, functionTypeFunction)
	return nil
}

func (r *Resolver) VisitIfStmt(stmt *ast.IfStmt) error {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.ThenBranch)
	if stmt.ElseBranch != nil {
		r.resolveStmt(stmt.ElseBranch)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(stmt *ast.WhileStmt) error {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Body)
	return nil
}

func (r *Resolver) VisitReturnStmt(stmt *ast.ReturnStmt) error {
	if r.currentFunction == functionTypeNone {
		r.sink.ErrorAtToken(stmt.Keyword, "Can't return from top-level code.")
	}
	if stmt.Value != nil {
		r.resolveExpr(stmt.Value)
	}
	return nil
}
