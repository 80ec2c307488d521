/*
File    : golox/resolver/resolver_expressions.go
Author  : akashmaji(@iisc.ac.in)
*/
package resolver

import "github.com/akashmaji946/golox/ast"

func (r *Resolver) VisitVariableExpr(expr *ast.Variable) (interface{}, error) {
	if len(r.scopes) > 0 {
		if initialized, declared := r.scopes[len(r.scopes)-1][expr.Name.Lexeme]; declared && !initialized {
			r.sink.ErrorAtToken(expr.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(expr, expr.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(expr *ast.Assign) (interface{}, error) {
	r.resolveExpr(expr.Value)
	r.resolveLocal(expr, expr.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(expr *ast.Binary) (interface{}, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(expr *ast.Logical) (interface{}, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(expr *ast.Call) (interface{}, error) {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(expr *ast.Grouping) (interface{}, error) {
	r.resolveExpr(expr.Expression)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(expr *ast.Unary) (interface{}, error) {
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(expr *ast.Literal) (interface{}, error) {
	return nil, nil
}
