/*
File    : golox/eval/eval_statements.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
)

func (i *Interpreter) VisitExpressionStmt(stmt *ast.ExpressionStmt) error {
	_, err := i.evaluate(stmt.Expression)
	return err
}

// VisitPrintStmt writes to i.stdout rather than directly to os.Stdout,
// so SetStdout can redirect it.
func (i *Interpreter) VisitPrintStmt(stmt *ast.PrintStmt) error {
	value, err := i.evaluate(stmt.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.stdout, stringify(value))
	return nil
}

func (i *Interpreter) VisitVarStmt(stmt *ast.VarStmt) error {
	var value interface{}
	if stmt.Initializer != nil {
		v, err := i.evaluate(stmt.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	i.current.Define(stmt.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) VisitBlockStmt(stmt *ast.BlockStmt) error {
	return i.executeBlock(stmt.Statements, NewEnvironment(i.current))
}

// executeBlock runs statements against env, restoring the interpreter's
// previous environment when done (including when a statement returns
// an error or a returnSignal) so a failed or short-circuited block
// never leaves the interpreter pointed at a scope that should already
// have gone out of use.
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := i.current
	i.current = env
	defer func() { i.current = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) VisitFunctionStmt(stmt *ast.FunctionStmt) error {
	fn := NewLoxFunction(stmt, i.current)
	i.current.Define(stmt.Name.Lexeme, fn)
	return nil
}

func (i *Interpreter) VisitReturnStmt(stmt *ast.ReturnStmt) error {
	var value interface{}
	if stmt.Value != nil {
		v, err := i.evaluate(stmt.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &returnSignal{value: value}
}
