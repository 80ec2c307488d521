/*
File    : golox/eval/eval_controls.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/golox/ast"

func (i *Interpreter) VisitIfStmt(stmt *ast.IfStmt) error {
	condition, err := i.evaluate(stmt.Condition)
	if err != nil {
		return err
	}

	if isTruthy(condition) {
		return i.execute(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return i.execute(stmt.ElseBranch)
	}
	return nil
}

// VisitWhileStmt also drives the desugared `for` loop: the parser
// rewrites `for` entirely into a BlockStmt/WhileStmt pair, so this is
// the only loop the evaluator ever sees.
func (i *Interpreter) VisitWhileStmt(stmt *ast.WhileStmt) error {
	for {
		condition, err := i.evaluate(stmt.Condition)
		if err != nil {
			return err
		}
		if !isTruthy(condition) {
			return nil
		}
		if err := i.execute(stmt.Body); err != nil {
			return err
		}
	}
}
