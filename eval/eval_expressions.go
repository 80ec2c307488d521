/*
File    : golox/eval/eval_expressions.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/lexer"
)

func (i *Interpreter) VisitLiteralExpr(expr *ast.Literal) (interface{}, error) {
	return expr.Value, nil
}

func (i *Interpreter) VisitGroupingExpr(expr *ast.Grouping) (interface{}, error) {
	return i.evaluate(expr.Expression)
}

func (i *Interpreter) VisitUnaryExpr(expr *ast.Unary) (interface{}, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case lexer.BANG:
		return !isTruthy(right), nil
	case lexer.MINUS:
		num, err := checkNumberOperand(expr.Operator, right)
		if err != nil {
			return nil, err
		}
		return -num, nil
	}
	return nil, nil
}

func (i *Interpreter) VisitBinaryExpr(expr *ast.Binary) (interface{}, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case lexer.GREATER:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case lexer.GREATER_EQUAL:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case lexer.LESS:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case lexer.LESS_EQUAL:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case lexer.MINUS:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case lexer.SLASH:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case lexer.STAR:
		l, r, err := checkNumberOperands(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case lexer.PLUS:
		if lnum, ok := left.(float64); ok {
			if rnum, ok := right.(float64); ok {
				return lnum + rnum, nil
			}
		}
		if lstr, ok := left.(string); ok {
			if rstr, ok := right.(string); ok {
				return lstr + rstr, nil
			}
		}
		return nil, diagnostics.NewRuntimeError(expr.Operator, "Operands must be two numbers or two strings.")
	}
	return nil, nil
}

func (i *Interpreter) VisitLogicalExpr(expr *ast.Logical) (interface{}, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	// Short-circuit: `or` returns as soon as it sees a truthy left side,
	// `and` as soon as it sees a falsey one, without evaluating right.
	if expr.Operator.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}

	return i.evaluate(expr.Right)
}

func (i *Interpreter) VisitVariableExpr(expr *ast.Variable) (interface{}, error) {
	return i.lookUpVariable(expr.Name, expr)
}

func (i *Interpreter) VisitAssignExpr(expr *ast.Assign) (interface{}, error) {
	value, err := i.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.locals[expr]; ok {
		i.current.AssignAt(distance, expr.Name, value)
	} else if err := i.globals.Assign(expr.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) VisitCallExpr(expr *ast.Call) (interface{}, error) {
	callee, err := i.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, 0, len(expr.Arguments))
	for _, arg := range expr.Arguments {
		value, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, value)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, diagnostics.NewRuntimeError(expr.Paren, "Can only call functions and classes.")
	}

	if len(arguments) != callable.Arity() {
		return nil, diagnostics.NewRuntimeError(expr.Paren,
			"Expected "+itoa(callable.Arity())+" arguments but got "+itoa(len(arguments))+".")
	}

	return callable.Call(i, arguments)
}

// checkNumberOperand enforces unary `-`'s operand type, returning the
// runtime error the caller should propagate on mismatch.
func checkNumberOperand(operator lexer.Token, operand interface{}) (float64, error) {
	if num, ok := operand.(float64); ok {
		return num, nil
	}
	return 0, diagnostics.NewRuntimeError(operator, "Operand must be a number.")
}

// checkNumberOperands enforces the binary arithmetic/comparison
// operators' operand types in one place.
func checkNumberOperands(operator lexer.Token, left, right interface{}) (float64, float64, error) {
	lnum, lok := left.(float64)
	rnum, rok := right.(float64)
	if lok && rok {
		return lnum, rnum, nil
	}
	return 0, 0, diagnostics.NewRuntimeError(operator, "Operands must be numbers.")
}
