/*
File    : golox/eval/value.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"strconv"
)

// isTruthy implements Lox's truthiness rule: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Lox's `==`: nil only equals nil, and values of
// different dynamic types are never equal (no implicit coercion).
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// stringify renders a runtime value the way `print` and the REPL
// display it: nil as "nil", numbers without a trailing ".0" when they
// are integral, and everything else via its natural Go formatting.
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		return text
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	case Callable:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// itoa is a small local alias so the call-arity diagnostics in
// eval_expressions.go don't need their own strconv import.
func itoa(n int) string {
	return strconv.Itoa(n)
}
