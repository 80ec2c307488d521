/*
File    : golox/eval/eval_test.go
Author  : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

type lexSink struct{ errors []string }

func (s *lexSink) Error(line int, message string) { s.errors = append(s.errors, message) }

type parseSink struct{ errors []string }

func (s *parseSink) ErrorAtToken(tok lexer.Token, message string) {
	s.errors = append(s.errors, message)
}

// run lexes, parses, resolves, and interprets src, returning whatever
// the program wrote to stdout and the diagnostics sink it reported
// runtime errors through.
func run(t *testing.T, src string) (string, *diagnostics.Sink) {
	t.Helper()

	ls := &lexSink{}
	tokens := lexer.NewLexer(src, ls).ScanTokens()
	require.Empty(t, ls.errors)

	ps := &parseSink{}
	stmts := parser.NewParser(tokens, ps).Parse()
	require.Empty(t, ps.errors)

	var stdout bytes.Buffer
	sink := diagnostics.NewSink(&bytes.Buffer{}, &stdout)
	interp := New(sink)
	interp.SetStdout(&stdout)

	resolver.New(interp, ps).Resolve(stmts)
	require.Empty(t, ps.errors)

	interp.Interpret(stmts)
	return stdout.String(), sink
}

func TestInterpret_ArithmeticAndPrint(t *testing.T) {
	out, sink := run(t, `print 1 + 2 * 3;`)
	assert.False(t, sink.HadRuntimeError)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, sink := run(t, `print "foo" + "bar";`)
	assert.False(t, sink.HadRuntimeError)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_IntegralNumberHasNoTrailingZero(t *testing.T) {
	out, _ := run(t, `print 4.0 / 2;`)
	assert.Equal(t, "2\n", out)
}

func TestInterpret_TypeMismatchIsRuntimeError(t *testing.T) {
	out, sink := run(t, `print "foo" + 1;`)
	assert.True(t, sink.HadRuntimeError)
	assert.Contains(t, out, "Operands must be two numbers or two strings.")
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, sink := run(t, `print x;`)
	assert.True(t, sink.HadRuntimeError)
}

func TestInterpret_BlockScopingShadowsThenRestores(t *testing.T) {
	out, sink := run(t, `
	var a = "outer";
	{
		var a = "inner";
		print a;
	}
	print a;
	`)
	assert.False(t, sink.HadRuntimeError)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpret_IfElse(t *testing.T) {
	out, _ := run(t, `if (1 < 2) print "yes"; else print "no";`)
	assert.Equal(t, "yes\n", out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, _ := run(t, `
	var i = 0;
	while (i < 3) {
		print i;
		i = i + 1;
	}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ForLoopDesugaring(t *testing.T) {
	out, _ := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_FunctionCallAndReturn(t *testing.T) {
	out, sink := run(t, `
	fun add(a, b) {
		return a + b;
	}
	print add(2, 3);
	`)
	assert.False(t, sink.HadRuntimeError)
	assert.Equal(t, "5\n", out)
}

func TestInterpret_RecursiveFunction(t *testing.T) {
	out, sink := run(t, `
	fun fact(n) {
		if (n <= 1) return 1;
		return n * fact(n - 1);
	}
	print fact(5);
	`)
	assert.False(t, sink.HadRuntimeError)
	assert.Equal(t, "120\n", out)
}

// TestInterpret_ClosureCapturesLiveVariable reproduces the classic
// counter closure: the function makeCounter returns closes over
// makeCounter's `count`, and each call to that function must see the
// mutation from the call before it.
func TestInterpret_ClosureCapturesLiveVariable(t *testing.T) {
	out, sink := run(t, `
	fun makeCounter() {
		var count = 0;
		fun increment() {
			count = count + 1;
			return count;
		}
		return increment;
	}

	var counter = makeCounter();
	print counter();
	print counter();
	print counter();
	`)
	assert.False(t, sink.HadRuntimeError)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_ClockIsCallableWithZeroArity(t *testing.T) {
	out, sink := run(t, `
	fun isNumber(n) {
		return n >= 0;
	}
	print isNumber(clock());
	`)
	assert.False(t, sink.HadRuntimeError)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_WrongArityIsRuntimeError(t *testing.T) {
	_, sink := run(t, `
	fun f(a) { return a; }
	print f(1, 2);
	`)
	assert.True(t, sink.HadRuntimeError)
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, sink := run(t, `
	var x = 1;
	print x();
	`)
	assert.True(t, sink.HadRuntimeError)
}

func TestInterpret_LogicalOperatorsShortCircuit(t *testing.T) {
	out, _ := run(t, `
	fun sideEffect() {
		print "called";
		return true;
	}
	print false and sideEffect();
	print true or sideEffect();
	`)
	assert.Equal(t, "false\ntrue\n", out)
}

// TestInterpret_LogicalOperatorsReturnOperandNotBoolean pins down that
// `and`/`or` return whichever operand value decided the result, not a
// coerced true/false, using non-boolean operands so a boolean-coercing
// implementation would fail this where it could pass the test above.
func TestInterpret_LogicalOperatorsReturnOperandNotBoolean(t *testing.T) {
	out, sink := run(t, `
	print 1 or 2;
	print nil and "x";
	print 2 and 3;
	`)
	assert.False(t, sink.HadRuntimeError)
	assert.Equal(t, "1\nnil\n3\n", out)
}
