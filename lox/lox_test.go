/*
File    : golox/lox/lox_test.go
Author  : akashmaji(@iisc.ac.in)
*/
package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_PrintsExpressionResult(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := New(&stderr, &stdout)

	l.Run(`print 1 + 2;`)

	assert.Equal(t, "3\n", stdout.String())
	assert.Empty(t, stderr.String())
	assert.False(t, l.Sink.HadError)
	assert.False(t, l.Sink.HadRuntimeError)
}

func TestRun_SyntaxErrorSetsHadErrorAndSkipsExecution(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := New(&stderr, &stdout)

	l.Run(`print ;`)

	assert.True(t, l.Sink.HadError)
	assert.Empty(t, stdout.String())
	assert.NotEmpty(t, stderr.String())
}

func TestRun_RuntimeErrorGoesToStdoutNotStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := New(&stderr, &stdout)

	l.Run(`print x;`)

	assert.True(t, l.Sink.HadRuntimeError)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "Undefined variable 'x'.")
}

// TestRun_GlobalsPersistAcrossCalls exercises the REPL use case: one Lox
// session, two separate Run calls sharing the same interpreter state.
func TestRun_GlobalsPersistAcrossCalls(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := New(&stderr, &stdout)

	l.Run(`var counter = 0;`)
	l.Run(`counter = counter + 1; print counter;`)
	l.Run(`counter = counter + 1; print counter;`)

	assert.False(t, l.Sink.HadError)
	assert.Equal(t, "1\n2\n", stdout.String())
}

func TestRun_ResolverErrorSkipsInterpretation(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := New(&stderr, &stdout)

	l.Run(`{ var a = a; }`)

	assert.True(t, l.Sink.HadError)
	assert.Empty(t, stdout.String())
}
