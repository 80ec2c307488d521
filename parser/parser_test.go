/*
File    : golox/parser/parser_test.go
Author  : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

type stubSink struct {
	errors []string
}

func (s *stubSink) ErrorAtToken(tok lexer.Token, message string) {
	s.errors = append(s.errors, message)
}

func parse(t *testing.T, src string) ([]ast.Stmt, *stubSink) {
	t.Helper()
	sink := &stubSink{}
	tokens := lexer.NewLexer(src, noopLexSink{}).ScanTokens()
	stmts := NewParser(tokens, sink).Parse()
	return stmts, sink
}

type noopLexSink struct{}

func (noopLexSink) Error(int, string) {}

// cmpOpts ignores the Line carried on tokens since the tests below only
// care about tree shape and the Name/Operator lexemes, not position
// metadata.
var cmpOpts = []cmp.Option{
	cmpopts.IgnoreFields(lexer.Token{}, "Line"),
}

func TestParse_ExpressionStatement(t *testing.T) {
	stmts, sink := parse(t, `1 + 2;`)

	require.Empty(t, sink.errors)
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)

	binary, ok := exprStmt.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, binary.Operator.Type)

	left, ok := binary.Left.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, 1.0, left.Value)
}

func TestParse_VarDeclaration(t *testing.T) {
	stmts, sink := parse(t, `var a = "hi";`)

	require.Empty(t, sink.errors)
	require.Len(t, stmts, 1)

	varStmt, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", varStmt.Name.Lexeme)

	lit, ok := varStmt.Initializer.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "hi", lit.Value)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, sink := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Empty(t, sink.errors)
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	_, isVar := block.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)

	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)

	bodyBlock, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, bodyBlock.Statements, 2)
}

func TestParse_ForWithoutConditionUsesTrueLiteral(t *testing.T) {
	stmts, sink := parse(t, `for (;;) print 1;`)
	require.Empty(t, sink.errors)

	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok)

	lit, ok := whileStmt.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_AssignmentRewritesVariableTarget(t *testing.T) {
	stmts, sink := parse(t, `a = 1;`)
	require.Empty(t, sink.errors)

	exprStmt := stmts[0].(*ast.ExpressionStmt)
	assign, ok := exprStmt.Expression.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetReportsButContinues(t *testing.T) {
	stmts, sink := parse(t, `1 = 2; print 3;`)
	assert.Equal(t, []string{"Invalid assignment target."}, sink.errors)
	// Parsing is not aborted: the print statement still shows up.
	require.Len(t, stmts, 2)
	_, ok := stmts[1].(*ast.PrintStmt)
	assert.True(t, ok)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts, sink := parse(t, `fun add(a, b) { return a + b; }`)
	require.Empty(t, sink.errors)

	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
	require.Len(t, fn.Body, 1)
}

func TestParse_SyntaxErrorSynchronizesToNextStatement(t *testing.T) {
	stmts, sink := parse(t, `var ; print 1;`)
	// The first declaration fails and is dropped; the second parses fine.
	assert.NotEmpty(t, sink.errors)
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.PrintStmt)
	assert.True(t, ok)
}

func TestParse_IfElseBindsToNearestIf(t *testing.T) {
	stmts, sink := parse(t, `if (true) if (false) print 1; else print 2;`)
	require.Empty(t, sink.errors)

	outer, ok := stmts[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Nil(t, outer.ElseBranch)

	inner, ok := outer.ThenBranch.(*ast.IfStmt)
	require.True(t, ok)
	require.NotNil(t, inner.ElseBranch)
}

func TestParse_StructuralDiffOnMismatch(t *testing.T) {
	// Demonstrates the pretty/go-cmp tooling used for whole-tree
	// comparisons when a field-by-field assertion would be unreadable.
	gotStmts, sink := parse(t, `print 1 + 2;`)
	require.Empty(t, sink.errors)

	wantStmts, sink2 := parse(t, `print 1 + 2;`)
	require.Empty(t, sink2.errors)

	if diff := cmp.Diff(wantStmts, gotStmts, cmpOpts...); diff != "" {
		t.Errorf("unexpected diff (-want +got):\n%s\nfull dump:\n%s", diff, pretty.Sprint(gotStmts))
	}
}
