/*
File    : golox/lexer/lexer_test.go
Author  : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSink struct {
	errors []string
}

func (s *stubSink) Error(line int, message string) {
	s.errors = append(s.errors, message)
}

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanTokens_Operators(t *testing.T) {
	sink := &stubSink{}
	l := NewLexer(`(){}, . - + ; * ! != = == > >= < <=`, sink)
	tokens := l.ScanTokens()

	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, MINUS,
		PLUS, SEMICOLON, STAR, BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL, GREATER,
		GREATER_EQUAL, LESS, LESS_EQUAL, EOF,
	}, tokenTypes(tokens))
	assert.Empty(t, sink.errors)
}

func TestScanTokens_LineComment(t *testing.T) {
	sink := &stubSink{}
	l := NewLexer("1 // a comment\n2", sink)
	tokens := l.ScanTokens()

	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, tokenTypes(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_String(t *testing.T) {
	sink := &stubSink{}
	l := NewLexer(`"hello world"`, sink)
	tokens := l.ScanTokens()

	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_MultilineString(t *testing.T) {
	sink := &stubSink{}
	l := NewLexer("\"line1\nline2\"\n1", sink)
	tokens := l.ScanTokens()

	assert.Equal(t, "line1\nline2", tokens[0].Literal)
	// The NUMBER token after the string must observe the advanced line.
	assert.Equal(t, 3, tokens[1].Line)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	sink := &stubSink{}
	l := NewLexer(`"never closed`, sink)
	tokens := l.ScanTokens()

	assert.Equal(t, []TokenType{EOF}, tokenTypes(tokens))
	assert.Equal(t, []string{"Unterminated string."}, sink.errors)
}

func TestScanTokens_Number(t *testing.T) {
	sink := &stubSink{}
	l := NewLexer(`123 45.67`, sink)
	tokens := l.ScanTokens()

	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	sink := &stubSink{}
	l := NewLexer(`var x = foo and bar`, sink)
	tokens := l.ScanTokens()

	assert.Equal(t, []TokenType{VAR, IDENTIFIER, EQUAL, IDENTIFIER, AND, IDENTIFIER, EOF}, tokenTypes(tokens))
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	sink := &stubSink{}
	l := NewLexer(`1 @ 2`, sink)
	tokens := l.ScanTokens()

	// Scanning continues past the bad character.
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, tokenTypes(tokens))
	assert.Equal(t, []string{"Unexpected character."}, sink.errors)
}
