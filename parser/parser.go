/*
File    : golox/parser/parser.go
Author  : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for Lox, driving
// a precedence climb for expressions and recovering from syntax errors
// by synchronizing to the next likely statement boundary.
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

// reporter is the narrow slice of diagnostics.Sink the parser needs.
type reporter interface {
	ErrorAtToken(tok lexer.Token, message string)
}

// parseError is raised internally to unwind out of an in-progress
// declaration after a syntax error has already been reported; it is
// recovered by declaration(), which then synchronizes. It is never
// returned to callers outside this package.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser consumes a flat token sequence and produces a slice of
// statement nodes.
type Parser struct {
	tokens  []lexer.Token
	current int
	sink    reporter
}

// NewParser creates a Parser over tokens, reporting syntax errors to
// sink.
func NewParser(tokens []lexer.Token, sink reporter) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// Parse consumes the entire token stream and returns the program as a
// sequence of statements. A declaration that failed to parse and could
// not be recovered is omitted from the result; check the sink's
// HadError flag to know whether the result is usable.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration parses one top-level or block-level item: a function
// declaration, a variable declaration, or a plain statement. A syntax
// error anywhere inside is caught here, after which the parser
// synchronizes and the caller treats this declaration as absent.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(lexer.FUN) {
		return p.function("function")
	}
	if p.match(lexer.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// varDeclaration parses "var" IDENT ( "=" expression )? ";".
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}
