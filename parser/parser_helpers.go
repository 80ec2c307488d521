/*
File    : golox/parser/parser_helpers.go
Author  : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/golox/lexer"

// match consumes and returns true if the current token is one of types;
// otherwise the cursor is left unchanged.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// check reports whether the current token has the given type, without
// consuming it.
func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// consume requires the current token to have type t, advancing past it;
// otherwise it reports message at the current token and unwinds via
// parseError.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports message at tok and returns the sentinel panic value
// that declaration() recovers.
func (p *Parser) errorAt(tok lexer.Token, message string) parseError {
	p.sink.ErrorAtToken(tok, message)
	return parseError{}
}

// synchronize discards tokens until it reaches a likely statement
// boundary: just past a ';', or just before a keyword that starts a new
// statement. This lets the parser report more than one syntax error per
// run instead of stopping at the first.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}

		p.advance()
	}
}
