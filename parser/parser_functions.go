/*
File    : golox/parser/parser_functions.go
Author  : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

// maxArgs bounds both call arguments and function parameters at 255, a
// limit inherited from the reference bytecode VM's single-byte operand
// for argument count; this tree-walker has no such constraint of its
// own but keeps the limit so diagnostics match.
const maxArgs = 255

// function parses "fun" IDENT "(" params? ")" block for a top-level or
// nested function declaration; kind ("function") only feeds error
// messages.
func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	p.consume(lexer.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind))

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.sink.ErrorAtToken(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}
