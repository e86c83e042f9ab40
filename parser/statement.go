package parser

import (
	"fmt"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/token"
)

// parseStatement dispatches on p.Current to the grammar rule that can start
// with it. Callers (Parse, parseBlock) must check canStartStatement first.
func (p *Parser) parseStatement() (ast.Statement, bool) {
	switch p.Current.Type {
	case token.TYPE_KEY, token.INFER:
		return p.parseVariableDeclaration()
	case token.IF:
		return p.parseIfStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IDENTIFIER:
		return p.parseCallStatement()
	default:
		p.addError(fmt.Sprintf("unexpected token %s; expected a statement", p.Current.Type), p.Current.Position)
		return nil, false
	}
}

// parseBlock parses `{ statement* }`. p.Current must be token.LEFT_BRACE on
// entry; on success p.Current is the token after the closing '}'.
func (p *Parser) parseBlock() ([]ast.Statement, bool) {
	p.advance() // consume '{'

	statements := make([]ast.Statement, 0)
	for {
		if p.Current.Type == token.RIGHT_BRACE {
			p.advance()
			return statements, true
		}
		if p.Current.Type == token.EOF {
			p.addError("unexpected end of input; expected '}'", p.Current.Position)
			return nil, false
		}
		if !canStartStatement(p.Current.Type) {
			p.addError(fmt.Sprintf("expected a statement or '}', found %s", p.Current.Type), p.Current.Position)
			return nil, false
		}

		stmt, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		statements = append(statements, stmt)
	}
}

// parseVariableDeclaration parses `(type | infer) name = expr ;`.
func (p *Parser) parseVariableDeclaration() (ast.Statement, bool) {
	tok := p.Current

	var declaredType ast.DeclaredType
	if p.Current.Type == token.INFER {
		declaredType = ast.DeclaredType{Infer: true}
	} else {
		declaredType = ast.DeclaredType{Type: typeFromLiteral(p.Current.Literal)}
	}
	p.advance()

	if p.Current.Type != token.IDENTIFIER {
		p.addError(fmt.Sprintf("expected variable name, found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	name := p.Current.Literal
	p.advance()

	if p.Current.Type != token.ASSIGN {
		p.addError(fmt.Sprintf("expected '=', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	p.advance()

	initializer := p.parseExpression()
	if initializer == nil {
		return nil, false
	}

	if p.Current.Type != token.SEMICOLON {
		p.addError(fmt.Sprintf("expected ';', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	p.advance()

	return &ast.VariableDeclaration{
		DeclaredType: declaredType,
		Name:         name,
		Initializer:  initializer,
		Tok:          tok,
	}, true
}

// parseReturnStatement parses `return expr? ;`.
func (p *Parser) parseReturnStatement() (ast.Statement, bool) {
	tok := p.Current
	p.advance() // consume 'return'

	var value ast.Expression
	if p.Current.Type != token.SEMICOLON {
		value = p.parseExpression()
		if value == nil {
			return nil, false
		}
	}

	if p.Current.Type != token.SEMICOLON {
		p.addError(fmt.Sprintf("expected ';', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	p.advance()

	return &ast.FunctionReturn{Value: value, Tok: tok}, true
}

// parseCallStatement parses `name ( args ) ;`, the only statement form that
// starts with an identifier.
func (p *Parser) parseCallStatement() (ast.Statement, bool) {
	tok := p.Current
	name := tok.Literal
	p.advance()

	if p.Current.Type != token.LEFT_PAREN {
		p.addError(fmt.Sprintf("expected '(' after %s in statement position, found %s", name, p.Current.Type), p.Current.Position)
		return nil, false
	}
	p.advance()

	args, ok := p.parseArguments()
	if !ok {
		return nil, false
	}

	if p.Current.Type != token.RIGHT_PAREN {
		p.addError(fmt.Sprintf("expected ')', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	p.advance()

	if p.Current.Type != token.SEMICOLON {
		p.addError(fmt.Sprintf("expected ';', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	p.advance()

	return &ast.FunctionCall{FunctionID: ast.FunctionID(name), Arguments: args, Tok: tok}, true
}
