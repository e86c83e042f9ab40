package parser

import (
	"fmt"
	"strconv"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/token"
)

// parseExpression parses one operand and, if it is followed by `+` or `>`,
// recurses for the right-hand side. Because every recursive call starts
// from parsePrimary again rather than looping, `a + b + c` parses as
// Plus(a, Plus(b, c)) — right-associative, with no precedence distinction
// between `+` and `>` (spec.md §4.1).
func (p *Parser) parseExpression() ast.Expression {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}

	var operator ast.BinaryOperator
	switch p.Current.Type {
	case token.PLUS:
		operator = ast.Plus
	case token.RIGHT_ANGLE:
		operator = ast.GreaterThan
	default:
		return left
	}

	opTok := p.Current
	p.advance()

	right := p.parseExpression()
	if right == nil {
		return nil
	}

	return &ast.BinaryOperation{Operator: operator, Left: left, Right: right, Tok: opTok}
}

// parsePrimary parses a literal, a variable access, a function call, or a
// unary `!` applied to another primary. Parentheses are never consumed
// here: beach does not use them for grouping inside expressions, only as
// the fixed syntax around if-conditions and call argument lists (spec.md
// §4.1).
func (p *Parser) parsePrimary() ast.Expression {
	switch p.Current.Type {
	case token.UINT_LITERAL:
		tok := p.Current
		parsed, err := strconv.ParseUint(tok.Literal, 10, 32)
		if err != nil {
			p.addError(fmt.Sprintf("invalid uint literal %q", tok.Literal), tok.Position)
			return nil
		}
		p.advance()
		return &ast.ValueLiteral{Value: ast.UIntValue{Value: uint32(parsed)}, Tok: tok}

	case token.TRUE:
		tok := p.Current
		p.advance()
		return &ast.ValueLiteral{Value: ast.BoolValue{Value: true}, Tok: tok}

	case token.FALSE:
		tok := p.Current
		p.advance()
		return &ast.ValueLiteral{Value: ast.BoolValue{Value: false}, Tok: tok}

	case token.NOT:
		tok := p.Current
		p.advance()
		operand := p.parsePrimary()
		if operand == nil {
			return nil
		}
		return &ast.UnaryOperation{Operator: ast.Not, Operand: operand, Tok: tok}

	case token.IDENTIFIER:
		tok := p.Current
		name := tok.Literal
		p.advance()
		if p.Current.Type == token.LEFT_PAREN {
			return p.parseFunctionCallExpression(tok, name)
		}
		return &ast.VariableAccess{Name: name, Tok: tok}

	default:
		p.addError(fmt.Sprintf("expected expression, found %s", p.Current.Type), p.Current.Position)
		return nil
	}
}

// parseFunctionCallExpression parses `name(args)`. p.Current is the
// opening '(' on entry.
func (p *Parser) parseFunctionCallExpression(identTok token.Token, name string) ast.Expression {
	p.advance() // consume '('

	args, ok := p.parseArguments()
	if !ok {
		return nil
	}

	if p.Current.Type != token.RIGHT_PAREN {
		p.addError(fmt.Sprintf("expected ')', found %s", p.Current.Type), p.Current.Position)
		return nil
	}
	p.advance()

	return &ast.FunctionCall{FunctionID: ast.FunctionID(name), Arguments: args, Tok: identTok}
}

// parseArguments parses a comma-separated expression list terminated by
// ')'. p.Current is the token just after the opening '(' on entry; on
// success p.Current is the closing ')'. A leading comma, a trailing comma,
// and two expressions with no comma between them are each reported as
// distinct parse errors (spec.md §4.1).
func (p *Parser) parseArguments() ([]ast.Expression, bool) {
	args := make([]ast.Expression, 0)

	if p.Current.Type == token.RIGHT_PAREN {
		return args, true
	}
	if p.Current.Type == token.COMMA {
		p.addError("unexpected ','; expected an expression", p.Current.Position)
		return nil, false
	}

	for {
		arg := p.parseExpression()
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)

		switch p.Current.Type {
		case token.COMMA:
			p.advance()
			if p.Current.Type == token.RIGHT_PAREN {
				p.addError("unexpected ')' after ','; expected an expression", p.Current.Position)
				return nil, false
			}
		case token.RIGHT_PAREN:
			return args, true
		default:
			p.addError(fmt.Sprintf("expected ',' or ')', found %s", p.Current.Type), p.Current.Position)
			return nil, false
		}
	}
}
