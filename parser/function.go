package parser

import (
	"fmt"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/token"
)

// parseFunctionDeclaration parses `function NAME (params?) (-> type)? { body }`.
// p.Current must be token.FUNCTION on entry.
func (p *Parser) parseFunctionDeclaration() (*ast.FunctionDeclaration, bool) {
	tok := p.Current
	p.advance() // consume 'function'

	if p.Current.Type != token.IDENTIFIER {
		p.addError(fmt.Sprintf("expected function name, found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	name := p.Current.Literal
	p.advance()

	if p.Current.Type != token.LEFT_PAREN {
		p.addError(fmt.Sprintf("expected '(', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	p.advance()

	params, ok := p.parseParameters()
	if !ok {
		return nil, false
	}

	if p.Current.Type != token.RIGHT_PAREN {
		p.addError(fmt.Sprintf("expected ')', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	p.advance()

	var returnType *ast.Type
	if p.Current.Type == token.ARROW {
		p.advance()
		if p.Current.Type != token.TYPE_KEY {
			p.addError(fmt.Sprintf("expected return type, found %s", p.Current.Type), p.Current.Position)
			return nil, false
		}
		t := typeFromLiteral(p.Current.Literal)
		returnType = &t
		p.advance()
	}

	if p.Current.Type != token.LEFT_BRACE {
		p.addError(fmt.Sprintf("expected '{', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	return &ast.FunctionDeclaration{
		ID:         ast.FunctionID(name),
		Parameters: params,
		ReturnType: returnType,
		Body:       body,
		Token:      tok,
	}, true
}

// parseParameters parses a comma-separated `type name` list. p.Current is
// the token just after the opening '(' on entry; on success p.Current is
// the ')' that closes the list.
func (p *Parser) parseParameters() ([]ast.FunctionParameter, bool) {
	params := make([]ast.FunctionParameter, 0)
	if p.Current.Type == token.RIGHT_PAREN {
		return params, true
	}

	for {
		if p.Current.Type != token.TYPE_KEY {
			p.addError(fmt.Sprintf("expected parameter type, found %s", p.Current.Type), p.Current.Position)
			return nil, false
		}
		paramType := typeFromLiteral(p.Current.Literal)
		p.advance()

		if p.Current.Type != token.IDENTIFIER {
			p.addError(fmt.Sprintf("expected parameter name, found %s", p.Current.Type), p.Current.Position)
			return nil, false
		}
		params = append(params, ast.TypedParameter{Name: p.Current.Literal, Type: paramType})
		p.advance()

		if p.Current.Type == token.COMMA {
			p.advance()
			if p.Current.Type == token.RIGHT_PAREN {
				p.addError("unexpected ')' after ','; expected a parameter", p.Current.Position)
				return nil, false
			}
			continue
		}
		break
	}

	return params, true
}
