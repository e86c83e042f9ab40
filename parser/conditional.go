package parser

import (
	"fmt"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/token"
)

// parseIfStatement parses `if (check) { then } (else if (check) { block })* (else { else })?`.
// p.Current must be token.IF on entry.
func (p *Parser) parseIfStatement() (ast.Statement, bool) {
	tok := p.Current
	p.advance() // consume 'if'

	check, ok := p.parseParenthesizedCheck()
	if !ok {
		return nil, false
	}

	if p.Current.Type != token.LEFT_BRACE {
		p.addError(fmt.Sprintf("expected '{', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	thenBody, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	elseIfBlocks := make([]ast.ElseIfBlock, 0)
	var elseBody []ast.Statement

	for p.Current.Type == token.ELSE {
		p.advance() // consume 'else'

		if p.Current.Type == token.IF {
			p.advance() // consume 'if'
			elseIfCheck, ok := p.parseParenthesizedCheck()
			if !ok {
				return nil, false
			}
			if p.Current.Type != token.LEFT_BRACE {
				p.addError(fmt.Sprintf("expected '{', found %s", p.Current.Type), p.Current.Position)
				return nil, false
			}
			block, ok := p.parseBlock()
			if !ok {
				return nil, false
			}
			elseIfBlocks = append(elseIfBlocks, ast.ElseIfBlock{CheckExpression: elseIfCheck, Block: block})
			continue
		}

		if p.Current.Type != token.LEFT_BRACE {
			p.addError(fmt.Sprintf("expected '{' after else, found %s", p.Current.Type), p.Current.Position)
			return nil, false
		}
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		elseBody = body
		break
	}

	return &ast.IfStatement{
		CheckExpression: check,
		ThenBody:        thenBody,
		ElseIfBlocks:    elseIfBlocks,
		ElseBody:        elseBody,
		Tok:             tok,
	}, true
}

// parseParenthesizedCheck parses `( expr )`, the fixed syntax around every
// if/else-if condition. p.Current must be token.LEFT_PAREN on entry.
func (p *Parser) parseParenthesizedCheck() (ast.Expression, bool) {
	if p.Current.Type != token.LEFT_PAREN {
		p.addError(fmt.Sprintf("expected '(', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	p.advance()

	check := p.parseExpression()
	if check == nil {
		return nil, false
	}

	if p.Current.Type != token.RIGHT_PAREN {
		p.addError(fmt.Sprintf("expected ')', found %s", p.Current.Type), p.Current.Position)
		return nil, false
	}
	p.advance()

	return check, true
}
