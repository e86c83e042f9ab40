/*
File    : beach/parser/parser.go
Package : parser
*/

// Package parser implements a recursive-descent parser for beach.
//
// Unlike the teacher's Pratt/precedence-climbing parser, beach has a single
// expression precedence tier (spec.md §4.1), so no operator-precedence
// table is needed: `parseExpression` recurses directly into itself for the
// right-hand side of a binary operator, producing the right-leaning trees
// spec.md documents as beach's semantics.
//
// The parser never panics on malformed input. It collects ParseErrors and,
// after a failing top-level item, resynchronizes at the next `function`
// keyword or statement-starting token so a single run surfaces as many
// independent errors as possible (spec.md §4.1, §7).
package parser

import (
	"fmt"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/beacherrors"
	"github.com/MalachiMackie/beach-lang-sub000/lexer"
	"github.com/MalachiMackie/beach-lang-sub000/token"
)

// Parser holds a two-token lookahead window over a lexer's token stream and
// the parse errors accumulated so far.
type Parser struct {
	Lex     *lexer.Lexer
	Current token.Token
	Next    token.Token
	Errors  []beacherrors.ParseError
}

// New creates a Parser over src, primed with its first two tokens.
func New(src string) *Parser {
	p := &Parser{Lex: lexer.New(src)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.Current = p.Next
	p.Next = p.Lex.NextToken()
}

func (p *Parser) addError(message string, position token.Position) {
	p.Errors = append(p.Errors, beacherrors.ParseError{Message: message, Position: position})
}

// HasErrors reports whether any parse errors have been recorded so far.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// canStartStatement reports whether t is a token that can begin a
// statement, per spec.md §4.1's grammar (var_decl | if_stmt | return_stmt |
// call_stmt). Used both to dispatch parseStatement and, in parseBlock and
// Parse, to decide whether a run has reached the end of a block/program or
// hit truly unexpected input.
func canStartStatement(t token.Type) bool {
	switch t {
	case token.TYPE_KEY, token.INFER, token.IF, token.RETURN, token.IDENTIFIER:
		return true
	default:
		return false
	}
}

// synchronize discards tokens until one that could plausibly restart
// parsing (a function declaration or a statement) or EOF, so a single
// malformed top-level item doesn't prevent later items from being checked.
func (p *Parser) synchronize() {
	for p.Current.Type != token.EOF && p.Current.Type != token.FUNCTION && !canStartStatement(p.Current.Type) {
		p.advance()
	}
}

// Parse consumes the entire token stream and returns the assembled Ast, or
// the full set of parse errors encountered across every top-level item.
func (p *Parser) Parse() (*ast.Ast, []beacherrors.ParseError) {
	program := &ast.Ast{
		Functions: make(map[ast.FunctionID]*ast.FunctionDeclaration),
		TopLevel:  make([]ast.Statement, 0),
	}

	for p.Current.Type != token.EOF {
		if p.Current.Type == token.FUNCTION {
			fn, ok := p.parseFunctionDeclaration()
			if !ok {
				p.synchronize()
				continue
			}
			if _, exists := program.Functions[fn.ID]; exists {
				p.addError(fmt.Sprintf("function %s is already declared", fn.ID), fn.Token.Position)
				continue
			}
			program.Functions[fn.ID] = fn
			continue
		}

		if !canStartStatement(p.Current.Type) {
			p.addError(fmt.Sprintf("unexpected token %s", p.Current.Type), p.Current.Position)
			p.synchronize()
			continue
		}

		stmt, ok := p.parseStatement()
		if !ok {
			p.synchronize()
			continue
		}
		program.TopLevel = append(program.TopLevel, stmt)
	}

	if len(p.Errors) > 0 {
		return nil, p.Errors
	}
	return program, nil
}

// typeFromLiteral resolves a scanned type-keyword's literal text ("uint" or
// "boolean") to its ast.Type. Only called where the lexer has already
// classified the token as token.TYPE_KEY, so the default case is
// unreachable outside of a lexer bug.
func typeFromLiteral(literal string) ast.Type {
	switch literal {
	case "uint":
		return ast.UInt
	case "boolean":
		return ast.Boolean
	default:
		beacherrorsUnreachableType(literal)
		return ast.UInt
	}
}

// beacherrorsUnreachableType exists purely to give the impossible branch in
// typeFromLiteral a name instead of a bare panic; it should never execute.
func beacherrorsUnreachableType(literal string) {
	panic(fmt.Sprintf("lexer produced TYPE_KEY token with unrecognised literal %q", literal))
}
