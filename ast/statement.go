package ast

import "github.com/MalachiMackie/beach-lang-sub000/token"

// DeclaredType is the type annotation of a VariableDeclaration: either an
// explicit Type or `infer`, which takes the initializer's type.
type DeclaredType struct {
	// Infer is true when the declaration used the `infer` keyword; Type is
	// meaningless in that case.
	Infer bool
	Type  Type
}

// VariableDeclaration binds Name to the value of Initializer, either under
// an explicit declared type or `infer`.
type VariableDeclaration struct {
	DeclaredType DeclaredType
	Name         string
	Initializer  Expression
	Tok          token.Token
}

func (n *VariableDeclaration) Literal() string {
	return n.Name + " = " + n.Initializer.Literal()
}
func (n *VariableDeclaration) Position() token.Position { return n.Tok.Position }
func (*VariableDeclaration) statementNode()              {}

// FunctionReturn is a `return` statement, with an optional value. A nil
// Value is a bare `return;`.
type FunctionReturn struct {
	Value Expression
	Tok   token.Token
}

func (n *FunctionReturn) Literal() string {
	if n.Value == nil {
		return "return"
	}
	return "return " + n.Value.Literal()
}
func (n *FunctionReturn) Position() token.Position { return n.Tok.Position }
func (*FunctionReturn) statementNode()              {}

// ElseIfBlock is one `else if (check) { block }` clause attached to an
// IfStatement.
type ElseIfBlock struct {
	CheckExpression Expression
	Block           []Statement
}

// IfStatement is `if (check) { thenBody } (else if (check) { block })* (else { elseBody })?`.
type IfStatement struct {
	CheckExpression Expression
	ThenBody        []Statement
	ElseIfBlocks    []ElseIfBlock
	// ElseBody is nil when there is no trailing `else`.
	ElseBody []Statement
	Tok      token.Token
}

func (n *IfStatement) Literal() string         { return "if (" + n.CheckExpression.Literal() + ")" }
func (n *IfStatement) Position() token.Position { return n.Tok.Position }
func (*IfStatement) statementNode()             {}
