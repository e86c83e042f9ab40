/*
File    : beach/ast/ast.go
Package : ast
*/

// Package ast defines the beach abstract syntax tree: the node shapes the
// parser builds, the type checker validates, and the evaluator executes.
// Nodes are read-only once constructed (spec.md §3, "Lifecycle"); nothing in
// this package mutates a node after parsing.
package ast

import "github.com/MalachiMackie/beach-lang-sub000/token"

// Node is the root of the AST's sum type. Every expression and statement
// node satisfies it. Literal returns a short source-like rendering used in
// diagnostics; Position locates the node for error reporting.
type Node interface {
	Literal() string
	Position() token.Position
}

// Statement marks a node as usable in statement position. Every expression
// is also a statement (spec.md's grammar allows an expression-statement: a
// bare function call), mirroring the teacher's ExpressionNode embedding
// StatementNode.
type Statement interface {
	Node
	statementNode()
}

// Expression marks a node as usable in expression position.
type Expression interface {
	Statement
	expressionNode()
}

// Type is a beach primitive type. There is no subtyping; types compare by
// equality (spec.md §3).
type Type string

const (
	UInt    Type = "UInt"
	Boolean Type = "Boolean"
)

// FunctionID names a function declaration. A distinct type (rather than a
// bare string) keeps functions-table keys from being confused with variable
// names at a glance in signatures.
type FunctionID string

// Ast is a fully parsed beach program: every function declaration (hoisted,
// so functions can call each other and top-level code regardless of
// declaration order) plus the ordered top-level statements.
type Ast struct {
	Functions map[FunctionID]*FunctionDeclaration
	TopLevel  []Statement
}

// FunctionParameter is either a normally-typed parameter or an
// intrinsic-any parameter, which matches any single non-Void argument.
// Intrinsic-any parameters are only ever used by built-in declarations
// (spec.md §3); user-declared functions always use the typed form.
type FunctionParameter interface {
	ParamName() string
	isFunctionParameter()
}

// TypedParameter is a normal, statically-typed function parameter.
type TypedParameter struct {
	Name string
	Type Type
}

func (p TypedParameter) ParamName() string    { return p.Name }
func (TypedParameter) isFunctionParameter()    {}

// IntrinsicAnyParameter accepts any single non-Void argument. It exists
// exclusively so built-in functions like print can be declared generically.
type IntrinsicAnyParameter struct {
	Name string
}

func (p IntrinsicAnyParameter) ParamName() string { return p.Name }
func (IntrinsicAnyParameter) isFunctionParameter() {}

// FunctionDeclaration is a user- or intrinsic-declared function: its id,
// parameter list, return type (nil meaning Void), and body. Intrinsic
// declarations carry an empty Body; the evaluator dispatches their actual
// behaviour through the intrinsics registry instead of walking Body.
type FunctionDeclaration struct {
	ID         FunctionID
	Parameters []FunctionParameter
	// ReturnType is nil for a Void-returning function.
	ReturnType *Type
	Body       []Statement
	Intrinsic  bool
	Token      token.Token
}

// IsVoid reports whether the function has no return type.
func (f *FunctionDeclaration) IsVoid() bool {
	return f.ReturnType == nil
}
