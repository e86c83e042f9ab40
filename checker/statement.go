package checker

import (
	"fmt"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
)

// checkVariableDeclaration mirrors type_checking/nodes/node.rs's
// type_check_variable_declaration exactly: the initializer is always
// type-checked (for error accumulation), redeclaration is checked against
// the current locals map before any binding happens, and — for an
// explicitly-typed declaration — the variable is bound to its declared type
// regardless of whether the initializer actually matched it, so later
// statements see the declared type rather than cascading a second error.
func (c *Checker) checkVariableDeclaration(decl *ast.VariableDeclaration, locals map[string]ast.Type, currentFn *ast.FunctionDeclaration) {
	initializerType := c.typeOf(decl.Initializer, locals)
	c.checkExpression(decl.Initializer, locals, currentFn)

	alreadyDefined := false
	if _, exists := locals[decl.Name]; exists {
		c.addError(fmt.Sprintf("Variable %s is already defined", decl.Name), decl.Tok.Position)
		alreadyDefined = true
	}

	if decl.DeclaredType.Infer {
		if initializerType == nil {
			c.addError(fmt.Sprintf("cannot assign void to variable %s", decl.Name), decl.Tok.Position)
			return
		}
		if !alreadyDefined {
			locals[decl.Name] = *initializerType
		}
		return
	}

	if !alreadyDefined {
		locals[decl.Name] = decl.DeclaredType.Type
	}
	c.verifyType(initializerType, decl.DeclaredType.Type, decl.Initializer.Position())
}

// checkFunctionReturn mirrors type_checking/nodes/function_return.rs: the
// return expression (if any) is always type-checked first; the specific
// error produced then depends on whether currentFn is set (inside a
// function body) or nil (a top-level return, which may only omit a value or
// return a UInt exit code).
func (c *Checker) checkFunctionReturn(ret *ast.FunctionReturn, locals map[string]ast.Type, currentFn *ast.FunctionDeclaration) {
	var returnType *ast.Type
	if ret.Value != nil {
		returnType = c.typeOf(ret.Value, locals)
		c.checkExpression(ret.Value, locals, currentFn)
	}

	if currentFn == nil {
		switch {
		case returnType == nil:
			// bare `return;` or a Void-returning expression: fine at top level.
		case *returnType == ast.UInt:
			// `return <uint>;` at top level is the process exit code.
		default:
			c.addError(fmt.Sprintf("Cannot return a %s from a top level statement", *returnType), ret.Position())
		}
		return
	}

	switch {
	case currentFn.ReturnType == nil && returnType != nil:
		c.addError(fmt.Sprintf("%s is a void function, but you returned a %s value", functionLabel(currentFn.ID), *returnType), ret.Position())
	case currentFn.ReturnType != nil && returnType == nil:
		c.addError(fmt.Sprintf("%s expects a return type of %s, but you returned void", functionLabel(currentFn.ID), *currentFn.ReturnType), ret.Position())
	case currentFn.ReturnType != nil && returnType != nil && *currentFn.ReturnType != *returnType:
		c.addError(fmt.Sprintf("%s expects a return type of %s, but you returned a %s value", functionLabel(currentFn.ID), *currentFn.ReturnType, *returnType), ret.Position())
	}
}

// checkIfStatement validates the check expression as Boolean and recurses
// into every branch using the same flat locals map (the Open Question in
// spec.md §9 resolved as flat per-function scope, SPEC_FULL.md §5.3): a
// declaration made inside a branch remains visible to statements after the
// branch closes, within the same function.
func (c *Checker) checkIfStatement(stmt *ast.IfStatement, locals map[string]ast.Type, currentFn *ast.FunctionDeclaration) {
	c.verifyType(c.typeOf(stmt.CheckExpression, locals), ast.Boolean, stmt.CheckExpression.Position())
	c.checkExpression(stmt.CheckExpression, locals, currentFn)

	c.checkStatements(stmt.ThenBody, locals, currentFn)

	for _, elseIf := range stmt.ElseIfBlocks {
		c.verifyType(c.typeOf(elseIf.CheckExpression, locals), ast.Boolean, elseIf.CheckExpression.Position())
		c.checkExpression(elseIf.CheckExpression, locals, currentFn)
		c.checkStatements(elseIf.Block, locals, currentFn)
	}

	if stmt.ElseBody != nil {
		c.checkStatements(stmt.ElseBody, locals, currentFn)
	}
}
