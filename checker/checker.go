/*
File    : beach/checker/checker.go
Package : checker
*/

// Package checker implements beach's static type checker (spec.md §4.2): it
// walks a parsed Ast and validates every expression and statement against
// the language's type rules, threading a flat per-function locals scope and
// accumulating every independent error it finds rather than stopping at the
// first one.
//
// Error message wording is grounded verbatim (in meaning) on the original
// Rust implementation's type_checking module, translated to Go's %s/%d
// verbs.
package checker

import (
	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/beacherrors"
	"github.com/MalachiMackie/beach-lang-sub000/token"
)

// Checker accumulates type errors while walking an Ast against a merged
// functions environment (user declarations plus the intrinsics registry).
type Checker struct {
	Functions map[ast.FunctionID]*ast.FunctionDeclaration
	Errors    []beacherrors.TypeError
}

func newChecker(functions map[ast.FunctionID]*ast.FunctionDeclaration) *Checker {
	return &Checker{Functions: functions}
}

func (c *Checker) addError(message string, position token.Position) {
	c.Errors = append(c.Errors, beacherrors.TypeError{Message: message, Position: position})
}

// Check validates program against the type rules in spec.md §4.2, with
// intrinsics merged into the functions environment exactly as spec.md §4.4
// requires. It returns every independent type error found; a nil/empty
// result means the program is well-typed.
func Check(program *ast.Ast, intrinsics map[ast.FunctionID]*ast.FunctionDeclaration) []beacherrors.TypeError {
	merged := make(map[ast.FunctionID]*ast.FunctionDeclaration, len(program.Functions)+len(intrinsics))
	for id, fn := range intrinsics {
		merged[id] = fn
	}
	for id, fn := range program.Functions {
		merged[id] = fn
	}

	c := newChecker(merged)

	for _, fn := range program.Functions {
		c.checkFunctionBody(fn)
	}
	c.checkStatements(program.TopLevel, map[string]ast.Type{}, nil)

	return c.Errors
}

// checkFunctionBody type-checks a user-declared function's body with a
// fresh locals scope pre-populated with its parameters. Intrinsic
// declarations carry no body and are skipped (spec.md §5.5/§4.4: their
// behaviour lives in the intrinsics registry, not an AST body).
func (c *Checker) checkFunctionBody(fn *ast.FunctionDeclaration) {
	if fn.Intrinsic {
		return
	}

	locals := make(map[string]ast.Type, len(fn.Parameters))
	for _, param := range fn.Parameters {
		if typed, ok := param.(ast.TypedParameter); ok {
			locals[typed.ParamName()] = typed.Type
		}
	}

	c.checkStatements(fn.Body, locals, fn)
}

func (c *Checker) checkStatements(statements []ast.Statement, locals map[string]ast.Type, currentFn *ast.FunctionDeclaration) {
	for _, stmt := range statements {
		c.checkStatement(stmt, locals, currentFn)
	}
}

func (c *Checker) checkStatement(stmt ast.Statement, locals map[string]ast.Type, currentFn *ast.FunctionDeclaration) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		c.checkVariableDeclaration(s, locals, currentFn)
	case *ast.FunctionReturn:
		c.checkFunctionReturn(s, locals, currentFn)
	case *ast.FunctionCall:
		// A call used as a bare statement may be Void or non-Void (spec.md
		// §3's FunctionCall invariant); only the call's own arity/argument
		// errors are relevant here, not the caller's use of its result.
		c.checkFunctionCall(s, locals, currentFn)
	case *ast.IfStatement:
		c.checkIfStatement(s, locals, currentFn)
	default:
		beacherrors.Fatalf("checker: unhandled statement node %T", stmt)
	}
}

// functionLabel names a function the way the grounded error messages do:
// intrinsics and user functions are both referred to by their bare id.
func functionLabel(id ast.FunctionID) string {
	return string(id)
}
