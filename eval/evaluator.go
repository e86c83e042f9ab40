/*
File    : beach/eval/evaluator.go
Package : eval
*/

// Package eval implements beach's tree-walking evaluator (spec.md §4.3). An
// Evaluator holds a flat locals mapping per invocation, a call stack, and
// the merged functions environment, and executes a type-checked Ast's
// statements in order, propagating early returns up to the nearest
// enclosing function boundary.
//
// Grounded on the teacher's eval/evaluator.go shape (an Evaluator struct
// with a settable io.Writer for print, so tests can capture output), with
// the teacher's chained scope.Scope replaced by a single flat map per call:
// beach has no closures or nested block scope for a scope chain to model
// (spec.md §9's resolved Open Question — flat per-function scope).
package eval

import (
	"io"
	"os"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/beacherrors"
	"github.com/MalachiMackie/beach-lang-sub000/intrinsics"
)

// result is the tagged variant every statement evaluation produces
// (spec.md §4.3's "Evaluation result"): either no return signal, or a
// Return carrying an optional value, propagating up until a function-call
// boundary catches it.
type result struct {
	returned bool
	value    ast.Value
}

// Evaluator executes a merged functions environment (user declarations plus
// intrinsics) against a Writer that receives print output.
type Evaluator struct {
	Functions map[ast.FunctionID]*ast.FunctionDeclaration
	Callbacks map[ast.FunctionID]intrinsics.HostFunc
	CallStack []ast.FunctionID
	Writer    io.Writer
}

// New builds an Evaluator over the merged functions table (program
// declarations plus intrinsics.Declarations()) and intrinsics.Callbacks(),
// writing print output to os.Stdout until SetWriter overrides it.
func New(functions map[ast.FunctionID]*ast.FunctionDeclaration, callbacks map[ast.FunctionID]intrinsics.HostFunc) *Evaluator {
	return &Evaluator{
		Functions: functions,
		Callbacks: callbacks,
		Writer:    os.Stdout,
	}
}

// SetWriter redirects print output, letting tests capture it without
// touching os.Stdout (mirrors the teacher's Evaluator.SetWriter).
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Run executes a type-checked program's top-level statements in order and
// returns the process exit code: a top-level `return <uint>;` supplies it
// (spec.md §4.2, §6); falling off the end of the program without returning
// yields exit code 0.
func (e *Evaluator) Run(program *ast.Ast) uint32 {
	locals := make(map[string]ast.Value)
	outcome := e.evalStatements(program.TopLevel, locals)
	if outcome.returned {
		if exitCode, ok := outcome.value.(ast.UIntValue); ok {
			return exitCode.Value
		}
	}
	return 0
}

// RunStatements executes statements against locals (which the caller owns
// and may reuse across calls, e.g. a REPL session accumulating variables
// across lines) and reports whether a top-level return was hit along with
// its value.
func (e *Evaluator) RunStatements(statements []ast.Statement, locals map[string]ast.Value) (value ast.Value, returned bool) {
	outcome := e.evalStatements(statements, locals)
	return outcome.value, outcome.returned
}

func (e *Evaluator) evalStatements(statements []ast.Statement, locals map[string]ast.Value) result {
	for _, stmt := range statements {
		outcome := e.evalStatement(stmt, locals)
		if outcome.returned {
			return outcome
		}
	}
	return result{}
}

func (e *Evaluator) evalStatement(stmt ast.Statement, locals map[string]ast.Value) result {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		locals[s.Name] = e.evalExpression(s.Initializer, locals)
		return result{}

	case *ast.FunctionReturn:
		if s.Value == nil {
			return result{returned: true}
		}
		return result{returned: true, value: e.evalExpression(s.Value, locals)}

	case *ast.FunctionCall:
		e.evalFunctionCall(s, locals)
		return result{}

	case *ast.IfStatement:
		return e.evalIfStatement(s, locals)

	default:
		beacherrors.Fatalf("eval: unhandled statement node %T", stmt)
		return result{}
	}
}

func (e *Evaluator) evalIfStatement(stmt *ast.IfStatement, locals map[string]ast.Value) result {
	check := e.evalExpression(stmt.CheckExpression, locals)
	checkValue, ok := check.(ast.BoolValue)
	if !ok {
		beacherrors.Fatalf("eval: if-check did not evaluate to a Boolean; the type checker should have prevented this")
	}
	if checkValue.Value {
		return e.evalStatements(stmt.ThenBody, locals)
	}

	for _, elseIf := range stmt.ElseIfBlocks {
		elseCheck, ok := e.evalExpression(elseIf.CheckExpression, locals).(ast.BoolValue)
		if !ok {
			beacherrors.Fatalf("eval: else-if check did not evaluate to a Boolean; the type checker should have prevented this")
		}
		if elseCheck.Value {
			return e.evalStatements(elseIf.Block, locals)
		}
	}

	if stmt.ElseBody != nil {
		return e.evalStatements(stmt.ElseBody, locals)
	}
	return result{}
}

// evalFunctionCall evaluates every argument strictly left to right, binds
// them into a fresh locals mapping for the callee, and either dispatches to
// an intrinsic host routine or walks the callee's body (spec.md §4.3).
func (e *Evaluator) evalFunctionCall(call *ast.FunctionCall, locals map[string]ast.Value) ast.Value {
	fn, ok := e.Functions[call.FunctionID]
	if !ok {
		beacherrors.Fatalf("eval: unknown function %s; the type checker should have prevented this", call.FunctionID)
	}

	args := make([]ast.Value, len(call.Arguments))
	for i, argExpr := range call.Arguments {
		args[i] = e.evalExpression(argExpr, locals)
	}

	if fn.Intrinsic {
		callback, ok := e.Callbacks[fn.ID]
		if !ok {
			beacherrors.Fatalf("eval: no host implementation registered for intrinsic %s", fn.ID)
		}
		return callback(args, e.Writer)
	}

	if len(args) != len(fn.Parameters) {
		beacherrors.Fatalf("eval: %s called with %d arguments but expects %d; the type checker should have prevented this", fn.ID, len(args), len(fn.Parameters))
	}

	callLocals := make(map[string]ast.Value, len(fn.Parameters))
	for i, param := range fn.Parameters {
		callLocals[param.ParamName()] = args[i]
	}

	e.CallStack = append(e.CallStack, fn.ID)
	outcome := e.evalStatements(fn.Body, callLocals)
	e.CallStack = e.CallStack[:len(e.CallStack)-1]

	if outcome.returned {
		return outcome.value
	}
	if fn.IsVoid() {
		return nil
	}
	beacherrors.Fatalf("eval: %s fell off its body without returning a value; the type checker should have prevented this", fn.ID)
	return nil
}
