package checker_test

import (
	"testing"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/checker"
	"github.com/MalachiMackie/beach-lang-sub000/intrinsics"
	"github.com/MalachiMackie/beach-lang-sub000/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.Ast {
	t.Helper()
	program, errs := parser.New(src).Parse()
	require.Empty(t, errs, "unexpected parse errors: %v", errs)
	return program
}

func TestCheck_EmptyProgram_NoErrors(t *testing.T) {
	program := mustParse(t, "")
	errs := checker.Check(program, intrinsics.Declarations())
	assert.Empty(t, errs)
}

func TestCheck_ReturnBareAtTopLevel_NoError(t *testing.T) {
	program := mustParse(t, "return;")
	errs := checker.Check(program, intrinsics.Declarations())
	assert.Empty(t, errs)
}

func TestCheck_ReturnUIntAtTopLevel_NoError(t *testing.T) {
	program := mustParse(t, "return 0;")
	errs := checker.Check(program, intrinsics.Declarations())
	assert.Empty(t, errs)
}

func TestCheck_ReturnBooleanAtTopLevel_IsError(t *testing.T) {
	program := mustParse(t, "return true;")
	errs := checker.Check(program, intrinsics.Declarations())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Cannot return a Boolean from a top level statement")
}

func TestCheck_IfCheckNotBoolean_IsTypeError(t *testing.T) {
	program := mustParse(t, "if (1) {}")
	errs := checker.Check(program, intrinsics.Declarations())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Expected type to be Boolean, but found UInt")
}

func TestCheck_UnknownVariable_IsTypeError(t *testing.T) {
	program := mustParse(t, "infer x = y;")
	errs := checker.Check(program, intrinsics.Declarations())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "cannot assign void to variable x")
}

func TestCheck_FunctionCallWrongArity_MentionsCounts(t *testing.T) {
	program := mustParse(t, `
		function add(uint a, uint b) -> uint {
			return a + b;
		}
		add(1);
	`)
	errs := checker.Check(program, intrinsics.Declarations())
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "add expects 2 parameters, but you provided 1")
}

func TestCheck_UnknownFunction_IsTypeError(t *testing.T) {
	program := mustParse(t, "missing(1);")
	errs := checker.Check(program, intrinsics.Declarations())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Could not find function with name missing")
}

func TestCheck_VariableRedeclaration_IsError_AndDoesNotOverwrite(t *testing.T) {
	program := mustParse(t, `
		infer x = true;
		uint x = 1;
		print(!x);
	`)
	errs := checker.Check(program, intrinsics.Declarations())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "Variable x is already defined")
}

func TestCheck_VoidFunctionReturningValue_IsError(t *testing.T) {
	program := mustParse(t, `
		function doThing() {
			return 1;
		}
	`)
	errs := checker.Check(program, intrinsics.Declarations())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "doThing is a void function, but you returned a UInt value")
}

func TestCheck_NonVoidFunctionReturningVoid_IsError(t *testing.T) {
	program := mustParse(t, `
		function getValue() -> uint {
			return;
		}
	`)
	errs := checker.Check(program, intrinsics.Declarations())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "getValue expects a return type of UInt, but you returned void")
}

func TestCheck_NonVoidFunctionReturningWrongType_IsError(t *testing.T) {
	program := mustParse(t, `
		function getValue() -> uint {
			return true;
		}
	`)
	errs := checker.Check(program, intrinsics.Declarations())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "getValue expects a return type of UInt, but you returned a Boolean value")
}

func TestCheck_BranchScoping_IsFlatPerFunction(t *testing.T) {
	// A variable declared inside an if-branch stays visible afterwards,
	// within the same function (spec.md §9's resolved Open Question).
	program := mustParse(t, `
		function f(boolean cond) -> uint {
			if (cond) {
				infer result = 1;
			} else {
				return 2;
			}
			return result;
		}
	`)
	errs := checker.Check(program, intrinsics.Declarations())
	assert.Empty(t, errs)
}

func TestCheck_IntrinsicPrint_AcceptsAnySingleArgument(t *testing.T) {
	program := mustParse(t, `
		print(1);
		print(true);
	`)
	errs := checker.Check(program, intrinsics.Declarations())
	assert.Empty(t, errs)
}

func TestCheck_FibonacciProgram_IsWellTyped(t *testing.T) {
	program := mustParse(t, `
		function fib(uint n) -> uint {
			if (n > 1) {
				return fib(n + 0) + fib(n);
			}
			return n;
		}
		print(fib(10));
	`)
	errs := checker.Check(program, intrinsics.Declarations())
	assert.Empty(t, errs)
}

func TestCheck_ErrorAccumulation_ReportsIndependentErrors(t *testing.T) {
	program := mustParse(t, `
		function f(uint a) -> uint {
			return true;
		}
		infer x = y;
		infer z = w;
	`)
	errs := checker.Check(program, intrinsics.Declarations())
	assert.GreaterOrEqual(t, len(errs), 3)
}
