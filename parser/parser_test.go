package parser

import (
	"testing"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyProgram(t *testing.T) {
	program, errs := New("").Parse()
	require.Empty(t, errs)
	require.NotNil(t, program)
	assert.Empty(t, program.Functions)
	assert.Empty(t, program.TopLevel)
}

func TestParse_VariableDeclaration_ExplicitType(t *testing.T) {
	program, errs := New("uint x = 42;").Parse()
	require.Empty(t, errs)
	require.Len(t, program.TopLevel, 1)

	decl, ok := program.TopLevel[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.False(t, decl.DeclaredType.Infer)
	assert.Equal(t, ast.UInt, decl.DeclaredType.Type)

	lit, ok := decl.Initializer.(*ast.ValueLiteral)
	require.True(t, ok)
	assert.Equal(t, ast.UIntValue{Value: 42}, lit.Value)
}

func TestParse_VariableDeclaration_Infer(t *testing.T) {
	program, errs := New("infer flag = true;").Parse()
	require.Empty(t, errs)
	decl := program.TopLevel[0].(*ast.VariableDeclaration)
	assert.True(t, decl.DeclaredType.Infer)
}

func TestParse_VariableDeclaration_MissingSemicolon(t *testing.T) {
	_, errs := New("infer my_var = true").Parse()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, ";")
}

func TestParse_BinaryExpression_RightAssociative(t *testing.T) {
	program, errs := New("infer total = 1 + 2 + 3;").Parse()
	require.Empty(t, errs)

	decl := program.TopLevel[0].(*ast.VariableDeclaration)
	outer, ok := decl.Initializer.(*ast.BinaryOperation)
	require.True(t, ok)
	assert.Equal(t, ast.Plus, outer.Operator)

	left, ok := outer.Left.(*ast.ValueLiteral)
	require.True(t, ok)
	assert.Equal(t, ast.UIntValue{Value: 1}, left.Value)

	right, ok := outer.Right.(*ast.BinaryOperation)
	require.True(t, ok)
	assert.Equal(t, ast.Plus, right.Operator)
}

func TestParse_UnaryNot_BindsToSinglePrimary(t *testing.T) {
	program, errs := New("infer x = !!flag;").Parse()
	require.Empty(t, errs)

	decl := program.TopLevel[0].(*ast.VariableDeclaration)
	outer, ok := decl.Initializer.(*ast.UnaryOperation)
	require.True(t, ok)
	assert.Equal(t, ast.Not, outer.Operator)

	inner, ok := outer.Operand.(*ast.UnaryOperation)
	require.True(t, ok)
	assert.Equal(t, ast.Not, inner.Operator)

	_, ok = inner.Operand.(*ast.VariableAccess)
	assert.True(t, ok)
}

func TestParse_FunctionCall_StatementAndExpressionPosition(t *testing.T) {
	program, errs := New(`
		print(42);
		infer result = add(1, 2);
	`).Parse()
	require.Empty(t, errs)
	require.Len(t, program.TopLevel, 2)

	_, ok := program.TopLevel[0].(*ast.FunctionCall)
	assert.True(t, ok)

	decl := program.TopLevel[1].(*ast.VariableDeclaration)
	call, ok := decl.Initializer.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, ast.FunctionID("add"), call.FunctionID)
	assert.Len(t, call.Arguments, 2)
}

func TestParse_FunctionCallArguments_LeadingCommaIsError(t *testing.T) {
	_, errs := New("print(,1);").Parse()
	require.NotEmpty(t, errs)
}

func TestParse_FunctionCallArguments_TrailingCommaIsError(t *testing.T) {
	_, errs := New("print(1,);").Parse()
	require.NotEmpty(t, errs)
}

func TestParse_FunctionCallArguments_MissingCommaIsError(t *testing.T) {
	_, errs := New("print(1 2);").Parse()
	require.NotEmpty(t, errs)
}

func TestParse_FunctionDeclaration_ParametersAndReturnType(t *testing.T) {
	program, errs := New(`
		function add(uint a, uint b) -> uint {
			return a + b;
		}
	`).Parse()
	require.Empty(t, errs)

	fn, ok := program.Functions[ast.FunctionID("add")]
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "a", fn.Parameters[0].ParamName())
	require.NotNil(t, fn.ReturnType)
	assert.Equal(t, ast.UInt, *fn.ReturnType)
	assert.False(t, fn.IsVoid())
}

func TestParse_FunctionDeclaration_VoidReturn(t *testing.T) {
	program, errs := New(`
		function log(uint value) {
			print(value);
		}
	`).Parse()
	require.Empty(t, errs)

	fn := program.Functions[ast.FunctionID("log")]
	assert.True(t, fn.IsVoid())
}

func TestParse_DuplicateFunctionDeclaration_IsError(t *testing.T) {
	_, errs := New(`
		function f() { return; }
		function f() { return; }
	`).Parse()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "already declared")
}

func TestParse_IfElseIfElse(t *testing.T) {
	program, errs := New(`
		if (a > b) {
			return a;
		} else if (b > a) {
			return b;
		} else {
			return 0;
		}
	`).Parse()
	require.Empty(t, errs)

	ifStmt, ok := program.TopLevel[0].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, ifStmt.ElseIfBlocks, 1)
	require.NotNil(t, ifStmt.ElseBody)
	require.Len(t, ifStmt.ThenBody, 1)
}

func TestParse_If_NoElse(t *testing.T) {
	program, errs := New(`if (true) { return; }`).Parse()
	require.Empty(t, errs)
	ifStmt := program.TopLevel[0].(*ast.IfStatement)
	assert.Nil(t, ifStmt.ElseBody)
	assert.Empty(t, ifStmt.ElseIfBlocks)
}

func TestParse_LoneElse_WithNoBody_IsError(t *testing.T) {
	_, errs := New(`
		if (true) { return; }
		else
	`).Parse()
	require.NotEmpty(t, errs)
}

func TestParse_ReturnStatement_BareAndWithValue(t *testing.T) {
	program, errs := New(`
		function f() {
			return;
		}
		function g() -> uint {
			return 1;
		}
	`).Parse()
	require.Empty(t, errs)

	f := program.Functions[ast.FunctionID("f")]
	ret := f.Body[0].(*ast.FunctionReturn)
	assert.Nil(t, ret.Value)

	g := program.Functions[ast.FunctionID("g")]
	ret2 := g.Body[0].(*ast.FunctionReturn)
	assert.NotNil(t, ret2.Value)
}

func TestParse_UnknownCharacter_IsSingleError(t *testing.T) {
	_, errs := New("infer x = ~1;").Parse()
	require.NotEmpty(t, errs)
}

func TestParse_RecoversAfterErrorAndReportsSubsequentItems(t *testing.T) {
	_, errs := New(`
		infer x = ;
		infer y = 1;
	`).Parse()
	// The first declaration's malformed initializer is one error; parsing
	// resynchronizes at the next statement-starting token ('infer') and the
	// second declaration parses cleanly, so no cascade of spurious errors.
	assert.Len(t, errs, 1)
}

func TestParse_Fibonacci_EndToEnd(t *testing.T) {
	src := `
		function fib(uint n) -> uint {
			if (n > 1) {
				return fib(n + 1) + fib(n);
			}
			return n;
		}

		print(fib(10));
	`
	program, errs := New(src).Parse()
	require.Empty(t, errs)
	require.Contains(t, program.Functions, ast.FunctionID("fib"))
	require.Len(t, program.TopLevel, 1)
}
