package eval_test

import (
	"bytes"
	"testing"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/checker"
	"github.com/MalachiMackie/beach-lang-sub000/eval"
	"github.com/MalachiMackie/beach-lang-sub000/intrinsics"
	"github.com/MalachiMackie/beach-lang-sub000/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses, type-checks, and evaluates src, returning captured stdout and
// the top-level exit code. It fails the test on any parse or type error.
func run(t *testing.T, src string) (string, uint32) {
	t.Helper()

	program, parseErrs := parser.New(src).Parse()
	require.Empty(t, parseErrs, "unexpected parse errors: %v", parseErrs)

	decls := intrinsics.Declarations()
	typeErrs := checker.Check(program, decls)
	require.Empty(t, typeErrs, "unexpected type errors: %v", typeErrs)

	merged := make(map[ast.FunctionID]*ast.FunctionDeclaration, len(program.Functions)+len(decls))
	for id, fn := range decls {
		merged[id] = fn
	}
	for id, fn := range program.Functions {
		merged[id] = fn
	}

	evaluator := eval.New(merged, intrinsics.Callbacks())
	var out bytes.Buffer
	evaluator.SetWriter(&out)
	exitCode := evaluator.Run(program)
	return out.String(), exitCode
}

func TestRun_ConditionalAndPrint(t *testing.T) {
	out, _ := run(t, "if (true) { print(1); }")
	assert.Equal(t, "1\n", out)
}

func TestRun_FunctionWithBooleanBranch(t *testing.T) {
	out, _ := run(t, `
		function pick(boolean b) -> uint { if (b) { return 69; } else { return 420; } }
		infer a = pick(true);
		infer c = pick(false);
		print(a);
		print(c);
	`)
	assert.Equal(t, "69\n420\n", out)
}

func TestRun_TopLevelReturnUInt_IsExitCode(t *testing.T) {
	_, exitCode := run(t, "return 7;")
	assert.Equal(t, uint32(7), exitCode)
}

func TestRun_TopLevelBareReturn_ExitsZero(t *testing.T) {
	_, exitCode := run(t, `
		print(1);
		return;
		print(2);
	`)
	assert.Equal(t, uint32(0), exitCode)
}

func TestRun_FallingOffEnd_ExitsZero(t *testing.T) {
	_, exitCode := run(t, "print(1);")
	assert.Equal(t, uint32(0), exitCode)
}

func TestRun_UIntAdditionWraps(t *testing.T) {
	out, _ := run(t, "print(4294967295 + 1);")
	assert.Equal(t, "0\n", out)
}

func TestRun_RightAssociativePlus(t *testing.T) {
	out, _ := run(t, "print(1 + 2 + 3);")
	assert.Equal(t, "6\n", out)
}

func TestRun_GreaterThanAndNot(t *testing.T) {
	out, _ := run(t, "infer c = 2 > 3; print(!c);")
	assert.Equal(t, "true\n", out)
}

func TestRun_BranchScoping_VariableVisibleAfterBranch(t *testing.T) {
	out, _ := run(t, `
		function describe(boolean cond) -> uint {
			if (cond) {
				infer result = 1;
			} else {
				return 2;
			}
			return result;
		}
		print(describe(true));
	`)
	assert.Equal(t, "1\n", out)
}

func TestRun_Fibonacci_FirstTwentyOneNumbers(t *testing.T) {
	out, _ := run(t, `
		function fib(uint n) -> uint {
			if (n > 1) {
				return fib(n + 4294967295) + fib(n + 4294967294);
			}
			return n;
		}

		print(fib(0));
		print(fib(1));
		print(fib(2));
		print(fib(3));
		print(fib(4));
		print(fib(5));
		print(fib(6));
		print(fib(7));
		print(fib(8));
		print(fib(9));
		print(fib(10));
		print(fib(11));
		print(fib(12));
		print(fib(13));
		print(fib(14));
		print(fib(15));
		print(fib(16));
		print(fib(17));
		print(fib(18));
		print(fib(19));
		print(fib(20));
	`)
	assert.Equal(t, "0\n1\n1\n2\n3\n5\n8\n13\n21\n34\n55\n89\n144\n233\n377\n610\n987\n1597\n2584\n4181\n6765\n", out)
}
