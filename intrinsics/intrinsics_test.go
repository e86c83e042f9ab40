package intrinsics_test

import (
	"bytes"
	"testing"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/intrinsics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarations_PrintAcceptsIntrinsicAny(t *testing.T) {
	decls := intrinsics.Declarations()
	printDecl, ok := decls[intrinsics.Print]
	require.True(t, ok)
	assert.True(t, printDecl.Intrinsic)
	assert.True(t, printDecl.IsVoid())
	require.Len(t, printDecl.Parameters, 1)
	_, isAny := printDecl.Parameters[0].(ast.IntrinsicAnyParameter)
	assert.True(t, isAny)
}

func TestCallbacks_Print_RendersUIntWithNoLeadingZeros(t *testing.T) {
	var buf bytes.Buffer
	callbacks := intrinsics.Callbacks()

	result := callbacks[intrinsics.Print]([]ast.Value{ast.UIntValue{Value: 42}}, &buf)

	assert.Nil(t, result)
	assert.Equal(t, "42\n", buf.String())
}

func TestCallbacks_Print_RendersBooleanLowercase(t *testing.T) {
	var buf bytes.Buffer
	callbacks := intrinsics.Callbacks()

	callbacks[intrinsics.Print]([]ast.Value{ast.BoolValue{Value: false}}, &buf)

	assert.Equal(t, "false\n", buf.String())
}
