package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProgram_PrintsAndSucceeds(t *testing.T) {
	var out, errOut bytes.Buffer

	exitCode, ok := runProgram("if (true) { print(1); }", &out, &errOut)

	require.True(t, ok)
	assert.Equal(t, uint32(0), exitCode)
	assert.Equal(t, "1\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunProgram_TopLevelReturnBecomesExitCode(t *testing.T) {
	var out, errOut bytes.Buffer

	exitCode, ok := runProgram("return 7;", &out, &errOut)

	require.True(t, ok)
	assert.Equal(t, uint32(7), exitCode)
}

func TestRunProgram_ParseError_ReportsAndFails(t *testing.T) {
	var out, errOut bytes.Buffer

	_, ok := runProgram("infer x = ", &out, &errOut)

	assert.False(t, ok)
	assert.NotEmpty(t, errOut.String())
}

func TestRunProgram_TypeError_ReportsAndFails(t *testing.T) {
	var out, errOut bytes.Buffer

	_, ok := runProgram("if (1) {}", &out, &errOut)

	assert.False(t, ok)
	assert.Contains(t, errOut.String(), "Expected type to be Boolean, but found UInt")
}

func TestHasExtension(t *testing.T) {
	assert.True(t, hasExtension("hello.bch", ".bch"))
	assert.False(t, hasExtension("hello.rs", ".bch"))
	assert.False(t, hasExtension(".bch", ".rs"))
}
