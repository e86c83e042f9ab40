/*
File    : beach/intrinsics/intrinsics.go
Package : intrinsics
*/

// Package intrinsics is the built-in function registry (spec.md §4.4): a
// read-only mapping from function id to {declaration, host implementation}.
// Declarations are merged into the checker's and evaluator's functions
// environment; host implementations are looked up by the evaluator whenever
// it calls a function whose declaration is marked Intrinsic.
//
// Grounded on the teacher's std.Builtin{Name, Callback} registry pattern
// (spec.md §9 prefers a lookup table over the original's string-keyed
// dispatch map for the same reason the teacher already uses one: clarity and
// exhaustiveness at the call site).
package intrinsics

import (
	"fmt"
	"io"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
)

// Print is the id of beach's one required intrinsic.
const Print ast.FunctionID = "print"

// HostFunc is a built-in function's Go implementation: it receives already
// type-checked, already-evaluated argument values and an output sink, and
// returns the function's result (nil for a Void intrinsic).
type HostFunc func(args []ast.Value, out io.Writer) ast.Value

// Declarations returns the AST-facing signatures of every intrinsic,
// suitable for merging into a functions environment alongside user-declared
// functions (spec.md §4.4).
func Declarations() map[ast.FunctionID]*ast.FunctionDeclaration {
	return map[ast.FunctionID]*ast.FunctionDeclaration{
		Print: {
			ID:         Print,
			Parameters: []ast.FunctionParameter{ast.IntrinsicAnyParameter{Name: "value"}},
			ReturnType: nil,
			Intrinsic:  true,
		},
	}
}

// Callbacks returns the host implementations behind each intrinsic id,
// keyed the same way as Declarations.
func Callbacks() map[ast.FunctionID]HostFunc {
	return map[ast.FunctionID]HostFunc{
		Print: printCallback,
	}
}

// printCallback renders its single argument per spec.md §6: booleans as the
// lowercase words true/false, unsigned integers as base-10 digits with no
// leading zeros, always newline-terminated.
func printCallback(args []ast.Value, out io.Writer) ast.Value {
	fmt.Fprintln(out, args[0].String())
	return nil
}
