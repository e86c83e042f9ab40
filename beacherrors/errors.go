/*
File    : beach/beacherrors/errors.go
Package : beacherrors
*/

// Package beacherrors defines the three structured error kinds the beach
// pipeline produces: parse errors, type errors, and runtime fatals
// (spec.md §7). Parse and type errors accumulate across a run; runtime
// fatals abort immediately. Pretty-printing these for a terminal is a CLI
// concern (internal/replsvc, cmd/beach), not the core's.
package beacherrors

import (
	"fmt"

	"github.com/MalachiMackie/beach-lang-sub000/token"
)

// ParseError is a malformed-syntax error: unexpected token, unterminated
// block, bad operator placement, duplicate comma, missing semicolon.
type ParseError struct {
	Message  string
	Position token.Position
}

func (e ParseError) Error() string { return e.Message }

// TypeError is a static-type-discipline violation: unknown identifier,
// arity/type mismatch, wrong return type, void where a value is required,
// variable redeclaration, non-Boolean if-check.
type TypeError struct {
	Message  string
	Position token.Position
}

func (e TypeError) Error() string { return e.Message }

// RuntimeFatal is reached only if the type checker has a bug: an impossible
// state the evaluator encounters at runtime (unknown variable, wrong arity,
// Void used in expression position). The evaluator panics with this type as
// the recover() payload; callers that want a clean message instead of a
// stack trace should recover and type-assert for it (see
// internal/replsvc and cmd/beach).
type RuntimeFatal struct {
	Message string
}

func (e RuntimeFatal) Error() string { return e.Message }

// Fatalf panics with a RuntimeFatal built from format and args. It is used
// throughout the evaluator at the few points spec.md §7 calls "impossible
// states" that type-checking should already have ruled out.
func Fatalf(format string, args ...any) {
	panic(RuntimeFatal{Message: fmt.Sprintf(format, args...)})
}
