package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/beacherrors"
	"github.com/MalachiMackie/beach-lang-sub000/checker"
	"github.com/MalachiMackie/beach-lang-sub000/eval"
	"github.com/MalachiMackie/beach-lang-sub000/intrinsics"
	"github.com/MalachiMackie/beach-lang-sub000/parser"
	"github.com/fatih/color"
	"github.com/google/subcommands"
)

const runUsage = "beach run [program].bch"

// runCmd implements `beach run <file>.bch`, grounded on informatter-nilan's
// runCmd and on the original Rust implementation's RunCommand (same usage
// string, same file-extension and argument-count validation).
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run a beach program" }
func (*runCmd) Usage() string    { return runUsage + "\n" }
func (*runCmd) SetFlags(*flag.FlagSet) {}

func (*runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s\n", runUsage)
		return subcommands.ExitUsageError
	}

	programFile := args[0]
	if !hasExtension(programFile, ".bch") {
		red.Fprintln(os.Stderr, "a beach program file must have .bch extension")
		return subcommands.ExitFailure
	}

	if len(args) > 1 {
		red.Fprintf(os.Stderr, "the run command does not take any more sub commands or options\nusage: %s\n", runUsage)
		return subcommands.ExitUsageError
	}

	code, err := os.ReadFile(programFile)
	if err != nil {
		red.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}

	exitCode, ok := runProgram(string(code), os.Stdout, os.Stderr)
	if !ok {
		return subcommands.ExitFailure
	}

	// A top-level `return <uint>;` is the program's actual process exit
	// code, which can be any uint32 value, not just success/failure - so
	// the process exits here directly rather than through subcommands'
	// fixed ExitStatus enum.
	os.Exit(int(exitCode))
	return subcommands.ExitSuccess
}

func hasExtension(filename, ext string) bool {
	if len(filename) < len(ext) {
		return false
	}
	return filename[len(filename)-len(ext):] == ext
}

var red = color.New(color.FgRed)

// runProgram parses, type-checks and evaluates code, printing any
// accumulated errors (or a recovered runtime fatal) to errWriter. ok is
// false whenever the program did not run to completion.
func runProgram(code string, out, errWriter io.Writer) (exitCode uint32, ok bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			ok = false
			if fatal, isFatal := recovered.(beacherrors.RuntimeFatal); isFatal {
				red.Fprintf(errWriter, "Failed to run beach program: %s\n", fatal.Message)
				return
			}
			red.Fprintf(errWriter, "Failed to run beach program: %v\n", recovered)
		}
	}()

	program, parseErrs := parser.New(code).Parse()
	if len(parseErrs) > 0 {
		for _, parseErr := range parseErrs {
			red.Fprintf(errWriter, "Parsing error: %s\n", parseErr.Message)
		}
		return 0, false
	}

	decls := intrinsics.Declarations()
	typeErrs := checker.Check(program, decls)
	if len(typeErrs) > 0 {
		for _, typeErr := range typeErrs {
			red.Fprintf(errWriter, "%s\n", typeErr.Message)
		}
		return 0, false
	}

	merged := make(map[ast.FunctionID]*ast.FunctionDeclaration, len(program.Functions)+len(decls))
	for id, fn := range decls {
		merged[id] = fn
	}
	for id, fn := range program.Functions {
		merged[id] = fn
	}

	evaluator := eval.New(merged, intrinsics.Callbacks())
	evaluator.SetWriter(out)
	return evaluator.Run(program), true
}
