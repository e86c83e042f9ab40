/*
File    : beach/internal/replsvc/repl.go
Package : replsvc
*/

// Package replsvc implements beach's interactive read-eval-print loop.
//
// Grounded on the teacher's repl/repl.go shape (a Repl struct carrying
// banner/version/author/license/prompt text, a PrintBannerInfo method, a
// Start loop built on chzyer/readline for history and line editing, and an
// executeWithRecovery method that recovers a panic into a colored error
// message instead of crashing the session), adapted to drive beach's
// parser -> checker -> eval pipeline instead of Go-Mix's, and to accumulate
// a Session's function declarations and top-level locals across lines
// rather than re-creating an environment per input.
package replsvc

import (
	"io"
	"strings"

	"github.com/MalachiMackie/beach-lang-sub000/ast"
	"github.com/MalachiMackie/beach-lang-sub000/beacherrors"
	"github.com/MalachiMackie/beach-lang-sub000/checker"
	"github.com/MalachiMackie/beach-lang-sub000/eval"
	"github.com/MalachiMackie/beach-lang-sub000/intrinsics"
	"github.com/MalachiMackie/beach-lang-sub000/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// exitLine is the REPL's quit sentinel, mirroring the teacher's ".exit".
const exitLine = ".exit"

// Repl is an interactive beach session. It encapsulates the presentation
// text the teacher's Repl hard-codes as struct fields, so cmd/beach can
// supply beach's own banner/version/prompt instead of Go-Mix's.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given presentation text.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner the way the teacher's REPL does:
// a decorative line, the banner art, version/author/license info, and usage
// instructions, each in its own color.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to beach!")
	cyanColor.Fprintf(writer, "%s\n", "Type a beach statement and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// session accumulates state across REPL lines: every function declared so
// far (seeded with the intrinsics), the top-level locals map, and the
// evaluator that executes against them. Unlike cmd/beach's one-shot `run`,
// a REPL line is not a complete program on its own, so declarations and
// variables from earlier lines must remain visible to later ones.
type session struct {
	functions map[ast.FunctionID]*ast.FunctionDeclaration
	locals    map[string]ast.Value
	evaluator *eval.Evaluator
}

func newSession(writer io.Writer) *session {
	functions := make(map[ast.FunctionID]*ast.FunctionDeclaration)
	for id, fn := range intrinsics.Declarations() {
		functions[id] = fn
	}
	evaluator := eval.New(functions, intrinsics.Callbacks())
	evaluator.SetWriter(writer)
	return &session{
		functions: functions,
		locals:    make(map[string]ast.Value),
		evaluator: evaluator,
	}
}

// Start runs the main REPL loop: print the banner, read lines via readline
// (for history and editing), and execute each one until `.exit` or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sess := newSession(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == exitLine {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		sess.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery parses, type-checks and evaluates one line against
// the accumulated session state, recovering a RuntimeFatal panic into a red
// diagnostic the same way the teacher's executeWithRecovery does rather than
// letting it kill the REPL process.
func (s *session) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if fatal, ok := recovered.(beacherrors.RuntimeFatal); ok {
				redColor.Fprintf(writer, "[RUNTIME ERROR] %s\n", fatal.Message)
				return
			}
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	program, parseErrs := parser.New(line).Parse()
	if len(parseErrs) > 0 {
		for _, parseErr := range parseErrs {
			redColor.Fprintf(writer, "%s\n", parseErr.Message)
		}
		return
	}

	// checker.Check starts from empty top-level locals, so the session's
	// variables are declared ahead of this line's statements (for checking
	// only) to make them visible to it.
	checked := &ast.Ast{Functions: program.Functions}
	for name, value := range s.locals {
		checked.TopLevel = append(checked.TopLevel, &ast.VariableDeclaration{
			DeclaredType: ast.DeclaredType{Infer: true},
			Name:         name,
			Initializer:  &ast.ValueLiteral{Value: value},
		})
	}
	checked.TopLevel = append(checked.TopLevel, program.TopLevel...)

	typeErrs := checker.Check(checked, s.functions)
	if len(typeErrs) > 0 {
		for _, typeErr := range typeErrs {
			redColor.Fprintf(writer, "%s\n", typeErr.Message)
		}
		return
	}

	for id, fn := range program.Functions {
		s.functions[id] = fn
	}

	value, returned := s.evaluator.RunStatements(program.TopLevel, s.locals)
	if returned && value != nil {
		yellowColor.Fprintf(writer, "%s\n", value.String())
	}
}
