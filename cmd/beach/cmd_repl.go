package main

import (
	"context"
	"flag"
	"os"

	"github.com/MalachiMackie/beach-lang-sub000/internal/replsvc"
	"github.com/google/subcommands"
)

const (
	banner  = `~~~ beach ~~~`
	version = "0.1.0"
	author  = "beach contributors"
	line    = "--------------------------------"
	license = "MIT"
	prompt  = "beach >>> "
)

// replCmd implements `beach repl`, grounded on informatter-nilan's replCmd
// (same subcommands.Command wiring) driving internal/replsvc's interactive
// loop (grounded on the teacher's repl/repl.go).
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start an interactive beach session" }
func (*replCmd) Usage() string {
	return "beach repl\n"
}
func (*replCmd) SetFlags(*flag.FlagSet) {}

func (*replCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	r := replsvc.NewRepl(banner, version, author, line, license, prompt)
	r.Start(os.Stdin, os.Stdout)
	return subcommands.ExitSuccess
}
