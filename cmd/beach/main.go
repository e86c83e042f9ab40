/*
File    : beach/cmd/beach/main.go
Package : main
*/

// Command beach is the beach language's command-line entry point: `beach
// run <file>.bch` executes a program file, `beach repl` starts an
// interactive session, and `beach help` lists the available commands.
//
// Grounded on informatter-nilan's cmd_run.go/cmd_repl.go subcommands.Command
// implementations (this repo's secondary teacher for CLI dispatch, since the
// primary teacher dispatches on raw flags instead of subcommands), with the
// run command's usage/description/validation strings taken verbatim (in
// meaning) from the original Rust implementation's cli/run_command.rs.
// `beach help` is the subcommands package's built-in help command.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
