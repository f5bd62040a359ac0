package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/lucasvm/carteira/cmd"
	"github.com/posener/complete/v2"
)

func main() {
	// optional .env so CDC_LEDGER_FILE style settings apply without
	// exporting them in the shell. A missing file is fine.
	_ = godotenv.Load()

	// shell completion for the command tree; exits when invoked by
	// the shell completion hook, a no-op otherwise.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":          {},
			"sell":         {},
			"positions":    {},
			"distribution": {},
			"history":      {},
			"clear":        {},
			"topic":        {},
		},
	}
	completer.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
