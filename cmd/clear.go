package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lucasvm/carteira"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "discard all transactions and the ledger file" }
func (*clearCmd) Usage() string {
	return `clear -f

  Removes the ledger file entirely. This is irreversible, so the -f
  flag is required.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "confirm the irreversible removal of the ledger")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "clear is irreversible: pass -f to confirm")
		return subcommands.ExitUsageError
	}
	if err := carteira.RemoveLedger(ledgerPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing ledger file %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed ledger file %s\n", ledgerPath())
	return subcommands.ExitSuccess
}
