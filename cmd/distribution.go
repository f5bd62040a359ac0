package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lucasvm/carteira"
	"github.com/lucasvm/carteira/renderer"
)

type distributionCmd struct {
	offline bool
}

func (*distributionCmd) Name() string { return "distribution" }
func (*distributionCmd) Synopsis() string {
	return "display the market value distribution per asset class"
}
func (*distributionCmd) Usage() string {
	return `distribution [-offline]

  Aggregates the BRL market value of all current positions per asset
  class. Positions without an available market value do not contribute.
`
}

func (c *distributionCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "skip market data lookups, all prices unavailable")
}

func (c *distributionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	quotes, fx := marketData(c.offline)
	snapshot := carteira.ComputeSnapshot(ledger, quotes, fx)
	printMarkdown(renderer.DistributionMarkdown(snapshot))
	return subcommands.ExitSuccess
}
