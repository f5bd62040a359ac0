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

type positionsCmd struct {
	offline bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the current positions grouped by currency" }
func (*positionsCmd) Usage() string {
	return `positions [-offline]

  Folds the full ledger into the current positions, fetches the latest
  market prices and the USD/BRL rate, and displays one table per
  currency, sorted by symbol. Rows whose price or fx lookup failed are
  shown with "-" in the affected columns.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "skip market data lookups, all prices unavailable")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	quotes, fx := marketData(c.offline)
	snapshot := carteira.ComputeSnapshot(ledger, quotes, fx)
	printMarkdown(renderer.PositionsMarkdown(snapshot))
	return subcommands.ExitSuccess
}

// marketData resolves the quote provider and fx rate for the report
// commands.
func marketData(offline bool) (carteira.QuoteProvider, carteira.FxRate) {
	if offline {
		return carteira.NoQuotes{}, carteira.FxRate{}
	}
	market := carteira.NewYahooMarket()
	return market, market.USDBRL()
}
