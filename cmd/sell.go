package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lucasvm/carteira"
)

type sellCmd struct {
	date      string
	symbol    string
	class     string
	portfolio string
	quantity  float64
	price     float64
	zero      bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale in the ledger" }
func (*sellCmd) Usage() string {
	return `sell -s <symbol> -q <quantity> -u <unit-price> [-c <class>] [-p <portfolio>] [-d <date>] [-zero]

  Records a sell transaction. The sale is validated against the current
  position of the symbol within the given portfolio tag: selling more
  than that position is rejected and the ledger is left unchanged.

  With -zero the quantity flag is ignored and the exact current
  position is sold, fully closing it.

Usage examples:
$ cdc sell -s PETR4 -p Lucas -q 3 -u 36.10
$ cdc sell -s PETR4 -p Lucas -zero -u 36.10
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "operation date (YYYY-MM-DD, default today)")
	f.StringVar(&c.symbol, "s", "", "asset symbol (e.g. VOO, PETR4)")
	f.StringVar(&c.class, "c", "stock", "asset class (stock, fii, etf, foreign-stock, bdr, foreign-reit, fixed-income, crypto)")
	f.StringVar(&c.portfolio, "p", "default", "portfolio tag the operation belongs to")
	f.Float64Var(&c.quantity, "q", 0, "quantity sold")
	f.Float64Var(&c.price, "u", 0, "unit price in the asset's native currency")
	f.BoolVar(&c.zero, "zero", false, "sell the exact current position, closing it")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	quantity := carteira.Q(c.quantity)
	if c.zero {
		// sell exactly the current holding; by construction this
		// cannot exceed the position.
		quantity = ledger.CurrentPosition(c.symbol, c.portfolio)
		if !quantity.IsPositive() {
			fmt.Fprintf(os.Stderr, "nothing to zero out: no position for %s in portfolio %q\n", c.symbol, c.portfolio)
			return subcommands.ExitFailure
		}
	} else if err := ledger.ValidateSell(c.symbol, c.portfolio, quantity); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, status := parseTransactionFlags(c.date, c.symbol, c.class, c.portfolio, 0, c.price, func(
		day carteira.Date, symbol string, class carteira.AssetClass, portfolio string, _ carteira.Quantity, price carteira.Money,
	) (carteira.Transaction, error) {
		return carteira.NewSell(day, symbol, class, portfolio, quantity, price)
	})
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendTransaction(ledger, tx)
}
