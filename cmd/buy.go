package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lucasvm/carteira"
)

type buyCmd struct {
	date      string
	symbol    string
	class     string
	portfolio string
	quantity  float64
	price     float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase in the ledger" }
func (*buyCmd) Usage() string {
	return `buy -s <symbol> -q <quantity> -u <unit-price> [-c <class>] [-p <portfolio>] [-d <date>]

  Records a buy transaction. The signed quantity and total are derived
  from the quantity and unit price.

Usage example:
$ cdc buy -s PETR4 -c stock -p Lucas -q 10 -u 32.50
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "operation date (YYYY-MM-DD, default today)")
	f.StringVar(&c.symbol, "s", "", "asset symbol (e.g. VOO, PETR4)")
	f.StringVar(&c.class, "c", "stock", "asset class (stock, fii, etf, foreign-stock, bdr, foreign-reit, fixed-income, crypto)")
	f.StringVar(&c.portfolio, "p", "default", "portfolio tag the operation belongs to")
	f.Float64Var(&c.quantity, "q", 0, "quantity bought")
	f.Float64Var(&c.price, "u", 0, "unit price in the asset's native currency")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := parseTransactionFlags(c.date, c.symbol, c.class, c.portfolio, c.quantity, c.price, carteira.NewBuy)
	if status != subcommands.ExitSuccess {
		return status
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return appendTransaction(ledger, tx)
}

// parseTransactionFlags turns the shared buy/sell flag set into a
// transaction using the given constructor.
func parseTransactionFlags(date, symbol, class, portfolio string, quantity, price float64,
	build func(carteira.Date, string, carteira.AssetClass, string, carteira.Quantity, carteira.Money) (carteira.Transaction, error),
) (carteira.Transaction, subcommands.ExitStatus) {

	day := carteira.Today()
	if date != "" {
		var err error
		day, err = carteira.ParseDate(date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return carteira.Transaction{}, subcommands.ExitUsageError
		}
	}
	assetClass, err := carteira.ParseAssetClass(class)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return carteira.Transaction{}, subcommands.ExitUsageError
	}
	unitPrice := carteira.M(price, assetClass.Currency())

	tx, err := build(day, symbol, assetClass, portfolio, carteira.Q(quantity), unitPrice)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return carteira.Transaction{}, subcommands.ExitUsageError
	}
	return tx, subcommands.ExitSuccess
}
