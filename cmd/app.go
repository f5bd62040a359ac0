// Package cmd implements the CLI application to manage the carteira ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lucasvm/carteira"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")

	c.Register(&positionsCmd{}, "reports")
	c.Register(&distributionCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&clearCmd{}, "ledger")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application it has a very short lived lifecycle, so it is
// ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file containing transactions (CSV format).\n If missing it will read the environment variable CDC_LEDGER_FILE, then fall back to movimentacoes.csv")

// ledgerPath resolves the ledger file: flag first, then environment,
// then the default name the original spreadsheet used.
func ledgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if path := os.Getenv("CDC_LEDGER_FILE"); path != "" {
		return path
	}
	return "movimentacoes.csv"
}

// DecodeLedger loads the app ledger file, empty if it does not exist yet.
func DecodeLedger() (*carteira.Ledger, error) {
	return carteira.LoadLedger(ledgerPath())
}

// EncodeLedger persists the full ledger back to the app ledger file.
func EncodeLedger(ledger *carteira.Ledger) error {
	return carteira.SaveLedger(ledgerPath(), ledger)
}

// appendTransaction appends one validated transaction to the ledger
// file and reports the outcome.
func appendTransaction(ledger *carteira.Ledger, tx carteira.Transaction) subcommands.ExitStatus {
	ledger.Append(tx)
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger file %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s %s in %s\n", tx.Operation, tx.Quantity, tx.Symbol, ledgerPath())
	return subcommands.ExitSuccess
}
