// Package carteira provides the core logic for tracking a manually
// entered investment portfolio. It is designed to be local-first and
// auditable: the only persisted state is an append-only CSV ledger of
// buy/sell transactions, and everything else is derived from it.
//
// The core functionalities include:
//   - Ledger Store: an append-only, insertion-ordered record of signed
//     transactions persisted as a fixed-column CSV file.
//   - Position Engine: a stateless fold of the full ledger into the
//     current positions per (symbol, asset class), enriched with live
//     market prices and USD/BRL conversion, plus the validation that
//     rejects a sell exceeding the current holding.
//   - Market Data: a price/fx lookup capability that degrades to
//     "unavailable" instead of failing, so one dead symbol never
//     aborts a whole snapshot.
//
// This package serves as the foundational logic for the `cdc`
// command-line tool.
package carteira
