package carteira

import (
	"iter"
	"sort"
	"strings"
)

// Ledger is the append-only list of transactions, the sole source of
// truth. Transactions keep their insertion order; any sorting is a
// view concern.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append appends transactions to this ledger. Validation happens
// before this call; the store itself accepts any well-formed record.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Clear discards all transactions. Irreversible; removing the
// persisted state is the caller's concern (see RemoveLedger).
func (l *Ledger) Clear() {
	l.transactions = l.transactions[:0]
}

// Transactions returns an iterator that yields each transaction in its
// insertion order. With no filter every transaction is yielded;
// otherwise a transaction is yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// History returns a copy of the transactions sorted by date descending,
// most recent first. Entries on the same day keep their insertion order.
func (l *Ledger) History() []Transaction {
	history := make([]Transaction, len(l.transactions))
	copy(history, l.transactions)
	sort.SliceStable(history, func(i, j int) bool {
		return history[j].Date.Before(history[i].Date)
	})
	return history
}

// BySymbol returns a predicate that filters transactions by symbol,
// case-insensitively.
func BySymbol(symbol string) func(Transaction) bool {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	return func(tx Transaction) bool {
		return tx.Symbol == symbol
	}
}

// ByPortfolio returns a predicate that filters transactions by
// portfolio tag.
func ByPortfolio(tag string) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.Portfolio == tag
	}
}
