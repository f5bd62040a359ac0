package renderer

import (
	"fmt"
	"strings"

	"github.com/lucasvm/carteira"
)

// HistoryMarkdown renders the full ledger, most recent first.
func HistoryMarkdown(txs []carteira.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Histórico de Movimentações\n\n")

	if len(txs) == 0 {
		fmt.Fprintln(&b, "The ledger is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Data | Operação | Ativo | Tipo | Carteira | Qtde. | Preço Unit. | Total |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|---:|---:|---:|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			tx.Operation,
			tx.Symbol,
			tx.Class,
			tx.Portfolio,
			tx.Quantity,
			tx.UnitPrice,
			tx.Total,
		)
	}
	return b.String()
}
