// Package renderer turns computed snapshots and ledger views into
// markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/lucasvm/carteira"
)

// currencyTitle maps a currency code to its section title.
var currencyTitle = map[string]string{
	carteira.BRL: "Ativos em Reais",
	carteira.USD: "Ativos em Dólar",
}

// PositionsMarkdown renders the current positions, one section per
// currency, sorted by symbol. Fields whose lookup was unavailable
// render as "-", the row itself is always shown.
func PositionsMarkdown(s *carteira.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Posição Atual\n")

	if len(s.Groups) == 0 {
		fmt.Fprintf(&b, "\nNo open positions.\n")
		return b.String()
	}

	for _, group := range s.Groups {
		title, ok := currencyTitle[group.Currency]
		if !ok {
			title = "Ativos em " + group.Currency
		}
		fmt.Fprintf(&b, "\n## %s\n\n", title)
		fmt.Fprintln(&b, "| Ativo | Tipo | Qtde. | Preço Médio | Cotação | Val. Atual (BRL) | Lucro (BRL) | Rentabilidade |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")
		for _, p := range group.Positions {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
				p.Symbol,
				p.Class,
				p.NetQuantity,
				p.AveragePrice,
				marketPrice(p),
				marketValueBRL(p),
				profitBRL(p),
				returnPct(p),
			)
		}
	}
	return b.String()
}

func marketPrice(p carteira.Position) string {
	if !p.Priced {
		return "-"
	}
	return p.MarketPrice.String()
}

func marketValueBRL(p carteira.Position) string {
	if !p.Valued {
		return "-"
	}
	return p.MarketValueBRL.String()
}

func profitBRL(p carteira.Position) string {
	if !p.Valued {
		return "-"
	}
	return p.ProfitBRL.SignedString()
}

func returnPct(p carteira.Position) string {
	if !p.HasReturn {
		return "-"
	}
	return p.ReturnPct.SignedString()
}
