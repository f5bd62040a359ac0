package renderer

import (
	"fmt"
	"strings"

	"github.com/lucasvm/carteira"
)

// DistributionMarkdown renders the market value per asset class, in
// BRL, with the weight of each class in the valued total.
func DistributionMarkdown(s *carteira.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Distribuição por Tipo de Ativo\n\n")

	if len(s.Distribution) == 0 {
		fmt.Fprintln(&b, "Nothing to distribute: no position has an available market value.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Tipo | Val. Atual (BRL) | Peso |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, w := range s.Distribution {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", w.Class, w.MarketValueBRL, w.Weight)
	}
	return b.String()
}
