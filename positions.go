package carteira

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// NonPositiveQuantityError rejects a requested quantity that is zero
// or negative before it ever reaches the position check.
type NonPositiveQuantityError struct {
	Quantity Quantity
}

func (e *NonPositiveQuantityError) Error() string {
	return fmt.Sprintf("quantity must be strictly positive, got %s", e.Quantity)
}

// InsufficientPositionError rejects a sell whose quantity exceeds the
// current position for the (symbol, portfolio) pair.
type InsufficientPositionError struct {
	Symbol    string
	Portfolio string
	Requested Quantity
	Available Quantity
}

func (e *InsufficientPositionError) Error() string {
	return fmt.Sprintf("cannot sell %s of %s in portfolio %q, position is only %s",
		e.Requested, e.Symbol, e.Portfolio, e.Available)
}

// Position is the derived current holding for one (symbol, asset
// class) pair. It has no identity of its own: it is recomputed from
// the full ledger on every snapshot and never persisted.
//
// NetQuantity, NetCost and AveragePrice are always set. Market fields
// depend on external lookups and degrade row by row: when Priced is
// false the market price was unavailable; when Valued is false the
// BRL conversion was (USD row without an fx rate). Native-currency
// fields stay computed whenever Priced is true.
type Position struct {
	Symbol   string
	Class    AssetClass
	Currency string

	NetQuantity  Quantity
	NetCost      Money // sum of signed totals, native currency
	AveragePrice Money // NetCost / NetQuantity, native currency

	Priced      bool
	MarketPrice Money // native currency
	MarketValue Money // MarketPrice × NetQuantity, native currency

	Valued         bool
	MarketValueBRL Money
	InvestedBRL    Money
	ProfitBRL      Money
	ReturnPct      Percent
	HasReturn      bool // false when InvestedBRL is zero
}

// Snapshot is the result of folding the whole ledger once: positions
// partitioned by currency plus the distribution of market value per
// asset class.
type Snapshot struct {
	Groups       []CurrencyGroup
	Distribution []ClassWeight
}

// CurrencyGroup holds the positions of one currency, sorted by symbol
// ascending.
type CurrencyGroup struct {
	Currency  string
	Positions []Position
}

// ClassWeight is the aggregated BRL market value of one asset class.
type ClassWeight struct {
	Class          AssetClass
	MarketValueBRL Money
	Weight         Percent
}

// ComputeSnapshot folds the ledger into the current positions,
// enriched with market prices from quotes and converted to BRL with
// fx. The fold is stateless and idempotent: every call re-reads the
// whole ledger.
//
// A row whose price lookup fails is kept with its market fields
// unavailable; a missing fx rate degrades only the BRL-converted
// fields of USD rows. No lookup failure aborts the fold.
func ComputeSnapshot(l *Ledger, quotes QuoteProvider, fx FxRate) *Snapshot {
	type key struct {
		symbol string
		class  AssetClass
	}
	type group struct {
		quantity Quantity
		cost     Money
	}

	groups := make(map[key]group)
	for _, tx := range l.Transactions() {
		k := key{symbol: tx.Symbol, class: tx.Class}
		g := groups[k]
		g.quantity = g.quantity.Add(tx.Quantity)
		g.cost = g.cost.Add(tx.Total)
		groups[k] = g
	}

	var positions []Position
	for k, g := range groups {
		if !g.quantity.IsPositive() {
			// fully sold (or never net positive) positions disappear
			// from the current view; the ledger keeps their history.
			continue
		}
		currency := k.class.Currency()
		p := Position{
			Symbol:       k.symbol,
			Class:        k.class,
			Currency:     currency,
			NetQuantity:  g.quantity,
			NetCost:      M(g.cost.value, currency),
			AveragePrice: M(g.cost.value, currency).Div(g.quantity),
		}

		if q := quotes.Latest(k.symbol); q.OK {
			p.Priced = true
			p.MarketPrice = M(q.Price, currency)
			p.MarketValue = p.MarketPrice.Mul(p.NetQuantity)
		}

		rate, converts := decimal.NewFromInt(1), true
		if currency != BRL {
			rate, converts = fx.Rate, fx.OK
		}
		if converts {
			p.InvestedBRL = p.AveragePrice.Mul(p.NetQuantity).Convert(rate, BRL)
			if p.Priced {
				p.Valued = true
				p.MarketValueBRL = p.MarketValue.Convert(rate, BRL)
				p.ProfitBRL = p.MarketValueBRL.Sub(p.InvestedBRL)
				if !p.InvestedBRL.IsZero() {
					p.HasReturn = true
					ratio := p.ProfitBRL.value.Div(p.InvestedBRL.value)
					p.ReturnPct = Percent(ratio.InexactFloat64() * 100)
				}
			}
		}
		positions = append(positions, p)
	}

	snapshot := &Snapshot{}
	for _, currency := range []string{BRL, USD} {
		var cg CurrencyGroup
		cg.Currency = currency
		for _, p := range positions {
			if p.Currency == currency {
				cg.Positions = append(cg.Positions, p)
			}
		}
		if len(cg.Positions) == 0 {
			continue
		}
		sort.Slice(cg.Positions, func(i, j int) bool {
			return cg.Positions[i].Symbol < cg.Positions[j].Symbol
		})
		snapshot.Groups = append(snapshot.Groups, cg)
	}

	snapshot.Distribution = distribution(positions)
	return snapshot
}

// distribution is a secondary reduction over the computed positions:
// total BRL market value per asset class. Rows whose BRL value is
// unavailable do not contribute.
func distribution(positions []Position) []ClassWeight {
	totals := make(map[AssetClass]Money)
	grand := M(0, BRL)
	for _, p := range positions {
		if !p.Valued {
			continue
		}
		totals[p.Class] = totals[p.Class].Add(p.MarketValueBRL)
		grand = grand.Add(p.MarketValueBRL)
	}

	var weights []ClassWeight
	for _, class := range AssetClasses {
		total, ok := totals[class]
		if !ok {
			continue
		}
		w := ClassWeight{Class: class, MarketValueBRL: M(total.value, BRL)}
		if !grand.IsZero() {
			w.Weight = Percent(total.value.Div(grand.value).InexactFloat64() * 100)
		}
		weights = append(weights, w)
	}
	return weights
}

// CurrentPosition sums the signed quantities of all transactions for
// the given symbol (case-insensitive) within one portfolio tag.
//
// Note the asymmetry with ComputeSnapshot, which folds across all
// portfolio tags: sell validation is deliberately scoped to the
// portfolio the sale happens in.
func (l *Ledger) CurrentPosition(symbol, portfolio string) Quantity {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	var position Quantity
	for _, tx := range l.Transactions() {
		if tx.Symbol == symbol && tx.Portfolio == portfolio {
			position = position.Add(tx.Quantity)
		}
	}
	return position
}

// ValidateSell checks that a prospective sell of quantity units can be
// covered by the current position for (symbol, portfolio). It returns
// a *NonPositiveQuantityError for a zero or negative quantity, a
// *InsufficientPositionError when the position cannot cover it, and
// nil when the sell is acceptable. The ledger is never modified.
func (l *Ledger) ValidateSell(symbol, portfolio string, quantity Quantity) error {
	if !quantity.IsPositive() {
		return &NonPositiveQuantityError{Quantity: quantity}
	}
	available := l.CurrentPosition(symbol, portfolio)
	if quantity.GreaterThan(available) {
		return &InsufficientPositionError{
			Symbol:    strings.ToUpper(strings.TrimSpace(symbol)),
			Portfolio: portfolio,
			Requested: quantity,
			Available: available,
		}
	}
	return nil
}
