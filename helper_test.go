package carteira

import "time"

// test helpers to build valid transactions without error plumbing.

func buy(day Date, symbol string, class AssetClass, portfolio string, quantity, unitPrice float64) Transaction {
	tx, err := NewBuy(day, symbol, class, portfolio, Q(quantity), M(unitPrice, class.Currency()))
	if err != nil {
		panic(err.Error())
	}
	return tx
}

func sell(day Date, symbol string, class AssetClass, portfolio string, quantity, unitPrice float64) Transaction {
	tx, err := NewSell(day, symbol, class, portfolio, Q(quantity), M(unitPrice, class.Currency()))
	if err != nil {
		panic(err.Error())
	}
	return tx
}

func day(d int) Date { return NewDate(2025, time.July, d) }
