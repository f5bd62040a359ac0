package carteira

// Supported currencies. Assets trade natively in one of these two,
// and all valuation is reported in BRL.
const (
	BRL = "BRL"
	USD = "USD"
)

// assetClassCurrency is the closed mapping from asset class to native
// currency. It is a lookup table on purpose: the currency of a row is
// never inferred from its symbol.
var assetClassCurrency = map[AssetClass]string{
	Stock:        BRL,
	FII:          BRL,
	ETF:          USD,
	ForeignStock: USD,
	BDR:          BRL,
	ForeignREIT:  USD,
	FixedIncome:  BRL,
	Crypto:       BRL,
}

// Currency returns the native currency assets of this class trade in.
func (c AssetClass) Currency() string {
	if cur, ok := assetClassCurrency[c]; ok {
		return cur
	}
	return BRL
}
