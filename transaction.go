package carteira

import (
	"fmt"
	"strings"
)

// Operation identifies the kind of a ledger entry.
type Operation int

const (
	// Buy records a purchase; it carries a positive signed quantity.
	Buy Operation = iota
	// Sell records a sale; it carries a negative signed quantity.
	Sell
)

func (o Operation) String() string {
	switch o {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseOperation parses a string into an Operation.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "compra":
		return Buy, nil
	case "sell", "venda":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown operation: %q", s)
	}
}

// AssetClass identifies the category an asset belongs to. The class
// determines the asset's native currency, see [AssetClass.Currency].
type AssetClass int

const (
	Stock AssetClass = iota // Brazilian stock (ação)
	FII                     // Brazilian real-estate fund
	ETF
	ForeignStock
	BDR
	ForeignREIT
	FixedIncome
	Crypto
)

// AssetClasses lists all known classes in display order.
var AssetClasses = []AssetClass{Stock, FII, ETF, ForeignStock, BDR, ForeignREIT, FixedIncome, Crypto}

func (c AssetClass) String() string {
	switch c {
	case Stock:
		return "stock"
	case FII:
		return "fii"
	case ETF:
		return "etf"
	case ForeignStock:
		return "foreign-stock"
	case BDR:
		return "bdr"
	case ForeignREIT:
		return "foreign-reit"
	case FixedIncome:
		return "fixed-income"
	case Crypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock", "acao", "ação":
		return Stock, nil
	case "fii":
		return FII, nil
	case "etf":
		return ETF, nil
	case "foreign-stock":
		return ForeignStock, nil
	case "bdr":
		return BDR, nil
	case "foreign-reit", "reits":
		return ForeignREIT, nil
	case "fixed-income", "renda-fixa":
		return FixedIncome, nil
	case "crypto", "cripto":
		return Crypto, nil
	default:
		return 0, fmt.Errorf("unknown asset class: %q", s)
	}
}

// Transaction is a single immutable ledger entry. Quantity and Total
// are signed: positive for a Buy, negative for a Sell, so that summing
// either column over a set of entries yields the net position or cost.
//
// The invariant Total == Quantity × UnitPrice always holds; both
// constructors establish it and the codec verifies it on load.
type Transaction struct {
	Date      Date
	Operation Operation
	Symbol    string // uppercased asset identifier
	Class     AssetClass
	Portfolio string // free-form owner/bucket tag
	Quantity  Quantity
	UnitPrice Money // per unit, >= 0, in the asset's native currency
	Total     Money
}

// Currency returns the native currency the transaction is denominated in.
func (t Transaction) Currency() string { return t.Class.Currency() }

// Equal reports whether two transactions carry the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Operation == o.Operation &&
		t.Symbol == o.Symbol &&
		t.Class == o.Class &&
		t.Portfolio == o.Portfolio &&
		t.Quantity.Equal(o.Quantity) &&
		t.UnitPrice.Equal(o.UnitPrice) &&
		t.Total.Equal(o.Total)
}

// NewBuy creates a validated Buy transaction. The quantity must be
// strictly positive and the unit price non-negative; the signed total
// is derived.
func NewBuy(day Date, symbol string, class AssetClass, portfolio string, quantity Quantity, unitPrice Money) (Transaction, error) {
	return newTransaction(day, Buy, symbol, class, portfolio, quantity, unitPrice)
}

// NewSell creates a validated Sell transaction. The quantity is given
// positive ("sell 3 units") and stored negative along with the total.
//
// NewSell does not check the quantity against the current position,
// that is [Ledger.ValidateSell]'s job.
func NewSell(day Date, symbol string, class AssetClass, portfolio string, quantity Quantity, unitPrice Money) (Transaction, error) {
	return newTransaction(day, Sell, symbol, class, portfolio, quantity, unitPrice)
}

func newTransaction(day Date, op Operation, symbol string, class AssetClass, portfolio string, quantity Quantity, unitPrice Money) (Transaction, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Transaction{}, fmt.Errorf("transaction symbol is missing")
	}
	if !quantity.IsPositive() {
		return Transaction{}, &NonPositiveQuantityError{Quantity: quantity}
	}
	if unitPrice.IsNegative() {
		return Transaction{}, fmt.Errorf("unit price must not be negative, got %s", unitPrice)
	}
	if day.IsZero() {
		day = Today()
	}
	currency := class.Currency()
	if unitPrice.Currency() == "" {
		unitPrice = M(unitPrice.value, currency)
	} else if unitPrice.Currency() != currency {
		return Transaction{}, fmt.Errorf("unit price currency %s does not match %s asset currency %s", unitPrice.Currency(), class, currency)
	}

	if op == Sell {
		quantity = quantity.Neg()
	}
	return Transaction{
		Date:      day,
		Operation: op,
		Symbol:    symbol,
		Class:     class,
		Portfolio: strings.TrimSpace(portfolio),
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     unitPrice.Mul(quantity),
	}, nil
}
