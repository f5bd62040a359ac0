package carteira

import (
	"encoding/csv"
	"fmt"
	"io"
)

// The ledger is persisted as a tabular CSV file with a fixed column
// schema, one row per transaction in insertion order. Writing the
// in-memory ledger and reloading it reproduces the exact same
// transaction sequence: quantities and prices are written as decimal
// strings, not floats.
var ledgerColumns = []string{
	"Date", "Operation", "Symbol", "AssetClass", "Portfolio", "Quantity", "UnitPrice", "Total",
}

// EncodeLedger writes the ledger to w in the fixed-column CSV format.
func EncodeLedger(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerColumns); err != nil {
		return fmt.Errorf("cannot write ledger header: %w", err)
	}
	for i, tx := range l.Transactions() {
		record := []string{
			tx.Date.String(),
			tx.Operation.String(),
			tx.Symbol,
			tx.Class.String(),
			tx.Portfolio,
			tx.Quantity.String(),
			tx.UnitPrice.value.String(),
			tx.Total.value.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write ledger row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeLedger reads a ledger from the fixed-column CSV format. Any
// malformed header, row or value is an error: the caller fails fast
// rather than silently dropping records.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(ledgerColumns)

	header, err := cr.Read()
	if err == io.EOF {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger header: %w", err)
	}
	for i, col := range ledgerColumns {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected ledger column %q, want %q", header[i], col)
		}
	}

	ledger := NewLedger()
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read ledger line %d: %w", line, err)
		}
		tx, err := decodeTransaction(record)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction on line %d: %w", line, err)
		}
		ledger.Append(tx)
	}
	return ledger, nil
}

func decodeTransaction(record []string) (Transaction, error) {
	day, err := ParseDate(record[0])
	if err != nil {
		return Transaction{}, err
	}
	op, err := ParseOperation(record[1])
	if err != nil {
		return Transaction{}, err
	}
	class, err := ParseAssetClass(record[3])
	if err != nil {
		return Transaction{}, err
	}
	quantity, err := ParseQuantity(record[5])
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid quantity %q: %w", record[5], err)
	}
	currency := class.Currency()
	unitPrice, err := ParseMoney(record[6], currency)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid unit price %q: %w", record[6], err)
	}
	total, err := ParseMoney(record[7], currency)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid total %q: %w", record[7], err)
	}

	tx := Transaction{
		Date:      day,
		Operation: op,
		Symbol:    record[2],
		Class:     class,
		Portfolio: record[4],
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Total:     total,
	}
	if quantity.IsZero() {
		return Transaction{}, fmt.Errorf("quantity must not be zero")
	}
	if unitPrice.IsNegative() {
		return Transaction{}, fmt.Errorf("unit price must not be negative, got %s", unitPrice)
	}
	if want := unitPrice.Mul(quantity); !total.Equal(want) {
		return Transaction{}, fmt.Errorf("total %s does not match quantity × unit price = %s", total, want)
	}
	return tx, nil
}
