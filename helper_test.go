package moneta

import (
	"testing"

	"github.com/shopspring/decimal"
)

// tx is a helper for tests to build a record from consts.
func tx(date, category string, amount, cashback float64) Transaction {
	return Transaction{
		OperationDate: date,
		Category:      category,
		Amount:        decimal.NewFromFloat(amount),
		Cashback:      decimal.NewFromFloat(cashback),
	}
}

// newSheet is a helper for tests to build a sheet that must be valid.
func newSheet(t *testing.T, cols []string, rows [][]string) *Sheet {
	t.Helper()
	s, err := NewSheet(cols, rows)
	if err != nil {
		t.Fatalf("invalid test sheet: %v", err)
	}
	return s
}
