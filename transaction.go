package moneta

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is a typed view of one export row. The operation date is kept
// as the raw cell value: aggregations that need a time parse it themselves,
// so a malformed date only surfaces where it matters.
type Transaction struct {
	OperationDate string
	Amount        decimal.Decimal
	Category      string
	Description   string
	CardNumber    string
	Cashback      decimal.Decimal
}

// MarshalJSON emits the record with amounts as numbers.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("operation_date", t.OperationDate)
	w.Append("amount", jsonNumber(t.Amount.String()))
	w.Append("category", t.Category)
	w.Append("description", t.Description)
	w.Append("card_number", t.CardNumber)
	w.Append("cashback", jsonNumber(t.Cashback.String()))
	return w.MarshalJSON()
}

// Transactions converts the sheet rows into typed records. Amount and
// cashback cells must be numbers; an empty cashback cell reads as zero.
func (s *Sheet) Transactions() ([]Transaction, error) {
	records := make([]Transaction, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		amount, err := parseCell(s.Cell(i, ColAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad amount: %w", i+1, err)
		}
		cashback := decimal.Zero
		if c := s.Cell(i, ColCashback); c != "" {
			cashback, err = parseCell(c)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad cashback: %w", i+1, err)
			}
		}
		records = append(records, Transaction{
			OperationDate: s.Cell(i, ColDate),
			Amount:        amount,
			Category:      s.Cell(i, ColCategory),
			Description:   s.Cell(i, ColDescription),
			CardNumber:    s.Cell(i, ColCard),
			Cashback:      cashback,
		})
	}
	return records, nil
}

// parseCell reads a decimal from a cell, tolerating the localized comma
// decimal separator some exports use.
func parseCell(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return decimal.NewFromString(s)
}
