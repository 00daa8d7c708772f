package moneta

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// topCount is how many transactions the main page shows.
const topCount = 5

// TopEntry is one of the highest-amount transactions of the filtered set.
type TopEntry struct {
	Date        string
	Amount      decimal.Decimal
	Category    string
	Description string
}

func (e TopEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Append("amount", jsonNumber(e.Amount.String()))
	w.Append("category", e.Category)
	w.Append("description", e.Description)
	return w.MarshalJSON()
}

// TopTransactions selects the five highest-amount rows of the sheet.
//
// The selection is all-or-nothing: if a required column is missing, or any
// row's operation date does not parse, it returns an empty list together
// with the error. Callers are expected to treat the empty list as a degraded
// result rather than a fatal condition.
//
// Ties on amount keep the original row order. Dates are reformatted as
// DD.MM.YYYY.
func TopTransactions(s *Sheet) ([]TopEntry, error) {
	var missing []string
	for _, col := range []string{ColDate, ColAmount, ColCategory, ColDescription} {
		if !s.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("export is missing required columns %q", missing)
	}

	type row struct {
		on     time.Time
		amount decimal.Decimal
		index  int
	}
	rows := make([]row, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		on, err := ParseStamp(s.Cell(i, ColDate))
		if err != nil {
			// one bad date invalidates the whole selection
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		amount, err := parseCell(s.Cell(i, ColAmount))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad amount: %w", i+1, err)
		}
		rows = append(rows, row{on: on, amount: amount, index: i})
	}

	sort.SliceStable(rows, func(a, b int) bool { return rows[a].amount.GreaterThan(rows[b].amount) })
	if len(rows) > topCount {
		rows = rows[:topCount]
	}

	entries := make([]TopEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, TopEntry{
			Date:        r.on.Format(ReportDateFormat),
			Amount:      r.amount,
			Category:    s.Cell(r.index, ColCategory),
			Description: s.Cell(r.index, ColDescription),
		})
	}
	log.Printf("selected top %d transactions out of %d rows", len(entries), s.Len())
	return entries, nil
}
