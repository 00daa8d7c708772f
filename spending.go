package moneta

import (
	"log"
	"time"
)

// spendingWindow is how far back the category spending report looks.
const spendingWindow = 90 * 24 * time.Hour

// SpendingByCategory returns the records of the given category whose
// operation date falls within the 90 days ending at ref. A zero ref means
// "now".
//
// Unlike [CashbackByCategory] this report is fail-soft: a record with an
// unparseable date degrades the whole report to an empty result.
func SpendingByCategory(records []Transaction, category string, ref time.Time) []Transaction {
	if ref.IsZero() {
		ref = time.Now()
	}
	start := ref.Add(-spendingWindow)

	var out []Transaction
	for _, tx := range records {
		on, err := ParseStamp(tx.OperationDate)
		if err != nil {
			log.Printf("spending by category %q: %v", category, err)
			return nil
		}
		if on.Before(start) || on.After(ref) {
			continue
		}
		if tx.Category == category {
			out = append(out, tx)
		}
	}
	log.Printf("spending by category %q: %d records since %s", category, len(out), start.Format(StampFormat))
	return out
}
