package moneta

import (
	"log"

	"github.com/shopspring/decimal"
)

// CardSummary aggregates spend and estimated cashback for one payment card.
// Only the masked suffix of the card number is retained.
type CardSummary struct {
	LastDigits string
	TotalSpent decimal.Decimal
	Cashback   int64
}

// MarshalJSON emits the summary with the amount as a number rounded to two
// decimal places.
func (c CardSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("last_digits", c.LastDigits)
	w.Append("total_spent", jsonNumber(c.TotalSpent.StringFixed(2)))
	w.Append("cashback", c.Cashback)
	return w.MarshalJSON()
}

// CardSummaries groups records by card number and computes, per card, the
// total amount spent and a cashback estimate of one unit per full hundred
// spent. Cards appear in the order they are first seen; records without a
// card number are left out.
func CardSummaries(records []Transaction) []CardSummary {
	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, tx := range records {
		if tx.CardNumber == "" {
			continue
		}
		if _, ok := totals[tx.CardNumber]; !ok {
			order = append(order, tx.CardNumber)
		}
		totals[tx.CardNumber] = totals[tx.CardNumber].Add(tx.Amount)
	}

	summaries := make([]CardSummary, 0, len(order))
	for _, card := range order {
		total := totals[card]
		s := CardSummary{
			LastDigits: maskCard(card),
			TotalSpent: total,
			// floor, so negative totals round down like positive ones round off
			Cashback: total.Div(decimal.NewFromInt(100)).Floor().IntPart(),
		}
		summaries = append(summaries, s)
		log.Printf("card %s: spent %s, cashback %d", s.LastDigits, total.StringFixed(2), s.Cashback)
	}
	return summaries
}

// maskCard keeps the last four characters of a card number.
func maskCard(card string) string {
	r := []rune(card)
	if len(r) <= 4 {
		return card
	}
	return string(r[len(r)-4:])
}
