package moneta

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CashbackSummary accumulates cashback per category. Categories keep the
// order of their first occurrence, so the output is deterministic for a
// given record order.
type CashbackSummary struct {
	categories []string
	totals     map[string]decimal.Decimal
}

// Categories returns the category names in first-occurrence order.
func (s *CashbackSummary) Categories() []string { return s.categories }

// Total returns the accumulated cashback for a category.
func (s *CashbackSummary) Total(category string) decimal.Decimal { return s.totals[category] }

// Len returns the number of distinct categories.
func (s *CashbackSummary) Len() int { return len(s.categories) }

func (s *CashbackSummary) add(category string, cashback decimal.Decimal) {
	if _, ok := s.totals[category]; !ok {
		s.categories = append(s.categories, category)
	}
	s.totals[category] = s.totals[category].Add(cashback)
}

// MarshalJSON renders the summary as an object whose keys follow the
// first-occurrence category order.
func (s *CashbackSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, c := range s.categories {
		w.Append(c, jsonNumber(s.totals[c].String()))
	}
	return w.MarshalJSON()
}

// CashbackByCategory sums the cashback field per category over the records
// whose operation date falls in the given year and month.
//
// It is deliberately strict: a single unparseable operation date fails the
// whole call. The page assembler is fail-soft, this analyzer is not.
// Records outside the window, or an empty input, yield an empty summary.
func CashbackByCategory(records []Transaction, year int, month time.Month) (*CashbackSummary, error) {
	summary := &CashbackSummary{totals: make(map[string]decimal.Decimal)}
	for _, tx := range records {
		on, err := ParseStamp(tx.OperationDate)
		if err != nil {
			return nil, fmt.Errorf("cashback analysis for %d-%02d: %w", year, month, err)
		}
		if on.Year() != year || on.Month() != month {
			continue
		}
		summary.add(tx.Category, tx.Cashback)
	}
	return summary, nil
}
