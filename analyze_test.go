package moneta

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleRecords() []Transaction {
	return []Transaction{
		tx("2023-06-15", "Groceries", 100, 10),
		tx("2023-06-15", "Groceries", 50, 5),
		tx("2023-06-16", "Entertainment", 200, 15),
		tx("2023-07-15", "Groceries", 70, 7),
	}
}

func TestCashbackByCategory(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  map[string]float64
	}{
		{2023, time.June, map[string]float64{"Groceries": 15, "Entertainment": 15}},
		{2023, time.July, map[string]float64{"Groceries": 7}},
		{2022, time.May, map[string]float64{}},
	}
	for _, c := range cases {
		summary, err := CashbackByCategory(sampleRecords(), c.year, c.month)
		if err != nil {
			t.Fatalf("CashbackByCategory(%d, %d): %v", c.year, c.month, err)
		}
		if summary.Len() != len(c.want) {
			t.Errorf("CashbackByCategory(%d, %d): got %d categories, want %d", c.year, c.month, summary.Len(), len(c.want))
		}
		for category, total := range c.want {
			if !summary.Total(category).Equal(decimal.NewFromFloat(total)) {
				t.Errorf("CashbackByCategory(%d, %d): %s = %s, want %v", c.year, c.month, category, summary.Total(category), total)
			}
		}
	}
}

func TestCashbackByCategoryOrder(t *testing.T) {
	summary, err := CashbackByCategory(sampleRecords(), 2023, time.June)
	if err != nil {
		t.Fatal(err)
	}
	got := summary.Categories()
	want := []string{"Groceries", "Entertainment"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("categories in %v, want first-occurrence order %v", got, want)
	}

	// JSON keys follow the same order.
	content, err := json.Marshal(summary)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != `{"Groceries":15,"Entertainment":15}` {
		t.Errorf("unexpected summary JSON: %s", content)
	}
}

// TestCashbackByCategoryStrict asserts that a single bad date fails the whole
// analysis instead of being skipped.
func TestCashbackByCategoryStrict(t *testing.T) {
	records := append(sampleRecords(), tx("yesterday", "Groceries", 10, 1))
	if _, err := CashbackByCategory(records, 2023, time.June); err == nil {
		t.Error("expected an error for an unparseable operation date")
	}
}

func TestCashbackByCategoryEmpty(t *testing.T) {
	summary, err := CashbackByCategory(nil, 2023, time.June)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Len() != 0 {
		t.Errorf("empty input should give an empty summary, got %v", summary.Categories())
	}
}

// TestCashbackDecomposition checks that per-category sums add up to the total
// cashback of the records inside the window.
func TestCashbackDecomposition(t *testing.T) {
	records := sampleRecords()
	summary, err := CashbackByCategory(records, 2023, time.June)
	if err != nil {
		t.Fatal(err)
	}
	var byCategory decimal.Decimal
	for _, c := range summary.Categories() {
		byCategory = byCategory.Add(summary.Total(c))
	}
	var total decimal.Decimal
	for _, r := range records {
		on, err := ParseStamp(r.OperationDate)
		if err != nil {
			t.Fatal(err)
		}
		if on.Year() == 2023 && on.Month() == time.June {
			total = total.Add(r.Cashback)
		}
	}
	if !byCategory.Equal(total) {
		t.Errorf("category sums %s != window total %s", byCategory, total)
	}
}
