package renderer

import (
	"strings"
	"testing"

	"github.com/nkiseleva/moneta"
	"github.com/shopspring/decimal"
)

func TestMainPageMarkdown(t *testing.T) {
	report := &moneta.PageReport{
		Greeting: "Добрый день",
		Cards: []moneta.CardSummary{
			{LastDigits: "3456", TotalSpent: decimal.NewFromInt(1000), Cashback: 10},
		},
		Top: []moneta.TopEntry{
			{Date: "15.06.2023", Amount: decimal.NewFromInt(1500), Category: "Electronics", Description: "Headphones"},
		},
		Rates: [][]moneta.Rate{
			{{Currency: "USD", Rate: 90.5}},
			{{Currency: "EUR", Rate: 98.1}},
		},
		Stocks: []moneta.StockPrice{{Stock: "AAPL", Price: "210.40"}},
	}

	md := MainPageMarkdown(report)
	for _, want := range []string{
		"# Добрый день",
		"## Карты",
		"*3456",
		"| 10 |",
		"## Топ-5 операций",
		"| 15.06.2023 |",
		"Headphones",
		"## Курсы валют",
		"USD: 90.50",
		"EUR: 98.10",
		"## Акции",
		"AAPL: 210.40",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMainPageMarkdownEmptyCards(t *testing.T) {
	md := MainPageMarkdown(&moneta.PageReport{Greeting: "Доброе утро"})
	if !strings.Contains(md, "Нет операций по картам") {
		t.Errorf("markdown missing the empty-cards note:\n%s", md)
	}
	if strings.Contains(md, "## Курсы валют") || strings.Contains(md, "## Акции") {
		t.Errorf("empty market sections must be omitted:\n%s", md)
	}
}

func TestSpendingMarkdown(t *testing.T) {
	records := []moneta.Transaction{
		{OperationDate: "2023-06-15 10:00:00", Amount: decimal.NewFromInt(100), Description: "Market"},
		{OperationDate: "2023-06-16 11:00:00", Amount: decimal.NewFromInt(200), Description: "Bakery"},
	}
	md := SpendingMarkdown("Groceries", records)
	for _, want := range []string{
		"# Расходы: Groceries",
		"Market",
		"Bakery",
		"**Итого**:",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestSpendingMarkdownEmpty(t *testing.T) {
	md := SpendingMarkdown("Groceries", nil)
	if !strings.Contains(md, "Нет операций") {
		t.Errorf("markdown missing the empty note:\n%s", md)
	}
}
