package renderer

import (
	"fmt"

	"github.com/nkiseleva/moneta"
)

// the export's amounts are rouble amounts.
const reportCurrency = "RUB"

// pageView is the main-page report with every amount pre-formatted for
// display. Templates stay free of formatting logic.
type pageView struct {
	Greeting string
	Cards    []cardRow
	Top      []topRow
	Rates    []rateRow
	Stocks   []moneta.StockPrice
}

type cardRow struct {
	LastDigits string
	Spent      string
	Cashback   int64
}

type topRow struct {
	Date        string
	Amount      string
	Category    string
	Description string
}

type rateRow struct {
	Currency string
	Rate     string
}

// MainPageMarkdown renders the assembled page report as a markdown document.
func MainPageMarkdown(r *moneta.PageReport) string {
	view := pageView{Greeting: r.Greeting, Stocks: r.Stocks}
	for _, c := range r.Cards {
		view.Cards = append(view.Cards, cardRow{
			LastDigits: c.LastDigits,
			Spent:      moneta.M(c.TotalSpent, reportCurrency).String(),
			Cashback:   c.Cashback,
		})
	}
	for _, e := range r.Top {
		view.Top = append(view.Top, topRow{
			Date:        e.Date,
			Amount:      moneta.M(e.Amount, reportCurrency).String(),
			Category:    e.Category,
			Description: e.Description,
		})
	}
	for _, pair := range r.Rates {
		for _, rate := range pair {
			view.Rates = append(view.Rates, rateRow{
				Currency: rate.Currency,
				Rate:     fmt.Sprintf("%.2f", rate.Rate),
			})
		}
	}

	partials := map[string]string{
		"mainpage_cards":  "mainpage_cards.md",
		"mainpage_top":    "mainpage_top.md",
		"mainpage_market": "mainpage_market.md",
	}
	return renderTemplate("mainpage", "mainpage.md", partials, view)
}
