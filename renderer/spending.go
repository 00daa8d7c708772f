package renderer

import (
	"github.com/nkiseleva/moneta"
	"github.com/shopspring/decimal"
)

// spendingView lists one category's transactions with a grand total.
type spendingView struct {
	Category string
	Rows     []spendingRow
	Total    string
}

type spendingRow struct {
	Date        string
	Amount      string
	Description string
}

// SpendingMarkdown renders a category spending report as markdown.
func SpendingMarkdown(category string, records []moneta.Transaction) string {
	view := spendingView{Category: category}
	total := decimal.Zero
	for _, tx := range records {
		total = total.Add(tx.Amount)
		view.Rows = append(view.Rows, spendingRow{
			Date:        tx.OperationDate,
			Amount:      moneta.M(tx.Amount, reportCurrency).String(),
			Description: tx.Description,
		})
	}
	view.Total = moneta.M(total, reportCurrency).String()
	return renderTemplate("spending", "spending.md", nil, view)
}
