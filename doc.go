// Package moneta turns a bank's transaction export into the summary a person
// actually wants to read: per-card spending with the cashback it earned, the
// five biggest operations of the month, cashback broken down by category, and
// the market data (currency rates, stock quotes) declared in the user's
// settings file.
//
// The export is a tabular file with localized column headers (see [LoadSheet]).
// It is the single source of truth and is never mutated: every operation in
// this package produces derived copies or derived summaries.
//
// The package is organized in three layers:
//
//   - [Sheet] and [Transaction] give raw and typed views over the export.
//   - Aggregations ([CashbackByCategory], [CardSummaries], [TopTransactions],
//     [FilterByDescription], [SpendingByCategory]) are pure functions over
//     those views.
//   - [MainPage] assembles everything, together with a [QuoteProvider] for
//     external market data, into the JSON payload of the main page.
package moneta
