package moneta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

// QuoteProvider supplies the external market data of the main page. Both
// methods may return an empty value together with an error; the page
// assembler logs the error and degrades to the empty value.
type QuoteProvider interface {
	CurrencyRates() ([][]Rate, error)
	StockPrices() ([]StockPrice, error)
}

// Rate is one currency quoted against the rouble.
type Rate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// StockPrice is one stock quote. Price stays a string: the quote API reports
// it as text, and a symbol without data carries a sentinel note instead.
type StockPrice struct {
	Stock string `json:"stock"`
	Price string `json:"price"`
}

// PageReport is the assembled main-page payload. Every date inside it is a
// formatted string; no raw timestamp ever reaches the emitted JSON.
type PageReport struct {
	Greeting string
	Cards    []CardSummary
	Top      []TopEntry
	Rates    [][]Rate
	Stocks   []StockPrice
}

func (r *PageReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("greeting", r.Greeting)
	w.Append("cards", emptyNotNull(r.Cards))
	w.Append("top_transactions", emptyNotNull(r.Top))
	if r.Rates == nil {
		r.Rates = [][]Rate{}
	}
	w.Append("currency_rates", r.Rates)
	w.Append("stock_prices", emptyNotNull(r.Stocks))
	return w.MarshalJSON()
}

// emptyNotNull keeps degraded results as [] rather than null in the payload.
func emptyNotNull[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Greeting returns the salutation for the given moment of the day.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case 6 <= h && h < 12:
		return "Доброе утро"
	case 12 <= h && h < 18:
		return "Добрый день"
	case 18 <= h && h < 22:
		return "Добрый вечер"
	default:
		return "Доброй ночи"
	}
}

// BuildPage assembles the main-page report from the export, scoped to the
// rows whose operation date is on or after the first day of ref's month.
// Rows whose date cannot be parsed fall outside the window.
//
// The greeting is keyed by current wall-clock time, not by ref: ref scopes
// the data, the salutation addresses the reader now.
func BuildPage(s *Sheet, ref time.Time, quotes QuoteProvider) (*PageReport, error) {
	if !s.HasColumn(ColDate) {
		return nil, fmt.Errorf("export is missing the %q column", ColDate)
	}
	// The derived sheet still carries dates as raw cell strings, so every
	// later step works on string form only.
	month := s.MonthOf(ref)
	log.Printf("main page: %d of %d rows in the month of %s", month.Len(), s.Len(), ref.Format(dayFormat))

	records, err := month.Transactions()
	if err != nil {
		return nil, err
	}

	top, err := TopTransactions(month)
	if err != nil {
		// degraded but not fatal, the page ships with an empty list
		log.Printf("main page: top transactions unavailable: %v", err)
	}

	rates, err := quotes.CurrencyRates()
	if err != nil {
		log.Printf("main page: currency rates unavailable: %v", err)
	}
	stocks, err := quotes.StockPrices()
	if err != nil {
		log.Printf("main page: stock prices unavailable: %v", err)
	}

	return &PageReport{
		Greeting: Greeting(time.Now()),
		Cards:    CardSummaries(records),
		Top:      top,
		Rates:    rates,
		Stocks:   stocks,
	}, nil
}

// pageError is the single-field payload shipped when assembly fails.
const pageError = `{
    "error": "Ошибка генерации ответа для главной страницы"
}`

// MainPage renders the main-page payload as pretty-printed UTF-8 JSON.
// It is the single place failures are swallowed: any error or panic in the
// assembly pipeline is logged and replaced with an error payload, never
// re-raised to the caller.
func MainPage(s *Sheet, ref time.Time, quotes QuoteProvider) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("main page: %v", r)
			out = pageError
		}
	}()

	report, err := BuildPage(s, ref, quotes)
	if err != nil {
		log.Printf("main page: %v", err)
		return pageError
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // keep the localized payload readable as-is
	enc.SetIndent("", "    ")
	if err := enc.Encode(report); err != nil {
		log.Printf("main page: %v", err)
		return pageError
	}
	return strings.TrimRight(buf.String(), "\n")
}
