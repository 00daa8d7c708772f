// Package quotes reads the external market data of the main page: currency
// rates against the rouble and stock quotes for the symbols declared in the
// user settings document.
//
// The two paths fail differently, and that difference is contract: the
// currency path is all-or-nothing (any failure yields no rates at all),
// while the stock path records a "no data" note per symbol and keeps going.
package quotes

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/nkiseleva/moneta"
)

const (
	// exchangerate-api quotes a whole currency against all others in one call.
	defaultRatesURL = "https://api.exchangerate-api.com/v4/latest/%s"
	// Alpha Vantage GLOBAL_QUOTE, keyed per request.
	defaultQuoteURL = "https://www.alphavantage.co/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s"
)

// targetCurrency is the fixed currency every rate is quoted against.
const targetCurrency = "RUB"

// NoData is recorded as the price of a symbol the quote API had no answer for.
const NoData = "Нет данных"

// apiKeyVar names the environment variable carrying the Alpha Vantage key.
const apiKeyVar = "API_KEY_ALPHA"

// Gateway performs the outbound lookups. Endpoints and the HTTP client are
// fields so tests can point the gateway at a local server.
type Gateway struct {
	SettingsFile string
	Client       *http.Client
	RatesURL     string // printf pattern, one %s for the currency code
	QuoteURL     string // printf pattern, %s for the symbol then %s for the api key
	APIKey       string
}

// NewGateway returns a gateway against the public endpoints, with the API
// key taken from the environment. Outbound calls time out rather than block
// forever; there are no retries and no caching.
func NewGateway(settingsFile string) *Gateway {
	return &Gateway{
		SettingsFile: settingsFile,
		Client:       &http.Client{Timeout: 30 * time.Second},
		RatesURL:     defaultRatesURL,
		QuoteURL:     defaultQuoteURL,
		APIKey:       os.Getenv(apiKeyVar),
	}
}

// CurrencyRates looks up the rouble rate for the first two currencies of the
// settings document. Fewer than two declared currencies yields an empty
// result and no error; any settings, network or payload failure fails the
// whole call — there is no partial rate list.
func (g *Gateway) CurrencyRates() ([][]moneta.Rate, error) {
	settings, err := moneta.LoadSettings(g.SettingsFile)
	if err != nil {
		return nil, err
	}
	if len(settings.UserCurrencies) < 2 {
		log.Printf("settings declare %d currencies, want at least 2: no rates to fetch", len(settings.UserCurrencies))
		return [][]moneta.Rate{}, nil
	}

	rates := make([][]moneta.Rate, 0, 2)
	for _, code := range settings.UserCurrencies[:2] {
		rate, err := g.fetchRate(code)
		if err != nil {
			return nil, err
		}
		rates = append(rates, []moneta.Rate{{Currency: code, Rate: rate}})
	}
	log.Printf("fetched %d currency rates", len(rates))
	return rates, nil
}

// fetchRate reads one currency's quote against the target currency.
func (g *Gateway) fetchRate(code string) (float64, error) {
	addr := fmt.Sprintf(g.RatesURL, code)
	var jobj any
	if err := jwget(g.Client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("cannot fetch rates for %q: %w", code, err)
	}
	path := "$.rates." + targetCurrency
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("no %s rate for %q: %w", targetCurrency, code, err)
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("rate for %q is not a number: %v", code, jval)
	}
	return val, nil
}

// StockPrices looks up a quote for every symbol of the settings document.
// A symbol the API has no quote object for is reported with the [NoData]
// sentinel and does not abort the other symbols. Failures before the first
// request (settings loading) and transport errors fail the whole call.
func (g *Gateway) StockPrices() ([]moneta.StockPrice, error) {
	settings, err := moneta.LoadSettings(g.SettingsFile)
	if err != nil {
		return nil, err
	}
	if len(settings.UserStocks) == 0 {
		log.Printf("settings declare no stocks: nothing to fetch")
		return []moneta.StockPrice{}, nil
	}

	prices := make([]moneta.StockPrice, 0, len(settings.UserStocks))
	for _, symbol := range settings.UserStocks {
		addr := fmt.Sprintf(g.QuoteURL, symbol, g.APIKey)
		var jobj any
		if err := jwget(g.Client, addr, &jobj); err != nil {
			return nil, fmt.Errorf("cannot fetch quote for %q: %w", symbol, err)
		}

		// The quote payload nests the price under awkward keys, jsonpath
		// spares us a throwaway struct per vendor format.
		price := NoData
		if jval, err := jsonpath.Get(`$["Global Quote"]["05. price"]`, jobj); err == nil {
			if s, ok := jval.(string); ok {
				price = s
			}
		} else {
			log.Printf("no quote for %q", symbol)
		}
		prices = append(prices, moneta.StockPrice{Stock: symbol, Price: price})
	}
	log.Printf("fetched %d stock prices", len(prices))
	return prices, nil
}

// the gateway must satisfy the page assembler's provider contract.
var _ moneta.QuoteProvider = (*Gateway)(nil)
