package quotes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// writeSettings dumps a settings document into a temp dir and returns its path.
func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_settings.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// testGateway points a gateway at local servers instead of the public APIs.
func testGateway(settingsFile string, rates, quote *httptest.Server) *Gateway {
	g := NewGateway(settingsFile)
	if rates != nil {
		g.RatesURL = rates.URL + "/latest/%s"
	}
	if quote != nil {
		g.QuoteURL = quote.URL + "/query?symbol=%s&apikey=%s"
	}
	g.APIKey = "test-key"
	return g
}

func TestCurrencyRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/latest/USD":
			fmt.Fprint(w, `{"base":"USD","rates":{"RUB":90.5,"EUR":0.92}}`)
		case "/latest/EUR":
			fmt.Fprint(w, `{"base":"EUR","rates":{"RUB":98.1}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	settings := writeSettings(t, `{"user_currencies":["USD","EUR"],"user_stocks":[]}`)
	rates, err := testGateway(settings, server, nil).CurrencyRates()
	if err != nil {
		t.Fatal(err)
	}
	if len(rates) != 2 {
		t.Fatalf("got %d rate groups, want 2", len(rates))
	}
	if len(rates[0]) != 1 || rates[0][0].Currency != "USD" || rates[0][0].Rate != 90.5 {
		t.Errorf("USD group = %v, want one RUB rate of 90.5", rates[0])
	}
	if rates[1][0].Currency != "EUR" || rates[1][0].Rate != 98.1 {
		t.Errorf("EUR group = %v, want one RUB rate of 98.1", rates[1])
	}
}

// Fewer than two declared currencies is not an error, just nothing to fetch.
func TestCurrencyRatesTooFewCurrencies(t *testing.T) {
	settings := writeSettings(t, `{"user_currencies":["USD"],"user_stocks":[]}`)
	rates, err := testGateway(settings, nil, nil).CurrencyRates()
	if err != nil {
		t.Fatal(err)
	}
	if len(rates) != 0 {
		t.Errorf("got %v, want an empty result", rates)
	}
}

// Any failure mid-fetch yields no rates at all.
func TestCurrencyRatesAllOrNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/latest/USD" {
			fmt.Fprint(w, `{"base":"USD","rates":{"RUB":90.5}}`)
			return
		}
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	settings := writeSettings(t, `{"user_currencies":["USD","EUR"],"user_stocks":[]}`)
	rates, err := testGateway(settings, server, nil).CurrencyRates()
	if err == nil {
		t.Fatal("expected an error when one currency fails")
	}
	if rates != nil {
		t.Errorf("got %v on error, want nil", rates)
	}
}

func TestCurrencyRatesMissingSettings(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.json")
	if _, err := testGateway(missing, nil, nil).CurrencyRates(); err == nil {
		t.Fatal("expected an error for missing settings")
	}
}

func TestStockPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbol") {
		case "AAPL":
			fmt.Fprint(w, `{"Global Quote":{"01. symbol":"AAPL","05. price":"210.4000"}}`)
		default:
			// the API answers an empty object for unknown symbols
			fmt.Fprint(w, `{}`)
		}
	}))
	defer server.Close()

	settings := writeSettings(t, `{"user_currencies":[],"user_stocks":["AAPL","NOPE"]}`)
	prices, err := testGateway(settings, nil, server).StockPrices()
	if err != nil {
		t.Fatal(err)
	}
	if len(prices) != 2 {
		t.Fatalf("got %d prices, want 2", len(prices))
	}
	if prices[0].Stock != "AAPL" || prices[0].Price != "210.4000" {
		t.Errorf("AAPL = %v, want price 210.4000", prices[0])
	}
	if prices[1].Stock != "NOPE" || prices[1].Price != NoData {
		t.Errorf("NOPE = %v, want the no-data note", prices[1])
	}
}

func TestStockPricesNoStocks(t *testing.T) {
	settings := writeSettings(t, `{"user_currencies":[],"user_stocks":[]}`)
	prices, err := testGateway(settings, nil, nil).StockPrices()
	if err != nil {
		t.Fatal(err)
	}
	if len(prices) != 0 {
		t.Errorf("got %v, want an empty result", prices)
	}
}

// Transport failures abort the whole call, unlike a missing quote object.
func TestStockPricesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	settings := writeSettings(t, `{"user_currencies":[],"user_stocks":["AAPL"]}`)
	prices, err := testGateway(settings, nil, server).StockPrices()
	if err == nil {
		t.Fatal("expected an error on transport failure")
	}
	if prices != nil {
		t.Errorf("got %v on error, want nil", prices)
	}
}
