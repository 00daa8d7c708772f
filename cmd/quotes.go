package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/nkiseleva/moneta/quotes"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	settings string
	out      string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "fetch rouble rates for the settings' currencies" }
func (*ratesCmd) Usage() string {
	return `mona rates [-s <settings>] [-o <file>]

  Fetches the rouble rate for the first two currencies declared in the user
  settings document. Any failure yields an empty result; there is no
  partial rate list.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.settings, "s", defaultSettings, "Path to the user settings document")
	f.StringVar(&c.out, "o", "", "Also persist the rates to this file")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	gateway := quotes.NewGateway(c.settings)
	return emit(c.out, func() (any, error) { return gateway.CurrencyRates() })
}

// stocksCmd holds the flags for the 'stocks' subcommand.
type stocksCmd struct {
	settings string
	out      string
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "fetch quotes for the settings' stock symbols" }
func (*stocksCmd) Usage() string {
	return `mona stocks [-s <settings>] [-o <file>]

  Fetches a quote for every stock symbol declared in the user settings
  document. A symbol the quote service cannot answer for is reported as
  "Нет данных" without affecting the others.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.settings, "s", defaultSettings, "Path to the user settings document")
	f.StringVar(&c.out, "o", "", "Also persist the quotes to this file")
}

func (c *stocksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	gateway := quotes.NewGateway(c.settings)
	return emit(c.out, func() (any, error) { return gateway.StockPrices() })
}
