package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nkiseleva/moneta"
)

// cardsCmd holds the flags for the 'cards' subcommand.
type cardsCmd struct {
	file string
	date string
	out  string
}

func (*cardsCmd) Name() string     { return "cards" }
func (*cardsCmd) Synopsis() string { return "summarize spending and cashback per card" }
func (*cardsCmd) Usage() string {
	return `mona cards [-f <export>] [-d <date>] [-o <file>]

  Groups the current month's transactions by card and reports total spend
  and the cashback estimate per card. Card numbers are masked to their last
  four digits.
`
}

func (c *cardsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", defaultExport, "Path to the transaction export")
	f.StringVar(&c.date, "d", "", "Reference date for the month window (defaults to now)")
	f.StringVar(&c.out, "o", "", "Also persist the summary to this file")
}

func (c *cardsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ref, err := parseRef(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	sheet, err := moneta.LoadSheet(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit(c.out, func() (any, error) {
		records, err := sheet.MonthOf(ref).Transactions()
		if err != nil {
			return nil, err
		}
		return moneta.CardSummaries(records), nil
	})
}
