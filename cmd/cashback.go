package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/nkiseleva/moneta"
)

// cashbackCmd holds the flags for the 'cashback' subcommand.
type cashbackCmd struct {
	file  string
	year  int
	month int
	out   string
}

func (*cashbackCmd) Name() string     { return "cashback" }
func (*cashbackCmd) Synopsis() string { return "sum cashback per category for a given month" }
func (*cashbackCmd) Usage() string {
	return `mona cashback [-f <export>] [-year <year>] [-month <month>] [-o <file>]

  Sums the cashback field per category over the transactions of the given
  year and month. A transaction with an unparseable date fails the whole
  analysis.
`
}

func (c *cashbackCmd) SetFlags(f *flag.FlagSet) {
	now := time.Now()
	f.StringVar(&c.file, "f", defaultExport, "Path to the transaction export")
	f.IntVar(&c.year, "year", now.Year(), "Year to analyze")
	f.IntVar(&c.month, "month", int(now.Month()), "Month to analyze (1-12)")
	f.StringVar(&c.out, "o", "", "Also persist the summary to this file")
}

func (c *cashbackCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month < 1 || c.month > 12 {
		fmt.Fprintf(os.Stderr, "Error: month %d out of range\n", c.month)
		return subcommands.ExitUsageError
	}
	records, err := loadRecords(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit(c.out, func() (any, error) {
		return moneta.CashbackByCategory(records, c.year, time.Month(c.month))
	})
}
