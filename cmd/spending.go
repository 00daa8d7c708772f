package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nkiseleva/moneta"
	"github.com/nkiseleva/moneta/renderer"
)

// spendingCmd holds the flags for the 'spending' subcommand.
type spendingCmd struct {
	file     string
	category string
	date     string
	out      string
	render   bool
}

func (*spendingCmd) Name() string     { return "spending" }
func (*spendingCmd) Synopsis() string { return "list a category's spending over the last three months" }
func (*spendingCmd) Usage() string {
	return `mona spending -category <name> [-f <export>] [-d <date>] [-o <file>] [-render]

  Lists the transactions of one category over the 90 days ending at the
  reference date.
`
}

func (c *spendingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", defaultExport, "Path to the transaction export")
	f.StringVar(&c.category, "category", "", "Category to report on")
	f.StringVar(&c.date, "d", "", "End of the 90-day window (defaults to now)")
	f.StringVar(&c.out, "o", "", "Also persist the report to this file")
	f.BoolVar(&c.render, "render", false, "Render the report as markdown instead of JSON")
}

func (c *spendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" {
		fmt.Fprintln(os.Stderr, "Error: missing -category")
		return subcommands.ExitUsageError
	}
	ref, err := parseRef(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	records, err := loadRecords(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	spent := moneta.SpendingByCategory(records, c.category, ref)
	if c.render {
		printMarkdown(renderer.SpendingMarkdown(c.category, spent))
		return subcommands.ExitSuccess
	}
	return emit(c.out, func() (any, error) {
		if spent == nil {
			return []moneta.Transaction{}, nil
		}
		return spent, nil
	})
}
