package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/nkiseleva/moneta"
	"github.com/nkiseleva/moneta/advisor"
	"google.golang.org/genai"
)

// adviseCmd holds the flags for the 'advise' subcommand.
type adviseCmd struct {
	file  string
	year  int
	month int
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask Gemini for a comment on the month's cashback" }
func (*adviseCmd) Usage() string {
	return `mona advise [-f <export>] [-year <year>] [-month <month>]

  Sends the month's cashback-by-category summary to Gemini and prints a
  short savings note. Requires Gemini credentials in the environment.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	now := time.Now()
	f.StringVar(&c.file, "f", defaultExport, "Path to the transaction export")
	f.IntVar(&c.year, "year", now.Year(), "Year to analyze")
	f.IntVar(&c.month, "month", int(now.Month()), "Month to analyze (1-12)")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := loadRecords(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	summary, err := moneta.CashbackByCategory(records, c.year, time.Month(c.month))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	a := advisor.New()
	if err := a.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the advisor:", err)
		return subcommands.ExitFailure
	}
	note, err := a.Advise(ctx, summary, c.year, time.Month(c.month))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(note)
	return subcommands.ExitSuccess
}
