package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nkiseleva/moneta"
)

// topCmd holds the flags for the 'top' subcommand.
type topCmd struct {
	file string
	out  string
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "show the five highest-amount transactions" }
func (*topCmd) Usage() string {
	return `mona top [-f <export>] [-o <file>]

  Selects the five highest-amount transactions of the export. The selection
  is all-or-nothing: a missing required column or a single bad date yields
  an empty list.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", defaultExport, "Path to the transaction export")
	f.StringVar(&c.out, "o", "", "Also persist the selection to this file")
}

func (c *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sheet, err := moneta.LoadSheet(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	entries, err := moneta.TopTransactions(sheet)
	if err != nil {
		// degraded result by contract: report the cause, ship the empty list
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return emit(c.out, func() (any, error) {
		if entries == nil {
			return []moneta.TopEntry{}, nil
		}
		return entries, nil
	})
}
