package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nkiseleva/moneta"
)

// countCmd holds the flags for the 'count' subcommand.
type countCmd struct {
	file string
	out  string
}

func (*countCmd) Name() string     { return "count" }
func (*countCmd) Synopsis() string { return "count transactions mentioning each category label" }
func (*countCmd) Usage() string {
	return `mona count [-f <export>] [-o <file>] <label>...

  Counts the transactions whose description mentions each label. The first
  matching label wins, so no transaction is counted twice. Labels with no
  match are omitted.
`
}

func (c *countCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", defaultExport, "Path to the transaction export")
	f.StringVar(&c.out, "o", "", "Also persist the counts to this file")
}

func (c *countCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing category labels")
		return subcommands.ExitUsageError
	}
	records, err := loadRecords(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit(c.out, func() (any, error) {
		return moneta.CountByCategory(records, f.Args()), nil
	})
}
