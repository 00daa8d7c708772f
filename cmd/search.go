package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nkiseleva/moneta"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	file string
	out  string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find transactions by description" }
func (*searchCmd) Usage() string {
	return `mona search [-f <export>] [-o <file>] <pattern>

  Prints the transactions whose description matches the pattern, a
  case-insensitive regular expression.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", defaultExport, "Path to the transaction export")
	f.StringVar(&c.out, "o", "", "Also persist the matches to this file")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing search pattern")
		return subcommands.ExitUsageError
	}
	pattern := strings.Join(f.Args(), " ")

	records, err := loadRecords(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return emit(c.out, func() (any, error) {
		matches, err := moneta.FilterByDescription(records, pattern)
		if err != nil {
			return nil, err
		}
		if matches == nil {
			matches = []moneta.Transaction{}
		}
		return matches, nil
	})
}
