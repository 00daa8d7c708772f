// Package cmd implements the mona CLI to browse a transaction export.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/nkiseleva/moneta"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// keep the command list as a package variable.

// Commands lists every subcommand the main package registers.
var Commands = []subcommands.Command{
	&pageCmd{},
	&cashbackCmd{},
	&cardsCmd{},
	&topCmd{},
	&searchCmd{},
	&countCmd{},
	&ratesCmd{},
	&stocksCmd{},
	&spendingCmd{},
	&adviseCmd{},
	&topicCmd{},
}

// Default locations of the two input files, relative to the working
// directory.
const (
	defaultExport   = "data/operations.csv"
	defaultSettings = "data/user_settings.json"
)

// loadRecords opens the export and converts it to typed records.
func loadRecords(file string) ([]moneta.Transaction, error) {
	sheet, err := moneta.LoadSheet(file)
	if err != nil {
		return nil, err
	}
	return sheet.Transactions()
}

// parseRef reads a reference date flag; an empty value means now.
func parseRef(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return moneta.ParseStamp(s)
}

// emit prints the produced value as pretty JSON on stdout and, when out is
// not empty, persists it through the report sink as well.
func emit(out string, produce moneta.Producer) subcommands.ExitStatus {
	value, err := produce()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cached := func() (any, error) { return value, nil }

	if err := moneta.EncodeReport(os.Stdout, cached); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if out != "" {
		if err := moneta.WriteReport(out, cached); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
