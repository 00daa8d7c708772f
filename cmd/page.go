package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nkiseleva/moneta"
	"github.com/nkiseleva/moneta/quotes"
	"github.com/nkiseleva/moneta/renderer"
)

// pageCmd holds the flags for the 'page' subcommand.
type pageCmd struct {
	file     string
	settings string
	date     string
	out      string
	render   bool
}

func (*pageCmd) Name() string     { return "page" }
func (*pageCmd) Synopsis() string { return "assemble the main-page summary for the current month" }
func (*pageCmd) Usage() string {
	return `mona page [-f <export>] [-s <settings>] [-d <date>] [-o <file>] [-render]

  Assembles the main-page payload: greeting, per-card totals, the five
  biggest transactions of the month, currency rates and stock quotes.
  Prints pretty JSON by default; -render prints a markdown report instead.
`
}

func (c *pageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", defaultExport, "Path to the transaction export")
	f.StringVar(&c.settings, "s", defaultSettings, "Path to the user settings document")
	f.StringVar(&c.date, "d", "", "Reference date for the month window (defaults to now)")
	f.StringVar(&c.out, "o", "", "Also persist the payload to this file")
	f.BoolVar(&c.render, "render", false, "Render the page as markdown instead of JSON")
}

func (c *pageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	gateway := quotes.NewGateway(c.settings)

	if c.render {
		report, err := moneta.BuildPage(sheet, ref, gateway)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.MainPageMarkdown(report))
		return subcommands.ExitSuccess
	}

	payload := moneta.MainPage(sheet, ref, gateway)
	fmt.Println(payload)
	if c.out != "" {
		if err := os.WriteFile(c.out, []byte(payload+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.out, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
