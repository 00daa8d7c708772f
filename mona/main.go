package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/nkiseleva/moneta/cmd"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion: hands over to the shell and exits when invoked as a
	// completer, does nothing otherwise.
	completion().Complete("mona")

	quiet := flag.Bool("q", false, "Silence progress logging")

	// A .env file may carry API_KEY_ALPHA for the stock lookup.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	if *quiet {
		log.SetOutput(io.Discard)
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the command tree for shell completion.
func completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	return &complete.Command{Sub: sub}
}
