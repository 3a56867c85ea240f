package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundrisk"
	"github.com/etnz/fundrisk/yahoo"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	rng        string
	outputFile string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download daily price history into the history CSV" }
func (*fetchCmd) Usage() string {
	return `frisk fetch [-range <range>] [-o <file>] <ticker> [<ticker>...]

  Downloads the daily closing prices of every ticker from the data provider
  and writes them as a history CSV file (a Date column plus one price column
  per symbol), ready for the risk command.

Usage Examples:
$ frisk fetch -range 1y AAPL GOOGL MSFT SPY
$ frisk fetch -range 5y -o prices.csv VTI SPY
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rng, "range", "1y", "History range to download (1mo, 6mo, 1y, 5y, max, ...)")
	f.StringVar(&c.outputFile, "o", "", "Output CSV file. Defaults to the app history file.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: expected at least one ticker symbol\n")
		return subcommands.ExitUsageError
	}
	out := c.outputFile
	if out == "" {
		out = *historyFile
	}

	client := new(yahoo.Client)
	history := fundrisk.NewPriceHistory()
	for _, ticker := range f.Args() {
		closes, err := client.DailyCloses(ticker, c.rng)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching prices for %s: %v\n", ticker, err)
			continue
		}
		for on, close := range closes.Values() {
			history.Set(on, ticker, close)
		}
		fmt.Fprintf(os.Stderr, "Fetched %d closes for %s\n", closes.Len(), ticker)
	}
	if history.Len() == 0 {
		fmt.Fprintf(os.Stderr, "No price data retrieved.\n")
		return subcommands.ExitFailure
	}

	w, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating history file %q: %v\n", out, err)
		return subcommands.ExitFailure
	}
	defer w.Close()
	if err := fundrisk.EncodeHistoryCSV(w, history); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing history file %q: %v\n", out, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully wrote %d days of history to %s\n", history.Len(), out)
	return subcommands.ExitSuccess
}
