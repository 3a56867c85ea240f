package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundrisk"
	"github.com/google/subcommands"
)

// filterCmd holds the flags for the 'filter' subcommand.
type filterCmd struct {
	column     string
	outputFile string
}

func (*filterCmd) Name() string     { return "filter" }
func (*filterCmd) Synopsis() string { return "keep holdings rows with a value in a given column" }
func (*filterCmd) Usage() string {
	return `frisk filter [-c <column>] [-o <file>] <holdings.csv>

  Reads a broker holdings CSV export, retains the rows that carry a non-blank
  value in the given column, and writes the result to a new CSV file. Useful
  to strip the disclaimer and total footer rows brokers append.

Usage Examples:
$ frisk filter -c "Last Price" -o portfolio.csv Portfolio_Positions_Nov-09-2025.csv
`
}

func (c *filterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.column, "c", "Last Price", "Column that must be non-blank for a row to be kept")
	f.StringVar(&c.outputFile, "o", "portfolio.csv", "Output CSV file")
}

func (c *filterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one input CSV file\n")
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)

	holdings, err := fundrisk.LoadHoldings(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	filtered, err := holdings.Filter(c.column)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	w, err := os.Create(c.outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}
	defer w.Close()
	if err := fundrisk.EncodeHoldingsCSV(w, filtered); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file %q: %v\n", c.outputFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Filtered data from %q has been written to %q (%d of %d rows kept).\n",
		input, c.outputFile, filtered.Len(), holdings.Len())
	return subcommands.ExitSuccess
}
