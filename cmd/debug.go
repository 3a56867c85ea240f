package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundrisk/yahoo"
	"github.com/google/subcommands"
)

// debugCmd holds the flags for the 'debug' subcommand.
type debugCmd struct{}

func (*debugCmd) Name() string     { return "debug" }
func (*debugCmd) Synopsis() string { return "dump every raw field the provider returns for a ticker" }
func (*debugCmd) Usage() string {
	return `frisk debug <ticker>

  Fetches the raw provider payload for a ticker and prints every available
  field, then the expense-ratio field variants specifically. Useful to
  understand what data the provider exposes for a given fund.
`
}

func (*debugCmd) SetFlags(f *flag.FlagSet) {}

func (c *debugCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one ticker symbol\n")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

	client := new(yahoo.Client)
	fields, err := client.Dump(ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching data for %s: %v\n", ticker, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Available data for %s:\n", ticker)
	for _, field := range fields {
		fmt.Printf("%s: %v\n", field.Name, field.Value)
	}

	fmt.Println("\nSpecifically checking expense ratio related fields:")
	for _, name := range yahoo.ExpenseRatioFieldNames() {
		value := "NOT FOUND"
		for _, field := range fields {
			if base(field.Name) == name {
				value = fmt.Sprintf("%v", field.Value)
				break
			}
		}
		fmt.Printf("%s: %s\n", name, value)
	}
	return subcommands.ExitSuccess
}

// base returns the last segment of a dotted field name.
func base(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
