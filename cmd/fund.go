package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundrisk"
	"github.com/etnz/fundrisk/renderer"
	"github.com/etnz/fundrisk/yahoo"
	"github.com/google/subcommands"
)

// fundCmd holds the flags for the 'fund' subcommand.
type fundCmd struct {
	investment float64
}

func (*fundCmd) Name() string     { return "fund" }
func (*fundCmd) Synopsis() string { return "analyze the fee structure of a single fund" }
func (*fundCmd) Usage() string {
	return `frisk fund [-investment <amount>] <ticker>

  Fetches the fund metadata from the data provider, normalizes its expense
  ratio, buckets it into a fee category and computes the annual cost on the
  given investment amount.

Usage Examples:
$ frisk fund VTI
$ frisk fund -investment 100000 VOO
`
}

func (c *fundCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.investment, "investment", 10000, "Investment amount the annual cost is computed on")
}

func (c *fundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one ticker symbol\n")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

	client := new(yahoo.Client)
	info, err := client.FundInfo(ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not retrieve data for %s: %v\n", ticker, err)
		return subcommands.ExitFailure
	}

	analysis := fundrisk.AnalyzeFund(info, fundrisk.M(c.investment, investmentCurrency))
	printMarkdown(renderer.FundMarkdown(&analysis))
	return subcommands.ExitSuccess
}
