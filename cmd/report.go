package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundrisk"
	"github.com/etnz/fundrisk/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	investment float64
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate a comprehensive fee analysis report" }
func (*reportCmd) Usage() string {
	return `frisk report [-investment <amount>] <ticker> [<ticker>...]

  Fetches every fund from the data provider and displays the full fee
  structure report: per-fund analysis sorted by ascending expense ratio and
  summary statistics (average, median, lowest, highest expense ratio).
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.investment, "investment", 10000, "Investment amount the annual cost is computed on")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: expected at least one ticker symbol\n")
		return subcommands.ExitUsageError
	}

	infos := fetchFunds(f.Args())
	if len(infos) == 0 {
		fmt.Fprintf(os.Stderr, "No valid fund data could be retrieved for the provided tickers.\n")
		return subcommands.ExitFailure
	}

	report := fundrisk.NewFeeReport(infos, fundrisk.M(c.investment, investmentCurrency))
	printMarkdown(renderer.FeeReportMarkdown(report))
	return subcommands.ExitSuccess
}
