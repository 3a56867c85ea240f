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

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	investment float64
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the fee structures of several funds" }
func (*compareCmd) Usage() string {
	return `frisk compare [-investment <amount>] <ticker> [<ticker>...]

  Fetches every fund from the data provider and displays them sorted by
  ascending expense ratio. A fund that cannot be resolved is reported and
  skipped, it does not abort the comparison.

Usage Examples:
$ frisk compare VTI VOO IVV SPY
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.investment, "investment", 10000, "Investment amount the annual cost is computed on")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: expected at least one ticker symbol\n")
		return subcommands.ExitUsageError
	}

	infos := fetchFunds(f.Args())
	if len(infos) == 0 {
		fmt.Fprintf(os.Stderr, "No valid fund data retrieved.\n")
		return subcommands.ExitFailure
	}

	investment := fundrisk.M(c.investment, investmentCurrency)
	analyses := fundrisk.CompareFunds(infos, investment)
	printMarkdown(renderer.ComparisonMarkdown(analyses, investment))
	return subcommands.ExitSuccess
}

// fetchFunds fetches every ticker from the provider, reporting per-ticker
// errors on stderr without aborting the batch.
func fetchFunds(tickers []string) []fundrisk.FundInfo {
	client := new(yahoo.Client)
	var infos []fundrisk.FundInfo
	for _, ticker := range tickers {
		info, err := client.FundInfo(ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching data for %s: %v\n", ticker, err)
			continue
		}
		infos = append(infos, info)
	}
	return infos
}
