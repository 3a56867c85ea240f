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

// riskCmd holds the flags for the 'risk' subcommand.
type riskCmd struct {
	benchmark    string
	confidence   float64
	riskFreeRate float64
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "display the risk analysis report of a price history" }
func (*riskCmd) Usage() string {
	return `frisk risk [-benchmark <symbol>] [-confidence <level>] [-risk-free <rate>]

  Computes annualized volatility, beta, Value-at-Risk, Sharpe ratio and
  maximum drawdown for every asset of the history file, and displays the
  comprehensive risk report with rankings.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	defaults := fundrisk.DefaultRiskOptions()
	f.StringVar(&c.benchmark, "benchmark", defaults.Benchmark, "Benchmark symbol whose returns act as market returns for beta")
	f.Float64Var(&c.confidence, "confidence", defaults.Confidence, "Value-at-Risk confidence level")
	f.Float64Var(&c.riskFreeRate, "risk-free", defaults.RiskFreeRate, "Annual risk-free rate for the Sharpe ratio")
}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	history, err := LoadHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading price history: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := fundrisk.NewRiskReport(history, fundrisk.RiskOptions{
		Benchmark:    c.benchmark,
		Confidence:   c.confidence,
		RiskFreeRate: c.riskFreeRate,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing risk report: %v\n", err)
		return subcommands.ExitFailure
	}
	if report.BenchmarkMissing {
		fmt.Fprintf(os.Stderr, "Warning: market symbol %s not found in data, beta skipped\n", c.benchmark)
	}

	printMarkdown(renderer.RiskMarkdown(report))
	return subcommands.ExitSuccess
}
