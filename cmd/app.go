// Package cmd implements the CLI application to analyze fund fee structures
// and portfolio risk.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fundrisk"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&riskCmd{}, "risk")
	c.Register(&fetchCmd{}, "risk")

	c.Register(&fundCmd{}, "fees")
	c.Register(&compareCmd{}, "fees")
	c.Register(&reportCmd{}, "fees")

	c.Register(&filterCmd{}, "holdings")
	c.Register(&debugCmd{}, "provider")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var historyFile = flag.String("history-file", defaultHistoryFile(), "Path to the historical prices CSV file (a Date column plus one price column per symbol)")

// defaultHistoryFile returns the default history file, overridable with the
// FRISK_HISTORY environment variable.
func defaultHistoryFile() string {
	if f := os.Getenv("FRISK_HISTORY"); f != "" {
		return f
	}
	return "history.csv"
}

// investmentCurrency is the currency annual costs are reported in.
const investmentCurrency = "USD"

// LoadHistory loads the price history from the app history file.
func LoadHistory() (*fundrisk.PriceHistory, error) {
	return fundrisk.LoadPriceHistory(*historyFile)
}

// printMarkdown renders a markdown report for the terminal, falling back to
// the raw markdown when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
