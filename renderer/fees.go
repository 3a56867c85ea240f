package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/etnz/fundrisk"
	md "github.com/nao1215/markdown"
)

// FundMarkdown renders the fee analysis of a single fund.
func FundMarkdown(a *fundrisk.FeeAnalysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := a.Ticker
	if a.Name != "" {
		title = fmt.Sprintf("%s - %s", a.Ticker, a.Name)
	}
	doc.H1(fmt.Sprintf("Analysis for %s", title))

	details := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Field", "Value"},
		Rows: [][]string{
			{"Expense Ratio", fmtRatio(a.ExpenseRatio)},
			{"Fee Category", a.FeeCategory},
			{fmt.Sprintf("Annual Cost (on %s)", a.AnnualCost.Currency()), a.AnnualCost.String()},
		},
	}
	if a.Category != "" {
		details.Rows = append(details.Rows, []string{"Category", a.Category})
	}
	if a.FundFamily != "" {
		details.Rows = append(details.Rows, []string{"Fund Family", a.FundFamily})
	}
	doc.Table(details)

	return doc.String()
}

// ComparisonMarkdown renders the fee comparison of several funds, in the
// given (expense-ratio ascending) order.
func ComparisonMarkdown(analyses []fundrisk.FeeAnalysis, investment fundrisk.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Comparison of %d funds", len(analyses)))
	doc.Table(comparisonTable(analyses, investment))

	return doc.String()
}

// FeeReportMarkdown renders the comprehensive fee report: per-fund analysis
// plus summary statistics over the funds with a known expense ratio.
func FeeReportMarkdown(r *fundrisk.FeeReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Index Fund Fee Structure Analysis Report")
	doc.PlainTextf("Analyzed %d funds:", len(r.Funds))
	doc.Table(comparisonTable(r.Funds, r.Investment))

	if !math.IsNaN(r.Average) {
		doc.H2("Summary Statistics")
		doc.BulletList(
			fmt.Sprintf("Average Expense Ratio: %.3f%%", r.Average*100),
			fmt.Sprintf("Median Expense Ratio: %.3f%%", r.Median*100),
			fmt.Sprintf("Lowest Expense Ratio: %.3f%%", r.Lowest*100),
			fmt.Sprintf("Highest Expense Ratio: %.3f%%", r.Highest*100),
		)
	}

	return doc.String()
}

func comparisonTable(analyses []fundrisk.FeeAnalysis, investment fundrisk.Money) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight,
		},
		Header: []string{"Ticker", "Name", "Expense Ratio", "Fee Category", fmt.Sprintf("Annual Cost (on %s)", investment)},
	}
	for _, a := range analyses {
		table.Rows = append(table.Rows, []string{
			a.Ticker, a.Name, fmtRatio(a.ExpenseRatio), a.FeeCategory, a.AnnualCost.String(),
		})
	}
	return table
}

// fmtRatio formats a decimal expense ratio, e.g. 0.0003 as "0.030%".
func fmtRatio(ratio float64) string {
	if math.IsNaN(ratio) {
		return "N/A"
	}
	return fmt.Sprintf("%.3f%%", ratio*100)
}
