// Package renderer formats fundrisk reports as markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/etnz/fundrisk"
	md "github.com/nao1215/markdown"
)

// RiskMarkdown renders the full risk analysis report to a markdown string:
// one section per metric, a comprehensive summary table and the rankings.
func RiskMarkdown(r *fundrisk.RiskReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Risk Analysis Report")

	doc.H2("1. Annualized Volatility (Risk Indicator)")
	volatility := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Asset", "Volatility", "Risk Level"},
	}
	for _, a := range r.Assets {
		volatility.Rows = append(volatility.Rows, []string{
			a.Symbol, fundrisk.AsPercent(a.Volatility).String(), a.RiskLevel,
		})
	}
	doc.Table(volatility)

	doc.H2("2. Beta (Market Sensitivity)")
	if r.BenchmarkMissing {
		doc.PlainTextf("Market symbol %s not found in data, beta skipped.", r.Options.Benchmark)
	} else {
		beta := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Asset", "Beta", "Sensitivity"},
		}
		for _, a := range r.Assets {
			if !a.HasBeta {
				continue
			}
			beta.Rows = append(beta.Rows, []string{
				a.Symbol, fmt.Sprintf("%.2f", a.Beta), a.Sensitivity,
			})
		}
		doc.Table(beta)
	}

	doc.H2(fmt.Sprintf("3. Value at Risk (VaR - %.0f%% Confidence)", r.Options.Confidence*100))
	vars := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Asset", "VaR"},
	}
	for _, a := range r.Assets {
		vars.Rows = append(vars.Rows, []string{a.Symbol, fundrisk.AsPercent(a.VaR).String()})
	}
	doc.Table(vars)

	doc.H2("4. Sharpe Ratio (Risk-Adjusted Return)")
	sharpe := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Asset", "Sharpe", "Performance"},
	}
	for _, a := range r.Assets {
		sharpe.Rows = append(sharpe.Rows, []string{a.Symbol, fmtSharpe(a.Sharpe), a.Performance})
	}
	doc.Table(sharpe)

	doc.H2("5. Maximum Drawdown")
	drawdown := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Asset", "Max Drawdown"},
	}
	for _, a := range r.Assets {
		drawdown.Rows = append(drawdown.Rows, []string{a.Symbol, fundrisk.AsPercent(a.MaxDrawdown).String()})
	}
	doc.Table(drawdown)

	doc.H2("6. Comprehensive Risk Summary")
	summary := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Asset", "Volatility", "Beta", fmt.Sprintf("VaR (%.0f%%)", r.Options.Confidence*100), "Sharpe Ratio", "Max Drawdown"},
	}
	for _, a := range r.Assets {
		beta := "-"
		if a.HasBeta {
			beta = fmt.Sprintf("%.4f", a.Beta)
		}
		summary.Rows = append(summary.Rows, []string{
			a.Symbol,
			fmt.Sprintf("%.4f", a.Volatility),
			beta,
			fmt.Sprintf("%.4f", a.VaR),
			fmtSharpe4(a.Sharpe),
			fmt.Sprintf("%.4f", a.MaxDrawdown),
		})
	}
	doc.Table(summary)

	doc.H2("7. Risk Rankings")
	doc.BulletList(
		fmt.Sprintf("Highest volatility: %s (%s)", r.Ranks.HighestVolatility.Symbol, fundrisk.AsPercent(r.Ranks.HighestVolatility.Value)),
		fmt.Sprintf("Lowest volatility: %s (%s)", r.Ranks.LowestVolatility.Symbol, fundrisk.AsPercent(r.Ranks.LowestVolatility.Value)),
	)
	if r.Ranks.HasSharpe {
		doc.BulletList(
			fmt.Sprintf("Best risk-adjusted return: %s (Sharpe: %.2f)", r.Ranks.BestSharpe.Symbol, r.Ranks.BestSharpe.Value),
			fmt.Sprintf("Worst risk-adjusted return: %s (Sharpe: %.2f)", r.Ranks.WorstSharpe.Symbol, r.Ranks.WorstSharpe.Value),
		)
	}
	doc.BulletList(
		fmt.Sprintf("Largest drawdown: %s (%s)", r.Ranks.LargestDrawdown.Symbol, fundrisk.AsPercent(r.Ranks.LargestDrawdown.Value)),
		fmt.Sprintf("Smallest drawdown: %s (%s)", r.Ranks.SmallestDrawdown.Symbol, fundrisk.AsPercent(r.Ranks.SmallestDrawdown.Value)),
	)

	return doc.String()
}

func fmtSharpe(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}

func fmtSharpe4(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4f", v)
}
