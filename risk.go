package fundrisk

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// tradingDays is the conventional number of trading days per year, used to
// annualize daily statistics.
const tradingDays = 252

// RiskOptions holds the tunables of a risk analysis. The zero value is not
// usable; start from DefaultRiskOptions.
type RiskOptions struct {
	Benchmark    string  // symbol whose returns act as market returns for beta
	Confidence   float64 // Value-at-Risk confidence level
	RiskFreeRate float64 // annual risk-free rate for the Sharpe ratio
}

// DefaultRiskOptions returns the in-code defaults of the risk analysis.
func DefaultRiskOptions() RiskOptions {
	return RiskOptions{Benchmark: "SPY", Confidence: 0.05, RiskFreeRate: 0.02}
}

// AssetRisk holds the risk metrics of a single asset.
//
// All values are plain decimal fractions (0.25 is 25%). Beta is only present
// for non-benchmark assets when the benchmark column exists; Sharpe is NaN
// when the return series has zero volatility.
type AssetRisk struct {
	Symbol      string
	Volatility  float64
	RiskLevel   string
	Beta        float64
	HasBeta     bool
	Sensitivity string
	VaR         float64
	Sharpe      float64
	Performance string
	MaxDrawdown float64
}

// RankEntry names an asset together with the metric value that ranked it.
type RankEntry struct {
	Symbol string
	Value  float64
}

// Rankings identifies the extremes across all analyzed assets.
type Rankings struct {
	HighestVolatility RankEntry
	LowestVolatility  RankEntry
	BestSharpe        RankEntry // NaN entries are ignored
	WorstSharpe       RankEntry
	LargestDrawdown   RankEntry // most negative
	SmallestDrawdown  RankEntry // least negative
	HasSharpe         bool
}

// RiskReport aggregates the risk metrics of every asset of a price history.
type RiskReport struct {
	Options RiskOptions
	Assets  []AssetRisk // in history column order, benchmark included
	Ranks   Rankings

	// BenchmarkMissing is set when the benchmark symbol is absent from the
	// history; beta is then skipped for every asset, not fatal.
	BenchmarkMissing bool
}

// NewRiskReport computes all risk metrics from a price history. Assets whose
// return series is entirely undefined are skipped. It fails only when the
// history itself is unusable (nil or too short to derive any return).
func NewRiskReport(h *PriceHistory, opts RiskOptions) (*RiskReport, error) {
	if h == nil {
		return nil, fmt.Errorf("no price history loaded")
	}
	rs := h.Returns()
	if rs.Len() == 0 {
		return nil, fmt.Errorf("price history has %d observations, need at least 2 to compute returns", h.Len())
	}

	report := &RiskReport{Options: opts}

	market := rs.Column(opts.Benchmark)
	report.BenchmarkMissing = market == nil

	for _, symbol := range rs.Symbols() {
		if !rs.Defined(symbol) {
			continue
		}
		valid := rs.Valid(symbol)

		a := AssetRisk{Symbol: symbol}
		a.Volatility = Volatility(valid)
		a.RiskLevel = ClassifyRiskLevel(a.Volatility)
		a.VaR = ValueAtRisk(valid, opts.Confidence)
		a.Sharpe = SharpeRatio(valid, opts.RiskFreeRate)
		a.Performance = ClassifyPerformance(a.Sharpe)
		a.MaxDrawdown = MaxDrawdown(valid)

		if !report.BenchmarkMissing && symbol != opts.Benchmark {
			if beta, ok := Beta(rs.Column(symbol), market); ok {
				a.Beta, a.HasBeta = beta, true
				a.Sensitivity = ClassifyBetaSensitivity(beta)
			}
		}

		report.Assets = append(report.Assets, a)
	}

	if len(report.Assets) == 0 {
		return nil, fmt.Errorf("no asset has a defined return series")
	}
	report.Ranks = rank(report.Assets)
	return report, nil
}

// Volatility returns the annualized volatility of a daily return series:
// the sample standard deviation scaled by the square root of 252.
func Volatility(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil) * math.Sqrt(tradingDays)
}

// Beta returns the sensitivity of an asset's returns to the market's:
// cov(asset, market) / var(market). Both series are aligned columns and only
// pairwise-defined observations contribute. It reports false when fewer than
// two pairs are defined or the market variance is zero.
func Beta(asset, market []float64) (float64, bool) {
	n := min(len(asset), len(market))
	a := make([]float64, 0, n)
	m := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(asset[i]) || math.IsNaN(market[i]) {
			continue
		}
		a = append(a, asset[i])
		m = append(m, market[i])
	}
	if len(a) < 2 {
		return 0, false
	}
	variance := stat.Variance(m, nil)
	if variance == 0 {
		return 0, false
	}
	return stat.Covariance(a, m, nil) / variance, true
}

// ValueAtRisk returns the empirical quantile of the return distribution at
// the given confidence level: the loss threshold such that this fraction of
// historical daily returns fell below it.
func ValueAtRisk(returns []float64, confidence float64) float64 {
	return quantile(returns, confidence)
}

// SharpeRatio returns mean(r - rate/252) / std(r) for a daily return series.
// It is NaN when the series volatility is zero.
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) == 0 {
		return math.NaN()
	}
	std := stat.StdDev(returns, nil)
	if std == 0 || math.IsNaN(std) {
		return math.NaN()
	}
	return (stat.Mean(returns, nil) - riskFreeRate/tradingDays) / std
}

// MaxDrawdown returns the largest peak-to-trough decline of the cumulative
// growth series built from daily returns. The result is 0 for a series that
// never declines, negative otherwise.
func MaxDrawdown(returns []float64) float64 {
	value, peak := 1.0, 1.0
	maxDD := 0.0
	for _, r := range returns {
		value *= 1 + r
		if value > peak {
			peak = value
		}
		if dd := (value - peak) / peak; dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// quantile returns the q-quantile of xs using linear interpolation between
// order statistics, matching the interpolation pandas and numpy default to.
func quantile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	h := q * float64(len(sorted)-1)
	i := int(math.Floor(h))
	frac := h - float64(i)
	if i+1 >= len(sorted) {
		return sorted[i]
	}
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// ClassifyRiskLevel buckets an annualized volatility.
func ClassifyRiskLevel(volatility float64) string {
	switch {
	case volatility < 0.15:
		return "Low"
	case volatility < 0.25:
		return "Medium"
	case volatility < 0.40:
		return "High"
	default:
		return "Very High"
	}
}

// ClassifyBetaSensitivity buckets a beta into market sensitivity bands.
func ClassifyBetaSensitivity(beta float64) string {
	switch {
	case beta < 0.5:
		return "Low sensitivity"
	case beta < 1.0:
		return "Below avg sensitivity"
	case beta < 1.5:
		return "Average sensitivity"
	default:
		return "High sensitivity"
	}
}

// ClassifyPerformance buckets a Sharpe ratio. A NaN ratio is reported as
// insufficient data.
func ClassifyPerformance(sharpe float64) string {
	switch {
	case math.IsNaN(sharpe):
		return "insufficient data"
	case sharpe > 1.0:
		return "Excellent"
	case sharpe > 0.5:
		return "Good"
	case sharpe > 0:
		return "Poor"
	default:
		return "Negative"
	}
}

// rank identifies the extremes over the analyzed assets. Sharpe rankings
// ignore NaN entries; drawdown rankings are on signed values, so the largest
// drawdown is the most negative one.
func rank(assets []AssetRisk) Rankings {
	var r Rankings
	r.HighestVolatility = assets[0].rankVolatility()
	r.LowestVolatility = assets[0].rankVolatility()
	r.LargestDrawdown = assets[0].rankDrawdown()
	r.SmallestDrawdown = assets[0].rankDrawdown()

	for _, a := range assets[1:] {
		if a.Volatility > r.HighestVolatility.Value {
			r.HighestVolatility = a.rankVolatility()
		}
		if a.Volatility < r.LowestVolatility.Value {
			r.LowestVolatility = a.rankVolatility()
		}
		if a.MaxDrawdown < r.LargestDrawdown.Value {
			r.LargestDrawdown = a.rankDrawdown()
		}
		if a.MaxDrawdown > r.SmallestDrawdown.Value {
			r.SmallestDrawdown = a.rankDrawdown()
		}
	}

	for _, a := range assets {
		if math.IsNaN(a.Sharpe) {
			continue
		}
		e := RankEntry{Symbol: a.Symbol, Value: a.Sharpe}
		if !r.HasSharpe {
			r.BestSharpe, r.WorstSharpe, r.HasSharpe = e, e, true
			continue
		}
		if a.Sharpe > r.BestSharpe.Value {
			r.BestSharpe = e
		}
		if a.Sharpe < r.WorstSharpe.Value {
			r.WorstSharpe = e
		}
	}
	return r
}

func (a AssetRisk) rankVolatility() RankEntry { return RankEntry{Symbol: a.Symbol, Value: a.Volatility} }
func (a AssetRisk) rankDrawdown() RankEntry   { return RankEntry{Symbol: a.Symbol, Value: a.MaxDrawdown} }
