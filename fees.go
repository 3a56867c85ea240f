package fundrisk

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// FundInfo holds the metadata a market-data provider returns for a fund.
//
// Absent numeric fields are NaN, absent string fields are empty; the expense
// ratio is already normalized into a decimal fraction (0.0003 is 0.03%).
type FundInfo struct {
	Ticker             string
	Name               string
	Category           string
	FundFamily         string
	ExpenseRatio       float64
	TotalAssets        float64
	Yield              float64
	DividendRate       float64
	ThreeYearAvgReturn float64
	FiveYearAvgReturn  float64
}

// NormalizeExpenseRatio normalizes a raw provider expense-ratio value into a
// decimal fraction.
//
// Providers report the ratio in inconsistent units: 0.03 may mean "0.03%"
// while 0.0003 means the same thing as a decimal. A magnitude in (0.01, 100]
// is treated as a percentage and divided by 100; anything else passes
// through. This is a documented heuristic, inherently ambiguous for values in
// the overlapping range, not a guaranteed-correct classification.
func NormalizeExpenseRatio(raw float64) float64 {
	mag := math.Abs(raw)
	if mag > 0.01 && mag <= 100 {
		return raw / 100
	}
	return raw
}

// FeeCategory buckets a decimal expense ratio: at most 0.1% is Low, at most
// 0.5% is Medium, everything above is High. A NaN ratio is N/A.
func FeeCategory(ratio float64) string {
	switch {
	case math.IsNaN(ratio):
		return "N/A"
	case ratio <= 0.001:
		return "Low"
	case ratio <= 0.005:
		return "Medium"
	default:
		return "High"
	}
}

// AnnualCost returns the yearly operating cost of holding the investment in
// a fund with the given decimal expense ratio. An unknown ratio costs zero.
func AnnualCost(investment Money, ratio float64) Money {
	if math.IsNaN(ratio) {
		return M(0, investment.Currency())
	}
	return investment.MulFloat(ratio)
}

// FeeAnalysis is the analyzed fee structure of a single fund.
type FeeAnalysis struct {
	Ticker       string
	Name         string
	ExpenseRatio float64 // decimal fraction, NaN when unavailable
	FeeCategory  string
	AnnualCost   Money
	Category     string
	FundFamily   string
}

// AnalyzeFund derives the fee analysis of a fund for a given investment.
func AnalyzeFund(info FundInfo, investment Money) FeeAnalysis {
	return FeeAnalysis{
		Ticker:       info.Ticker,
		Name:         info.Name,
		ExpenseRatio: info.ExpenseRatio,
		FeeCategory:  FeeCategory(info.ExpenseRatio),
		AnnualCost:   AnnualCost(investment, info.ExpenseRatio),
		Category:     info.Category,
		FundFamily:   info.FundFamily,
	}
}

// CompareFunds analyzes several funds and sorts them by ascending expense
// ratio, funds with an unknown ratio last.
func CompareFunds(infos []FundInfo, investment Money) []FeeAnalysis {
	analyses := make([]FeeAnalysis, 0, len(infos))
	for _, info := range infos {
		analyses = append(analyses, AnalyzeFund(info, investment))
	}
	slices.SortStableFunc(analyses, func(a, b FeeAnalysis) int {
		switch {
		case math.IsNaN(a.ExpenseRatio) && math.IsNaN(b.ExpenseRatio):
			return 0
		case math.IsNaN(a.ExpenseRatio):
			return 1
		case math.IsNaN(b.ExpenseRatio):
			return -1
		case a.ExpenseRatio < b.ExpenseRatio:
			return -1
		case a.ExpenseRatio > b.ExpenseRatio:
			return 1
		}
		return 0
	})
	return analyses
}

// FeeReport aggregates the fee analysis of several funds with summary
// statistics over the funds whose expense ratio is known.
type FeeReport struct {
	Investment Money
	Funds      []FeeAnalysis

	// Summary statistics as decimal fractions, NaN when no ratio is known.
	Average float64
	Median  float64
	Lowest  float64
	Highest float64
}

// NewFeeReport builds the fee report of several funds, sorted by ascending
// expense ratio.
func NewFeeReport(infos []FundInfo, investment Money) *FeeReport {
	report := &FeeReport{
		Investment: investment,
		Funds:      CompareFunds(infos, investment),
		Average:    math.NaN(),
		Median:     math.NaN(),
		Lowest:     math.NaN(),
		Highest:    math.NaN(),
	}

	var known []float64
	for _, f := range report.Funds {
		if !math.IsNaN(f.ExpenseRatio) {
			known = append(known, f.ExpenseRatio)
		}
	}
	if len(known) == 0 {
		return report
	}
	report.Average = stat.Mean(known, nil)
	report.Median = quantile(known, 0.5)
	report.Lowest = slices.Min(known)
	report.Highest = slices.Max(known)
	return report
}
