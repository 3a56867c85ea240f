package fundrisk

import (
	"math"
	"testing"
)

func TestNormalizeExpenseRatio(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{0.03, 0.0003},   // percentage form
		{0.0003, 0.0003}, // already a decimal fraction
		{0.01, 0.01},     // at the boundary: passes through
		{0.011, 0.00011},
		{0.5, 0.005},
		{100, 1},
		{100.5, 100.5}, // out of range: passes through untouched
		{0, 0},
		{-0.03, -0.0003},
	}
	for _, tt := range tests {
		if got := NormalizeExpenseRatio(tt.raw); got != tt.want {
			t.Errorf("NormalizeExpenseRatio(%v) = %v want %v", tt.raw, got, tt.want)
		}
	}
	if got := NormalizeExpenseRatio(math.NaN()); !math.IsNaN(got) {
		t.Errorf("NormalizeExpenseRatio(NaN) = %v want NaN", got)
	}
}

func TestFeeCategory(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0.0003, "Low"},
		{0.001, "Low"},
		{0.0011, "Medium"},
		{0.005, "Medium"},
		{0.0051, "High"},
		{math.NaN(), "N/A"},
	}
	for _, tt := range tests {
		if got := FeeCategory(tt.ratio); got != tt.want {
			t.Errorf("FeeCategory(%v) = %q want %q", tt.ratio, got, tt.want)
		}
	}
}

func TestAnnualCost(t *testing.T) {
	investment := M(10000, "USD")

	if got, want := AnnualCost(investment, 0.0003), M(3, "USD"); !got.Equal(want) {
		t.Errorf("AnnualCost(10000, 0.03%%) = %v want %v", got, want)
	}
	if got := AnnualCost(investment, math.NaN()); !got.IsZero() {
		t.Errorf("AnnualCost with an unknown ratio = %v want zero", got)
	}
}

func TestAnalyzeFund(t *testing.T) {
	info := FundInfo{
		Ticker:       "VOO",
		Name:         "Vanguard S&P 500 ETF",
		ExpenseRatio: 0.0003,
		Category:     "Large Blend",
		FundFamily:   "Vanguard",
	}
	a := AnalyzeFund(info, M(10000, "USD"))
	if a.FeeCategory != "Low" {
		t.Errorf("FeeCategory = %q want Low", a.FeeCategory)
	}
	if want := M(3, "USD"); !a.AnnualCost.Equal(want) {
		t.Errorf("AnnualCost = %v want %v", a.AnnualCost, want)
	}
}

func TestCompareFundsOrdering(t *testing.T) {
	infos := []FundInfo{
		{Ticker: "MID", ExpenseRatio: 0.002},
		{Ticker: "UNKNOWN", ExpenseRatio: math.NaN()},
		{Ticker: "CHEAP", ExpenseRatio: 0.0003},
		{Ticker: "PRICEY", ExpenseRatio: 0.0075},
	}
	analyses := CompareFunds(infos, M(10000, "USD"))

	want := []string{"CHEAP", "MID", "PRICEY", "UNKNOWN"}
	for i, w := range want {
		if analyses[i].Ticker != w {
			t.Errorf("order[%d] = %q want %q", i, analyses[i].Ticker, w)
		}
	}
}

func TestNewFeeReport(t *testing.T) {
	infos := []FundInfo{
		{Ticker: "A", ExpenseRatio: 0.0003},
		{Ticker: "B", ExpenseRatio: 0.0009},
		{Ticker: "C", ExpenseRatio: 0.0020},
		{Ticker: "D", ExpenseRatio: math.NaN()},
	}
	report := NewFeeReport(infos, M(10000, "USD"))

	if want := (0.0003 + 0.0009 + 0.0020) / 3; !almostEqual(report.Average, want) {
		t.Errorf("Average = %v want %v", report.Average, want)
	}
	if !almostEqual(report.Median, 0.0009) {
		t.Errorf("Median = %v want 0.0009", report.Median)
	}
	if report.Lowest != 0.0003 || report.Highest != 0.0020 {
		t.Errorf("Lowest/Highest = %v/%v want 0.0003/0.0020",
			report.Lowest, report.Highest)
	}
}

func TestNewFeeReportAllUnknown(t *testing.T) {
	infos := []FundInfo{{Ticker: "A", ExpenseRatio: math.NaN()}}
	report := NewFeeReport(infos, M(10000, "USD"))
	if !math.IsNaN(report.Average) || !math.IsNaN(report.Median) {
		t.Errorf("statistics over unknown ratios = %v/%v want NaN",
			report.Average, report.Median)
	}
}
