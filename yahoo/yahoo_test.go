package yahoo

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

const vooSummary = `{
  "quoteSummary": {
    "result": [{
      "price": {"longName": "Vanguard S&P 500 ETF", "shortName": "Vanguard 500"},
      "summaryDetail": {"totalAssets": 1200000000000, "yield": 0.0131},
      "fundProfile": {
        "categoryName": "Large Blend",
        "family": "Vanguard",
        "feesExpensesInvestment": {"annualReportExpenseRatio": 0.03}
      },
      "defaultKeyStatistics": {"threeYearAverageReturn": 0.11}
    }],
    "error": null
  }
}`

const notFoundSummary = `{
  "quoteSummary": {
    "result": null,
    "error": {"code": "Not Found", "description": "Quote not found for ticker symbol: NOPE"}
  }
}`

func summaryServer(t *testing.T, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
}

func TestFundInfo(t *testing.T) {
	c := summaryServer(t, vooSummary)

	info, err := c.FundInfo("voo")
	if err != nil {
		t.Fatalf("FundInfo() unexpected error = %v", err)
	}
	if info.Ticker != "VOO" {
		t.Errorf("Ticker = %q want VOO", info.Ticker)
	}
	if info.Name != "Vanguard S&P 500 ETF" {
		t.Errorf("Name = %q want the long name", info.Name)
	}
	if info.Category != "Large Blend" || info.FundFamily != "Vanguard" {
		t.Errorf("Category/FundFamily = %q/%q", info.Category, info.FundFamily)
	}
	// 0.03 is a percentage form and must come back normalized
	if info.ExpenseRatio != 0.0003 {
		t.Errorf("ExpenseRatio = %v want 0.0003", info.ExpenseRatio)
	}
	if info.Yield != 0.0131 {
		t.Errorf("Yield = %v want 0.0131", info.Yield)
	}
	// absent fields are NaN
	if !math.IsNaN(info.FiveYearAvgReturn) {
		t.Errorf("FiveYearAvgReturn = %v want NaN", info.FiveYearAvgReturn)
	}
}

func TestFundInfoShortNameFallback(t *testing.T) {
	c := summaryServer(t, `{"quoteSummary":{"result":[{"price":{"shortName":"Vanguard 500"}}],"error":null}}`)

	info, err := c.FundInfo("VOO")
	if err != nil {
		t.Fatalf("FundInfo() unexpected error = %v", err)
	}
	if info.Name != "Vanguard 500" {
		t.Errorf("Name = %q want the short name fallback", info.Name)
	}
	if !math.IsNaN(info.ExpenseRatio) {
		t.Errorf("ExpenseRatio = %v want NaN without fee fields", info.ExpenseRatio)
	}
}

func TestFundInfoProviderError(t *testing.T) {
	c := summaryServer(t, notFoundSummary)
	if _, err := c.FundInfo("NOPE"); err == nil {
		t.Error("FundInfo() expected an error for an unresolvable ticker")
	}
}

func TestFundInfoHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()
	c := &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}

	if _, err := c.FundInfo("VOO"); err == nil {
		t.Error("FundInfo() expected an error on a non-200 response")
	}
}

func TestDump(t *testing.T) {
	c := summaryServer(t, vooSummary)

	fields, err := c.Dump("VOO")
	if err != nil {
		t.Fatalf("Dump() unexpected error = %v", err)
	}

	byName := make(map[string]any, len(fields))
	for _, f := range fields {
		byName[f.Name] = f.Value
	}
	if got := byName["fundProfile.feesExpensesInvestment.annualReportExpenseRatio"]; got != 0.03 {
		t.Errorf("flattened expense ratio = %v want 0.03", got)
	}
	if got := byName["price.longName"]; got != "Vanguard S&P 500 ETF" {
		t.Errorf("flattened longName = %v", got)
	}

	// names come back sorted
	for i := 1; i < len(fields); i++ {
		if fields[i-1].Name > fields[i].Name {
			t.Fatalf("fields not sorted: %q after %q", fields[i].Name, fields[i-1].Name)
		}
	}
}

func TestExpenseRatioPrecedence(t *testing.T) {
	// netExpenseRatio wins over the other variants when several are present
	c := summaryServer(t, `{"quoteSummary":{"result":[{
		"fundProfile":{"feesExpensesInvestment":{
			"netExpenseRatio": 0.09,
			"annualReportExpenseRatio": 0.50
		}}}],"error":null}}`)

	info, err := c.FundInfo("X")
	if err != nil {
		t.Fatalf("FundInfo() unexpected error = %v", err)
	}
	if info.ExpenseRatio != 0.0009 {
		t.Errorf("ExpenseRatio = %v want 0.0009 (normalized netExpenseRatio)", info.ExpenseRatio)
	}
}

func TestExpenseRatioFieldNames(t *testing.T) {
	names := ExpenseRatioFieldNames()
	want := []string{"netExpenseRatio", "expenseRatio", "annualReportExpenseRatio", "grossExpRatio", "netExpRatio"}
	if len(names) != len(want) {
		t.Fatalf("got %d names want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q want %q", i, names[i], want[i])
		}
	}
}
