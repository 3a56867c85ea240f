// Package yahoo fetches fund metadata and daily price history from the Yahoo
// Finance public endpoints.
//
// Responses are cached on disk with a daily expiry, so repeated runs of the
// CLI do not hammer the provider.
package yahoo

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fundrisk"
)

// DefaultBaseURL is the Yahoo Finance query host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// quoteSummary modules carrying fund metadata and fee fields.
const quoteSummaryModules = "price,summaryDetail,fundProfile,defaultKeyStatistics"

// Client queries the Yahoo Finance API. The zero value is usable: it talks
// to DefaultBaseURL through a daily-expiring disk-cached HTTP client.
type Client struct {
	// BaseURL overrides the query host, mostly for tests.
	BaseURL string
	// HTTPClient overrides the HTTP client.
	HTTPClient *http.Client
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return newDailyCachingClient()
}

// expenseRatioFields lists the known expense-ratio field variants in lookup
// order: the first non-absent one wins. Yahoo reports fee fields under
// different names depending on the fund type and data vintage.
var expenseRatioFields = []struct{ Name, Path string }{
	{"netExpenseRatio", "$.quoteSummary.result[0].fundProfile.feesExpensesInvestment.netExpenseRatio"},
	{"expenseRatio", "$.quoteSummary.result[0].fundProfile.feesExpensesInvestment.expenseRatio"},
	{"annualReportExpenseRatio", "$.quoteSummary.result[0].fundProfile.feesExpensesInvestment.annualReportExpenseRatio"},
	{"grossExpRatio", "$.quoteSummary.result[0].fundProfile.feesExpensesInvestment.grossExpRatio"},
	{"netExpRatio", "$.quoteSummary.result[0].fundProfile.feesExpensesInvestment.netExpRatio"},
}

// FundInfo fetches the fund metadata for a ticker. The expense ratio is
// normalized into a decimal fraction; absent numeric fields are NaN.
func (c *Client) FundInfo(ticker string) (fundrisk.FundInfo, error) {
	jobj, err := c.quoteSummary(ticker)
	if err != nil {
		return fundrisk.FundInfo{}, err
	}

	info := fundrisk.FundInfo{
		Ticker:             strings.ToUpper(ticker),
		Name:               jstr(jobj, "$.quoteSummary.result[0].price.longName"),
		Category:           jstr(jobj, "$.quoteSummary.result[0].fundProfile.categoryName"),
		FundFamily:         jstr(jobj, "$.quoteSummary.result[0].fundProfile.family"),
		TotalAssets:        jnum(jobj, "$.quoteSummary.result[0].summaryDetail.totalAssets"),
		Yield:              jnum(jobj, "$.quoteSummary.result[0].summaryDetail.yield"),
		DividendRate:       jnum(jobj, "$.quoteSummary.result[0].summaryDetail.dividendRate"),
		ThreeYearAvgReturn: jnum(jobj, "$.quoteSummary.result[0].defaultKeyStatistics.threeYearAverageReturn"),
		FiveYearAvgReturn:  jnum(jobj, "$.quoteSummary.result[0].defaultKeyStatistics.fiveYearAverageReturn"),
		ExpenseRatio:       math.NaN(),
	}
	if info.Name == "" {
		info.Name = jstr(jobj, "$.quoteSummary.result[0].price.shortName")
	}

	for _, field := range expenseRatioFields {
		if raw := jnum(jobj, field.Path); !math.IsNaN(raw) {
			info.ExpenseRatio = fundrisk.NormalizeExpenseRatio(raw)
			break
		}
	}
	return info, nil
}

// Dump fetches the raw quoteSummary payload for a ticker and flattens it
// into dotted field names, for inspection of what the provider exposes.
func (c *Client) Dump(ticker string) ([]Field, error) {
	jobj, err := c.quoteSummary(ticker)
	if err != nil {
		return nil, err
	}
	result, err := jsonpath.Get("$.quoteSummary.result[0]", jobj)
	if err != nil {
		return nil, fmt.Errorf("no data for %q: %w", ticker, err)
	}
	fields := make(map[string]any)
	flatten("", result, fields)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Field, 0, len(names))
	for _, name := range names {
		out = append(out, Field{Name: name, Value: fields[name]})
	}
	return out, nil
}

// Field is a flattened provider field, named by its dotted path.
type Field struct {
	Name  string
	Value any
}

// ExpenseRatioFieldNames returns the known expense-ratio field variants, in
// lookup order.
func ExpenseRatioFieldNames() []string {
	names := make([]string, 0, len(expenseRatioFields))
	for _, f := range expenseRatioFields {
		names = append(names, f.Name)
	}
	return names
}

// quoteSummary fetches and decodes the quoteSummary document of a ticker.
func (c *Client) quoteSummary(ticker string) (any, error) {
	addr := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s&formatted=false",
		c.base(), url.PathEscape(ticker), quoteSummaryModules)

	var jobj any
	if err := jwget(c.client(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch fund data for %q: %w", ticker, err)
	}

	if jerr, err := jsonpath.Get("$.quoteSummary.error", jobj); err == nil && jerr != nil {
		return nil, fmt.Errorf("provider error for %q: %v", ticker, jerr)
	}
	if _, err := jsonpath.Get("$.quoteSummary.result[0]", jobj); err != nil {
		return nil, fmt.Errorf("cannot resolve ticker %q", ticker)
	}
	return jobj, nil
}

// jstr extracts a string at a jsonpath, or "" when absent.
func jstr(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}

// jnum extracts a number at a jsonpath, or NaN when absent or not a number.
func jnum(jobj any, path string) float64 {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN()
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	v, ok := jval.(float64)
	if !ok {
		return math.NaN()
	}
	return v
}

// flatten walks a decoded JSON value and records every leaf under its dotted
// path.
func flatten(prefix string, jval any, out map[string]any) {
	switch v := jval.(type) {
	case map[string]any:
		for key, sub := range v {
			name := key
			if prefix != "" {
				name = prefix + "." + key
			}
			flatten(name, sub, out)
		}
	case []any:
		for i, sub := range v {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), sub, out)
		}
	default:
		out[prefix] = v
	}
}
