package yahoo

import (
	"fmt"
	"net/url"
	"time"

	"github.com/etnz/fundrisk/date"
)

// chartResponse is the shape of the v8 chart endpoint payload.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// DailyCloses fetches the daily closing prices of a ticker over a range
// ("1mo", "6mo", "1y", "5y", "max", ...) and returns them as a chronological
// series. Days without a close (nulls in the payload) are skipped.
func (c *Client) DailyCloses(ticker, rng string) (*date.Series, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		c.base(), url.PathEscape(ticker), url.QueryEscape(rng))

	var payload chartResponse
	if err := jwget(c.client(), addr, &payload); err != nil {
		return nil, fmt.Errorf("cannot fetch price history for %q: %w", ticker, err)
	}
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("provider error for %q: %v", ticker, payload.Chart.Error)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no price data for %q", ticker)
	}

	result := payload.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close

	series := new(date.Series)
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == 0 {
			// nulls decode as zero, and a zero close is no price either way
			continue
		}
		series.Append(date.FromTime(time.Unix(ts, 0).UTC()), closes[i])
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("no usable close prices for %q", ticker)
	}
	return series, nil
}
