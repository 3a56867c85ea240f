package yahoo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/fundrisk/date"
)

// timestamps are midnight UTC of 2025-01-02, 03 and 06.
const vooChart = `{
  "chart": {
    "result": [{
      "timestamp": [1735776000, 1735862400, 1736121600],
      "indicators": {"quote": [{"close": [550.1, null, 552.3]}]}
    }],
    "error": null
  }
}`

func chartServer(t *testing.T, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
}

func TestDailyCloses(t *testing.T) {
	c := chartServer(t, vooChart)

	series, err := c.DailyCloses("VOO", "1mo")
	if err != nil {
		t.Fatalf("DailyCloses() unexpected error = %v", err)
	}
	// the null close is skipped
	if series.Len() != 2 {
		t.Fatalf("Len() = %d want 2", series.Len())
	}
	if v, ok := series.Get(date.New(2025, 1, 2)); !ok || v != 550.1 {
		t.Errorf("Get(2025-01-02) = %v, %v want 550.1, true", v, ok)
	}
	if v, ok := series.Get(date.New(2025, 1, 6)); !ok || v != 552.3 {
		t.Errorf("Get(2025-01-06) = %v, %v want 552.3, true", v, ok)
	}
}

func TestDailyClosesProviderError(t *testing.T) {
	c := chartServer(t, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
	if _, err := c.DailyCloses("NOPE", "1y"); err == nil {
		t.Error("DailyCloses() expected an error for an unknown ticker")
	}
}

func TestDailyClosesEmpty(t *testing.T) {
	c := chartServer(t, `{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[{"close":[]}]}}],"error":null}}`)
	if _, err := c.DailyCloses("VOO", "1y"); err == nil {
		t.Error("DailyCloses() expected an error when no close is usable")
	}
}
