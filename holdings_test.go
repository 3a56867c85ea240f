package fundrisk

import (
	"strings"
	"testing"
)

const brokerExport = `Symbol,Description,Quantity,Last Price
VOO,Vanguard S&P 500 ETF,10,550.12
SCHD,Schwab US Dividend Equity ETF,25,27.80
Cash & Cash Investments,,,
Account Total,,," "
Disclaimer: data is indicative only
`

func TestFilterHoldings(t *testing.T) {
	h, err := DecodeHoldingsCSV(strings.NewReader(brokerExport))
	if err != nil {
		t.Fatalf("DecodeHoldingsCSV() unexpected error = %v", err)
	}
	if h.Len() != 5 {
		t.Fatalf("Len() = %d want 5", h.Len())
	}

	filtered, err := h.Filter("Last Price")
	if err != nil {
		t.Fatalf("Filter() unexpected error = %v", err)
	}
	if filtered.Len() != 2 {
		t.Fatalf("filtered Len() = %d want 2", filtered.Len())
	}
	for i, want := range []string{"VOO", "SCHD"} {
		if got := filtered.Rows[i][0]; got != want {
			t.Errorf("filtered row %d symbol = %q want %q", i, got, want)
		}
	}
}

func TestFilterUnknownColumn(t *testing.T) {
	h, err := DecodeHoldingsCSV(strings.NewReader(brokerExport))
	if err != nil {
		t.Fatalf("DecodeHoldingsCSV() unexpected error = %v", err)
	}
	if _, err := h.Filter("No Such Column"); err == nil {
		t.Error("Filter() expected an error for an unknown column")
	}
}

func TestEncodeHoldingsCSV(t *testing.T) {
	h := &Holdings{
		Header: []string{"Symbol", "Last Price"},
		Rows:   [][]string{{"VOO", "550.12"}},
	}
	var sb strings.Builder
	if err := EncodeHoldingsCSV(&sb, h); err != nil {
		t.Fatalf("EncodeHoldingsCSV() unexpected error = %v", err)
	}
	want := "Symbol,Last Price\nVOO,550.12\n"
	if sb.String() != want {
		t.Errorf("EncodeHoldingsCSV() = %q want %q", sb.String(), want)
	}
}
