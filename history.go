package fundrisk

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/fundrisk/date"
)

// dateColumn is the header of the column holding observation dates in a
// history CSV file. Every other column is a price column named after its
// asset symbol.
const dateColumn = "Date"

// PriceHistory holds a table of daily closing prices: one column per asset
// symbol, aligned on the shared chronological set of observation dates.
//
// A missing observation is absent, never zero: Column materializes it as NaN.
// Once loaded the table is read-only; returns and risk metrics are pure
// functions of it.
type PriceHistory struct {
	days    []date.Date
	symbols []string // column order
	series  map[string]*date.Series
}

// NewPriceHistory returns an empty price history.
func NewPriceHistory() *PriceHistory {
	return &PriceHistory{series: make(map[string]*date.Series)}
}

// Set records the price of symbol on a given day, creating the column on
// first use. An existing observation is overwritten.
func (h *PriceHistory) Set(on date.Date, symbol string, price float64) {
	s, ok := h.series[symbol]
	if !ok {
		s = new(date.Series)
		h.series[symbol] = s
		h.symbols = append(h.symbols, symbol)
	}
	s.Append(on, price)
	if i := slices.Index(h.days, on); i < 0 {
		h.days = append(h.days, on)
		slices.SortFunc(h.days, func(a, b date.Date) int {
			switch {
			case a.Before(b):
				return -1
			case a.After(b):
				return 1
			}
			return 0
		})
	}
}

// Len returns the number of observation dates.
func (h *PriceHistory) Len() int { return len(h.days) }

// Days returns the shared observation dates in chronological order.
func (h *PriceHistory) Days() []date.Date { return slices.Clone(h.days) }

// Symbols returns the asset symbols in column order.
func (h *PriceHistory) Symbols() []string { return slices.Clone(h.symbols) }

// Column returns the price column of symbol aligned on Days, with NaN for
// absent observations. It returns nil for an unknown symbol.
func (h *PriceHistory) Column(symbol string) []float64 {
	s, ok := h.series[symbol]
	if !ok {
		return nil
	}
	col := make([]float64, len(h.days))
	for i, on := range h.days {
		if v, ok := s.Get(on); ok {
			col[i] = v
		} else {
			col[i] = math.NaN()
		}
	}
	return col
}

// Get returns the price of symbol on a given day, and whether it is present.
func (h *PriceHistory) Get(on date.Date, symbol string) (float64, bool) {
	s, ok := h.series[symbol]
	if !ok {
		return 0, false
	}
	return s.Get(on)
}

// LoadPriceHistory reads a price history CSV file from disk.
func LoadPriceHistory(path string) (*PriceHistory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open history file: %w", err)
	}
	defer f.Close()
	h, err := DecodeHistoryCSV(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read history file %q: %w", path, err)
	}
	return h, nil
}

// DecodeHistoryCSV decodes a price history from CSV. The expected format is a
// header with a "Date" column plus one price column per asset symbol, and one
// row per observation date. An empty cell is an absent observation.
func DecodeHistoryCSV(r io.Reader) (*PriceHistory, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}

	dateIdx := slices.Index(header, dateColumn)
	if dateIdx < 0 {
		return nil, fmt.Errorf("history CSV has no %q column", dateColumn)
	}

	h := NewPriceHistory()
	// Declare columns up front to preserve the CSV column order even when the
	// first rows have gaps.
	for i, name := range header {
		if i != dateIdx {
			h.series[name] = new(date.Series)
			h.symbols = append(h.symbols, name)
		}
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV line %d: %w", line, err)
		}
		on, err := date.Parse(record[dateIdx])
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		for i, cell := range record {
			if i == dateIdx || strings.TrimSpace(cell) == "" {
				continue
			}
			price, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("CSV line %d column %q: invalid price %q: %w", line, header[i], cell, err)
			}
			h.Set(on, header[i], price)
		}
		// Rows whose cells are all empty still contribute their date.
		if i := slices.Index(h.days, on); i < 0 {
			h.days = append(h.days, on)
		}
	}
	slices.SortFunc(h.days, func(a, b date.Date) int {
		switch {
		case a.Before(b):
			return -1
		case a.After(b):
			return 1
		}
		return 0
	})
	return h, nil
}

// EncodeHistoryCSV writes the price history in the CSV format accepted by
// DecodeHistoryCSV. Absent observations are written as empty cells.
func EncodeHistoryCSV(w io.Writer, h *PriceHistory) error {
	cw := csv.NewWriter(w)
	header := append([]string{dateColumn}, h.symbols...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, on := range h.days {
		record := make([]string, 0, len(header))
		record = append(record, on.String())
		for _, symbol := range h.symbols {
			if v, ok := h.Get(on, symbol); ok {
				record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV row for %s: %w", on, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReturnsSeries holds the per-asset simple daily returns derived from a
// price history: r[t] = price[t]/price[t-1] - 1.
//
// Each column is aligned on the source's consecutive date pairs and has one
// fewer observation than the source. A return is NaN when the later price is
// absent; an absent earlier price falls back to the last present one, so a
// gap does not poison the rest of the column.
type ReturnsSeries struct {
	symbols []string
	returns map[string][]float64
}

// Returns derives the daily return series of every asset column.
// An asset with fewer than two price observations yields an all-NaN column.
func (h *PriceHistory) Returns() *ReturnsSeries {
	rs := &ReturnsSeries{
		symbols: slices.Clone(h.symbols),
		returns: make(map[string][]float64, len(h.symbols)),
	}
	n := len(h.days)
	for _, symbol := range h.symbols {
		col := h.Column(symbol)
		r := make([]float64, max(n-1, 0))
		last := math.NaN() // last present price
		if n > 0 {
			last = col[0]
		}
		for i := 1; i < n; i++ {
			if math.IsNaN(col[i]) || math.IsNaN(last) || last == 0 {
				r[i-1] = math.NaN()
			} else {
				r[i-1] = col[i]/last - 1
			}
			if !math.IsNaN(col[i]) {
				last = col[i]
			}
		}
		rs.returns[symbol] = r
	}
	return rs
}

// Symbols returns the asset symbols in column order.
func (rs *ReturnsSeries) Symbols() []string { return slices.Clone(rs.symbols) }

// Len returns the number of return observations per column.
func (rs *ReturnsSeries) Len() int {
	for _, r := range rs.returns {
		return len(r)
	}
	return 0
}

// Column returns the aligned return column of symbol, NaN included, or nil
// for an unknown symbol.
func (rs *ReturnsSeries) Column(symbol string) []float64 {
	r, ok := rs.returns[symbol]
	if !ok {
		return nil
	}
	return slices.Clone(r)
}

// Valid returns the return column of symbol with NaN observations dropped.
func (rs *ReturnsSeries) Valid(symbol string) []float64 {
	r, ok := rs.returns[symbol]
	if !ok {
		return nil
	}
	valid := make([]float64, 0, len(r))
	for _, v := range r {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	return valid
}

// Defined reports whether symbol has at least one defined (non-NaN) return.
func (rs *ReturnsSeries) Defined(symbol string) bool { return len(rs.Valid(symbol)) > 0 }
