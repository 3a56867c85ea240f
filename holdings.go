package fundrisk

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Holdings holds a raw holdings table as exported by a broker: a header and
// one row per position. The schema is broker-specific, so cells stay strings.
type Holdings struct {
	Header []string
	Rows   [][]string
}

// LoadHoldings reads a holdings CSV file from disk.
func LoadHoldings(path string) (*Holdings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open holdings file: %w", err)
	}
	defer f.Close()
	h, err := DecodeHoldingsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read holdings file %q: %w", path, err)
	}
	return h, nil
}

// DecodeHoldingsCSV decodes a holdings table from CSV. Broker exports pad
// rows unevenly, so records of variable length are accepted.
func DecodeHoldingsCSV(r io.Reader) (*Holdings, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	h := &Holdings{Header: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV row: %w", err)
		}
		h.Rows = append(h.Rows, record)
	}
	return h, nil
}

// Len returns the number of position rows.
func (h *Holdings) Len() int { return len(h.Rows) }

// Filter returns a new holdings table keeping only the rows that carry a
// non-blank value in the named column. Broker exports append footer rows
// (disclaimers, totals) that leave the price columns empty; filtering on such
// a column strips them.
func (h *Holdings) Filter(column string) (*Holdings, error) {
	idx := slices.Index(h.Header, column)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found in the CSV file", column)
	}
	out := &Holdings{Header: h.Header}
	for _, row := range h.Rows {
		if len(row) > idx && strings.TrimSpace(row[idx]) != "" {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}

// EncodeHoldingsCSV writes the holdings table back as CSV.
func EncodeHoldingsCSV(w io.Writer, h *Holdings) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(h.Header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, row := range h.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
