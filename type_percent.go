package fundrisk

import "fmt"

// Percent is a human-facing percentage value: Percent(1.5) renders "1.50%".
type Percent float64

// AsPercent converts a decimal fraction (0.015) into a Percent (1.5).
func AsPercent(fraction float64) Percent { return Percent(fraction * 100) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
