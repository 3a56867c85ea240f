package date

import (
	"iter"
	"slices"
	"sort"
)

// Series stores a chronological series of float observations, each associated
// with a specific date. It ensures that dates are unique and the series is
// always sorted.
type Series struct {
	days   []Date
	values []float64
}

// Len returns the number of observations in the series.
func (s *Series) Len() int { return len(s.days) }

// Latest returns the latest date and value in the series.
// If the series is empty, it returns zero values.
func (s *Series) Latest() (day Date, value float64) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return s.days[last], s.values[last]
}

// chronological is a private implementation to keep the series chronologically sorted.
type chronological struct{ *Series }

func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }

func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.values[i], c.values[j] = c.values[j], c.values[i]
}

func (s *Series) sort() { sort.Sort(chronological{s}) }

// Append adds an observation to the series.
//
// An existing value at that date is overwritten, giving priority to the last data.
func (s *Series) Append(on Date, v float64) *Series {
	if i := slices.Index(s.days, on); i >= 0 {
		s.values[i] = v
		return s
	}
	s.days, s.values = append(s.days, on), append(s.values, v)
	s.sort()
	return s
}

// Get returns the value at 'day' and true, or zero and false.
func (s *Series) Get(day Date) (float64, bool) {
	if i := slices.Index(s.days, day); i >= 0 {
		return s.values[i], true
	}
	return 0, false
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (s *Series) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}
