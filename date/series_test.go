package date

import "testing"

func TestSeriesAppend(t *testing.T) {
	s := new(Series)
	d1, v1 := New(2025, 7, 1), 101.5
	d2, v2 := New(2024, 7, 1), 99.0

	// Append two values in reverse order and check that the series
	// stays chronological at every step of the way.

	if s.Len() != 0 {
		t.Errorf("Series.Len() = %v want 0", s.Len())
	}

	s.Append(d1, v1)
	if s.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", s.Len())
	}

	s.Append(d2, v2)
	if s.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", s.Len())
	}

	if s.days[0] != d2 || s.values[0] != v2 {
		t.Errorf("series[0] = %v:%v want %v:%v", s.days[0], s.values[0], d2, v2)
	}
	if s.days[1] != d1 || s.values[1] != v1 {
		t.Errorf("series[1] = %v:%v want %v:%v", s.days[1], s.values[1], d1, v1)
	}
}

func TestSeriesAppendOverwrites(t *testing.T) {
	s := new(Series)
	on := New(2025, 1, 2)
	s.Append(on, 10).Append(on, 20)

	if s.Len() != 1 {
		t.Fatalf("Series.Len() = %v want 1", s.Len())
	}
	if v, ok := s.Get(on); !ok || v != 20 {
		t.Errorf("Get() = %v, %v want 20, true", v, ok)
	}
}

func TestSeriesLatest(t *testing.T) {
	s := new(Series)
	if day, v := s.Latest(); day != (Date{}) || v != 0 {
		t.Errorf("empty Latest() = %v, %v want zero values", day, v)
	}
	s.Append(New(2025, 1, 2), 10).Append(New(2025, 1, 3), 11)
	if day, v := s.Latest(); day != New(2025, 1, 3) || v != 11 {
		t.Errorf("Latest() = %v, %v want 2025-01-03, 11", day, v)
	}
}
