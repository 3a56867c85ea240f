package fundrisk

import "testing"

func TestPercentString(t *testing.T) {
	tests := []struct {
		p    Percent
		want string
	}{
		{Percent(1.5), "1.50%"},
		{Percent(0.03), "0.03%"},
		{Percent(-2), "-2.00%"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Percent(%v).String() = %q want %q", float64(tt.p), got, tt.want)
		}
	}
}

func TestPercentSignedString(t *testing.T) {
	if got := Percent(1.5).SignedString(); got != "+1.50%" {
		t.Errorf("SignedString() = %q want +1.50%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q want -", got)
	}
}

func TestAsPercent(t *testing.T) {
	if got := AsPercent(0.0003); !got.Equal(Percent(0.03)) {
		t.Errorf("AsPercent(0.0003) = %v want 0.03", float64(got))
	}
}

func TestMoney(t *testing.T) {
	m := M(10000, "USD")
	if got := m.String(); got != "$10,000.00" {
		t.Errorf("String() = %q want $10,000.00", got)
	}
	if got := m.MulFloat(0.0003); !got.Equal(M(3, "USD")) {
		t.Errorf("MulFloat(0.0003) = %v want $3.00", got)
	}
	if !M(0, "EUR").IsZero() {
		t.Error("IsZero() = false want true")
	}
}
