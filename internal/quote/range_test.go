package quote

import "testing"

func TestResolve_AllRanges(t *testing.T) {
	tests := []struct {
		r        Range
		span     string
		interval string
	}{
		{Range1d, "1d", "5m"},
		{Range5d, "5d", "15m"},
		{Range1w, "5d", "15m"},
		{Range1mo, "1mo", "1d"},
		{Range3mo, "3mo", "1d"},
		{Range6mo, "6mo", "1d"},
		{Range1y, "1y", "1wk"},
	}
	for _, tt := range tests {
		span, interval := Resolve(tt.r)
		if span != tt.span || interval != tt.interval {
			t.Errorf("Resolve(%q) = (%q, %q), expected (%q, %q)",
				tt.r, span, interval, tt.span, tt.interval)
		}
	}
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	for _, r := range []Range{"", "2y", "ytd", "bogus"} {
		span, interval := Resolve(r)
		if span != "1d" || interval != "1d" {
			t.Errorf("Resolve(%q) = (%q, %q), expected default (1d, 1d)", r, span, interval)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	s1, i1 := Resolve(Range1mo)
	s2, i2 := Resolve(Range1mo)
	if s1 != s2 || i1 != i2 {
		t.Errorf("Resolve not deterministic: (%q,%q) vs (%q,%q)", s1, i1, s2, i2)
	}
}
