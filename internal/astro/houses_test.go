package astro

import (
	"math"
	"testing"
)

func TestParseHouseSystem(t *testing.T) {
	for _, s := range []string{"WHOLE", "whole", "Equal", "PLACIDUS"} {
		if _, err := ParseHouseSystem(s); err != nil {
			t.Errorf("ParseHouseSystem(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseHouseSystem("KOCH"); err == nil {
		t.Error("expected error for unsupported system")
	}
}

func cuspArcSum(cusps []float64) float64 {
	sum := 0.0
	for i := 0; i < 12; i++ {
		sum += ArcForward(cusps[i], cusps[(i+1)%12])
	}
	return sum
}

func TestWholeSignCusps(t *testing.T) {
	cusps := WholeSignCusps(217.4)
	if len(cusps) != 12 {
		t.Fatalf("expected 12 cusps, got %d", len(cusps))
	}
	if cusps[0] != 210 {
		t.Errorf("first cusp = %v, want 210", cusps[0])
	}
	for i, c := range cusps {
		if math.Mod(c, 30) != 0 {
			t.Errorf("cusp %d = %v, not a multiple of 30", i+1, c)
		}
	}
	if sum := cuspArcSum(cusps); math.Abs(sum-360) > 1e-9 {
		t.Errorf("arc sum = %v, want 360", sum)
	}
}

func TestEqualCusps(t *testing.T) {
	asc := 217.4
	cusps := EqualCusps(asc)
	for k, c := range cusps {
		want := Norm360(asc + float64(k)*30)
		if math.Abs(c-want) > 1e-9 {
			t.Errorf("cusp %d = %v, want ASC+%d", k+1, c, k*30)
		}
	}
	if sum := cuspArcSum(cusps); math.Abs(sum-360) > 1e-9 {
		t.Errorf("arc sum = %v, want 360", sum)
	}
}

func TestHouseIndex(t *testing.T) {
	cusps := EqualCusps(100)

	// exactly on a cusp belongs to the house starting there
	if got := HouseIndex(cusps, 100); got != 1 {
		t.Errorf("on ascendant cusp: house %d, want 1", got)
	}
	if got := HouseIndex(cusps, 130); got != 2 {
		t.Errorf("on second cusp: house %d, want 2", got)
	}

	// strictly inside an arc
	if got := HouseIndex(cusps, 115); got != 1 {
		t.Errorf("inside first arc: house %d, want 1", got)
	}
	// inside the arc wrapping through 0° (cusp 9 at 340°, cusp 10 at 10°)
	if got := HouseIndex(cusps, 5); got != 9 {
		t.Errorf("inside wrapping arc: house %d, want 9", got)
	}

	// every longitude lands in exactly one house in 1..12
	for lon := 0.0; lon < 360; lon += 7.3 {
		h := HouseIndex(cusps, lon)
		if h < 1 || h > 12 {
			t.Fatalf("HouseIndex(%v) = %d, out of 1..12", lon, h)
		}
	}
}

func TestSignBreakdownPercentages(t *testing.T) {
	// equal houses from mid-sign: every house spans exactly two signs 50/50
	breakdown := SignBreakdown(EqualCusps(15))
	if len(breakdown) != 12 {
		t.Fatalf("expected 12 houses, got %d", len(breakdown))
	}
	for i, segs := range breakdown {
		if len(segs) != 2 {
			t.Fatalf("house %d has %d segments, want 2", i+1, len(segs))
		}
		total := 0.0
		for _, s := range segs {
			total += s.Percent
			if math.Abs(s.Degrees-15) > 1e-6 {
				t.Errorf("house %d segment span = %v, want 15", i+1, s.Degrees)
			}
		}
		if math.Abs(total-100) > 0.1 {
			t.Errorf("house %d percentages sum to %v", i+1, total)
		}
	}
}

func TestSignBreakdownAlignedCusps(t *testing.T) {
	// whole-sign houses sit exactly on boundaries: one full segment per house
	breakdown := SignBreakdown(WholeSignCusps(217.4))
	for i, segs := range breakdown {
		if len(segs) != 1 {
			t.Fatalf("house %d has %d segments, want 1", i+1, len(segs))
		}
		if segs[0].Percent != 100 {
			t.Errorf("house %d percent = %v, want 100", i+1, segs[0].Percent)
		}
	}
}

func TestInterceptionIdentity(t *testing.T) {
	// cluster cusps so several signs carry no cusp
	cusps := []float64{0, 20, 40, 60, 80, 100, 120, 140, 160, 180, 200, 220}
	cuspSigns := CuspSigns(cusps)
	intercepted := InterceptedSigns(cusps)

	distinct := make(map[string]bool)
	for _, s := range cuspSigns {
		distinct[s] = true
	}
	if len(distinct)+len(intercepted) != 12 {
		t.Errorf("distinct cusp signs (%d) + intercepted (%d) != 12", len(distinct), len(intercepted))
	}
	for _, s := range intercepted {
		if distinct[s] {
			t.Errorf("sign %q in both categories", s)
		}
	}
}

func TestInterceptionNoneForEqualFromBoundary(t *testing.T) {
	if got := InterceptedSigns(WholeSignCusps(5)); len(got) != 0 {
		t.Errorf("whole-sign houses intercepted %v, want none", got)
	}
}
