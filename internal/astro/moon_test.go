package astro

import "testing"

func TestMoonPhaseBuckets(t *testing.T) {
	cases := []struct {
		sun, moon float64
		name      string
	}{
		{100, 100, "New Moon"},       // angle 0
		{0, 45, "Waxing Crescent"},   // upper bound inclusive
		{0, 90, "First Quarter"},     // angle 90
		{0, 180, "Full Moon"},        // exact opposition
		{0, 181, "Waning Gibbous"},   // just past full: (180,225]
		{0, 359.5, "New Moon"}, // (315,360] reads New Moon again
	}
	for _, c := range cases {
		got := MoonPhaseFrom(c.sun, c.moon)
		if got.Name != c.name {
			t.Errorf("phase(sun=%v, moon=%v) = %q, want %q", c.sun, c.moon, got.Name, c.name)
		}
	}
}

func TestMoonPhaseAngle(t *testing.T) {
	got := MoonPhaseFrom(350, 10)
	if got.Angle != 20 {
		t.Errorf("phase angle = %v, want 20", got.Angle)
	}
	if got.Name != "Waxing Crescent" {
		t.Errorf("phase name = %q, want Waxing Crescent", got.Name)
	}
}
