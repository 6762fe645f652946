package ephemeris

import (
	"testing"

	"Starluck/internal/astro"
)

func TestHouseSelector(t *testing.T) {
	cases := []struct {
		sys  astro.HouseSystem
		want byte
	}{
		{astro.WholeSign, 'W'},
		{astro.EqualSign, 'E'},
		{astro.Placidus, 'P'},
		{astro.HouseSystem("BOGUS"), 'W'},
	}
	for _, c := range cases {
		if got := houseSelector(c.sys); got != c.want {
			t.Errorf("houseSelector(%s) = %c, want %c", c.sys, got, c.want)
		}
	}
}

func TestSwissFlagBits(t *testing.T) {
	// flags travel as plain int through the calc and houses calls
	var flags int = seflgSwieph | seflgSpeed
	if flags != 258 {
		t.Errorf("swieph|speed = %d, want 258", flags)
	}
	p := &SwissProvider{flags: seflgMoseph | seflgSpeed}
	if p.flags != 260 {
		t.Errorf("moseph|speed = %d, want 260", p.flags)
	}
}

func TestParseHousesThirteenSlot(t *testing.T) {
	cusps := make([]float64, 13)
	for i := 1; i <= 12; i++ {
		cusps[i] = float64((i - 1) * 30)
	}
	cusps[1] = 370 // must normalize
	ascmc := []float64{370, 100, 0, 0, 0, 0, 0, 0, 0, 0}

	res, err := parseHouses(cusps, ascmc)
	if err != nil {
		t.Fatalf("parseHouses failed: %v", err)
	}
	if res.asc != 10 || res.mc != 100 {
		t.Errorf("asc/mc = %v/%v, want 10/100", res.asc, res.mc)
	}
	if len(res.cusps) != 12 {
		t.Fatalf("%d cusps", len(res.cusps))
	}
	if res.cusps[0] != 10 {
		t.Errorf("cusp[0] = %v, want normalized 10", res.cusps[0])
	}
	if res.cusps[11] != 330 {
		t.Errorf("cusp[11] = %v, want 330", res.cusps[11])
	}
}

func TestParseHousesTwelveSlot(t *testing.T) {
	cusps := make([]float64, 12)
	for i := range cusps {
		cusps[i] = float64(i*30 + 5)
	}
	res, err := parseHouses(cusps, []float64{5, 275})
	if err != nil {
		t.Fatalf("parseHouses failed: %v", err)
	}
	if res.cusps[0] != 5 || res.cusps[11] != 335 {
		t.Errorf("cusps = %v", res.cusps)
	}
}

func TestParseHousesRejectsGarbage(t *testing.T) {
	if _, err := parseHouses(make([]float64, 13), []float64{10, 100}); err == nil {
		t.Error("all-zero cusps accepted")
	}
	if _, err := parseHouses([]float64{1, 2, 3}, []float64{10, 100}); err == nil {
		t.Error("short cusps accepted")
	}
	if _, err := parseHouses(make([]float64, 13), []float64{10}); err == nil {
		t.Error("short ascmc accepted")
	}
}
