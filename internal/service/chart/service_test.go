package chart

import (
	"errors"
	"testing"
	"time"

	"Starluck/internal/astro"
	"Starluck/internal/domain/models"
)

// stubProvider serves fixed longitudes, optionally drifting at a constant
// rate per body so retrograde detection has something to read.
type stubProvider struct {
	lons  map[astro.Body]float64
	rates map[astro.Body]float64 // degrees per day
	asc   float64
	mc    float64
	calls int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Bodies() []astro.Body {
	out := make([]astro.Body, 0, len(p.lons))
	for b := range p.lons {
		out = append(out, b)
	}
	return out
}

func (p *stubProvider) Longitudes(t time.Time) (map[astro.Body]float64, error) {
	p.calls++
	days := t.Sub(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Hours() / 24
	out := make(map[astro.Body]float64, len(p.lons))
	for b, lon := range p.lons {
		out[b] = astro.Norm360(lon + p.rates[b]*days)
	}
	return out, nil
}

func (p *stubProvider) AnglesHouses(time.Time, astro.GeoLocation, astro.HouseSystem) (float64, float64, []float64, error) {
	return p.asc, p.mc, astro.WholeSignCusps(p.asc), nil
}

func newStub(lons map[astro.Body]float64) *stubProvider {
	return &stubProvider{lons: lons, rates: map[astro.Body]float64{}, asc: 15, mc: 280}
}

func natalRef(planets map[string]models.ChartRefPlanet) models.ChartRef {
	return models.ChartRef{Planets: planets}
}

func TestComputeRejectsUnknownHouseSystemBeforeProvider(t *testing.T) {
	stub := newStub(map[astro.Body]float64{astro.Sun: 100})
	svc := NewService(stub, nil, nil)

	_, err := svc.Compute(models.NatalChartRequest{
		DatetimeLocal: "1990-01-01T12:00",
		Timezone:      "UTC",
		HouseSystem:   "KOCH",
	})
	if !errors.Is(err, astro.ErrUnsupportedHouseSystem) {
		t.Fatalf("got %v, want ErrUnsupportedHouseSystem", err)
	}
	if stub.calls != 0 {
		t.Errorf("provider called %d times before validation", stub.calls)
	}
}

func TestComputeRejectsMalformedInput(t *testing.T) {
	svc := NewService(newStub(map[astro.Body]float64{astro.Sun: 100}), nil, nil)

	cases := []models.NatalChartRequest{
		{DatetimeLocal: "1990-01-01T12:00", Timezone: "Mars/Olympus", HouseSystem: "WHOLE"},
		{DatetimeLocal: "January 1st", Timezone: "UTC", HouseSystem: "WHOLE"},
	}
	for _, req := range cases {
		if _, err := svc.Compute(req); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("req %+v: got %v, want ErrMalformedInput", req, err)
		}
	}
}

func TestComputeAssemblesChart(t *testing.T) {
	stub := newStub(map[astro.Body]float64{
		astro.Sun:  100,
		astro.Moon: 190,
		astro.Mars: 160,
	})
	svc := NewService(stub, nil, nil)

	chart, err := svc.Compute(models.NatalChartRequest{
		DatetimeLocal: "2024-01-01T12:00",
		Timezone:      "UTC",
		Location:      models.GeoLocationInput{Lat: 40.7128, Lon: -74.0060},
		HouseSystem:   "WHOLE",
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if chart.HouseSystem != "WHOLE" {
		t.Errorf("house system = %q", chart.HouseSystem)
	}
	if got := chart.Angles.DS; got != astro.Norm360(chart.Angles.ASC+180) {
		t.Errorf("DS = %v, not opposite ASC %v", got, chart.Angles.ASC)
	}
	if got := chart.Angles.IC; got != astro.Norm360(chart.Angles.MC+180) {
		t.Errorf("IC = %v, not opposite MC %v", got, chart.Angles.MC)
	}
	if len(chart.Houses) != 12 {
		t.Fatalf("%d houses", len(chart.Houses))
	}

	// Part of Fortune present because both luminaries resolved
	pof, ok := chart.Planets[astro.PartOfFortune]
	if !ok {
		t.Fatal("Part of Fortune missing")
	}
	if pof.Retro {
		t.Error("Part of Fortune flagged retrograde")
	}
	// but it never participates in aspects
	for _, a := range chart.Aspects {
		if a.Body1 == astro.PartOfFortune || a.Body2 == astro.PartOfFortune {
			t.Errorf("Part of Fortune in aspect %+v", a)
		}
	}

	// Sun at 100° sits in Cancer
	sun := chart.Planets[astro.Sun]
	if sun.Sign != "Cancer" {
		t.Errorf("Sun sign = %q, want Cancer", sun.Sign)
	}
	if sun.House != astro.HouseIndex(chart.Houses, 100) {
		t.Errorf("Sun house = %d inconsistent with cusps", sun.House)
	}

	// Moon-Sun elongation 90° reads First Quarter
	if chart.MoonPhase == nil || chart.MoonPhase.Name != "First Quarter" {
		t.Errorf("moon phase = %+v, want First Quarter", chart.MoonPhase)
	}

	if len(chart.HouseSigns) != 12 || len(chart.CuspSigns) != 12 {
		t.Errorf("sign breakdown shapes: %d/%d", len(chart.HouseSigns), len(chart.CuspSigns))
	}
}

func TestComputeWithoutLuminariesOmitsMoonPhase(t *testing.T) {
	stub := newStub(map[astro.Body]float64{
		astro.Sun:  100,
		astro.Mars: 160,
	})
	svc := NewService(stub, nil, nil)

	chart, err := svc.Compute(models.NatalChartRequest{
		DatetimeLocal: "2024-01-01T12:00",
		Timezone:      "UTC",
		HouseSystem:   "WHOLE",
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if chart.MoonPhase != nil {
		t.Errorf("moon phase = %+v without a Moon position", chart.MoonPhase)
	}
	if _, ok := chart.Planets[astro.PartOfFortune]; ok {
		t.Error("Part of Fortune computed without both luminaries")
	}
}

func TestComputeRetrogradeFromDrift(t *testing.T) {
	stub := newStub(map[astro.Body]float64{
		astro.Sun:     100,
		astro.Moon:    190,
		astro.Mercury: 130,
	})
	stub.rates[astro.Mercury] = -1.2 // retrograde drift

	svc := NewService(stub, nil, nil)
	chart, err := svc.Compute(models.NatalChartRequest{
		DatetimeLocal: "2024-03-01T00:00",
		Timezone:      "UTC",
		HouseSystem:   "WHOLE",
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if !chart.Planets[astro.Mercury].Retro {
		t.Error("Mercury not flagged retrograde despite negative drift")
	}
	if chart.Planets[astro.Sun].Retro {
		t.Error("stationary Sun flagged retrograde")
	}
}

func TestSynastryAndComposite(t *testing.T) {
	svc := NewService(newStub(nil), nil, nil)

	a := natalRef(map[string]models.ChartRefPlanet{
		"Sun":  {Lon: 10},
		"Moon": {Lon: 200},
	})
	b := natalRef(map[string]models.ChartRefPlanet{
		"Sun":  {Lon: 190},
		"Mars": {Lon: 95},
	})

	syn, err := svc.Synastry(models.SynastryRequest{ChartA: a, ChartB: b})
	if err != nil {
		t.Fatalf("Synastry failed: %v", err)
	}
	foundOpp := false
	for _, asp := range syn.Interaspects {
		if asp.Body1 == astro.Sun && asp.Body2 == astro.Sun && asp.Kind == "opposition" {
			foundOpp = true
		}
	}
	if !foundOpp {
		t.Errorf("Sun-Sun opposition missing: %+v", syn.Interaspects)
	}

	comp, err := svc.Composite(models.CompositeRequest{
		ChartA: natalRef(map[string]models.ChartRefPlanet{"Sun": {Lon: 10}, "Moon": {Lon: 200}}),
		ChartB: natalRef(map[string]models.ChartRefPlanet{"Sun": {Lon: 50}, "Mars": {Lon: 95}}),
	})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	if len(comp.Midpoints) != 1 {
		t.Fatalf("midpoints = %v, want Sun only", comp.Midpoints)
	}
	if got := comp.Midpoints[astro.Sun]; got != 30 {
		t.Errorf("Sun midpoint = %v, want 30", got)
	}
}
