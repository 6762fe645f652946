package ephemeris

import (
	"math"
	"testing"
	"time"

	"Starluck/internal/astro"
)

func TestAnalyticLongitudesRangeAndRegistry(t *testing.T) {
	p := NewAnalytic()
	lons, err := p.Longitudes(time.Date(2020, 6, 15, 18, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Longitudes failed: %v", err)
	}
	if len(lons) != 10 {
		t.Fatalf("expected 10 bodies, got %d: %v", len(lons), lons)
	}
	for _, body := range p.Bodies() {
		lon, ok := lons[body]
		if !ok {
			t.Errorf("body %s missing", body)
			continue
		}
		if lon < 0 || lon >= 360 {
			t.Errorf("%s longitude %v out of [0,360)", body, lon)
		}
	}
}

func TestAnalyticSunNearJ2000(t *testing.T) {
	// the Sun sits near 280° ecliptic longitude at J2000.0
	p := NewAnalytic()
	lons, err := p.Longitudes(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Longitudes failed: %v", err)
	}
	if got := lons[astro.Sun]; math.Abs(got-280.46) > 1 {
		t.Errorf("Sun at J2000 = %v, want ~280.46", got)
	}
}

func TestAnalyticDailyMotion(t *testing.T) {
	p := NewAnalytic()
	t0 := time.Date(2010, 3, 10, 0, 0, 0, 0, time.UTC)
	a, _ := p.Longitudes(t0)
	b, _ := p.Longitudes(t0.AddDate(0, 0, 1))

	sunStep := astro.SignedDelta(b[astro.Sun], a[astro.Sun])
	if math.Abs(sunStep-0.9856) > 0.06 {
		t.Errorf("Sun daily motion = %v, want ~0.9856", sunStep)
	}
	moonStep := astro.SignedDelta(b[astro.Moon], a[astro.Moon])
	if moonStep < 11.5 || moonStep > 15.5 {
		t.Errorf("Moon daily motion = %v, want ~13.2", moonStep)
	}
}

func TestAnalyticHousesShapes(t *testing.T) {
	p := NewAnalytic()
	when := time.Date(1990, 1, 1, 17, 0, 0, 0, time.UTC)
	loc := astro.GeoLocation{Lat: 40.7128, Lon: -74.0060}

	for _, sys := range []astro.HouseSystem{astro.WholeSign, astro.EqualSign, astro.Placidus} {
		asc, mc, cusps, err := p.AnglesHouses(when, loc, sys)
		if err != nil {
			t.Fatalf("AnglesHouses(%s) failed: %v", sys, err)
		}
		if len(cusps) != 12 {
			t.Fatalf("%s: %d cusps", sys, len(cusps))
		}
		sum := 0.0
		for i := 0; i < 12; i++ {
			sum += astro.ArcForward(cusps[i], cusps[(i+1)%12])
		}
		if math.Abs(sum-360) > 1e-6 {
			t.Errorf("%s: arc sum %v, want 360", sys, sum)
		}
		if asc < 0 || asc >= 360 || mc < 0 || mc >= 360 {
			t.Errorf("%s: asc/mc out of range: %v/%v", sys, asc, mc)
		}
		if sys == astro.WholeSign {
			for _, c := range cusps {
				if math.Mod(c, 30) != 0 {
					t.Errorf("whole-sign cusp %v not aligned", c)
				}
			}
		}
	}
}

func TestAscendantOppositeDescendant(t *testing.T) {
	// the ascendant search finds the rising point; the MC must sit inside
	// the half-circle above the horizon, i.e. the ASC-MC forward arc stays
	// well away from 0 and 360
	p := NewAnalytic()
	when := time.Date(2005, 9, 21, 8, 15, 0, 0, time.UTC)
	loc := astro.GeoLocation{Lat: 51.5074, Lon: -0.1278}
	asc, mc, _, err := p.AnglesHouses(when, loc, astro.EqualSign)
	if err != nil {
		t.Fatalf("AnglesHouses failed: %v", err)
	}
	arc := astro.ArcForward(mc, asc)
	if arc < 30 || arc > 150 {
		t.Errorf("MC to ASC forward arc = %v, expected a plausible quadrant", arc)
	}
}

func TestMeanObliquityDrifts(t *testing.T) {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := meanObliquity(j2000); math.Abs(got-obliquityJ2000) > 1e-9 {
		t.Errorf("meanObliquity(J2000) = %v, want %v", got, obliquityJ2000)
	}
	later := meanObliquity(time.Date(2100, 1, 1, 12, 0, 0, 0, time.UTC))
	if later >= obliquityJ2000 || later < 23.42 {
		t.Errorf("meanObliquity(2100) = %v, want slightly below the J2000 value", later)
	}
}

func TestSunAltitudeDayNight(t *testing.T) {
	loc := astro.GeoLocation{Lat: 40.7128, Lon: -74.0060}
	// local noon in New York, sun well above the horizon
	noon := time.Date(1990, 1, 1, 17, 0, 0, 0, time.UTC)
	if alt := SunAltitude(noon, loc); alt <= 0 {
		t.Errorf("noon altitude = %v, want > 0", alt)
	}
	// local midnight, sun far below
	midnight := time.Date(1990, 1, 1, 5, 0, 0, 0, time.UTC)
	if alt := SunAltitude(midnight, loc); alt >= 0 {
		t.Errorf("midnight altitude = %v, want < 0", alt)
	}
}

func TestRetrogradeSharesBackend(t *testing.T) {
	// Sun and Moon never read retrograde from finite differences
	p := NewAnalytic()
	when := time.Date(2015, 4, 4, 12, 0, 0, 0, time.UTC)
	if Retrograde(p, when, astro.Sun) {
		t.Error("Sun flagged retrograde")
	}
	if Retrograde(p, when, astro.Moon) {
		t.Error("Moon flagged retrograde")
	}
	// unknown body reads direct rather than failing
	if Retrograde(p, when, astro.Chiron) {
		t.Error("absent body flagged retrograde")
	}
}
