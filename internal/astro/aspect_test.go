package astro

import (
	"math"
	"testing"
)

func findKind(hits []Aspect, kind string) *Aspect {
	for i := range hits {
		if hits[i].Kind == kind {
			return &hits[i]
		}
	}
	return nil
}

func TestConjunctionAndOppositionAlwaysRegister(t *testing.T) {
	hits := FindAspects(map[Body]float64{Sun: 100, Moon: 100})
	conj := findKind(hits, "conjunction")
	if conj == nil {
		t.Fatal("distance 0 did not register a conjunction")
	}
	if conj.Orb != 8 || conj.Off != 0 {
		t.Errorf("conjunction orb/off = %v/%v, want 8/0", conj.Orb, conj.Off)
	}

	hits = FindAspects(map[Body]float64{Sun: 10, Moon: 190})
	opp := findKind(hits, "opposition")
	if opp == nil {
		t.Fatal("distance 180 did not register an opposition")
	}
	if opp.Orb != 8 || opp.Off != 0 {
		t.Errorf("opposition orb/off = %v/%v, want 8/0", opp.Orb, opp.Off)
	}
}

func TestEveryReferenceAngleMatchesAtExactDistance(t *testing.T) {
	for _, k := range AspectTable {
		hits := hitsForDistance(Sun, Moon, k.Angle)
		if findKind(hits, k.Name) == nil {
			t.Errorf("exact distance %v did not register %q", k.Angle, k.Name)
		}
	}
}

func TestAspectIndependentMatching(t *testing.T) {
	// every reference angle is tested independently per pair, and an orb
	// window is inclusive at its edge
	hits := hitsForDistance(Sun, Moon, 145.5)
	if findKind(hits, "biquintile") == nil {
		t.Errorf("distance 145.5 should match biquintile (|145.5-144| <= 1.5), got %v", hits)
	}
	// just outside an orb window registers nothing for that kind
	if a := findKind(hitsForDistance(Sun, Moon, 146.0), "biquintile"); a != nil {
		t.Errorf("distance 146 within biquintile orb unexpectedly: %+v", a)
	}
}

func TestAspectDeviationKeepsSign(t *testing.T) {
	hits := hitsForDistance(Sun, Mars, 87.5)
	sq := findKind(hits, "square")
	if sq == nil {
		t.Fatal("distance 87.5 did not register a square")
	}
	if sq.Off != -2.5 {
		t.Errorf("square off = %v, want -2.5", sq.Off)
	}
}

func TestAspectOrdering(t *testing.T) {
	lons := map[Body]float64{
		Sun:     0,
		Venus:   2,   // conjunction with Sun, off 2
		Mars:    180, // opposition with Sun, off 0
		Jupiter: 90,  // square with Sun, off 0
	}
	hits := FindAspects(lons)
	if len(hits) < 3 {
		t.Fatalf("expected at least 3 hits, got %d", len(hits))
	}
	lastRank, lastOff := -1, -1.0
	for _, h := range hits {
		r := rankOf(h.Kind)
		if r < lastRank {
			t.Fatalf("aspect %q out of rank order: %v", h.Kind, hits)
		}
		if r == lastRank && math.Abs(h.Off) < lastOff {
			t.Fatalf("aspect %q out of deviation order: %v", h.Kind, hits)
		}
		lastRank, lastOff = r, math.Abs(h.Off)
	}
	if hits[0].Kind != "conjunction" {
		t.Errorf("first hit = %q, want conjunction", hits[0].Kind)
	}
}

func TestSynastryAspects(t *testing.T) {
	a := map[Body]float64{Sun: 15}
	b := map[Body]float64{Moon: 195, Venus: 75}
	hits := SynastryAspects(a, b)
	if findKind(hits, "opposition") == nil {
		t.Error("cross-chart Sun/Moon opposition missing")
	}
	if findKind(hits, "sextile") == nil {
		t.Error("cross-chart Sun/Venus sextile missing")
	}
}

func TestCompositeMidpointIdentity(t *testing.T) {
	chart := map[Body]float64{Sun: 280.123, Moon: 5.5, Mars: 359.9}
	mids := CompositeMidpoints(chart, chart)
	for body, lon := range chart {
		if got := mids[body]; math.Abs(got-lon) > 1e-9 {
			t.Errorf("self-composite %s = %v, want %v", body, got, lon)
		}
	}
}

func TestCompositeMidpointIntersectionOnly(t *testing.T) {
	a := map[Body]float64{Sun: 10, Moon: 100}
	b := map[Body]float64{Sun: 30}
	mids := CompositeMidpoints(a, b)
	if len(mids) != 1 {
		t.Fatalf("expected only shared bodies, got %v", mids)
	}
	if got := mids[Sun]; math.Abs(got-20) > 1e-9 {
		t.Errorf("midpoint Sun = %v, want 20", got)
	}
}
