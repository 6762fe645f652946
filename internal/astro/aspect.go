package astro

import (
	"math"
	"sort"
)

// AspectKind is one reference angle in the fixed aspect table.
type AspectKind struct {
	Angle  float64
	Name   string
	Symbol string
	Orb    float64
}

// AspectTable is the fixed set of reference aspect angles with their maximum
// orbs. Every angle within orb of a pair's distance registers independently;
// the table is never deduplicated against itself.
var AspectTable = []AspectKind{
	{0, "conjunction", "☌", 8},
	{30, "semisextile", "⚺", 2},
	{36, "decile", "⯑", 1.5},
	{45, "semisquare", "∠", 2},
	{60, "sextile", "⚹", 4},
	{72, "quintile", "⬠", 2},
	{90, "square", "□", 6},
	{108, "tredecile", "⯑", 1.5},
	{120, "trine", "△", 6},
	{135, "sesquiquadrate", "⚼", 2},
	{144, "biquintile", "±", 1.5},
	{150, "quincunx", "⚻", 3},
	{180, "opposition", "☍", 8},
}

// Aspect is a detected angular relationship between two bodies. Off keeps its
// sign for explanation; sorting uses the magnitude.
type Aspect struct {
	Body1  Body    `json:"p1"`
	Body2  Body    `json:"p2"`
	Kind   string  `json:"aspect"`
	Symbol string  `json:"glyph"`
	Orb    float64 `json:"orb"`
	Off    float64 `json:"off"`
}

var aspectRank = map[string]int{
	"conjunction": 0,
	"opposition":  1,
	"square":      2,
	"trine":       3,
	"sextile":     4,
}

func rankOf(kind string) int {
	if r, ok := aspectRank[kind]; ok {
		return r
	}
	return 5
}

// hitsForDistance matches one pair distance against every reference angle.
func hitsForDistance(a, b Body, d float64) []Aspect {
	var hits []Aspect
	for _, k := range AspectTable {
		delta := math.Min(math.Abs(d-k.Angle), math.Abs(d-(360-k.Angle)))
		if delta <= k.Orb {
			hits = append(hits, Aspect{
				Body1:  a,
				Body2:  b,
				Kind:   k.Name,
				Symbol: k.Symbol,
				Orb:    k.Orb,
				Off:    round2(d - k.Angle),
			})
		}
	}
	return hits
}

func sortAspects(hits []Aspect) {
	sort.SliceStable(hits, func(i, j int) bool {
		ri, rj := rankOf(hits[i].Kind), rankOf(hits[j].Kind)
		if ri != rj {
			return ri < rj
		}
		return math.Abs(hits[i].Off) < math.Abs(hits[j].Off)
	})
}

// FindAspects detects aspects between all body pairs of a single chart.
// Output is ordered by importance rank, then ascending |deviation|.
func FindAspects(lons map[Body]float64) []Aspect {
	names := SortedBodies(lons)
	var hits []Aspect
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			d := AngDist(lons[names[i]], lons[names[j]])
			hits = append(hits, hitsForDistance(names[i], names[j], d)...)
		}
	}
	sortAspects(hits)
	return hits
}

// SynastryAspects detects aspects over the Cartesian product of two charts'
// bodies, ordered like FindAspects.
func SynastryAspects(a, b map[Body]float64) []Aspect {
	var hits []Aspect
	for _, na := range SortedBodies(a) {
		for _, nb := range SortedBodies(b) {
			d := AngDist(a[na], b[nb])
			hits = append(hits, hitsForDistance(na, nb, d)...)
		}
	}
	sortAspects(hits)
	return hits
}

// CompositeMidpoints returns the shorter-arc midpoint for every body present
// in both charts.
func CompositeMidpoints(a, b map[Body]float64) map[Body]float64 {
	mids := make(map[Body]float64)
	for body, la := range a {
		if lb, ok := b[body]; ok {
			mids[body] = Midpoint(la, lb)
		}
	}
	return mids
}
