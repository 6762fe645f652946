package astro

// Body identifies a celestial body or derived point. Availability varies by
// backend (Chiron needs the Swiss dataset), so bodies stay open strings
// rather than a closed enum.
type Body string

const (
	Sun           Body = "Sun"
	Moon          Body = "Moon"
	Mercury       Body = "Mercury"
	Venus         Body = "Venus"
	Mars          Body = "Mars"
	Jupiter       Body = "Jupiter"
	Saturn        Body = "Saturn"
	Uranus        Body = "Uranus"
	Neptune       Body = "Neptune"
	Pluto         Body = "Pluto"
	TrueNode      Body = "TrueNode"
	Chiron        Body = "Chiron"
	PartOfFortune Body = "PartOfFortune"
)

// BodyOrder is the canonical presentation order for chart output.
var BodyOrder = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn,
	Uranus, Neptune, Pluto, TrueNode, Chiron,
}

var bodyRank = func() map[Body]int {
	m := make(map[Body]int, len(BodyOrder))
	for i, b := range BodyOrder {
		m[b] = i
	}
	return m
}()

// SortedBodies returns the keys of a longitude map in canonical order;
// unknown bodies sort after known ones, alphabetically.
func SortedBodies(lons map[Body]float64) []Body {
	out := make([]Body, 0, len(lons))
	for b := range lons {
		out = append(out, b)
	}
	sortBodies(out)
	return out
}

func sortBodies(bs []Body) {
	less := func(a, b Body) bool {
		ra, oka := bodyRank[a]
		rb, okb := bodyRank[b]
		switch {
		case oka && okb:
			return ra < rb
		case oka:
			return true
		case okb:
			return false
		default:
			return a < b
		}
	}
	// insertion sort; body sets are tiny
	for i := 1; i < len(bs); i++ {
		for j := i; j > 0 && less(bs[j], bs[j-1]); j-- {
			bs[j], bs[j-1] = bs[j-1], bs[j]
		}
	}
}
