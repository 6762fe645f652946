package astro

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// HouseSystem selects how the 12 house cusps are derived.
type HouseSystem string

const (
	WholeSign HouseSystem = "WHOLE"
	EqualSign HouseSystem = "EQUAL"
	Placidus  HouseSystem = "PLACIDUS"
)

// ErrUnsupportedHouseSystem rejects tags outside the enumerated set before
// any position work happens.
var ErrUnsupportedHouseSystem = errors.New("unsupported house system")

// ParseHouseSystem validates a house-system tag, case-insensitively.
func ParseHouseSystem(s string) (HouseSystem, error) {
	switch hs := HouseSystem(strings.ToUpper(s)); hs {
	case WholeSign, EqualSign, Placidus:
		return hs, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedHouseSystem, s)
	}
}

// WholeSignCusps returns 12 cusps starting at the sign boundary at or before
// the ascendant, 30° apart.
func WholeSignCusps(asc float64) []float64 {
	start := float64(int(Norm360(asc)/30)) * 30
	cusps := make([]float64, 12)
	for i := range cusps {
		cusps[i] = Norm360(start + float64(i)*30)
	}
	return cusps
}

// EqualCusps returns 12 cusps starting exactly at the ascendant, 30° apart.
func EqualCusps(asc float64) []float64 {
	cusps := make([]float64, 12)
	for i := range cusps {
		cusps[i] = Norm360(asc + float64(i)*30)
	}
	return cusps
}

// HouseIndex assigns a longitude to a house, 1..12. A longitude exactly on a
// cusp belongs to the house starting at that cusp; the 12→1 wrap boundary is
// cusp 1 and resolves to house 1 by the same rule.
func HouseIndex(cusps []float64, lon float64) int {
	lon = Norm360(lon)
	for i := 0; i < 12; i++ {
		a := Norm360(cusps[i])
		b := Norm360(cusps[(i+1)%12])
		if lon == a {
			return i + 1
		}
		if a < b {
			if a < lon && lon < b {
				return i + 1
			}
		} else if lon > a || lon < b {
			return i + 1
		}
	}
	return 12
}

// SignSegment is the portion of one house's arc lying inside one sign.
type SignSegment struct {
	Sign    string  `json:"sign"`
	Degrees float64 `json:"deg"`
	Percent float64 `json:"percent"`
}

// arcSegmentsBySign splits the forward arc [start, end) at sign boundaries.
func arcSegmentsBySign(start, end float64) []struct {
	sign Sign
	span float64
} {
	start, end = Norm360(start), Norm360(end)
	total := ArcForward(start, end)
	if total == 0 {
		total = 360
	}

	cur, left := start, total
	var out []struct {
		sign Sign
		span float64
	}
	for left > 1e-9 {
		sign := SignOf(cur)
		boundary := Norm360(float64(sign+1) * 30)
		step := ArcForward(cur, boundary)
		if step == 0 {
			step = 30
		}
		if step > left {
			step = left
		}
		out = append(out, struct {
			sign Sign
			span float64
		}{sign, step})
		cur = Norm360(cur + step)
		left -= step
	}
	return out
}

// SignBreakdown reports, for each house, the signs it spans with degree spans
// and the percentage of the house's total arc.
func SignBreakdown(cusps []float64) [][]SignSegment {
	breakdown := make([][]SignSegment, 12)
	for i := 0; i < 12; i++ {
		segs := arcSegmentsBySign(cusps[i], cusps[(i+1)%12])
		total := 0.0
		for _, s := range segs {
			total += s.span
		}
		if total == 0 {
			total = 1
		}
		parts := make([]SignSegment, 0, len(segs))
		for _, s := range segs {
			parts = append(parts, SignSegment{
				Sign:    s.sign.String(),
				Degrees: round4(s.span),
				Percent: round2(100 * s.span / total),
			})
		}
		breakdown[i] = parts
	}
	return breakdown
}

// CuspSigns returns the sign containing each cusp.
func CuspSigns(cusps []float64) []string {
	out := make([]string, len(cusps))
	for i, c := range cusps {
		out[i] = SignOf(c).String()
	}
	return out
}

// InterceptedSigns returns the signs containing no cusp at all.
func InterceptedSigns(cusps []float64) []string {
	seen := make(map[Sign]bool, 12)
	for _, c := range cusps {
		seen[SignOf(c)] = true
	}
	var out []string
	for s := Aries; s <= Pisces; s++ {
		if !seen[s] {
			out = append(out, s.String())
		}
	}
	return out
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
