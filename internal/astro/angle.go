package astro

import (
	"fmt"
	"math"
)

// Norm360 normalizes any angle to [0, 360).
func Norm360(x float64) float64 {
	m := math.Mod(x, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// AngDist returns the angular distance between two ecliptic longitudes,
// always in [0, 180].
func AngDist(a, b float64) float64 {
	d := Norm360(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ArcForward returns the forward (ascending ecliptic) arc length from a to b.
func ArcForward(a, b float64) float64 {
	return Norm360(b - a)
}

// SignedDelta returns the signed shortest rotation from b to a, in (-180, 180].
// A negative result means a lies behind b, which is how retrograde motion is
// detected from two samples.
func SignedDelta(a, b float64) float64 {
	return math.Mod(a-b+540, 360) - 180
}

// Midpoint returns the midpoint of the shorter arc between two longitudes.
// A naive average breaks across the 0° wrap; this walks half the signed
// shorter arc from a instead.
func Midpoint(a, b float64) float64 {
	return Norm360(a + (math.Mod(b-a+540, 360)-180)/2)
}

// FormatDegree renders a longitude as degrees and arc minutes, e.g. "123°07′".
func FormatDegree(d float64) string {
	d = Norm360(d)
	deg := int(d)
	mins := int(math.Round((d - float64(deg)) * 60))
	if mins == 60 {
		deg, mins = deg+1, 0
	}
	return fmt.Sprintf("%d°%02d′", deg, mins)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
