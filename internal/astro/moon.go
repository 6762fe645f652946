package astro

// MoonPhase names the Sun-Moon elongation bucket of a chart.
type MoonPhase struct {
	Name  string  `json:"name"`
	Angle float64 `json:"angle"`
}

// Buckets are inclusive of their upper bound; first match wins, so 0° and
// 360° both read New Moon.
var moonPhaseBuckets = []struct {
	bound float64
	name  string
}{
	{0, "New Moon"},
	{45, "Waxing Crescent"},
	{90, "First Quarter"},
	{135, "Waxing Gibbous"},
	{180, "Full Moon"},
	{225, "Waning Gibbous"},
	{270, "Last Quarter"},
	{315, "Waning Crescent"},
	{360, "New Moon"},
}

// MoonPhaseFrom buckets the normalized Moon-Sun elongation.
func MoonPhaseFrom(sunLon, moonLon float64) MoonPhase {
	angle := Norm360(moonLon - sunLon)
	for _, b := range moonPhaseBuckets {
		if angle <= b.bound {
			return MoonPhase{Name: b.name, Angle: angle}
		}
	}
	return MoonPhase{Name: "New Moon", Angle: angle}
}
