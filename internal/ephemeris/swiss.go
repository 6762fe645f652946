package ephemeris

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/mshafiee/swephgo"

	"Starluck/internal/astro"
)

// Swiss Ephemeris body numbers and flag bits (stable across versions).
const (
	seSun      = 0
	seMoon     = 1
	seMercury  = 2
	seVenus    = 3
	seMars     = 4
	seJupiter  = 5
	seSaturn   = 6
	seUranus   = 7
	seNeptune  = 8
	sePluto    = 9
	seTrueNode = 11
	seChiron   = 15

	seGregCal = 1

	seflgSwieph = 2
	seflgMoseph = 4
	seflgSpeed  = 256
)

var swissBodies = map[astro.Body]int{
	astro.Sun:      seSun,
	astro.Moon:     seMoon,
	astro.Mercury:  seMercury,
	astro.Venus:    seVenus,
	astro.Mars:     seMars,
	astro.Jupiter:  seJupiter,
	astro.Saturn:   seSaturn,
	astro.Uranus:   seUranus,
	astro.Neptune:  seNeptune,
	astro.Pluto:    sePluto,
	astro.TrueNode: seTrueNode,
	astro.Chiron:   seChiron,
}

// SwissProvider is the precise backend wrapping the Swiss Ephemeris. With a
// configured dataset path it runs in SWIEPH mode (and serves Chiron);
// otherwise it falls back to the built-in Moshier model.
type SwissProvider struct {
	flags     int
	haveFiles bool
}

// NewSwiss probes the Swiss Ephemeris once: dataset files first, Moshier as
// the degraded mode. Both probes failing means the backend is unusable.
func NewSwiss(ephePath string) (*SwissProvider, error) {
	if ephePath != "" {
		swephgo.SetEphePath([]byte(ephePath))
	}

	probeJD := swephgo.Julday(2024, 1, 1, 12.0, seGregCal)
	if ephePath != "" {
		if _, err := swissCalcLon(probeJD, seSun, seflgSwieph|seflgSpeed); err == nil {
			return &SwissProvider{flags: seflgSwieph | seflgSpeed, haveFiles: true}, nil
		}
	}
	if _, err := swissCalcLon(probeJD, seSun, seflgMoseph|seflgSpeed); err != nil {
		return nil, fmt.Errorf("%w: swiss probe failed: %v", ErrNoBackend, err)
	}
	return &SwissProvider{flags: seflgMoseph | seflgSpeed}, nil
}

func (p *SwissProvider) Name() string { return "swiss" }

// HasDataset reports whether the precise dataset files were usable.
func (p *SwissProvider) HasDataset() bool { return p.haveFiles }

func (p *SwissProvider) Bodies() []astro.Body {
	bodies := []astro.Body{
		astro.Sun, astro.Moon, astro.Mercury, astro.Venus, astro.Mars,
		astro.Jupiter, astro.Saturn, astro.Uranus, astro.Neptune,
		astro.Pluto, astro.TrueNode,
	}
	if p.haveFiles {
		bodies = append(bodies, astro.Chiron)
	}
	return bodies
}

func (p *SwissProvider) Longitudes(t time.Time) (map[astro.Body]float64, error) {
	jd := julianDayUT(t)
	out := make(map[astro.Body]float64, len(swissBodies))
	for _, body := range p.Bodies() {
		lon, err := p.calcLon(jd, swissBodies[body])
		if err != nil {
			// per-body failure is an omission, not an error
			continue
		}
		out[body] = lon
	}
	return out, nil
}

// calcLon tries the configured flags first, then the Moshier model when the
// dataset mode fails for a body.
func (p *SwissProvider) calcLon(jd float64, body int) (float64, error) {
	return tryFirst(
		func() (float64, error) { return swissCalcLon(jd, body, p.flags) },
		func() (float64, error) {
			if p.flags&seflgSwieph == 0 {
				return 0, fmt.Errorf("no fallback flags")
			}
			return swissCalcLon(jd, body, seflgMoseph|seflgSpeed)
		},
	)
}

func swissCalcLon(jd float64, body, flags int) (float64, error) {
	xx := make([]float64, 6)
	serr := make([]byte, 256)
	if rc := swephgo.CalcUt(jd, body, flags, xx, serr); rc < 0 {
		return 0, fmt.Errorf("swe_calc_ut body %d: %s", body, cstring(serr))
	}
	return astro.Norm360(xx[0]), nil
}

type housesResult struct {
	asc, mc float64
	cusps   []float64
}

func (p *SwissProvider) AnglesHouses(t time.Time, loc astro.GeoLocation, sys astro.HouseSystem) (float64, float64, []float64, error) {
	jd := julianDayUT(t)
	upper := int(houseSelector(sys))
	lower := int(houseSelector(sys) | 0x20)

	call := func(iflag, hsys int, ex bool) func() (housesResult, error) {
		return func() (housesResult, error) {
			cusps := make([]float64, 13)
			ascmc := make([]float64, 10)
			var rc int32
			if ex {
				rc = swephgo.HousesEx(jd, iflag, loc.Lat, loc.Lon, hsys, cusps, ascmc)
			} else {
				rc = swephgo.Houses(jd, loc.Lat, loc.Lon, hsys, cusps, ascmc)
			}
			if rc < 0 {
				return housesResult{}, fmt.Errorf("swe_houses rc=%d", rc)
			}
			return parseHouses(cusps, ascmc)
		}
	}

	res, err := tryFirst(
		call(0, upper, true),
		call(p.flags, upper, true),
		call(0, lower, true),
		call(p.flags, lower, true),
		call(0, upper, false),
		call(0, lower, false),
	)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("swiss houses computation failed: %w", err)
	}
	return res.asc, res.mc, res.cusps, nil
}

// parseHouses validates the raw arrays structurally: usable angles and either
// a 1-based 13-slot or 0-based 12-slot cusp layout.
func parseHouses(cusps, ascmc []float64) (housesResult, error) {
	if len(ascmc) < 2 {
		return housesResult{}, fmt.Errorf("unexpected ascmc length %d", len(ascmc))
	}
	asc := astro.Norm360(ascmc[0])
	mc := astro.Norm360(ascmc[1])

	var out []float64
	switch {
	case len(cusps) >= 13 && nonZero(cusps[1:13]):
		out = normalizeAll(cusps[1:13])
	case len(cusps) >= 12 && nonZero(cusps[:12]):
		out = normalizeAll(cusps[:12])
	default:
		return housesResult{}, fmt.Errorf("unexpected cusps length %d", len(cusps))
	}
	for _, c := range out {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return housesResult{}, fmt.Errorf("non-finite cusp in result")
		}
	}
	return housesResult{asc: asc, mc: mc, cusps: out}, nil
}

func nonZero(xs []float64) bool {
	for _, x := range xs {
		if x != 0 {
			return true
		}
	}
	return false
}

func normalizeAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = astro.Norm360(x)
	}
	return out
}

// houseSelector maps a system tag to the Swiss single-character code.
func houseSelector(sys astro.HouseSystem) byte {
	switch sys {
	case astro.WholeSign:
		return 'W'
	case astro.EqualSign:
		return 'E'
	case astro.Placidus:
		return 'P'
	}
	return 'W'
}

func julianDayUT(t time.Time) float64 {
	u := t.UTC()
	hour := float64(u.Hour()) + float64(u.Minute())/60 + float64(u.Second())/3600
	return swephgo.Julday(u.Year(), int(u.Month()), u.Day(), hour, seGregCal)
}

func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
