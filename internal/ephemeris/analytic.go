package ephemeris

import (
	"math"
	"time"

	"Starluck/internal/astro"
)

// AnalyticProvider is the approximate backend: a classical Kepler-element
// planetary model with the major lunar and giant-planet perturbation terms.
// It needs no dataset and covers the ten classical bodies; TrueNode and
// Chiron require the precise backend.
type AnalyticProvider struct{}

// NewAnalytic constructs the approximate backend.
func NewAnalytic() *AnalyticProvider {
	return &AnalyticProvider{}
}

func (p *AnalyticProvider) Name() string { return "analytic" }

func (p *AnalyticProvider) Bodies() []astro.Body {
	return []astro.Body{
		astro.Sun, astro.Moon, astro.Mercury, astro.Venus, astro.Mars,
		astro.Jupiter, astro.Saturn, astro.Uranus, astro.Neptune, astro.Pluto,
	}
}

func (p *AnalyticProvider) Longitudes(t time.Time) (map[astro.Body]float64, error) {
	d := daysSinceEpoch(t)
	sunLon, sunR := sunPosition(d)

	out := map[astro.Body]float64{
		astro.Sun:   astro.Norm360(sunLon),
		astro.Moon:  moonLongitude(d),
		astro.Pluto: plutoLongitude(d),
	}
	for body, el := range planetElements {
		out[body] = geocentricLongitude(body, el, d, sunLon, sunR)
	}
	return out, nil
}

func (p *AnalyticProvider) AnglesHouses(t time.Time, loc astro.GeoLocation, sys astro.HouseSystem) (float64, float64, []float64, error) {
	asc := ascendantSearch(t, loc)
	mc := midheavenFromLST(t, loc)

	var cusps []float64
	switch sys {
	case astro.WholeSign:
		cusps = astro.WholeSignCusps(asc)
	case astro.EqualSign:
		cusps = astro.EqualCusps(asc)
	case astro.Placidus:
		// no geometric Placidus without the precise engine; equal-house
		// cusps stand in (documented limitation)
		cusps = astro.EqualCusps(asc)
	default:
		return 0, 0, nil, astro.ErrUnsupportedHouseSystem
	}
	return asc, mc, cusps, nil
}

// daysSinceEpoch is the element epoch time scale: days from 2000-01-01 0:00 UT
// via JD - 2451543.5.
func daysSinceEpoch(t time.Time) float64 {
	return julianDay(t) - 2451543.5
}

// sunEclipticLongitude is shared with the observer math (sect, altitude).
func sunEclipticLongitude(d float64) float64 {
	lon, _ := sunPosition(d)
	return astro.Norm360(lon)
}

// sunPosition returns the geocentric ecliptic longitude (deg) and distance
// (AU) of the Sun.
func sunPosition(d float64) (lon, r float64) {
	w := 282.9404 + 4.70935e-5*d
	e := 0.016709 - 1.151e-9*d
	m := astro.Norm360(356.0470 + 0.9856002585*d)

	ea := m + e*degPerRad*sind(m)*(1+e*cosd(m))
	xv := cosd(ea) - e
	yv := math.Sqrt(1-e*e) * sind(ea)
	v := atan2d(yv, xv)
	r = math.Sqrt(xv*xv + yv*yv)
	return astro.Norm360(v + w), r
}

// orbital elements as linear functions of d
type elements struct {
	n0, nd float64 // longitude of ascending node
	i0, id float64 // inclination
	w0, wd float64 // argument of perihelion
	a0, ad float64 // semi-major axis, AU
	e0, ed float64 // eccentricity
	m0, md float64 // mean anomaly
}

func (el elements) at(d float64) (n, i, w, a, e, m float64) {
	return el.n0 + el.nd*d, el.i0 + el.id*d, el.w0 + el.wd*d,
		el.a0 + el.ad*d, el.e0 + el.ed*d, astro.Norm360(el.m0 + el.md*d)
}

var planetElements = map[astro.Body]elements{
	astro.Mercury: {48.3313, 3.24587e-5, 7.0047, 5.00e-8, 29.1241, 1.01444e-5, 0.387098, 0, 0.205635, 5.59e-10, 168.6562, 4.0923344368},
	astro.Venus:   {76.6799, 2.46590e-5, 3.3946, 2.75e-8, 54.8910, 1.38374e-5, 0.723330, 0, 0.006773, -1.302e-9, 48.0052, 1.6021302244},
	astro.Mars:    {49.5574, 2.11081e-5, 1.8497, -1.78e-8, 286.5016, 2.92961e-5, 1.523688, 0, 0.093405, 2.516e-9, 18.6021, 0.5240207766},
	astro.Jupiter: {100.4542, 2.76854e-5, 1.3030, -1.557e-7, 273.8777, 1.64505e-5, 5.20256, 0, 0.048498, 4.469e-9, 19.8950, 0.0830853001},
	astro.Saturn:  {113.6634, 2.38980e-5, 2.4886, -1.081e-7, 339.3939, 2.97661e-5, 9.55475, 0, 0.055546, -9.499e-9, 316.9670, 0.0334442282},
	astro.Uranus:  {74.0005, 1.3978e-5, 0.7733, 1.9e-8, 96.6612, 3.0565e-5, 19.18171, -1.55e-8, 0.047318, 7.45e-9, 142.5905, 0.011725806},
	astro.Neptune: {131.7806, 3.0173e-5, 1.7700, -2.55e-7, 272.8461, -6.027e-6, 30.05826, 3.313e-8, 0.008606, 2.15e-9, 260.2471, 0.005995147},
}

// solveKepler iterates the eccentric anomaly in degrees.
func solveKepler(m, e float64) float64 {
	ea := m + e*degPerRad*sind(m)*(1+e*cosd(m))
	for iter := 0; iter < 20; iter++ {
		delta := (ea - e*degPerRad*sind(ea) - m) / (1 - e*cosd(ea))
		ea -= delta
		if math.Abs(delta) < 1e-6 {
			break
		}
	}
	return ea
}

// heliocentric returns rectangular ecliptic coordinates from elements.
func heliocentric(n, i, w, a, e, m float64) (xh, yh, zh float64) {
	ea := solveKepler(m, e)
	xv := a * (cosd(ea) - e)
	yv := a * math.Sqrt(1-e*e) * sind(ea)
	v := atan2d(yv, xv)
	r := math.Sqrt(xv*xv + yv*yv)

	xh = r * (cosd(n)*cosd(v+w) - sind(n)*sind(v+w)*cosd(i))
	yh = r * (sind(n)*cosd(v+w) + cosd(n)*sind(v+w)*cosd(i))
	zh = r * sind(v+w) * sind(i)
	return
}

// geocentricLongitude converts a planet's heliocentric position to geocentric
// ecliptic longitude, applying the classical perturbation terms for the
// giant planets.
func geocentricLongitude(body astro.Body, el elements, d, sunLon, sunR float64) float64 {
	n, i, w, a, e, m := el.at(d)
	xh, yh, zh := heliocentric(n, i, w, a, e, m)

	lonEcl := atan2d(yh, xh)
	latEcl := atan2d(zh, math.Sqrt(xh*xh+yh*yh))
	r := math.Sqrt(xh*xh + yh*yh + zh*zh)

	if p := perturbLongitude(body, d); p != 0 {
		lonEcl += p
	}

	// back to rectangular with perturbed longitude, then add the Sun
	xp := r * cosd(lonEcl) * cosd(latEcl)
	yp := r * sind(lonEcl) * cosd(latEcl)
	xg := xp + sunR*cosd(sunLon)
	yg := yp + sunR*sind(sunLon)
	return astro.Norm360(atan2d(yg, xg))
}

// perturbLongitude returns the longitude perturbation in degrees for bodies
// with significant mutual terms.
func perturbLongitude(body astro.Body, d float64) float64 {
	mj := astro.Norm360(19.8950 + 0.0830853001*d)  // Jupiter mean anomaly
	ms := astro.Norm360(316.9670 + 0.0334442282*d) // Saturn
	mu := astro.Norm360(142.5905 + 0.011725806*d)  // Uranus

	switch body {
	case astro.Jupiter:
		return -0.332*sind(2*mj-5*ms-67.6) -
			0.056*sind(2*mj-2*ms+21) +
			0.042*sind(3*mj-5*ms+21) -
			0.036*sind(mj-2*ms) +
			0.022*cosd(mj-ms) +
			0.023*sind(2*mj-3*ms+52) -
			0.016*sind(mj-5*ms-69)
	case astro.Saturn:
		return 0.812*sind(2*mj-5*ms-67.6) -
			0.229*cosd(2*mj-4*ms-2) +
			0.119*sind(mj-2*ms-3) +
			0.046*sind(2*mj-6*ms-69) +
			0.014*sind(mj-3*ms+32)
	case astro.Uranus:
		return 0.040*sind(ms-2*mu+6) +
			0.035*sind(ms-3*mu+33) -
			0.015*sind(mj-mu+20)
	}
	return 0
}

// moonLongitude returns the Moon's geocentric ecliptic longitude with the
// dominant perturbation terms (evection, variation, annual equation, ...).
func moonLongitude(d float64) float64 {
	n := 125.1228 - 0.0529538083*d
	i := 5.1454
	w := 318.0634 + 0.1643573223*d
	a := 60.2666 // Earth radii
	e := 0.054900
	m := astro.Norm360(115.3654 + 13.0649929509*d)

	xh, yh, _ := heliocentric(n, i, w, a, e, m)
	lon := atan2d(yh, xh)

	// fundamental arguments for the perturbation series
	ms := astro.Norm360(356.0470 + 0.9856002585*d) // Sun mean anomaly
	ws := 282.9404 + 4.70935e-5*d
	ls := ms + ws     // Sun mean longitude
	lm := m + w + n   // Moon mean longitude
	dd := lm - ls     // mean elongation
	f := lm - n       // argument of latitude

	lon += -1.274*sind(m-2*dd) +
		0.658*sind(2*dd) -
		0.186*sind(ms) -
		0.059*sind(2*m-2*dd) -
		0.057*sind(m-2*dd+ms) +
		0.053*sind(m+2*dd) +
		0.046*sind(2*dd-ms) +
		0.041*sind(m-ms) -
		0.035*sind(dd) -
		0.031*sind(m+ms) -
		0.015*sind(2*f-2*dd) +
		0.011*sind(m-4*dd)
	return astro.Norm360(lon)
}

// plutoLongitude uses the periodic-term expansion valid for the 20th and 21st
// centuries; fine for sign-level work, not for occultations.
func plutoLongitude(d float64) float64 {
	s := 50.03 + 0.033459652*d
	pp := 238.95 + 0.003968789*d

	lon := 238.9508 + 0.00400703*d -
		19.799*sind(pp) + 19.848*cosd(pp) +
		0.897*sind(2*pp) - 4.956*cosd(2*pp) +
		0.610*sind(3*pp) + 1.211*cosd(3*pp) -
		0.341*sind(4*pp) - 0.190*cosd(4*pp) +
		0.128*sind(5*pp) - 0.034*cosd(5*pp) -
		0.038*sind(6*pp) + 0.031*cosd(6*pp) +
		0.020*sind(s-pp) - 0.010*cosd(s-pp)
	return astro.Norm360(lon)
}
