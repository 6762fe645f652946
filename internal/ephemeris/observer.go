package ephemeris

import (
	"math"
	"time"

	"Starluck/internal/astro"
)

// Mean obliquity of the ecliptic at J2000.0.
const obliquityJ2000 = 23.4392911

const degPerRad = 180 / math.Pi

func sind(d float64) float64 { return math.Sin(d / degPerRad) }
func cosd(d float64) float64 { return math.Cos(d / degPerRad) }
func atan2d(y, x float64) float64 {
	return math.Atan2(y, x) * degPerRad
}
func asind(x float64) float64 { return math.Asin(x) * degPerRad }

// julianDay converts a UTC instant to a Julian day number.
func julianDay(t time.Time) float64 {
	return float64(t.UnixNano())/1e9/86400 + 2440587.5
}

// gmst returns Greenwich mean sidereal time in degrees.
func gmst(t time.Time) float64 {
	jd := julianDay(t)
	d := jd - 2451545.0
	tc := d / 36525
	g := 280.46061837 + 360.98564736629*d + 0.000387933*tc*tc - tc*tc*tc/38710000
	return astro.Norm360(g)
}

// localSiderealTime returns LST in degrees for an east-positive longitude.
func localSiderealTime(t time.Time, loc astro.GeoLocation) float64 {
	return astro.Norm360(gmst(t) + loc.Lon)
}

// meanObliquity returns the mean obliquity of the ecliptic at the instant,
// in degrees. Polynomial in Julian centuries from J2000.0 (IAU 1980 series).
func meanObliquity(t time.Time) float64 {
	tc := (julianDay(t) - 2451545.0) / 36525
	return obliquityJ2000 - 0.0130042*tc - 1.64e-7*tc*tc + 5.036e-7*tc*tc*tc
}

// eclipticToEquatorial converts ecliptic (lon, lat) to (ra, dec), degrees,
// for the mean obliquity eps of the moment.
func eclipticToEquatorial(lon, lat, eps float64) (ra, dec float64) {
	sl, cl := sind(lon), cosd(lon)
	sb, cb := sind(lat), cosd(lat)
	se, ce := sind(eps), cosd(eps)
	ra = astro.Norm360(atan2d(sl*ce-sb/cb*se, cl))
	dec = asind(sb*ce + cb*se*sl)
	return ra, dec
}

// altAz converts equatorial coordinates to horizon altitude and azimuth
// (degrees; azimuth measured from north through east).
func altAz(ra, dec, lst, lat float64) (alt, az float64) {
	h := astro.Norm360(lst - ra)
	sinAlt := sind(dec)*sind(lat) + cosd(dec)*cosd(lat)*cosd(h)
	alt = asind(sinAlt)
	cosAz := (sind(dec) - sinAlt*sind(lat)) / (cosd(alt) * cosd(lat))
	sinAz := -sind(h) * cosd(dec) / cosd(alt)
	az = astro.Norm360(atan2d(sinAz, cosAz))
	return alt, az
}

// midheavenFromLST converts local sidereal time to the culminating ecliptic
// longitude.
func midheavenFromLST(t time.Time, loc astro.GeoLocation) float64 {
	theta := localSiderealTime(t, loc)
	return astro.Norm360(atan2d(sind(theta), cosd(theta)*cosd(meanObliquity(t))))
}

// ascendantSearch locates the ecliptic point crossing the eastern horizon
// going up: the candidate with smallest |altitude| whose azimuth lies in the
// ascending quadrant (45°,135°). Three coarse-to-fine passes: 5° over the
// full circle, 0.1° within ±5°, then 0.01° within ±0.5°.
func ascendantSearch(t time.Time, loc astro.GeoLocation) float64 {
	lst := localSiderealTime(t, loc)
	eps := meanObliquity(t)

	eval := func(lon float64) (absAlt, az float64) {
		ra, dec := eclipticToEquatorial(astro.Norm360(lon), 0, eps)
		alt, az := altAz(ra, dec, lst, loc.Lat)
		return math.Abs(alt), az
	}

	bestLon, bestAbs := 0.0, math.MaxFloat64
	consider := func(lon float64) {
		absAlt, az := eval(lon)
		if az > 45 && az < 135 && absAlt < bestAbs {
			bestLon, bestAbs = lon, absAlt
		}
	}

	for i := 0; i < 72; i++ {
		consider(float64(i) * 5)
	}
	lo, hi := bestLon-5, bestLon+5
	for lon := lo; lon <= hi; lon += 0.1 {
		consider(lon)
	}
	lo, hi = bestLon-0.5, bestLon+0.5
	for lon := lo; lon <= hi; lon += 0.01 {
		consider(lon)
	}
	return astro.Norm360(bestLon)
}

// SunAltitude returns the Sun's altitude above the horizon in degrees. Sect
// always derives from this regardless of which backend positioned the chart.
func SunAltitude(t time.Time, loc astro.GeoLocation) float64 {
	lon := sunEclipticLongitude(daysSinceEpoch(t))
	ra, dec := eclipticToEquatorial(lon, 0, meanObliquity(t))
	alt, _ := altAz(ra, dec, localSiderealTime(t, loc), loc.Lat)
	return alt
}
