// Package chart assembles natal charts and derived products (synastry,
// composite, transit forecasts) on top of an ephemeris backend.
package chart

import (
	"errors"
	"fmt"
	"time"

	"Starluck/internal/astro"
	"Starluck/internal/domain/models"
	"Starluck/internal/ephemeris"
	"Starluck/pkg/logger"
	"Starluck/pkg/metrics"
)

// ErrMalformedInput marks inputs that fail parsing rather than validation.
var ErrMalformedInput = errors.New("malformed input")

var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Service computes charts with a single ephemeris backend picked at
// construction time; one chart never mixes backends.
type Service struct {
	provider ephemeris.Provider
	log      *logger.Logger
	metrics  *metrics.Recorder
}

func NewService(provider ephemeris.Provider, log *logger.Logger, rec *metrics.Recorder) *Service {
	return &Service{provider: provider, log: log, metrics: rec}
}

// Backend reports the active ephemeris backend name.
func (s *Service) Backend() string {
	return s.provider.Name()
}

// Compute builds a full natal chart from a local datetime and location.
func (s *Service) Compute(req models.NatalChartRequest) (*astro.Chart, error) {
	start := time.Now()

	sys, err := astro.ParseHouseSystem(req.HouseSystem)
	if err != nil {
		return nil, err
	}

	utc, err := parseLocalDatetime(req.DatetimeLocal, req.Timezone)
	if err != nil {
		return nil, err
	}

	loc := astro.GeoLocation{
		Lat:        req.Location.Lat,
		Lon:        req.Location.Lon,
		ElevationM: req.Location.ElevationM,
	}

	lons, err := s.provider.Longitudes(utc)
	if err != nil {
		s.recordError("positions")
		return nil, fmt.Errorf("compute positions: %w", err)
	}

	asc, mc, cusps, err := s.provider.AnglesHouses(utc, loc, sys)
	if err != nil {
		s.recordError("houses")
		return nil, fmt.Errorf("compute houses: %w", err)
	}

	sect := astro.SectNight
	if ephemeris.SunAltitude(utc, loc) > 0 {
		sect = astro.SectDay
	}

	// Part of Fortune joins the chart only when both luminaries resolved.
	sunLon, haveSun := lons[astro.Sun]
	moonLon, haveMoon := lons[astro.Moon]
	if haveSun && haveMoon {
		lons[astro.PartOfFortune] = astro.PartOfFortuneLon(asc, sunLon, moonLon, sect)
	}

	planets := make(map[astro.Body]astro.BodyPosition, len(lons))
	for body, lon := range lons {
		sign, deg := astro.SignPos(lon)
		retro := false
		if body != astro.PartOfFortune {
			retro = ephemeris.Retrograde(s.provider, utc, body)
		}
		planets[body] = astro.BodyPosition{
			Lon:   lon,
			Sign:  sign.String(),
			Deg:   deg,
			House: astro.HouseIndex(cusps, lon),
			Retro: retro,
		}
	}

	// Aspects exclude the Part of Fortune.
	aspectLons := make(map[astro.Body]float64, len(lons))
	for body, lon := range lons {
		if body == astro.PartOfFortune {
			continue
		}
		aspectLons[body] = lon
	}

	chart := &astro.Chart{
		DatetimeUTC: utc.Format("2006-01-02T15:04:05Z"),
		Location: astro.ChartLocation{
			Lat: req.Location.Lat,
			Lon: req.Location.Lon,
			TZ:  req.Timezone,
		},
		Angles: astro.AngleSet{
			ASC: asc,
			DS:  astro.Norm360(asc + 180),
			MC:  mc,
			IC:  astro.Norm360(mc + 180),
		},
		Houses:           cusps,
		HouseSystem:      string(sys),
		Planets:          planets,
		Aspects:          astro.FindAspects(aspectLons),
		Sect:             sect,
		HouseSigns:       astro.SignBreakdown(cusps),
		CuspSigns:        astro.CuspSigns(cusps),
		InterceptedSigns: astro.InterceptedSigns(cusps),
	}
	if haveSun && haveMoon {
		phase := astro.MoonPhaseFrom(sunLon, moonLon)
		chart.MoonPhase = &phase
	}

	if s.metrics != nil {
		s.metrics.RecordChart(s.provider.Name(), string(sys))
		s.metrics.RecordLatency("natal_chart", time.Since(start).Seconds())
	}
	if s.log != nil {
		s.log.Debug("chart computed",
			logger.String("backend", s.provider.Name()),
			logger.String("house_system", string(sys)),
			logger.Int("bodies", len(planets)),
		)
	}
	return chart, nil
}

// Synastry finds inter-aspects between two pre-computed charts.
func (s *Service) Synastry(req models.SynastryRequest) (*models.SynastryResponse, error) {
	a := refLongitudes(req.ChartA)
	b := refLongitudes(req.ChartB)
	return &models.SynastryResponse{Interaspects: astro.SynastryAspects(a, b)}, nil
}

// Composite derives midpoint positions for bodies present in both charts.
func (s *Service) Composite(req models.CompositeRequest) (*models.CompositeResponse, error) {
	a := refLongitudes(req.ChartA)
	b := refLongitudes(req.ChartB)
	return &models.CompositeResponse{Midpoints: astro.CompositeMidpoints(a, b)}, nil
}

func refLongitudes(ref models.ChartRef) map[astro.Body]float64 {
	out := make(map[astro.Body]float64, len(ref.Planets))
	for name, p := range ref.Planets {
		out[astro.Body(name)] = astro.Norm360(p.Lon)
	}
	return out
}

func parseLocalDatetime(value, tz string) (time.Time, error) {
	location, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unknown timezone %q", ErrMalformedInput, tz)
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, value, location); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable datetime %q", ErrMalformedInput, value)
}

func (s *Service) recordError(kind string) {
	if s.metrics != nil {
		s.metrics.RecordError(kind)
	}
}
