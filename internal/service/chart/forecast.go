package chart

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"Starluck/internal/astro"
	"Starluck/internal/domain/models"
	"Starluck/internal/ephemeris"
	"Starluck/pkg/logger"
)

const (
	// Transit scans use orbs far tighter than natal aspects; the fast
	// Moon gets double the allowance.
	transitOrb     = 0.8
	transitOrbMoon = 1.6

	combustionOrb = 8.5

	maxScanWorkers = 4
)

var forecastLayouts = append([]string{"2006-01-02"}, datetimeLayouts...)

// Forecast scans a date window for transiting aspects against a natal
// chart. Steps are computed concurrently; output order is deterministic.
func (s *Service) Forecast(req models.ForecastRequest) (*models.ForecastResponse, error) {
	scanStart := time.Now()

	start, err := parseForecastStart(req.StartDate, req.Timezone)
	if err != nil {
		return nil, err
	}

	natal := refLongitudes(req.NatalChart)
	natalHouses := make(map[astro.Body]int, len(req.NatalChart.Planets))
	for name, p := range req.NatalChart.Planets {
		natalHouses[astro.Body(name)] = p.House
	}

	var steps []time.Time
	totalHours := req.Days * 24
	for offset := 0; offset <= totalHours; offset += req.StepHours {
		steps = append(steps, start.Add(time.Duration(offset)*time.Hour))
	}

	results := make([][]astro.TransitHit, len(steps))
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := maxScanWorkers
	if len(steps) < workers {
		workers = len(steps)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.scanStep(steps[i], natal, natalHouses)
			}
		}()
	}
	for i := range steps {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var hits []astro.TransitHit
	for _, stepHits := range results {
		hits = append(hits, stepHits...)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].WhenUTC != hits[j].WhenUTC {
			return hits[i].WhenUTC < hits[j].WhenUTC
		}
		return hits[i].OrbDiff < hits[j].OrbDiff
	})
	if hits == nil {
		hits = []astro.TransitHit{}
	}

	if s.metrics != nil {
		s.metrics.RecordForecast(len(hits))
		s.metrics.RecordLatency("forecast", time.Since(scanStart).Seconds())
	}
	if s.log != nil {
		s.log.Debug("forecast scan done",
			logger.Int("steps", len(steps)),
			logger.Int("hits", len(hits)),
		)
	}
	return &models.ForecastResponse{Transits: hits}, nil
}

// scanStep evaluates one instant. A failed position lookup drops the step
// silently; the scan carries on with the remaining instants.
func (s *Service) scanStep(t time.Time, natal map[astro.Body]float64, natalHouses map[astro.Body]int) []astro.TransitHit {
	lons, err := s.provider.Longitudes(t)
	if err != nil || len(lons) == 0 {
		return nil
	}

	sunLon, haveSun := lons[astro.Sun]
	when := t.UTC().Format("2006-01-02T15:04:05Z")

	retro := make(map[astro.Body]bool, len(lons))
	for body := range lons {
		retro[body] = ephemeris.Retrograde(s.provider, t, body)
	}

	natalOrder := astro.SortedBodies(natal)

	var hits []astro.TransitHit
	for _, transitBody := range astro.SortedBodies(lons) {
		transitLon := lons[transitBody]
		orb := transitOrb
		if transitBody == astro.Moon {
			orb = transitOrbMoon
		}
		combust := haveSun && transitBody != astro.Sun &&
			astro.AngDist(transitLon, sunLon) <= combustionOrb

		for _, natalBody := range natalOrder {
			d := astro.AngDist(transitLon, natal[natalBody])
			for _, kind := range astro.AspectTable {
				diff := math.Abs(d - kind.Angle)
				if diff > orb {
					continue
				}
				hits = append(hits, astro.TransitHit{
					WhenUTC:    when,
					Transit:    transitBody,
					Natal:      natalBody,
					Aspect:     kind.Name,
					OrbDiff:    math.Round(diff*100) / 100,
					Retro:      retro[transitBody],
					Combust:    combust,
					NatalHouse: natalHouses[natalBody],
				})
			}
		}
	}
	return hits
}

func parseForecastStart(value, tz string) (time.Time, error) {
	location, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unknown timezone %q", ErrMalformedInput, tz)
	}
	for _, layout := range forecastLayouts {
		if t, err := time.ParseInLocation(layout, value, location); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable start date %q", ErrMalformedInput, value)
}
