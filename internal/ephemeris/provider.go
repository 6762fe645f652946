// Package ephemeris computes ecliptic body positions and house cusps for a
// moment and location. Two backends implement the same contract: a precise
// Swiss Ephemeris wrapper and an approximate analytic model. Backend choice
// is made once per computation context at construction time; a single chart
// never mixes backends.
package ephemeris

import (
	"errors"
	"time"

	"Starluck/internal/astro"
)

// Provider is a pure function of the moment (and location, for houses).
type Provider interface {
	// Name identifies the backend ("swiss" or "analytic").
	Name() string

	// Bodies lists the bodies this backend can compute, in canonical order.
	Bodies() []astro.Body

	// Longitudes returns ecliptic longitudes in [0,360) for every body the
	// backend could compute at the moment. A body whose calculation fails is
	// omitted, not an error.
	Longitudes(t time.Time) (map[astro.Body]float64, error)

	// AnglesHouses returns the ascendant, midheaven and the 12 house cusps
	// for the requested system.
	AnglesHouses(t time.Time, loc astro.GeoLocation, sys astro.HouseSystem) (asc, mc float64, cusps []float64, err error)
}

// ErrNoBackend means no usable backend could be constructed at all.
var ErrNoBackend = errors.New("ephemeris: no usable backend")

// Retrograde samples a body's longitude at t and 10 minutes earlier through the
// same provider that positioned the chart. A body the provider cannot
// compute reads as direct.
func Retrograde(p Provider, t time.Time, body astro.Body) bool {
	now, err := p.Longitudes(t)
	if err != nil {
		return false
	}
	prev, err := p.Longitudes(t.Add(-10 * time.Minute))
	if err != nil {
		return false
	}
	lonNow, ok1 := now[body]
	lonPrev, ok2 := prev[body]
	if !ok1 || !ok2 {
		return false
	}
	return astro.SignedDelta(lonNow, lonPrev) < 0
}
