package models

import "Starluck/internal/astro"

// HealthResponse reports service status and backend availability.
type HealthResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	SwissEphemeris bool   `json:"swiss_ephemeris"`
	ActiveBackend  string `json:"active_backend"`
}

// SynastryResponse carries inter-aspects between two charts.
type SynastryResponse struct {
	Interaspects []astro.Aspect `json:"interaspects"`
}

// CompositeResponse carries midpoint positions shared by two charts.
type CompositeResponse struct {
	Midpoints map[astro.Body]float64 `json:"midpoints"`
}

// ForecastResponse carries the transit hits of a forecast scan.
type ForecastResponse struct {
	Transits []astro.TransitHit `json:"transits"`
}
