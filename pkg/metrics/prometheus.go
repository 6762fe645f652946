package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes chart computation metrics through Prometheus.
type Recorder struct {
	chartsComputed *prometheus.CounterVec
	transitHits    prometheus.Counter
	forecastScans  prometheus.Counter
	errorsTotal    *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	backendInfo    *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		chartsComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starluck_charts_computed_total",
				Help: "Total number of charts computed",
			},
			[]string{"backend", "house_system"},
		),
		transitHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "starluck_transit_hits_total",
				Help: "Total number of transit hits found by forecast scans",
			},
		),
		forecastScans: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "starluck_forecast_scans_total",
				Help: "Total number of forecast scans performed",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starluck_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "starluck_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		backendInfo: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "starluck_ephemeris_backend",
				Help: "Active ephemeris backend (1 for the selected one)",
			},
			[]string{"backend"},
		),
	}
}

// RecordChart records a completed chart computation.
func (r *Recorder) RecordChart(backend, houseSystem string) {
	r.chartsComputed.WithLabelValues(backend, houseSystem).Inc()
}

// RecordForecast records a forecast scan and the hits it produced.
func (r *Recorder) RecordForecast(hits int) {
	r.forecastScans.Inc()
	r.transitHits.Add(float64(hits))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// SetBackend marks the active ephemeris backend.
func (r *Recorder) SetBackend(name string) {
	r.backendInfo.WithLabelValues(name).Set(1)
}
