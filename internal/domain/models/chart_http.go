package models

// Requests for chart HTTP endpoints. Defined in domain for consistency and reuse.

// GeoLocationInput carries geographic coordinates for a chart request.
type GeoLocationInput struct {
	Lat        float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon        float64 `json:"lon" validate:"gte=-180,lte=180"`
	ElevationM float64 `json:"elevation_m" default:"0" validate:"gte=0"`
}

// NatalChartRequest asks for a full natal chart.
type NatalChartRequest struct {
	DatetimeLocal string           `json:"datetime_local" validate:"required"`
	Timezone      string           `json:"timezone" validate:"required"`
	Location      GeoLocationInput `json:"location"`
	HouseSystem   string           `json:"house_system" default:"WHOLE" validate:"oneof=WHOLE EQUAL PLACIDUS"`
}

// ChartRefPlanet is a single body in a pre-computed chart reference.
type ChartRefPlanet struct {
	Lon   float64 `json:"lon" validate:"gte=0,lt=360"`
	House int     `json:"house" validate:"gte=0,lte=12"`
}

// ChartRef is a pre-computed chart handed back by the client for
// comparison operations.
type ChartRef struct {
	Planets map[string]ChartRefPlanet `json:"planets" validate:"required"`
}

// SynastryRequest asks for inter-aspects between two charts.
type SynastryRequest struct {
	ChartA ChartRef `json:"chart_a" validate:"required"`
	ChartB ChartRef `json:"chart_b" validate:"required"`
}

// CompositeRequest asks for midpoint positions of two charts.
type CompositeRequest struct {
	ChartA ChartRef `json:"chart_a" validate:"required"`
	ChartB ChartRef `json:"chart_b" validate:"required"`
}

// ForecastRequest asks for a transit scan against a natal chart.
type ForecastRequest struct {
	NatalChart ChartRef `json:"natal_chart" validate:"required"`
	StartDate  string   `json:"start_date" validate:"required"`
	Timezone   string   `json:"timezone" validate:"required"`
	Days       int      `json:"days" default:"14" validate:"gte=1,lte=365"`
	StepHours  int      `json:"step_hours" default:"24" validate:"gte=1,lte=168"`
}
