package astro

// GeoLocation is an observer location; longitude is east-positive.
type GeoLocation struct {
	Lat        float64
	Lon        float64
	ElevationM float64
}

// Sect tells whether a chart is a day or night chart.
type Sect string

const (
	SectDay   Sect = "DAY"
	SectNight Sect = "NIGHT"
)

// BodyPosition is a classified body placement, computed once per chart.
type BodyPosition struct {
	Lon   float64 `json:"lon"`
	Sign  string  `json:"sign"`
	Deg   float64 `json:"deg"`
	House int     `json:"house"`
	Retro bool    `json:"retro"`
}

// AngleSet holds the chart angles. DS and IC are derived from ASC and MC.
type AngleSet struct {
	ASC float64 `json:"ASC"`
	DS  float64 `json:"DS"`
	MC  float64 `json:"MC"`
	IC  float64 `json:"IC"`
}

// ChartLocation echoes the request location in chart output.
type ChartLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	TZ  string  `json:"tz"`
}

// Chart is a fully assembled natal chart. It is built once and treated as
// immutable by every downstream consumer.
type Chart struct {
	DatetimeUTC      string                `json:"datetime_utc"`
	Location         ChartLocation         `json:"location"`
	Angles           AngleSet              `json:"angles"`
	Houses           []float64             `json:"houses"`
	HouseSystem      string                `json:"house_system"`
	Planets          map[Body]BodyPosition `json:"planets"`
	Aspects          []Aspect              `json:"aspects"`
	MoonPhase        *MoonPhase            `json:"moon_phase,omitempty"`
	Sect             Sect                  `json:"sect"`
	HouseSigns       [][]SignSegment       `json:"house_signs"`
	CuspSigns        []string              `json:"cusp_signs"`
	InterceptedSigns []string              `json:"intercepted_signs"`
}

// TransitHit is one detected transiting-to-natal aspect formation.
type TransitHit struct {
	WhenUTC    string  `json:"when_utc"`
	Transit    Body    `json:"transit"`
	Natal      Body    `json:"natal"`
	Aspect     string  `json:"aspect"`
	OrbDiff    float64 `json:"orb_diff"`
	Retro      bool    `json:"retro"`
	Combust    bool    `json:"combust"`
	NatalHouse int     `json:"natal_house,omitempty"`
}

// PartOfFortuneLon derives the Part of Fortune from the ascendant and
// luminaries; the lunar arc flips by sect.
func PartOfFortuneLon(asc, sunLon, moonLon float64, sect Sect) float64 {
	if sect == SectDay {
		return Norm360(asc + moonLon - sunLon)
	}
	return Norm360(asc + sunLon - moonLon)
}
