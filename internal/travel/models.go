package travel

import (
	"time"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LonLat returns the point as [lon, lat], the order routing APIs expect.
func (c Coordinate) LonLat() []float64 { return []float64{c.Lon, c.Lat} }

// GeocodeResult is a single normalized geocoder match.
// City and Country are only available from the keyed provider; the free
// fallback returns a display name with no address split, so both stay nil.
type GeocodeResult struct {
	Label       string    `json:"label"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	BoundingBox []float64 `json:"boundingbox,omitempty"` // south, north, west, east
	Type        *string   `json:"type"`
	Class       *string   `json:"class"`
	City        *string   `json:"city"`
	Country     *string   `json:"country"`
}

// Place is a normalized point of interest near a query point.
type Place struct {
	ID       string   `json:"id,omitempty"` // provider-scoped identifier
	Name     string   `json:"name"`
	Category *string  `json:"category"`
	Lat      float64  `json:"lat"`
	Lon      float64  `json:"lon"`
	Address  *string  `json:"address"`
	Distance *float64 `json:"distance"` // meters from the query point
	Source   string   `json:"source"`
}

// CurrentConditions is the normalized current-weather reading.
type CurrentConditions struct {
	Temperature float64  `json:"temperature"`
	Description string   `json:"description"`
	Humidity    *float64 `json:"humidity"`
	WindSpeed   *float64 `json:"wind_speed"`
}

// ForecastSample is one point of a forecast series. Metric fields are
// pointers so that readings a provider omits stay distinguishable from zero.
type ForecastSample struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature *float64  `json:"temperature"`
	WindSpeed   *float64  `json:"wind_speed"`
	Humidity    *float64  `json:"humidity"`
}

// DailyAggregate is the per-calendar-day mean of a forecast series.
type DailyAggregate struct {
	Date         string  `json:"date"` // YYYY-MM-DD, UTC
	MeanTemp     float64 `json:"temp"`
	MeanWind     float64 `json:"wind"`
	MeanHumidity float64 `json:"humidity"`
}

// DailySeries is the chart-friendly column layout of the daily aggregates.
type DailySeries struct {
	Labels   []string  `json:"labels"`
	Temp     []float64 `json:"temp"`
	Wind     []float64 `json:"wind"`
	Humidity []float64 `json:"humidity"`
}

// WeatherReport bundles current conditions with the raw and aggregated forecast.
type WeatherReport struct {
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastSample  `json:"forecast_raw"`
	Daily    DailySeries       `json:"daily"`
	Source   string            `json:"source"`
	Units    string            `json:"units"`
}

// Geometry is a GeoJSON-style line geometry with [lon, lat] vertices.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// RouteLeg is a routing provider's raw normalized output, before unit
// conversion and costing.
type RouteLeg struct {
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        *Geometry
	Profile         string // profile the provider actually served
}

// CostBreakdown is the static cost estimate for a route.
type CostBreakdown struct {
	BaseFee  float64 `json:"base_fee"`
	Variable float64 `json:"variable"`
	Total    float64 `json:"total"`
}

// RouteResult is the final routing response.
type RouteResult struct {
	DistanceKm  float64       `json:"distance_km"`
	DurationMin float64       `json:"duration_min"`
	Mode        string        `json:"mode"`
	Cost        CostBreakdown `json:"cost"`
	Geometry    *Geometry     `json:"geometry"`
}

// RateTable maps currency codes to exchange rates relative to Base.
// An empty Rates map means rates are unavailable, not that all rates are zero.
type RateTable struct {
	Base    string             `json:"base"`
	Rates   map[string]float64 `json:"rates"`
	Symbols []string           `json:"symbols,omitempty"`
}
