package travel

import (
	"context"
	"errors"
)

var (
	// ErrInvalidInput marks caller mistakes that are rejected before any
	// outbound call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured is returned by providers whose required credential is
	// absent; orchestrators treat it like any other provider failure and move
	// to the next provider in order.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrUnavailable is returned when every provider for a capability failed.
	ErrUnavailable = errors.New("no provider available")
)

// PlaceQuery describes a nearby-places search.
type PlaceQuery struct {
	Lat          float64
	Lon          float64
	Query        string // free text or a known category keyword
	RadiusMeters int
	Limit        int
	Source       string // optional provider override, e.g. "osm"
}

// GeocodeProvider resolves a free-form place name to coordinates.
type GeocodeProvider interface {
	Name() string
	Geocode(ctx context.Context, query string, limit int) ([]GeocodeResult, error)
}

// PlaceProvider searches points of interest around a coordinate.
type PlaceProvider interface {
	Name() string
	Search(ctx context.Context, q PlaceQuery) ([]Place, error)
}

// WeatherProvider fetches current conditions plus a forecast series.
// Implementations fill Current, Forecast and Source; the orchestrator derives
// the daily aggregates.
type WeatherProvider interface {
	Name() string
	Fetch(ctx context.Context, lat, lon float64, units string) (WeatherReport, error)
}

// RouteProvider computes a single route between two points in a given
// profile. Providers that cannot serve the requested profile report the
// profile they actually used in RouteLeg.Profile.
type RouteProvider interface {
	Name() string
	Route(ctx context.Context, origin, dest Coordinate, profile string) (RouteLeg, error)
}

// RateProvider fetches exchange rates relative to a base currency.
type RateProvider interface {
	Name() string
	Rates(ctx context.Context, base string, symbols []string) (map[string]float64, error)
}
