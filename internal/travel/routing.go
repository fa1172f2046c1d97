package travel

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
)

// DefaultProfile is the routing profile used for unrecognized mode tokens and
// by the fallback engine, which only routes cars.
const DefaultProfile = "driving-car"

// modeProfiles maps accepted mode tokens, both human-readable and
// provider-native, to canonical routing profiles.
var modeProfiles = map[string]string{
	"driving":         "driving-car",
	"driving-car":     "driving-car",
	"walking":         "foot-walking",
	"foot":            "foot-walking",
	"foot-walking":    "foot-walking",
	"cycling":         "cycling-regular",
	"cycling-regular": "cycling-regular",
}

// NormalizeMode resolves a mode token to a canonical routing profile,
// defaulting to driving when the token is unrecognized.
func NormalizeMode(mode string) string {
	if profile, ok := modeProfiles[strings.ToLower(strings.TrimSpace(mode))]; ok {
		return profile
	}
	return DefaultProfile
}

// RouteService computes routes through an ordered provider chain and attaches
// the static cost estimate. When the keyed provider is unavailable the free
// fallback engine serves the route with the mode coerced to driving,
// regardless of the requested profile.
type RouteService struct {
	providers []RouteProvider
}

// NewRouteService creates a RouteService trying providers in the given order.
func NewRouteService(providers ...RouteProvider) *RouteService {
	return &RouteService{providers: providers}
}

// Plan routes from origin to dest in the given mode and estimates its cost.
// Distance is reported in kilometers rounded to 2 decimals, duration in
// minutes rounded to 1. The cost is computed from the profile that was
// actually served.
func (s *RouteService) Plan(ctx context.Context, origin, dest Coordinate, mode string) (RouteResult, error) {
	profile := NormalizeMode(mode)

	var lastErr error
	for _, p := range s.providers {
		leg, err := p.Route(ctx, origin, dest, profile)
		if err != nil {
			log.Printf("routing: provider %s failed: %v", p.Name(), err)
			lastErr = err
			continue
		}

		distanceKm := round2(leg.DistanceMeters / 1000.0)
		durationMin := round1(leg.DurationSeconds / 60.0)
		served := leg.Profile
		if served == "" {
			served = profile
		}

		return RouteResult{
			DistanceKm:  distanceKm,
			DurationMin: durationMin,
			Mode:        served,
			Cost:        EstimateCost(distanceKm, served),
			Geometry:    leg.Geometry,
		}, nil
	}

	if lastErr == nil {
		return RouteResult{}, ErrUnavailable
	}
	return RouteResult{}, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
