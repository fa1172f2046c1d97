package travel

import (
	"context"
	"fmt"
	"log"
	"strings"
)

const (
	defaultPlacesRadius = 5000
	defaultPlacesLimit  = 20
)

// PlacesService searches nearby points of interest through an ordered
// provider chain. A caller may pin the free provider via PlaceQuery.Source,
// in which case the keyed provider is never contacted.
type PlacesService struct {
	providers []PlaceProvider
}

// NewPlacesService creates a PlacesService trying providers in the given order.
func NewPlacesService(providers ...PlaceProvider) *PlacesService {
	return &PlacesService{providers: providers}
}

// Search returns up to q.Limit places around (q.Lat, q.Lon), nearest first.
func (s *PlacesService) Search(ctx context.Context, q PlaceQuery) ([]Place, error) {
	if q.RadiusMeters <= 0 {
		q.RadiusMeters = defaultPlacesRadius
	}
	if q.Limit <= 0 {
		q.Limit = defaultPlacesLimit
	}
	forced := normalizeSourceOverride(q.Source)

	var lastErr error
	for _, p := range s.providers {
		if forced != "" && p.Name() != forced {
			continue
		}
		places, err := p.Search(ctx, q)
		if err != nil {
			log.Printf("places: provider %s failed: %v", p.Name(), err)
			lastErr = err
			continue
		}
		if places == nil {
			places = []Place{}
		}
		if len(places) > q.Limit {
			places = places[:q.Limit]
		}
		return places, nil
	}

	if lastErr == nil {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// normalizeSourceOverride maps the accepted override tokens to the free
// provider's name. Anything else means automatic selection.
func normalizeSourceOverride(source string) string {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "osm", "overpass":
		return "overpass"
	default:
		return ""
	}
}
