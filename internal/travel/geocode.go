package travel

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// GeocodeService resolves place names through an ordered provider chain:
// the keyed provider first when configured, then the free fallback.
type GeocodeService struct {
	providers []GeocodeProvider
}

// NewGeocodeService creates a GeocodeService trying providers in the given order.
func NewGeocodeService(providers ...GeocodeProvider) *GeocodeService {
	return &GeocodeService{providers: providers}
}

// Geocode returns up to limit matches for query, most relevant first.
// An empty result is a successful "not found", never an error. The query is
// trimmed; an empty query after trimming is a caller error and no provider
// is contacted.
func (s *GeocodeService) Geocode(ctx context.Context, query string, limit int) ([]GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query must not be empty", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 1
	}

	var lastErr error
	for _, p := range s.providers {
		results, err := p.Geocode(ctx, query, limit)
		if err != nil {
			log.Printf("geocode: provider %s failed: %v", p.Name(), err)
			lastErr = err
			continue
		}
		if results == nil {
			results = []GeocodeResult{}
		}
		if len(results) > limit {
			results = results[:limit]
		}
		return results, nil
	}

	if lastErr == nil {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}
