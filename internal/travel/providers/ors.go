package providers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

// ORSProvider is the keyed routing provider, requesting direct routes from
// the OpenRouteService directions API in the requested profile.
type ORSProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewORSProvider(client *http.Client, apiKey string) *ORSProvider {
	return &ORSProvider{
		name:    "openrouteservice",
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		client:  client,
	}
}

func (p *ORSProvider) Name() string {
	return p.name
}

func (p *ORSProvider) Route(ctx context.Context, origin, dest travel.Coordinate, profile string) (travel.RouteLeg, error) {
	if p.apiKey == "" {
		return travel.RouteLeg{}, fmt.Errorf("openrouteservice: %w", travel.ErrNotConfigured)
	}

	header := http.Header{}
	header.Set("Authorization", p.apiKey)
	header.Set("Accept", "application/json")

	body := map[string]any{
		"coordinates": [][]float64{origin.LonLat(), dest.LonLat()},
	}

	var payload struct {
		Features []struct {
			Properties struct {
				Summary struct {
					Distance float64 `json:"distance"`
					Duration float64 `json:"duration"`
				} `json:"summary"`
			} `json:"properties"`
			Geometry *travel.Geometry `json:"geometry"`
		} `json:"features"`
	}
	endpoint := fmt.Sprintf("%s/v2/directions/%s", p.baseURL, profile)
	if err := postJSON(ctx, p.client, endpoint, header, body, &payload); err != nil {
		return travel.RouteLeg{}, err
	}
	if len(payload.Features) == 0 {
		return travel.RouteLeg{}, fmt.Errorf("openrouteservice: no route between points")
	}

	feature := payload.Features[0]
	return travel.RouteLeg{
		DistanceMeters:  feature.Properties.Summary.Distance,
		DurationSeconds: feature.Properties.Summary.Duration,
		Geometry:        feature.Geometry,
		Profile:         profile,
	}, nil
}
