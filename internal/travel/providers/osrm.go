package providers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

// OSRMProvider is the free routing fallback. The public OSRM instance only
// routes cars, so whatever profile is requested comes back served as
// driving-car.
type OSRMProvider struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewOSRMProvider(client *http.Client) *OSRMProvider {
	return &OSRMProvider{
		name:    "osrm",
		baseURL: "https://router.project-osrm.org",
		client:  client,
	}
}

func (p *OSRMProvider) Name() string {
	return p.name
}

func (p *OSRMProvider) Route(ctx context.Context, origin, dest travel.Coordinate, profile string) (travel.RouteLeg, error) {
	endpoint := fmt.Sprintf(
		"%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		p.baseURL, origin.Lon, origin.Lat, dest.Lon, dest.Lat,
	)

	var payload struct {
		Routes []struct {
			Distance float64          `json:"distance"`
			Duration float64          `json:"duration"`
			Geometry *travel.Geometry `json:"geometry"`
		} `json:"routes"`
	}
	if err := getJSON(ctx, p.client, endpoint, nil, &payload); err != nil {
		return travel.RouteLeg{}, err
	}
	if len(payload.Routes) == 0 {
		return travel.RouteLeg{}, fmt.Errorf("osrm: no route between points")
	}

	route := payload.Routes[0]
	return travel.RouteLeg{
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
		Geometry:        route.Geometry,
		Profile:         travel.DefaultProfile,
	}, nil
}
