package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

// foursquareCategories maps known category keywords to Foursquare v3
// category codes. Keywords outside the table are sent as free-text search.
var foursquareCategories = map[string]string{
	"restaurant":  "13065",
	"restaurants": "13065",
	"cafe":        "13032",
	"cafes":       "13032",
	"bar":         "13003",
	"bars":        "13003",
	"park":        "16032",
	"parks":       "16032",
	"museum":      "10027",
	"museums":     "10027",
	"attraction":  "16000",
	"attractions": "16000",
}

// FoursquareProvider is the keyed places provider, searching the Foursquare
// Places API sorted by distance.
type FoursquareProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewFoursquareProvider(client *http.Client, apiKey string) *FoursquareProvider {
	return &FoursquareProvider{
		name:    "foursquare",
		apiKey:  apiKey,
		baseURL: "https://api.foursquare.com/v3/places/search",
		client:  client,
	}
}

func (p *FoursquareProvider) Name() string {
	return p.name
}

func (p *FoursquareProvider) Search(ctx context.Context, q travel.PlaceQuery) ([]travel.Place, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("foursquare: %w", travel.ErrNotConfigured)
	}

	values := url.Values{}
	values.Set("ll", fmt.Sprintf("%f,%f", q.Lat, q.Lon))
	values.Set("radius", strconv.Itoa(q.RadiusMeters))
	values.Set("limit", strconv.Itoa(q.Limit))
	values.Set("sort", "DISTANCE")
	if keyword := strings.ToLower(strings.TrimSpace(q.Query)); keyword != "" {
		if code, ok := foursquareCategories[keyword]; ok {
			values.Set("categories", code)
		} else {
			values.Set("query", q.Query)
		}
	}

	header := http.Header{}
	header.Set("Authorization", p.apiKey)
	header.Set("Accept", "application/json")

	var payload struct {
		Results []struct {
			FsqID    string   `json:"fsq_id"`
			Name     string   `json:"name"`
			Distance *float64 `json:"distance"`
			Geocodes struct {
				Main struct {
					Latitude  *float64 `json:"latitude"`
					Longitude *float64 `json:"longitude"`
				} `json:"main"`
			} `json:"geocodes"`
			Location struct {
				Address  string `json:"address"`
				Locality string `json:"locality"`
				Country  string `json:"country"`
			} `json:"location"`
			Categories []struct {
				Name string `json:"name"`
			} `json:"categories"`
		} `json:"results"`
	}
	if err := getJSON(ctx, p.client, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), header, &payload); err != nil {
		return nil, err
	}

	places := make([]travel.Place, 0, len(payload.Results))
	for _, item := range payload.Results {
		if item.Geocodes.Main.Latitude == nil || item.Geocodes.Main.Longitude == nil {
			continue
		}

		place := travel.Place{
			ID:       item.FsqID,
			Name:     item.Name,
			Lat:      *item.Geocodes.Main.Latitude,
			Lon:      *item.Geocodes.Main.Longitude,
			Distance: item.Distance,
			Source:   p.name,
		}

		if address := joinNonEmpty(item.Location.Address, item.Location.Locality, item.Location.Country); address != "" {
			place.Address = &address
		}

		names := make([]string, 0, len(item.Categories))
		for _, c := range item.Categories {
			if c.Name != "" {
				names = append(names, c.Name)
			}
		}
		if len(names) > 0 {
			category := strings.Join(names, ", ")
			place.Category = &category
		}

		places = append(places, place)
	}
	return places, nil
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
