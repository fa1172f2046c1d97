package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

// NominatimProvider is the free, unauthenticated geocoding fallback.
// Nominatim asks high-volume clients to identify themselves, so the
// configured contact email is sent in the User-Agent.
type NominatimProvider struct {
	name    string
	baseURL string
	email   string
	client  *http.Client
}

func NewNominatimProvider(client *http.Client, email string) *NominatimProvider {
	if email == "" {
		email = "noreply@example.com"
	}
	return &NominatimProvider{
		name:    "nominatim",
		baseURL: "https://nominatim.openstreetmap.org/search",
		email:   email,
		client:  client,
	}
}

func (p *NominatimProvider) Name() string {
	return p.name
}

// Geocode searches for a place name. Results carry the display name, OSM
// type/class tags and a bounding box, but no city/country split.
func (p *NominatimProvider) Geocode(ctx context.Context, query string, limit int) ([]travel.GeocodeResult, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("format", "json")
	values.Set("addressdetails", "1")
	values.Set("limit", strconv.Itoa(limit))
	values.Set("extratags", "0")

	header := http.Header{}
	header.Set("User-Agent", fmt.Sprintf("TravelCompanionApp/1.0 (%s)", p.email))

	var payload []struct {
		DisplayName string   `json:"display_name"`
		Lat         string   `json:"lat"`
		Lon         string   `json:"lon"`
		BoundingBox []string `json:"boundingbox"`
		Type        string   `json:"type"`
		Class       string   `json:"class"`
	}
	if err := getJSON(ctx, p.client, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), header, &payload); err != nil {
		return nil, err
	}

	results := make([]travel.GeocodeResult, 0, len(payload))
	for _, item := range payload {
		lat, err := strconv.ParseFloat(item.Lat, 64)
		if err != nil {
			return nil, fmt.Errorf("parse latitude %q: %w", item.Lat, err)
		}
		lon, err := strconv.ParseFloat(item.Lon, 64)
		if err != nil {
			return nil, fmt.Errorf("parse longitude %q: %w", item.Lon, err)
		}

		r := travel.GeocodeResult{
			Label:       item.DisplayName,
			Lat:         lat,
			Lon:         lon,
			BoundingBox: parseBoundingBox(item.BoundingBox),
		}
		if item.Type != "" {
			t := item.Type
			r.Type = &t
		}
		if item.Class != "" {
			c := item.Class
			r.Class = &c
		}
		results = append(results, r)
	}
	return results, nil
}

// parseBoundingBox converts Nominatim's [south, north, west, east] string
// quadruple; a malformed box is dropped rather than failing the result.
func parseBoundingBox(box []string) []float64 {
	if len(box) != 4 {
		return nil
	}
	out := make([]float64, 0, 4)
	for _, s := range box {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		out = append(out, v)
	}
	return out
}
