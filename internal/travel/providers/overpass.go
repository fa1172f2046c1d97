package providers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

// overpassTags maps category keywords to OSM tag filters for the Overpass
// fallback. Unrecognized categories default to common POIs.
var overpassTags = map[string]string{
	"restaurant":  "amenity=restaurant",
	"restaurants": "amenity=restaurant",
	"cafe":        "amenity=cafe",
	"cafes":       "amenity=cafe",
	"bar":         "amenity=bar",
	"bars":        "amenity=bar",
	"park":        "leisure=park",
	"parks":       "leisure=park",
	"museum":      "tourism=museum",
	"museums":     "tourism=museum",
	"attraction":  "tourism=attraction",
	"attractions": "tourism=attraction",
}

const defaultOverpassTag = "amenity=restaurant"

// OverpassProvider is the free places fallback, querying tagged OSM features
// around a point via the Overpass API.
type OverpassProvider struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewOverpassProvider(client *http.Client) *OverpassProvider {
	return &OverpassProvider{
		name:    "overpass",
		baseURL: "https://overpass-api.de/api/interpreter",
		client:  client,
	}
}

func (p *OverpassProvider) Name() string {
	return p.name
}

func (p *OverpassProvider) Search(ctx context.Context, q travel.PlaceQuery) ([]travel.Place, error) {
	tag, ok := overpassTags[strings.ToLower(strings.TrimSpace(q.Query))]
	if !ok {
		tag = defaultOverpassTag
	}

	ql := fmt.Sprintf(`[out:json][timeout:25];
(
  node[%[1]s](around:%[2]d,%[3]f,%[4]f);
  way[%[1]s](around:%[2]d,%[3]f,%[4]f);
  relation[%[1]s](around:%[2]d,%[3]f,%[4]f);
);
out center %[5]d;`, tag, q.RadiusMeters, q.Lat, q.Lon, q.Limit)

	form := url.Values{}
	form.Set("data", ql)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var payload struct {
		Elements []struct {
			ID     int64    `json:"id"`
			Lat    *float64 `json:"lat"`
			Lon    *float64 `json:"lon"`
			Center *struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"center"`
			Tags map[string]string `json:"tags"`
		} `json:"elements"`
	}
	if err := doJSON(p.client, req, &payload); err != nil {
		return nil, err
	}

	category := q.Query
	if category == "" {
		category = tag
	}

	places := make([]travel.Place, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		lat, lon, ok := resolveCoordinates(el.Lat, el.Lon, el.Center)
		if !ok {
			// Some ways/relations come back without a usable center.
			continue
		}

		name := el.Tags["name"]
		if name == "" {
			name = el.Tags["brand"]
		}
		if name == "" {
			if q.Query != "" {
				name = q.Query
			} else {
				name = "Place"
			}
		}

		distance := haversineMeters(q.Lat, q.Lon, lat, lon)
		cat := category
		place := travel.Place{
			ID:       strconv.FormatInt(el.ID, 10),
			Name:     name,
			Category: &cat,
			Lat:      lat,
			Lon:      lon,
			Distance: &distance,
			Source:   p.name,
		}
		if address := joinNonEmpty(el.Tags["addr:street"], el.Tags["addr:city"], el.Tags["addr:country"]); address != "" {
			place.Address = &address
		}
		places = append(places, place)
	}

	// Overpass has no server-side distance sort; order nearest-first here.
	sort.Slice(places, func(i, j int) bool {
		return *places[i].Distance < *places[j].Distance
	})
	if len(places) > q.Limit {
		places = places[:q.Limit]
	}
	return places, nil
}

func resolveCoordinates(lat, lon *float64, center *struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}) (float64, float64, bool) {
	if lat != nil && lon != nil {
		return *lat, *lon, true
	}
	if center != nil {
		return center.Lat, center.Lon, true
	}
	return 0, 0, false
}

// haversineMeters is the great-circle distance between two WGS84 points.
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusM = 6371000.0

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
