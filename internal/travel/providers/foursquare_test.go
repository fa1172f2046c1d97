package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

func TestFoursquareRequiresKey(t *testing.T) {
	p := NewFoursquareProvider(http.DefaultClient, "")

	_, err := p.Search(context.Background(), travel.PlaceQuery{Lat: 1, Lon: 2})
	assert.ErrorIs(t, err, travel.ErrNotConfigured)
}

func TestFoursquareMapsKnownKeywordsToCategories(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer srv.Close()

	p := NewFoursquareProvider(srv.Client(), "fsq-key")
	p.baseURL = srv.URL

	_, err := p.Search(context.Background(), travel.PlaceQuery{
		Lat: 48.85, Lon: 2.35, Query: " Cafes ", RadiusMeters: 2500, Limit: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	q := got.URL.Query()
	assert.Equal(t, "13032", q.Get("categories"))
	assert.Empty(t, q.Get("query"))
	assert.Equal(t, "2500", q.Get("radius"))
	assert.Equal(t, "10", q.Get("limit"))
	assert.Equal(t, "DISTANCE", q.Get("sort"))
	assert.Equal(t, "fsq-key", got.Header.Get("Authorization"))
}

func TestFoursquareFallsBackToFreeTextQuery(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer srv.Close()

	p := NewFoursquareProvider(srv.Client(), "k")
	p.baseURL = srv.URL

	_, err := p.Search(context.Background(), travel.PlaceQuery{Lat: 1, Lon: 2, Query: "ramen"})
	require.NoError(t, err)

	q := got.URL.Query()
	assert.Equal(t, "ramen", q.Get("query"))
	assert.Empty(t, q.Get("categories"))
}

func TestFoursquareSkipsResultsWithoutCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"results": [
			{"fsq_id": "a", "name": "No Geocode"},
			{
				"fsq_id": "b",
				"name": "Cafe Bleu",
				"distance": 120,
				"geocodes": {"main": {"latitude": 48.8601, "longitude": 2.3522}},
				"location": {"address": "5 Rue Cler", "locality": "Paris", "country": "FR"},
				"categories": [{"name": "Cafe"}, {"name": "Coffee Shop"}]
			}
		]}`)
	}))
	defer srv.Close()

	p := NewFoursquareProvider(srv.Client(), "k")
	p.baseURL = srv.URL

	places, err := p.Search(context.Background(), travel.PlaceQuery{Lat: 48.85, Lon: 2.35, Query: "cafe"})
	require.NoError(t, err)
	require.Len(t, places, 1)

	place := places[0]
	assert.Equal(t, "b", place.ID)
	assert.Equal(t, "Cafe Bleu", place.Name)
	require.NotNil(t, place.Address)
	assert.Equal(t, "5 Rue Cler, Paris, FR", *place.Address)
	require.NotNil(t, place.Category)
	assert.Equal(t, "Cafe, Coffee Shop", *place.Category)
	require.NotNil(t, place.Distance)
	assert.InDelta(t, 120, *place.Distance, 1e-9)
	assert.Equal(t, "foursquare", place.Source)
}
