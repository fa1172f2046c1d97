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

func TestOpenWeatherRequiresKey(t *testing.T) {
	p := NewOpenWeatherProvider(http.DefaultClient, "")

	_, err := p.Geocode(context.Background(), "Paris", 1)
	assert.ErrorIs(t, err, travel.ErrNotConfigured)

	_, err = p.Fetch(context.Background(), 1, 2, travel.UnitsMetric)
	assert.ErrorIs(t, err, travel.ErrNotConfigured)
}

func TestOpenWeatherGeocodeSplitsCityAndCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.URL.Query().Get("appid"))
		fmt.Fprint(w, `[{"name": "Paris", "lat": 48.8589, "lon": 2.32, "country": "FR", "state": "Ile-de-France"}]`)
	}))
	defer srv.Close()

	p := NewOpenWeatherProvider(srv.Client(), "k")
	p.geoURL = srv.URL

	results, err := p.Geocode(context.Background(), "Paris", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "Paris, Ile-de-France, FR", r.Label)
	require.NotNil(t, r.City)
	assert.Equal(t, "Paris", *r.City)
	require.NotNil(t, r.Country)
	assert.Equal(t, "FR", *r.Country)
	assert.Nil(t, r.BoundingBox)
}

func TestOpenWeatherFetchCombinesCurrentAndForecast(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		fmt.Fprint(w, `{
			"main": {"temp": 11.5, "humidity": 70},
			"wind": {"speed": 4.2},
			"weather": [{"main": "Rain", "description": "light rain"}]
		}`)
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"list": [
			{"dt": 1710057600, "dt_txt": "2024-03-10 08:00:00", "main": {"temp": 10, "humidity": 60}, "wind": {"speed": 3}},
			{"dt": 1710068400, "dt_txt": "2024-03-10 11:00:00", "main": {"temp": 12}, "wind": {}}
		]}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewOpenWeatherProvider(srv.Client(), "k")
	p.baseURL = srv.URL

	report, err := p.Fetch(context.Background(), 48.85, 2.35, travel.UnitsMetric)
	require.NoError(t, err)

	assert.InDelta(t, 11.5, report.Current.Temperature, 1e-9)
	assert.Equal(t, "light rain", report.Current.Description)
	require.NotNil(t, report.Current.Humidity)
	assert.InDelta(t, 70, *report.Current.Humidity, 1e-9)

	require.Len(t, report.Forecast, 2)
	assert.Equal(t, "2024-03-10T08:00:00Z", report.Forecast[0].Timestamp.Format("2006-01-02T15:04:05Z"))
	require.NotNil(t, report.Forecast[0].Temperature)
	assert.InDelta(t, 10, *report.Forecast[0].Temperature, 1e-9)
	// Readings the provider omitted stay missing instead of becoming zero.
	assert.Nil(t, report.Forecast[1].Humidity)
	assert.Nil(t, report.Forecast[1].WindSpeed)
	assert.Equal(t, "openweathermap", report.Source)
}

func TestOpenWeatherFetchFailsWhenEitherCallFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"main": {"temp": 1}}`)
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewOpenWeatherProvider(srv.Client(), "k")
	p.baseURL = srv.URL

	_, err := p.Fetch(context.Background(), 1, 2, travel.UnitsMetric)
	assert.Error(t, err)
}

func TestOwmTimestampFallsBackToUnix(t *testing.T) {
	ts := owmTimestamp("", 1710057600)
	assert.Equal(t, int64(1710057600), ts.Unix())

	ts = owmTimestamp("2024-03-10 08:00:00", 0)
	assert.Equal(t, "2024-03-10 08:00:00", ts.Format("2006-01-02 15:04:05"))
}
