package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

// OpenWeatherProvider is the keyed provider for both geocoding and weather.
// It implements travel.GeocodeProvider via the direct geocoding API and
// travel.WeatherProvider via the current-weather and 5-day/3-hour forecast
// endpoints.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	geoURL  string
	client  *http.Client
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		geoURL:  "https://api.openweathermap.org/geo/1.0",
		client:  client,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Geocode resolves a place name via the direct geocoding endpoint. Unlike
// the free fallback it splits city and country out of the match.
func (p *OpenWeatherProvider) Geocode(ctx context.Context, query string, limit int) ([]travel.GeocodeResult, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweathermap: %w", travel.ErrNotConfigured)
	}

	values := url.Values{}
	values.Set("q", query)
	values.Set("limit", fmt.Sprintf("%d", limit))
	values.Set("appid", p.apiKey)

	var payload []struct {
		Name    string  `json:"name"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		Country string  `json:"country"`
		State   string  `json:"state"`
	}
	if err := getJSON(ctx, p.client, fmt.Sprintf("%s/direct?%s", p.geoURL, values.Encode()), nil, &payload); err != nil {
		return nil, err
	}

	results := make([]travel.GeocodeResult, 0, len(payload))
	for _, item := range payload {
		parts := make([]string, 0, 3)
		for _, s := range []string{item.Name, item.State, item.Country} {
			if s != "" {
				parts = append(parts, s)
			}
		}

		r := travel.GeocodeResult{
			Label: strings.Join(parts, ", "),
			Lat:   item.Lat,
			Lon:   item.Lon,
		}
		if item.Name != "" {
			city := item.Name
			r.City = &city
		}
		if item.Country != "" {
			country := item.Country
			r.Country = &country
		}
		results = append(results, r)
	}
	return results, nil
}

// Fetch retrieves current conditions and the 3-hour-step forecast. Both
// calls run concurrently and both must succeed; a single failure makes the
// orchestrator fall back.
func (p *OpenWeatherProvider) Fetch(ctx context.Context, lat, lon float64, units string) (travel.WeatherReport, error) {
	if p.apiKey == "" {
		return travel.WeatherReport{}, fmt.Errorf("openweathermap: %w", travel.ErrNotConfigured)
	}

	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("appid", p.apiKey)
	values.Set("units", units)
	query := values.Encode()

	var (
		wg          sync.WaitGroup
		current     owmCurrent
		forecast    owmForecast
		currentErr  error
		forecastErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		currentErr = getJSON(ctx, p.client, fmt.Sprintf("%s/weather?%s", p.baseURL, query), nil, &current)
	}()
	go func() {
		defer wg.Done()
		forecastErr = getJSON(ctx, p.client, fmt.Sprintf("%s/forecast?%s", p.baseURL, query), nil, &forecast)
	}()
	wg.Wait()

	if currentErr != nil {
		return travel.WeatherReport{}, fmt.Errorf("current weather: %w", currentErr)
	}
	if forecastErr != nil {
		return travel.WeatherReport{}, fmt.Errorf("forecast: %w", forecastErr)
	}

	report := travel.WeatherReport{
		Current: travel.CurrentConditions{
			Temperature: current.Main.Temp,
			Humidity:    current.Main.Humidity,
			WindSpeed:   current.Wind.Speed,
		},
		Source: p.name,
	}
	if len(current.Weather) > 0 {
		report.Current.Description = current.Weather[0].Description
	}

	samples := make([]travel.ForecastSample, 0, len(forecast.List))
	for _, item := range forecast.List {
		samples = append(samples, travel.ForecastSample{
			Timestamp:   owmTimestamp(item.DtTxt, item.Dt),
			Temperature: item.Main.Temp,
			WindSpeed:   item.Wind.Speed,
			Humidity:    item.Main.Humidity,
		})
	}
	report.Forecast = samples

	return report, nil
}

type owmCurrent struct {
	Main struct {
		Temp     float64  `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type owmForecast struct {
	List []struct {
		Dt    int64  `json:"dt"`
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp     *float64 `json:"temp"`
			Humidity *float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed *float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

// owmTimestamp prefers the textual timestamp and falls back to the unix one.
func owmTimestamp(dtTxt string, dt int64) time.Time {
	if dtTxt != "" {
		if ts, err := time.Parse("2006-01-02 15:04:05", dtTxt); err == nil {
			return ts.UTC()
		}
	}
	return time.Unix(dt, 0).UTC()
}
