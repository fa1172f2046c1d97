package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nettikantis/TravelCompanionApp/internal/travel"
)

// openMeteoStepHours thins the hourly series to roughly the 3-hourly
// provider's cadence; openMeteoMaxSamples matches its 40-entry forecast.
const (
	openMeteoStepHours  = 6
	openMeteoMaxSamples = 40
)

// OpenMeteoProvider is the free weather fallback. Open-Meteo only serves
// hourly data, so the current reading is synthesized from the latest hourly
// sample and the series is downsampled to 6-hour steps.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		client:  client,
		now:     time.Now,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, lat, lon float64, units string) (travel.WeatherReport, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("hourly", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code")
	if units == travel.UnitsImperial {
		values.Set("temperature_unit", "fahrenheit")
		values.Set("wind_speed_unit", "mph")
	} else {
		// Match the keyed provider's metric wind unit.
		values.Set("wind_speed_unit", "ms")
	}

	var payload struct {
		Hourly struct {
			Time        []string   `json:"time"`
			Temperature []*float64 `json:"temperature_2m"`
			Humidity    []*float64 `json:"relative_humidity_2m"`
			WindSpeed   []*float64 `json:"wind_speed_10m"`
			WeatherCode []*int     `json:"weather_code"`
		} `json:"hourly"`
	}
	if err := getJSON(ctx, p.client, fmt.Sprintf("%s?%s", p.baseURL, values.Encode()), nil, &payload); err != nil {
		return travel.WeatherReport{}, err
	}
	if len(payload.Hourly.Time) == 0 {
		return travel.WeatherReport{}, fmt.Errorf("openmeteo: empty hourly series")
	}

	samples := make([]travel.ForecastSample, 0, len(payload.Hourly.Time))
	codes := make([]*int, 0, len(payload.Hourly.Time))
	for i, raw := range payload.Hourly.Time {
		ts, err := time.Parse("2006-01-02T15:04", raw)
		if err != nil {
			return travel.WeatherReport{}, fmt.Errorf("parse hourly time %q: %w", raw, err)
		}
		samples = append(samples, travel.ForecastSample{
			Timestamp:   ts.UTC(),
			Temperature: at(payload.Hourly.Temperature, i),
			WindSpeed:   at(payload.Hourly.WindSpeed, i),
			Humidity:    at(payload.Hourly.Humidity, i),
		})
		codes = append(codes, at(payload.Hourly.WeatherCode, i))
	}

	latest := latestSampleIndex(samples, p.now().UTC())
	current := travel.CurrentConditions{
		Humidity:  samples[latest].Humidity,
		WindSpeed: samples[latest].WindSpeed,
	}
	if samples[latest].Temperature != nil {
		current.Temperature = *samples[latest].Temperature
	}
	if codes[latest] != nil {
		current.Description = describeWeatherCode(*codes[latest])
	}

	forecast := make([]travel.ForecastSample, 0, openMeteoMaxSamples)
	for i := 0; i < len(samples); i += openMeteoStepHours {
		if len(forecast) >= openMeteoMaxSamples {
			break
		}
		forecast = append(forecast, samples[i])
	}

	return travel.WeatherReport{
		Current:  current,
		Forecast: forecast,
		Source:   p.name,
	}, nil
}

func at[T any](s []*T, i int) *T {
	if i < len(s) {
		return s[i]
	}
	return nil
}

// latestSampleIndex picks the most recent sample not after now, or the first
// sample when the whole series is in the future.
func latestSampleIndex(samples []travel.ForecastSample, now time.Time) int {
	idx := 0
	for i, s := range samples {
		if s.Timestamp.After(now) {
			break
		}
		idx = i
	}
	return idx
}

// describeWeatherCode maps WMO weather codes to short descriptions.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code >= 1 && code <= 3:
		return "cloudy"
	case code == 45 || code == 48:
		return "fog"
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unknown"
	}
}
