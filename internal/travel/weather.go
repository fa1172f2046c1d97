package travel

import (
	"context"
	"fmt"
	"log"
)

// UnitsMetric and UnitsImperial are the accepted unit systems.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// WeatherService fetches current conditions and a forecast through an
// ordered provider chain and derives the daily aggregates.
type WeatherService struct {
	providers []WeatherProvider
}

// NewWeatherService creates a WeatherService trying providers in the given order.
func NewWeatherService(providers ...WeatherProvider) *WeatherService {
	return &WeatherService{providers: providers}
}

// Report returns the full weather view for a point. A provider must deliver
// both current conditions and a forecast; any failure falls through to the
// next provider.
func (s *WeatherService) Report(ctx context.Context, lat, lon float64, units string) (WeatherReport, error) {
	if units != UnitsImperial {
		units = UnitsMetric
	}

	var lastErr error
	for _, p := range s.providers {
		report, err := p.Fetch(ctx, lat, lon, units)
		if err != nil {
			log.Printf("weather: provider %s failed: %v", p.Name(), err)
			lastErr = err
			continue
		}
		if report.Forecast == nil {
			report.Forecast = []ForecastSample{}
		}
		report.Daily = NewDailySeries(AggregateDaily(report.Forecast))
		report.Units = units
		if report.Source == "" {
			report.Source = p.Name()
		}
		return report, nil
	}

	if lastErr == nil {
		return WeatherReport{}, ErrUnavailable
	}
	return WeatherReport{}, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}
