package travel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func sampleAt(t time.Time, temp, wind, humidity *float64) ForecastSample {
	return ForecastSample{Timestamp: t, Temperature: temp, WindSpeed: wind, Humidity: humidity}
}

func TestAggregateDailyAveragesPerDay(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	samples := []ForecastSample{
		sampleAt(day.Add(3*time.Hour), fptr(10), fptr(2), fptr(60)),
		sampleAt(day.Add(9*time.Hour), fptr(14), fptr(4), fptr(40)),
		sampleAt(day.AddDate(0, 0, 1).Add(6*time.Hour), fptr(20), fptr(1), fptr(80)),
	}

	daily := AggregateDaily(samples)
	require.Len(t, daily, 2)

	assert.Equal(t, "2024-03-10", daily[0].Date)
	assert.InDelta(t, 12.0, daily[0].MeanTemp, 1e-9)
	assert.InDelta(t, 3.0, daily[0].MeanWind, 1e-9)
	assert.InDelta(t, 50.0, daily[0].MeanHumidity, 1e-9)

	assert.Equal(t, "2024-03-11", daily[1].Date)
	assert.InDelta(t, 20.0, daily[1].MeanTemp, 1e-9)
}

func TestAggregateDailyCapsAtFiveAscendingDays(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var samples []ForecastSample
	// Feed days out of order to check sorting as well.
	for _, offset := range []int{6, 3, 0, 5, 1, 4, 2} {
		samples = append(samples, sampleAt(base.AddDate(0, 0, offset), fptr(float64(offset)), fptr(1), fptr(1)))
	}

	daily := AggregateDaily(samples)
	require.Len(t, daily, 5)
	for i := 1; i < len(daily); i++ {
		assert.Less(t, daily[i-1].Date, daily[i].Date)
	}
	assert.Equal(t, "2024-06-01", daily[0].Date)
	assert.Equal(t, "2024-06-05", daily[4].Date)
}

func TestAggregateDailySkipsMissingReadings(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	samples := []ForecastSample{
		sampleAt(day.Add(3*time.Hour), fptr(10), nil, fptr(60)),
		sampleAt(day.Add(9*time.Hour), nil, nil, fptr(40)),
	}

	daily := AggregateDaily(samples)
	require.Len(t, daily, 1)

	// Missing readings are excluded from the mean, and a field with no
	// usable readings at all reports exactly 0.0, never null.
	assert.InDelta(t, 10.0, daily[0].MeanTemp, 1e-9)
	assert.Equal(t, 0.0, daily[0].MeanWind)
	assert.InDelta(t, 50.0, daily[0].MeanHumidity, 1e-9)
}

func TestAggregateDailyEmptySeries(t *testing.T) {
	assert.Empty(t, AggregateDaily(nil))
}

func TestNewDailySeriesIsColumnar(t *testing.T) {
	series := NewDailySeries([]DailyAggregate{
		{Date: "2024-03-10", MeanTemp: 12, MeanWind: 3, MeanHumidity: 50},
		{Date: "2024-03-11", MeanTemp: 20, MeanWind: 1, MeanHumidity: 80},
	})

	assert.Equal(t, []string{"2024-03-10", "2024-03-11"}, series.Labels)
	assert.Equal(t, []float64{12, 20}, series.Temp)
	assert.Equal(t, []float64{3, 1}, series.Wind)
	assert.Equal(t, []float64{50, 80}, series.Humidity)
}

func TestNewDailySeriesEmptyIsNotNil(t *testing.T) {
	series := NewDailySeries(nil)
	assert.NotNil(t, series.Labels)
	assert.NotNil(t, series.Temp)
	assert.NotNil(t, series.Wind)
	assert.NotNil(t, series.Humidity)
}
