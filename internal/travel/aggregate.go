package travel

import "sort"

// maxDailyAggregates caps the aggregated series at five calendar days,
// matching the 5-day span of the primary forecast provider.
const maxDailyAggregates = 5

// AggregateDaily buckets a forecast series by UTC calendar day and averages
// temperature, wind speed and humidity per day, skipping readings a provider
// omitted. It returns the first five distinct days in ascending date order.
// A day with no usable readings for a field reports 0.0 for that field.
func AggregateDaily(samples []ForecastSample) []DailyAggregate {
	type bucket struct {
		temp     []float64
		wind     []float64
		humidity []float64
	}

	buckets := make(map[string]*bucket)
	for _, s := range samples {
		day := s.Timestamp.UTC().Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		if s.Temperature != nil {
			b.temp = append(b.temp, *s.Temperature)
		}
		if s.WindSpeed != nil {
			b.wind = append(b.wind, *s.WindSpeed)
		}
		if s.Humidity != nil {
			b.humidity = append(b.humidity, *s.Humidity)
		}
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > maxDailyAggregates {
		days = days[:maxDailyAggregates]
	}

	out := make([]DailyAggregate, 0, len(days))
	for _, day := range days {
		b := buckets[day]
		out = append(out, DailyAggregate{
			Date:         day,
			MeanTemp:     mean(b.temp),
			MeanWind:     mean(b.wind),
			MeanHumidity: mean(b.humidity),
		})
	}
	return out
}

// NewDailySeries converts daily aggregates to the parallel-array layout the
// dashboard charts consume. Slices are always non-nil so an empty series
// marshals as [] rather than null.
func NewDailySeries(days []DailyAggregate) DailySeries {
	series := DailySeries{
		Labels:   make([]string, 0, len(days)),
		Temp:     make([]float64, 0, len(days)),
		Wind:     make([]float64, 0, len(days)),
		Humidity: make([]float64, 0, len(days)),
	}
	for _, d := range days {
		series.Labels = append(series.Labels, d.Date)
		series.Temp = append(series.Temp, d.MeanTemp)
		series.Wind = append(series.Wind, d.MeanWind)
		series.Humidity = append(series.Humidity, d.MeanHumidity)
	}
	return series
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
