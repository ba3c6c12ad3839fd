package services

import (
	"testing"

	"forecast-dashboard/models/forecast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastService_GetForecast_AppliesOffset(t *testing.T) {
	svc := NewForecastService(NewForecastGenerator(), 42, 6)
	picked, err := forecast.ParseDate("2024-01-01")
	require.NoError(t, err)

	view := svc.GetForecast(svc.NewRequest("Paris, France", picked))

	assert.Equal(t, "2024-07-01", view.StartDate.String())
	assert.Equal(t, "2024-01-01", view.PickedDate.String())
	assert.Equal(t, int64(42), view.Seed)
	require.Len(t, view.Days, 7)
	assert.Equal(t, view.StartDate, view.Days[0].Date)
	require.Len(t, view.Bands, 7)
	for i, day := range view.Days {
		assert.Equal(t, TemperatureBand(day.MaxTemp), view.Bands[i].MaxTemp)
		assert.Equal(t, HumidityBand(day.Humidity), view.Bands[i].Humidity)
	}
	assert.Equal(t, Summarize(view.Days), view.Summary)
}

func TestForecastService_GetForecast_MatchesGenerator(t *testing.T) {
	gen := NewForecastGenerator()
	svc := NewForecastService(gen, 42, 0)
	picked, err := forecast.ParseDate("2024-01-01")
	require.NoError(t, err)

	req := svc.NewRequest("Unknown City", picked)
	req.Seed = 7
	view := svc.GetForecast(req)

	assert.Equal(t, gen.Generate("Unknown City", picked.Time, 7), view.Days)
}

func TestSummarize(t *testing.T) {
	week := forecast.ForecastWeek{
		{MaxTemp: 20, MinTemp: 10, Humidity: 50, PrecipitationMM: 1.2, UVIndex: 4},
		{MaxTemp: 24, MinTemp: 14, Humidity: 70, PrecipitationMM: 0.3, UVIndex: 6},
	}

	got := Summarize(week)

	assert.InDelta(t, 17.0, got.AvgTemperature, 1e-9)
	assert.InDelta(t, 60.0, got.AvgHumidity, 1e-9)
	assert.InDelta(t, 1.5, got.TotalPrecipitation, 1e-9)
	assert.InDelta(t, 5.0, got.AvgUVIndex, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, forecast.WeekSummary{}, Summarize(nil))
}
