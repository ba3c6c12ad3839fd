package services

import (
	"testing"
	"time"

	"forecast-dashboard/models/city"
	"forecast-dashboard/models/forecast"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestGenerate_SevenConsecutiveDays(t *testing.T) {
	week := NewForecastGenerator().Generate("Istanbul, Turkey", jan1, 42)

	require.Len(t, week, forecast.DaysPerWeek)
	for i, day := range week {
		assert.Equal(t, jan1.AddDate(0, 0, i), day.Date.Time)
		assert.Equal(t, "Istanbul, Turkey", day.Location)
		assert.Equal(t, forecast.SourceTag, day.SourceTag)
	}
	assert.Equal(t, "2024-01-01", week.StartDate().String())
}

func TestGenerate_StartDateIgnoresClock(t *testing.T) {
	late := time.Date(2024, 1, 1, 23, 30, 0, 0, time.FixedZone("UTC+5", 5*3600))

	week := NewForecastGenerator().Generate("Tokyo, Japan", late, 42)

	assert.Equal(t, "2024-01-01", week[0].Date.String())
	assert.Equal(t, "2024-01-07", week[6].Date.String())
}

func TestGenerate_Deterministic(t *testing.T) {
	g := NewForecastGenerator()

	first := g.Generate("London, UK", jan1, 42)
	second := g.Generate("London, UK", jan1, 42)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, g.Generate("London, UK", jan1, 43))
}

func TestGenerate_FieldRanges(t *testing.T) {
	g := NewForecastGenerator()
	locations := []string{"Unknown City"}
	for _, c := range city.All() {
		locations = append(locations, c.Location())
	}

	for _, location := range locations {
		for seed := int64(0); seed < 50; seed++ {
			for _, day := range g.Generate(location, jan1, seed) {
				assert.LessOrEqual(t, day.MinTemp, day.MaxTemp)
				assert.GreaterOrEqual(t, day.Humidity, 10.0)
				assert.LessOrEqual(t, day.Humidity, 100.0)
				assert.GreaterOrEqual(t, day.PrecipitationMM, 0.0)
				assert.GreaterOrEqual(t, day.WindSpeed, 0.0)
				assert.LessOrEqual(t, day.WindSpeed, 30.0)
				assert.GreaterOrEqual(t, day.Pressure, 980.0)
				assert.LessOrEqual(t, day.Pressure, 1050.0)
				assert.GreaterOrEqual(t, day.UVIndex, 0.0)
				assert.LessOrEqual(t, day.UVIndex, 11.0)
				assert.GreaterOrEqual(t, day.SunnyHours, 0.0)
				assert.LessOrEqual(t, day.SunnyHours, 12.0)
				assert.Contains(t, []forecast.Condition{
					forecast.ConditionRainy, forecast.ConditionSunny, forecast.ConditionCloudy,
				}, day.ConditionLabel)
			}
		}
	}
}

func TestGenerate_TemperaturesStayNearBase(t *testing.T) {
	// temp is base±2, max adds up to 2 and min subtracts up to 2.
	for _, day := range NewForecastGenerator().Generate("London, UK", jan1, 7) {
		assert.InDelta(t, 10.0, day.MaxTemp, 4.05)
		assert.InDelta(t, 10.0, day.MinTemp, 4.05)
	}
}

func TestGenerate_UnknownLocationUsesDefaultBase(t *testing.T) {
	g := NewForecastGenerator()

	unknown := g.Generate("Unknown City", jan1, 42)
	// Los Angeles has the default base temperature and is not rain-prone.
	reference := g.Generate("Los Angeles, USA", jan1, 42)

	require.Len(t, unknown, 7)
	assert.Equal(t, "2024-01-01", unknown[0].Date.String())
	assert.Equal(t, "2024-01-07", unknown[6].Date.String())
	for i := range unknown {
		want := reference[i]
		want.Location = "Unknown City"
		assert.Equal(t, want, unknown[i])
	}
}

func TestGenerate_RandomUnknownLocationsNeverFail(t *testing.T) {
	g := NewForecastGenerator()
	for i := 0; i < 20; i++ {
		location := gofakeit.City() + ", Nowhere"
		assert.NotPanics(t, func() {
			week := g.Generate(location, jan1, 42)
			assert.Len(t, week, 7)
		})
	}
}

func TestClassifyCondition(t *testing.T) {
	tests := []struct {
		name    string
		precip  float64
		maxTemp float64
		want    forecast.Condition
	}{
		{"rain wins over heat", 1.5, 30, forecast.ConditionRainy},
		{"exactly 1mm is not rain", 1.0, 30, forecast.ConditionSunny},
		{"exactly 25 is not sunny", 0, 25, forecast.ConditionCloudy},
		{"warm and dry", 0.2, 25.1, forecast.ConditionSunny},
		{"cold and wet", 4, 3, forecast.ConditionRainy},
		{"cold and dry", 0, 3, forecast.ConditionCloudy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCondition(tt.precip, tt.maxTemp))
		})
	}
}

func TestFeelsLike(t *testing.T) {
	assert.InDelta(t, 24.0, FeelsLike(30, 60, 10), 1e-9)
	assert.InDelta(t, 30.0, FeelsLike(30, 100, 0), 1e-9)
	assert.InDelta(t, 14.0, FeelsLike(30, 20, 0), 1e-9)
}
