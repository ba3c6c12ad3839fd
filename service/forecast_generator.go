package services

import (
	"math"
	"math/rand"
	"time"

	"forecast-dashboard/models/city"
	"forecast-dashboard/models/forecast"
)

// Distribution parameters of the synthetic week.
const (
	tempJitter        = 2.0
	maxTempSpread     = 2.0
	minTempSpread     = 2.0
	humidityMidpoint  = 60.0
	humidityJitter    = 15.0
	humidityMin       = 10.0
	humidityMax       = 100.0
	precipMeanRainy   = 2.0
	precipMeanDefault = 0.5
	precipStdDev      = 2.0
	windMax           = 20.0
	windClampMax      = 30.0
	pressureMidpoint  = 1010.0
	pressureJitter    = 10.0
	pressureMin       = 980.0
	pressureMax       = 1050.0
	uvMax             = 11.0
	sunnyHoursMax     = 12.0

	rainyPrecipThreshold = 1.0
	sunnyTempThreshold   = 25.0
)

// ForecastGenerator builds deterministic synthetic forecast weeks.
type ForecastGenerator struct{}

func NewForecastGenerator() *ForecastGenerator {
	return &ForecastGenerator{}
}

// Generate returns seven consecutive days starting at startDate. The same
// (location, startDate, seed) always yields the same week. Unknown locations
// use city.DefaultBaseTemp.
func (g *ForecastGenerator) Generate(location string, startDate time.Time, seed int64) forecast.ForecastWeek {
	rng := rand.New(rand.NewSource(seed))
	start := forecast.NewDate(startDate)

	baseTemp := city.BaseTemp(location)
	precipMean := precipMeanDefault
	if city.IsRainProne(location) {
		precipMean = precipMeanRainy
	}

	week := make(forecast.ForecastWeek, 0, forecast.DaysPerWeek)
	for i := 0; i < forecast.DaysPerWeek; i++ {
		temp := baseTemp + uniform(rng, -tempJitter, tempJitter)
		maxTemp := temp + uniform(rng, 0, maxTempSpread)
		minTemp := temp - uniform(rng, 0, minTempSpread)
		humidity := clamp(humidityMidpoint+uniform(rng, -humidityJitter, humidityJitter), humidityMin, humidityMax)
		precip := math.Max(0, precipMean+precipStdDev*rng.NormFloat64())
		wind := clamp(uniform(rng, 0, windMax), 0, windClampMax)
		pressure := clamp(pressureMidpoint+uniform(rng, -pressureJitter, pressureJitter), pressureMin, pressureMax)
		uv := clamp(uniform(rng, 0, uvMax), 0, uvMax)
		sunny := clamp(uniform(rng, 0, sunnyHoursMax), 0, sunnyHoursMax)

		week = append(week, forecast.DailyForecast{
			Date:            start.AddDays(i),
			Location:        location,
			MaxTemp:         round1(maxTemp),
			MinTemp:         round1(minTemp),
			FeelsLike:       round1(FeelsLike(maxTemp, humidity, wind)),
			Humidity:        round1(humidity),
			PrecipitationMM: round1(precip),
			WindSpeed:       round1(wind),
			Pressure:        round1(pressure),
			UVIndex:         round1(uv),
			SunnyHours:      round1(sunny),
			ConditionLabel:  ClassifyCondition(precip, maxTemp),
			SourceTag:       forecast.SourceTag,
		})
	}
	return week
}

// FeelsLike lowers the apparent temperature for dry air and raises it with wind.
func FeelsLike(maxTemp, humidity, windSpeed float64) float64 {
	return maxTemp - (100-humidity)/5 + windSpeed/5
}

// ClassifyCondition labels a day. Rain is checked before temperature.
func ClassifyCondition(precipMM, maxTemp float64) forecast.Condition {
	switch {
	case precipMM > rainyPrecipThreshold:
		return forecast.ConditionRainy
	case maxTemp > sunnyTempThreshold:
		return forecast.ConditionSunny
	default:
		return forecast.ConditionCloudy
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
