package services

import (
	"log"

	"forecast-dashboard/models/forecast"
)

// ForecastRequest is what the dashboard asks for: a picked city and date.
type ForecastRequest struct {
	Location     string
	PickedDate   forecast.Date
	Seed         int64
	OffsetMonths int
}

// ForecastView is a generated week plus everything the dashboard shows with it.
type ForecastView struct {
	Location   string                `json:"location"`
	PickedDate forecast.Date         `json:"picked_date"`
	StartDate  forecast.Date         `json:"start_date"`
	Seed       int64                 `json:"seed"`
	Days       forecast.ForecastWeek `json:"days"`
	Bands      []CellBands           `json:"bands"`
	Summary    forecast.WeekSummary  `json:"summary"`
}

type ForecastService struct {
	generator           *ForecastGenerator
	defaultSeed         int64
	defaultOffsetMonths int
}

func NewForecastService(generator *ForecastGenerator, defaultSeed int64, defaultOffsetMonths int) *ForecastService {
	return &ForecastService{
		generator:           generator,
		defaultSeed:         defaultSeed,
		defaultOffsetMonths: defaultOffsetMonths,
	}
}

// NewRequest builds a request carrying the configured seed and start offset.
func (fs *ForecastService) NewRequest(location string, picked forecast.Date) ForecastRequest {
	return ForecastRequest{
		Location:     location,
		PickedDate:   picked,
		Seed:         fs.defaultSeed,
		OffsetMonths: fs.defaultOffsetMonths,
	}
}

// GetForecast generates a fresh week starting OffsetMonths after the picked date.
func (fs *ForecastService) GetForecast(req ForecastRequest) ForecastView {
	start := req.PickedDate.AddMonthsClamped(req.OffsetMonths)
	log.Printf("[ForecastService] Generating week for %q from %s (seed=%d)", req.Location, start, req.Seed)

	week := fs.generator.Generate(req.Location, start.Time, req.Seed)

	bands := make([]CellBands, len(week))
	for i, day := range week {
		bands[i] = BandsFor(day.MaxTemp, day.MinTemp, day.Humidity)
	}

	return ForecastView{
		Location:   req.Location,
		PickedDate: req.PickedDate,
		StartDate:  start,
		Seed:       req.Seed,
		Days:       week,
		Bands:      bands,
		Summary:    Summarize(week),
	}
}

// Summarize computes the weekly headline figures. The average temperature
// runs over every max and min value of the week.
func Summarize(week forecast.ForecastWeek) forecast.WeekSummary {
	if len(week) == 0 {
		return forecast.WeekSummary{}
	}

	var temps, humidity, precip, uv float64
	for _, day := range week {
		temps += day.MaxTemp + day.MinTemp
		humidity += day.Humidity
		precip += day.PrecipitationMM
		uv += day.UVIndex
	}
	n := float64(len(week))
	return forecast.WeekSummary{
		AvgTemperature:     round1(temps / (2 * n)),
		AvgHumidity:        round1(humidity / n),
		TotalPrecipitation: round1(precip),
		AvgUVIndex:         round1(uv / n),
	}
}
