package util

import (
	"fmt"
	"io"

	"forecast-dashboard/models/forecast"
	services "forecast-dashboard/service"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderForecastCharts writes an HTML page with the temperature/humidity
// line chart and the precipitation bar chart of a forecast week.
func RenderForecastCharts(w io.Writer, view services.ForecastView) error {
	dates := make([]string, len(view.Days))
	for i, day := range view.Days {
		dates[i] = day.Date.String()
	}
	subtitle := fmt.Sprintf("%s, from %s (%s)", view.Location, view.StartDate, forecast.SourceTag)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "7-Day Forecast",
			Width:     "900px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Temperature, Humidity and Feels Like",
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(dates).
		AddSeries("Max Temp", lineData(view.Days, func(d forecast.DailyForecast) float64 { return d.MaxTemp })).
		AddSeries("Min Temp", lineData(view.Days, func(d forecast.DailyForecast) float64 { return d.MinTemp })).
		AddSeries("Humidity", lineData(view.Days, func(d forecast.DailyForecast) float64 { return d.Humidity })).
		AddSeries("Feels Like", lineData(view.Days, func(d forecast.DailyForecast) float64 { return d.FeelsLike }))

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "900px",
			Height: "300px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Precipitation (mm)", Subtitle: subtitle}),
	)
	barData := make([]opts.BarData, len(view.Days))
	for i, day := range view.Days {
		barData[i] = opts.BarData{Value: day.PrecipitationMM}
	}
	bar.SetXAxis(dates).AddSeries("Precipitation", barData)

	page := components.NewPage()
	page.AddCharts(line, bar)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

func lineData(week forecast.ForecastWeek, field func(forecast.DailyForecast) float64) []opts.LineData {
	items := make([]opts.LineData, len(week))
	for i, day := range week {
		items[i] = opts.LineData{Value: field(day)}
	}
	return items
}
