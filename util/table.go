package util

import (
	"fmt"
	"html/template"
	"io"

	"forecast-dashboard/models/forecast"
	services "forecast-dashboard/service"
)

// Background colours per band; bands without an entry stay unstyled.
var bandColors = map[services.Category]string{
	services.CategoryHot:   "#FF9999",
	services.CategoryCool:  "#99CCFF",
	services.CategoryCold:  "#99CCFF",
	services.CategoryHumid: "#99FF99",
}

var conditionIcons = map[forecast.Condition]string{
	forecast.ConditionRainy:  "🌧",
	forecast.ConditionSunny:  "☀️",
	forecast.ConditionCloudy: "⛅",
}

// CellStyle maps a band to an inline CSS declaration.
func CellStyle(c services.Category) template.CSS {
	if color, ok := bandColors[c]; ok {
		return template.CSS("background-color: " + color)
	}
	return ""
}

// ConditionIcon returns the icon shown next to a condition label.
func ConditionIcon(c forecast.Condition) string {
	return conditionIcons[c]
}

type tableRow struct {
	Day   forecast.DailyForecast
	Bands services.CellBands
}

type tablePage struct {
	View services.ForecastView
	Rows []tableRow
}

var tableTemplate = template.Must(template.New("table").Funcs(template.FuncMap{
	"style": CellStyle,
	"icon":  ConditionIcon,
	"f1":    func(v float64) string { return fmt.Sprintf("%.1f", v) },
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.View.Location}} 7-Day Forecast</title></head>
<body>
<h2>{{.View.Location}} 7-Day Forecast ({{.View.StartDate}})</h2>
<div class="summary">
<span>Avg Temperature (°C): {{f1 .View.Summary.AvgTemperature}}</span>
<span>Avg Humidity (%): {{f1 .View.Summary.AvgHumidity}}</span>
<span>Total Precipitation (mm): {{f1 .View.Summary.TotalPrecipitation}}</span>
<span>Avg UV Index: {{f1 .View.Summary.AvgUVIndex}}</span>
</div>
<table>
<tr><th>Date</th><th>City</th><th>Max Temp</th><th>Min Temp</th><th>Feels Like</th><th>Humidity</th><th>Precipitation</th><th>Wind Speed</th><th>Pressure</th><th>UV Index</th><th>Sunny Hours</th><th>Weather</th><th>Source</th></tr>
{{- range .Rows}}
<tr><td>{{.Day.Date}}</td><td>{{.Day.Location}}</td><td style="{{style .Bands.MaxTemp}}">{{f1 .Day.MaxTemp}}</td><td style="{{style .Bands.MinTemp}}">{{f1 .Day.MinTemp}}</td><td>{{f1 .Day.FeelsLike}}</td><td style="{{style .Bands.Humidity}}">{{f1 .Day.Humidity}}</td><td>{{f1 .Day.PrecipitationMM}}</td><td>{{f1 .Day.WindSpeed}}</td><td>{{f1 .Day.Pressure}}</td><td>{{f1 .Day.UVIndex}}</td><td>{{f1 .Day.SunnyHours}}</td><td>{{icon .Day.ConditionLabel}} {{.Day.ConditionLabel}}</td><td>{{.Day.SourceTag}}</td></tr>
{{- end}}
</table>
</body>
</html>
`))

// RenderForecastTable writes the colour-coded forecast table page.
func RenderForecastTable(w io.Writer, view services.ForecastView) error {
	rows := make([]tableRow, len(view.Days))
	for i, day := range view.Days {
		rows[i] = tableRow{Day: day, Bands: services.BandsFor(day.MaxTemp, day.MinTemp, day.Humidity)}
	}
	if err := tableTemplate.Execute(w, tablePage{View: view, Rows: rows}); err != nil {
		return fmt.Errorf("failed to render forecast table: %w", err)
	}
	return nil
}
