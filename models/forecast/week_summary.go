package forecast

// WeekSummary holds the headline figures shown above the table.
type WeekSummary struct {
	AvgTemperature     float64 `json:"avg_temperature"`
	AvgHumidity        float64 `json:"avg_humidity"`
	TotalPrecipitation float64 `json:"total_precipitation"`
	AvgUVIndex         float64 `json:"avg_uv_index"`
}
