package forecast

// SourceTag marks every generated record as simulated data.
const SourceTag = "NASA Data (simulated)"

// DaysPerWeek is the fixed length of a ForecastWeek.
const DaysPerWeek = 7

// Condition is the derived weather label of a day.
type Condition string

const (
	ConditionRainy  Condition = "Rainy"
	ConditionSunny  Condition = "Sunny"
	ConditionCloudy Condition = "Cloudy"
)

// DailyForecast is one generated day. Values are immutable once built.
type DailyForecast struct {
	Date            Date      `json:"date"`
	Location        string    `json:"location"`
	MaxTemp         float64   `json:"max_temp"`
	MinTemp         float64   `json:"min_temp"`
	FeelsLike       float64   `json:"feels_like"`
	Humidity        float64   `json:"humidity"`
	PrecipitationMM float64   `json:"precipitation_mm"`
	WindSpeed       float64   `json:"wind_speed"`
	Pressure        float64   `json:"pressure"`
	UVIndex         float64   `json:"uv_index"`
	SunnyHours      float64   `json:"sunny_hours"`
	ConditionLabel  Condition `json:"condition_label"`
	SourceTag       string    `json:"source_tag"`
}

// ForecastWeek holds DaysPerWeek consecutive days in ascending date order.
type ForecastWeek []DailyForecast

// StartDate returns the date of the first day, or the zero Date for an empty week.
func (w ForecastWeek) StartDate() Date {
	if len(w) == 0 {
		return Date{}
	}
	return w[0].Date
}
