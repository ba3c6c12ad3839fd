package services

import "math"

// Category is a display band for one table cell. The presentation layer
// decides how a band looks.
type Category string

const (
	CategoryHot    Category = "hot"
	CategoryMild   Category = "mild"
	CategoryCool   Category = "cool"
	CategoryCold   Category = "cold"
	CategoryHumid  Category = "humid"
	CategoryNormal Category = "normal"
)

// Band thresholds. Lower bounds are inclusive.
const (
	HotThreshold   = 25.0
	MildThreshold  = 15.0
	CoolThreshold  = 5.0
	HumidThreshold = 80.0
)

// TemperatureBand classifies a temperature in °C. NaN is cold.
func TemperatureBand(value float64) Category {
	switch {
	case math.IsNaN(value):
		return CategoryCold
	case value >= HotThreshold:
		return CategoryHot
	case value >= MildThreshold:
		return CategoryMild
	case value >= CoolThreshold:
		return CategoryCool
	default:
		return CategoryCold
	}
}

// HumidityBand classifies a relative humidity percentage. NaN is normal.
func HumidityBand(value float64) Category {
	if value >= HumidThreshold {
		return CategoryHumid
	}
	return CategoryNormal
}

// CellBands holds the bands of the highlighted columns of one row.
type CellBands struct {
	MaxTemp  Category `json:"max_temp"`
	MinTemp  Category `json:"min_temp"`
	Humidity Category `json:"humidity"`
}

// BandsFor computes the highlighted-column bands of a row.
func BandsFor(maxTemp, minTemp, humidity float64) CellBands {
	return CellBands{
		MaxTemp:  TemperatureBand(maxTemp),
		MinTemp:  TemperatureBand(minTemp),
		Humidity: HumidityBand(humidity),
	}
}
