package city

import "fmt"

// DefaultBaseTemp is used for any location missing from the catalog.
const DefaultBaseTemp = 20.0

// City is one entry of the location catalog.
type City struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	BaseTemp  float64 `json:"base_temp"`
	RainProne bool    `json:"rain_prone"`
}

// Location returns the picker label, e.g. "Istanbul, Turkey".
func (c City) Location() string {
	return fmt.Sprintf("%s, %s", c.Name, c.Country)
}
