package city

// catalog lists the selectable cities in picker order.
var catalog = []City{
	{Name: "Istanbul", Country: "Turkey", Lat: 41.0082, Lon: 28.9784, BaseTemp: 20, RainProne: true},
	{Name: "Ankara", Country: "Turkey", Lat: 39.9334, Lon: 32.8597, BaseTemp: 18},
	{Name: "Antalya", Country: "Turkey", Lat: 36.8969, Lon: 30.7133, BaseTemp: 25, RainProne: true},
	{Name: "Izmir", Country: "Turkey", Lat: 38.4237, Lon: 27.1428, BaseTemp: 23},
	{Name: "London", Country: "UK", Lat: 51.5074, Lon: -0.1278, BaseTemp: 10, RainProne: true},
	{Name: "Manchester", Country: "UK", Lat: 53.4808, Lon: -2.2426, BaseTemp: 9},
	{Name: "New York", Country: "USA", Lat: 40.7128, Lon: -74.0060, BaseTemp: 15},
	{Name: "Los Angeles", Country: "USA", Lat: 34.0522, Lon: -118.2437, BaseTemp: 20},
	{Name: "Chicago", Country: "USA", Lat: 41.8781, Lon: -87.6298, BaseTemp: 12},
	{Name: "Tokyo", Country: "Japan", Lat: 35.6762, Lon: 139.6503, BaseTemp: 18},
	{Name: "Osaka", Country: "Japan", Lat: 34.6937, Lon: 135.5023, BaseTemp: 19},
	{Name: "Sydney", Country: "Australia", Lat: -33.8688, Lon: 151.2093, BaseTemp: 22},
	{Name: "Melbourne", Country: "Australia", Lat: -37.8136, Lon: 144.9631, BaseTemp: 20},
	{Name: "Paris", Country: "France", Lat: 48.8566, Lon: 2.3522, BaseTemp: 12},
	{Name: "Lyon", Country: "France", Lat: 45.7640, Lon: 4.8357, BaseTemp: 11},
}

var byLocation = func() map[string]City {
	m := make(map[string]City, len(catalog))
	for _, c := range catalog {
		m[c.Location()] = c
	}
	return m
}()

// All returns a copy of the catalog in picker order.
func All() []City {
	out := make([]City, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a city by its "Name, Country" label.
func Lookup(location string) (City, bool) {
	c, ok := byLocation[location]
	return c, ok
}

// BaseTemp returns the base temperature for location, or DefaultBaseTemp
// when the location is unknown.
func BaseTemp(location string) float64 {
	if c, ok := byLocation[location]; ok {
		return c.BaseTemp
	}
	return DefaultBaseTemp
}

// IsRainProne reports whether location draws precipitation around the
// higher mean. Unknown locations are not rain-prone.
func IsRainProne(location string) bool {
	return byLocation[location].RainProne
}

// DefaultLocation is the label preselected in the picker.
func DefaultLocation() string {
	return catalog[0].Location()
}
