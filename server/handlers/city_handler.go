package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	services "forecast-dashboard/service"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

// CityOption is one entry of the city picker.
type CityOption struct {
	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type CityHandler struct {
	cityCatalogService *services.CityCatalogService
}

func NewCityHandler(cityCatalogService *services.CityCatalogService) *CityHandler {
	return &CityHandler{cityCatalogService: cityCatalogService}
}

// ListCities handles GET /v1/cities.
func (h *CityHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities := h.cityCatalogService.ListCities()
	options := make([]CityOption, 0, len(cities))
	for _, c := range cities {
		options = append(options, CityOption{Location: c.Location(), Lat: c.Lat, Lon: c.Lon})
	}
	writeJSON(w, options)
}

// GetCitiesNearby handles GET /v1/cities/nearby?lat=&lon=&radius= (radius in km).
func (h *CityHandler) GetCitiesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := parseGeoArgs(r.URL.Query(), w)
	if !ok {
		return
	}

	cities, err := h.cityCatalogService.NearbyCities(r.Context(), lat, lon, radius)
	if err != nil {
		log.Println("[CityHandler] Error loading nearby cities:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	options := make([]CityOption, 0, len(cities))
	for _, c := range cities {
		options = append(options, CityOption{Location: c.Location(), Lat: c.Lat, Lon: c.Lon})
	}
	writeJSON(w, options)
}

// Ping handles GET /ping
func (h *CityHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func parseGeoArgs(vals url.Values, w http.ResponseWriter) (lat, lon, radius float64, ok bool) {
	var err error

	if lat, err = parseArgFloat64(vals, LAT_QUERY_ARG); err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	if lon, err = parseArgFloat64(vals, LON_QUERY_ARG); err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	if radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG); err != nil || radius < 0 {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	return strconv.ParseFloat(vals.Get(name), 64)
}
