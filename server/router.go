package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ForecastRoutes serves the generated week in its three renderings.
type ForecastRoutes interface {
	GetForecast(w http.ResponseWriter, r *http.Request)
	GetForecastTable(w http.ResponseWriter, r *http.Request)
	GetForecastChart(w http.ResponseWriter, r *http.Request)
}

// CityRoutes serves the city picker.
type CityRoutes interface {
	ListCities(w http.ResponseWriter, r *http.Request)
	GetCitiesNearby(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	forecastHandler ForecastRoutes
	cityHandler     CityRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(forecastHandler ForecastRoutes, cityHandler CityRoutes, router *mux.Router) *Router {
	return &Router{
		forecastHandler: forecastHandler,
		cityHandler:     cityHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// ?city={"Name, Country"}&date={YYYY-MM-DD}&seed={int}&offset_months={int}, all optional
	r.router.HandleFunc("/v1/forecast", r.forecastHandler.GetForecast).Methods("GET")
	r.router.HandleFunc("/v1/forecast/table", r.forecastHandler.GetForecastTable).Methods("GET")
	r.router.HandleFunc("/v1/forecast/chart", r.forecastHandler.GetForecastChart).Methods("GET")

	r.router.HandleFunc("/v1/cities", r.cityHandler.ListCities).Methods("GET")
	// expects ?lat={float}&lon={float}&radius={km(float)}
	r.router.HandleFunc("/v1/cities/nearby", r.cityHandler.GetCitiesNearby).Methods("GET")

	r.router.HandleFunc("/ping", r.cityHandler.Ping).Methods("GET")
}
