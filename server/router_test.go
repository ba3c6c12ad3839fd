package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type mockForecastHandler struct{}

func (h *mockForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`{"message": "forecast"}`))
}

func (h *mockForecastHandler) GetForecastTable(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("table"))
}

func (h *mockForecastHandler) GetForecastChart(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("chart"))
}

type mockCityHandler struct{}

func (h *mockCityHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("cities"))
}

func (h *mockCityHandler) GetCitiesNearby(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("nearby"))
}

func (h *mockCityHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := mux.NewRouter()
	NewRouter(&mockForecastHandler{}, &mockCityHandler{}, router).RegisterRoutes()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{"Forecast", "GET", "/v1/forecast?city=Paris,+France", http.StatusOK, `{"message": "forecast"}`},
		{"Forecast Table", "GET", "/v1/forecast/table", http.StatusOK, "table"},
		{"Forecast Chart", "GET", "/v1/forecast/chart", http.StatusOK, "chart"},
		{"Cities", "GET", "/v1/cities", http.StatusOK, "cities"},
		{"Cities Nearby", "GET", "/v1/cities/nearby", http.StatusOK, "nearby"},
		{"Ping Route", "GET", "/ping", http.StatusOK, "pong"},
		{"Wrong Method", "POST", "/v1/forecast", http.StatusMethodNotAllowed, ""},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, httptest.NewRequest(test.method, test.path, nil))

			assert.Equal(t, test.statusCode, rr.Code)
			if test.response != "" {
				assert.Equal(t, test.response, rr.Body.String())
			}
		})
	}
}
