package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"forecast-dashboard/models/city"
	"forecast-dashboard/models/forecast"
	services "forecast-dashboard/service"
	"forecast-dashboard/util"
)

const (
	CITY_QUERY_ARG          = "city"
	DATE_QUERY_ARG          = "date"
	SEED_QUERY_ARG          = "seed"
	OFFSET_MONTHS_QUERY_ARG = "offset_months"
)

type ForecastHandler struct {
	forecastService *services.ForecastService
	now             func() time.Time
}

func NewForecastHandler(forecastService *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService, now: time.Now}
}

// GetForecast handles GET /v1/forecast and returns the week as JSON.
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	view, ok := h.buildView(r.URL.Query(), w)
	if !ok {
		return
	}
	writeJSON(w, view)
}

// GetForecastTable handles GET /v1/forecast/table.
func (h *ForecastHandler) GetForecastTable(w http.ResponseWriter, r *http.Request) {
	view, ok := h.buildView(r.URL.Query(), w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderForecastTable(w, view); err != nil {
		log.Println("[ForecastHandler] Error rendering table:", err)
	}
}

// GetForecastChart handles GET /v1/forecast/chart.
func (h *ForecastHandler) GetForecastChart(w http.ResponseWriter, r *http.Request) {
	view, ok := h.buildView(r.URL.Query(), w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderForecastCharts(w, view); err != nil {
		log.Println("[ForecastHandler] Error rendering charts:", err)
	}
}

func (h *ForecastHandler) buildView(vals url.Values, w http.ResponseWriter) (services.ForecastView, bool) {
	req, ok := h.parseArgs(vals, w)
	if !ok {
		return services.ForecastView{}, false
	}
	return h.forecastService.GetForecast(req), true
}

// parseArgs reads the picker inputs. Missing city and date fall back to the
// first catalog city and today; malformed values are rejected.
func (h *ForecastHandler) parseArgs(vals url.Values, w http.ResponseWriter) (req services.ForecastRequest, ok bool) {
	location := vals.Get(CITY_QUERY_ARG)
	if location == "" {
		location = city.DefaultLocation()
	}

	picked := forecast.NewDate(h.now())
	if s := vals.Get(DATE_QUERY_ARG); s != "" {
		d, err := forecast.ParseDate(s)
		if err != nil {
			http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
			return
		}
		picked = d
	}

	req = h.forecastService.NewRequest(location, picked)

	if s := vals.Get(SEED_QUERY_ARG); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "Invalid argument "+SEED_QUERY_ARG, http.StatusBadRequest)
			return
		}
		req.Seed = seed
	}
	if s := vals.Get(OFFSET_MONTHS_QUERY_ARG); s != "" {
		months, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "Invalid argument "+OFFSET_MONTHS_QUERY_ARG, http.StatusBadRequest)
			return
		}
		req.OffsetMonths = months
	}
	ok = true
	return
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}
