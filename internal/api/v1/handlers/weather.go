package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weekly-weather/internal/service"
)

const defaultHistoryLimit = 10

type WeatherHandler struct {
	weatherService service.WeatherService
}

func NewWeatherHandler(weatherService service.WeatherService) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/city":
		h.SetCity(w, r)
	case "/weekly":
		h.GetWeekly(w, r)
	case "/current":
		if r.Method == http.MethodPost {
			h.LoadCurrent(w, r)
			return
		}
		h.GetCurrent(w, r)
	case "/history":
		h.GetHistory(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

// SetCity feeds the search field. The weekly forecast follows once typing settles.
func (h *WeatherHandler) SetCity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.weatherService.SetCity(req.City)

	respondWithJSON(w, http.StatusAccepted, CityResponse{City: req.City})
}

func (h *WeatherHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	respondWithJSON(w, http.StatusOK, WeeklyResponse{
		City: h.weatherService.City(),
		Days: h.weatherService.Weekly(),
	})
}

func (h *WeatherHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	current := h.weatherService.Current()
	if current == nil {
		respondWithError(w, http.StatusNotFound, "no current weather loaded")
		return
	}

	respondWithJSON(w, http.StatusOK, CurrentResponse{
		City:    h.weatherService.City(),
		Weather: current,
	})
}

func (h *WeatherHandler) LoadCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.weatherService.LoadCurrent()

	respondWithJSON(w, http.StatusAccepted, CityResponse{City: h.weatherService.City()})
}

func (h *WeatherHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("q"))
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "city parameter 'q' is required")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	logs, err := h.weatherService.RecentFetches(city, limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			respondWithError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		log.Error().Err(err).Str("city", city).Msg("failed to get fetch history")
		respondWithError(w, http.StatusInternalServerError, "failed to get fetch history: "+err.Error())
		return
	}

	fetches := make([]FetchEntry, 0, len(logs))
	for _, entry := range logs {
		fetches = append(fetches, FetchEntry{
			Endpoint:   entry.Endpoint,
			Outcome:    entry.Outcome,
			Detail:     entry.Detail,
			RowCount:   entry.RowCount,
			DurationMs: entry.DurationMs,
			CreatedAt:  entry.CreatedAt,
		})
	}

	respondWithJSON(w, http.StatusOK, HistoryResponse{City: city, Fetches: fetches})
}
