package handlers

import (
	"time"
	"ulascansenturk/weekly-weather/internal/forecast"
)

type CityRequest struct {
	City string `json:"city"`
}

type CityResponse struct {
	City string `json:"city"`
}

type WeeklyResponse struct {
	City string              `json:"city"`
	Days []forecast.DailyRow `json:"days"`
}

type CurrentResponse struct {
	City    string                      `json:"city"`
	Weather *forecast.CurrentWeatherRow `json:"weather"`
}

type FetchEntry struct {
	Endpoint   string    `json:"endpoint"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	RowCount   int       `json:"row_count"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

type HistoryResponse struct {
	City    string       `json:"city"`
	Fetches []FetchEntry `json:"fetches"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
