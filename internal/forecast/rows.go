package forecast

import (
	"strconv"
	"time"
	"ulascansenturk/weekly-weather/internal/providers"
)

const (
	dayLayout   = "02"
	monthLayout = "January"
)

// DailyRow is one day of the weekly list. Rows are identified by Day.
type DailyRow struct {
	Day         string `json:"day"`
	Month       string `json:"month"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Temperature string `json:"temperature"`
}

// ID is the display identity used by list renderers.
func (r DailyRow) ID() string {
	return r.Day + r.Temperature + r.Title
}

type CurrentWeatherRow struct {
	City           string `json:"city,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Temperature    string `json:"temperature"`
	MaxTemperature string `json:"max_temperature"`
	MinTemperature string `json:"min_temperature"`
	Humidity       string `json:"humidity"`
}

func NewDailyRow(entry providers.ForecastEntry, loc *time.Location) DailyRow {
	date := entry.Time().In(loc)
	title, description := firstCondition(entry.Weather)

	return DailyRow{
		Day:         date.Format(dayLayout),
		Month:       date.Format(monthLayout),
		Title:       title,
		Description: description,
		Temperature: formatOneDecimal(entry.Temperature()),
	}
}

// DailyRows maps entries to rows and keeps the first row of every day.
func DailyRows(entries []providers.ForecastEntry, loc *time.Location) []DailyRow {
	rows := make([]DailyRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, NewDailyRow(entry, loc))
	}
	return UniqueByDay(rows)
}

// UniqueByDay is stable: the first row seen for a day wins.
func UniqueByDay(rows []DailyRow) []DailyRow {
	seen := make(map[string]struct{}, len(rows))
	unique := make([]DailyRow, 0, len(rows))

	for _, row := range rows {
		if _, ok := seen[row.Day]; ok {
			continue
		}
		seen[row.Day] = struct{}{}
		unique = append(unique, row)
	}

	return unique
}

func NewCurrentWeatherRow(resp providers.CurrentWeatherResponse) *CurrentWeatherRow {
	title, description := firstCondition(resp.Weather)

	return &CurrentWeatherRow{
		City:           resp.Name,
		Title:          title,
		Description:    description,
		Temperature:    formatOneDecimal(resp.Temperature()),
		MaxTemperature: formatOneDecimal(resp.Main.TempMax),
		MinTemperature: formatOneDecimal(resp.Main.TempMin),
		Humidity:       formatOneDecimal(resp.Main.Humidity),
	}
}

func firstCondition(conditions []providers.Condition) (title, description string) {
	if len(conditions) == 0 {
		return "", ""
	}
	return conditions[0].Main, conditions[0].Description
}

func formatOneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
