package forecast

import (
	"time"
	"ulascansenturk/weekly-weather/internal/mainloop"
	"ulascansenturk/weekly-weather/internal/providers"
)

// CurrentForecast publishes the current conditions, or nil when the last
// fetch failed.
type CurrentForecast = Store[providers.CurrentWeatherResponse, *CurrentWeatherRow]

// WeeklyForecast publishes one row per day. A failed fetch publishes an
// empty list.
type WeeklyForecast = Store[providers.WeeklyForecastResponse, []DailyRow]

func NewCurrentForecast(loop *mainloop.Loop, fetcher Fetcher[providers.CurrentWeatherResponse], recorder Recorder) *CurrentForecast {
	return newStore(loop, fetcher, recorder, storeConfig[providers.CurrentWeatherResponse, *CurrentWeatherRow]{
		endpoint:  providers.CurrentWeatherEndpoint,
		initial:   nil,
		transform: NewCurrentWeatherRow,
		failed:    func() *CurrentWeatherRow { return nil },
		size: func(row *CurrentWeatherRow) int {
			if row == nil {
				return 0
			}
			return 1
		},
	})
}

func NewWeeklyForecast(loop *mainloop.Loop, fetcher Fetcher[providers.WeeklyForecastResponse], recorder Recorder, loc *time.Location) *WeeklyForecast {
	return newStore(loop, fetcher, recorder, storeConfig[providers.WeeklyForecastResponse, []DailyRow]{
		endpoint: providers.WeeklyForecastEndpoint,
		initial:  []DailyRow{},
		transform: func(resp providers.WeeklyForecastResponse) []DailyRow {
			return DailyRows(resp.List, loc)
		},
		failed: func() []DailyRow { return []DailyRow{} },
		size:   func(rows []DailyRow) int { return len(rows) },
	})
}
