package service

import (
	"errors"
	"time"
	"ulascansenturk/weekly-weather/internal/db/fetchlog"
	"ulascansenturk/weekly-weather/internal/debounce"
	"ulascansenturk/weekly-weather/internal/forecast"
	"ulascansenturk/weekly-weather/internal/mainloop"
	"ulascansenturk/weekly-weather/internal/observable"
)

var ErrHistoryDisabled = errors.New("fetch history is not enabled")

type WeatherService interface {
	SetCity(city string)
	City() string
	Weekly() []forecast.DailyRow
	Current() *forecast.CurrentWeatherRow
	LoadCurrent()
	SubscribeWeekly(fn func([]forecast.DailyRow)) (unsubscribe func())
	SubscribeCurrent(fn func(*forecast.CurrentWeatherRow)) (unsubscribe func())
	RecentFetches(city string, limit int) ([]fetchlog.FetchLog, error)
	Close()
}

type weatherService struct {
	loop      *mainloop.Loop
	city      *observable.Value[string]
	weekly    *forecast.WeeklyForecast
	current   *forecast.CurrentForecast
	history   fetchlog.Repository
	debouncer *debounce.Debouncer[string]
	stopCity  func()
}

// NewWeatherService wires typed city names to the weekly forecast: every
// change after the initial empty value is debounced and then loaded.
func NewWeatherService(
	loop *mainloop.Loop,
	weekly *forecast.WeeklyForecast,
	current *forecast.CurrentForecast,
	history fetchlog.Repository,
	debounceInterval time.Duration,
) WeatherService {
	s := &weatherService{
		loop:    loop,
		city:    observable.New(loop, ""),
		weekly:  weekly,
		current: current,
		history: history,
	}

	s.debouncer = debounce.New(debounceInterval, weekly.Load, debounce.WithSkip(1))
	s.stopCity = s.city.Subscribe(s.debouncer.Push)

	return s
}

func (s *weatherService) SetCity(city string) {
	s.city.Set(city)
}

func (s *weatherService) City() string {
	return s.city.Get()
}

func (s *weatherService) Weekly() []forecast.DailyRow {
	return s.weekly.Get()
}

func (s *weatherService) Current() *forecast.CurrentWeatherRow {
	return s.current.Get()
}

// LoadCurrent fetches current conditions for the city as of every SetCity
// issued before the call.
func (s *weatherService) LoadCurrent() {
	s.loop.Dispatch(func() {
		s.current.Load(s.city.Get())
	})
}

func (s *weatherService) SubscribeWeekly(fn func([]forecast.DailyRow)) func() {
	return s.weekly.Subscribe(fn)
}

func (s *weatherService) SubscribeCurrent(fn func(*forecast.CurrentWeatherRow)) func() {
	return s.current.Subscribe(fn)
}

func (s *weatherService) RecentFetches(city string, limit int) ([]fetchlog.FetchLog, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.GetRecentFetches(city, limit)
}

func (s *weatherService) Close() {
	s.stopCity()
	s.debouncer.Stop()
	s.weekly.Close()
	s.current.Close()
}
