package providers

import "time"

// Condition is one entry of the "weather" array.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type MainReading struct {
	Temp     *float64 `json:"temp" validate:"required"`
	TempMin  float64  `json:"temp_min"`
	TempMax  float64  `json:"temp_max"`
	Humidity float64  `json:"humidity"`
}

type CurrentWeatherResponse struct {
	Name    string       `json:"name"`
	Main    *MainReading `json:"main" validate:"required"`
	Weather []Condition  `json:"weather" validate:"required,dive"`
}

func (r CurrentWeatherResponse) Temperature() float64 {
	return *r.Main.Temp
}

// ForecastEntry is a single three-hourly sample of the /forecast endpoint.
type ForecastEntry struct {
	Dt      *int64       `json:"dt" validate:"required"`
	Main    *MainReading `json:"main" validate:"required"`
	Weather []Condition  `json:"weather" validate:"required,dive"`
}

func (e ForecastEntry) Time() time.Time {
	return time.Unix(*e.Dt, 0)
}

func (e ForecastEntry) Temperature() float64 {
	return *e.Main.Temp
}

type WeeklyForecastResponse struct {
	List []ForecastEntry `json:"list" validate:"required,dive"`
}
