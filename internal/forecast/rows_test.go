package forecast_test

import (
	"testing"
	"time"
	"ulascansenturk/weekly-weather/internal/forecast"
	"ulascansenturk/weekly-weather/internal/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(at time.Time, temp float64, conditions ...providers.Condition) providers.ForecastEntry {
	dt := at.Unix()
	return providers.ForecastEntry{
		Dt:      &dt,
		Main:    &providers.MainReading{Temp: &temp},
		Weather: conditions,
	}
}

func TestNewDailyRow(t *testing.T) {
	at := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)

	row := forecast.NewDailyRow(entry(at, 21.0,
		providers.Condition{Main: "Clouds", Description: "broken clouds"},
		providers.Condition{Main: "Rain", Description: "light rain"},
	), time.UTC)

	assert.Equal(t, "05", row.Day)
	assert.Equal(t, "March", row.Month)
	assert.Equal(t, "Clouds", row.Title)
	assert.Equal(t, "broken clouds", row.Description)
	assert.Equal(t, "21.0", row.Temperature)
	assert.Equal(t, "0521.0Clouds", row.ID())
}

func TestNewDailyRow_TemperatureFormatting(t *testing.T) {
	cases := map[float64]string{
		21.0:  "21.0",
		19.96: "20.0",
		-3.25: "-3.2",
		0.04:  "0.0",
		7.55:  "7.5",
	}

	for temp, want := range cases {
		row := forecast.NewDailyRow(entry(time.Unix(0, 0), temp), time.UTC)
		assert.Equal(t, want, row.Temperature, "temp %v", temp)
	}
}

func TestNewDailyRow_NoConditions(t *testing.T) {
	row := forecast.NewDailyRow(entry(time.Unix(0, 0), 10), time.UTC)

	assert.Empty(t, row.Title)
	assert.Empty(t, row.Description)
}

func TestNewDailyRow_UsesDisplayLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	at := time.Date(2024, time.January, 31, 20, 0, 0, 0, time.UTC)
	row := forecast.NewDailyRow(entry(at, 1), tokyo)

	assert.Equal(t, "01", row.Day)
	assert.Equal(t, "February", row.Month)
}

func TestDailyRows_KeepsFirstEntryPerDay(t *testing.T) {
	monday := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	rows := forecast.DailyRows([]providers.ForecastEntry{
		entry(monday, 5.0, providers.Condition{Main: "Snow", Description: "light snow"}),
		entry(monday.Add(3*time.Hour), 8.0, providers.Condition{Main: "Clear", Description: "clear sky"}),
		entry(tuesday, 6.5, providers.Condition{Main: "Rain", Description: "moderate rain"}),
	}, time.UTC)

	require.Len(t, rows, 2)
	assert.Equal(t, "01", rows[0].Day)
	assert.Equal(t, "Snow", rows[0].Title)
	assert.Equal(t, "5.0", rows[0].Temperature)
	assert.Equal(t, "02", rows[1].Day)
	assert.Equal(t, "Rain", rows[1].Title)
}

func TestDailyRows_Empty(t *testing.T) {
	rows := forecast.DailyRows(nil, time.UTC)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestUniqueByDay_IsStable(t *testing.T) {
	rows := forecast.UniqueByDay([]forecast.DailyRow{
		{Day: "03", Title: "a"},
		{Day: "01", Title: "b"},
		{Day: "03", Title: "c"},
		{Day: "02", Title: "d"},
		{Day: "01", Title: "e"},
	})

	assert.Equal(t, []forecast.DailyRow{
		{Day: "03", Title: "a"},
		{Day: "01", Title: "b"},
		{Day: "02", Title: "d"},
	}, rows)
}

func TestNewCurrentWeatherRow(t *testing.T) {
	temp := 19.96
	row := forecast.NewCurrentWeatherRow(providers.CurrentWeatherResponse{
		Name: "Paris",
		Main: &providers.MainReading{Temp: &temp, TempMin: 17.04, TempMax: 22.5, Humidity: 61},
		Weather: []providers.Condition{
			{Main: "Clear", Description: "clear sky"},
		},
	})

	require.NotNil(t, row)
	assert.Equal(t, "Paris", row.City)
	assert.Equal(t, "20.0", row.Temperature)
	assert.Equal(t, "22.5", row.MaxTemperature)
	assert.Equal(t, "17.0", row.MinTemperature)
	assert.Equal(t, "61.0", row.Humidity)
	assert.Equal(t, "Clear", row.Title)
	assert.Equal(t, "clear sky", row.Description)
}
