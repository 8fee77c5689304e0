package config

import (
	"fmt"
	"time"

	"ulascansenturk/weekly-weather/internal/providers"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherAPIKey  string
	OpenWeatherScheme  string
	OpenWeatherHost    string
	OpenWeatherPath    string
	OpenWeatherTimeout time.Duration

	DebounceInterval time.Duration
	DisplayTimezone  string
	DisplayLocation  *time.Location

	OTLPEndpoint string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weekly-weather")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 175)
	v.SetDefault("OPENWEATHER_SCHEME", "https")
	v.SetDefault("OPENWEATHER_HOST", "api.openweathermap.org")
	v.SetDefault("OPENWEATHER_PATH", "/data/2.5")
	v.SetDefault("OPENWEATHER_TIMEOUT", 10*time.Second)
	v.SetDefault("DEBOUNCE_INTERVAL", 500*time.Millisecond)
	v.SetDefault("DISPLAY_TIMEZONE", "Local")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherAPIKey:  v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherScheme:  v.GetString("OPENWEATHER_SCHEME"),
		OpenWeatherHost:    v.GetString("OPENWEATHER_HOST"),
		OpenWeatherPath:    v.GetString("OPENWEATHER_PATH"),
		OpenWeatherTimeout: v.GetDuration("OPENWEATHER_TIMEOUT"),
		DebounceInterval:   v.GetDuration("DEBOUNCE_INTERVAL"),
		DisplayTimezone:    v.GetString("DISPLAY_TIMEZONE"),
		OTLPEndpoint:       v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	loc, err := time.LoadLocation(config.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", config.DisplayTimezone, err)
	}
	config.DisplayLocation = loc

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// AuditLogEnabled reports whether a database is configured for the fetch audit log.
func (c *Config) AuditLogEnabled() bool {
	return c.DBHost != ""
}

// OpenWeatherAPI starts from the public OpenWeather deployment and applies
// any configured overrides.
func (c *Config) OpenWeatherAPI() providers.API {
	api := providers.DefaultAPI(c.OpenWeatherAPIKey)
	if c.OpenWeatherScheme != "" {
		api.Scheme = c.OpenWeatherScheme
	}
	if c.OpenWeatherHost != "" {
		api.Host = c.OpenWeatherHost
	}
	if c.OpenWeatherPath != "" {
		api.Path = c.OpenWeatherPath
	}
	return api
}
