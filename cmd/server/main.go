package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weekly-weather/config"
	"ulascansenturk/weekly-weather/internal/api/v1/handlers"
	"ulascansenturk/weekly-weather/internal/db/fetchlog"
	"ulascansenturk/weekly-weather/internal/forecast"
	"ulascansenturk/weekly-weather/internal/mainloop"
	"ulascansenturk/weekly-weather/internal/providers"
	"ulascansenturk/weekly-weather/internal/service"
	"ulascansenturk/weekly-weather/internal/telemetry"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	shutdownTracer, err := telemetry.InitTracer(ctx, conf.ServiceName, conf.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracer")
	}

	loop := mainloop.New()
	go loop.Run(ctx)

	var history fetchlog.Repository
	var recorder forecast.Recorder
	if conf.AuditLogEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		history = fetchlog.NewRepository(db)
		recorder = history
	} else {
		log.Warn().Msg("DATABASE_HOST not set, fetch history disabled")
	}

	if conf.OpenWeatherAPIKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY not set, requests will be rejected by the provider")
	}

	client := providers.NewClient(conf.OpenWeatherAPI(), conf.OpenWeatherTimeout)

	weekly := forecast.NewWeeklyForecast(loop, providers.NewFetcher[providers.WeeklyForecastResponse](client), recorder, conf.DisplayLocation)
	current := forecast.NewCurrentForecast(loop, providers.NewFetcher[providers.CurrentWeatherResponse](client), recorder)

	weatherService := service.NewWeatherService(loop, weekly, current, history, conf.DebounceInterval)

	weatherService.SubscribeWeekly(func(days []forecast.DailyRow) {
		log.Info().Str("city", weatherService.City()).Int("days", len(days)).Msg("weekly forecast updated")
	})

	handler := handlers.NewWeatherHandler(weatherService)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           otelhttp.NewHandler(handler, "weekly-weather"),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
		weatherService.Close()
		if err := shutdownTracer(ctx); err != nil {
			log.Error().Err(err).Msg("tracer shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&fetchlog.FetchLog{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
