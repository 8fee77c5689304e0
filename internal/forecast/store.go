package forecast

import (
	"context"
	"time"
	"ulascansenturk/weekly-weather/internal/mainloop"
	"ulascansenturk/weekly-weather/internal/observable"
	"ulascansenturk/weekly-weather/internal/providers"

	"github.com/rs/zerolog/log"
)

// Fetcher runs one request against an endpoint and decodes the response.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, endpoint, city string) (T, error)
}

// Recorder receives one entry per applied fetch.
type Recorder interface {
	LogFetch(city, endpoint, outcome, detail string, rowCount int, duration time.Duration) error
}

const OutcomeOK = "ok"

// Store owns a single fetch pipeline and publishes its latest result.
// Only the most recently started Load may change the published state.
type Store[T, S any] struct {
	endpoint  string
	fetcher   Fetcher[T]
	recorder  Recorder
	loop      *mainloop.Loop
	state     *observable.Value[S]
	transform func(T) S
	failed    func() S
	size      func(S) int

	// loop-confined
	generation uint64
	cancel     context.CancelFunc
}

type storeConfig[T, S any] struct {
	endpoint  string
	initial   S
	transform func(T) S
	failed    func() S
	size      func(S) int
}

func newStore[T, S any](loop *mainloop.Loop, fetcher Fetcher[T], recorder Recorder, cfg storeConfig[T, S]) *Store[T, S] {
	return &Store[T, S]{
		endpoint:  cfg.endpoint,
		fetcher:   fetcher,
		recorder:  recorder,
		loop:      loop,
		state:     observable.New(loop, cfg.initial),
		transform: cfg.transform,
		failed:    cfg.failed,
		size:      cfg.size,
	}
}

func (s *Store[T, S]) Endpoint() string {
	return s.endpoint
}

func (s *Store[T, S]) Get() S {
	return s.state.Get()
}

func (s *Store[T, S]) Subscribe(fn func(S)) func() {
	return s.state.Subscribe(fn)
}

// Load supersedes any fetch in flight and starts a new one for city.
func (s *Store[T, S]) Load(city string) {
	s.loop.Dispatch(func() {
		if s.cancel != nil {
			s.cancel()
		}
		s.generation++
		generation := s.generation

		ctx, cancel := context.WithCancel(context.Background())
		s.cancel = cancel

		go s.fetch(ctx, generation, city)
	})
}

// Close cancels the fetch in flight; its result will not be applied.
func (s *Store[T, S]) Close() {
	s.loop.Dispatch(func() {
		if s.cancel != nil {
			s.cancel()
			s.cancel = nil
		}
		s.generation++
	})
}

func (s *Store[T, S]) fetch(ctx context.Context, generation uint64, city string) {
	start := time.Now()
	resp, err := s.fetcher.Fetch(ctx, s.endpoint, city)

	var next S
	if err == nil {
		next = s.transform(resp)
	}

	s.loop.Dispatch(func() {
		if generation != s.generation {
			log.Debug().Str("endpoint", s.endpoint).Str("city", city).Msg("discarding superseded fetch")
			return
		}
		s.cancel()
		s.cancel = nil

		if err != nil {
			log.Warn().Err(err).
				Str("endpoint", s.endpoint).
				Str("city", city).
				Str("kind", providers.KindOf(err).String()).
				Msg("weather fetch failed")
			next = s.failed()
		}
		s.state.Set(next)

		s.record(city, err, s.size(next), time.Since(start))
	})
}

func (s *Store[T, S]) record(city string, fetchErr error, rowCount int, duration time.Duration) {
	if s.recorder == nil {
		return
	}

	outcome, detail := OutcomeOK, ""
	if fetchErr != nil {
		outcome = providers.KindOf(fetchErr).String()
		detail = fetchErr.Error()
	}

	go func() {
		if err := s.recorder.LogFetch(city, s.endpoint, outcome, detail, rowCount, duration); err != nil {
			log.Error().Err(err).Str("city", city).Msg("Failed to log weather fetch")
		}
	}()
}
