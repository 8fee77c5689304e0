package forecast_test

import (
	"context"
	"testing"
	"time"
	"ulascansenturk/weekly-weather/internal/forecast"
	"ulascansenturk/weekly-weather/internal/mainloop"
	"ulascansenturk/weekly-weather/internal/mocks"
	"ulascansenturk/weekly-weather/internal/providers"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

type ForecastStoreTestSuite struct {
	suite.Suite
	loop           *mainloop.Loop
	cancel         context.CancelFunc
	weeklyFetcher  *mocks.MockFetcher[providers.WeeklyForecastResponse]
	currentFetcher *mocks.MockFetcher[providers.CurrentWeatherResponse]
	weekly         *forecast.WeeklyForecast
	current        *forecast.CurrentForecast
}

func (s *ForecastStoreTestSuite) SetupTest() {
	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	s.loop = mainloop.New()
	go s.loop.Run(ctx)

	s.weeklyFetcher = mocks.NewMockFetcher[providers.WeeklyForecastResponse](s.T())
	s.currentFetcher = mocks.NewMockFetcher[providers.CurrentWeatherResponse](s.T())
	s.weekly = forecast.NewWeeklyForecast(s.loop, s.weeklyFetcher, nil, time.UTC)
	s.current = forecast.NewCurrentForecast(s.loop, s.currentFetcher, nil)
}

func (s *ForecastStoreTestSuite) TearDownTest() {
	s.cancel()
}

func weeklyResponse(days ...int) providers.WeeklyForecastResponse {
	var resp providers.WeeklyForecastResponse
	for _, day := range days {
		at := time.Date(2024, time.June, day, 12, 0, 0, 0, time.UTC)
		resp.List = append(resp.List, entry(at, float64(day), providers.Condition{Main: "Clear", Description: "clear sky"}))
	}
	return resp
}

func currentResponse(city string, temp float64) providers.CurrentWeatherResponse {
	return providers.CurrentWeatherResponse{
		Name:    city,
		Main:    &providers.MainReading{Temp: &temp},
		Weather: []providers.Condition{{Main: "Clouds", Description: "few clouds"}},
	}
}

func (s *ForecastStoreTestSuite) TestInitialState() {
	s.NotNil(s.weekly.Get())
	s.Empty(s.weekly.Get())
	s.Nil(s.current.Get())
	s.Equal("/forecast", s.weekly.Endpoint())
	s.Equal("/weather", s.current.Endpoint())
}

func (s *ForecastStoreTestSuite) TestWeeklyLoadPublishesDedupedRows() {
	resp := weeklyResponse(3, 3, 4)
	s.weeklyFetcher.On("Fetch", mock.Anything, "/forecast", "Paris").Return(resp, nil).Once()

	s.weekly.Load("Paris")

	s.Eventually(func() bool { return len(s.weekly.Get()) == 2 }, waitFor, tick)
	rows := s.weekly.Get()
	s.Equal("03", rows[0].Day)
	s.Equal("04", rows[1].Day)
}

func (s *ForecastStoreTestSuite) TestCurrentLoadPublishesRow() {
	s.currentFetcher.On("Fetch", mock.Anything, "/weather", "Paris").
		Return(currentResponse("Paris", 21.0), nil).Once()

	s.current.Load("Paris")

	s.Eventually(func() bool { return s.current.Get() != nil }, waitFor, tick)
	s.Equal("21.0", s.current.Get().Temperature)
	s.Equal("Paris", s.current.Get().City)
}

func (s *ForecastStoreTestSuite) TestLatestLoadWins() {
	parisRelease := make(chan struct{})
	parisCtxErr := make(chan error, 1)

	s.weeklyFetcher.On("Fetch", mock.Anything, "/forecast", "Paris").
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-parisRelease
			parisCtxErr <- ctx.Err()
		}).
		Return(weeklyResponse(1, 2, 3, 4, 5), nil).Once()
	s.weeklyFetcher.On("Fetch", mock.Anything, "/forecast", "Tokyo").
		Return(weeklyResponse(10), nil).Once()

	s.weekly.Load("Paris")
	s.weekly.Load("Tokyo")

	s.Eventually(func() bool { return len(s.weekly.Get()) == 1 }, waitFor, tick)

	close(parisRelease)
	s.ErrorIs(<-parisCtxErr, context.Canceled)

	time.Sleep(50 * time.Millisecond)
	s.Require().NoError(s.loop.Sync(context.Background()))

	rows := s.weekly.Get()
	s.Require().Len(rows, 1)
	s.Equal("10", rows[0].Day)
}

func (s *ForecastStoreTestSuite) TestLateFailureOfSupersededLoadIsIgnored() {
	release := make(chan struct{})

	s.currentFetcher.On("Fetch", mock.Anything, "/weather", "Paris").
		Run(func(mock.Arguments) { <-release }).
		Return(providers.CurrentWeatherResponse{}, providers.NetworkError("context canceled")).Once()
	s.currentFetcher.On("Fetch", mock.Anything, "/weather", "Tokyo").
		Return(currentResponse("Tokyo", 30), nil).Once()

	s.current.Load("Paris")
	s.current.Load("Tokyo")

	s.Eventually(func() bool { return s.current.Get() != nil }, waitFor, tick)
	close(release)

	time.Sleep(50 * time.Millisecond)
	s.Require().NoError(s.loop.Sync(context.Background()))

	s.Require().NotNil(s.current.Get())
	s.Equal("Tokyo", s.current.Get().City)
}

func (s *ForecastStoreTestSuite) TestWeeklyFailureClearsList() {
	for _, fetchErr := range []error{
		providers.NetworkError("connection refused"),
		providers.DecodingError("missing list"),
	} {
		s.weeklyFetcher.On("Fetch", mock.Anything, "/forecast", "Paris").Return(weeklyResponse(1, 2), nil).Once()
		s.weekly.Load("Paris")
		s.Eventually(func() bool { return len(s.weekly.Get()) == 2 }, waitFor, tick)

		s.weeklyFetcher.On("Fetch", mock.Anything, "/forecast", "Nowhere").
			Return(providers.WeeklyForecastResponse{}, fetchErr).Once()
		s.weekly.Load("Nowhere")

		s.Eventually(func() bool { return len(s.weekly.Get()) == 0 }, waitFor, tick)
		s.NotNil(s.weekly.Get())
	}
}

func (s *ForecastStoreTestSuite) TestCurrentFailureClearsRow() {
	for _, fetchErr := range []error{
		providers.NetworkError("connection refused"),
		providers.DecodingError("missing main"),
	} {
		s.currentFetcher.On("Fetch", mock.Anything, "/weather", "Paris").Return(currentResponse("Paris", 20), nil).Once()
		s.current.Load("Paris")
		s.Eventually(func() bool { return s.current.Get() != nil }, waitFor, tick)

		s.currentFetcher.On("Fetch", mock.Anything, "/weather", "Nowhere").
			Return(providers.CurrentWeatherResponse{}, fetchErr).Once()
		s.current.Load("Nowhere")

		s.Eventually(func() bool { return s.current.Get() == nil }, waitFor, tick)
	}
}

func (s *ForecastStoreTestSuite) TestSubscribersSeeEveryPublishedList() {
	s.weeklyFetcher.On("Fetch", mock.Anything, "/forecast", "Paris").Return(weeklyResponse(1, 2, 3), nil).Once()

	published := make(chan []forecast.DailyRow, 4)
	unsubscribe := s.weekly.Subscribe(func(rows []forecast.DailyRow) { published <- rows })
	defer unsubscribe()

	s.Empty(<-published)

	s.weekly.Load("Paris")

	select {
	case rows := <-published:
		s.Len(rows, 3)
	case <-time.After(waitFor):
		s.Fail("no list published")
	}
}

func (s *ForecastStoreTestSuite) TestCloseDiscardsInFlightResult() {
	release := make(chan struct{})
	s.weeklyFetcher.On("Fetch", mock.Anything, "/forecast", "Paris").
		Run(func(mock.Arguments) { <-release }).
		Return(weeklyResponse(1), nil).Once()

	s.weekly.Load("Paris")
	s.Require().NoError(s.loop.Sync(context.Background()))
	s.weekly.Close()
	close(release)

	time.Sleep(50 * time.Millisecond)
	s.Require().NoError(s.loop.Sync(context.Background()))

	s.Empty(s.weekly.Get())
}

func TestForecastStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ForecastStoreTestSuite))
}

type RecordedStoreTestSuite struct {
	suite.Suite
	loop    *mainloop.Loop
	cancel  context.CancelFunc
	fetcher *mocks.MockFetcher[providers.WeeklyForecastResponse]
	repo    *mocks.MockRepository
	weekly  *forecast.WeeklyForecast
}

func (s *RecordedStoreTestSuite) SetupTest() {
	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	s.loop = mainloop.New()
	go s.loop.Run(ctx)

	s.fetcher = mocks.NewMockFetcher[providers.WeeklyForecastResponse](s.T())
	s.repo = mocks.NewMockRepository(s.T())
	s.weekly = forecast.NewWeeklyForecast(s.loop, s.fetcher, s.repo, time.UTC)
}

func (s *RecordedStoreTestSuite) TearDownTest() {
	s.cancel()
}

func (s *RecordedStoreTestSuite) TestRecordsSuccessfulFetch() {
	recorded := make(chan struct{})
	s.fetcher.On("Fetch", mock.Anything, "/forecast", "Oslo").Return(weeklyResponse(1, 1, 2), nil).Once()
	s.repo.On("LogFetch", "Oslo", "/forecast", "ok", "", 2, mock.AnythingOfType("time.Duration")).
		Run(func(mock.Arguments) { close(recorded) }).
		Return(nil).Once()

	s.weekly.Load("Oslo")

	select {
	case <-recorded:
	case <-time.After(waitFor):
		s.Fail("fetch was not recorded")
	}
}

func (s *RecordedStoreTestSuite) TestRecordsFailureKind() {
	recorded := make(chan struct{})
	fetchErr := providers.DecodingError("unexpected body")
	s.fetcher.On("Fetch", mock.Anything, "/forecast", "Atlantis").Return(providers.WeeklyForecastResponse{}, fetchErr).Once()
	s.repo.On("LogFetch", "Atlantis", "/forecast", "decoding", fetchErr.Error(), 0, mock.AnythingOfType("time.Duration")).
		Run(func(mock.Arguments) { close(recorded) }).
		Return(nil).Once()

	s.weekly.Load("Atlantis")

	select {
	case <-recorded:
	case <-time.After(waitFor):
		s.Fail("fetch was not recorded")
	}
}

func TestRecordedStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RecordedStoreTestSuite))
}
