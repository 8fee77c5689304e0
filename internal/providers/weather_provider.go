package providers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const couldNotCreateURL = "Couldn't create URL"

var tracer = otel.Tracer("ulascansenturk/weekly-weather/internal/providers")

// Client issues OpenWeather requests. Fetch decodes through it.
type Client interface {
	API() API
	GetHTTPClient() *http.Client
	validation() *validator.Validate
}

type client struct {
	api      API
	client   *http.Client
	validate *validator.Validate
}

func NewClient(api API, timeout time.Duration) Client {
	return &client{
		api: api,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		validate: validator.New(),
	}
}

func (c *client) API() API {
	return c.api
}

func (c *client) GetHTTPClient() *http.Client {
	return c.client
}

func (c *client) validation() *validator.Validate {
	return c.validate
}

// Fetch runs a request through the pipeline: build the URL, issue one GET and
// decode the body into T. Every failure is a *WeatherError.
func Fetch[T any](ctx context.Context, c Client, req Request) (T, error) {
	var zero T

	ctx, span := tracer.Start(ctx, "openweather.fetch", trace.WithAttributes(
		attribute.String("openweather.endpoint", req.Endpoint),
		attribute.String("openweather.city", req.Query.Get("q")),
	))
	defer span.End()

	u, err := req.URL()
	if err != nil {
		return zero, fail(span, NetworkError(couldNotCreateURL))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return zero, fail(span, NetworkError(couldNotCreateURL))
	}

	resp, err := c.GetHTTPClient().Do(httpReq)
	if err != nil {
		return zero, fail(span, NetworkError(describe(err)))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fail(span, NetworkError(describe(err)))
	}

	// The body is decoded whatever the status: provider error payloads do not
	// match the schema and surface as decoding errors.
	var decoded T
	if err := json.Unmarshal(body, &decoded); err != nil {
		return zero, fail(span, DecodingError(err.Error()))
	}
	if err := c.validation().Struct(decoded); err != nil {
		return zero, fail(span, DecodingError(err.Error()))
	}

	return decoded, nil
}

// JSONFetcher decodes responses of one shape. Stores supply the endpoint.
type JSONFetcher[T any] struct {
	client Client
}

func NewFetcher[T any](client Client) *JSONFetcher[T] {
	return &JSONFetcher[T]{client: client}
}

func (f *JSONFetcher[T]) Fetch(ctx context.Context, endpoint, city string) (T, error) {
	return Fetch[T](ctx, f.client, f.client.API().MakeRequest(endpoint, city))
}

func fail(span trace.Span, err *WeatherError) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Kind.String())
	return err
}

// describe drops the url.Error wrapper so the API key in the query never
// reaches logs.
func describe(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}
