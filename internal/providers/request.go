package providers

import (
	"errors"
	"net/url"
	"strings"
)

const (
	CurrentWeatherEndpoint = "/weather"
	WeeklyForecastEndpoint = "/forecast"
)

// API locates the OpenWeather deployment requests are sent to.
type API struct {
	Scheme string
	Host   string
	Path   string
	Key    string
}

func DefaultAPI(key string) API {
	return API{
		Scheme: "https",
		Host:   "api.openweathermap.org",
		Path:   "/data/2.5",
		Key:    key,
	}
}

// Request is an OpenWeather call that has not been turned into a URL yet.
type Request struct {
	Scheme   string
	Host     string
	Path     string
	Endpoint string
	Query    url.Values
}

func (a API) MakeRequest(endpoint, city string) Request {
	query := url.Values{}
	query.Set("q", city)
	query.Set("mode", "json")
	query.Set("units", "metric")
	query.Set("APPID", a.Key)

	return Request{
		Scheme:   a.Scheme,
		Host:     a.Host,
		Path:     a.Path,
		Endpoint: endpoint,
		Query:    query,
	}
}

var errMalformedComponents = errors.New("malformed url components")

// URL materializes the request. A missing scheme or host, an unparsable host,
// or a path that is not rooted all fail here.
func (r Request) URL() (*url.URL, error) {
	if r.Scheme == "" || r.Host == "" {
		return nil, errMalformedComponents
	}

	path := r.Path + r.Endpoint
	if path != "" && !strings.HasPrefix(path, "/") {
		return nil, errMalformedComponents
	}

	u, err := url.Parse(r.Scheme + "://" + r.Host)
	if err != nil {
		return nil, err
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return nil, errMalformedComponents
	}

	u.Path = path
	u.RawQuery = r.Query.Encode()

	return u, nil
}
