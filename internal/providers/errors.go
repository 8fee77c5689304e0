package providers

import "errors"

type ErrorKind int

const (
	KindNetwork ErrorKind = iota + 1
	KindDecoding
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// WeatherError is the only error the fetch pipeline returns.
type WeatherError struct {
	Kind        ErrorKind
	Description string
}

func (e *WeatherError) Error() string {
	return e.Kind.String() + " error: " + e.Description
}

func NetworkError(description string) *WeatherError {
	return &WeatherError{Kind: KindNetwork, Description: description}
}

func DecodingError(description string) *WeatherError {
	return &WeatherError{Kind: KindDecoding, Description: description}
}

// KindOf returns the kind of a pipeline error, or zero for anything else.
func KindOf(err error) ErrorKind {
	var weatherErr *WeatherError
	if errors.As(err, &weatherErr) {
		return weatherErr.Kind
	}
	return 0
}

func IsNetwork(err error) bool {
	return KindOf(err) == KindNetwork
}

func IsDecoding(err error) bool {
	return KindOf(err) == KindDecoding
}
