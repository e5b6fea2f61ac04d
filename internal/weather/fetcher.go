package weather

import (
	"context"
	"errors"

	"github.com/tbourn/closet-backend/internal/domain"
)

var (
	// ErrMissingAPIKey is returned by the OpenWeather client when no key is configured.
	ErrMissingAPIKey = errors.New("openweather API key is not configured")

	// ErrLocationRequired is returned when a current-conditions lookup has
	// neither a city nor a zip code.
	ErrLocationRequired = errors.New("either city or zip_code must be provided")

	// ErrNoForecast is returned when the upstream forecast does not cover the date.
	ErrNoForecast = errors.New("no forecast available for date")

	// ErrUpstream wraps non-2xx responses and undecodable payloads.
	ErrUpstream = errors.New("weather upstream error")
)

// Reading is one day of weather numbers as returned by a Fetcher.
type Reading struct {
	TempHigh            float64
	TempLow             float64
	PrecipitationChance int
	Humidity            int
}

// Fetcher supplies daily readings for the cache.
type Fetcher interface {
	// Name labels metrics and logs.
	Name() string
	Fetch(ctx context.Context, date domain.Date) (Reading, error)
}

// StaticFetcher returns the same placeholder reading for every date. It is
// the default provider and needs no network.
type StaticFetcher struct{}

// StaticReading is what StaticFetcher returns.
var StaticReading = Reading{TempHigh: 75, TempLow: 65, PrecipitationChance: 20, Humidity: 65}

func (StaticFetcher) Name() string { return "static" }

func (StaticFetcher) Fetch(context.Context, domain.Date) (Reading, error) {
	return StaticReading, nil
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, date domain.Date) (Reading, error)

func (FetcherFunc) Name() string { return "func" }

func (f FetcherFunc) Fetch(ctx context.Context, date domain.Date) (Reading, error) {
	return f(ctx, date)
}

// Location is a city or zip code within a country. Zip wins when both are set.
type Location struct {
	City    string
	ZipCode string
	Country string
}

// Current is a point-in-time observation used for suggestions.
type Current struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// CurrentProvider reports current conditions for a location.
type CurrentProvider interface {
	Current(ctx context.Context, loc Location) (Current, error)
}
