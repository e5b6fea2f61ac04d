package weather

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/tbourn/closet-backend/internal/config"
	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/observability"
)

// OpenWeather talks to the OpenWeatherMap 2.5 API in imperial units. It
// serves the daily cache (Fetch, from the 5-day forecast for the configured
// city) and suggestions (Current).
type OpenWeather struct {
	client  *resty.Client
	apiKey  string
	city    string
	country string
}

// NewOpenWeather builds a client from cfg. An empty API key is accepted
// here and reported as ErrMissingAPIKey on first use.
func NewOpenWeather(cfg config.WeatherConfig) *OpenWeather {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.openweathermap.org/data/2.5"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	country := strings.ToUpper(strings.TrimSpace(cfg.Country))
	if country == "" {
		country = "US"
	}
	cli := resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &OpenWeather{
		client:  cli,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		city:    strings.TrimSpace(cfg.City),
		country: country,
	}
}

func (o *OpenWeather) Name() string { return "openweather" }

// Current returns the current observation for loc.
func (o *OpenWeather) Current(ctx context.Context, loc Location) (cur Current, err error) {
	defer func() { countFetch("openweather_current", err) }()

	params, err := o.locationParams(loc)
	if err != nil {
		return Current{}, err
	}
	body, err := o.get(ctx, "/weather", params)
	if err != nil {
		return Current{}, err
	}

	r := gjson.ParseBytes(body)
	temp := r.Get("main.temp")
	if !temp.Exists() {
		return Current{}, fmt.Errorf("%w: missing main.temp", ErrUpstream)
	}
	return Current{
		Temperature: temp.Float(),
		Condition:   strings.ToLower(r.Get("weather.0.main").String()),
		Description: r.Get("weather.0.description").String(),
		Humidity:    int(r.Get("main.humidity").Int()),
		WindSpeed:   r.Get("wind.speed").Float(),
	}, nil
}

// Fetch aggregates the 3-hourly forecast slots that fall on date (in the
// city's own timezone) into a daily reading: max high, min low, max chance
// of precipitation, mean humidity.
func (o *OpenWeather) Fetch(ctx context.Context, date domain.Date) (Reading, error) {
	params, err := o.locationParams(Location{City: o.city, Country: o.country})
	if err != nil {
		return Reading{}, err
	}
	body, err := o.get(ctx, "/forecast", params)
	if err != nil {
		return Reading{}, err
	}

	r := gjson.ParseBytes(body)
	zone := time.FixedZone("city", int(r.Get("city.timezone").Int()))

	var (
		n        int
		high     = math.Inf(-1)
		low      = math.Inf(1)
		pop      float64
		humidSum float64
	)
	r.Get("list").ForEach(func(_, slot gjson.Result) bool {
		at := time.Unix(slot.Get("dt").Int(), 0)
		if domain.DateOf(at, zone) != date {
			return true
		}
		n++
		high = math.Max(high, slot.Get("main.temp_max").Float())
		low = math.Min(low, slot.Get("main.temp_min").Float())
		pop = math.Max(pop, slot.Get("pop").Float())
		humidSum += slot.Get("main.humidity").Float()
		return true
	})
	if n == 0 {
		return Reading{}, fmt.Errorf("%w: %s", ErrNoForecast, date)
	}
	return Reading{
		TempHigh:            high,
		TempLow:             low,
		PrecipitationChance: int(math.Round(pop * 100)),
		Humidity:            int(math.Round(humidSum / float64(n))),
	}, nil
}

func (o *OpenWeather) locationParams(loc Location) (map[string]string, error) {
	if o.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	country := strings.ToUpper(strings.TrimSpace(loc.Country))
	if country == "" {
		country = o.country
	}
	params := map[string]string{
		"appid": o.apiKey,
		"units": "imperial",
	}
	switch {
	case strings.TrimSpace(loc.ZipCode) != "":
		params["zip"] = strings.TrimSpace(loc.ZipCode) + "," + country
	case strings.TrimSpace(loc.City) != "":
		params["q"] = strings.TrimSpace(loc.City) + "," + country
	default:
		return nil, ErrLocationRequired
	}
	return params, nil
}

func (o *OpenWeather) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("openweather %s request: %w", path, err)
	}
	if !resp.IsSuccess() {
		msg := gjson.GetBytes(resp.Body(), "message").String()
		if msg == "" {
			msg = strings.TrimSpace(resp.Status())
		}
		return nil, fmt.Errorf("%w: http %d: %s", ErrUpstream, resp.StatusCode(), msg)
	}
	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid json from %s", ErrUpstream, path)
	}
	log.Debug().Str("path", path).Int("bytes", len(body)).Msg("openweather response")
	return body, nil
}

func countFetch(provider string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	observability.WeatherFetches.WithLabelValues(provider, result).Inc()
}
