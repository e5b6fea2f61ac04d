package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/observability"
	"github.com/tbourn/closet-backend/internal/repo"
)

// DefaultRefresh is how long a cached day stays fresh.
const DefaultRefresh = time.Hour

// Cache is the daily weather cache. At most one row per calendar date is
// kept; a row older than Refresh is re-fetched and overwritten in place.
//
// Reads and writes are not serialized: two concurrent misses for the same
// date may both fetch, and the last upsert wins.
type Cache struct {
	db       *gorm.DB
	clock    clockwork.Clock
	fetcher  Fetcher
	refresh  time.Duration
	location *time.Location
}

// CacheOption customizes a Cache.
type CacheOption func(*Cache)

// WithClock injects the time source (tests use clockwork.NewFakeClock).
func WithClock(c clockwork.Clock) CacheOption { return func(k *Cache) { k.clock = c } }

// WithRefresh overrides DefaultRefresh.
func WithRefresh(d time.Duration) CacheOption {
	return func(k *Cache) {
		if d > 0 {
			k.refresh = d
		}
	}
}

// WithLocation sets the zone used to decide what "today" is.
func WithLocation(loc *time.Location) CacheOption {
	return func(k *Cache) {
		if loc != nil {
			k.location = loc
		}
	}
}

// NewCache builds a cache over db that fills misses from f. A nil fetcher
// falls back to StaticFetcher.
func NewCache(db *gorm.DB, f Fetcher, opts ...CacheOption) *Cache {
	if f == nil {
		f = StaticFetcher{}
	}
	c := &Cache{
		db:       db,
		clock:    clockwork.NewRealClock(),
		fetcher:  f,
		refresh:  DefaultRefresh,
		location: time.UTC,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Today returns the current calendar date in the cache's location.
func (c *Cache) Today() domain.Date { return domain.DateOf(c.clock.Now(), c.location) }

// GetForDate returns the weather for date (today when nil), fetching when the
// row is missing or stale. A fresh row is returned untouched.
func (c *Cache) GetForDate(ctx context.Context, date *domain.Date) (*domain.Weather, error) {
	day := c.Today()
	if date != nil {
		day = *date
	}

	tr := otel.Tracer("weather/Cache")
	ctx, span := tr.Start(ctx, "GetForDate",
		trace.WithAttributes(attribute.String("weather.date", string(day))),
	)
	defer span.End()

	now := c.clock.Now().UTC()
	cached, err := repo.GetWeather(ctx, c.db, day)
	switch {
	case err == nil && now.Sub(cached.LastUpdated) < c.refresh:
		observability.WeatherCache.WithLabelValues("hit").Inc()
		span.SetAttributes(attribute.String("weather.cache", "hit"))
		return cached, nil
	case err == nil:
		observability.WeatherCache.WithLabelValues("stale").Inc()
		span.SetAttributes(attribute.String("weather.cache", "stale"))
	case errors.Is(err, repo.ErrNotFound):
		observability.WeatherCache.WithLabelValues("miss").Inc()
		span.SetAttributes(attribute.String("weather.cache", "miss"))
	default:
		span.RecordError(err)
		return nil, fmt.Errorf("load weather %s: %w", day, err)
	}

	reading, err := c.fetcher.Fetch(ctx, day)
	countFetch(c.fetcher.Name(), err)
	if err != nil {
		span.RecordError(err)
		log.Warn().Err(err).Str("provider", c.fetcher.Name()).Str("date", string(day)).Msg("weather fetch failed")
		return nil, fmt.Errorf("fetch weather %s: %w", day, err)
	}

	w := &domain.Weather{
		Date:                day,
		TempHigh:            reading.TempHigh,
		TempLow:             reading.TempLow,
		PrecipitationChance: reading.PrecipitationChance,
		Humidity:            reading.Humidity,
		LastUpdated:         now,
	}
	if err := repo.UpsertWeather(ctx, c.db, w); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("store weather %s: %w", day, err)
	}
	log.Info().Str("provider", c.fetcher.Name()).Str("date", string(day)).
		Float64("high", w.TempHigh).Float64("low", w.TempLow).Msg("weather refreshed")
	return w, nil
}

// List returns cached days, newest first, without fetching.
func (c *Cache) List(ctx context.Context, limit int) ([]domain.Weather, error) {
	return repo.ListWeather(ctx, c.db, limit)
}

// Current adapts the cache to CurrentProvider for deployments without a live
// current-conditions API. The location is ignored; today's cached day is
// reported with its average temperature.
func (c *Cache) Current(ctx context.Context, _ Location) (Current, error) {
	w, err := c.GetForDate(ctx, nil)
	if err != nil {
		return Current{}, err
	}
	cond := ConditionOf(*w)
	desc := cond.Primary
	for _, l := range cond.All[1:] {
		desc += ", " + l
	}
	return Current{
		Temperature: cond.Metrics.AvgTemp,
		Condition:   cond.Primary,
		Description: desc,
		Humidity:    w.Humidity,
	}, nil
}
