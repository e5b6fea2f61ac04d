package weather

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/repo"
)

func newCacheDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:weather_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

type countingFetcher struct {
	calls int
	next  Reading
	err   error
}

func (f *countingFetcher) Name() string { return "counting" }

func (f *countingFetcher) Fetch(context.Context, domain.Date) (Reading, error) {
	f.calls++
	return f.next, f.err
}

func TestCache_FreshHitDoesNotFetch(t *testing.T) {
	db := newCacheDB(t)
	clk := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	f := &countingFetcher{next: Reading{TempHigh: 80, TempLow: 60, PrecipitationChance: 10, Humidity: 40}}
	c := NewCache(db, f, WithClock(clk))

	w1, err := c.GetForDate(context.Background(), nil)
	if err != nil {
		t.Fatalf("first GetForDate: %v", err)
	}
	if w1.Date != "2025-06-01" || f.calls != 1 {
		t.Fatalf("unexpected first result: %+v calls=%d", w1, f.calls)
	}

	clk.Advance(59 * time.Minute)
	f.next = Reading{TempHigh: 99}
	w2, err := c.GetForDate(context.Background(), nil)
	if err != nil {
		t.Fatalf("second GetForDate: %v", err)
	}
	if f.calls != 1 {
		t.Fatalf("fresh row must not re-fetch, calls=%d", f.calls)
	}
	if w2.TempHigh != w1.TempHigh || !w2.LastUpdated.Equal(w1.LastUpdated) {
		t.Fatalf("fresh row changed: %+v vs %+v", w2, w1)
	}
}

func TestCache_StaleRowRefetchesOnce(t *testing.T) {
	db := newCacheDB(t)
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	clk := clockwork.NewFakeClockAt(start)
	f := &countingFetcher{next: StaticReading}
	c := NewCache(db, f, WithClock(clk), WithRefresh(time.Hour))

	if _, err := c.GetForDate(context.Background(), nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	clk.Advance(time.Hour)
	f.next = Reading{TempHigh: 88, TempLow: 70, PrecipitationChance: 5, Humidity: 30}
	w, err := c.GetForDate(context.Background(), nil)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if f.calls != 2 {
		t.Fatalf("expected exactly one re-fetch, calls=%d", f.calls)
	}
	if w.TempHigh != 88 || !w.LastUpdated.Equal(start.Add(time.Hour)) {
		t.Fatalf("row not refreshed: %+v", w)
	}

	// Still one row for the date.
	var n int64
	db.Model(&domain.Weather{}).Count(&n)
	if n != 1 {
		t.Fatalf("expected 1 row, got %d", n)
	}

	// And the refreshed row is fresh again.
	if _, err := c.GetForDate(context.Background(), nil); err != nil || f.calls != 2 {
		t.Fatalf("expected hit after refresh: err=%v calls=%d", err, f.calls)
	}
}

func TestCache_ExplicitDateAndLocation(t *testing.T) {
	db := newCacheDB(t)
	// 02:00 UTC is still the previous day at UTC-5.
	clk := clockwork.NewFakeClockAt(time.Date(2025, 1, 2, 2, 0, 0, 0, time.UTC))
	c := NewCache(db, nil, WithClock(clk), WithLocation(time.FixedZone("est", -5*3600)))

	if got := c.Today(); got != "2025-01-01" {
		t.Fatalf("Today() = %q", got)
	}

	d := domain.Date("2024-12-25")
	w, err := c.GetForDate(context.Background(), &d)
	if err != nil {
		t.Fatalf("GetForDate explicit: %v", err)
	}
	if w.Date != d || w.TempHigh != StaticReading.TempHigh || w.Humidity != StaticReading.Humidity {
		t.Fatalf("unexpected row: %+v", w)
	}
}

func TestCache_FetchErrorPropagates_NothingStored(t *testing.T) {
	db := newCacheDB(t)
	boom := errors.New("upstream down")
	c := NewCache(db, &countingFetcher{err: boom}, WithClock(clockwork.NewFakeClock()))

	if _, err := c.GetForDate(context.Background(), nil); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	var n int64
	db.Model(&domain.Weather{}).Count(&n)
	if n != 0 {
		t.Fatalf("no row should be stored on failure, got %d", n)
	}
}

func TestCache_CurrentAdapter(t *testing.T) {
	db := newCacheDB(t)
	c := NewCache(db, StaticFetcher{}, WithClock(clockwork.NewFakeClock()))

	cur, err := c.Current(context.Background(), Location{})
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	// 75/65 averages to 70: warm, no precipitation or humidity labels at 20%/65%.
	if cur.Temperature != 70 || cur.Condition != LabelWarm || cur.Description != "warm" || cur.Humidity != 65 {
		t.Fatalf("unexpected current: %+v", cur)
	}
}
