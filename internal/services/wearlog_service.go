// Package services – WearLogService
//
// WearLogService records outfits. Creation validates that every referenced
// item exists and belongs to the caller before anything is written, then
// persists the optional weather snapshot, the wear-log, its item links and
// the items' last_worn stamp in a single transaction. An optional
// idempotency key makes retried creates return the original wear-log.
package services

import (
	"context"
	"errors"
	"strings"
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
	"github.com/tbourn/closet-backend/internal/utils"
	"github.com/tbourn/closet-backend/internal/weather"
)

// IdempotencyScopeWearLogs namespaces wear-log idempotency keys.
const IdempotencyScopeWearLogs = "wear_logs"

// WeatherLogInput is the optional weather snapshot attached to a wear-log.
// Conditions are derived from the numbers when omitted.
type WeatherLogInput struct {
	Date                string
	TempHigh            float64
	TempLow             float64
	PrecipitationChance float64
	Humidity            float64
	Conditions          *domain.Condition
}

// WearLogInput is the create payload.
type WearLogInput struct {
	ItemIDs    []uint
	DateWorn   string
	Notes      string
	WeatherLog *WeatherLogInput
}

// WearLogService provides wear-log operations.
type WearLogService struct {
	DB       *gorm.DB
	Clock    clockwork.Clock
	Location *time.Location

	// IdempotencyTTL bounds how long a key replays its wear-log.
	IdempotencyTTL time.Duration

	MaxPageSize int
}

// NewWearLogService constructs a WearLogService using the real clock.
func NewWearLogService(db *gorm.DB, loc *time.Location, idemTTL time.Duration) *WearLogService {
	if loc == nil {
		loc = time.UTC
	}
	return &WearLogService{
		DB:             db,
		Clock:          clockwork.NewRealClock(),
		Location:       loc,
		IdempotencyTTL: idemTTL,
		MaxPageSize:    500,
	}
}

// Owns verifies that every id names an existing item owned by ownerID.
// Ids are checked in order; the first missing id yields ErrItemsNotFound
// and the first foreign id yields ErrForeignItems.
func (s *WearLogService) Owns(ctx context.Context, db *gorm.DB, ownerID uint, ids []uint) error {
	found, err := repo.FindItemsByIDs(ctx, db, ids)
	if err != nil {
		return err
	}
	owner := make(map[uint]uint, len(found))
	for _, it := range found {
		owner[it.ID] = it.OwnerID
	}
	for _, id := range ids {
		o, ok := owner[id]
		if !ok {
			return ErrItemsNotFound
		}
		if o != ownerID {
			return ErrForeignItems
		}
	}
	return nil
}

// Create records a wear-log. When idemKey is non-empty and a live record
// exists, the original wear-log is returned with replayed=true and nothing
// is written. A key whose wear-log was deleted since is released and the
// request creates a new one.
func (s *WearLogService) Create(ctx context.Context, ownerID uint, in WearLogInput, idemKey string) (wl *domain.WearLog, replayed bool, err error) {
	tr := otel.Tracer("services/WearLogService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.Int64("user.id", int64(ownerID)),
			attribute.Int("items", len(in.ItemIDs)),
			attribute.Bool("idempotent", idemKey != ""),
		),
	)
	defer span.End()

	idemKey = strings.TrimSpace(idemKey)
	now := s.now()

	if idemKey != "" {
		if prev, ok, err := s.replay(ctx, ownerID, idemKey, now); err != nil || ok {
			return prev, ok, err
		}
	}

	ids := dedupe(in.ItemIDs)
	fe := fieldErrors{}
	if len(ids) == 0 {
		fe.add("item_ids", "This list may not be empty.")
	}
	dateWorn, derr := s.parseDay(in.DateWorn)
	if strings.TrimSpace(in.DateWorn) == "" {
		fe.add("date_worn", "This field is required.")
	} else if derr != nil {
		fe.add("date_worn", "Date has wrong format. Use YYYY-MM-DD.")
	}
	var snap *domain.WeatherLog
	if in.WeatherLog != nil {
		snap, derr = s.snapshot(*in.WeatherLog)
		if derr != nil {
			fe.add("weather_log", "Date has wrong format. Use YYYY-MM-DD.")
		}
	}
	if err := fe.Err(); err != nil {
		return nil, false, err
	}

	// Ownership guard before any write.
	if err := s.Owns(ctx, s.DB, ownerID, ids); err != nil {
		span.RecordError(err)
		return nil, false, err
	}

	var created *domain.WearLog
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := &domain.WearLog{
			OwnerID:  ownerID,
			DateWorn: dateWorn,
			Notes:    strings.TrimSpace(in.Notes),
			Items:    make([]domain.ClothingItem, 0, len(ids)),
		}
		if snap != nil {
			if err := repo.CreateWeatherLog(ctx, tx, snap); err != nil {
				return err
			}
			entry.WeatherLogID = &snap.ID
		}
		for _, id := range ids {
			entry.Items = append(entry.Items, domain.ClothingItem{ID: id})
		}
		if err := repo.CreateWearLog(ctx, tx, entry); err != nil {
			return err
		}
		if _, err := repo.TouchLastWorn(ctx, tx, ownerID, ids, now); err != nil {
			return err
		}
		if idemKey != "" {
			if _, err := repo.CreateIdempotency(ctx, tx, ownerID, IdempotencyScopeWearLogs, idemKey, entry.ID, 201, now, s.IdempotencyTTL); err != nil {
				return err
			}
		}
		created = entry
		return nil
	})
	if errors.Is(err, repo.ErrDuplicate) && idemKey != "" {
		// A concurrent request with the same key won; return its result.
		if prev, ok, rerr := s.replay(ctx, ownerID, idemKey, now); rerr == nil && ok {
			return prev, true, nil
		}
	}
	if err != nil {
		span.RecordError(err)
		return nil, false, err
	}

	observability.WearLogsCreated.Inc()
	log.Debug().Uint("user_id", ownerID).Uint("wear_log_id", created.ID).Int("items", len(ids)).Msg("wear log created")

	out, err := repo.GetWearLog(ctx, s.DB, created.ID, ownerID)
	return out, false, err
}

// List returns a page of the owner's wear-logs in [from, to] (either may be empty).
func (s *WearLogService) List(ctx context.Context, ownerID uint, from, to string, page, pageSize int) ([]domain.WearLog, int64, error) {
	tr := otel.Tracer("services/WearLogService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.Int64("user.id", int64(ownerID)),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	var r repo.WearLogRange
	fe := fieldErrors{}
	if strings.TrimSpace(from) != "" {
		d, err := domain.ParseDate(from)
		if err != nil {
			fe.add("from", "Date has wrong format. Use YYYY-MM-DD.")
		}
		r.From = d
	}
	if strings.TrimSpace(to) != "" {
		d, err := domain.ParseDate(to)
		if err != nil {
			fe.add("to", "Date has wrong format. Use YYYY-MM-DD.")
		}
		r.To = d
	}
	if err := fe.Err(); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if s.MaxPageSize > 0 && pageSize > s.MaxPageSize {
		pageSize = s.MaxPageSize
	}

	total, err := repo.CountWearLogs(ctx, s.DB, ownerID, r)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.WearLog{}, 0, nil
	}
	logs, err := repo.ListWearLogsPage(ctx, s.DB, ownerID, r, utils.Offset(page, pageSize), pageSize)
	return logs, total, err
}

// Get returns one of the owner's wear-logs.
func (s *WearLogService) Get(ctx context.Context, ownerID, id uint) (*domain.WearLog, error) {
	wl, err := repo.GetWearLog(ctx, s.DB, id, ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrWearLogNotFound
	}
	return wl, err
}

// Delete removes one of the owner's wear-logs. Items keep their last_worn.
func (s *WearLogService) Delete(ctx context.Context, ownerID, id uint) error {
	err := repo.DeleteWearLog(ctx, s.DB, id, ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrWearLogNotFound
	}
	return err
}

// ---- helpers ----

func (s *WearLogService) replay(ctx context.Context, ownerID uint, key string, now time.Time) (*domain.WearLog, bool, error) {
	rec, err := repo.GetIdempotency(ctx, s.DB, ownerID, IdempotencyScopeWearLogs, key, now)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	wl, err := repo.GetWearLog(ctx, s.DB, rec.ResourceID, ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		// The original was deleted since. The key is spent: forget it so the
		// retry creates a fresh wear-log under the same key.
		if err := repo.DeleteIdempotency(ctx, s.DB, ownerID, IdempotencyScopeWearLogs, key); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return wl, true, nil
}

func (s *WearLogService) snapshot(in WeatherLogInput) (*domain.WeatherLog, error) {
	day, err := s.parseDay(in.Date)
	if err != nil {
		return nil, err
	}
	cond := weather.DeriveCondition(in.TempHigh, in.TempLow, in.PrecipitationChance, in.Humidity)
	if in.Conditions != nil && in.Conditions.Primary != "" {
		cond = *in.Conditions
	}
	return &domain.WeatherLog{
		Date:                day,
		TempHigh:            in.TempHigh,
		TempLow:             in.TempLow,
		PrecipitationChance: in.PrecipitationChance,
		Humidity:            in.Humidity,
		Conditions:          cond,
	}, nil
}

// parseDay accepts YYYY-MM-DD or an RFC 3339 timestamp (converted to the
// service's location). An empty string means today.
func (s *WearLogService) parseDay(v string) (domain.Date, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return domain.DateOf(s.now(), s.Location), nil
	}
	if d, err := domain.ParseDate(v); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return "", err
	}
	return domain.DateOf(t, s.Location), nil
}

func (s *WearLogService) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
