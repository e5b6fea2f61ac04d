package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/closet-backend/internal/domain"
)

// GetWeather returns the cached weather row for date.
func GetWeather(ctx context.Context, db *gorm.DB, date domain.Date) (*domain.Weather, error) {
	var w domain.Weather
	err := db.WithContext(ctx).Where("date = ?", date).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// UpsertWeather inserts w or overwrites the existing row for w.Date.
// w is reloaded so its ID reflects the stored row.
func UpsertWeather(ctx context.Context, db *gorm.DB, w *domain.Weather) error {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"temp_high", "temp_low", "precipitation_chance", "humidity", "last_updated",
		}),
	}).Create(w).Error
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Where("date = ?", w.Date).First(w).Error
}

// ListWeather returns cached days, most recent first. limit <= 0 means all.
func ListWeather(ctx context.Context, db *gorm.DB, limit int) ([]domain.Weather, error) {
	q := db.WithContext(ctx).Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []domain.Weather
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
