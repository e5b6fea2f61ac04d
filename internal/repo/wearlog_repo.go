// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for wear-logs
// and the weather snapshots attached to them.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/closet-backend/internal/domain"
)

// WearLogRange bounds a listing by date_worn (inclusive). Empty bounds are open.
type WearLogRange struct {
	From domain.Date
	To   domain.Date
}

func scopeWearLogs(db *gorm.DB, ownerID uint, r WearLogRange) *gorm.DB {
	q := db.Model(&domain.WearLog{}).Where("owner_id = ?", ownerID)
	if r.From != "" {
		q = q.Where("date_worn >= ?", r.From)
	}
	if r.To != "" {
		q = q.Where("date_worn <= ?", r.To)
	}
	return q
}

// CreateWeatherLog inserts a weather snapshot.
func CreateWeatherLog(ctx context.Context, db *gorm.DB, wl *domain.WeatherLog) error {
	return db.WithContext(ctx).Create(wl).Error
}

// CreateWearLog inserts the wear-log and its item associations. The
// referenced items are linked, never upserted.
func CreateWearLog(ctx context.Context, db *gorm.DB, wl *domain.WearLog) error {
	return db.WithContext(ctx).Omit("Items.*", "WeatherLog", "Owner").Create(wl).Error
}

// GetWearLog loads one of the owner's wear-logs with items and weather.
func GetWearLog(ctx context.Context, db *gorm.DB, id, ownerID uint) (*domain.WearLog, error) {
	var wl domain.WearLog
	err := db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("clothing_items.id asc") }).
		Preload("WeatherLog").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&wl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wl, nil
}

// CountWearLogs returns the number of the owner's wear-logs within r.
func CountWearLogs(ctx context.Context, db *gorm.DB, ownerID uint, r WearLogRange) (int64, error) {
	var total int64
	err := scopeWearLogs(db.WithContext(ctx), ownerID, r).Count(&total).Error
	return total, err
}

// ListWearLogsPage returns a page of the owner's wear-logs, most recent
// date_worn first.
func ListWearLogsPage(ctx context.Context, db *gorm.DB, ownerID uint, r WearLogRange, offset, limit int) ([]domain.WearLog, error) {
	var out []domain.WearLog
	err := scopeWearLogs(db.WithContext(ctx), ownerID, r).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("clothing_items.id asc") }).
		Preload("WeatherLog").
		Order("date_worn desc").Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DeleteWearLog removes one of the owner's wear-logs and its item links.
// The items themselves are untouched.
func DeleteWearLog(ctx context.Context, db *gorm.DB, id, ownerID uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wl := domain.WearLog{ID: id}
		res := tx.Where("id = ? AND owner_id = ?", id, ownerID).Limit(1).Find(&wl)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Model(&wl).Association("Items").Clear(); err != nil {
			return err
		}
		return tx.Delete(&wl).Error
	})
}
