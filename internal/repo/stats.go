// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (e.g., ETag generation) in the HTTP
// layer. Each function is context-aware and safe to call from services or
// handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/closet-backend/internal/domain"
)

// ItemsStats returns aggregate metadata for a user's catalog: the total number
// of items and the greatest UpdatedAt among them.
//
// When the user has no items, the returned count is 0 and maxUpdatedAt is nil.
func ItemsStats(ctx context.Context, db *gorm.DB, ownerID uint) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.ClothingItem{}).Where("owner_id = ?", ownerID)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}

// WearLogsStats returns the version marker of a user's wear-log list. The
// list embeds the worn items, so besides the number of logs and their newest
// CreatedAt it counts the item links and takes the newest UpdatedAt of any
// linked item. Editing or deleting a worn item changes the result.
//
// When the user has no wear-logs, both counts are 0 and latest is nil.
func WearLogsStats(ctx context.Context, db *gorm.DB, ownerID uint) (count, links int64, latest *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.WearLog{}).Where("owner_id = ?", ownerID)

	if err = q.Count(&count).Error; err != nil {
		return 0, 0, nil, err
	}
	if count == 0 {
		return 0, 0, nil, nil
	}

	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, 0, nil, err
	}
	latest = &row.CreatedAt

	linked := db.WithContext(ctx).
		Table("wear_log_items").
		Joins("JOIN wear_logs ON wear_logs.id = wear_log_items.wear_log_id").
		Joins("JOIN clothing_items ON clothing_items.id = wear_log_items.clothing_item_id").
		Where("wear_logs.owner_id = ?", ownerID)
	if err = linked.Count(&links).Error; err != nil {
		return 0, 0, nil, err
	}
	if links > 0 {
		var item struct {
			UpdatedAt time.Time
		}
		if err = linked.Select("clothing_items.updated_at").
			Order("clothing_items.updated_at DESC").Limit(1).Scan(&item).Error; err != nil {
			return 0, 0, nil, err
		}
		if item.UpdatedAt.After(*latest) {
			latest = &item.UpdatedAt
		}
	}
	return count, links, latest, nil
}
