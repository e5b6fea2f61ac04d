// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ClothingItem model.
//
// Every query is scoped by owner: an item that exists but belongs to a
// different user is indistinguishable from a missing one (ErrNotFound).
// The single exception is FindItemsByIDs, which the wear-log ownership
// guard uses to tell "missing" apart from "not yours".
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/closet-backend/internal/domain"
)

// ItemFilter narrows a catalog listing. Zero-value fields are ignored.
type ItemFilter struct {
	Category    domain.Category
	Suitability domain.Suitability
	Color       domain.Color
}

func scopeItems(db *gorm.DB, ownerID uint, f ItemFilter) *gorm.DB {
	q := db.Model(&domain.ClothingItem{}).Where("owner_id = ?", ownerID)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Suitability != "" {
		q = q.Where("weather_suitability = ?", f.Suitability)
	}
	if f.Color != "" {
		q = q.Where("color = ?", f.Color)
	}
	return q
}

// CreateItem inserts a new clothing item. Owner must already be set.
func CreateItem(ctx context.Context, db *gorm.DB, it *domain.ClothingItem) error {
	return db.WithContext(ctx).Omit("Owner").Create(it).Error
}

// CountItems returns how many of the owner's items match f.
func CountItems(ctx context.Context, db *gorm.DB, ownerID uint, f ItemFilter) (int64, error) {
	var total int64
	err := scopeItems(db.WithContext(ctx), ownerID, f).Count(&total).Error
	return total, err
}

// ListItemsPage returns a page of the owner's items matching f, newest first.
func ListItemsPage(ctx context.Context, db *gorm.DB, ownerID uint, f ItemFilter, offset, limit int) ([]domain.ClothingItem, error) {
	var out []domain.ClothingItem
	err := scopeItems(db.WithContext(ctx), ownerID, f).
		Order("created_at desc").Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListItems returns every item of the owner matching f, ordered by id.
func ListItems(ctx context.Context, db *gorm.DB, ownerID uint, f ItemFilter) ([]domain.ClothingItem, error) {
	var out []domain.ClothingItem
	err := scopeItems(db.WithContext(ctx), ownerID, f).Order("id asc").Find(&out).Error
	return out, err
}

// GetItem fetches a single item by id within the owner's catalog.
func GetItem(ctx context.Context, db *gorm.DB, id, ownerID uint) (*domain.ClothingItem, error) {
	var it domain.ClothingItem
	err := db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// SaveItem writes every mutable column of it back, enforcing ownership.
// Returns ErrNotFound if no row matched.
func SaveItem(ctx context.Context, db *gorm.DB, it *domain.ClothingItem) error {
	res := db.WithContext(ctx).
		Model(&domain.ClothingItem{}).
		Where("id = ? AND owner_id = ?", it.ID, it.OwnerID).
		Updates(map[string]any{
			"name":                it.Name,
			"category":            it.Category,
			"image":               it.Image,
			"weather_suitability": it.WeatherSuitability,
			"color":               it.Color,
			"size":                it.Size,
			"brand":               it.Brand,
			"formality":           it.Formality,
			"material":            it.Material,
			"updated_at":          time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem removes an item owned by ownerID. Returns ErrNotFound when the
// item does not exist in that catalog.
func DeleteItem(ctx context.Context, db *gorm.DB, id, ownerID uint) error {
	res := db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&domain.ClothingItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItemsByOwner removes every item in the owner's catalog and reports
// how many were deleted.
func DeleteItemsByOwner(ctx context.Context, db *gorm.DB, ownerID uint) (int64, error) {
	res := db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&domain.ClothingItem{})
	return res.RowsAffected, res.Error
}

// FindItemsByIDs loads the items with the given ids regardless of owner.
// Missing ids are simply absent from the result.
func FindItemsByIDs(ctx context.Context, db *gorm.DB, ids []uint) ([]domain.ClothingItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.ClothingItem
	err := db.WithContext(ctx).Where("id IN ?", ids).Order("id asc").Find(&out).Error
	return out, err
}

// TouchLastWorn sets last_worn on the owner's items in ids. Items outside
// ids are left untouched.
func TouchLastWorn(ctx context.Context, db *gorm.DB, ownerID uint, ids []uint, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).
		Model(&domain.ClothingItem{}).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Updates(map[string]any{"last_worn": at, "updated_at": at})
	return res.RowsAffected, res.Error
}
