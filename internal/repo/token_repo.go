package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/closet-backend/internal/domain"
)

// GetOrCreateToken returns the user's token, minting one with newKey when
// none exists. A concurrent insert for the same user is resolved by
// re-reading the winner's row.
func GetOrCreateToken(ctx context.Context, db *gorm.DB, userID uint, newKey func() (string, error)) (*domain.AuthToken, error) {
	var tok domain.AuthToken
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&tok).Error
	if err == nil {
		return &tok, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := newKey()
	if err != nil {
		return nil, err
	}
	tok = domain.AuthToken{Key: key, UserID: userID, CreatedAt: time.Now().UTC()}
	if err := db.WithContext(ctx).Create(&tok).Error; err != nil {
		if !isUniqueViolation(err) {
			return nil, err
		}
		var existing domain.AuthToken
		if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return &tok, nil
}

// GetUserByToken resolves a token key to its owner.
func GetUserByToken(ctx context.Context, db *gorm.DB, key string) (*domain.User, error) {
	var tok domain.AuthToken
	err := db.WithContext(ctx).Preload("User").Where("key = ?", key).First(&tok).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tok.User, nil
}

// DeleteToken revokes the user's token. Deleting a missing token is not an error.
func DeleteToken(ctx context.Context, db *gorm.DB, userID uint) error {
	return db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.AuthToken{}).Error
}
