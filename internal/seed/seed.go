// Package seed loads fixed demo wardrobes into a user's catalog.
package seed

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/repo"
)

var (
	// ErrUnknownWardrobe is returned for a wardrobe name not in Names().
	ErrUnknownWardrobe = errors.New("unknown wardrobe")
	// ErrUserNotFound is returned when the target user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

type piece struct {
	name     string
	category domain.Category
	color    domain.Color
	suit     domain.Suitability
	size     string
	brand    string
}

var wardrobes = map[string][]piece{
	"mens":   mens,
	"womens": womens,
}

// Names lists the available wardrobes, sorted.
func Names() []string {
	out := make([]string, 0, len(wardrobes))
	for k := range wardrobes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Items returns the named wardrobe as unsaved items owned by ownerID.
func Items(name string, ownerID uint) ([]domain.ClothingItem, error) {
	src, ok := wardrobes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownWardrobe, name, strings.Join(Names(), ", "))
	}
	out := make([]domain.ClothingItem, 0, len(src))
	for _, p := range src {
		out = append(out, domain.ClothingItem{
			Name:               p.name,
			Category:           p.category,
			Color:              p.color,
			WeatherSuitability: p.suit,
			Size:               p.size,
			Brand:              p.brand,
			OwnerID:            ownerID,
		})
	}
	return out, nil
}

// Replace deletes every item of username and inserts the named wardrobe in
// one transaction. It returns the number of items created.
func Replace(ctx context.Context, db *gorm.DB, username, wardrobe string) (int, error) {
	u, err := repo.GetUserByUsername(ctx, db, username)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, fmt.Errorf("%w: %q", ErrUserNotFound, username)
	}
	if err != nil {
		return 0, err
	}
	items, err := Items(wardrobe, u.ID)
	if err != nil {
		return 0, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err := repo.DeleteItemsByOwner(ctx, tx, u.ID)
		if err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
		log.Debug().Str("username", u.Username).Int64("removed", removed).Msg("catalog cleared")
		for i := range items {
			if err := repo.CreateItem(ctx, tx, &items[i]); err != nil {
				return fmt.Errorf("create %q: %w", items[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
