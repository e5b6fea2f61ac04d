package weather

import (
	"sort"

	"github.com/tbourn/closet-backend/internal/domain"
)

// MaxSuggestions caps the number of items Suggest returns.
const MaxSuggestions = 5

// SuitabilityBand maps a temperature in °F to the item suitability worn in
// it. Rainy is never produced here.
func SuitabilityBand(tempF float64) domain.Suitability {
	switch {
	case tempF >= 80:
		return domain.SuitabilityHot
	case tempF >= 65:
		return domain.SuitabilityWarm
	case tempF >= 50:
		return domain.SuitabilityCool
	default:
		return domain.SuitabilityCold
	}
}

// Suggest picks the items matching the temperature band, least recently worn
// first. Never-worn items lead; ties break on id. The input is not modified.
func Suggest(tempF float64, items []domain.ClothingItem) []domain.ClothingItem {
	band := SuitabilityBand(tempF)
	out := make([]domain.ClothingItem, 0, MaxSuggestions)
	for _, it := range items {
		if it.WeatherSuitability == band {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastWorn, out[j].LastWorn
		switch {
		case a == nil && b == nil:
			return out[i].ID < out[j].ID
		case a == nil:
			return true
		case b == nil:
			return false
		case !a.Equal(*b):
			return a.Before(*b)
		default:
			return out[i].ID < out[j].ID
		}
	})
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
