package weather

import (
	"math"
	"testing"
	"time"

	"github.com/tbourn/closet-backend/internal/domain"
)

func TestSuitabilityBand_Boundaries(t *testing.T) {
	cases := map[float64]domain.Suitability{
		100: domain.SuitabilityHot, 80: domain.SuitabilityHot,
		79.9: domain.SuitabilityWarm, 65: domain.SuitabilityWarm,
		64.9: domain.SuitabilityCool, 50: domain.SuitabilityCool,
		49.9: domain.SuitabilityCold, -40: domain.SuitabilityCold,
	}
	for temp, want := range cases {
		if got := SuitabilityBand(temp); got != want {
			t.Fatalf("SuitabilityBand(%v) = %q; want %q", temp, got, want)
		}
	}
}

func TestSuitabilityBand_TotalAndMonotonic(t *testing.T) {
	rank := map[domain.Suitability]int{
		domain.SuitabilityCold: 0, domain.SuitabilityCool: 1,
		domain.SuitabilityWarm: 2, domain.SuitabilityHot: 3,
	}
	prev := -1
	for temp := -50.0; temp <= 130; temp += 0.5 {
		r, ok := rank[SuitabilityBand(temp)]
		if !ok {
			t.Fatalf("band for %v outside {hot,warm,cool,cold}", temp)
		}
		if r < prev {
			t.Fatalf("band decreased at %v", temp)
		}
		prev = r
	}
	if _, ok := rank[SuitabilityBand(math.Inf(1))]; !ok {
		t.Fatalf("+Inf must still band")
	}
}

func TestSuggest_FiltersOrdersAndCaps(t *testing.T) {
	at := func(d int) *time.Time {
		v := time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	items := []domain.ClothingItem{
		{ID: 1, WeatherSuitability: domain.SuitabilityHot, LastWorn: at(5)},
		{ID: 2, WeatherSuitability: domain.SuitabilityHot, LastWorn: at(1)},
		{ID: 3, WeatherSuitability: domain.SuitabilityCold},
		{ID: 4, WeatherSuitability: domain.SuitabilityHot},
		{ID: 5, WeatherSuitability: domain.SuitabilityHot, LastWorn: at(1)},
		{ID: 6, WeatherSuitability: domain.SuitabilityHot, LastWorn: at(3)},
		{ID: 7, WeatherSuitability: domain.SuitabilityHot},
		{ID: 8, WeatherSuitability: domain.SuitabilityHot, LastWorn: at(9)},
		{ID: 9, WeatherSuitability: domain.SuitabilityRainy},
	}
	got := Suggest(85, items)
	want := []uint{4, 7, 2, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got id %d; want %d (all=%v)", i, got[i].ID, id, ids(got))
		}
	}
	if items[0].ID != 1 || items[3].ID != 4 {
		t.Fatalf("input slice was reordered")
	}
}

func TestSuggest_NoMatches(t *testing.T) {
	items := []domain.ClothingItem{{ID: 1, WeatherSuitability: domain.SuitabilityHot}}
	if got := Suggest(30, items); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %v", ids(got))
	}
}

func ids(items []domain.ClothingItem) []uint {
	out := make([]uint, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
