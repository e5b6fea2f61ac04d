// Package services – ClothingService
//
// ClothingService manages a user's private catalog: validation and
// normalization of item fields, owner-scoped CRUD, filtered and free-text
// listing, and weather-driven outfit suggestions.
//
// Observability: list and suggestion paths are OpenTelemetry-instrumented.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/repo"
	"github.com/tbourn/closet-backend/internal/search"
	"github.com/tbourn/closet-backend/internal/utils"
	"github.com/tbourn/closet-backend/internal/weather"
)

// ItemInput carries create and update payloads. Nil fields are "not
// provided": required on create and full update, left alone on partial update.
type ItemInput struct {
	Name               *string
	Category           *string
	Image              *string
	WeatherSuitability *string
	Color              *string
	Size               *string
	Brand              *string
	Formality          *string
	Material           *string
}

// ItemQuery narrows a catalog listing. Enum filters are matched
// case-insensitively; Q ranks by token overlap with name, brand, material,
// color and category.
type ItemQuery struct {
	Category    string
	Suitability string
	Color       string
	Q           string
	Page        int
	PageSize    int
}

// ClothingService provides catalog operations.
type ClothingService struct {
	DB *gorm.DB

	// Weather supplies current conditions for suggestions.
	Weather weather.CurrentProvider

	// Locale drives case folding of enum inputs.
	Locale language.Tag

	MaxPageSize int
}

// NewClothingService constructs a ClothingService with default paging.
func NewClothingService(db *gorm.DB, w weather.CurrentProvider) *ClothingService {
	return &ClothingService{DB: db, Weather: w, Locale: language.Und, MaxPageSize: 500}
}

// List returns a page of the owner's items and the total match count.
func (s *ClothingService) List(ctx context.Context, ownerID uint, q ItemQuery) ([]domain.ClothingItem, int64, error) {
	tr := otel.Tracer("services/ClothingService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.Int64("user.id", int64(ownerID)),
			attribute.Int("page", q.Page),
			attribute.Int("page_size", q.PageSize),
			attribute.Bool("search", strings.TrimSpace(q.Q) != ""),
		),
	)
	defer span.End()

	f, err := s.filter(q)
	if err != nil {
		return nil, 0, err
	}
	page, size := s.paging(q.Page, q.PageSize)
	offset := utils.Offset(page, size)

	if strings.TrimSpace(q.Q) != "" {
		matched, err := s.search(ctx, ownerID, f, q.Q)
		if err != nil {
			return nil, 0, err
		}
		total := int64(len(matched))
		if offset >= len(matched) {
			return []domain.ClothingItem{}, total, nil
		}
		end := offset + size
		if end > len(matched) {
			end = len(matched)
		}
		return matched[offset:end], total, nil
	}

	total, err := repo.CountItems(ctx, s.DB, ownerID, f)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.ClothingItem{}, 0, nil
	}
	items, err := repo.ListItemsPage(ctx, s.DB, ownerID, f, offset, size)
	return items, total, err
}

func (s *ClothingService) search(ctx context.Context, ownerID uint, f repo.ItemFilter, q string) ([]domain.ClothingItem, error) {
	all, err := repo.ListItems(ctx, s.DB, ownerID, f)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]domain.ClothingItem, len(all))
	docs := make([]search.Doc, 0, len(all))
	for _, it := range all {
		byID[it.ID] = it
		docs = append(docs, search.Doc{
			ID:   it.ID,
			Text: strings.Join([]string{it.Name, it.Brand, it.Material, string(it.Color), string(it.Category)}, " "),
		})
	}
	hits := search.NewIndex(docs).TopK(q, 0)
	out := make([]domain.ClothingItem, 0, len(hits))
	for _, h := range hits {
		out = append(out, byID[h.ID])
	}
	return out, nil
}

// Get returns one of the owner's items.
func (s *ClothingService) Get(ctx context.Context, ownerID, id uint) (*domain.ClothingItem, error) {
	it, err := repo.GetItem(ctx, s.DB, id, ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return it, err
}

// Create validates in and stores a new item owned by ownerID.
func (s *ClothingService) Create(ctx context.Context, ownerID uint, in ItemInput) (*domain.ClothingItem, error) {
	it := &domain.ClothingItem{OwnerID: ownerID}
	if err := s.apply(it, in, false); err != nil {
		return nil, err
	}
	if err := repo.CreateItem(ctx, s.DB, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Update replaces (partial=false) or patches (partial=true) an item.
func (s *ClothingService) Update(ctx context.Context, ownerID, id uint, in ItemInput, partial bool) (*domain.ClothingItem, error) {
	it, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(it, in, partial); err != nil {
		return nil, err
	}
	if err := repo.SaveItem(ctx, s.DB, it); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return s.Get(ctx, ownerID, id)
}

// Delete removes one of the owner's items.
func (s *ClothingService) Delete(ctx context.Context, ownerID, id uint) error {
	err := repo.DeleteItem(ctx, s.DB, id, ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}

// Suggestions reads current conditions for loc and returns up to
// weather.MaxSuggestions of the owner's items for that temperature.
//
// weather.ErrMissingAPIKey and weather.ErrLocationRequired are returned
// as-is (caller error); any other weather failure is wrapped in
// ErrWeatherUnavailable.
func (s *ClothingService) Suggestions(ctx context.Context, ownerID uint, loc weather.Location) (weather.Current, []domain.ClothingItem, error) {
	tr := otel.Tracer("services/ClothingService")
	ctx, span := tr.Start(ctx, "Suggestions",
		trace.WithAttributes(
			attribute.Int64("user.id", int64(ownerID)),
			attribute.String("weather.city", loc.City),
			attribute.String("weather.zip", loc.ZipCode),
		),
	)
	defer span.End()

	if s.Weather == nil {
		return weather.Current{}, nil, ErrWeatherUnavailable
	}
	cur, err := s.Weather.Current(ctx, loc)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, weather.ErrMissingAPIKey) || errors.Is(err, weather.ErrLocationRequired) {
			return weather.Current{}, nil, err
		}
		return weather.Current{}, nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}

	band := weather.SuitabilityBand(cur.Temperature)
	span.SetAttributes(attribute.String("weather.band", string(band)))
	items, err := repo.ListItems(ctx, s.DB, ownerID, repo.ItemFilter{Suitability: band})
	if err != nil {
		return weather.Current{}, nil, err
	}
	return cur, weather.Suggest(cur.Temperature, items), nil
}

// ---- helpers ----

func (s *ClothingService) paging(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	if s.MaxPageSize > 0 && size > s.MaxPageSize {
		size = s.MaxPageSize
	}
	return page, size
}

func (s *ClothingService) fold(v string) string {
	return cases.Lower(s.Locale).String(strings.TrimSpace(v))
}

func (s *ClothingService) filter(q ItemQuery) (repo.ItemFilter, error) {
	fe := fieldErrors{}
	f := repo.ItemFilter{
		Category:    domain.Category(s.fold(q.Category)),
		Suitability: domain.Suitability(s.fold(q.Suitability)),
		Color:       domain.Color(s.fold(q.Color)),
	}
	if f.Category != "" && !f.Category.Valid() {
		fe.add("category", choiceMsg(string(f.Category)))
	}
	if f.Suitability != "" && !f.Suitability.Valid() {
		fe.add("weather_suitability", choiceMsg(string(f.Suitability)))
	}
	if f.Color != "" && !f.Color.Valid() {
		fe.add("color", choiceMsg(string(f.Color)))
	}
	return f, fe.Err()
}

// apply copies in onto it and validates the result.
func (s *ClothingService) apply(it *domain.ClothingItem, in ItemInput, partial bool) error {
	fe := fieldErrors{}
	required := func(field string, v *string) bool {
		if v == nil {
			if !partial {
				fe.add(field, "This field is required.")
			}
			return false
		}
		return true
	}
	text := func(field string, v *string, max int, dst *string) {
		if v == nil {
			return
		}
		t := strings.TrimSpace(*v)
		if utf8.RuneCountInString(t) > max {
			fe.add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", max))
			return
		}
		*dst = t
	}

	if required("name", in.Name) {
		name := strings.Join(strings.Fields(*in.Name), " ")
		switch {
		case name == "":
			fe.add("name", "This field may not be blank.")
		case utf8.RuneCountInString(name) > 200:
			fe.add("name", "Ensure this field has no more than 200 characters.")
		default:
			it.Name = name
		}
	}
	if required("category", in.Category) {
		c := domain.Category(s.fold(*in.Category))
		if c.Valid() {
			it.Category = c
		} else {
			fe.add("category", choiceMsg(*in.Category))
		}
	}
	if required("weather_suitability", in.WeatherSuitability) {
		w := domain.Suitability(s.fold(*in.WeatherSuitability))
		if w.Valid() {
			it.WeatherSuitability = w
		} else {
			fe.add("weather_suitability", choiceMsg(*in.WeatherSuitability))
		}
	}
	if required("color", in.Color) {
		c := domain.Color(s.fold(*in.Color))
		if c.Valid() {
			it.Color = c
		} else {
			fe.add("color", choiceMsg(*in.Color))
		}
	}
	text("image", in.Image, 255, &it.Image)
	text("size", in.Size, 50, &it.Size)
	text("brand", in.Brand, 100, &it.Brand)
	text("formality", in.Formality, 50, &it.Formality)
	text("material", in.Material, 100, &it.Material)
	return fe.Err()
}

func choiceMsg(v string) string {
	return fmt.Sprintf("%q is not a valid choice.", v)
}
