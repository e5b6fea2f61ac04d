package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category is the kind of a clothing item.
type Category string

const (
	CategoryShirt     Category = "shirt"
	CategoryPants     Category = "pants"
	CategoryShoes     Category = "shoes"
	CategoryDress     Category = "dress"
	CategoryJacket    Category = "jacket"
	CategoryAccessory Category = "accessory"
)

// Categories lists every valid Category in display order.
var Categories = []Category{
	CategoryShirt, CategoryPants, CategoryShoes,
	CategoryDress, CategoryJacket, CategoryAccessory,
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Color is the dominant color of a clothing item.
type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorWhite  Color = "white"
	ColorBlack  Color = "black"
)

// Colors lists every valid Color.
var Colors = []Color{ColorRed, ColorBlue, ColorYellow, ColorWhite, ColorBlack}

// Valid reports whether c is one of Colors.
func (c Color) Valid() bool {
	for _, v := range Colors {
		if c == v {
			return true
		}
	}
	return false
}

// Suitability is the coarse weather band a clothing item is meant for.
type Suitability string

const (
	SuitabilityHot   Suitability = "hot"
	SuitabilityWarm  Suitability = "warm"
	SuitabilityCool  Suitability = "cool"
	SuitabilityCold  Suitability = "cold"
	SuitabilityRainy Suitability = "rainy"
)

// Suitabilities lists every valid Suitability. Rainy is a valid item label
// but is never produced by temperature banding.
var Suitabilities = []Suitability{
	SuitabilityHot, SuitabilityWarm, SuitabilityCool, SuitabilityCold, SuitabilityRainy,
}

// Valid reports whether s is one of Suitabilities.
func (s Suitability) Valid() bool {
	for _, v := range Suitabilities {
		if s == v {
			return true
		}
	}
	return false
}

// Date is a calendar date stored as "YYYY-MM-DD".
type Date string

// DateLayout is the on-disk and wire layout of a Date.
const DateLayout = "2006-01-02"

// DateOf returns the calendar date of t in loc (UTC when loc is nil).
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return Date(t.In(loc).Format(DateLayout))
}

// ParseDate validates s as a calendar date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}

// Condition is the derived summary of a day's weather.
//
// Primary is always the temperature label (hot, warm, mild or cold) and is
// also the first element of All.
type Condition struct {
	Primary string           `json:"primary"`
	All     []string         `json:"all"`
	Metrics ConditionMetrics `json:"metrics"`
}

// ConditionMetrics carries rounded, display-ready metrics.
type ConditionMetrics struct {
	AvgTemp       float64 `json:"avg_temp"`
	TempRange     string  `json:"temp_range"`
	Precipitation string  `json:"precipitation"`
	Humidity      string  `json:"humidity"`
}
