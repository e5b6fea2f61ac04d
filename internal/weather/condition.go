// Package weather owns everything the wardrobe knows about the weather: the
// daily cache, the upstream providers, the derived human-readable condition
// and the temperature banding used for outfit suggestions.
package weather

import (
	"math"
	"strconv"

	"github.com/tbourn/closet-backend/internal/domain"
)

// Condition labels.
const (
	LabelHot          = "hot"
	LabelWarm         = "warm"
	LabelMild         = "mild"
	LabelCold         = "cold"
	LabelRainy        = "rainy"
	LabelChanceOfRain = "chance of rain"
	LabelHumid        = "humid"
	LabelDry          = "dry"
)

// DeriveCondition summarizes a day's numbers into labels and display metrics.
// Temperatures are °F, precipitation and humidity are percentages.
func DeriveCondition(high, low, precip, humidity float64) domain.Condition {
	avg := (high + low) / 2

	var primary string
	switch {
	case avg >= 85:
		primary = LabelHot
	case avg >= 70:
		primary = LabelWarm
	case avg >= 50:
		primary = LabelMild
	default:
		primary = LabelCold
	}
	all := []string{primary}

	switch {
	case precip >= 60:
		all = append(all, LabelRainy)
	case precip >= 30:
		all = append(all, LabelChanceOfRain)
	}

	switch {
	case humidity >= 80:
		all = append(all, LabelHumid)
	case humidity <= 30:
		all = append(all, LabelDry)
	}

	return domain.Condition{
		Primary: primary,
		All:     all,
		Metrics: domain.ConditionMetrics{
			AvgTemp:       math.Round(avg*10) / 10,
			TempRange:     num(low) + "°F - " + num(high) + "°F",
			Precipitation: num(precip) + "%",
			Humidity:      num(humidity) + "%",
		},
	}
}

// ConditionOf derives the condition of a cached weather row.
func ConditionOf(w domain.Weather) domain.Condition {
	return DeriveCondition(w.TempHigh, w.TempLow, float64(w.PrecipitationChance), float64(w.Humidity))
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
