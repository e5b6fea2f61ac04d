// Package domain defines the persistence models for users, clothing items,
// wear-logs and weather. These types are mapped with GORM and form the core
// data layer of the wardrobe application.
package domain

import (
	"time"
)

// User is a registered account. Users are created at registration and never
// deleted by this system.
//
// Fields:
//   - ID: auto-increment primary key.
//   - Username: unique login name.
//   - PasswordHash: bcrypt hash of the password; never serialized.
//   - Email / FirstName / LastName: optional profile fields.
//   - DateJoined: registration time.
type User struct {
	ID           uint      `json:"id"          gorm:"primaryKey"`
	Username     string    `json:"username"    gorm:"type:varchar(150);not null;uniqueIndex:ux_users_username"`
	PasswordHash string    `json:"-"           gorm:"type:varchar(255);not null"`
	Email        string    `json:"email"       gorm:"type:varchar(254);not null;default:''"`
	FirstName    string    `json:"first_name"  gorm:"type:varchar(150);not null;default:''"`
	LastName     string    `json:"last_name"   gorm:"type:varchar(150);not null;default:''"`
	DateJoined   time.Time `json:"date_joined" gorm:"not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// AuthToken is the opaque bearer token issued to a user: a hex string, 40
// characters by default. There is at most one token per user; login reuses it.
type AuthToken struct {
	Key       string    `json:"key"        gorm:"type:varchar(128);primaryKey"`
	UserID    uint      `json:"user_id"    gorm:"not null;uniqueIndex:ux_tokens_user"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for AuthToken.
func (AuthToken) TableName() string { return "auth_tokens" }

// ClothingItem is a single piece of clothing in a user's catalog.
//
// Category, Color and WeatherSuitability are drawn from closed sets (see
// enums.go); LastWorn is nil until the item appears in a wear-log.
type ClothingItem struct {
	ID                 uint        `json:"id"                  gorm:"primaryKey"`
	Name               string      `json:"name"                gorm:"type:varchar(200);not null"`
	Category           Category    `json:"category"            gorm:"type:varchar(20);not null;index:idx_items_owner_cat,priority:2"`
	Image              string      `json:"image,omitempty"     gorm:"type:varchar(255);not null;default:''"`
	WeatherSuitability Suitability `json:"weather_suitability" gorm:"type:varchar(20);not null;index:idx_items_owner_suit,priority:2"`
	Color              Color       `json:"color"               gorm:"type:varchar(50);not null"`
	Size               string      `json:"size"                gorm:"type:varchar(50);not null;default:''"`
	Brand              string      `json:"brand"               gorm:"type:varchar(100);not null;default:''"`
	Formality          string      `json:"formality"           gorm:"type:varchar(50);not null;default:''"`
	Material           string      `json:"material"            gorm:"type:varchar(100);not null;default:''"`
	OwnerID            uint        `json:"owner"               gorm:"not null;index:idx_items_owner_cat,priority:1;index:idx_items_owner_suit,priority:1"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"-"`
	LastWorn           *time.Time  `json:"last_worn"`

	Owner User `json:"-" gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ClothingItem.
func (ClothingItem) TableName() string { return "clothing_items" }

// WeatherLog pins the weather observed when an outfit was worn. Conditions
// is a denormalized copy of a Condition computed at creation time and is
// never recomputed.
type WeatherLog struct {
	ID                  uint      `json:"id"                   gorm:"primaryKey"`
	Date                Date      `json:"date"                 gorm:"type:varchar(10);not null;index"`
	TempHigh            float64   `json:"temp_high"            gorm:"not null"`
	TempLow             float64   `json:"temp_low"             gorm:"not null"`
	PrecipitationChance float64   `json:"precipitation_chance" gorm:"not null"`
	Humidity            float64   `json:"humidity"             gorm:"not null"`
	Conditions          Condition `json:"conditions"           gorm:"type:text;not null;serializer:json"`
	CreatedAt           time.Time `json:"created_at"`
}

// TableName returns the database table name for WeatherLog.
func (WeatherLog) TableName() string { return "weather_logs" }

// WearLog records one occasion on which a set of items was worn together.
// Wear-logs are immutable after creation; they can only be deleted.
type WearLog struct {
	ID           uint           `json:"id"          gorm:"primaryKey"`
	OwnerID      uint           `json:"-"           gorm:"not null;index:idx_wearlogs_owner_date,priority:1"`
	DateWorn     Date           `json:"date_worn"   gorm:"type:varchar(10);not null;index:idx_wearlogs_owner_date,priority:2"`
	WeatherLogID *uint          `json:"-"`
	WeatherLog   *WeatherLog    `json:"weather_log" gorm:"foreignKey:WeatherLogID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Notes        string         `json:"notes"       gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time      `json:"created_at"`
	Items        []ClothingItem `json:"items"       gorm:"many2many:wear_log_items;constraint:OnDelete:CASCADE"`

	Owner User `json:"-" gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for WearLog.
func (WearLog) TableName() string { return "wear_logs" }

// Weather is the daily weather cache row. There is at most one row per
// calendar date; it is refreshed in place once LastUpdated is older than the
// configured refresh interval.
type Weather struct {
	ID                  uint      `json:"-"                    gorm:"primaryKey"`
	Date                Date      `json:"date"                 gorm:"type:varchar(10);not null;uniqueIndex:ux_weather_date"`
	TempHigh            float64   `json:"temp_high"            gorm:"not null"`
	TempLow             float64   `json:"temp_low"             gorm:"not null"`
	PrecipitationChance int       `json:"precipitation_chance" gorm:"not null"`
	Humidity            int       `json:"humidity"             gorm:"not null"`
	LastUpdated         time.Time `json:"last_updated"         gorm:"not null"`
}

// TableName returns the database table name for Weather.
func (Weather) TableName() string { return "weather" }
