package domain

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:domain_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		(User{}).TableName():         "users",
		(AuthToken{}).TableName():    "auth_tokens",
		(ClothingItem{}).TableName(): "clothing_items",
		(WearLog{}).TableName():      "wear_logs",
		(WeatherLog{}).TableName():   "weather_logs",
		(Weather{}).TableName():      "weather",
		(Idempotency{}).TableName():  "idempotency",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("TableName() = %q; want %q", got, want)
		}
	}
}

func TestMigrations_Indexes_AndCascades(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(&User{}, &AuthToken{}, &ClothingItem{}, &WeatherLog{}, &WearLog{}, &Weather{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()

	if !m.HasTable("wear_log_items") {
		t.Fatalf("expected join table wear_log_items")
	}
	if !m.HasIndex(&User{}, "ux_users_username") {
		t.Fatalf("expected unique index ux_users_username")
	}
	if !m.HasIndex(&ClothingItem{}, "idx_items_owner_suit") {
		t.Fatalf("expected index idx_items_owner_suit")
	}
	if !m.HasIndex(&Weather{}, "ux_weather_date") {
		t.Fatalf("expected unique index ux_weather_date")
	}

	now := time.Now().UTC()
	u := &User{Username: "alice", PasswordHash: "x", DateJoined: now}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("insert user: %v", err)
	}
	item := &ClothingItem{Name: "Tee", Category: CategoryShirt, Color: ColorWhite, WeatherSuitability: SuitabilityHot, OwnerID: u.ID}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("insert item: %v", err)
	}
	wl := &WearLog{OwnerID: u.ID, DateWorn: DateOf(now, nil), Items: []ClothingItem{*item}}
	if err := db.Omit("Items.*").Create(wl).Error; err != nil {
		t.Fatalf("insert wear log: %v", err)
	}

	var joins int64
	db.Table("wear_log_items").Where("wear_log_id = ?", wl.ID).Count(&joins)
	if joins != 1 {
		t.Fatalf("expected 1 join row, got %d", joins)
	}

	// CASCADE: deleting the item removes its join rows.
	if err := db.Delete(&ClothingItem{}, item.ID).Error; err != nil {
		t.Fatalf("delete item: %v", err)
	}
	db.Table("wear_log_items").Where("wear_log_id = ?", wl.ID).Count(&joins)
	if joins != 0 {
		t.Fatalf("expected join rows to cascade, got %d", joins)
	}

	// Unique date on the weather cache.
	w1 := &Weather{Date: "2025-06-01", TempHigh: 70, TempLow: 60, LastUpdated: now}
	if err := db.Create(w1).Error; err != nil {
		t.Fatalf("insert weather: %v", err)
	}
	w2 := &Weather{Date: "2025-06-01", TempHigh: 71, TempLow: 61, LastUpdated: now}
	if err := db.Create(w2).Error; err == nil {
		t.Fatalf("expected unique violation on duplicate weather date")
	}
}

func TestWeatherLog_ConditionsPersistAsJSON(t *testing.T) {
	db := newDomainDB(t)
	if err := db.AutoMigrate(&WeatherLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	in := &WeatherLog{
		Date:     "2025-03-01",
		TempHigh: 90, TempLow: 80, PrecipitationChance: 10, Humidity: 20,
		Conditions: Condition{Primary: "hot", All: []string{"hot", "dry"}},
	}
	if err := db.Create(in).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	var got WeatherLog
	if err := db.First(&got, in.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Conditions.Primary != "hot" || len(got.Conditions.All) != 2 || got.Conditions.All[1] != "dry" {
		t.Fatalf("conditions not preserved: %+v", got.Conditions)
	}
}

func TestEnums_Valid(t *testing.T) {
	if !CategoryDress.Valid() || Category("hat").Valid() {
		t.Fatalf("category validation broken")
	}
	if !ColorBlack.Valid() || Color("green").Valid() {
		t.Fatalf("color validation broken")
	}
	if !SuitabilityRainy.Valid() || Suitability("mild").Valid() {
		t.Fatalf("suitability validation broken")
	}
}

func TestDateOf_AndParseDate(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	ts := time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC) // still Jan 1 in New York
	if got := DateOf(ts, ny); got != "2025-01-01" {
		t.Fatalf("DateOf NY = %q", got)
	}
	if got := DateOf(ts, nil); got != "2025-01-02" {
		t.Fatalf("DateOf UTC = %q", got)
	}
	if d, err := ParseDate(" 2024-02-29 "); err != nil || d != "2024-02-29" {
		t.Fatalf("ParseDate leap day: %q %v", d, err)
	}
	if _, err := ParseDate("2023-02-29"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}
