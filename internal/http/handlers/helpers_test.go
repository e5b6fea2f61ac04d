package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/http/middleware"
	"github.com/tbourn/closet-backend/internal/repo"
	"github.com/tbourn/closet-backend/internal/services"
	"github.com/tbourn/closet-backend/internal/weather"
)

// ---------- test DB ----------

func newHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// ---------- stubs ----------

type stubCurrent struct {
	cur weather.Current
	err error
}

func (s stubCurrent) Current(context.Context, weather.Location) (weather.Current, error) {
	return s.cur, s.err
}

type stubWeather struct {
	days []domain.Weather
	err  error
	got  *domain.Date
}

func (s *stubWeather) GetForDate(_ context.Context, d *domain.Date) (*domain.Weather, error) {
	s.got = d
	if s.err != nil {
		return nil, s.err
	}
	if d == nil {
		return &s.days[0], nil
	}
	for i := range s.days {
		if s.days[i].Date == *d {
			return &s.days[i], nil
		}
	}
	return nil, fmt.Errorf("no forecast for %s", *d)
}

func (s *stubWeather) List(_ context.Context, limit int) ([]domain.Weather, error) {
	if limit > 0 && limit < len(s.days) {
		return s.days[:limit], nil
	}
	return s.days, nil
}

// ---------- env ----------

type testEnv struct {
	db      *gorm.DB
	r       *gin.Engine
	auth    *services.AuthService
	items   *services.ClothingService
	logs    *services.WearLogService
	weather *stubWeather
}

// newEnv wires real services over sqlite behind the auth guard, the way the
// router does, with a stub weather cache and current-conditions provider.
func newEnv(t *testing.T, cur weather.CurrentProvider) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newHandlerDB(t)

	auth := services.NewAuthService(db)
	auth.BcryptCost = bcrypt.MinCost
	items := services.NewClothingService(db, cur)
	logs := services.NewWearLogService(db, time.UTC, time.Hour)
	ws := &stubWeather{days: []domain.Weather{
		{Date: "2025-06-10", TempHigh: 90, TempLow: 80, PrecipitationChance: 10, Humidity: 20, LastUpdated: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)},
		{Date: "2025-06-09", TempHigh: 60, TempLow: 50, PrecipitationChance: 70, Humidity: 85, LastUpdated: time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)},
	}}
	h := New(auth, items, logs, ws)

	r := gin.New()
	r.POST("/api/accounts/register/", h.Register)
	r.POST("/api/accounts/login/", h.Login)
	r.GET("/api/health/", Health)

	g := r.Group("/api", middleware.Auth(auth))
	g.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil))
	g.POST("/accounts/logout/", h.Logout)
	g.GET("/accounts/me/", h.Me)
	g.GET("/clothing-items/", h.ListClothingItems)
	g.POST("/clothing-items/", h.CreateClothingItem)
	g.GET("/clothing-items/suggestions/", h.Suggestions)
	g.GET("/clothing-items/:id/", h.GetClothingItem)
	g.PUT("/clothing-items/:id/", h.UpdateClothingItem)
	g.PATCH("/clothing-items/:id/", h.UpdateClothingItem)
	g.DELETE("/clothing-items/:id/", h.DeleteClothingItem)
	g.GET("/wear-logs/", h.ListWearLogs)
	g.POST("/wear-logs/", h.CreateWearLog)
	g.GET("/wear-logs/:id/", h.GetWearLog)
	g.DELETE("/wear-logs/:id/", h.DeleteWearLog)
	g.GET("/weather/", h.ListWeather)
	g.GET("/weather/current/", h.TodayWeather)
	g.GET("/weather/:date/", h.WeatherForDate)

	return &testEnv{db: db, r: r, auth: auth, items: items, logs: logs, weather: ws}
}

// register creates a user through the service and returns its token key.
func (e *testEnv) register(t *testing.T, username string) (string, *domain.User) {
	t.Helper()
	tok, u, err := e.auth.Register(context.Background(), services.RegisterInput{Username: username, Password: "correct-horse"})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return tok.Key, u
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatalf("encode: %v", err)
			}
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func (e *testEnv) mkItem(t *testing.T, owner uint, name string, suit domain.Suitability) *domain.ClothingItem {
	t.Helper()
	it := &domain.ClothingItem{Name: name, Category: domain.CategoryShirt, Color: domain.ColorWhite, WeatherSuitability: suit, OwnerID: owner}
	if err := repo.CreateItem(context.Background(), e.db, it); err != nil {
		t.Fatalf("create item: %v", err)
	}
	return it
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d; want %d; body=%s", w.Code, want, w.Body.String())
	}
}
