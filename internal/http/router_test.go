package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/closet-backend/internal/config"
	"github.com/tbourn/closet-backend/internal/http/middleware"
	"github.com/tbourn/closet-backend/internal/repo"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		APIBasePath:    "/api",
		StaticDir:      t.TempDir(),
		Location:       time.UTC,
		RateRPS:        100,
		RateBurst:      50,
		IdempotencyTTL: time.Hour,
		TokenBytes:     20,
		Weather:        config.WeatherConfig{Provider: "static", Refresh: time.Hour},
		OTEL:           config.OTELConfig{ServiceName: "test-svc"},
	}
}

func newRouter(t *testing.T, cfg config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	db := newTestDB(t)
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	RegisterRoutes(r, db, cfg, Deps{Clock: clock})
	return r, db
}

func serve(r *gin.Engine, method, path, token, body string, hdr ...string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, name string) string {
	t.Helper()
	w := serve(r, http.MethodPost, "/api/accounts/register/", "", `{"username":"`+name+`","password":"correct-horse"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("register response %q: %v", w.Body.String(), err)
	}
	return resp.Token
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	r, _ := newRouter(t, testConfig(t))

	for _, p := range []string{"/health", "/api/health/", "/api/health"} {
		w := serve(r, http.MethodGet, p, "", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"healthy"`) {
			t.Fatalf("GET %s = %d %s", p, w.Code, w.Body.String())
		}
		// CORS (AllowAllOrigins) → header "*"
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("AllowAllOrigins expected '*', got %q", got)
		}
	}

	// /metrics is wired
	w := serve(r, http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// Unknown API path → JSON 404
	w = serve(r, http.MethodGet, "/api/nope/", "", "")
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), `"not_found"`) {
		t.Fatalf("GET /api/nope/ = %d %s", w.Code, w.Body.String())
	}

	// NoMethod → 405 (POST /health)
	w = serve(r, http.MethodPost, "/health", "", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	cfg := testConfig(t)
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://frontend.test"}}
	r, _ := newRouter(t, cfg)

	w := serve(r, http.MethodGet, "/health", "", "", "Origin", "http://frontend.test")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://frontend.test" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}

	// Preflight advertises the headers the frontend sends.
	w = serve(r, http.MethodOptions, "/api/wear-logs/", "", "",
		"Origin", "http://frontend.test",
		"Access-Control-Request-Method", "POST",
		"Access-Control-Request-Headers", "Authorization, Idempotency-Key")
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Idempotency-Key") {
		t.Fatalf("unexpected allowed headers %q", got)
	}
}

func TestRegisterRoutes_FrontendShellAndStatic(t *testing.T) {
	cfg := testConfig(t)
	assets := filepath.Join(cfg.StaticDir, "frontend", "assets")
	if err := os.MkdirAll(assets, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(assets, "index-abc.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, _ := newRouter(t, cfg)

	for _, p := range []string{"/", "/closet", "/outfits/12"} {
		w := serve(r, http.MethodGet, p, "", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/static/frontend/assets/index-abc.js") {
			t.Fatalf("GET %s = %d %s", p, w.Code, w.Body.String())
		}
		if w.Header().Get("Cache-Control") == "no-store" {
			t.Fatalf("shell must stay cacheable")
		}
	}

	w := serve(r, http.MethodGet, "/static/frontend/assets/index-abc.js", "", "")
	if w.Code != http.StatusOK || w.Body.String() != "console.log(1)" {
		t.Fatalf("static = %d %q", w.Code, w.Body.String())
	}

	// Non-GET outside the API is not the shell.
	if w := serve(r, http.MethodPost, "/closet", "", "{}"); w.Code != http.StatusNotFound {
		t.Fatalf("POST /closet = %d", w.Code)
	}
}

func TestRegisterRoutes_AuthFlowAndTrailingSlashes(t *testing.T) {
	r, _ := newRouter(t, testConfig(t))

	if w := serve(r, http.MethodGet, "/api/clothing-items/", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous list = %d", w.Code)
	}

	tok := registerUser(t, r, "alice")
	body := `{"name":"Rain Shell","category":"jacket","color":"yellow","weather_suitability":"rainy"}`
	w := serve(r, http.MethodPost, "/api/clothing-items", tok, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create without slash = %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("API responses must be no-store")
	}

	for _, p := range []string{"/api/clothing-items/", "/api/clothing-items"} {
		w = serve(r, http.MethodGet, p, tok, "")
		if w.Code != http.StatusOK || w.Header().Get("X-Total-Count") != "1" {
			t.Fatalf("GET %s = %d total=%q", p, w.Code, w.Header().Get("X-Total-Count"))
		}
	}

	w = serve(r, http.MethodPost, "/api/accounts/login", "", `{"username":"alice","password":"correct-horse"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), tok) {
		t.Fatalf("login must return the existing token: %d %s", w.Code, w.Body.String())
	}

	if w = serve(r, http.MethodPost, "/api/accounts/logout/", tok, ""); w.Code != http.StatusNoContent {
		t.Fatalf("logout = %d", w.Code)
	}
	if w = serve(r, http.MethodGet, "/api/accounts/me/", tok, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token still accepted: %d", w.Code)
	}
}

func TestRegisterRoutes_StaticWeatherAndSuggestions(t *testing.T) {
	r, _ := newRouter(t, testConfig(t))
	tok := registerUser(t, r, "alice")

	w := serve(r, http.MethodGet, "/api/weather/current/", tok, "")
	if w.Code != http.StatusOK {
		t.Fatalf("current weather = %d %s", w.Code, w.Body.String())
	}
	var day struct {
		Date     string  `json:"date"`
		TempHigh float64 `json:"temp_high"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &day); err != nil {
		t.Fatal(err)
	}
	if day.Date != "2025-06-10" || day.TempHigh != 75 {
		t.Fatalf("unexpected day %+v", day)
	}

	// Static placeholder averages 70°F: the warm band.
	for _, n := range []string{"Linen Shirt", "Chinos"} {
		body := `{"name":"` + n + `","category":"shirt","color":"white","weather_suitability":"warm"}`
		if w := serve(r, http.MethodPost, "/api/clothing-items/", tok, body); w.Code != http.StatusCreated {
			t.Fatalf("create = %d", w.Code)
		}
	}
	w = serve(r, http.MethodGet, "/api/clothing-items/suggestions/", tok, "")
	if w.Code != http.StatusOK {
		t.Fatalf("suggestions = %d %s", w.Code, w.Body.String())
	}
	var sug struct {
		Weather struct {
			Temperature float64 `json:"temperature"`
		} `json:"weather"`
		Suggestions []struct {
			Name string `json:"name"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sug); err != nil {
		t.Fatal(err)
	}
	if sug.Weather.Temperature != 70 || len(sug.Suggestions) != 2 {
		t.Fatalf("unexpected suggestions %+v", sug)
	}
}

func TestRegisterRoutes_IdempotentWearLog(t *testing.T) {
	r, db := newRouter(t, testConfig(t))
	tok := registerUser(t, r, "alice")

	w := serve(r, http.MethodPost, "/api/clothing-items/", tok, `{"name":"Tee","category":"shirt","color":"red","weather_suitability":"hot"}`)
	var it struct {
		ID uint `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &it)

	body := fmt.Sprintf(`{"item_ids":[%d],"date_worn":"2025-06-10"}`, it.ID)
	first := serve(r, http.MethodPost, "/api/wear-logs/", tok, body, middleware.HeaderIdempotencyKey, "k-1")
	second := serve(r, http.MethodPost, "/api/wear-logs", tok, body, middleware.HeaderIdempotencyKey, "k-1", "Origin", "http://frontend.test")
	if first.Code != http.StatusCreated || second.Code != http.StatusCreated {
		t.Fatalf("create = %d / %d", first.Code, second.Code)
	}
	if second.Header().Get("Idempotency-Replayed") != "true" {
		t.Fatalf("expected replay header")
	}
	var n int64
	db.Table("wear_logs").Count(&n)
	if n != 1 {
		t.Fatalf("want 1 wear log, got %d", n)
	}
	if got := second.Header().Get("Access-Control-Expose-Headers"); !strings.Contains(got, "Idempotency-Replayed") {
		t.Fatalf("replay header not exposed: %q", got)
	}
}

func TestIdempotencyScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var got []string
	rec := func(c *gin.Context) { got = append(got, idempotencyScope(c)) }
	r.POST("/api/wear-logs/", rec)
	r.POST("/api/wear-logs", rec)
	r.POST("/api/clothing-items/", rec)
	r.DELETE("/api/wear-logs/:id/", rec)

	for _, c := range []struct{ m, p string }{
		{http.MethodPost, "/api/wear-logs/"},
		{http.MethodPost, "/api/wear-logs"},
		{http.MethodPost, "/api/clothing-items/"},
		{http.MethodDelete, "/api/wear-logs/3/"},
	} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(c.m, c.p, nil))
	}
	want := []string{"wear_logs", "wear_logs", "", ""}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("scopes = %v; want %v", got, want)
	}
}

func Test_underPrefix(t *testing.T) {
	cases := []struct {
		path, prefix string
		want         bool
	}{
		{"/api", "/api", true},
		{"/api/clothing-items/", "/api", true},
		{"/apiary", "/api", false},
		{"/closet", "/api", false},
		{"/anything", "/", true},
	}
	for _, c := range cases {
		if got := underPrefix(c.path, c.prefix); got != c.want {
			t.Fatalf("underPrefix(%q,%q) = %v", c.path, c.prefix, got)
		}
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// tiny cap to trigger MaxBytesReader
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")) // 12 bytes
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// "/" and "" should mount at root
	root1 := groupWithPrefix(r, "/")
	root1.GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	root2 := groupWithPrefix(r, "")
	root2.GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })

	// non-root prefix
	api := groupWithPrefix(r, "/api")
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/one": "one", "/two": "two", "/api/ping": "pong"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("GET %s got %d %q", path, rec.Code, rec.Body.String())
		}
	}
}

// Smoke test that a request traverses otel + request id + security headers pipeline.
func TestPipeline_Smoke(t *testing.T) {
	cfg := testConfig(t)
	cfg.Security = config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: time.Hour}
	r, _ := newRouter(t, cfg)

	w := serve(r, http.MethodGet, "/health", "", "", "X-Forwarded-Proto", "https")
	if w.Code != http.StatusOK {
		t.Fatalf("pipeline GET /health = %d", w.Code)
	}
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if got := w.Header().Get("Strict-Transport-Security"); !strings.HasPrefix(got, "max-age=3600") {
		t.Fatalf("HSTS = %q", got)
	}
	if w.Header().Get("Content-Security-Policy") == "" {
		t.Fatalf("expected CSP when Swagger UI is off")
	}
}
