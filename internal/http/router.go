// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, authentication, idempotency, and rate
// limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/tbourn/closet-backend/docs"
	"github.com/tbourn/closet-backend/internal/config"
	"github.com/tbourn/closet-backend/internal/http/handlers"
	"github.com/tbourn/closet-backend/internal/http/middleware"
	"github.com/tbourn/closet-backend/internal/repo"
	"github.com/tbourn/closet-backend/internal/services"
	"github.com/tbourn/closet-backend/internal/weather"
)

// maxBodyBytes caps request bodies (1 MiB).
const maxBodyBytes = 1 << 20

// shellCSP is sent with every response unless Swagger UI (which relies on
// inline scripts) is enabled.
const shellCSP = "default-src 'self'; img-src 'self' data: https:; style-src 'self' 'unsafe-inline'; script-src 'self'; connect-src 'self'; frame-ancestors 'none'"

// Deps carries collaborators that deployments and tests may override. Zero
// fields are built from the configuration.
type Deps struct {
	// Fetcher fills the daily weather cache.
	Fetcher weather.Fetcher
	// Current answers suggestion lookups.
	Current weather.CurrentProvider
	// Clock drives the weather cache; defaults to the real clock.
	Clock clockwork.Clock
}

// weatherDeps resolves the weather collaborators. The OpenWeather client
// backs the cache when WEATHER_PROVIDER=openweather and serves current
// conditions whenever an API key is configured; otherwise current conditions
// are derived from today's cached day.
func weatherDeps(db *gorm.DB, cfg config.Config, d Deps) (*weather.Cache, weather.CurrentProvider) {
	var ow *weather.OpenWeather
	if cfg.Weather.Provider == "openweather" || cfg.Weather.APIKey != "" {
		ow = weather.NewOpenWeather(cfg.Weather)
	}

	f := d.Fetcher
	if f == nil {
		if cfg.Weather.Provider == "openweather" {
			f = ow
		} else {
			f = weather.StaticFetcher{}
		}
	}
	opts := []weather.CacheOption{
		weather.WithRefresh(cfg.Weather.Refresh),
		weather.WithLocation(cfg.Location),
	}
	if d.Clock != nil {
		opts = append(opts, weather.WithClock(d.Clock))
	}
	cache := weather.NewCache(db, f, opts...)

	cur := d.Current
	if cur == nil {
		if ow != nil && cfg.Weather.APIKey != "" {
			cur = ow
		} else {
			cur = cache
		}
	}
	return cache, cur
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), compression, CORS
// and security headers, health and metrics endpoints, Swagger UI, static
// files and the frontend shell, and mounts the API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Gzip
//  8. CORS and Security headers
//
// and, on protected API routes only:
//  9. Auth (token guard)
//  10. Idempotency validator (before rate limiter to allow bypass on replay)
//  11. Rate limiter (per user, bypass on replay)
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, deps Deps) {
	r.HandleMethodNotAllowed = true

	apiBase := cfg.APIBasePath // e.g. "/api"
	if apiBase == "" {
		apiBase = "/"
	}
	staticURL := "/static"

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders:  []string{middleware.HeaderIdempotencyKey},
		SkipPrefixes: []string{staticURL + "/", "/metrics"},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit
	r.Use(limitBody(maxBodyBytes))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Response compression (Prometheus negotiates its own)
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 8) CORS posture (safe defaults: allow all if none configured)
	allowHeaders := []string{"Origin", "Content-Type", "Accept", "Authorization", "If-None-Match", middleware.HeaderIdempotencyKey}
	exposeHeaders := []string{"X-Request-ID", "Content-Length", "ETag", handlers.HeaderTotalCount, handlers.HeaderIdempotencyReplayed}
	methods := []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     methods,
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     methods,
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	csp := shellCSP
	if cfg.SwaggerEnabled {
		csp = ""
	}
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:            cfg.Security.EnableHSTS,
		HSTSMaxAge:            cfg.Security.HSTSMaxAge,
		NoStorePrefixes:       []string{apiBase},
		EnablePolicy:          true,
		ContentSecurityPolicy: csp,
	}))

	// Dependency injection: services ← repo/db/weather
	cache, current := weatherDeps(db, cfg, deps)

	authSvc := services.NewAuthService(db)
	if cfg.TokenBytes > 0 {
		authSvc.TokenBytes = cfg.TokenBytes
	}
	itemSvc := services.NewClothingService(db, current)
	logSvc := services.NewWearLogService(db, cfg.Location, cfg.IdempotencyTTL)
	if deps.Clock != nil {
		logSvc.Clock = deps.Clock
	}
	h := handlers.New(authSvc, itemSvc, logSvc, cache)
	front := handlers.NewFrontend(cfg.StaticDir, staticURL)

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())

	// Fallbacks: unknown API paths are JSON, every other GET is the frontend.
	r.NoRoute(func(c *gin.Context) {
		m := c.Request.Method
		if (m == http.MethodGet || m == http.MethodHead) && !underPrefix(c.Request.URL.Path, apiBase) {
			front.Shell(c)
			return
		}
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", handlers.Health)

	if cfg.StaticDir != "" {
		r.Static(staticURL, cfg.StaticDir)
	}
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := groupWithPrefix(r, apiBase)
	{
		// Public: accounts and health (rate limited per client IP)
		pub := api.Group("", rl.Handler())
		handle(pub, http.MethodPost, "/accounts/register/", h.Register)
		handle(pub, http.MethodPost, "/accounts/login/", h.Login)
		handle(api, http.MethodGet, "/health/", handlers.Health)
	}

	authed := api.Group("",
		middleware.Auth(authSvc),
		middleware.IdempotencyValidator(
			middleware.IdempotencyOptions{
				MaxLen:   200,
				ScopeFor: idempotencyScope,
			},
			func(ctx context.Context, userID uint, scope, key string, now time.Time) (bool, error) {
				rec, err := repo.GetIdempotency(ctx, db, userID, scope, key, now)
				if err != nil || rec == nil {
					return false, nil
				}
				return true, nil
			},
		),
		rl.Handler(),
	)
	{
		// Accounts
		handle(authed, http.MethodPost, "/accounts/logout/", h.Logout)
		handle(authed, http.MethodGet, "/accounts/me/", h.Me)

		// Clothing catalog
		handle(authed, http.MethodGet, "/clothing-items/", h.ListClothingItems)
		handle(authed, http.MethodPost, "/clothing-items/", h.CreateClothingItem)
		handle(authed, http.MethodGet, "/clothing-items/suggestions/", h.Suggestions)
		handle(authed, http.MethodGet, "/clothing-items/:id/", h.GetClothingItem)
		handle(authed, http.MethodPut, "/clothing-items/:id/", h.UpdateClothingItem)
		handle(authed, http.MethodPatch, "/clothing-items/:id/", h.UpdateClothingItem)
		handle(authed, http.MethodDelete, "/clothing-items/:id/", h.DeleteClothingItem)

		// Wear-logs
		handle(authed, http.MethodGet, "/wear-logs/", h.ListWearLogs)
		handle(authed, http.MethodPost, "/wear-logs/", h.CreateWearLog)
		handle(authed, http.MethodGet, "/wear-logs/:id/", h.GetWearLog)
		handle(authed, http.MethodDelete, "/wear-logs/:id/", h.DeleteWearLog)

		// Weather
		handle(authed, http.MethodGet, "/weather/", h.ListWeather)
		handle(authed, http.MethodGet, "/weather/current/", h.TodayWeather)
		handle(authed, http.MethodGet, "/weather/:date/", h.WeatherForDate)
	}
}

// handle registers path with and without its trailing slash.
func handle(g *gin.RouterGroup, method, path string, h ...gin.HandlerFunc) {
	g.Handle(method, path, h...)
	if bare := strings.TrimSuffix(path, "/"); bare != path && bare != "" {
		g.Handle(method, bare, h...)
	}
}

// idempotencyScope names the replay scope of a request; only wear-log
// creation is deduplicated.
func idempotencyScope(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	if strings.HasSuffix(strings.TrimSuffix(c.FullPath(), "/"), "/wear-logs") {
		return services.IdempotencyScopeWearLogs
	}
	return ""
}

// underPrefix reports whether path is prefix itself or below it.
func underPrefix(path, prefix string) bool {
	if prefix == "/" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
