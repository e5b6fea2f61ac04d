// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes application settings
// such as server timeouts, logging, database paths, weather providers, rate
// limiting, and observability.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tbourn/closet-backend/internal/sysutil"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "closet-backend")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]

	Environment   string            // OTEL_DEPLOYMENT_ENVIRONMENT (e.g. "production")
	ExportTimeout time.Duration     // OTEL_EXPORTER_OTLP_TIMEOUT per export batch
	Attributes    map[string]string // OTEL_RESOURCE_ATTRIBUTES "k=v,k2=v2"
}

// WeatherConfig defines the weather cache and the upstream providers.
type WeatherConfig struct {
	Provider string        // WEATHER_PROVIDER: static|openweather
	Refresh  time.Duration // WEATHER_REFRESH: cache freshness window
	APIKey   string        // OPENWEATHER_API_KEY
	BaseURL  string        // OPENWEATHER_BASE_URL
	City     string        // WEATHER_CITY used for the daily cache (e.g. "San Francisco")
	Country  string        // WEATHER_COUNTRY two-letter code
	Timeout  time.Duration // WEATHER_TIMEOUT per upstream request
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// App
	DBPath    string         // SQLite path
	StaticDir string         // built frontend + static assets
	Location  *time.Location // TZ used to decide "today"
	Weather   WeatherConfig

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Idempotency
	IdempotencyTTL time.Duration // how long a given Idempotency-Key is valid
	TokenBytes     int           // random bytes per auth token (hex-encoded)

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api")),

		// App
		DBPath:    getenv("DB_PATH", "closet.db"),
		StaticDir: getenv("STATIC_DIR", "static"),
		Weather: WeatherConfig{
			Provider: strings.ToLower(getenv("WEATHER_PROVIDER", "static")),
			Refresh:  getdur("WEATHER_REFRESH", time.Hour),
			APIKey:   getenv("OPENWEATHER_API_KEY", ""),
			BaseURL:  strings.TrimRight(getenv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"), "/"),
			City:     getenv("WEATHER_CITY", "San Francisco"),
			Country:  strings.ToUpper(getenv("WEATHER_COUNTRY", "US")),
			Timeout:  getdur("WEATHER_TIMEOUT", 5*time.Second),
		},

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Idempotency
		IdempotencyTTL: getdur("IDEMPOTENCY_TTL", 24*time.Hour),
		TokenBytes:     getint("TOKEN_BYTES", 20),

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "closet-backend"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),

			Environment:   getenv("OTEL_DEPLOYMENT_ENVIRONMENT", "development"),
			ExportTimeout: getdur("OTEL_EXPORTER_OTLP_TIMEOUT", 10*time.Second),
			Attributes:    splitKV(os.Getenv("OTEL_RESOURCE_ATTRIBUTES")),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}
	loc, err := time.LoadLocation(getenv("TZ", "UTC"))
	if err != nil {
		return cfg, errors.New("TZ must be a valid IANA time zone")
	}
	cfg.Location = loc

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty")
	}
	switch cfg.Weather.Provider {
	case "static":
	case "openweather":
		if strings.TrimSpace(cfg.Weather.APIKey) == "" {
			return cfg, errors.New("OPENWEATHER_API_KEY is required when WEATHER_PROVIDER=openweather")
		}
	default:
		return cfg, errors.New("WEATHER_PROVIDER must be one of: static, openweather")
	}
	if cfg.Weather.Refresh <= 0 {
		return cfg, errors.New("WEATHER_REFRESH must be > 0")
	}
	if cfg.Weather.Timeout <= 0 {
		return cfg, errors.New("WEATHER_TIMEOUT must be > 0")
	}
	if len(cfg.Weather.Country) != 2 {
		return cfg, errors.New("WEATHER_COUNTRY must be a two-letter country code")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.IdempotencyTTL <= 0 {
		return cfg, errors.New("IDEMPOTENCY_TTL must be > 0")
	}
	if cfg.TokenBytes < 16 {
		return cfg, errors.New("TOKEN_BYTES must be >= 16")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}
	if cfg.OTEL.ExportTimeout <= 0 {
		return cfg, errors.New("OTEL_EXPORTER_OTLP_TIMEOUT must be > 0")
	}
	return cfg, nil
}

// ---- helpers ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if b, ok := sysutil.ParseBool(v); ok {
			return b
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// splitKV parses "k=v,k2=v2"; entries without a key are dropped.
func splitKV(s string) map[string]string {
	parts := splitCSV(s)
	if len(parts) == 0 {
		return nil
	}
	out := make(map[string]string, len(parts))
	for _, p := range parts {
		k, v, _ := strings.Cut(p, "=")
		if k = strings.TrimSpace(k); k != "" {
			out[k] = strings.TrimSpace(v)
		}
	}
	return out
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
