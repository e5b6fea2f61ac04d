package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// WeatherFetches counts upstream weather calls by provider and outcome
	// ("ok" or "error").
	WeatherFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_fetch_total",
			Help: "Upstream weather fetches by provider and result.",
		},
		[]string{"provider", "result"},
	)

	// WeatherCache counts daily cache lookups by result ("hit", "miss", "stale").
	WeatherCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_cache_total",
			Help: "Weather cache lookups by result.",
		},
		[]string{"result"},
	)

	// WearLogsCreated counts successfully persisted wear-logs.
	WearLogsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wear_logs_created_total",
			Help: "Total number of wear-logs created.",
		},
	)
)

func init() {
	prometheus.MustRegister(WeatherFetches, WeatherCache, WearLogsCreated)
}
