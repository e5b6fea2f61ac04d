// Weather and health HTTP handlers.
//
//   - GET /weather/          (cached days, newest first)
//   - GET /weather/current/  (today, fetched when stale)
//   - GET /weather/{date}/   (one day, fetched when stale)
//   - GET /health/           (liveness)
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/http/middleware"
	"github.com/tbourn/closet-backend/internal/utils"
	"github.com/tbourn/closet-backend/internal/weather"
)

// WeatherDTO is a cached day with its derived conditions.
type WeatherDTO struct {
	Date                domain.Date      `json:"date" swaggertype:"string" example:"2025-06-10"`
	TempHigh            float64          `json:"temp_high" example:"75"`
	TempLow             float64          `json:"temp_low" example:"65"`
	PrecipitationChance int              `json:"precipitation_chance" example:"20"`
	Humidity            int              `json:"humidity" example:"65"`
	Conditions          domain.Condition `json:"conditions"`
	LastUpdated         time.Time        `json:"last_updated"`
}

func weatherDTO(w domain.Weather) WeatherDTO {
	return WeatherDTO{
		Date:                w.Date,
		TempHigh:            w.TempHigh,
		TempLow:             w.TempLow,
		PrecipitationChance: w.PrecipitationChance,
		Humidity:            w.Humidity,
		Conditions:          weather.ConditionOf(w),
		LastUpdated:         w.LastUpdated,
	}
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// ListWeather godoc
// @ID          listWeather
// @Summary     List cached weather days
// @Description Returns cached days, newest first, without contacting the provider.
// @Tags        Weather
// @Produce     json
// @Security    TokenAuth
// @Param       limit  query  int  false  "Maximum number of days (0 = all)"  minimum(0)
// @Success     200  {array}   handlers.WeatherDTO
// @Router      /weather/ [get]
func (h *Handlers) ListWeather(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 0)
	if limit < 0 {
		limit = 0
	}
	days, err := h.weather.List(c.Request.Context(), limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	out := make([]WeatherDTO, 0, len(days))
	for _, d := range days {
		out = append(out, weatherDTO(d))
	}
	ok(c, http.StatusOK, out)
}

// TodayWeather godoc
// @ID          currentWeather
// @Summary     Today's weather
// @Description Returns today's cached day, refreshing it from the provider when older than the refresh interval.
// @Tags        Weather
// @Produce     json
// @Security    TokenAuth
// @Success     200  {object}  handlers.WeatherDTO
// @Failure     503  {object}  handlers.ErrorResponse  "Weather unavailable"
// @Router      /weather/current/ [get]
func (h *Handlers) TodayWeather(c *gin.Context) {
	h.weatherFor(c, nil)
}

// WeatherForDate godoc
// @ID          weatherForDate
// @Summary     Weather for a date
// @Tags        Weather
// @Produce     json
// @Security    TokenAuth
// @Param       date  path      string  true  "Calendar date (YYYY-MM-DD)"
// @Success     200   {object}  handlers.WeatherDTO
// @Failure     400   {object}  handlers.ErrorResponse  "Bad date"
// @Failure     503   {object}  handlers.ErrorResponse  "Weather unavailable"
// @Router      /weather/{date}/ [get]
func (h *Handlers) WeatherForDate(c *gin.Context) {
	d, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Date has wrong format. Use YYYY-MM-DD.")
		return
	}
	h.weatherFor(c, &d)
}

func (h *Handlers) weatherFor(c *gin.Context, d *domain.Date) {
	w, err := h.weather.GetForDate(c.Request.Context(), d)
	if err != nil {
		lg := middleware.LoggerFrom(c)
		lg.Warn().Err(err).Msg("weather lookup failed")
		fail(c, http.StatusServiceUnavailable, ErrCodeWeatherUnavailable, "Could not fetch weather data")
		return
	}
	ok(c, http.StatusOK, weatherDTO(*w))
}

// Health godoc
// @ID          health
// @Summary     Liveness probe
// @Tags        Health
// @Produce     json
// @Success     200  {object}  handlers.HealthResponse
// @Router      /health/ [get]
func Health(c *gin.Context) {
	ok(c, http.StatusOK, HealthResponse{Status: "healthy"})
}
