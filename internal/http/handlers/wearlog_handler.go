// Wear-log HTTP handlers.
//
// This file exposes the caller's wear history:
//   - POST   /wear-logs/       (record an outfit; Idempotency-Key aware)
//   - GET    /wear-logs/       (list, newest date first, optional from/to)
//   - GET    /wear-logs/{id}/  (get)
//   - DELETE /wear-logs/{id}/  (delete)
//
// Wear-logs have no update path.
//
// Idempotency:
// If the client supplies an Idempotency-Key header and an earlier create with
// that key is still recorded for the user, the original wear-log is returned
// with `Idempotency-Replayed: true` and nothing new is written.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/http/middleware"
	"github.com/tbourn/closet-backend/internal/repo"
	"github.com/tbourn/closet-backend/internal/services"
)

//
// DTOs
//

// ItemRef is the `{id}` element of the legacy `items` array.
type ItemRef struct {
	ID uint `json:"id" example:"3"`
}

// WeatherLogRequest is the optional weather snapshot of a wear-log. When
// conditions is absent (or not an object) it is derived from the numbers.
type WeatherLogRequest struct {
	Date                string          `json:"date" example:"2025-06-10"`
	TempHigh            float64         `json:"temp_high" example:"88"`
	TempLow             float64         `json:"temp_low" example:"72"`
	PrecipitationChance float64         `json:"precipitation_chance" example:"10"`
	Humidity            float64         `json:"humidity" example:"40"`
	Conditions          json.RawMessage `json:"conditions" swaggertype:"object"`
}

// CreateWearLogRequest is the JSON payload for recording an outfit. Item ids
// may come as `item_ids: [1,2]`, as `items: [{"id":1}]`, or both.
type CreateWearLogRequest struct {
	ItemIDs    []uint             `json:"item_ids" example:"1,2"`
	Items      []ItemRef          `json:"items"`
	DateWorn   string             `json:"date_worn" example:"2025-06-10"`
	Notes      string             `json:"notes" example:"Team offsite"`
	WeatherLog *WeatherLogRequest `json:"weather_log"`
}

func (r CreateWearLogRequest) input() services.WearLogInput {
	ids := make([]uint, 0, len(r.ItemIDs)+len(r.Items))
	ids = append(ids, r.ItemIDs...)
	for _, it := range r.Items {
		ids = append(ids, it.ID)
	}
	in := services.WearLogInput{ItemIDs: ids, DateWorn: r.DateWorn, Notes: r.Notes}
	if w := r.WeatherLog; w != nil {
		in.WeatherLog = &services.WeatherLogInput{
			Date:                w.Date,
			TempHigh:            w.TempHigh,
			TempLow:             w.TempLow,
			PrecipitationChance: w.PrecipitationChance,
			Humidity:            w.Humidity,
		}
		var cond domain.Condition
		if len(w.Conditions) > 0 && json.Unmarshal(w.Conditions, &cond) == nil {
			in.WeatherLog.Conditions = &cond
		}
	}
	return in
}

//
// Handlers
//

// CreateWearLog godoc
// @ID          createWearLog
// @Summary     Record an outfit
// @Description Every item must exist (404) and belong to the caller (403); nothing is written otherwise. On success the items' last_worn is set to now.
// @Tags        WearLogs
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       Idempotency-Key  header    string                         false  "Deduplicates retries"
// @Param       body             body      handlers.CreateWearLogRequest  true   "Wear-log"
// @Success     201  {object}  domain.WearLog
// @Header      201  {string}  Idempotency-Replayed  "true when served from an earlier request"
// @Failure     400  {object}  handlers.ErrorResponse  "Validation error"
// @Failure     403  {object}  handlers.ErrorResponse  "Item of another user"
// @Failure     404  {object}  handlers.ErrorResponse  "Item not found"
// @Router      /wear-logs/ [post]
func (h *Handlers) CreateWearLog(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	var req CreateWearLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	key, _ := middleware.GetIdempotencyKey(c)

	wl, replayed, err := h.wearLogs.Create(c.Request.Context(), uid, req.input(), key)
	if err != nil {
		serviceError(c, err)
		return
	}
	if replayed {
		c.Header(HeaderIdempotencyReplayed, "true")
	}
	ok(c, http.StatusCreated, wl)
}

// ListWearLogs godoc
// @ID          listWearLogs
// @Summary     List wear-logs
// @Description Returns the caller's wear-logs as a JSON array ordered by date_worn descending; X-Total-Count carries the unpaginated count. Supports weak ETag via If-None-Match.
// @Tags        WearLogs
// @Produce     json
// @Security    TokenAuth
// @Param       from           query   string  false  "Earliest date_worn (YYYY-MM-DD)"
// @Param       to             query   string  false  "Latest date_worn (YYYY-MM-DD)"
// @Param       page           query   int     false  "Page number"  minimum(1) default(1)
// @Param       page_size      query   int     false  "Items per page"  minimum(1) maximum(500) default(100)
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
// @Success     200  {array}   domain.WearLog
// @Header      200  {string}  ETag           "Weak ETag for current result"
// @Header      200  {integer} X-Total-Count  "Total matching wear-logs"
// @Success     304  {string}  string  "Not Modified"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad date"
// @Router      /wear-logs/ [get]
func (h *Handlers) ListWearLogs(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	if svc, isDB := h.wearLogs.(*services.WearLogService); isDB && svc.DB != nil {
		if count, links, latest, err := repo.WearLogsStats(ctx, svc.DB, uid); err == nil {
			if notModified(c, weakETag("wear_logs", uid, latest, c.Request.URL.RawQuery, count, links)) {
				return
			}
		}
	}

	logs, total, err := h.wearLogs.List(ctx, uid, c.Query("from"), c.Query("to"), page, pageSize)
	if err != nil {
		serviceError(c, err)
		return
	}
	writeList(c, logs, total)
}

// GetWearLog godoc
// @ID          getWearLog
// @Summary     Get a wear-log
// @Tags        WearLogs
// @Produce     json
// @Security    TokenAuth
// @Param       id   path      int  true  "Wear-log ID"
// @Success     200  {object}  domain.WearLog
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /wear-logs/{id}/ [get]
func (h *Handlers) GetWearLog(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	id, valid := pathID(c, "wear log not found")
	if !valid {
		return
	}
	wl, err := h.wearLogs.Get(c.Request.Context(), uid, id)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, http.StatusOK, wl)
}

// DeleteWearLog godoc
// @ID          deleteWearLog
// @Summary     Delete a wear-log
// @Description Items keep their last_worn.
// @Tags        WearLogs
// @Security    TokenAuth
// @Param       id   path      int  true  "Wear-log ID"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /wear-logs/{id}/ [delete]
func (h *Handlers) DeleteWearLog(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	id, valid := pathID(c, "wear log not found")
	if !valid {
		return
	}
	if err := h.wearLogs.Delete(c.Request.Context(), uid, id); err != nil {
		serviceError(c, err)
		return
	}
	noContent(c)
}
