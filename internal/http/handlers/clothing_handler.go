// Clothing catalog HTTP handlers.
//
// This file exposes the caller's catalog:
//   - GET    /clothing-items/              (list, filters, paging, ETag)
//   - POST   /clothing-items/              (create)
//   - GET    /clothing-items/{id}/         (get)
//   - PUT    /clothing-items/{id}/         (full update)
//   - PATCH  /clothing-items/{id}/         (partial update)
//   - DELETE /clothing-items/{id}/         (delete)
//   - GET    /clothing-items/suggestions/  (weather-based picks)
//
// Items of other users are reported as not found.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/repo"
	"github.com/tbourn/closet-backend/internal/services"
	"github.com/tbourn/closet-backend/internal/weather"
)

//
// DTOs
//

// ClothingItemRequest is the create/update payload. On PATCH only the fields
// present are changed; on POST and PUT name, category, color and
// weather_suitability are required.
type ClothingItemRequest struct {
	Name               *string `json:"name" example:"Navy Blazer"`
	Category           *string `json:"category" enums:"shirt,pants,shoes,dress,jacket,accessory" example:"jacket"`
	Image              *string `json:"image" example:"/media/clothing/blazer.jpg"`
	WeatherSuitability *string `json:"weather_suitability" enums:"hot,warm,cool,cold,rainy" example:"cool"`
	Color              *string `json:"color" enums:"red,blue,yellow,white,black" example:"blue"`
	Size               *string `json:"size" example:"40R"`
	Brand              *string `json:"brand" example:"J.Crew"`
	Formality          *string `json:"formality" example:"business"`
	Material           *string `json:"material" example:"wool"`
}

func (r ClothingItemRequest) input() services.ItemInput {
	return services.ItemInput{
		Name:               r.Name,
		Category:           r.Category,
		Image:              r.Image,
		WeatherSuitability: r.WeatherSuitability,
		Color:              r.Color,
		Size:               r.Size,
		Brand:              r.Brand,
		Formality:          r.Formality,
		Material:           r.Material,
	}
}

// CurrentWeather is the weather block of a suggestions response.
type CurrentWeather struct {
	Temperature float64 `json:"temperature" example:"72.5"`
	Condition   string  `json:"condition" example:"Clouds"`
	Description string  `json:"description" example:"broken clouds"`
	Humidity    int     `json:"humidity" example:"55"`
	WindSpeed   float64 `json:"wind_speed" example:"6.9"`
}

// SuggestionsResponse pairs current conditions with the picked items.
type SuggestionsResponse struct {
	Weather     CurrentWeather        `json:"weather"`
	Suggestions []domain.ClothingItem `json:"suggestions"`
}

//
// Handlers
//

// ListClothingItems godoc
// @ID          listClothingItems
// @Summary     List clothing items
// @Description Returns the caller's items as a JSON array, newest first; X-Total-Count carries the unpaginated count. Supports weak ETag via If-None-Match.
// @Tags        ClothingItems
// @Produce     json
// @Security    TokenAuth
// @Param       category             query   string  false  "Filter by category"  Enums(shirt,pants,shoes,dress,jacket,accessory)
// @Param       weather_suitability  query   string  false  "Filter by weather band"  Enums(hot,warm,cool,cold,rainy)
// @Param       color                query   string  false  "Filter by color"  Enums(red,blue,yellow,white,black)
// @Param       q                    query   string  false  "Free-text search over name, brand, material, color and category"
// @Param       page                 query   int     false  "Page number"  minimum(1) default(1)
// @Param       page_size            query   int     false  "Items per page"  minimum(1) maximum(500) default(100)
// @Param       If-None-Match        header  string  false  "Return 304 if ETag matches"
// @Success     200  {array}   domain.ClothingItem
// @Header      200  {string}  ETag           "Weak ETag for current result"
// @Header      200  {integer} X-Total-Count  "Total matching items"
// @Success     304  {string}  string  "Not Modified"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid filter"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthenticated"
// @Router      /clothing-items/ [get]
func (h *Handlers) ListClothingItems(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if svc, isDB := h.items.(*services.ClothingService); isDB && svc.DB != nil {
		if count, latest, err := repo.ItemsStats(ctx, svc.DB, uid); err == nil {
			if notModified(c, weakETag("items", uid, latest, c.Request.URL.RawQuery, count)) {
				return
			}
		}
	}

	items, total, err := h.items.List(ctx, uid, services.ItemQuery{
		Category:    c.Query("category"),
		Suitability: c.Query("weather_suitability"),
		Color:       c.Query("color"),
		Q:           c.Query("q"),
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	writeList(c, items, total)
}

// CreateClothingItem godoc
// @ID          createClothingItem
// @Summary     Create a clothing item
// @Tags        ClothingItems
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       body  body      handlers.ClothingItemRequest  true  "Item"
// @Success     201   {object}  domain.ClothingItem
// @Failure     400   {object}  handlers.ErrorResponse  "Validation error"
// @Failure     401   {object}  handlers.ErrorResponse  "Unauthenticated"
// @Router      /clothing-items/ [post]
func (h *Handlers) CreateClothingItem(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	var req ClothingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	it, err := h.items.Create(c.Request.Context(), uid, req.input())
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, http.StatusCreated, it)
}

// GetClothingItem godoc
// @ID          getClothingItem
// @Summary     Get a clothing item
// @Tags        ClothingItems
// @Produce     json
// @Security    TokenAuth
// @Param       id   path      int  true  "Item ID"
// @Success     200  {object}  domain.ClothingItem
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /clothing-items/{id}/ [get]
func (h *Handlers) GetClothingItem(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	id, valid := pathID(c, "clothing item not found")
	if !valid {
		return
	}
	it, err := h.items.Get(c.Request.Context(), uid, id)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, http.StatusOK, it)
}

// UpdateClothingItem godoc
// @ID          updateClothingItem
// @Summary     Update a clothing item
// @Description PUT replaces every field (required ones must be present); PATCH changes only the fields sent.
// @Tags        ClothingItems
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       id    path      int                           true  "Item ID"
// @Param       body  body      handlers.ClothingItemRequest  true  "Fields"
// @Success     200   {object}  domain.ClothingItem
// @Failure     400   {object}  handlers.ErrorResponse  "Validation error"
// @Failure     404   {object}  handlers.ErrorResponse  "Not found"
// @Router      /clothing-items/{id}/ [put]
// @Router      /clothing-items/{id}/ [patch]
func (h *Handlers) UpdateClothingItem(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	id, valid := pathID(c, "clothing item not found")
	if !valid {
		return
	}
	var req ClothingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	partial := c.Request.Method == http.MethodPatch
	it, err := h.items.Update(c.Request.Context(), uid, id, req.input(), partial)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, http.StatusOK, it)
}

// DeleteClothingItem godoc
// @ID          deleteClothingItem
// @Summary     Delete a clothing item
// @Description Also removes the item from the wear-logs that reference it.
// @Tags        ClothingItems
// @Security    TokenAuth
// @Param       id   path      int  true  "Item ID"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Not found"
// @Router      /clothing-items/{id}/ [delete]
func (h *Handlers) DeleteClothingItem(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	id, valid := pathID(c, "clothing item not found")
	if !valid {
		return
	}
	if err := h.items.Delete(c.Request.Context(), uid, id); err != nil {
		serviceError(c, err)
		return
	}
	noContent(c)
}

// Suggestions godoc
// @ID          clothingSuggestions
// @Summary     Suggest items for the current weather
// @Description Reads current conditions and returns up to five of the caller's items for that temperature band, least recently worn first.
// @Tags        ClothingItems
// @Produce     json
// @Security    TokenAuth
// @Param       city      query     string  false  "City name"
// @Param       zip_code  query     string  false  "US zip code"
// @Success     200  {object}  handlers.SuggestionsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing location or API key"
// @Failure     503  {object}  handlers.ErrorResponse  "Weather unavailable"
// @Router      /clothing-items/suggestions/ [get]
func (h *Handlers) Suggestions(c *gin.Context) {
	uid, authed := userID(c)
	if !authed {
		return
	}
	cur, picks, err := h.items.Suggestions(c.Request.Context(), uid, weather.Location{
		City:    c.Query("city"),
		ZipCode: c.Query("zip_code"),
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	if picks == nil {
		picks = []domain.ClothingItem{}
	}
	ok(c, http.StatusOK, SuggestionsResponse{
		Weather: CurrentWeather{
			Temperature: cur.Temperature,
			Condition:   cur.Condition,
			Description: cur.Description,
			Humidity:    cur.Humidity,
			WindSpeed:   cur.WindSpeed,
		},
		Suggestions: picks,
	})
}
