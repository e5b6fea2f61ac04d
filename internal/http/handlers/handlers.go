// Package handlers provides HTTP handler implementations for the public API.
//
// Handlers are transport-thin: they bind and validate input, call the
// application services through the interfaces below, and translate results
// into HTTP responses (including conditional responses and idempotent
// replays). Every handler except the account and health endpoints expects the
// auth middleware to have run.
package handlers

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/http/middleware"
	"github.com/tbourn/closet-backend/internal/services"
	"github.com/tbourn/closet-backend/internal/utils"
	"github.com/tbourn/closet-backend/internal/weather"
)

//
// Service contracts (context-aware)
//

// AuthService defines account operations consumed by HTTP handlers.
type AuthService interface {
	// Register creates a user and issues its token.
	Register(ctx context.Context, in services.RegisterInput) (*domain.AuthToken, *domain.User, error)
	// Login verifies credentials and returns the user's (possibly existing) token.
	Login(ctx context.Context, username, password string) (*domain.AuthToken, *domain.User, error)
	// Logout revokes the user's token.
	Logout(ctx context.Context, userID uint) error
	// Me loads the user's profile.
	Me(ctx context.Context, userID uint) (*domain.User, error)
}

// ClothingService defines catalog operations. All calls are scoped to ownerID.
type ClothingService interface {
	List(ctx context.Context, ownerID uint, q services.ItemQuery) ([]domain.ClothingItem, int64, error)
	Get(ctx context.Context, ownerID, id uint) (*domain.ClothingItem, error)
	Create(ctx context.Context, ownerID uint, in services.ItemInput) (*domain.ClothingItem, error)
	Update(ctx context.Context, ownerID, id uint, in services.ItemInput, partial bool) (*domain.ClothingItem, error)
	Delete(ctx context.Context, ownerID, id uint) error
	// Suggestions returns current conditions for loc and up to five fitting items.
	Suggestions(ctx context.Context, ownerID uint, loc weather.Location) (weather.Current, []domain.ClothingItem, error)
}

// WearLogService defines wear-log operations. All calls are scoped to ownerID.
type WearLogService interface {
	// Create records a wear-log; replayed is true when idemKey matched an
	// earlier creation and that wear-log is returned instead.
	Create(ctx context.Context, ownerID uint, in services.WearLogInput, idemKey string) (*domain.WearLog, bool, error)
	List(ctx context.Context, ownerID uint, from, to string, page, pageSize int) ([]domain.WearLog, int64, error)
	Get(ctx context.Context, ownerID, id uint) (*domain.WearLog, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

// WeatherService is the read side of the daily weather cache.
type WeatherService interface {
	// GetForDate returns the cached (or freshly fetched) day; nil means today.
	GetForDate(ctx context.Context, date *domain.Date) (*domain.Weather, error)
	// List returns cached days, newest first.
	List(ctx context.Context, limit int) ([]domain.Weather, error)
}

//
// Handler wiring
//

// Handlers groups the API endpoints.
type Handlers struct {
	auth     AuthService
	items    ClothingService
	wearLogs WearLogService
	weather  WeatherService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(auth AuthService, items ClothingService, wearLogs WearLogService, w WeatherService) *Handlers {
	return &Handlers{auth: auth, items: items, wearLogs: wearLogs, weather: w}
}

const (
	defaultPageSize = 100
	maxPageSize     = 500

	// HeaderTotalCount carries the unpaginated match count of list endpoints.
	HeaderTotalCount = "X-Total-Count"
	// HeaderIdempotencyReplayed marks a response served from an earlier request.
	HeaderIdempotencyReplayed = "Idempotency-Replayed"
)

// userID returns the authenticated user id. Routes are mounted behind the auth
// middleware; a missing id aborts with 401.
func userID(c *gin.Context) (uint, bool) {
	uid, ok := middleware.UserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication credentials were not provided.")
	}
	return uid, ok
}

// pathID parses the :id path parameter; malformed ids are a 404 like any
// other id outside the caller's records.
func pathID(c *gin.Context, notFound string) (uint, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, ErrCodeNotFound, notFound)
	}
	return id, ok
}

// clampPagination parses and bounds page and page_size query params.
func clampPagination(c *gin.Context) (page, pageSize int) {
	return utils.ClampPage(c.Query("page"), c.Query("page_size"), defaultPageSize, maxPageSize)
}

// writeList emits a JSON array and the total match count header.
func writeList[T any](c *gin.Context, rows []T, total int64) {
	if rows == nil {
		rows = []T{}
	}
	c.Header(HeaderTotalCount, fmt.Sprint(total))
	ok(c, http.StatusOK, rows)
}

// weakETag builds a weak validator from a collection's version marker and the
// raw query, so different filters and pages get different tags.
func weakETag(kind string, uid uint, latest *time.Time, rawQuery string, counts ...int64) string {
	var ts int64
	if latest != nil {
		ts = latest.UnixNano()
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(rawQuery))
	n := make([]string, len(counts))
	for i, c := range counts {
		n[i] = strconv.FormatInt(c, 10)
	}
	return fmt.Sprintf(`W/"%s:%d:%s:%d:%08x"`, kind, uid, strings.Join(n, "."), ts, h.Sum32())
}

// notModified sets ETag and reports whether If-None-Match already matches it.
func notModified(c *gin.Context, etag string) bool {
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}
