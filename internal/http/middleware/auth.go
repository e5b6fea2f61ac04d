// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the bearer-token guard. Clients send
//
//	Authorization: Token <key>
//
// (the scheme used by the bundled frontend) or the equivalent Bearer scheme.
// On success the user's id is stored under the "userID" Gin context key and
// the user record under "user".
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/services"
)

const (
	ctxKeyUserID = "userID"
	ctxKeyUser   = "user"
)

// Authenticator resolves an opaque token key to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, key string) (*domain.User, error)
}

// TokenFromHeader extracts the key from an Authorization header value.
// Both "Token" and "Bearer" schemes are accepted, case-insensitively.
func TokenFromHeader(h string) (string, bool) {
	scheme, key, found := strings.Cut(strings.TrimSpace(h), " ")
	if !found {
		return "", false
	}
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	key = strings.TrimSpace(key)
	return key, key != ""
}

// Auth rejects requests without a valid token with 401. Lookup failures
// other than an unknown token are 500s.
func Auth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := TokenFromHeader(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "Authentication credentials were not provided.")
			return
		}
		u, err := a.Authenticate(c.Request.Context(), key)
		switch {
		case errors.Is(err, services.ErrUnauthenticated), err == nil && u == nil:
			abortUnauthorized(c, "Invalid token.")
			return
		case err != nil:
			lg := LoggerFrom(c)
			lg.Error().Err(err).Msg("authenticate token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "internal_error",
				"error":      "internal server error",
			})
			return
		}
		c.Set(ctxKeyUserID, u.ID)
		c.Set(ctxKeyUser, u)
		if v, ok := c.Get("logger"); ok {
			if lg, ok := v.(*zerolog.Logger); ok {
				scoped := lg.With().Uint("user_id", u.ID).Logger()
				c.Set("logger", &scoped)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id, if any.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Token realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       "unauthorized",
		"error":      msg,
	})
}
