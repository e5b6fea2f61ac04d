// Package services defines the business logic for accounts, the clothing
// catalog, wear-logs and weather-driven suggestions. This file centralizes
// the service-level error values so that they can be consistently returned
// by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import (
	"errors"
	"sort"
	"strings"
)

// Account errors.
var (
	// ErrInvalidCredentials is returned by Login when the username is unknown
	// or the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingCredentials is returned by Login when username or password is absent.
	ErrMissingCredentials = errors.New("please provide both username and password")

	// ErrUnauthenticated is returned by Authenticate for unknown tokens.
	ErrUnauthenticated = errors.New("invalid token")
)

// Catalog errors.
var (
	// ErrItemNotFound indicates that the clothing item does not exist or is
	// not part of the caller's catalog.
	ErrItemNotFound = errors.New("clothing item not found")
)

// Wear-log errors.
var (
	// ErrWearLogNotFound indicates that the wear-log does not exist or belongs
	// to another user.
	ErrWearLogNotFound = errors.New("wear log not found")

	// ErrItemsNotFound is returned when a wear-log references an item id that
	// does not exist.
	ErrItemsNotFound = errors.New("one or more items not found")

	// ErrForeignItems is returned when a wear-log references an item owned by
	// somebody else.
	ErrForeignItems = errors.New("cannot create wear log with items that don't belong to you")
)

// Weather errors.
var (
	// ErrWeatherUnavailable wraps any failure to obtain weather data.
	ErrWeatherUnavailable = errors.New("could not fetch weather data")
)

// ErrValidation is matched (errors.Is) by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError carries per-field messages for invalid input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// fieldErrors accumulates validation messages; Err returns nil when empty.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

func (f fieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: map[string]string(f)}
}
