// Package services – AuthService
//
// AuthService owns registration, login and token resolution. Passwords are
// stored as bcrypt hashes; each user has at most one opaque token, minted on
// first register/login and returned unchanged afterwards until logout.
package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tbourn/closet-backend/internal/domain"
	"github.com/tbourn/closet-backend/internal/repo"
)

const (
	minPasswordLen    = 8
	maxUsernameLen    = 150
	defaultTokenBytes = 20
)

var usernameRE = regexp.MustCompile(`^[\w.@+-]+$`)

// RegisterInput is the payload accepted by Register.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// AuthService provides account operations.
type AuthService struct {
	DB *gorm.DB

	// TokenBytes is the number of random bytes per token; keys are hex, so a
	// token is twice as long.
	TokenBytes int
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// NewAuthService constructs an AuthService with default token size and cost.
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db, TokenBytes: defaultTokenBytes, BcryptCost: bcrypt.DefaultCost}
}

// Register creates the user and its token in one transaction.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.AuthToken, *domain.User, error) {
	tr := otel.Tracer("services/AuthService")
	ctx, span := tr.Start(ctx, "Register")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	fe := fieldErrors{}
	switch {
	case in.Username == "":
		fe.add("username", "This field is required.")
	case utf8.RuneCountInString(in.Username) > maxUsernameLen:
		fe.add("username", fmt.Sprintf("Ensure this field has no more than %d characters.", maxUsernameLen))
	case !usernameRE.MatchString(in.Username):
		fe.add("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}
	switch {
	case in.Password == "":
		fe.add("password", "This field is required.")
	case utf8.RuneCountInString(in.Password) < minPasswordLen:
		fe.add("password", fmt.Sprintf("Ensure this field has at least %d characters.", minPasswordLen))
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		fe.add("email", "Enter a valid email address.")
	}
	if err := fe.Err(); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
	}
	var tok *domain.AuthToken
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.CreateUser(ctx, tx, u); err != nil {
			return err
		}
		t, err := repo.GetOrCreateToken(ctx, tx, u.ID, s.newKey)
		if err != nil {
			return err
		}
		tok = t
		return nil
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, nil, &ValidationError{Fields: map[string]string{
			"username": "A user with that username already exists.",
		}}
	}
	if err != nil {
		return nil, nil, err
	}
	span.SetAttributes(attribute.Int64("user.id", int64(u.ID)))
	return tok, u, nil
}

// Login checks the credentials and returns the user's token, minting one if
// the user has none.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.AuthToken, *domain.User, error) {
	tr := otel.Tracer("services/AuthService")
	ctx, span := tr.Start(ctx, "Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, nil, ErrMissingCredentials
	}
	u, err := repo.GetUserByUsername(ctx, s.DB, username)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}
	tok, err := repo.GetOrCreateToken(ctx, s.DB, u.ID, s.newKey)
	if err != nil {
		return nil, nil, err
	}
	span.SetAttributes(attribute.Int64("user.id", int64(u.ID)))
	return tok, u, nil
}

// Authenticate resolves a token key to its user.
func (s *AuthService) Authenticate(ctx context.Context, key string) (*domain.User, error) {
	tr := otel.Tracer("services/AuthService")
	ctx, span := tr.Start(ctx, "Authenticate", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrUnauthenticated
	}
	u, err := repo.GetUserByToken(ctx, s.DB, key)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	return u, err
}

// Logout revokes the user's token.
func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	return repo.DeleteToken(ctx, s.DB, userID)
}

// Me returns the user's profile.
func (s *AuthService) Me(ctx context.Context, userID uint) (*domain.User, error) {
	u, err := repo.GetUserByID(ctx, s.DB, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	return u, err
}

// newKey returns a random hex token.
func (s *AuthService) newKey() (string, error) {
	n := s.TokenBytes
	if n <= 0 {
		n = defaultTokenBytes
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (s *AuthService) cost() int {
	if s.BcryptCost == 0 {
		return bcrypt.DefaultCost
	}
	return s.BcryptCost
}
