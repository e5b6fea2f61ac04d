package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T) *AuthService {
	s := NewAuthService(newSvcDB(t))
	s.BcryptCost = bcrypt.MinCost
	return s
}

func TestRegister_CreatesUserAndToken(t *testing.T) {
	s := newAuth(t)
	tok, u, err := s.Register(context.Background(), RegisterInput{Username: " alice ", Password: "s3cretpass", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == 0 || u.Username != "alice" || u.PasswordHash == "s3cretpass" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if len(tok.Key) != 40 || tok.UserID != u.ID {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestRegister_Validation(t *testing.T) {
	s := newAuth(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"missing username", RegisterInput{Password: "longenough"}, "username"},
		{"missing password", RegisterInput{Username: "bob"}, "password"},
		{"short password", RegisterInput{Username: "bob", Password: "short"}, "password"},
		{"bad username chars", RegisterInput{Username: "bob smith", Password: "longenough"}, "username"},
		{"bad email", RegisterInput{Username: "bob", Password: "longenough", Email: "nope"}, "email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := s.Register(ctx, tc.in)
			var ve *ValidationError
			if !errors.As(err, &ve) || !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := ve.Fields[tc.field]; !ok {
				t.Fatalf("expected %q in %v", tc.field, ve.Fields)
			}
		})
	}

	if _, _, err := s.Register(ctx, RegisterInput{Username: "dup", Password: "longenough"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, _, err := s.Register(ctx, RegisterInput{Username: "dup", Password: "longenough"})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Fields["username"] == "" {
		t.Fatalf("expected username taken error, got %v", err)
	}
}

func TestLogin_ReturnsSameToken_AndRejectsBadCredentials(t *testing.T) {
	s := newAuth(t)
	ctx := context.Background()
	regTok, _, err := s.Register(ctx, RegisterInput{Username: "carol", Password: "password1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	tok, u, err := s.Login(ctx, "carol", "password1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tok.Key != regTok.Key || u.Username != "carol" {
		t.Fatalf("login should reuse the token: %q vs %q", tok.Key, regTok.Key)
	}

	if _, _, err := s.Login(ctx, "carol", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := s.Login(ctx, "ghost", "password1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, _, err := s.Login(ctx, "", "x"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthenticate_Logout_Me(t *testing.T) {
	s := newAuth(t)
	ctx := context.Background()
	tok, u, err := s.Register(ctx, RegisterInput{Username: "dave", Password: "password1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := s.Authenticate(ctx, tok.Key)
	if err != nil || got.ID != u.ID {
		t.Fatalf("Authenticate: %v %+v", err, got)
	}
	if _, err := s.Authenticate(ctx, "  "); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for blank key, got %v", err)
	}

	me, err := s.Me(ctx, u.ID)
	if err != nil || me.Username != "dave" {
		t.Fatalf("Me: %v %+v", err, me)
	}

	if err := s.Logout(ctx, u.ID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := s.Authenticate(ctx, tok.Key); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("token should be revoked, got %v", err)
	}

	// A new login mints a fresh token.
	tok2, _, err := s.Login(ctx, "dave", "password1")
	if err != nil || tok2.Key == tok.Key {
		t.Fatalf("expected a new token after logout: %v %q", err, tok2.Key)
	}
}

func TestNewKey_HonorsTokenBytes(t *testing.T) {
	s := &AuthService{TokenBytes: 32}
	k, err := s.newKey()
	if err != nil || len(k) != 64 {
		t.Fatalf("newKey: %q %v", k, err)
	}
}
