package auth

import (
	"errors"
	"testing"
	"time"

	"marketplace_escrow/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("s3cret", "marketplace-escrow")
	actor := entities.Actor{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: "ADMIN"}

	token, err := svc.Issue(actor, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "u1" || got.Email != "ana@example.com" || !got.IsAdmin() {
		t.Fatalf("unexpected actor: %+v", got)
	}
}

func TestTokenService_Rejects(t *testing.T) {
	svc := NewTokenService("s3cret", "marketplace-escrow")
	actor := entities.Actor{ID: "u1"}

	t.Run("expired", func(t *testing.T) {
		past := NewTokenService("s3cret", "marketplace-escrow")
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _ := past.Issue(actor, time.Hour)
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := NewTokenService("other", "marketplace-escrow").Issue(actor, time.Hour)
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, _ := NewTokenService("s3cret", "someone-else").Issue(actor, time.Hour)
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			Issuer:    "marketplace-escrow",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		if _, err := svc.Issue(entities.Actor{}, time.Hour); err == nil {
			t.Fatalf("expected error for empty actor id")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := svc.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
