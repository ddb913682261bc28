package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"marketplace_escrow/internal/infrastructure/auth"
	"marketplace_escrow/internal/infrastructure/config"
)

func TestRun(t *testing.T) {
	t.Run("token validates with the api config", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("JWT_ISSUER", "staging-escrow")
		t.Setenv("STORAGE_DRIVER", "memory")

		var out bytes.Buffer
		if err := run([]string{"-id", "u1", "-name", "Ana", "-role", "admin"}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		actor, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer).Validate(strings.TrimSpace(out.String()))
		if err != nil {
			t.Fatalf("token rejected: %v", err)
		}
		if actor.ID != "u1" || actor.Role != "admin" {
			t.Fatalf("unexpected actor: %+v", actor)
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		var out bytes.Buffer
		if err := run([]string{"-id", "u1"}, &out); !errors.Is(err, config.ErrMissingJWTSecret) {
			t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
		}
		if out.Len() != 0 {
			t.Fatalf("expected no output, got %q", out.String())
		}
	})
}
