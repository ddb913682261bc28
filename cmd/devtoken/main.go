// Command devtoken prints a signed bearer token for local testing.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/infrastructure/auth"
	"marketplace_escrow/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run signs with the same secret and issuer the API validates against.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("devtoken", flag.ContinueOnError)
	id := fs.String("id", "", "user id (token subject)")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email")
	role := fs.String("role", "", "role, e.g. admin")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	token, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer).Issue(entities.Actor{
		ID:    *id,
		Name:  *name,
		Email: *email,
		Role:  *role,
	}, *ttl)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
