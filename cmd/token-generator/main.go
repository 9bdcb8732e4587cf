// Package main mints a signed identity token for local testing against
// the API. The signing secret comes from the usual configuration
// (NORSK_AUTH_JWT_SECRET, .env or config.yaml).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/norsklab/norsk-api/internal/config"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/service/auth"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("token-generator: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token-generator", flag.ContinueOnError)
	email := fs.String("email", "", "email claim (required)")
	name := fs.String("name", "", "display name claim")
	userID := fs.String("user-id", "", "user ID claim (random when empty)")
	lifetime := fs.Duration("lifetime", 0, "token lifetime (defaults to the configured lifetime)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	identity, err := buildIdentity(*userID, *email, *name)
	if err != nil {
		return err
	}

	svc, err := newService(cfg.Auth, *lifetime)
	if err != nil {
		return err
	}

	token, err := svc.GenerateToken(context.Background(), identity)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Fprintln(out, token)
	return nil
}

func buildIdentity(rawID, email, name string) (domain.Identity, error) {
	var id uuid.UUID
	if rawID != "" {
		parsed, err := uuid.Parse(rawID)
		if err != nil {
			return domain.Identity{}, fmt.Errorf("%w: user-id %q", domain.ErrInvalidID, rawID)
		}
		id = parsed
	}

	// Same email rules as the progress store.
	user, err := domain.NewUser(id, email, name)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Authenticated(user.ID, user.Email, user.Name), nil
}

func newService(cfg config.AuthConfig, lifetime time.Duration) (auth.JWTService, error) {
	if lifetime <= 0 {
		return auth.NewJWTService(cfg)
	}
	return auth.NewJWTServiceWithClock(cfg.JWTSecret, lifetime, time.Now)
}
