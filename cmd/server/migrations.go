package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/norsklab/norsk-api/internal/config"
	"github.com/norsklab/norsk-api/internal/platform/postgres"
)

// ErrDatabaseRequired is returned when a migration is requested without a
// database URL.
var ErrDatabaseRequired = errors.New("database URL is required for migrations")

// runMigrations executes one goose command against the configured database.
func runMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if !slices.Contains(postgres.MigrationCommands, command) {
		return fmt.Errorf("unknown migration command %q", command)
	}
	if cfg.Database.URL == "" {
		return ErrDatabaseRequired
	}

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("failed to close database", slog.String("error", cerr.Error()))
		}
	}()

	logger.Info("running migrations", slog.String("command", command))
	if err := postgres.Migrate(ctx, db, command, logger); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	logger.Info("migrations finished", slog.String("command", command))
	return nil
}
