package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/norsklab/norsk-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// GetOrCreate returns the user with user.ID, inserting it first when it
	// does not exist. An existing row is returned unchanged. Safe to call
	// concurrently for the same ID.
	GetOrCreate(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// WithTx returns a UserStore that runs its queries on tx.
	WithTx(tx *sql.Tx) UserStore
}
