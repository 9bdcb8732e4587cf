package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/norsklab/norsk-api/internal/store"
)

// SQLSTATE codes from the integrity constraint violation class.
const (
	notNullViolationCode    = "23502"
	foreignKeyViolationCode = "23503"
	uniqueViolationCode     = "23505"
	checkViolationCode      = "23514"
)

var constraintSentinels = map[string]error{
	notNullViolationCode:    store.ErrInvalidEntity,
	foreignKeyViolationCode: store.ErrInvalidEntity,
	uniqueViolationCode:     store.ErrDuplicate,
	checkViolationCode:      store.ErrInvalidEntity,
}

// MapError translates driver errors into store sentinels. The original error
// stays in the message for logs; anything unrecognised is returned as is.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	sentinel, ok := constraintSentinels[pgErr.Code]
	if !ok {
		return err
	}
	if target := violatedObject(pgErr); target != "" {
		return fmt.Errorf("%w (%s): %v", sentinel, target, err)
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

func violatedObject(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return pgErr.ColumnName
}
