package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Hachi2308/coloring/internal/store"
)

// PostgreSQL error codes used for error mapping.
const (
	pgErrUniqueViolation = "23505"
	pgErrNotNullViolated = "23502"
)

// mapError converts driver-level errors to the store package's sentinel
// errors so callers never depend on pgx directly.
func mapError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation, pgErrNotNullViolated:
			return fmt.Errorf("%w: %s", store.ErrInvalidEntity, pgErr.Code)
		}
	}

	return err
}
