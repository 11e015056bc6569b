package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/Hachi2308/coloring/internal/store"
)

// Compile-time interface conformance.
var (
	_ store.ImageStore     = (*PostgresImageStore)(nil)
	_ store.FailedJobStore = (*PostgresFailedJobStore)(nil)
)

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, mapError(nil, store.ErrImageNotFound))
	})

	t.Run("no rows maps to the given not-found sentinel", func(t *testing.T) {
		t.Parallel()
		err := mapError(sql.ErrNoRows, store.ErrFailedJobNotFound)
		assert.ErrorIs(t, err, store.ErrFailedJobNotFound)
	})

	t.Run("constraint violations map to invalid entity", func(t *testing.T) {
		t.Parallel()
		for _, code := range []string{pgErrUniqueViolation, pgErrNotNullViolated} {
			err := mapError(&pgconn.PgError{Code: code}, store.ErrImageNotFound)
			assert.ErrorIs(t, err, store.ErrInvalidEntity, code)
		}
	})

	t.Run("wrapped driver errors are unwrapped", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("query failed: %w", &pgconn.PgError{Code: pgErrUniqueViolation})
		assert.ErrorIs(t, mapError(wrapped, store.ErrImageNotFound), store.ErrInvalidEntity)
	})

	t.Run("other errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection reset")
		assert.Equal(t, cause, mapError(cause, store.ErrImageNotFound))
	})
}
