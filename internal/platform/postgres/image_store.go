package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/platform/logger"
	"github.com/Hachi2308/coloring/internal/store"
)

// PostgresImageStore implements the store.ImageStore interface using
// PostgreSQL.
type PostgresImageStore struct {
	db store.DBTX
}

// NewPostgresImageStore creates a new PostgresImageStore.
func NewPostgresImageStore(db store.DBTX) *PostgresImageStore {
	return &PostgresImageStore{
		db: db,
	}
}

// PutImage saves a history entry. An existing entry with the same ID is
// overwritten, which lets retried writes stay idempotent.
func (s *PostgresImageStore) PutImage(ctx context.Context, img *domain.GeneratedImage) error {
	log := logger.FromContext(ctx)

	if img == nil {
		return store.ErrInvalidEntity
	}

	query := `
		INSERT INTO images (id, url, prompt, created_at, resolution, print_size)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET url = EXCLUDED.url,
		    prompt = EXCLUDED.prompt,
		    resolution = EXCLUDED.resolution,
		    print_size = EXCLUDED.print_size
	`

	_, err := s.db.ExecContext(ctx, query,
		img.ID,
		img.URL,
		img.Prompt,
		img.Timestamp,
		img.Resolution,
		img.PrintSize,
	)
	if err != nil {
		log.Error("failed to save image",
			"image_id", img.ID,
			"error", err)
		return fmt.Errorf("failed to save image: %w", mapError(err, store.ErrImageNotFound))
	}

	return nil
}

// GetAllImages returns every history entry, newest first.
func (s *PostgresImageStore) GetAllImages(ctx context.Context) ([]*domain.GeneratedImage, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, url, prompt, created_at, resolution, print_size
		FROM images
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query images", "error", err)
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var images []*domain.GeneratedImage
	for rows.Next() {
		var img domain.GeneratedImage
		if err := rows.Scan(
			&img.ID,
			&img.URL,
			&img.Prompt,
			&img.Timestamp,
			&img.Resolution,
			&img.PrintSize,
		); err != nil {
			log.Error("failed to scan image row", "error", err)
			return nil, fmt.Errorf("failed to scan image row: %w", err)
		}
		images = append(images, &img)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating image rows", "error", err)
		return nil, fmt.Errorf("error iterating image rows: %w", err)
	}

	return images, nil
}

// DeleteImage removes a single history entry.
func (s *PostgresImageStore) DeleteImage(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := s.db.ExecContext(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete image",
			"image_id", id,
			"error", err)
		return fmt.Errorf("failed to delete image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrImageNotFound
	}

	return nil
}

// ClearImages removes every history entry.
func (s *PostgresImageStore) ClearImages(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM images`); err != nil {
		log.Error("failed to clear images", "error", err)
		return fmt.Errorf("failed to clear images: %w", err)
	}

	return nil
}
