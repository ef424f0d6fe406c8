package upload

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LogRepository records successful uploads in the item_images audit table.
type LogRepository interface {
	Record(ctx context.Context, userID, imageURL string) error
}

type postgresLogRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLogRepository(pool *pgxpool.Pool) LogRepository {
	return &postgresLogRepository{pool: pool}
}

func (r *postgresLogRepository) Record(ctx context.Context, userID, imageURL string) error {
	query := `INSERT INTO item_images (user_id, image_url) VALUES ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, userID, imageURL); err != nil {
		return fmt.Errorf("failed to record upload: %w", err)
	}

	return nil
}
