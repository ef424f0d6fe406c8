package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lostfound-backend/internal/domains/item/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresItemRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresItemRepository(pool *pgxpool.Pool) ItemRepository {
	return &postgresItemRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresItemRepository) Create(ctx context.Context, item *model.Item) error {
	query := `
		INSERT INTO items (
			item_type, title, description, location,
			item_date, contact_info, image_url, posted_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		item.Type,
		item.Title,
		item.Description,
		item.Location,
		item.ItemDate,
		item.ContactInfo,
		item.ImageURL,
		item.PostedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresItemRepository) List(ctx context.Context) ([]*model.Item, error) {
	query := `
		SELECT
			item_id, item_type, title, description, location,
			item_date, contact_info, image_url, status,
			posted_by, posted_at
		FROM items
		ORDER BY posted_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*model.Item
	for rows.Next() {
		item := &model.Item{}
		err := rows.Scan(
			&item.ID,
			&item.Type,
			&item.Title,
			&item.Description,
			&item.Location,
			&item.ItemDate,
			&item.ContactInfo,
			&item.ImageURL,
			&item.Status,
			&item.PostedBy,
			&item.PostedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// =====================================================
// GET OWNERSHIP
// =====================================================

func (r *postgresItemRepository) GetOwnership(ctx context.Context, id int64) (*model.Ownership, error) {
	query := `SELECT posted_by, image_url FROM items WHERE item_id = $1`

	own := &model.Ownership{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&own.PostedBy, &own.ImageURL)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item ownership: %w", err)
	}

	return own, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresItemRepository) Update(ctx context.Context, id int64, upd model.ItemUpdate) error {
	query := `
		UPDATE items
		SET
			item_type = $2,
			title = $3,
			description = $4,
			location = $5,
			item_date = $6,
			contact_info = $7,
			image_url = $8,
			status = $9
		WHERE item_id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		id,
		upd.Type,
		upd.Title,
		upd.Description,
		upd.Location,
		upd.ItemDate,
		upd.ContactInfo,
		upd.ImageURL,
		upd.Status,
	)

	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}

	return nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresItemRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE item_id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}

	return nil
}
