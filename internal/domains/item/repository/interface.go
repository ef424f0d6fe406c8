package repository

import (
	"context"

	"lostfound-backend/internal/domains/item/model"
)

// =====================================================
// ITEM REPOSITORY INTERFACE
// =====================================================

type ItemRepository interface {
	// Create inserts a new posting. Status and posted_at come from column
	// defaults; the generated id is not surfaced.
	Create(ctx context.Context, item *model.Item) error

	// List returns every posting, newest first.
	List(ctx context.Context) ([]*model.Item, error)

	// GetOwnership fetches posted_by and image_url for the pre-mutation
	// checks. Returns model.ErrItemNotFound when the row is absent.
	GetOwnership(ctx context.Context, id int64) (*model.Ownership, error)

	// Update replaces the mutable columns in a single statement. Returns
	// model.ErrItemNotFound when no row was affected.
	Update(ctx context.Context, id int64, upd model.ItemUpdate) error

	// Delete removes the row. Returns model.ErrItemNotFound when no row
	// was affected.
	Delete(ctx context.Context, id int64) error
}
