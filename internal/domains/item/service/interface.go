package service

import (
	"context"

	"lostfound-backend/internal/domains/item/model"
)

// ServiceInterface is the item board business logic consumed by the HTTP
// layer.
type ServiceInterface interface {
	// ListItems returns every posting, newest first, with computed
	// fullImageUrl values.
	ListItems(ctx context.Context) ([]model.ItemResponse, error)

	// CreateItem validates the request and inserts a new ACTIVE posting.
	CreateItem(ctx context.Context, req model.CreateItemRequest) error

	// UpdateItem replaces every mutable field of an item. Only the posting
	// user may call it; a non-nil newImage is stored first and the replaced
	// blob is removed best-effort after the row update succeeds.
	UpdateItem(ctx context.Context, itemID int64, req model.UpdateItemRequest, newImage *model.ImagePayload) error

	// DeleteItem removes an item and, best-effort, its image blob. Only the
	// posting user may call it.
	DeleteItem(ctx context.Context, itemID int64, requestingUser string) error
}
