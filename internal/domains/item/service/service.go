package service

import (
	"context"
	"fmt"
	"time"

	"lostfound-backend/internal/domains/item/model"
	"lostfound-backend/internal/domains/item/repository"
	"lostfound-backend/internal/infrastructure/storage"
	"lostfound-backend/pkg/logger"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type itemService struct {
	itemRepo  repository.ItemRepository
	blobs     storage.BlobStore
	baseURL   string
	opTimeout time.Duration
}

func NewItemService(
	itemRepo repository.ItemRepository,
	blobs storage.BlobStore,
	baseURL string,
	opTimeout time.Duration,
) ServiceInterface {
	return &itemService{
		itemRepo:  itemRepo,
		blobs:     blobs,
		baseURL:   baseURL,
		opTimeout: opTimeout,
	}
}

// opCtx bounds every database/blob round-trip with a deterministic timeout.
func (s *itemService) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// =====================================================
// LIST ITEMS
// =====================================================

func (s *itemService) ListItems(ctx context.Context) ([]model.ItemResponse, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	responses := make([]model.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, item.ToResponse(s.baseURL))
	}

	return responses, nil
}

// =====================================================
// CREATE ITEM
// =====================================================

func (s *itemService) CreateItem(ctx context.Context, req model.CreateItemRequest) error {
	// Step 1: Required fields
	if err := req.Validate(); err != nil {
		return model.NewMissingFieldError(err.Error())
	}

	// Step 2: Date format
	itemDate, err := time.Parse(model.DateLayout, req.ItemDate)
	if err != nil {
		return model.NewInvalidDateError(req.ItemDate)
	}

	// Step 3: Insert. Status and posted_at come from column defaults.
	item := &model.Item{
		Type:        model.ItemType(req.ItemType),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ItemDate:    itemDate,
		ContactInfo: req.ContactInfo,
		ImageURL:    req.ImageURL,
		PostedBy:    req.PostedByUserID,
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// =====================================================
// UPDATE ITEM
// =====================================================

func (s *itemService) UpdateItem(
	ctx context.Context,
	itemID int64,
	req model.UpdateItemRequest,
	newImage *model.ImagePayload,
) error {
	// Step 1: Required fields
	if err := req.Validate(); err != nil {
		return model.NewMissingFieldError(err.Error())
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	// Step 2: Current owner and image
	own, err := s.itemRepo.GetOwnership(ctx, itemID)
	if err != nil {
		if err == model.ErrItemNotFound {
			return model.NewItemNotFoundError()
		}
		return fmt.Errorf("failed to look up item: %w", err)
	}

	// Step 3: Ownership check before anything mutates
	if own.PostedBy != req.PostedByUserID {
		return model.NewForbiddenError()
	}

	// Step 4: Date format, still before any mutation
	itemDate, err := time.Parse(model.DateLayout, req.ItemDate)
	if err != nil {
		return model.NewInvalidDateError(req.ItemDate)
	}

	// Step 5: Store the new image, when one was supplied. Without one the
	// stored image_url carries over unchanged.
	imageURL := own.ImageURL
	newBlobStored := false
	if newImage != nil && len(newImage.Data) > 0 {
		stored, err := s.blobs.Store(ctx, newImage.Data, newImage.Ext)
		if err != nil {
			return fmt.Errorf("failed to store image: %w", err)
		}
		imageURL = &stored
		newBlobStored = true
	}

	// Step 6: Single replacement statement
	upd := model.ItemUpdate{
		Type:        model.ItemType(req.ItemType),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ItemDate:    itemDate,
		ContactInfo: req.ContactInfo,
		ImageURL:    imageURL,
		Status:      model.Status(req.Status),
	}

	if err := s.itemRepo.Update(ctx, itemID, upd); err != nil {
		if err == model.ErrItemNotFound {
			// Row vanished between the ownership check and the update.
			return model.NewItemNotFoundError()
		}
		return fmt.Errorf("failed to update item: %w", err)
	}

	// Step 7: The replaced blob goes away only after the row update stuck.
	if newBlobStored && own.ImageURL != nil && *own.ImageURL != "" {
		if err := s.blobs.Delete(ctx, *own.ImageURL); err != nil {
			logger.Warn("failed to delete replaced image blob", map[string]interface{}{
				"item_id":   itemID,
				"image_url": *own.ImageURL,
				"error":     err.Error(),
			})
		}
	}

	return nil
}

// =====================================================
// DELETE ITEM
// =====================================================

func (s *itemService) DeleteItem(ctx context.Context, itemID int64, requestingUser string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	own, err := s.itemRepo.GetOwnership(ctx, itemID)
	if err != nil {
		if err == model.ErrItemNotFound {
			return model.NewItemNotFoundError()
		}
		return fmt.Errorf("failed to look up item: %w", err)
	}

	if own.PostedBy != requestingUser {
		return model.NewForbiddenError()
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		if err == model.ErrItemNotFound {
			return model.NewItemNotFoundError()
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}

	// Best-effort blob removal; the row-level outcome is authoritative.
	if own.ImageURL != nil && *own.ImageURL != "" {
		if err := s.blobs.Delete(ctx, *own.ImageURL); err != nil {
			logger.Warn("failed to delete image blob of removed item", map[string]interface{}{
				"item_id":   itemID,
				"image_url": *own.ImageURL,
				"error":     err.Error(),
			})
		}
	}

	return nil
}
