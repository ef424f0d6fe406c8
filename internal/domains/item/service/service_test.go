package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lostfound-backend/internal/domains/item/model"
)

// =====================================================
// FAKES
// =====================================================

type fakeItemRepo struct {
	items     []*model.Item
	ownership map[int64]*model.Ownership

	created []*model.Item
	updated map[int64]model.ItemUpdate
	deleted []int64

	listErr   error
	updateErr error
	deleteErr error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		ownership: make(map[int64]*model.Ownership),
		updated:   make(map[int64]model.ItemUpdate),
	}
}

func (f *fakeItemRepo) Create(_ context.Context, item *model.Item) error {
	f.created = append(f.created, item)
	return nil
}

func (f *fakeItemRepo) List(_ context.Context) ([]*model.Item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeItemRepo) GetOwnership(_ context.Context, id int64) (*model.Ownership, error) {
	own, ok := f.ownership[id]
	if !ok {
		return nil, model.ErrItemNotFound
	}
	return own, nil
}

func (f *fakeItemRepo) Update(_ context.Context, id int64, upd model.ItemUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated[id] = upd
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBlobStore struct {
	stored    int
	deleted   []string
	storeErr  error
	deleteErr error
}

func (f *fakeBlobStore) Store(_ context.Context, _ []byte, ext string) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	f.stored++
	return fmt.Sprintf("/uploads/blob-%d%s", f.stored, ext), nil
}

func (f *fakeBlobStore) Delete(_ context.Context, relativeURL string) error {
	f.deleted = append(f.deleted, relativeURL)
	return f.deleteErr
}

func newService(repo *fakeItemRepo, blobs *fakeBlobStore) ServiceInterface {
	return NewItemService(repo, blobs, "http://localhost:8080", 5*time.Second)
}

func strPtr(s string) *string { return &s }

func validUpdateRequest(owner string) model.UpdateItemRequest {
	return model.UpdateItemRequest{
		ItemType:       "FOUND",
		Title:          "Black umbrella",
		Description:    strPtr("left at the library"),
		Location:       strPtr("Central Library, 2F"),
		ItemDate:       "2024-03-02",
		ContactInfo:    "010-1234-5678",
		Status:         "ACTIVE",
		PostedByUserID: owner,
	}
}

// =====================================================
// CREATE
// =====================================================

func TestCreateItem_Success(t *testing.T) {
	repo := newFakeItemRepo()
	svc := newService(repo, &fakeBlobStore{})

	req := model.CreateItemRequest{
		ItemType:       "LOST",
		Title:          "Student ID card",
		ItemDate:       "2024-03-01",
		ContactInfo:    "id-office@campus.edu",
		PostedByUserID: "u1001",
	}

	err := svc.CreateItem(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, model.ItemTypeLost, created.Type)
	assert.Equal(t, "Student ID card", created.Title)
	assert.Equal(t, "u1001", created.PostedBy)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), created.ItemDate)
}

func TestCreateItem_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CreateItemRequest)
	}{
		{"missing itemType", func(r *model.CreateItemRequest) { r.ItemType = "" }},
		{"missing title", func(r *model.CreateItemRequest) { r.Title = "" }},
		{"missing itemDate", func(r *model.CreateItemRequest) { r.ItemDate = "" }},
		{"missing contactInfo", func(r *model.CreateItemRequest) { r.ContactInfo = "" }},
		{"missing postedByUserId", func(r *model.CreateItemRequest) { r.PostedByUserID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeItemRepo()
			svc := newService(repo, &fakeBlobStore{})

			req := model.CreateItemRequest{
				ItemType:       "LOST",
				Title:          "Student ID card",
				ItemDate:       "2024-03-01",
				ContactInfo:    "id-office@campus.edu",
				PostedByUserID: "u1001",
			}
			tt.mutate(&req)

			err := svc.CreateItem(context.Background(), req)
			require.Error(t, err)

			var itemErr *model.ItemError
			require.ErrorAs(t, err, &itemErr)
			assert.Equal(t, model.ErrCodeMissingField, itemErr.Code)
			assert.Empty(t, repo.created, "no insert may happen on validation failure")
		})
	}
}

func TestCreateItem_InvalidDate(t *testing.T) {
	repo := newFakeItemRepo()
	svc := newService(repo, &fakeBlobStore{})

	req := model.CreateItemRequest{
		ItemType:       "LOST",
		Title:          "Student ID card",
		ItemDate:       "2024-13-40",
		ContactInfo:    "id-office@campus.edu",
		PostedByUserID: "u1001",
	}

	err := svc.CreateItem(context.Background(), req)
	require.Error(t, err)

	var itemErr *model.ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, model.ErrCodeInvalidDate, itemErr.Code)
	assert.Empty(t, repo.created)
}

// =====================================================
// UPDATE
// =====================================================

func TestUpdateItem_NotFound(t *testing.T) {
	repo := newFakeItemRepo()
	blobs := &fakeBlobStore{}
	svc := newService(repo, blobs)

	err := svc.UpdateItem(context.Background(), 42, validUpdateRequest("u1001"), nil)

	var itemErr *model.ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, model.ErrCodeItemNotFound, itemErr.Code)
	assert.Empty(t, repo.updated)
	assert.Zero(t, blobs.stored)
}

func TestUpdateItem_Forbidden(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001", ImageURL: strPtr("/uploads/old.jpg")}
	blobs := &fakeBlobStore{}
	svc := newService(repo, blobs)

	err := svc.UpdateItem(context.Background(), 7, validUpdateRequest("u2002"),
		&model.ImagePayload{Data: []byte("img"), Ext: ".jpg"})

	var itemErr *model.ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, model.ErrCodeForbidden, itemErr.Code)
	assert.Empty(t, repo.updated, "row must stay untouched")
	assert.Zero(t, blobs.stored, "no blob may be stored for a non-owner")
	assert.Empty(t, blobs.deleted)
}

func TestUpdateItem_InvalidDateBeforeMutation(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001"}
	blobs := &fakeBlobStore{}
	svc := newService(repo, blobs)

	req := validUpdateRequest("u1001")
	req.ItemDate = "not-a-date"

	err := svc.UpdateItem(context.Background(), 7, req, nil)

	var itemErr *model.ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, model.ErrCodeInvalidDate, itemErr.Code)
	assert.Empty(t, repo.updated)
}

func TestUpdateItem_NewImageReplacesOld(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001", ImageURL: strPtr("/uploads/old.jpg")}
	blobs := &fakeBlobStore{}
	svc := newService(repo, blobs)

	err := svc.UpdateItem(context.Background(), 7, validUpdateRequest("u1001"),
		&model.ImagePayload{Data: []byte("new image"), Ext: ".png"})
	require.NoError(t, err)

	upd, ok := repo.updated[7]
	require.True(t, ok)
	require.NotNil(t, upd.ImageURL)
	assert.Equal(t, "/uploads/blob-1.png", *upd.ImageURL)

	require.Len(t, blobs.deleted, 1)
	assert.Equal(t, "/uploads/old.jpg", blobs.deleted[0])
}

func TestUpdateItem_NoNewImageRetainsStoredURL(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001", ImageURL: strPtr("/uploads/old.jpg")}
	blobs := &fakeBlobStore{}
	svc := newService(repo, blobs)

	// The request carries no image at all; the stored image_url must come
	// from the row, never from the client.
	err := svc.UpdateItem(context.Background(), 7, validUpdateRequest("u1001"), nil)
	require.NoError(t, err)

	upd := repo.updated[7]
	require.NotNil(t, upd.ImageURL, "stored image_url must be retained, not nulled")
	assert.Equal(t, "/uploads/old.jpg", *upd.ImageURL)
	assert.Zero(t, blobs.stored)
	assert.Empty(t, blobs.deleted, "existing blob stays when no replacement arrived")
}

func TestUpdateItem_NoImageAnywhere(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001"}
	svc := newService(repo, &fakeBlobStore{})

	err := svc.UpdateItem(context.Background(), 7, validUpdateRequest("u1001"), nil)
	require.NoError(t, err)

	assert.Nil(t, repo.updated[7].ImageURL)
}

func TestUpdateItem_MissingRequiredField(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001"}
	blobs := &fakeBlobStore{}
	svc := newService(repo, blobs)

	req := validUpdateRequest("u1001")
	req.Status = ""

	err := svc.UpdateItem(context.Background(), 7, req, nil)

	var itemErr *model.ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, model.ErrCodeMissingField, itemErr.Code)
	assert.Empty(t, repo.updated)
	assert.Zero(t, blobs.stored)
}

func TestUpdateItem_OldBlobDeleteFailureIsSwallowed(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001", ImageURL: strPtr("/uploads/old.jpg")}
	blobs := &fakeBlobStore{deleteErr: errors.New("disk gone")}
	svc := newService(repo, blobs)

	err := svc.UpdateItem(context.Background(), 7, validUpdateRequest("u1001"),
		&model.ImagePayload{Data: []byte("new"), Ext: ".jpg"})

	assert.NoError(t, err, "blob deletion is best-effort")
}

func TestUpdateItem_RowVanishedBetweenCheckAndUpdate(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001"}
	repo.updateErr = model.ErrItemNotFound
	svc := newService(repo, &fakeBlobStore{})

	err := svc.UpdateItem(context.Background(), 7, validUpdateRequest("u1001"), nil)

	var itemErr *model.ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, model.ErrCodeItemNotFound, itemErr.Code)
}

// =====================================================
// DELETE
// =====================================================

func TestDeleteItem_NotFound(t *testing.T) {
	repo := newFakeItemRepo()
	blobs := &fakeBlobStore{}
	svc := newService(repo, blobs)

	err := svc.DeleteItem(context.Background(), 42, "u1001")

	var itemErr *model.ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, model.ErrCodeItemNotFound, itemErr.Code)
	assert.Empty(t, blobs.deleted, "blob deletion is never attempted for a missing item")
}

func TestDeleteItem_Forbidden(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001", ImageURL: strPtr("/uploads/old.jpg")}
	blobs := &fakeBlobStore{}
	svc := newService(repo, blobs)

	err := svc.DeleteItem(context.Background(), 7, "u2002")

	var itemErr *model.ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, model.ErrCodeForbidden, itemErr.Code)
	assert.Empty(t, repo.deleted)
	assert.Empty(t, blobs.deleted)
}

func TestDeleteItem_RemovesRowAndBlob(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001", ImageURL: strPtr("/uploads/old.jpg")}
	blobs := &fakeBlobStore{}
	svc := newService(repo, blobs)

	err := svc.DeleteItem(context.Background(), 7, "u1001")
	require.NoError(t, err)

	assert.Equal(t, []int64{7}, repo.deleted)
	assert.Equal(t, []string{"/uploads/old.jpg"}, blobs.deleted)
}

func TestDeleteItem_NoImage(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001"}
	blobs := &fakeBlobStore{}
	svc := newService(repo, blobs)

	err := svc.DeleteItem(context.Background(), 7, "u1001")
	require.NoError(t, err)
	assert.Empty(t, blobs.deleted)
}

func TestDeleteItem_BlobFailureStillSucceeds(t *testing.T) {
	repo := newFakeItemRepo()
	repo.ownership[7] = &model.Ownership{PostedBy: "u1001", ImageURL: strPtr("/uploads/old.jpg")}
	blobs := &fakeBlobStore{deleteErr: errors.New("permission denied")}
	svc := newService(repo, blobs)

	err := svc.DeleteItem(context.Background(), 7, "u1001")
	assert.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.deleted)
}

// =====================================================
// LIST
// =====================================================

func TestListItems_ComputesFullImageURL(t *testing.T) {
	repo := newFakeItemRepo()
	repo.items = []*model.Item{
		{
			ID:          2,
			Type:        model.ItemTypeFound,
			Title:       "Blue bottle",
			ItemDate:    time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			ContactInfo: "010-0000-0000",
			ImageURL:    strPtr("/uploads/bottle.jpg"),
			Status:      model.StatusActive,
			PostedBy:    "u1001",
			PostedAt:    time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          1,
			Type:        model.ItemTypeLost,
			Title:       "Student ID card",
			ItemDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ContactInfo: "id-office@campus.edu",
			Status:      model.StatusActive,
			PostedBy:    "u1001",
			PostedAt:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	svc := newService(repo, &fakeBlobStore{})

	items, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Repository order is preserved: newest first.
	assert.Equal(t, int64(2), items[0].ItemID)
	require.NotNil(t, items[0].FullImageURL)
	assert.Equal(t, "http://localhost:8080/uploads/bottle.jpg", *items[0].FullImageURL)
	assert.Equal(t, "2024-03-02", items[0].ItemDate)

	assert.Equal(t, int64(1), items[1].ItemID)
	assert.Nil(t, items[1].FullImageURL, "items without an image resolve fullImageUrl to null")
}
