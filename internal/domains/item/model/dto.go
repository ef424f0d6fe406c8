package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreateItemRequest mirrors the JSON body of POST /api/items. Field names
// match what the campus frontend already sends.
type CreateItemRequest struct {
	ItemType       string  `json:"itemType"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	Location       *string `json:"location"`
	ItemDate       string  `json:"itemDate"`
	ContactInfo    string  `json:"contactInfo"`
	ImageURL       *string `json:"imageUrl"`
	PostedByUserID string  `json:"postedByUserId"`
}

func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ItemType,
			validation.Required.Error("itemType is required"),
			validation.In("LOST", "FOUND").Error("itemType must be LOST or FOUND"),
		),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.ItemDate, validation.Required.Error("itemDate is required")),
		validation.Field(&r.ContactInfo, validation.Required.Error("contactInfo is required")),
		validation.Field(&r.PostedByUserID, validation.Required.Error("postedByUserId is required")),
	)
}

// UpdateItemRequest is the full replacement set for PUT /api/items/:id.
// It arrives as multipart form fields because an optional image file may
// ride along. The image URL is never taken from the client: without a new
// file the stored one carries over.
type UpdateItemRequest struct {
	ItemType       string  `form:"itemType"`
	Title          string  `form:"title"`
	Description    *string `form:"description"`
	Location       *string `form:"location"`
	ItemDate       string  `form:"itemDate"`
	ContactInfo    string  `form:"contactInfo"`
	Status         string  `form:"status"`
	PostedByUserID string  `form:"postedByUserId"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ItemType,
			validation.Required.Error("itemType is required"),
			validation.In("LOST", "FOUND").Error("itemType must be LOST or FOUND"),
		),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.ItemDate, validation.Required.Error("itemDate is required")),
		validation.Field(&r.ContactInfo, validation.Required.Error("contactInfo is required")),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In("ACTIVE", "RESOLVED").Error("status must be ACTIVE or RESOLVED"),
		),
		validation.Field(&r.PostedByUserID, validation.Required.Error("postedByUserId is required")),
	)
}

// ========================================
// RESPONSE DTOs
// ========================================

// ItemResponse is one element of GET /api/items.
type ItemResponse struct {
	ItemID         int64     `json:"itemId"`
	ItemType       ItemType  `json:"itemType"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	Location       *string   `json:"location"`
	ItemDate       string    `json:"itemDate"`
	ContactInfo    string    `json:"contactInfo"`
	ImageURL       *string   `json:"imageUrl"`
	Status         Status    `json:"status"`
	PostedByUserID string    `json:"postedByUserId"`
	PostedAt       time.Time `json:"postedAt"`
	FullImageURL   *string   `json:"fullImageUrl"`
}

// ToResponse converts an Item entity. baseURL is the externally reachable
// address of this service; fullImageUrl stays null for items without images.
func (i *Item) ToResponse(baseURL string) ItemResponse {
	resp := ItemResponse{
		ItemID:         i.ID,
		ItemType:       i.Type,
		Title:          i.Title,
		Description:    i.Description,
		Location:       i.Location,
		ItemDate:       i.ItemDate.Format(DateLayout),
		ContactInfo:    i.ContactInfo,
		ImageURL:       i.ImageURL,
		Status:         i.Status,
		PostedByUserID: i.PostedBy,
		PostedAt:       i.PostedAt,
	}

	if i.ImageURL != nil && *i.ImageURL != "" {
		full := baseURL + *i.ImageURL
		resp.FullImageURL = &full
	}

	return resp
}
