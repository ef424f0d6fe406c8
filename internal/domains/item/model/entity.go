package model

import "time"

// DateLayout is the wire format for item dates.
const DateLayout = "2006-01-02"

type ItemType string

const (
	ItemTypeLost  ItemType = "LOST"
	ItemTypeFound ItemType = "FOUND"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusResolved Status = "RESOLVED"
)

// Item is a lost-or-found posting.
type Item struct {
	ID          int64      `json:"item_id"`
	Type        ItemType   `json:"item_type"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	ItemDate    time.Time  `json:"item_date"`
	ContactInfo string     `json:"contact_info"`
	ImageURL    *string    `json:"image_url"`
	Status      Status     `json:"status"`
	PostedBy    string     `json:"posted_by"`
	PostedAt    time.Time  `json:"posted_at"`
}

// Ownership is the slice of an item row consulted before any mutation.
type Ownership struct {
	PostedBy string
	ImageURL *string
}

// ItemUpdate is the full replacement set applied by an update. ID, PostedBy
// and PostedAt are never part of it.
type ItemUpdate struct {
	Type        ItemType
	Title       string
	Description *string
	Location    *string
	ItemDate    time.Time
	ContactInfo string
	ImageURL    *string
	Status      Status
}

// ImagePayload is a new image supplied with an update or upload.
type ImagePayload struct {
	Data []byte
	Ext  string // original filename extension, dot included
}
