package storage

import "context"

// BlobStore is the contract the item and upload services consume.
//
// Store writes the payload under a freshly generated, collision-free name
// and returns the relative URL clients use to reach it (e.g.
// "/uploads/2f6b....jpg"). Names are never reused.
//
// Delete removes the blob behind a relative URL. A missing blob is not an
// error; callers treat any failure as best-effort and only log it.
type BlobStore interface {
	Store(ctx context.Context, data []byte, ext string) (string, error)
	Delete(ctx context.Context, relativeURL string) error
}
