package upload

import (
	"context"
	"errors"
	"fmt"
	"time"

	itemmodel "lostfound-backend/internal/domains/item/model"
	userservice "lostfound-backend/internal/domains/user/service"
	"lostfound-backend/internal/infrastructure/storage"
)

var (
	ErrEmptyFile   = errors.New("no file to upload")
	ErrUnknownUser = errors.New("unknown user id")
)

// Service stores an uploaded image for a known user and records it in the
// upload log. Unlike the best-effort blob deletions elsewhere, a failed log
// insert fails the whole upload.
type Service interface {
	Upload(ctx context.Context, userID string, image itemmodel.ImagePayload) (string, error)
}

type uploadService struct {
	users     userservice.ServiceInterface
	blobs     storage.BlobStore
	log       LogRepository
	opTimeout time.Duration
}

func NewService(
	users userservice.ServiceInterface,
	blobs storage.BlobStore,
	log LogRepository,
	opTimeout time.Duration,
) Service {
	return &uploadService{
		users:     users,
		blobs:     blobs,
		log:       log,
		opTimeout: opTimeout,
	}
}

func (s *uploadService) Upload(ctx context.Context, userID string, image itemmodel.ImagePayload) (string, error) {
	if len(image.Data) == 0 {
		return "", ErrEmptyFile
	}

	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return "", ErrUnknownUser
	}

	imageURL, err := s.blobs.Store(ctx, image.Data, image.Ext)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	if err := s.log.Record(ctx, userID, imageURL); err != nil {
		return "", err
	}

	return imageURL, nil
}
