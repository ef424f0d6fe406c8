package repository

import (
	"context"

	"lostfound-backend/internal/domains/user/model"
)

type UserRepository interface {
	// FindByCredentials returns the row matching the exact id/password
	// pair, or model.ErrUserNotFound when there is no match.
	FindByCredentials(ctx context.Context, userID, password string) (*model.User, error)

	// Create inserts a new user. Returns model.ErrDuplicateUser on a
	// primary key violation.
	Create(ctx context.Context, user *model.User) error

	// Exists reports whether a user id is registered.
	Exists(ctx context.Context, userID string) (bool, error)
}
