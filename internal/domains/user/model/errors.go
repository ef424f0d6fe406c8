package model

import "errors"

var (
	// ErrUserNotFound covers both an unknown id and a credential mismatch;
	// the two are deliberately indistinguishable to callers.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser maps the primary key violation on register.
	ErrDuplicateUser = errors.New("user id already registered")
)
