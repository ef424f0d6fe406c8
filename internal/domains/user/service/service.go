package service

import (
	"context"
	"fmt"
	"time"

	"lostfound-backend/internal/domains/user/model"
	"lostfound-backend/internal/domains/user/repository"
)

// ServiceInterface is the user account logic consumed by the HTTP layer
// and by the upload service.
type ServiceInterface interface {
	// Login performs the exact plaintext credential comparison. A miss is
	// model.ErrUserNotFound, not an internal error.
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)

	// Register inserts a new user row.
	Register(ctx context.Context, req model.RegisterRequest) error

	// Exists reports whether a user id is registered.
	Exists(ctx context.Context, userID string) (bool, error)
}

type userService struct {
	userRepo  repository.UserRepository
	opTimeout time.Duration
}

func NewUserService(userRepo repository.UserRepository, opTimeout time.Duration) ServiceInterface {
	return &userService{
		userRepo:  userRepo,
		opTimeout: opTimeout,
	}
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	user, err := s.userRepo.FindByCredentials(ctx, req.UserID, req.Password)
	if err != nil {
		if err == model.ErrUserNotFound {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to check credentials: %w", err)
	}

	resp := user.ToLoginResponse()
	return &resp, nil
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	user := &model.User{
		ID:       req.UserID,
		Password: req.Password,
		Username: req.Username,
		Email:    req.Email,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == model.ErrDuplicateUser {
			return model.ErrDuplicateUser
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	return nil
}

func (s *userService) Exists(ctx context.Context, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	return s.userRepo.Exists(ctx, userID)
}
