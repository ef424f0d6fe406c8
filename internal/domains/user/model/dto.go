package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// AUTH DTOs
// ========================================

// LoginRequest carries the credential pair. Field names are the ones the
// existing campus frontend sends.
type LoginRequest struct {
	UserID   string `json:"s_userid"`
	Password string `json:"s_userpass"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required.Error("s_userid is required")),
		validation.Field(&r.Password, validation.Required.Error("s_userpass is required")),
	)
}

// LoginResponse is the stored record returned on a credential match,
// password included, matching the shape the frontend expects.
type LoginResponse struct {
	UserID   string  `json:"userid"`
	Password string  `json:"userpass"`
	Username *string `json:"username"`
	Email    *string `json:"usermail"`
}

// ToLoginResponse converts a User entity.
func (u *User) ToLoginResponse() LoginResponse {
	return LoginResponse{
		UserID:   u.ID,
		Password: u.Password,
		Username: u.Username,
		Email:    u.Email,
	}
}

// RegisterRequest inserts a new user row.
type RegisterRequest struct {
	UserID   string  `json:"userid"`
	Password string  `json:"userpass"`
	Username *string `json:"username"`
	Email    *string `json:"usermail"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID,
			validation.Required.Error("userid is required"),
			validation.Length(1, 10).Error("userid must be at most 10 characters"),
		),
		validation.Field(&r.Password, validation.Required.Error("userpass is required")),
	)
}
