package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeItemNotFound = "ITEM001"
	ErrCodeForbidden    = "ITEM002"
	ErrCodeMissingField = "ITEM003"
	ErrCodeInvalidDate  = "ITEM004"
)

// Errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrForbidden    = errors.New("not the owner of this item")
)

// ItemError custom error type
type ItemError struct {
	Code    string
	Message string
	Err     error
}

func (e *ItemError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewItemNotFoundError() *ItemError {
	return &ItemError{
		Code:    ErrCodeItemNotFound,
		Message: "Item not found",
		Err:     ErrItemNotFound,
	}
}

func NewForbiddenError() *ItemError {
	return &ItemError{
		Code:    ErrCodeForbidden,
		Message: "Only the posting user may modify this item",
		Err:     ErrForbidden,
	}
}

func NewMissingFieldError(cause string) *ItemError {
	return &ItemError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("Required field missing or invalid: %s", cause),
	}
}

func NewInvalidDateError(value string) *ItemError {
	return &ItemError{
		Code:    ErrCodeInvalidDate,
		Message: fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", value),
	}
}
