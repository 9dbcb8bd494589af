package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or wrong credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates the request collides with work already in progress.
var ErrConflict = errors.New("conflict")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientFunds is matched by every InsufficientFundsError.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInsufficientGcashFloat is matched when the GCash float would go negative.
var ErrInsufficientGcashFloat = errors.New("insufficient gcash float")

// ErrInsufficientCashOnHand is matched when the cash drawer would go negative.
var ErrInsufficientCashOnHand = errors.New("insufficient cash on hand")

// ErrCommitFailed is matched by every CommitFailedError.
var ErrCommitFailed = errors.New("commit failed")

// AppError is an infrastructure failure carrying an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
