package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes, one per failure class. Input and template errors are fatal;
// document errors are contained at the per-document boundary; persist errors
// fail only the current document's write.
const (
	ErrCodeInput    = "INPUT"
	ErrCodeTemplate = "TEMPLATE"
	ErrCodeDocument = "DOCUMENT"
	ErrCodePersist  = "PERSIST"
)

// Common application errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyTemplate = errors.New("template has no rectangles")
)

// NewAppError builds an AppError with the given code
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
