package errors

import (
	"errors"
	"fmt"
)

// ErrorCode partitions failures the way the surfaces report them.
type ErrorCode string

const (
	// Client-side, pre-flight: never reaches the network.
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeMissingKey    ErrorCode = "MISSING_KEY"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Backend answered with a non-2xx status.
	ErrCodeBackend  ErrorCode = "BACKEND_ERROR"
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// No usable response at all.
	ErrCodeNetwork ErrorCode = "NETWORK_ERROR"
)

// AppError carries a code, a user-facing message and the underlying cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// GetAppError extracts an *AppError from err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsValidation reports whether err failed pre-flight, before any
// network call was made.
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeValidation, ErrCodeMissingKey, ErrCodeInvalidFormat:
		return true
	}
	return false
}

// UserMessage reduces any error to the message a surface should show:
// the structured backend detail when present, else the generic fallback.
func UserMessage(err error, fallback string) string {
	if appErr := GetAppError(err); appErr != nil && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

var (
	ErrInvalidSSN      = errors.New("ssn must be exactly 9 digits")
	ErrInvalidCard     = errors.New("card number must have exactly 16 digits")
	ErrMissingRoomKey  = errors.New("room identity needs both roomnumber and hoteladdress")
	ErrNotConfirmed    = errors.New("delete requires confirmation")
	ErrConversionState = errors.New("no booking selected for conversion")
)
