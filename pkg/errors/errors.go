// Package errors provides structured, coded errors for brandforge.
// Error codes give tests and callers a stable identity for each failure
// class independent of message wording.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Precondition errors: raised before any output is written
	ErrBrandNotFound ErrorCode = "BRAND_NOT_FOUND"
	ErrAssetMissing  ErrorCode = "ASSET_MISSING"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Encoding errors: image decode/resize/encode/render failures
	ErrImageDecode ErrorCode = "IMAGE_DECODE"
	ErrImageEncode ErrorCode = "IMAGE_ENCODE"
	ErrRender      ErrorCode = "RENDER"

	// Consistency errors: a corrupted or mismatched upstream tree
	ErrUpstreamInconsistent ErrorCode = "UPSTREAM_INCONSISTENT"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// BrandingError represents a structured error with code and details
type BrandingError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BrandingError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BrandingError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BrandingError) Is(target error) bool {
	var targetErr *BrandingError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BrandingError with the given code and message
func New(code ErrorCode, message string) *BrandingError {
	return &BrandingError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BrandingError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BrandingError {
	return &BrandingError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BrandingError
func Wrap(err error, code ErrorCode, message string) *BrandingError {
	if err == nil {
		return nil
	}
	return &BrandingError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BrandingError {
	if err == nil {
		return nil
	}
	return &BrandingError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BrandingError) WithDetail(key string, value interface{}) *BrandingError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var brandingErr *BrandingError
	if errors.As(err, &brandingErr) {
		return brandingErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BrandingError
func GetErrorCode(err error) ErrorCode {
	var brandingErr *BrandingError
	if errors.As(err, &brandingErr) {
		return brandingErr.Code
	}
	return ErrUnknown
}
