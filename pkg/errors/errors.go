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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Precondition errors
	ErrPrivilege     ErrorCode = "PRIVILEGE"
	ErrToolMissing   ErrorCode = "TOOL_MISSING"
	ErrUnsupportedOS ErrorCode = "UNSUPPORTED_OS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Registry and environment errors
	ErrRegistryRead  ErrorCode = "REGISTRY_READ"
	ErrRegistryWrite ErrorCode = "REGISTRY_WRITE"
	ErrEnvWrite      ErrorCode = "ENV_WRITE"
	ErrPolicyQuery   ErrorCode = "POLICY_QUERY"
	ErrPolicySet     ErrorCode = "POLICY_SET"

	// Execution errors
	ErrPackageRun    ErrorCode = "PKG_RUN"
	ErrLinkRun       ErrorCode = "LINK_RUN"
	ErrVerifyTimeout ErrorCode = "VERIFY_TIMEOUT"
)

// MeekoError represents a structured error with code and details
type MeekoError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MeekoError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MeekoError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MeekoError) Is(target error) bool {
	var targetErr *MeekoError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MeekoError with the given code and message
func New(code ErrorCode, message string) *MeekoError {
	return &MeekoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MeekoError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MeekoError {
	return &MeekoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MeekoError
func Wrap(err error, code ErrorCode, message string) *MeekoError {
	if err == nil {
		return nil
	}
	return &MeekoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MeekoError {
	if err == nil {
		return nil
	}
	return &MeekoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MeekoError) WithDetail(key string, value interface{}) *MeekoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var meekoErr *MeekoError
	if errors.As(err, &meekoErr) {
		return meekoErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MeekoError
func GetErrorCode(err error) ErrorCode {
	var meekoErr *MeekoError
	if errors.As(err, &meekoErr) {
		return meekoErr.Code
	}
	return ErrUnknown
}
