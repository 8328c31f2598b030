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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"
	// ErrNotConfigured means a required setting (installations root, shared
	// directory root, vendor path) is empty. It is a configuration problem,
	// never a link failure.
	ErrNotConfigured ErrorCode = "NOT_CONFIGURED"

	// Installation errors
	ErrInvalidInstallation ErrorCode = "INVALID_INSTALLATION"
	ErrCorruptArchive      ErrorCode = "CORRUPT_ARCHIVE"
	ErrPlatformMismatch    ErrorCode = "PLATFORM_MISMATCH"
	ErrNotEditable         ErrorCode = "NOT_EDITABLE"

	// Link errors
	ErrLinkTargetUnavailable ErrorCode = "LINK_TARGET_UNAVAILABLE"
	ErrLinkCreate            ErrorCode = "LINK_CREATE"
	ErrLinkDelete            ErrorCode = "LINK_DELETE"

	// FileSystem errors
	ErrFileAccess     ErrorCode = "FILE_ACCESS"
	ErrFileMove       ErrorCode = "FILE_MOVE"
	ErrDirCreate      ErrorCode = "DIR_CREATE"
	ErrArchiveExtract ErrorCode = "ARCHIVE_EXTRACT"
)

// FvmError represents a structured error with code and details
type FvmError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FvmError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FvmError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an FvmError carrying the same code.
func (e *FvmError) Is(target error) bool {
	t, ok := target.(*FvmError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new FvmError with the given code and message
func New(code ErrorCode, message string) *FvmError {
	return &FvmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FvmError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FvmError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an FvmError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &FvmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *FvmError) WithDetail(key string, value interface{}) *FvmError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether any error in err's chain carries code.
// A NOT_CONFIGURED wrapped by a LINK_CREATE still matches both codes.
func IsErrorCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, &FvmError{Code: code})
}

// GetErrorCode returns the outermost error code, or ErrUnknown if err is not an FvmError
func GetErrorCode(err error) ErrorCode {
	var fe *FvmError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the outermost FvmError, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var fe *FvmError
	if errors.As(err, &fe) {
		return fe.Details
	}
	return nil
}
