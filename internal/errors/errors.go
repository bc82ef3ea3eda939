package errors

import (
	"errors"
	"fmt"
)

// Error code constants for coinprice failures.
const (
	CodeUnknownTool    = "UNKNOWN_TOOL"
	CodeInvalidParams  = "INVALID_PARAMS"
	CodeUpstreamFailed = "UPSTREAM_FAILED"
	CodePriceNotFound  = "PRICE_NOT_FOUND"
	CodeConfigInvalid  = "CONFIG_INVALID"
)

// Error represents a coinprice error with a code and message.
// It implements the error interface and supports error wrapping.
type Error struct {
	wrapped error
	Code    string
	Message string
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a new coinprice error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new coinprice error that wraps an underlying error.
func Wrap(code string, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		wrapped: err,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not a coinprice error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var cpErr *Error
	if errors.As(err, &cpErr) {
		return cpErr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// UserMessage returns the human-readable message without the code prefix.
// Tool results render this text directly, so machine codes stay out of the
// body. Falls back to err.Error() for non-coinprice errors.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var cpErr *Error
	if errors.As(err, &cpErr) {
		if cpErr.wrapped != nil {
			return fmt.Sprintf("%s: %v", cpErr.Message, cpErr.wrapped)
		}
		return cpErr.Message
	}
	return err.Error()
}

// Convenience constructors for each error code

// UnknownTool creates an UNKNOWN_TOOL error.
// The message is the exact protocol-fault text for an unregistered tool name.
func UnknownTool(name string) *Error {
	return New(CodeUnknownTool, fmt.Sprintf("Unknown tool: %s", name))
}

// InvalidParams creates an INVALID_PARAMS error describing a validation failure.
func InvalidParams(reason string) *Error {
	return New(CodeInvalidParams, reason)
}

// UpstreamFailed creates an UPSTREAM_FAILED error wrapping the underlying cause.
func UpstreamFailed(err error) *Error {
	return Wrap(CodeUpstreamFailed, "coingecko request failed", err)
}

// PriceNotFound creates a PRICE_NOT_FOUND error.
// The message matches the not-found text the tool returns.
func PriceNotFound(coin, currency string) *Error {
	return New(CodePriceNotFound, fmt.Sprintf("Could not find price for %s in %s.", coin, currency))
}

// ConfigInvalid creates a CONFIG_INVALID error wrapping the underlying cause.
func ConfigInvalid(err error) *Error {
	return Wrap(CodeConfigInvalid, "failed to load configuration", err)
}
