package errors

import (
	"errors"
	"fmt"
)

// ErrDecline marks the normal "this interpreter produced nothing" outcome.
// It is control flow, not a failure: callers that see it move on to the
// next interpreter without logging anything.
var ErrDecline = errors.New("interpreter declined")

// declineError carries a cause while still matching ErrDecline.
type declineError struct{ cause error }

func (d declineError) Error() string { return "interpreter declined: " + d.cause.Error() }

func (d declineError) Is(target error) bool { return target == ErrDecline }

func (d declineError) Unwrap() error { return d.cause }

// Decline marks err as expected interpreter control flow. The resolver
// matches the result against ErrDecline and moves on quietly; the cause
// stays reachable through errors.As for tests and diagnostics.
func Decline(err error) error {
	if err == nil {
		return ErrDecline
	}
	return declineError{cause: err}
}

// LumenError is the structured error type for Lumen.
// It provides context for logging and user presentation.
type LumenError struct {
	// Code is the unique error code (e.g., "ERR_203_LOCK_HELD").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Network, ...).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Retryable indicates if the operation can be retried.
	Retryable bool
}

// Error implements the error interface.
func (e *LumenError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LumenError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
func (e *LumenError) Is(target error) bool {
	if t, ok := target.(*LumenError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *LumenError) WithDetail(key, value string) *LumenError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new LumenError with the given code and message.
// Category, severity, and retryable flag are derived from the code.
func New(code string, message string, cause error) *LumenError {
	return &LumenError{
		Code:      code,
		Message:   message,
		Category:  categoryFromCode(code),
		Severity:  severityFromCode(code),
		Cause:     cause,
		Retryable: isRetryableCode(code),
	}
}

// Wrap creates a LumenError from an existing error.
// The error's message becomes the LumenError message.
func Wrap(code string, err error) *LumenError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *LumenError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// LookupError creates a network lookup error. Retryable by code.
func LookupError(message string, cause error) *LumenError {
	return New(ErrCodeLookupUnavailable, message, cause)
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var le *LumenError
	if errors.As(err, &le) {
		return le.Retryable
	}
	return false
}

// IsFatal checks if an error has fatal severity.
func IsFatal(err error) bool {
	var le *LumenError
	if errors.As(err, &le) {
		return le.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a LumenError.
// Returns empty string for other error types.
func GetCode(err error) string {
	var le *LumenError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
