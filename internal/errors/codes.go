// Package errors provides structured error handling for Lumen.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (scan omissions, unreadable files)
//   - 3XX: Network errors (rate lookups)
//   - 4XX: Validation errors (query parsing, evaluation)
//   - 5XX: Internal errors
//
// Nothing in the query pipeline is fatal: interpreters translate every
// failure into a silent decline and the chain continues. Structured
// errors exist for the surfaces around the pipeline (config, lock,
// logging) and for debug-level diagnostics inside it.
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and directory I/O errors.
	CategoryIO Category = "IO"
	// CategoryNetwork indicates network-related errors.
	CategoryNetwork Category = "NETWORK"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates an unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates the operation failed but the process continues.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
	// SeverityInfo indicates informational only.
	SeverityInfo Severity = "INFO"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound   = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    = "ERR_102_CONFIG_INVALID"
	ErrCodeConfigPermission = "ERR_103_CONFIG_PERMISSION"

	// IO errors (200-299)
	ErrCodeScanOmission   = "ERR_201_SCAN_OMISSION"
	ErrCodeFilePermission = "ERR_202_FILE_PERMISSION"
	ErrCodeLockHeld       = "ERR_203_LOCK_HELD"

	// Network errors (300-399)
	ErrCodeLookupTimeout     = "ERR_301_LOOKUP_TIMEOUT"
	ErrCodeLookupUnavailable = "ERR_302_LOOKUP_UNAVAILABLE"
	ErrCodeLookupBadResponse = "ERR_303_LOOKUP_BAD_RESPONSE"

	// Validation errors (400-499)
	ErrCodeInvalidInput      = "ERR_401_INVALID_INPUT"
	ErrCodeEvaluationFailed  = "ERR_402_EVALUATION_FAILED"
	ErrCodeUnknownCurrency   = "ERR_403_UNKNOWN_CURRENCY"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts the category from an error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '3':
		return CategoryNetwork
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	if code == ErrCodeLockHeld {
		return SeverityFatal
	}
	if isRetryableCode(code) {
		return SeverityWarning
	}
	return SeverityError
}

// isRetryableCode checks if an error code represents a retryable error.
// Only transient network failures qualify; everything else either aborts
// startup or declines silently.
func isRetryableCode(code string) bool {
	switch code {
	case ErrCodeLookupTimeout, ErrCodeLookupUnavailable:
		return true
	}
	return false
}
