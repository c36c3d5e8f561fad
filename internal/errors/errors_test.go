package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesCategoryFromCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Category
	}{
		{"config code", ErrCodeConfigInvalid, CategoryConfig},
		{"io code", ErrCodeScanOmission, CategoryIO},
		{"network code", ErrCodeLookupTimeout, CategoryNetwork},
		{"validation code", ErrCodeEvaluationFailed, CategoryValidation},
		{"internal code", ErrCodeInternal, CategoryInternal},
		{"malformed code", "ERR", CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "boom", nil)
			assert.Equal(t, tt.want, err.Category)
		})
	}
}

func TestNew_DerivesSeverityAndRetryable(t *testing.T) {
	lock := New(ErrCodeLockHeld, "another instance is running", nil)
	assert.Equal(t, SeverityFatal, lock.Severity)
	assert.False(t, lock.Retryable)
	assert.True(t, IsFatal(lock))

	timeout := New(ErrCodeLookupTimeout, "rate lookup timed out", nil)
	assert.Equal(t, SeverityWarning, timeout.Severity)
	assert.True(t, timeout.Retryable)
	assert.True(t, IsRetryable(timeout))

	eval := New(ErrCodeEvaluationFailed, "bad expression", nil)
	assert.Equal(t, SeverityError, eval.Severity)
	assert.False(t, IsRetryable(eval))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))

	cause := errors.New("connection refused")
	err := Wrap(ErrCodeLookupUnavailable, cause)
	require.NotNil(t, err)
	assert.Equal(t, "connection refused", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestErrorIs_MatchesByCode(t *testing.T) {
	a := New(ErrCodeConfigInvalid, "first", nil)
	b := New(ErrCodeConfigInvalid, "second", nil)
	c := New(ErrCodeInternal, "third", nil)

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
}

func TestUnwrapThroughFmtErrorf(t *testing.T) {
	inner := New(ErrCodeLookupBadResponse, "missing rate", nil)
	wrapped := fmt.Errorf("currency probe: %w", inner)

	assert.Equal(t, ErrCodeLookupBadResponse, GetCode(wrapped))
}

func TestLookupError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := LookupError("primary rate endpoint unreachable", cause)
	assert.Equal(t, ErrCodeLookupUnavailable, err.Code)
	assert.True(t, IsRetryable(err))
	assert.ErrorIs(t, err, cause)
}

func TestDecline(t *testing.T) {
	assert.ErrorIs(t, Decline(nil), ErrDecline)

	cause := New(ErrCodeEvaluationFailed, "unexpected end of expression", nil)
	err := Decline(cause)
	assert.ErrorIs(t, err, ErrDecline)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrCodeEvaluationFailed, GetCode(err))
	assert.Contains(t, err.Error(), "interpreter declined")
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeScanOmission, "unreadable directory", nil).
		WithDetail("dir", "/usr/share/applications")
	assert.Equal(t, "/usr/share/applications", err.Details["dir"])
}

func TestErrorString(t *testing.T) {
	err := New(ErrCodeConfigNotFound, "no config file", nil)
	assert.Equal(t, "[ERR_101_CONFIG_NOT_FOUND] no config file", err.Error())
}
