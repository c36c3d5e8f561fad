package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lumenerr "github.com/lumen-sh/lumen/internal/errors"
)

func TestCalcInterpreter(t *testing.T) {
	in := CalcInterpreter{}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"addition", "2+2", "4"},
		{"decimal", "3*3.5", "10.5"},
		{"power", "2^10", "1024"},
		{"division", "10/4", "2.5"},
		{"modulo", "10%3", "1"},
		{"constants", "2*pi", "6.283185307179586"},
		{"whitespace", "  1 + 2  ", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := in.Interpret(context.Background(), tt.query)
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, KindCalculation, results[0].Kind)
			assert.Equal(t, tt.want, results[0].Text)
		})
	}
}

func TestCalcInterpreterDeclines(t *testing.T) {
	in := CalcInterpreter{}

	tests := []struct {
		name  string
		query string
	}{
		{"plain word", "firefox"},
		{"no operator", "1234"},
		{"no digit", "a+b"},
		{"too short", "1"},
		{"sentence with digits", "call me at 5+ pm today maybe"},
		{"url-ish", "github.com/1+1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := in.Interpret(context.Background(), tt.query)
			assert.NoError(t, err)
			assert.Empty(t, results)
		})
	}
}

func TestCalcInterpreterMalformedExpression(t *testing.T) {
	in := CalcInterpreter{}

	// Passes the lexical gate but does not parse. The error signals a
	// decline, not a user-facing failure.
	results, err := in.Interpret(context.Background(), "1+")
	require.Error(t, err)
	assert.True(t, errors.Is(err, lumenerr.ErrDecline))
	assert.Equal(t, lumenerr.ErrCodeEvaluationFailed, lumenerr.GetCode(err))
	assert.Empty(t, results)
}
