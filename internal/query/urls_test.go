package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLInterpreter(t *testing.T) {
	in := URLInterpreter{}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"bare domain", "github.com", "https://github.com"},
		{"with path", "github.com/golang/go", "https://github.com/golang/go"},
		{"subdomain", "docs.rs", "https://docs.rs"},
		{"country code", "bbc.co.uk", "https://bbc.co.uk"},
		{"http passthrough", "http://localhost.dev/x", "http://localhost.dev/x"},
		{"https passthrough", "https://example.com", "https://example.com"},
		{"padded", "  github.com  ", "https://github.com"},
		{"two char label", "1.25", "https://1.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := in.Interpret(context.Background(), tt.query)
			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, KindURL, results[0].Kind)
			assert.Equal(t, tt.want, results[0].Text)
		})
	}
}

func TestURLInterpreterDeclines(t *testing.T) {
	in := URLInterpreter{}

	tests := []struct {
		name  string
		query string
	}{
		{"plain word", "firefox"},
		{"sentence", "open github.com please"},
		{"unknown tld", "notes.backup"},
		{"long numeric label", "1.250"},
		{"non-http scheme", "ftp://example.com"},
		{"trailing dot", "github."},
		{"empty", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := in.Interpret(context.Background(), tt.query)
			assert.NoError(t, err)
			assert.Empty(t, results)
		})
	}
}
