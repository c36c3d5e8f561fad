package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmojiInterpreterRequiresPrefix(t *testing.T) {
	in := NewEmojiInterpreter()

	results, err := in.Interpret(context.Background(), "fire")
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestEmojiInterpreterHint(t *testing.T) {
	in := NewEmojiInterpreter()

	results, err := in.Interpret(context.Background(), "e:")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Search emojis...", results[0].Text)
}

func TestEmojiInterpreterAliasFirst(t *testing.T) {
	in := NewEmojiInterpreter()

	results, err := in.Interpret(context.Background(), "e:fire")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, KindEmoji, results[0].Kind)
	assert.Equal(t, "🔥", results[0].Glyph, "the alias table outranks the catalog")
	assert.LessOrEqual(t, len(results), 5)
}

func TestEmojiInterpreterCatalogSearch(t *testing.T) {
	in := NewEmojiInterpreter()

	// No alias contains "octopus"; only the catalog can find it.
	results, err := in.Interpret(context.Background(), "e:octopus")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "🐙", results[0].Glyph)
}

func TestEmojiInterpreterDeduplicatesGlyphs(t *testing.T) {
	in := NewEmojiInterpreter()

	// The catalog also knows the flame the "fire" alias names; it must
	// not appear a second time.
	results, err := in.Interpret(context.Background(), "e:fire")
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, r := range results {
		assert.False(t, seen[r.Glyph], "glyph %q appears twice", r.Glyph)
		seen[r.Glyph] = true
	}
}

func TestEmojiAliasesSharingGlyphBothAppear(t *testing.T) {
	// Two aliases naming the same glyph are distinct matches; the
	// glyph filter applies only to catalog hits.
	aliases := []emojiAlias{
		{"celebrate", "🎉"},
		{"celebration", "🎉"},
	}

	results := searchEmojis("celebrat", aliases, nil)
	require.Len(t, results, 2)
	assert.Equal(t, "🎉", results[0].Glyph)
	assert.Equal(t, "🎉", results[1].Glyph)
}

func TestEmojiInterpreterNoMatchDeclines(t *testing.T) {
	in := NewEmojiInterpreter()

	results, err := in.Interpret(context.Background(), "e:zzzzqqqq")
	assert.NoError(t, err)
	assert.Empty(t, results)
}
