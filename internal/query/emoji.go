package query

import (
	"context"
	"strings"

	"github.com/forPelevin/gomoji"
)

const (
	emojiPrefix = "e:"

	// emojiAliasCap bounds matches taken from the alias table.
	emojiAliasCap = 3

	// emojiCatalogCap bounds matches taken from the full catalog.
	emojiCatalogCap = 2

	// emojiTotalCap bounds the combined emoji list.
	emojiTotalCap = 5
)

// emojiAlias is a short memorable name for a glyph. The alias table is
// consulted before the full catalog so "fire" finds the flame before
// "fire engine" and friends.
type emojiAlias struct {
	name  string
	glyph string
}

var emojiAliases = []emojiAlias{
	{"smile", "😄"},
	{"grin", "😁"},
	{"laugh", "😂"},
	{"joy", "😂"},
	{"wink", "😉"},
	{"cry", "😢"},
	{"sad", "😞"},
	{"angry", "😠"},
	{"cool", "😎"},
	{"think", "🤔"},
	{"heart", "❤️"},
	{"fire", "🔥"},
	{"star", "⭐"},
	{"sparkles", "✨"},
	{"thumbsup", "👍"},
	{"+1", "👍"},
	{"thumbsdown", "👎"},
	{"clap", "👏"},
	{"wave", "👋"},
	{"pray", "🙏"},
	{"eyes", "👀"},
	{"100", "💯"},
	{"party", "🎉"},
	{"tada", "🎉"},
	{"rocket", "🚀"},
	{"sun", "☀️"},
	{"moon", "🌙"},
	{"rain", "🌧️"},
	{"snow", "❄️"},
	{"coffee", "☕"},
	{"pizza", "🍕"},
	{"beer", "🍺"},
	{"cat", "🐱"},
	{"dog", "🐶"},
	{"check", "✅"},
}

// EmojiInterpreter handles the "e:" prefix, matching the alias table
// first and then the full Unicode catalog by name.
type EmojiInterpreter struct {
	catalog []gomoji.Emoji
}

// NewEmojiInterpreter loads the catalog once; lookups are in-memory.
func NewEmojiInterpreter() *EmojiInterpreter {
	return &EmojiInterpreter{catalog: gomoji.AllEmojis()}
}

var _ Interpreter = (*EmojiInterpreter)(nil)

func (e *EmojiInterpreter) Name() string { return "emoji" }

func (e *EmojiInterpreter) Interpret(_ context.Context, query string) ([]Result, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(trimmed, emojiPrefix) {
		return nil, nil
	}
	term := strings.ToLower(strings.TrimSpace(trimmed[len(emojiPrefix):]))
	if term == "" {
		return []Result{ShellCommandResult("Search emojis...")}, nil
	}

	return searchEmojis(term, emojiAliases, e.catalog), nil
}

// searchEmojis matches the alias table first, then the catalog. Aliases
// sharing a glyph all appear; only catalog entries duplicating a glyph
// the alias pass already produced are skipped.
func searchEmojis(term string, aliases []emojiAlias, catalog []gomoji.Emoji) []Result {
	aliasGlyphs := make(map[string]struct{})
	var results []Result

	aliasHits := 0
	for _, a := range aliases {
		if aliasHits == emojiAliasCap {
			break
		}
		if !strings.Contains(a.name, term) {
			continue
		}
		aliasGlyphs[a.glyph] = struct{}{}
		results = append(results, EmojiResult(a.name, a.glyph))
		aliasHits++
	}

	catalogHits := 0
	for _, em := range catalog {
		if catalogHits == emojiCatalogCap || len(results) == emojiTotalCap {
			break
		}
		name := strings.ToLower(em.UnicodeName)
		if !strings.Contains(name, term) {
			continue
		}
		if _, dup := aliasGlyphs[em.Character]; dup {
			continue
		}
		results = append(results, EmojiResult(name, em.Character))
		catalogHits++
	}

	if len(results) > emojiTotalCap {
		results = results[:emojiTotalCap]
	}
	return results
}
