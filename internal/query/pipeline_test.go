package query

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-sh/lumen/internal/config"
	"github.com/lumen-sh/lumen/internal/inventory"
)

// offlineTransport guarantees pipeline tests never touch the network.
type offlineTransport struct{}

func (offlineTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("offline")
}

// fullChain assembles the production interpreter order with an offline
// currency client and a small fixed inventory.
func fullChain(t *testing.T) *Resolver {
	t.Helper()
	client := &http.Client{Transport: offlineTransport{}}
	currencyCfg := config.CurrencyConfig{
		PrimaryURL:       "http://primary.invalid",
		FallbackURL:      "http://fallback.invalid",
		Timeout:          "1s",
		MinProbeInterval: "0",
	}
	entries := []inventory.Entry{
		{Name: "Calculator", ID: "calculator", Exec: "gnome-calculator"},
		{Name: "Firefox", ID: "firefox", Exec: "firefox %u"},
	}
	chain := []Interpreter{
		NewFileInterpreterDirs([]string{t.TempDir()}),
		NewEmojiInterpreter(),
		NewCurrencyInterpreter(currencyCfg, client, nil),
		URLInterpreter{},
		CalcInterpreter{},
		ShellInterpreter{},
		MentionInterpreter{},
		NewRankInterpreter(entries, 8),
	}
	return NewResolver(chain, nil)
}

func TestPipelineNonEmptyQueryAlwaysResolves(t *testing.T) {
	r := fullChain(t)

	queries := []string{"2+2", "github.com", "fire", "$ ls", "@news", "e:fire",
		"100 usd to eur", "complete gibberish zzz"}
	for _, q := range queries {
		set, _ := r.Resolve(context.Background(), q)
		assert.NotZero(t, set.Len(), "query %q must produce results", q)
	}
}

func TestPipelinePriorityIsStrict(t *testing.T) {
	client := &http.Client{Transport: offlineTransport{}}
	currencyCfg := config.CurrencyConfig{
		PrimaryURL:  "http://primary.invalid",
		FallbackURL: "http://fallback.invalid",
	}
	dir := t.TempDir()
	writeFiles(t, dir, "10 usd eur.txt")
	chain := []Interpreter{
		NewFileInterpreterDirs([]string{dir}),
		NewCurrencyInterpreter(currencyCfg, client, nil),
	}
	r := NewResolver(chain, nil)

	// A currency-shaped remainder behind the file: prefix is still a file
	// search; the currency interpreter never sees it.
	set, _ := r.Resolve(context.Background(), "file:10 usd eur")
	require.Equal(t, 1, set.Len())
	assert.Equal(t, KindFile, set.Results()[0].Kind)
}

func TestPipelineBareFilePrefixHints(t *testing.T) {
	r := fullChain(t)

	set, _ := r.Resolve(context.Background(), "file:")
	require.Equal(t, 1, set.Len())
	assert.Equal(t, KindShellCommand, set.Results()[0].Kind)
	assert.Equal(t, "Search files...", set.Results()[0].Text)
}

func TestPipelineCurrencyFailureFallsThrough(t *testing.T) {
	r := fullChain(t)

	// Both endpoints unreachable: the currency interpreter declines and
	// the chain keeps going to the web-search fallback.
	set, _ := r.Resolve(context.Background(), "100 usd to eur")
	require.Equal(t, 1, set.Len())
	assert.Equal(t, KindWebSearch, set.Results()[0].Kind)
}

func TestPipelineCalculationBeatsRanker(t *testing.T) {
	r := fullChain(t)

	set, _ := r.Resolve(context.Background(), "2+2")
	require.Equal(t, 1, set.Len())
	assert.Equal(t, KindCalculation, set.Results()[0].Kind)
	assert.Equal(t, "4", set.Results()[0].Text)
}

func TestPipelineFuzzyFallback(t *testing.T) {
	r := fullChain(t)

	set, _ := r.Resolve(context.Background(), "fire")
	require.NotZero(t, set.Len())
	require.Equal(t, KindApp, set.Results()[0].Kind)
	assert.Equal(t, "Firefox", set.Results()[0].App.Name)
}

func TestPipelineSameCurrencyOffline(t *testing.T) {
	r := fullChain(t)

	// Same-code conversion needs no rate, so it succeeds even offline.
	set, _ := r.Resolve(context.Background(), "10 usd to usd")
	require.Equal(t, 1, set.Len())
	assert.Equal(t, KindCurrency, set.Results()[0].Kind)
	assert.Equal(t, 10.0, set.Results()[0].Amount)
}
