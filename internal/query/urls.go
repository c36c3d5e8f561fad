package query

import (
	"context"
	"strings"
)

// knownTLDs is the allowlist consulted when deciding whether bare text
// like "github.com" is an address worth opening.
var knownTLDs = map[string]struct{}{
	"com": {}, "org": {}, "net": {}, "io": {}, "co": {}, "me": {},
	"dev": {}, "app": {}, "tech": {}, "xyz": {}, "us": {}, "uk": {},
	"ca": {}, "au": {}, "de": {}, "fr": {}, "jp": {}, "in": {},
	"br": {}, "ru": {},
}

// URLInterpreter recognizes queries that look like web addresses and
// offers to open them, prepending https:// when no scheme is present.
type URLInterpreter struct{}

func (URLInterpreter) Name() string { return "url" }

func (URLInterpreter) Interpret(_ context.Context, query string) ([]Result, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, nil
	}

	if strings.Contains(trimmed, "://") {
		if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
			return []Result{URLResult(trimmed)}, nil
		}
		return nil, nil
	}

	if !looksLikeHost(trimmed) {
		return nil, nil
	}
	return []Result{URLResult("https://" + trimmed)}, nil
}

// looksLikeHost reports whether schemeless text is plausibly a hostname
// with an optional path. The host part must end in a known TLD, or in
// any label exactly two characters long when the host has at least two
// labels.
func looksLikeHost(s string) bool {
	if strings.ContainsAny(s, " \t") {
		return false
	}
	host := s
	if i := strings.IndexByte(s, '/'); i >= 0 {
		host = s[:i]
	}
	if !strings.Contains(host, ".") {
		return false
	}
	labels := strings.Split(host, ".")
	last := labels[len(labels)-1]
	if last == "" {
		return false
	}
	if _, ok := knownTLDs[strings.ToLower(last)]; ok {
		return len(labels) >= 2
	}
	return len(labels) >= 2 && len(last) == 2
}
