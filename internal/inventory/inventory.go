// Package inventory builds the list of launchable application entries.
//
// The inventory is constructed once at startup and is immutable for the
// process lifetime; the fuzzy ranker scans it concurrently, which is safe
// precisely because nothing mutates an Entry after Build returns.
// Building never fails: unreadable directories and malformed entries are
// skipped, not surfaced.
package inventory

import (
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/gobwas/glob"
	"github.com/panjf2000/ants/v2"
)

// Entry is one launchable target.
type Entry struct {
	// Name is the display string matched by the ranker.
	Name string `json:"name"`

	// ID is the opaque source-specific identity (desktop-entry stem or
	// program folder name).
	ID string `json:"id"`

	// Exec is the command string handed to the OS launcher. For desktop
	// entries this is the entry file path, re-resolved at launch time.
	Exec string `json:"exec"`

	// MatchSpan holds the character indices in Name touched by a fuzzy
	// match. Empty unless the entry came out of the ranker via a name
	// match.
	MatchSpan []int `json:"-"`
}

// Options configures inventory construction.
type Options struct {
	// Platform selects the scan shape: "windows" or anything else for the
	// desktop-entry shape. Empty means runtime.GOOS.
	Platform string

	// ExtraDirs are scanned in addition to the platform's standard
	// directories.
	ExtraDirs []string

	// Exclude lists glob patterns; entries whose name matches any
	// compiled pattern are dropped. Invalid patterns are ignored here
	// (config validation rejects them earlier).
	Exclude []string
}

// scanWorkers bounds the pool used for concurrent directory scans.
const scanWorkers = 4

// Build constructs the inventory: the fixed utility table for the
// platform plus a filesystem scan, sorted by name with consecutive
// equal-name duplicates removed.
func Build(opts Options) []Entry {
	platform := opts.Platform
	if platform == "" {
		platform = runtime.GOOS
	}

	entries := builtinEntries(platform)

	var dirs []string
	if platform == "windows" {
		dirs = programDirs()
	} else {
		dirs = desktopDirs()
	}
	dirs = append(dirs, opts.ExtraDirs...)

	entries = append(entries, scanDirs(platform, dirs)...)
	entries = applyExclusions(entries, opts.Exclude)

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return dedupAdjacent(entries)
}

// scanDirs scans each directory on a bounded worker pool and merges the
// per-directory slices in input order. Order only matters for
// determinism before the final sort.
func scanDirs(platform string, dirs []string) []Entry {
	if len(dirs) == 0 {
		return nil
	}

	results := make([][]Entry, len(dirs))

	scan := func(dir string) []Entry {
		if platform == "windows" {
			return scanProgramDir(dir)
		}
		return scanDesktopDir(dir)
	}

	pool, err := ants.NewPool(scanWorkers)
	if err != nil {
		// Degraded but correct: scan serially.
		slog.Debug("inventory pool unavailable, scanning serially", slog.String("error", err.Error()))
		for i, dir := range dirs {
			results[i] = scan(dir)
		}
	} else {
		defer pool.Release()
		var wg sync.WaitGroup
		for i, dir := range dirs {
			i, dir := i, dir
			wg.Add(1)
			if err := pool.Submit(func() {
				defer wg.Done()
				results[i] = scan(dir)
			}); err != nil {
				results[i] = scan(dir)
				wg.Done()
			}
		}
		wg.Wait()
	}

	var merged []Entry
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// applyExclusions drops entries whose name matches any exclude pattern.
func applyExclusions(entries []Entry, patterns []string) []Entry {
	if len(patterns) == 0 {
		return entries
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	if len(globs) == 0 {
		return entries
	}

	kept := entries[:0]
	for _, e := range entries {
		excluded := false
		for _, g := range globs {
			if g.Match(e.Name) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, e)
		}
	}
	return kept
}

// dedupAdjacent removes consecutive equal-name duplicates from a sorted
// slice. Only neighbors collapse: two same-named entries separated in
// sort order both survive. This mirrors the launch inventory's historical
// behavior and is intentional.
func dedupAdjacent(entries []Entry) []Entry {
	if len(entries) < 2 {
		return entries
	}
	out := entries[:1]
	for _, e := range entries[1:] {
		if e.Name == out[len(out)-1].Name {
			continue
		}
		out = append(out, e)
	}
	return out
}

// exists reports whether the path exists, quietly treating errors as no.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
