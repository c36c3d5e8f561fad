package query

import (
	"context"
	"runtime"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"

	"github.com/lumen-sh/lumen/internal/inventory"
)

// nameMatchBonus lifts name matches above command-line matches of equal
// fuzzy score, so typing "fire" ranks Firefox above some launcher whose
// exec string happens to contain the letters.
const nameMatchBonus = 100

// RankInterpreter scores the application inventory against the query.
// It sits last in the chain and declines only when nothing in the
// inventory matches at all.
type RankInterpreter struct {
	entries []inventory.Entry
	limit   int
}

// NewRankInterpreter ranks over a snapshot of the inventory. limit caps
// the returned results; non-positive means 8.
func NewRankInterpreter(entries []inventory.Entry, limit int) *RankInterpreter {
	if limit <= 0 {
		limit = 8
	}
	return &RankInterpreter{entries: entries, limit: limit}
}

var _ Interpreter = (*RankInterpreter)(nil)

func (r *RankInterpreter) Name() string { return "rank" }

type rankedEntry struct {
	entry inventory.Entry
	score int
	pos   int
}

func (r *RankInterpreter) Interpret(ctx context.Context, query string) ([]Result, error) {
	term := strings.TrimSpace(query)
	if term == "" || len(r.entries) == 0 {
		return nil, nil
	}

	workers := runtime.NumCPU()
	if workers > 4 {
		workers = 4
	}
	if workers < 1 {
		workers = 1
	}

	chunks := splitEntries(r.entries, workers)
	scored := make([][]rankedEntry, len(chunks))

	g, _ := errgroup.WithContext(ctx)
	offset := 0
	for i, chunk := range chunks {
		i, chunk, base := i, chunk, offset
		offset += len(chunk)
		g.Go(func() error {
			scored[i] = scoreChunk(term, chunk, base)
			return nil
		})
	}
	// Workers never fail; the group is used for joining only.
	_ = g.Wait()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var merged []rankedEntry
	for _, s := range scored {
		merged = append(merged, s...)
	}
	if len(merged) == 0 {
		return nil, nil
	}

	// Higher scores first; inventory order breaks ties, keeping the
	// ranking stable across keystrokes.
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].score != merged[j].score {
			return merged[i].score > merged[j].score
		}
		return merged[i].pos < merged[j].pos
	})
	if len(merged) > r.limit {
		merged = merged[:r.limit]
	}

	results := make([]Result, 0, len(merged))
	for _, m := range merged {
		results = append(results, AppResult(m.entry))
	}
	return results, nil
}

// scoreChunk scores each entry against both its name and its command
// line, keeping the better of the two. A name match carries the bonus
// and records which characters matched for highlighting.
func scoreChunk(term string, entries []inventory.Entry, base int) []rankedEntry {
	var out []rankedEntry
	for i, e := range entries {
		matched := false
		best := 0
		var span []int

		if m := fuzzy.Find(term, []string{e.Name}); len(m) > 0 {
			matched = true
			best = m[0].Score + nameMatchBonus
			span = append([]int(nil), m[0].MatchedIndexes...)
		}
		// The command line is a fallback only; a name match keeps its
		// bonus and its recorded indices regardless of how well the
		// command scores.
		if !matched && e.Exec != "" {
			if m := fuzzy.Find(term, []string{e.Exec}); len(m) > 0 {
				matched = true
				best = m[0].Score
			}
		}
		if !matched {
			continue
		}

		entry := e
		entry.MatchSpan = span
		out = append(out, rankedEntry{entry: entry, score: best, pos: base + i})
	}
	return out
}

// splitEntries divides entries into at most n contiguous chunks.
func splitEntries(entries []inventory.Entry, n int) [][]inventory.Entry {
	if n <= 1 || len(entries) <= n {
		return [][]inventory.Entry{entries}
	}
	size := (len(entries) + n - 1) / n
	var chunks [][]inventory.Entry
	for start := 0; start < len(entries); start += size {
		end := start + size
		if end > len(entries) {
			end = len(entries)
		}
		chunks = append(chunks, entries[start:end])
	}
	return chunks
}
