package query

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"

	lumenerr "github.com/lumen-sh/lumen/internal/errors"
)

// Interpreter examines a query and either produces results or declines.
//
// Declining is signaled by returning (nil, nil) or an error matching
// the decline sentinel; either way the chain moves on to the next
// interpreter. Any other error also declines but is logged, so a
// failing network lookup degrades to the next interpreter instead of
// surfacing to the user.
type Interpreter interface {
	// Name identifies the interpreter in logs.
	Name() string

	// Interpret receives the raw query text, leading and trailing
	// whitespace included. The context is canceled when a newer query
	// supersedes this one.
	Interpret(ctx context.Context, query string) ([]Result, error)
}

// Resolver runs the interpreter chain and tracks which resolution is
// current. Each call to Resolve cancels the context of the previous
// in-flight call, so a slow interpreter (a currency lookup, say) never
// publishes results for a query the user has already typed past.
type Resolver struct {
	chain  []Interpreter
	logger *slog.Logger

	gen    atomic.Uint64
	cancel atomic.Pointer[context.CancelFunc]
}

// NewResolver builds a resolver over the given chain. Order matters:
// interpreters are consulted front to back.
func NewResolver(chain []Interpreter, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{chain: chain, logger: logger}
}

// Generation returns the identifier of the most recently started
// resolution. Callers that receive results asynchronously compare the
// generation they were handed against this value and drop stale sets.
func (r *Resolver) Generation() uint64 {
	return r.gen.Load()
}

// Resolve runs the chain for query and returns the result set along
// with the generation of this resolution. Any resolution still running
// from an earlier call is canceled first.
//
// A query that is empty after trimming yields an empty set without
// consulting the chain. Otherwise, if every interpreter declines, the
// set holds a single web-search result for the trimmed query.
func (r *Resolver) Resolve(ctx context.Context, query string) (*ResultSet, uint64) {
	gen := r.gen.Add(1)

	ctx, cancel := context.WithCancel(ctx)
	if prev := r.cancel.Swap(&cancel); prev != nil {
		(*prev)()
	}
	defer func() {
		// Only clear our own cancel func; a newer resolution may have
		// installed its own by the time we finish.
		r.cancel.CompareAndSwap(&cancel, nil)
		cancel()
	}()

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return NewResultSet(nil), gen
	}

	for _, in := range r.chain {
		results, err := in.Interpret(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				// Superseded mid-flight; the caller will discard
				// whatever we return.
				return NewResultSet(nil), gen
			}
			if !errors.Is(err, lumenerr.ErrDecline) {
				r.logger.Debug("interpreter declined with error",
					"interpreter", in.Name(), "error", err)
			}
			continue
		}
		if len(results) > 0 {
			r.logger.Debug("interpreter matched",
				"interpreter", in.Name(), "results", len(results))
			return NewResultSet(results), gen
		}
	}

	return NewResultSet([]Result{WebSearchResult(trimmed)}), gen
}

// Current reports whether gen identifies the most recent resolution.
func (r *Resolver) Current(gen uint64) bool {
	return r.gen.Load() == gen
}
