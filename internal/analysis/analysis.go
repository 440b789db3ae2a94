// Package analysis is the composition root: it wires the graph builder,
// the well-known rewriter, the builtin folder, and the linker into the one
// entrypoint an embedding application actually calls, the way
// gql.Session.EvalStatements composes an already-independent parser,
// type-inference pass, and rewrite step in the teacher.
package analysis

import (
	"context"
	"runtime"

	"github.com/pkg/errors"

	"github.com/loadgraph/loadgraph/graph"
	"github.com/loadgraph/loadgraph/internal/past"
	"github.com/loadgraph/loadgraph/link"
	"github.com/loadgraph/loadgraph/rewrite"
	"github.com/loadgraph/loadgraph/value"
)

// Options configures one Analyze call. The zero Options is valid:
// Concurrency defaults to runtime.GOMAXPROCS(0), and a nil Hook means the
// caller-supplied visitor never fires (well-known rewriting and builtin
// folding still run).
type Options struct {
	// Concurrency bounds how many graph keys LinkAll resolves at once.
	Concurrency int

	// ExplainDepth is not read by Analyze or by value.Explain: Explain's
	// inner-cause recursion is bounded by its own fixed depth of 4, and
	// setting this field changes nothing.
	ExplainDepth int

	// Hook is the caller's own asynchronous rewrite step — typically one
	// that performs real I/O, such as resolving a require() path against an
	// actual filesystem. It runs last in the chain built by composeHook,
	// after the well-known rewriter and the builtin folder have had a
	// chance to fire.
	Hook link.Hook
}

// Analyze builds the variable-reference graph for prog and links every
// entry to a fixed point, per §12: the run driver a caller actually uses.
func Analyze(ctx context.Context, prog past.Program, opts Options) (*graph.Graph, map[graph.Key]value.V, error) {
	g := graph.Build(prog)

	cache := link.NewCache()
	linker := link.NewLinker(g, cache, composeHook(opts.Hook))

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	results, err := linker.LinkAll(ctx, link.Options{Concurrency: concurrency})
	if err != nil {
		return g, nil, errors.Wrap(err, "analysis: linking graph")
	}

	normalized := make(map[graph.Key]value.V, len(results))
	for key, v := range results {
		normalized[key] = value.Normalize(v)
	}
	return g, normalized, nil
}

// composeHook chains the well-known rewriter, the builtin folder, and the
// caller's own hook in that order, stopping at the first stage that
// reports modified=true — matching §4.5 step 3's fixed-point re-entry,
// which the linker itself drives by calling this combined hook repeatedly.
func composeHook(userHook link.Hook) link.Hook {
	return func(ctx context.Context, v value.V) (value.V, bool, error) {
		if out, changed := rewrite.WellKnown(v); changed {
			return out, true, nil
		}
		if out, changed := rewrite.Fold(v); changed {
			return out, true, nil
		}
		if userHook != nil {
			return userHook(ctx, v)
		}
		return v, false, nil
	}
}
