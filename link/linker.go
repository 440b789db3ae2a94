package link

import (
	"context"
	"runtime"
	"sync"

	"github.com/grailbio/base/errors"
	"golang.org/x/sync/semaphore"

	"github.com/loadgraph/loadgraph/graph"
	"github.com/loadgraph/loadgraph/internal/diag"
	"github.com/loadgraph/loadgraph/value"
)

// Hook is the linker's asynchronous per-node rewrite step: given a node
// whose children have already been linked, it returns a (possibly
// rewritten) replacement and whether anything changed. A Hook must be
// idempotent at its own fixpoint (§6): applying it again to a node it just
// returned unchanged must again report unchanged.
type Hook func(ctx context.Context, v value.V) (value.V, bool, error)

// Linker resolves graph entries to closed values: every reachable Variable
// is substituted with its linked definition, and hook is applied to every
// node until it no longer reports a change (§4.5). Linker does not
// normalize its output; callers normalize the result themselves.
type Linker struct {
	graph *graph.Graph
	cache *Cache
	hook  Hook
}

// NewLinker builds a Linker over g, memoizing through cache and rewriting
// every node through hook. A nil hook behaves as a hook that never fires.
func NewLinker(g *graph.Graph, cache *Cache, hook Hook) *Linker {
	if hook == nil {
		hook = func(_ context.Context, v value.V) (value.V, bool, error) { return v, false, nil }
	}
	return &Linker{graph: g, cache: cache, hook: hook}
}

// Link resolves v0 to a closed value per §4.5's algorithm. Each call to
// Link gets its own waiterID, identifying it to the cache's cross-goroutine
// wait-for cycle check for as long as it runs.
func (l *Linker) Link(ctx context.Context, v0 value.V) (value.V, error) {
	return l.link(ctx, v0, nil, newWaiterID())
}

// link is §4.5's algorithm proper, parameterized over chain: the set of
// Variable keys currently being resolved along this call's own path from
// v0. chain is what distinguishes a genuine cycle (a key reappears on the
// same path) from two unrelated top-level links racing to resolve the same
// shared dependency (handled by Cache instead, which makes the second
// caller wait for the first rather than report a spurious cycle). waiter
// identifies the top-level Link call this recursion belongs to, so the
// cache can also catch a cycle that only closes across two different
// top-level calls running concurrently.
func (l *Linker) link(ctx context.Context, v value.V, chain map[graph.Key]bool, waiter waiterID) (value.V, error) {
	cur := v
	for {
		out, changed, err := value.VisitMutateAsync(ctx, cur, func(ctx context.Context, n value.V) (value.V, bool, error) {
			return l.step(ctx, n, chain, waiter)
		})
		if err != nil {
			return value.V{}, err
		}
		if !changed {
			return out, nil
		}
		cur = out // §4.5 step 3: re-enter step 1 on the new node.
	}
}

// step implements §4.5 steps 2 and 3 for a single node whose children have
// already been linked (VisitMutateAsync's post-order guarantee): a
// Variable is substituted via resolveVariable; anything else is offered to
// the hook.
func (l *Linker) step(ctx context.Context, v value.V, chain map[graph.Key]bool, waiter waiterID) (value.V, bool, error) {
	if v.Kind == value.VariableKind {
		resolved, err := l.resolveVariable(ctx, v.VarKey, chain, waiter)
		if err != nil {
			return value.V{}, false, err
		}
		return resolved, true, nil
	}
	out, changed, err := l.hook(ctx, v)
	if err != nil {
		diag.Errorf("link.step", "hook failed: %v", err)
	}
	return out, changed, err
}

func (l *Linker) resolveVariable(ctx context.Context, key graph.Key, chain map[graph.Key]bool, waiter waiterID) (value.V, error) {
	if chain[key] {
		diag.Debugf("link.resolveVariable", "cyclic reference detected")
		ref := value.NewVariable(key)
		return value.Unknown(&ref, "cyclic variable reference"), nil
	}

	cached, kind, err := l.cache.claim(ctx, key, waiter)
	if err != nil {
		return value.V{}, err
	}
	if kind == cyclic {
		diag.Debugf("link.resolveVariable", "cross-goroutine cyclic reference detected")
		ref := value.NewVariable(key)
		return value.Unknown(&ref, "cyclic variable reference"), nil
	}
	if kind == useValue {
		return cached, nil
	}

	g, ok := l.graph.Lookup(key)
	if !ok {
		resolved := value.Unknown(nil, "no value of this variable analysed")
		l.cache.resolve(key, resolved)
		return resolved, nil
	}

	resolved, err := l.link(ctx, g, extendChain(chain, key), waiter)
	if err != nil {
		l.cache.abandon(key, err)
		return value.V{}, err
	}
	l.cache.resolve(key, resolved)
	return resolved, nil
}

func extendChain(chain map[graph.Key]bool, key graph.Key) map[graph.Key]bool {
	out := make(map[graph.Key]bool, len(chain)+1)
	for k := range chain {
		out[k] = true
	}
	out[key] = true
	return out
}

// Options configures LinkAll.
type Options struct {
	// Concurrency bounds how many keys are linked at once. Zero means
	// runtime.GOMAXPROCS(0).
	Concurrency int
}

// LinkAll links every key present in g, per §5: concurrent linking of
// distinct keys is permitted and the cache serializes shared work. Bounded
// concurrency and first-error capture follow the teacher's own
// limitedWorkerGroup idiom (semaphore-bounded goroutines, errors.Once),
// generalized to a caller-configurable limit rather than a hardcoded
// NumCPU multiple.
func (l *Linker) LinkAll(ctx context.Context, opts Options) (map[graph.Key]value.V, error) {
	keys := l.graph.Keys()
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	sem := semaphore.NewWeighted(int64(limit))

	var (
		wg     sync.WaitGroup
		firstE errors.Once
		mu     sync.Mutex
	)
	out := make(map[graph.Key]value.V, len(keys))

	for _, key := range keys {
		key := key
		if err := sem.Acquire(ctx, 1); err != nil {
			firstE.Set(err)
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			g, ok := l.graph.Lookup(key)
			if !ok {
				return
			}
			linked, err := l.Link(ctx, g)
			if err != nil {
				firstE.Set(err)
				return
			}
			mu.Lock()
			out[key] = linked
			mu.Unlock()
		}()
	}
	wg.Wait()

	if err := firstE.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
