// Package depgraph reports cyclic key sets in a dependency graph ahead of
// time, as a diagnostic aid independent of the linker's own lazy,
// in-progress-marker cycle detection (link.Cache). A caller who wants to
// log or count "how many mutually-cyclic bindings does this program have"
// can ask depgraph without running the linker at all.
package depgraph

import "v.io/x/lib/toposort"

// edge records one "from must come before to" constraint, deduplicated so
// that adding the same constraint twice does not grow the sorter.
type edge struct{ from, to interface{} }

// T accumulates nodes and edges for one toposort run. Nodes are compared by
// Go equality, so callers should pass comparable values (graph.Key
// satisfies this).
type T struct {
	sorter     toposort.Sorter
	edgesAdded map[edge]bool
	hasNode    map[interface{}]bool
}

// New creates an empty dependency graph.
func New() *T {
	return &T{
		edgesAdded: map[edge]bool{},
		hasNode:    map[interface{}]bool{},
	}
}

// AddNode registers a node with no known dependencies, so it still appears
// in Cycles' bookkeeping even if it never appears in an edge.
func (t *T) AddNode(node interface{}) {
	if !t.hasNode[node] {
		t.hasNode[node] = true
		t.sorter.AddNode(node)
	}
}

// AddEdge records that referrer references referent — e.g., a Variable(k1)
// appearing in the graph value bound to k0 adds AddEdge(k0, k1).
func (t *T) AddEdge(referrer, referent interface{}) {
	t.AddNode(referrer)
	t.AddNode(referent)
	e := edge{referrer, referent}
	if !t.edgesAdded[e] {
		t.edgesAdded[e] = true
		t.sorter.AddEdge(referrer, referent)
	}
}

// Cycles returns the set of cyclic node groups found among the edges added
// so far. An empty result means the graph is a DAG.
func (t *T) Cycles() [][]interface{} {
	_, cycles := t.sorter.Sort()
	return cycles
}
