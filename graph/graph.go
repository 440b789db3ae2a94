// Package graph walks a resolved syntax tree once and produces a mapping
// from top-level identifier keys to the symbolic value (value.V) of every
// right-hand side that may flow into that binding.
package graph

import "github.com/loadgraph/loadgraph/value"

// Key identifies one binding in the graph: an interned symbol together
// with the scope it was declared in. It is exactly value.Key — graph
// reuses the value package's own key type rather than define a parallel
// one, since a Variable's VarKey must already be a Key to begin with.
type Key = value.Key

// Graph is the variable-reference graph G: a mapping from identifier keys
// to the disjunction of every observed right-hand side. It is a plain
// value, built once per analysis and passed explicitly — there is no
// global mutable graph.
type Graph struct {
	entries map[Key]value.V
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{entries: map[Key]value.V{}}
}

// Lookup returns the merged value bound to key and whether key is present
// at all.
func (g *Graph) Lookup(key Key) (value.V, bool) {
	v, ok := g.entries[key]
	return v, ok
}

// Keys returns every key with at least one entry. Order is unspecified.
func (g *Graph) Keys() []Key {
	keys := make([]Key, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len reports how many distinct keys have an entry.
func (g *Graph) Len() int {
	return len(g.entries)
}

// merge folds rhs into key's existing entry via value.V.AddAlt, the way
// multiple assignments to the same top-level binding accumulate into an
// Alternatives.
func (g *Graph) merge(key Key, rhs value.V) {
	if existing, ok := g.entries[key]; ok {
		g.entries[key] = existing.AddAlt(rhs)
	} else {
		g.entries[key] = rhs
	}
}
