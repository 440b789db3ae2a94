package link_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loadgraph/loadgraph/graph"
	"github.com/loadgraph/loadgraph/internal/past"
	"github.com/loadgraph/loadgraph/internal/symbol"
	"github.com/loadgraph/loadgraph/link"
	"github.com/loadgraph/loadgraph/rewrite"
	"github.com/loadgraph/loadgraph/value"
)

const scope past.ScopeTag = "top"

func wellKnownAndFoldHook() link.Hook {
	return func(_ context.Context, v value.V) (value.V, bool, error) {
		if out, changed := rewrite.WellKnown(v); changed {
			return out, true, nil
		}
		if out, changed := rewrite.Fold(v); changed {
			return out, true, nil
		}
		return v, false, nil
	}
}

func ident(sym symbol.ID) past.Node {
	return past.IdentRef{Ident: past.Ident{Symbol: sym, Scope: scope}}
}

func buildGraph(bindings map[symbol.ID]past.Node) *graph.Graph {
	bound := make(map[symbol.ID]bool, len(bindings))
	for sym := range bindings {
		bound[sym] = true
	}
	var statements []past.Statement
	for sym, expr := range bindings {
		statements = append(statements, past.Statement{
			Target: past.AssignTarget{Ident: past.Ident{Symbol: sym, Scope: scope}, Simple: true},
			Expr:   expr,
		})
	}
	return graph.Build(past.Program{TopLevelScope: scope, TopLevelBindings: bound, Statements: statements})
}

func TestLinkSubstitutesVariable(t *testing.T) {
	x := symbol.Intern("link-x")
	g := buildGraph(map[symbol.ID]past.Node{x: past.Literal{Tag: past.StringLiteral, Str: "hello"}})
	xKey := graph.Key{Symbol: int32(x), Scope: scope}

	linker := link.NewLinker(g, link.NewCache(), nil)
	out, err := linker.Link(context.Background(), value.NewVariable(xKey))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.String("hello"), out))
}

func TestLinkCycleProducesUnknown(t *testing.T) {
	a := symbol.Intern("link-a-self")
	g := buildGraph(map[symbol.ID]past.Node{a: ident(a)})
	aKey := graph.Key{Symbol: int32(a), Scope: scope}

	linker := link.NewLinker(g, link.NewCache(), nil)
	out, err := linker.Link(context.Background(), value.NewVariable(aKey))
	require.NoError(t, err)
	assert.Equal(t, value.UnknownKind, out.Kind)
	assert.Equal(t, "cyclic variable reference", out.Explainer)
	require.NotNil(t, out.Inner)
	assert.Equal(t, value.VariableKind, out.Inner.Kind)
}

func TestLinkMutualCycleProducesUnknown(t *testing.T) {
	a := symbol.Intern("link-a-mutual")
	b := symbol.Intern("link-b-mutual")
	g := buildGraph(map[symbol.ID]past.Node{
		a: ident(b),
		b: ident(a),
	})
	aKey := graph.Key{Symbol: int32(a), Scope: scope}

	linker := link.NewLinker(g, link.NewCache(), nil)
	out, err := linker.Link(context.Background(), value.NewVariable(aKey))
	require.NoError(t, err)
	assert.Equal(t, value.UnknownKind, out.Kind)
}

func TestLinkAppliesWellKnownAndFoldToFixpoint(t *testing.T) {
	// var p = require("path"); var j = p.join("a", "b");
	p := symbol.Intern("link-require-path")
	j := symbol.Intern("link-join-call")
	requirePath := past.Call{
		Callee: ident(symbol.Require),
		Args:   []past.Node{past.Literal{Tag: past.StringLiteral, Str: "path"}},
	}
	callJoin := past.Call{
		Callee: past.Member{
			Object:   ident(p),
			Property: past.Literal{Tag: past.StringLiteral, Str: "join"},
		},
		Args: []past.Node{
			past.Literal{Tag: past.StringLiteral, Str: "a"},
			past.Literal{Tag: past.StringLiteral, Str: "b"},
		},
	}
	g := buildGraph(map[symbol.ID]past.Node{p: requirePath, j: callJoin})
	jKey := graph.Key{Symbol: int32(j), Scope: scope}

	linker := link.NewLinker(g, link.NewCache(), wellKnownAndFoldHook())
	out, err := linker.Link(context.Background(), value.NewVariable(jKey))
	require.NoError(t, err)
	assert.Equal(t, value.ConstantKind, out.Kind)
	assert.Equal(t, "a/b", out.Literal.Str)
}

func TestLinkCondResolvesToAlternativesOfBothBranches(t *testing.T) {
	// var m = cond ? "./x" : "./y"; var r = require(m);
	m := symbol.Intern("link-cond-m")
	r := symbol.Intern("link-cond-r")
	condExpr := past.Cond{
		Cond: past.Literal{Tag: past.BoolLiteral, Bool: true},
		Then: past.Literal{Tag: past.StringLiteral, Str: "./x"},
		Else: past.Literal{Tag: past.StringLiteral, Str: "./y"},
	}
	requireM := past.Call{Callee: ident(symbol.Require), Args: []past.Node{ident(m)}}
	g := buildGraph(map[symbol.ID]past.Node{m: condExpr, r: requireM})
	rKey := graph.Key{Symbol: int32(r), Scope: scope}

	linker := link.NewLinker(g, link.NewCache(), wellKnownAndFoldHook())
	out, err := linker.Link(context.Background(), value.NewVariable(rKey))
	require.NoError(t, err)
	assert.Equal(t, value.CallKind, out.Kind)
	assert.Equal(t, value.WellKnownFunctionKind, out.Callee.Kind)
	assert.Equal(t, value.RequireFunction, out.Callee.WKFunction)
	require.Len(t, out.Args, 1)
	assert.Equal(t, value.AlternativesKind, out.Args[0].Kind)
}

func TestLinkMissingKeyYieldsUnknown(t *testing.T) {
	g := graph.New()
	linker := link.NewLinker(g, link.NewCache(), nil)
	out, err := linker.Link(context.Background(), value.NewVariable(graph.Key{Symbol: 99999}))
	require.NoError(t, err)
	assert.Equal(t, value.UnknownKind, out.Kind)
	assert.Equal(t, "no value of this variable analysed", out.Explainer)
}

func TestLinkAllResolvesEveryKey(t *testing.T) {
	x := symbol.Intern("link-all-x")
	y := symbol.Intern("link-all-y")
	g := buildGraph(map[symbol.ID]past.Node{
		x: past.Literal{Tag: past.StringLiteral, Str: "x-value"},
		y: ident(x),
	})
	xKey := graph.Key{Symbol: int32(x), Scope: scope}
	yKey := graph.Key{Symbol: int32(y), Scope: scope}

	linker := link.NewLinker(g, link.NewCache(), nil)
	out, err := linker.LinkAll(context.Background(), link.Options{Concurrency: 2})
	require.NoError(t, err)
	assert.True(t, value.Equal(value.String("x-value"), out[xKey]))
	assert.True(t, value.Equal(value.String("x-value"), out[yKey]))
}

// TestLinkAllCrossGoroutineCycleDoesNotDeadlock covers a cycle that only
// closes across two distinct LinkAll goroutines: a's root is Variable(b)
// and b's root is Variable(a), so each goroutine's own call-chain check
// never sees a repeated key — only the cache's cross-goroutine wait-for
// check can catch it. Without that check this hangs forever; the bounded
// context here turns a regression into a failing test instead of a wedged
// test binary.
func TestLinkAllCrossGoroutineCycleDoesNotDeadlock(t *testing.T) {
	a := symbol.Intern("link-cross-a")
	b := symbol.Intern("link-cross-b")
	g := buildGraph(map[symbol.ID]past.Node{
		a: ident(b),
		b: ident(a),
	})
	aKey := graph.Key{Symbol: int32(a), Scope: scope}
	bKey := graph.Key{Symbol: int32(b), Scope: scope}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	linker := link.NewLinker(g, link.NewCache(), nil)
	out, err := linker.LinkAll(ctx, link.Options{Concurrency: 2})
	require.NoError(t, err)
	assert.Equal(t, value.UnknownKind, out[aKey].Kind)
	assert.Equal(t, value.UnknownKind, out[bKey].Kind)
}

func TestLinkAllDeterministicAcrossConcurrency(t *testing.T) {
	x := symbol.Intern("link-det-x")
	y := symbol.Intern("link-det-y")
	z := symbol.Intern("link-det-z")
	g := buildGraph(map[symbol.ID]past.Node{
		x: past.Literal{Tag: past.StringLiteral, Str: "shared"},
		y: ident(x),
		z: ident(x),
	})

	seq, err := link.NewLinker(g, link.NewCache(), nil).LinkAll(context.Background(), link.Options{Concurrency: 1})
	require.NoError(t, err)
	par, err := link.NewLinker(g, link.NewCache(), nil).LinkAll(context.Background(), link.Options{Concurrency: 8})
	require.NoError(t, err)

	assert.Equal(t, len(seq), len(par))
	for key, v := range seq {
		other, ok := par[key]
		require.True(t, ok)
		assert.True(t, value.Equal(v, other))
	}
}
