package analysis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loadgraph/loadgraph/graph"
	"github.com/loadgraph/loadgraph/internal/analysis"
	"github.com/loadgraph/loadgraph/internal/past"
	"github.com/loadgraph/loadgraph/internal/symbol"
	"github.com/loadgraph/loadgraph/value"
)

const topLevel past.ScopeTag = "top"

func TestAnalyzeConcatScenario(t *testing.T) {
	// var x = "./a" + "/b";
	x := symbol.Intern("analysis-x")
	prog := past.Program{
		TopLevelScope:    topLevel,
		TopLevelBindings: map[symbol.ID]bool{x: true},
		Statements: []past.Statement{
			{
				Target: past.AssignTarget{Ident: past.Ident{Symbol: x, Scope: topLevel}, Simple: true},
				Expr: past.BinaryAdd{
					Left:  past.Literal{Tag: past.StringLiteral, Str: "./a"},
					Right: past.Literal{Tag: past.StringLiteral, Str: "/b"},
				},
			},
		},
	}

	_, results, err := analysis.Analyze(context.Background(), prog, analysis.Options{})
	require.NoError(t, err)

	got := results[graph.Key{Symbol: int32(x), Scope: topLevel}]
	assert.True(t, value.Equal(value.String("./a/b"), got))
}

func TestAnalyzeRequirePathJoinScenario(t *testing.T) {
	// var p = require("path"); var j = p.join("a", "b");
	p := symbol.Intern("analysis-p")
	j := symbol.Intern("analysis-j")
	prog := past.Program{
		TopLevelScope: topLevel,
		TopLevelBindings: map[symbol.ID]bool{
			p: true, j: true,
		},
		Statements: []past.Statement{
			{
				Target: past.AssignTarget{Ident: past.Ident{Symbol: p, Scope: topLevel}, Simple: true},
				Expr: past.Call{
					Callee: past.IdentRef{Ident: past.Ident{Symbol: symbol.Require, Scope: topLevel}},
					Args:   []past.Node{past.Literal{Tag: past.StringLiteral, Str: "path"}},
				},
			},
			{
				Target: past.AssignTarget{Ident: past.Ident{Symbol: j, Scope: topLevel}, Simple: true},
				Expr: past.Call{
					Callee: past.Member{
						Object:   past.IdentRef{Ident: past.Ident{Symbol: p, Scope: topLevel}},
						Property: past.Literal{Tag: past.StringLiteral, Str: "join"},
					},
					Args: []past.Node{
						past.Literal{Tag: past.StringLiteral, Str: "a"},
						past.Literal{Tag: past.StringLiteral, Str: "b"},
					},
				},
			},
		},
	}

	_, results, err := analysis.Analyze(context.Background(), prog, analysis.Options{Concurrency: 4})
	require.NoError(t, err)

	got := results[graph.Key{Symbol: int32(j), Scope: topLevel}]
	assert.True(t, value.Equal(value.String("a/b"), got))
}

func TestAnalyzeSelfCycle(t *testing.T) {
	// var a = a;
	a := symbol.Intern("analysis-self-cycle")
	prog := past.Program{
		TopLevelScope:    topLevel,
		TopLevelBindings: map[symbol.ID]bool{a: true},
		Statements: []past.Statement{
			{
				Target: past.AssignTarget{Ident: past.Ident{Symbol: a, Scope: topLevel}, Simple: true},
				Expr:   past.IdentRef{Ident: past.Ident{Symbol: a, Scope: topLevel}},
			},
		},
	}

	_, results, err := analysis.Analyze(context.Background(), prog, analysis.Options{})
	require.NoError(t, err)

	got := results[graph.Key{Symbol: int32(a), Scope: topLevel}]
	assert.Equal(t, value.UnknownKind, got.Kind)
	assert.Equal(t, "cyclic variable reference", got.Explainer)
}
