package graph

import (
	"github.com/loadgraph/loadgraph/internal/diag"
	"github.com/loadgraph/loadgraph/internal/past"
	"github.com/loadgraph/loadgraph/internal/symbol"
	"github.com/loadgraph/loadgraph/value"
)

// Build walks prog's top-level statements once and returns the graph they
// produce. Each statement's expression is translated to a value.V; if its
// target is a simple resolved identifier, the translated value is merged
// into that identifier's entry via add_alt. Statements whose target is not
// a simple identifier (destructuring, spread, a member-expression target)
// still have their RHS translated — so any well-knowns or free variables it
// references remain discoverable — but the result is not merged into any
// key, per this module's reading of the spec's open question on
// non-identifier assignment targets.
func Build(prog past.Program) *Graph {
	b := &builder{
		graph:            New(),
		topLevelScope:    prog.TopLevelScope,
		topLevelBindings: prog.TopLevelBindings,
	}
	for _, st := range prog.Statements {
		rhs := b.translate(st.Expr, nil)
		if st.Target.Simple {
			b.graph.merge(Key{Symbol: int32(st.Target.Ident.Symbol), Scope: st.Target.Ident.Scope}, rhs)
		}
	}
	return b.graph
}

// builder carries the per-run state the translation needs: which graph
// entries from the same run to merge into, and which scope tag is the
// designated top-level one (for the FreeVar rule, §4.2).
type builder struct {
	graph            *Graph
	topLevelScope    past.ScopeTag
	topLevelBindings map[symbol.ID]bool
}

// paramScope names the synthetic scope an enclosing Function's parameters
// are considered bound in while translating its body, so that a parameter
// reference resolves to Argument(i) rather than falling through to the
// FreeVar rule or the enclosing graph.
type paramScope struct {
	index map[symbol.ID]int
}

func (b *builder) translate(n past.Node, params *paramScope) value.V {
	switch n := n.(type) {
	case past.Literal:
		return translateLiteral(n)

	case past.IdentRef:
		return b.translateIdent(n.Ident, params)

	case past.Template:
		return b.translateTemplate(n, params)

	case past.BinaryAdd:
		left := b.translate(n.Left, params)
		right := b.translate(n.Right, params)
		return value.NewAdd([]value.V{left, right})

	case past.ArrayLit:
		elems := make([]value.V, len(n.Elems))
		for i, e := range n.Elems {
			elems[i] = b.translate(e, params)
		}
		return value.NewArray(elems)

	case past.Call:
		callee := b.translate(n.Callee, params)
		args := make([]value.V, len(n.Args))
		for i, a := range n.Args {
			args[i] = b.translate(a, params)
		}
		return value.NewCall(callee, args)

	case past.Member:
		obj := b.translate(n.Object, params)
		prop := b.translate(n.Property, params)
		if name, ok := propertyLiteral(prop); ok && obj.Kind == value.FreeVarKind &&
			obj.FreeVar == value.RequireFreeVar && name == symbol.RequireResolve.String() {
			return value.NewFreeVar(value.RequireResolveFreeVar)
		}
		return value.NewMember(obj, prop)

	case past.Cond:
		then := b.translate(n.Then, params)
		els := b.translate(n.Else, params)
		return then.AddAlt(els)

	case past.Func:
		return b.translateFunc(n)

	case past.Unsupported:
		diag.Debugf("graph.Build", "unsupported construct: %s", n.Reason)
		return value.Unknown(nil, n.Reason)

	default:
		diag.Debugf("graph.Build", "untranslatable node of type %T", n)
		return value.Unknown(nil, "unsupported syntactic construct")
	}
}

func translateLiteral(n past.Literal) value.V {
	switch n.Tag {
	case past.StringLiteral:
		return value.String(n.Str)
	case past.NumberLiteral:
		return value.Number(n.Num)
	case past.BoolLiteral:
		return value.Bool(n.Bool)
	case past.NullLiteral:
		return value.Null()
	case past.RegexLiteral:
		return value.Regex(n.Str)
	case past.BigIntLiteral:
		return value.BigInt(n.Str)
	default:
		return value.Unknown(nil, "unrecognized literal")
	}
}

func (b *builder) translateTemplate(n past.Template, params *paramScope) value.V {
	parts := make([]value.V, 0, len(n.Quasis)+len(n.Exprs))
	for i, quasi := range n.Quasis {
		parts = append(parts, value.String(quasi))
		if i < len(n.Exprs) {
			parts = append(parts, b.translate(n.Exprs[i], params))
		}
	}
	return value.NewConcat(parts)
}

// translateIdent implements the identifier-resolution rule of §4.2: a
// parameter reference inside the enclosing Function becomes Argument(i); an
// identifier whose scope is the designated top-level scope but is not among
// the top-level bindings is unresolved and becomes the matching FreeVar
// (or FreeVar::Other); anything else is a Variable reference into the graph.
func (b *builder) translateIdent(id past.Ident, params *paramScope) value.V {
	if params != nil {
		if i, ok := params.index[id.Symbol]; ok {
			return value.NewArgument(i)
		}
	}
	if id.Scope == b.topLevelScope && !b.topLevelBindings[id.Symbol] {
		return freeVarFor(id.Symbol)
	}
	return value.NewVariable(Key{Symbol: int32(id.Symbol), Scope: id.Scope})
}

// propertyLiteral extracts a Member's constant string property name, the
// shape a plain `.resolve` access always takes once translated.
func propertyLiteral(prop value.V) (string, bool) {
	if prop.Kind != value.ConstantKind || prop.Literal.Kind != value.StringLiteral {
		return "", false
	}
	return prop.Literal.Str, true
}

func freeVarFor(sym symbol.ID) value.V {
	switch sym {
	case symbol.Dirname:
		return value.NewFreeVar(value.DirnameFreeVar)
	case symbol.Require:
		return value.NewFreeVar(value.RequireFreeVar)
	case symbol.Import:
		return value.NewFreeVar(value.ImportFreeVar)
	default:
		return value.NewOtherFreeVar(sym.String())
	}
}

// translateFunc implements the Function translation rule of §4.2: the
// return value is the Alternatives of every reachable return's expression,
// translated with parameter references mapped to Argument(i).
func (b *builder) translateFunc(n past.Func) value.V {
	index := make(map[symbol.ID]int, len(n.Params))
	for i, p := range n.Params {
		index[p.Symbol] = i
	}
	scope := &paramScope{index: index}

	if len(n.Returns) == 0 {
		return value.NewFunction(value.Unknown(nil, "function has no reachable return"))
	}
	ret := b.translate(n.Returns[0], scope)
	for _, r := range n.Returns[1:] {
		ret = ret.AddAlt(b.translate(r, scope))
	}
	return value.NewFunction(ret)
}
