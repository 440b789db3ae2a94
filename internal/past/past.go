// Package past ("pseudo-AST") defines the minimal syntax-tree contract this
// module's graph builder consumes. It is the seam the spec's §1 "assumed
// already performed by an external resolver" boundary crosses: any parser
// and name resolver that produces these shapes can drive package graph.
// past itself parses nothing and resolves nothing.
package past

import "github.com/loadgraph/loadgraph/internal/symbol"

// ScopeTag is an opaque, comparable scope marker supplied by the caller's
// name resolver. One designated value names the top-level scope.
type ScopeTag interface{}

// Ident is a resolved identifier reference: a symbol together with the
// scope it was bound in.
type Ident struct {
	Symbol symbol.ID
	Scope  ScopeTag
}

// Node is the sum of syntactic shapes the graph builder switches over.
// Concrete types below are the only implementations; Node is closed over
// this package the way value.V is closed over package value.
type Node interface {
	isNode()
}

// Literal is a literal expression: a string, number, boolean, null, regex
// source, or big-integer source text, tagged the same way value.Literal is.
type Literal struct {
	Tag  LiteralTag
	Str  string
	Num  float64
	Bool bool
}

// LiteralTag distinguishes Literal's payload, mirroring value.LiteralKind
// one level up (before translation).
type LiteralTag byte

const (
	InvalidLiteral LiteralTag = iota
	StringLiteral
	NumberLiteral
	BoolLiteral
	NullLiteral
	RegexLiteral
	BigIntLiteral
)

// IdentRef is an identifier appearing in expression position.
type IdentRef struct {
	Ident Ident
}

// Template is a template literal: Quasis has one more element than Exprs,
// interleaved as Quasis[0] Exprs[0] Quasis[1] Exprs[1] ... Quasis[n].
type Template struct {
	Quasis []string
	Exprs  []Node
}

// BinaryAdd is a `+` expression; the graph builder does not need other
// binary operators, which a caller should instead fold into Unsupported.
type BinaryAdd struct {
	Left, Right Node
}

// ArrayLit is an array literal.
type ArrayLit struct {
	Elems []Node
}

// Call is a function call. Member-call desugaring (`obj.m(args)` becoming
// Call(Member(obj, "m"), args)) happens in the caller's parser/resolver —
// past.Call always already has its Member, if any, as Callee.
type Call struct {
	Callee Node
	Args   []Node
}

// Member is a property access. Property is a Node so that computed member
// access (`obj[expr]`) can be represented; a static property name is a
// Literal with Tag StringLiteral.
type Member struct {
	Object   Node
	Property Node
}

// Cond is `cond ? then : else`.
type Cond struct {
	Cond, Then, Else Node
}

// Func is a function expression or declaration. Params lists the symbols
// bound to each positional parameter inside the function's own scope;
// Returns lists every reachable `return`'s expression, already resolved
// against that inner scope.
type Func struct {
	Params  []Ident
	Returns []Node
}

// Unsupported marks a syntactic construct the caller's translation step
// could not or chose not to represent; Reason is a short static string
// surfacing as Unknown's explainer.
type Unsupported struct {
	Reason string
}

func (Literal) isNode()     {}
func (IdentRef) isNode()    {}
func (Template) isNode()    {}
func (BinaryAdd) isNode()   {}
func (ArrayLit) isNode()    {}
func (Call) isNode()        {}
func (Member) isNode()      {}
func (Cond) isNode()        {}
func (Func) isNode()        {}
func (Unsupported) isNode() {}

// Children enumerates n's direct child nodes in evaluation order, the
// pseudo-AST analogue of astChildren: used by callers that want to walk a
// Program generically (e.g. to count syntactic constructs) without
// duplicating the graph builder's own switch.
func Children(n Node) []Node {
	switch n := n.(type) {
	case Template:
		return n.Exprs
	case BinaryAdd:
		return []Node{n.Left, n.Right}
	case ArrayLit:
		return n.Elems
	case Call:
		children := make([]Node, 0, 1+len(n.Args))
		children = append(children, n.Callee)
		children = append(children, n.Args...)
		return children
	case Member:
		return []Node{n.Object, n.Property}
	case Cond:
		return []Node{n.Cond, n.Then, n.Else}
	case Func:
		return n.Returns
	default:
		return nil
	}
}

// AssignTarget is the left-hand side of a top-level statement. Only a
// plain resolved identifier produces a graph entry; Simple is false for
// destructuring patterns, spread targets, and member-expression targets,
// none of which this module's graph builder merges into G (see the Open
// Question decision in this module's design notes).
type AssignTarget struct {
	Ident  Ident
	Simple bool
}

// Statement is one top-level declaration or assignment visible to the
// graph builder.
type Statement struct {
	Target AssignTarget
	Expr   Node
}

// Program is the whole of what the graph builder needs from a parsed,
// resolved source file: the designated top-level scope tag, the set of
// identifiers bound at top level (used by the FreeVar rule), and the
// top-level statements themselves.
type Program struct {
	TopLevelScope    ScopeTag
	TopLevelBindings map[symbol.ID]bool
	Statements       []Statement
}
