// Package value implements the symbolic value lattice (V): the type every
// other package in this module builds, rewrites, links, or classifies.
package value

import "net/url"

// Key identifies a binding in the variable-reference graph: an interned
// symbol together with an opaque scope tag supplied by the caller's name
// resolver. Two keys are equal iff both fields are equal, so Key is safe to
// use as a map key and as toposort/depgraph node identity.
type Key struct {
	Symbol int32       // interned identifier; see package symbol for the intern table.
	Scope  interface{} // opaque, comparable scope tag; TopLevel is one designated value.
}

// V is the symbolic value lattice described by this module: a recursively
// defined tagged sum approximating the set of run-time values a binding may
// hold. The zero V is not meaningful on its own: its Kind is InvalidKind,
// not UnknownKind, so it is not an Unknown. Use Unknown(nil, "") for
// "nothing is known".
//
// Only the fields relevant to Kind are populated; callers must not read a
// field without checking Kind first. Kept as ordinary typed fields rather
// than a single packed pointer, since V is built and walked far less often
// than a query engine's runtime values are.
type V struct {
	Kind Kind

	// ConstantKind
	Literal Literal

	// URLKind
	URL *url.URL

	// ArrayKind, AlternativesKind, ConcatKind, AddKind
	List []V

	// CallKind
	Callee *V
	Args   []V

	// MemberKind
	Object   *V
	Property *V

	// FunctionKind
	Return *V

	// ArgumentKind
	Index int

	// VariableKind
	VarKey Key

	// FreeVarKind
	FreeVar     FreeVarTag
	FreeVarName string // populated only when FreeVar == OtherFreeVar

	// ModuleKind
	ModuleSpecifier string

	// WellKnownObjectKind
	WKObject WellKnownObjectTag

	// WellKnownFunctionKind
	WKFunction     WellKnownFunctionTag
	WKFunctionName string // populated only when WKFunction == FSReadMethod

	// UnknownKind
	Inner     *V
	Explainer string
}

// Literal is the payload of a Constant.
type Literal struct {
	Kind LiteralKind
	Str  string  // StringLiteral, RegexLiteral (source text), BigIntLiteral (decimal text)
	Num  float64 // NumberLiteral
	Bool bool    // BoolLiteral
}

// --- Constructors -----------------------------------------------------

// Unknown builds an opaque value with optional provenance. A nil inner with
// an empty explainer is the default, least-informative value.
func Unknown(inner *V, explainer string) V {
	return V{Kind: UnknownKind, Inner: inner, Explainer: explainer}
}

// String builds a Constant holding a string literal.
func String(s string) V {
	return V{Kind: ConstantKind, Literal: Literal{Kind: StringLiteral, Str: s}}
}

// Number builds a Constant holding a numeric literal.
func Number(n float64) V {
	return V{Kind: ConstantKind, Literal: Literal{Kind: NumberLiteral, Num: n}}
}

// Bool builds a Constant holding a boolean literal.
func Bool(b bool) V {
	return V{Kind: ConstantKind, Literal: Literal{Kind: BoolLiteral, Bool: b}}
}

// Null builds a Constant holding the null literal.
func Null() V {
	return V{Kind: ConstantKind, Literal: Literal{Kind: NullLiteral}}
}

// Regex builds a Constant holding a regular-expression literal's source
// text (e.g. "/abc/i").
func Regex(source string) V {
	return V{Kind: ConstantKind, Literal: Literal{Kind: RegexLiteral, Str: source}}
}

// BigInt builds a Constant holding a big-integer literal's decimal text.
func BigInt(decimal string) V {
	return V{Kind: ConstantKind, Literal: Literal{Kind: BigIntLiteral, Str: decimal}}
}

// URLValue builds a Url value from an already-parsed URL.
func URLValue(u *url.URL) V {
	return V{Kind: URLKind, URL: u}
}

// NewArray builds an Array value.
func NewArray(elems []V) V {
	return V{Kind: ArrayKind, List: elems}
}

// NewAlternatives builds an Alternatives value. Callers normally reach this
// through add_alt rather than directly.
func NewAlternatives(elems []V) V {
	return V{Kind: AlternativesKind, List: elems}
}

// NewConcat builds a Concat value.
func NewConcat(elems []V) V {
	return V{Kind: ConcatKind, List: elems}
}

// NewAdd builds an Add value.
func NewAdd(elems []V) V {
	return V{Kind: AddKind, List: elems}
}

// NewCall builds a Call value.
func NewCall(callee V, args []V) V {
	return V{Kind: CallKind, Callee: &callee, Args: args}
}

// NewMember builds a Member value.
func NewMember(obj, prop V) V {
	return V{Kind: MemberKind, Object: &obj, Property: &prop}
}

// NewFunction builds a Function value from its return-value approximation.
func NewFunction(ret V) V {
	return V{Kind: FunctionKind, Return: &ret}
}

// NewArgument builds an Argument value referencing the i'th positional
// parameter of the enclosing Function.
func NewArgument(i int) V {
	return V{Kind: ArgumentKind, Index: i}
}

// NewVariable builds a Variable value referencing a graph key.
func NewVariable(key Key) V {
	return V{Kind: VariableKind, VarKey: key}
}

// NewFreeVar builds a FreeVar value for one of the well-known host globals.
func NewFreeVar(tag FreeVarTag) V {
	return V{Kind: FreeVarKind, FreeVar: tag}
}

// NewOtherFreeVar builds a FreeVar value for an unresolved name that is not
// one of the well-known host globals.
func NewOtherFreeVar(name string) V {
	return V{Kind: FreeVarKind, FreeVar: OtherFreeVar, FreeVarName: name}
}

// NewModule builds a Module value for an imported module specifier.
func NewModule(specifier string) V {
	return V{Kind: ModuleKind, ModuleSpecifier: specifier}
}

// NewWellKnownObject builds a WellKnownObject value.
func NewWellKnownObject(tag WellKnownObjectTag) V {
	return V{Kind: WellKnownObjectKind, WKObject: tag}
}

// NewWellKnownFunction builds a WellKnownFunction value for a tag other
// than FSReadMethod.
func NewWellKnownFunction(tag WellKnownFunctionTag) V {
	return V{Kind: WellKnownFunctionKind, WKFunction: tag}
}

// NewFSReadMethod builds the WellKnownFunction(FS_READ_METHOD(name)) value.
func NewFSReadMethod(name string) V {
	return V{Kind: WellKnownFunctionKind, WKFunction: FSReadMethod, WKFunctionName: name}
}

// IsEmpty reports whether v is the least-informative Unknown: no inner
// cause, no explainer. Used by callers distinguishing "nothing was even
// attempted" from "analysis ran and gave up".
func (v V) IsEmpty() bool {
	return v.Kind == UnknownKind && v.Inner == nil && v.Explainer == ""
}
