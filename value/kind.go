package value

//go:generate stringer -type Kind kind.go

// Kind tags which variant of the symbolic value lattice a V holds.
type Kind byte

const (
	// InvalidKind is the zero value and never appears on a well-formed V.
	InvalidKind Kind = iota
	// ConstantKind holds a fully known literal.
	ConstantKind
	// URLKind holds a known, parsed URL.
	URLKind
	// ArrayKind holds an ordered sequence of symbolic elements.
	ArrayKind
	// AlternativesKind holds a deduplicated, order-irrelevant disjunction.
	AlternativesKind
	// ConcatKind holds an ordered template-literal-style string concatenation.
	ConcatKind
	// AddKind holds an ordered `+` chain of yet-unresolved operand types.
	AddKind
	// CallKind holds a callee and its ordered arguments.
	CallKind
	// MemberKind holds a property access on an object.
	MemberKind
	// FunctionKind holds an opaque function characterized by its return value.
	FunctionKind
	// ArgumentKind holds a positional parameter reference of the enclosing Function.
	ArgumentKind
	// VariableKind holds a reference to a binding in the graph.
	VariableKind
	// FreeVarKind holds an unresolved global reference.
	FreeVarKind
	// ModuleKind holds an imported module's specifier string.
	ModuleKind
	// WellKnownObjectKind holds a recognized host built-in object.
	WellKnownObjectKind
	// WellKnownFunctionKind holds a recognized host built-in callable.
	WellKnownFunctionKind
	// UnknownKind holds an opaque value with provenance.
	UnknownKind
)

// LiteralKind distinguishes the concrete payload carried by a Constant.
type LiteralKind byte

const (
	// InvalidLiteral is the zero value and never appears on a well-formed Constant.
	InvalidLiteral LiteralKind = iota
	StringLiteral
	NumberLiteral
	BoolLiteral
	NullLiteral
	RegexLiteral
	BigIntLiteral
)

// FreeVarTag distinguishes the well-known host globals from arbitrary
// unresolved names.
type FreeVarTag byte

const (
	// InvalidFreeVar is the zero value and never appears on a well-formed FreeVar.
	InvalidFreeVar FreeVarTag = iota
	DirnameFreeVar
	RequireFreeVar
	ImportFreeVar
	RequireResolveFreeVar
	OtherFreeVar
)

// WellKnownObjectTag identifies a recognized host built-in module object.
type WellKnownObjectTag byte

const (
	InvalidWKObject WellKnownObjectTag = iota
	PathModule
	FSModule
	URLModule
	ChildProcessModule
)

// WellKnownFunctionTag identifies a recognized host built-in callable.
type WellKnownFunctionTag byte

const (
	InvalidWKFunction WellKnownFunctionTag = iota
	PathJoin
	ImportFunction
	RequireFunction
	RequireResolveFunction
	FSReadMethod // payload carried in V.WKFunctionName
	PathToFileURL
	ChildProcessSpawn
)
