package rewrite

import (
	"path"

	"github.com/loadgraph/loadgraph/value"
)

// Fold partially evaluates v when it is a Call whose callee is a
// WellKnownFunction and whose arguments are concrete enough to compute a
// result. Anything else, including a call whose arguments still contain
// Unknown or non-constant structure, is returned unchanged with
// modified=false. Like WellKnown, Fold only inspects v's own shape.
func Fold(v value.V) (value.V, bool) {
	if v.Kind != value.CallKind || v.Callee == nil || v.Callee.Kind != value.WellKnownFunctionKind {
		return v, false
	}
	switch v.Callee.WKFunction {
	case value.PathJoin:
		return foldPathJoin(v)
	case value.RequireResolveFunction:
		return foldRequireResolve(v)
	case value.RequireFunction, value.ImportFunction:
		return foldModuleSpecifier(v)
	default:
		return v, false
	}
}

// foldModuleSpecifier folds a call to the well-known require/import
// function over a single constant-string argument into a Module value
// holding that specifier. This is what lets the well-known rewriter's
// Module("path")-style rules (§4.3) ever fire on a literal `require("path")`
// call: the call must first become a Module before it can be recognized as
// one of the known host modules, on the linker's next fixed-point pass.
func foldModuleSpecifier(v value.V) (value.V, bool) {
	if len(v.Args) != 1 {
		return v, false
	}
	arg := v.Args[0]
	if arg.Kind != value.ConstantKind || arg.Literal.Kind != value.StringLiteral {
		return v, false
	}
	return value.NewModule(arg.Literal.Str), true
}

// foldPathJoin implements §4.4's PATH_JOIN rule: all-string arguments fold
// to a Constant holding their platform-independent join (forward-slash,
// "." and ".." segments collapsed where possible; joining zero paths
// yields "."). path.Join implements this semantics for forward-slash paths
// except that it returns "" when every segment is empty, so that one case
// is mapped to "." here.
func foldPathJoin(v value.V) (value.V, bool) {
	segments := make([]string, len(v.Args))
	for i, arg := range v.Args {
		if arg.Kind != value.ConstantKind || arg.Literal.Kind != value.StringLiteral {
			return v, false
		}
		segments[i] = arg.Literal.Str
	}
	joined := path.Join(segments...)
	if joined == "" {
		joined = "."
	}
	return value.String(joined), true
}

// foldRequireResolve implements §4.4's REQUIRE_RESOLVE rule: a single
// constant-string argument folds to a Constant carrying a "resolved"
// marker in its textual form. The real resolution (consulting node_modules,
// package.json "main"/"exports", etc.) is the linker's user hook's job —
// this fold only marks that resolution was attempted on a known literal.
func foldRequireResolve(v value.V) (value.V, bool) {
	if len(v.Args) != 1 {
		return v, false
	}
	arg := v.Args[0]
	if arg.Kind != value.ConstantKind || arg.Literal.Kind != value.StringLiteral {
		return v, false
	}
	return value.String(arg.Literal.Str + " (resolved)"), true
}
