package value

import "net/url"

// Equal reports deep structural equality, ignoring any source-position
// metadata that a caller's AST literal might have carried before it was
// translated into a Literal — Literal itself never stores a position, so
// equality here is always semantic.
func Equal(a, b V) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ConstantKind:
		return literalEqual(a.Literal, b.Literal)
	case URLKind:
		return urlEqual(a.URL, b.URL)
	case ArrayKind, AlternativesKind, ConcatKind, AddKind:
		return listEqual(a.List, b.List)
	case CallKind:
		return ptrEqual(a.Callee, b.Callee) && listEqual(a.Args, b.Args)
	case MemberKind:
		return ptrEqual(a.Object, b.Object) && ptrEqual(a.Property, b.Property)
	case FunctionKind:
		return ptrEqual(a.Return, b.Return)
	case ArgumentKind:
		return a.Index == b.Index
	case VariableKind:
		return a.VarKey == b.VarKey
	case FreeVarKind:
		return a.FreeVar == b.FreeVar && (a.FreeVar != OtherFreeVar || a.FreeVarName == b.FreeVarName)
	case ModuleKind:
		return a.ModuleSpecifier == b.ModuleSpecifier
	case WellKnownObjectKind:
		return a.WKObject == b.WKObject
	case WellKnownFunctionKind:
		return a.WKFunction == b.WKFunction && (a.WKFunction != FSReadMethod || a.WKFunctionName == b.WKFunctionName)
	case UnknownKind:
		return a.Explainer == b.Explainer && ptrEqual(a.Inner, b.Inner)
	default:
		return true
	}
}

func literalEqual(a, b Literal) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case StringLiteral, RegexLiteral, BigIntLiteral:
		return a.Str == b.Str
	case NumberLiteral:
		return a.Num == b.Num
	case BoolLiteral:
		return a.Bool == b.Bool
	case NullLiteral:
		return true
	default:
		return true
	}
}

func urlEqual(a, b *url.URL) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

func listEqual(a, b []V) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func ptrEqual(a, b *V) bool {
	if a == nil || b == nil {
		return a == b
	}
	return Equal(*a, *b)
}
