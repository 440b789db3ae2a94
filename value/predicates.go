package value

// IsString is a conservative predicate: true means every execution of v
// produces a string in the source-language semantics. False is always
// safe — it means "not provably a string", not "provably not a string".
func (v V) IsString() bool {
	switch v.Kind {
	case ConstantKind:
		return v.Literal.Kind == StringLiteral
	case ConcatKind:
		return true
	case FreeVarKind:
		return v.FreeVar == DirnameFreeVar
	case CallKind:
		return v.Callee != nil && v.Callee.Kind == WellKnownFunctionKind && v.Callee.WKFunction == RequireResolveFunction
	case AddKind:
		for _, elem := range v.List {
			if elem.IsString() {
				return true
			}
		}
		return false
	case AlternativesKind:
		if len(v.List) == 0 {
			return false
		}
		for _, elem := range v.List {
			if !elem.IsString() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// AddAlt merges other into v, producing the disjunction of both. If the two
// values are already structurally equal, v is returned unchanged.
func (v V) AddAlt(other V) V {
	if Equal(v, other) {
		return v
	}
	if v.Kind == AlternativesKind {
		for _, elem := range v.List {
			if Equal(elem, other) {
				return v
			}
		}
		list := make([]V, len(v.List), len(v.List)+1)
		copy(list, v.List)
		list = append(list, other)
		return V{Kind: AlternativesKind, List: list}
	}
	return V{Kind: AlternativesKind, List: []V{v, other}}
}
