package value

// Normalize puts v into canonical form: it flattens nested Alternatives and
// Concat one level, drops empty-string Constants from Concat, fuses
// adjacent string Constants in Concat, collapses singleton Concat/Add into
// their one element, deduplicates Alternatives, and rewrites an Add that
// turns out to contain a string operand into a Concat. It recurses into
// every child first (post-order), so the result is canonical all the way
// down. Normalize is idempotent: Normalize(Normalize(v)) equals Normalize(v).
func Normalize(v V) V {
	switch v.Kind {
	case ArrayKind:
		return V{Kind: ArrayKind, List: normalizeList(v.List)}

	case AlternativesKind:
		return normalizeAlternatives(v.List)

	case ConcatKind:
		return normalizeConcat(v.List)

	case AddKind:
		return normalizeAdd(v.List)

	case CallKind:
		callee := Normalize(*v.Callee)
		return V{Kind: CallKind, Callee: &callee, Args: normalizeList(v.Args)}

	case MemberKind:
		obj := Normalize(*v.Object)
		prop := Normalize(*v.Property)
		return V{Kind: MemberKind, Object: &obj, Property: &prop}

	case FunctionKind:
		ret := Normalize(*v.Return)
		return V{Kind: FunctionKind, Return: &ret}

	case UnknownKind:
		if v.Inner == nil {
			return v
		}
		inner := Normalize(*v.Inner)
		return V{Kind: UnknownKind, Inner: &inner, Explainer: v.Explainer}

	default:
		// Constant, Url, Argument, Variable, FreeVar, Module, WellKnownObject,
		// WellKnownFunction have no V-typed children to recurse into.
		return v
	}
}

func normalizeList(list []V) []V {
	if len(list) == 0 {
		return list
	}
	out := make([]V, len(list))
	for i, elem := range list {
		out[i] = Normalize(elem)
	}
	return out
}

func normalizeAlternatives(list []V) V {
	var flat []V
	for _, elem := range list {
		n := Normalize(elem)
		if n.Kind == AlternativesKind {
			flat = append(flat, n.List...)
		} else {
			flat = append(flat, n)
		}
	}
	var deduped []V
	for _, elem := range flat {
		dup := false
		for _, existing := range deduped {
			if Equal(existing, elem) {
				dup = true
				break
			}
		}
		if !dup {
			deduped = append(deduped, elem)
		}
	}
	return V{Kind: AlternativesKind, List: deduped}
}

func isEmptyStringConstant(v V) bool {
	return v.Kind == ConstantKind && v.Literal.Kind == StringLiteral && v.Literal.Str == ""
}

func normalizeConcat(list []V) V {
	var flat []V
	for _, elem := range list {
		n := Normalize(elem)
		if isEmptyStringConstant(n) {
			continue
		}
		if n.Kind == ConcatKind {
			flat = append(flat, n.List...)
			continue
		}
		flat = append(flat, n)
	}
	var fused []V
	for _, elem := range flat {
		if isStringConstant(elem) && len(fused) > 0 && isStringConstant(fused[len(fused)-1]) {
			fused[len(fused)-1] = String(fused[len(fused)-1].Literal.Str + elem.Literal.Str)
			continue
		}
		fused = append(fused, elem)
	}
	if len(fused) == 1 {
		return fused[0]
	}
	return V{Kind: ConcatKind, List: fused}
}

func isStringConstant(v V) bool {
	return v.Kind == ConstantKind && v.Literal.Kind == StringLiteral
}

// normalizeAdd implements the Add→Concat conversion rule: once a string
// operand appears, everything accumulated so far (if more than one operand)
// is grouped into a single Add prefix, and the whole node becomes a Concat
// of that prefix followed by the string and the remaining operands
// (themselves re-normalized as a Concat/Add mix would be).
func normalizeAdd(list []V) V {
	normed := normalizeList(list)

	stringAt := -1
	for i, elem := range normed {
		if elem.IsString() {
			stringAt = i
			break
		}
	}
	if stringAt == -1 {
		if len(normed) == 1 {
			return normed[0]
		}
		return V{Kind: AddKind, List: normed}
	}

	prefix := normed[:stringAt]
	rest := normed[stringAt:]

	var concatParts []V
	if len(prefix) == 1 {
		concatParts = append(concatParts, prefix[0])
	} else if len(prefix) > 1 {
		concatParts = append(concatParts, V{Kind: AddKind, List: append([]V(nil), prefix...)})
	}
	concatParts = append(concatParts, rest...)
	return normalizeConcat(concatParts)
}
