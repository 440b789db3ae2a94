package value

import (
	"github.com/loadgraph/loadgraph/internal/symbol"
	"github.com/loadgraph/loadgraph/internal/xhash"
)

// kindSalt hashes are distinct per Kind so that, e.g., an empty Array and
// an empty Concat never collide purely because both have zero children.
var kindSalt [UnknownKind + 1]xhash.Hash

func init() {
	for k := InvalidKind; k <= UnknownKind; k++ {
		kindSalt[k] = xhash.String("value.Kind:" + k.String())
	}
}

// Hash returns v's structural hash: two Equal values always hash equal.
// Order-irrelevant children (Alternatives) are combined with Hash.Add so
// that permutations still hash identically; order-sensitive children
// (Array/Concat/Add elements, Call's callee-then-args, Member's
// object-then-property) are combined with Hash.Merge so that permuting
// them changes the result.
func (v V) Hash() xhash.Hash {
	salt := kindSalt[v.Kind]
	switch v.Kind {
	case ConstantKind:
		return salt.Merge(v.Literal.hash())
	case URLKind:
		if v.URL == nil {
			return salt
		}
		return salt.Merge(xhash.String(v.URL.String()))
	case ArrayKind, ConcatKind, AddKind:
		return salt.Merge(hashOrderedList(v.List))
	case AlternativesKind:
		return salt.Add(hashUnorderedList(v.List))
	case CallKind:
		h := salt.Merge(v.Callee.Hash())
		return h.Merge(hashOrderedList(v.Args))
	case MemberKind:
		return salt.Merge(v.Object.Hash()).Merge(v.Property.Hash())
	case FunctionKind:
		return salt.Merge(v.Return.Hash())
	case ArgumentKind:
		return salt.Merge(xhash.Uint64(uint64(v.Index)))
	case VariableKind:
		return salt.Merge(symbol.ID(v.VarKey.Symbol).Hash())
	case FreeVarKind:
		h := salt.Merge(xhash.Uint64(uint64(v.FreeVar)))
		if v.FreeVar == OtherFreeVar {
			h = h.Merge(xhash.String(v.FreeVarName))
		}
		return h
	case ModuleKind:
		return salt.Merge(xhash.String(v.ModuleSpecifier))
	case WellKnownObjectKind:
		return salt.Merge(xhash.Uint64(uint64(v.WKObject)))
	case WellKnownFunctionKind:
		h := salt.Merge(xhash.Uint64(uint64(v.WKFunction)))
		if v.WKFunction == FSReadMethod {
			h = h.Merge(xhash.String(v.WKFunctionName))
		}
		return h
	case UnknownKind:
		h := salt.Merge(xhash.String(v.Explainer))
		if v.Inner != nil {
			h = h.Merge(v.Inner.Hash())
		}
		return h
	default:
		return salt
	}
}

func (l Literal) hash() xhash.Hash {
	switch l.Kind {
	case StringLiteral, RegexLiteral, BigIntLiteral:
		return xhash.String(l.Str)
	case NumberLiteral:
		return xhash.Uint64(uint64(l.Num))
	case BoolLiteral:
		if l.Bool {
			return xhash.String("true")
		}
		return xhash.String("false")
	case NullLiteral:
		return xhash.String("null")
	default:
		return xhash.Hash{}
	}
}

func hashOrderedList(list []V) xhash.Hash {
	var h xhash.Hash
	for _, elem := range list {
		h = h.Merge(elem.Hash())
	}
	return h
}

func hashUnorderedList(list []V) xhash.Hash {
	var h xhash.Hash
	for _, elem := range list {
		h = h.Add(elem.Hash())
	}
	return h
}
