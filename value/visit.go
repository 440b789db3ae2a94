package value

import "context"

// Children returns v's direct structural children in evaluation order:
// lists for Alternatives/Array/Concat/Add, callee followed by args for
// Call, the object followed by the property for Member, the return value
// for Function. Every other variant — including Unknown, whose inner cause
// is provenance rather than a structural operand — is a leaf.
func (v V) Children() []V {
	switch v.Kind {
	case ArrayKind, AlternativesKind, ConcatKind, AddKind:
		return v.List
	case CallKind:
		children := make([]V, 0, 1+len(v.Args))
		children = append(children, *v.Callee)
		children = append(children, v.Args...)
		return children
	case MemberKind:
		return []V{*v.Object, *v.Property}
	case FunctionKind:
		return []V{*v.Return}
	default:
		return nil
	}
}

// withChildren rebuilds v with newChildren in place of Children(v), keeping
// every other field untouched. newChildren must have the same length as
// Children(v).
func (v V) withChildren(newChildren []V) V {
	switch v.Kind {
	case ArrayKind, AlternativesKind, ConcatKind, AddKind:
		out := v
		out.List = newChildren
		return out
	case CallKind:
		callee := newChildren[0]
		out := v
		out.Callee = &callee
		if len(newChildren) > 1 {
			out.Args = newChildren[1:]
		} else {
			out.Args = nil
		}
		return out
	case MemberKind:
		obj, prop := newChildren[0], newChildren[1]
		out := v
		out.Object = &obj
		out.Property = &prop
		return out
	case FunctionKind:
		ret := newChildren[0]
		out := v
		out.Return = &ret
		return out
	default:
		return v
	}
}

// VisitReadOnly walks v post-order — every child before the node itself —
// calling visit on each node encountered, including v.
func VisitReadOnly(v V, visit func(V)) {
	for _, child := range v.Children() {
		VisitReadOnly(child, visit)
	}
	visit(v)
}

// MutateFunc is a synchronous in-place rewrite step: it returns the
// (possibly unchanged) node and whether it changed anything.
type MutateFunc func(V) (V, bool)

// VisitMutate walks v post-order, applying mutate to every child and then
// to the node itself once its children have been rewritten. It returns the
// rewritten value and whether anything in the whole subtree changed.
func VisitMutate(v V, mutate MutateFunc) (V, bool) {
	children := v.Children()
	changed := false
	if len(children) > 0 {
		newChildren := make([]V, len(children))
		for i, child := range children {
			rewritten, childChanged := VisitMutate(child, mutate)
			newChildren[i] = rewritten
			changed = changed || childChanged
		}
		if changed {
			v = v.withChildren(newChildren)
		}
	}
	out, selfChanged := mutate(v)
	return out, changed || selfChanged
}

// AsyncMutateFunc is the asynchronous analogue of MutateFunc, used when
// rewriting a node may require I/O (resolving a module path against a real
// filesystem, say). There is no separate future type in this rendering: the
// function simply may block the calling goroutine, and the only
// suspension point visible to callers is this function itself — the
// surrounding recursion is ordinary synchronous Go.
type AsyncMutateFunc func(context.Context, V) (V, bool, error)

// VisitMutateAsync is the asynchronous analogue of VisitMutate. It returns
// early with an error the first time mutate fails, without visiting any
// remaining siblings.
func VisitMutateAsync(ctx context.Context, v V, mutate AsyncMutateFunc) (V, bool, error) {
	if err := ctx.Err(); err != nil {
		return v, false, err
	}
	children := v.Children()
	changed := false
	if len(children) > 0 {
		newChildren := make([]V, len(children))
		for i, child := range children {
			rewritten, childChanged, err := VisitMutateAsync(ctx, child, mutate)
			if err != nil {
				return v, false, err
			}
			newChildren[i] = rewritten
			changed = changed || childChanged
		}
		if changed {
			v = v.withChildren(newChildren)
		}
	}
	out, selfChanged, err := mutate(ctx, v)
	if err != nil {
		return v, false, err
	}
	return out, changed || selfChanged, nil
}
