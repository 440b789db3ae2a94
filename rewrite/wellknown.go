// Package rewrite implements the two pure V → (V, modified?) passes the
// linker applies at every node before testing its fixpoint: WellKnown, which
// recognizes host built-ins (path/fs/url/child_process, require/import), and
// Fold, which partially evaluates calls to those built-ins once their
// arguments are known. Both follow the fixed-point rewrite shape of this
// module's lineage's own constant-folding pass, generalized from AST nodes
// to value.V.
package rewrite

import "github.com/loadgraph/loadgraph/value"

// WellKnown pattern-matches fragments of v that refer to recognized host
// globals and modules, folding them into the corresponding WellKnownObject
// or WellKnownFunction. Anything not matched is returned unchanged with
// modified=false. WellKnown only inspects v's own shape — it does not
// recurse into v's children; callers drive recursion via value.VisitMutate
// or the linker's own post-order walk.
func WellKnown(v value.V) (value.V, bool) {
	switch v.Kind {
	case value.ModuleKind:
		return wellKnownModule(v)
	case value.MemberKind:
		return wellKnownMember(v)
	case value.FreeVarKind:
		return wellKnownFreeVar(v)
	default:
		return v, false
	}
}

func wellKnownModule(v value.V) (value.V, bool) {
	switch v.ModuleSpecifier {
	case "path":
		return value.NewWellKnownObject(value.PathModule), true
	case "fs":
		return value.NewWellKnownObject(value.FSModule), true
	case "url":
		return value.NewWellKnownObject(value.URLModule), true
	case "child_process":
		return value.NewWellKnownObject(value.ChildProcessModule), true
	default:
		return v, false
	}
}

func wellKnownMember(v value.V) (value.V, bool) {
	if v.Object == nil || v.Object.Kind != value.WellKnownObjectKind {
		return v, false
	}
	name, ok := propertyName(v.Property)
	if !ok {
		return v, false
	}
	switch v.Object.WKObject {
	case value.PathModule:
		if name == "join" {
			return value.NewWellKnownFunction(value.PathJoin), true
		}
	case value.FSModule:
		if isFSReadMethodName(name) {
			return value.NewFSReadMethod(name), true
		}
	case value.URLModule:
		if name == "pathToFileURL" {
			return value.NewWellKnownFunction(value.PathToFileURL), true
		}
	case value.ChildProcessModule:
		if name == "spawn" {
			return value.NewWellKnownFunction(value.ChildProcessSpawn), true
		}
	}
	return v, false
}

// isFSReadMethodName recognizes the fs module's read-like methods, captured
// generically as FS_READ_METHOD(name) per §4.3 rather than one tag per
// method, since the analysis treats all of them identically (a read from an
// argument-derived path).
func isFSReadMethodName(name string) bool {
	switch name {
	case "readFile", "readFileSync", "createReadStream", "readdirSync", "readdir":
		return true
	default:
		return false
	}
}

func propertyName(prop *value.V) (string, bool) {
	if prop == nil || prop.Kind != value.ConstantKind || prop.Literal.Kind != value.StringLiteral {
		return "", false
	}
	return prop.Literal.Str, true
}

func wellKnownFreeVar(v value.V) (value.V, bool) {
	switch v.FreeVar {
	case value.RequireFreeVar:
		return value.NewWellKnownFunction(value.RequireFunction), true
	case value.ImportFreeVar:
		return value.NewWellKnownFunction(value.ImportFunction), true
	case value.RequireResolveFreeVar:
		return value.NewWellKnownFunction(value.RequireResolveFunction), true
	default:
		return v, false
	}
}
