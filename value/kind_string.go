package value

import "strconv"

// String renders the Kind name. Written by hand in the style stringer would
// produce, since the go:generate directive in kind.go has no generator
// available in this environment.
func (k Kind) String() string {
	switch k {
	case InvalidKind:
		return "Invalid"
	case ConstantKind:
		return "Constant"
	case URLKind:
		return "Url"
	case ArrayKind:
		return "Array"
	case AlternativesKind:
		return "Alternatives"
	case ConcatKind:
		return "Concat"
	case AddKind:
		return "Add"
	case CallKind:
		return "Call"
	case MemberKind:
		return "Member"
	case FunctionKind:
		return "Function"
	case ArgumentKind:
		return "Argument"
	case VariableKind:
		return "Variable"
	case FreeVarKind:
		return "FreeVar"
	case ModuleKind:
		return "Module"
	case WellKnownObjectKind:
		return "WellKnownObject"
	case WellKnownFunctionKind:
		return "WellKnownFunction"
	case UnknownKind:
		return "Unknown"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k FreeVarTag) String() string {
	switch k {
	case DirnameFreeVar:
		return "__dirname"
	case RequireFreeVar:
		return "require"
	case ImportFreeVar:
		return "import"
	case RequireResolveFreeVar:
		return "require.resolve"
	case OtherFreeVar:
		return "other"
	default:
		return "invalid-free-var"
	}
}

func (k WellKnownObjectTag) String() string {
	switch k {
	case PathModule:
		return "path"
	case FSModule:
		return "fs"
	case URLModule:
		return "url"
	case ChildProcessModule:
		return "child_process"
	default:
		return "invalid-well-known-object"
	}
}

func (k WellKnownFunctionTag) String() string {
	switch k {
	case PathJoin:
		return "path.join"
	case ImportFunction:
		return "import"
	case RequireFunction:
		return "require"
	case RequireResolveFunction:
		return "require.resolve"
	case FSReadMethod:
		return "fs.<read>"
	case PathToFileURL:
		return "url.pathToFileURL"
	case ChildProcessSpawn:
		return "child_process.spawn"
	default:
		return "invalid-well-known-function"
	}
}
