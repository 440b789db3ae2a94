package symbol

// Predefined symbols for the host globals and well-known module names the
// rewriter (package rewrite) pattern-matches against. Interning them once
// at package init avoids re-interning the same handful of strings on every
// graph build.
var (
	Dirname        = Intern("__dirname")
	Require        = Intern("require")
	RequireResolve = Intern("resolve") // require.resolve's property name
	Import         = Intern("import")

	PathModule         = Intern("path")
	FSModule           = Intern("fs")
	URLModule          = Intern("url")
	ChildProcessModule = Intern("child_process")

	PathJoin            = Intern("join")
	URLPathToFileURL    = Intern("pathToFileURL")
	ChildProcessSpawn   = Intern("spawn")
)
