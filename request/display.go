package request

import "fmt"

// Display renders r in the stable form §4.6 documents for snapshot tests
// and diagnostics: each variant names itself and its captures, a module
// with a nonempty subpath mentions both.
func Display(r Request) string {
	switch r.Tag {
	case Empty:
		return "empty"
	case ServerRelative:
		return fmt.Sprintf("server-relative '%s'", r.Path)
	case PackageInternal:
		return fmt.Sprintf("package-internal '%s'", r.Path)
	case Relative:
		return fmt.Sprintf("relative '%s'", r.Path)
	case Windows:
		return fmt.Sprintf("windows '%s'", r.Path)
	case Uri:
		return fmt.Sprintf("uri protocol '%s' remainder '%s'", r.Protocol, r.Remainder)
	case Module:
		if r.Subpath != "" {
			return fmt.Sprintf("module '%s' with subpath '%s'", r.ModuleName, r.Subpath)
		}
		return fmt.Sprintf("module '%s'", r.ModuleName)
	case Unknown:
		return fmt.Sprintf("unknown '%s'", r.Original)
	default:
		return "invalid"
	}
}
