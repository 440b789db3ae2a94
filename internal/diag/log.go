// Package diag provides the leveled logging used across this module's
// packages, wrapping github.com/grailbio/base/log the way the rest of this
// codebase's lineage does: a guarded level check so the common case (the
// level disabled) never pays for formatting a message nobody will see.
package diag

import (
	"fmt"

	"github.com/grailbio/base/log"
)

// Site is a short, static description of where a log line originates —
// typically a graph key or a value.V's kind name. It keeps call sites from
// having to re-derive a location string just to log at Debug.
type Site string

// Debugf logs at debug level if enabled.
func Debugf(site Site, format string, args ...interface{}) {
	if log.At(log.Debug) {
		log.Output(2, log.Debug, string(site)+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
	}
}

// Infof logs at info level.
func Infof(site Site, format string, args ...interface{}) {
	if log.At(log.Info) {
		log.Output(2, log.Info, string(site)+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
	}
}

// Errorf logs at error level. Used for conditions the caller recovers from
// (a hook failure) rather than for internal invariant violations, which
// panic instead.
func Errorf(site Site, format string, args ...interface{}) {
	log.Output(2, log.Error, string(site)+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
}
