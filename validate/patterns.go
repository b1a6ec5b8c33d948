package validate

import (
	"regexp"
	"time"
)

var (
	// versionPattern matches strict MAJOR.MINOR.PATCH semantic versions.
	// Each component is either the single digit 0 or a digit 1-9 followed
	// by any digits; leading zeros are rejected ("1.01.0" is invalid).
	versionPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`)

	// timestampPattern matches strict second-precision UTC timestamps of
	// the exact form YYYY-MM-DDTHH:MM:SSZ. Offset forms ("+00:00") and
	// fractional seconds are rejected.
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

	// extensionKindPattern matches namespaced vendor intent kinds: an "x-"
	// prefix followed by lowercase alphanumerics, underscore, dot, or hyphen.
	extensionKindPattern = regexp.MustCompile(`^x-[a-z0-9_.-]+$`)
)

// timestampLayout is the only accepted created_at layout.
const timestampLayout = "2006-01-02T15:04:05Z"

// isStrictTimestamp reports whether s is a well-formed strict UTC timestamp
// that also denotes a real calendar time.
func isStrictTimestamp(s string) bool {
	if !timestampPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(timestampLayout, s)
	return err == nil
}
