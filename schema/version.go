package schema

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SchemaVersion is the current OpenIntent schema version.
// Documents declare their version to indicate which revision of the format
// they were written against.
const SchemaVersion = "1.0.0"

// IsCompatible checks if a document's version is compatible with SchemaVersion.
// Uses caret constraint (^) for semantic version compatibility: any version
// with the same major component as SchemaVersion is accepted, so tooling
// built against 1.0.0 can consume 1.2.3 documents but not 2.0.0 documents.
//
// Returns true if the versions are compatible according to semantic
// versioning rules. Returns false (with no error) if versions are
// incompatible. Returns an error if either version string is invalid.
//
// Note that this is a compatibility check, not a format check: the strict
// MAJOR.MINOR.PATCH pattern required of the version field is enforced by
// the validate package.
func IsCompatible(docVersion string) (bool, error) {
	constraint, err := semver.NewConstraint("^" + SchemaVersion)
	if err != nil {
		return false, fmt.Errorf("invalid schema version: %w", err)
	}

	v, err := semver.NewVersion(docVersion)
	if err != nil {
		return false, fmt.Errorf("invalid document version %q: %w", docVersion, err)
	}

	return constraint.Check(v), nil
}
