package validate

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/oimladmin/oiml/errors"
)

// Violation describes one way a document fails to conform to the schema.
type Violation struct {
	// Path locates the defect inside the document, for example
	// "intents[2].fields[0].array_type". Empty for defects of the document
	// value itself.
	Path string `json:"path"`

	// Message describes the defect for the document author.
	Message string `json:"message"`
}

// String returns the violation in "path: message" form.
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// ErrSchemaValidation is the sentinel every ValidationError unwraps to.
// Callers can match schema failures with errors.Is or errors.GetCode
// without inspecting the violation list.
var ErrSchemaValidation = errors.New(errors.CodeSchemaFailed, "document failed schema validation")

// ValidationError is returned when a document fails schema validation.
// It carries every violation found, in document order. A document with any
// violation is wholly rejected; there is no partial-success mode.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface, joining all violations into a
// single message.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "document validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("document validation failed: %s", strings.Join(parts, "; "))
}

// Unwrap returns ErrSchemaValidation so the error chain carries the
// SCHEMA_VALIDATION_FAILED code.
func (e *ValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// AsValidationError extracts a *ValidationError from err's chain.
// Returns the error and true on success, nil and false otherwise.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if stderrors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// collector accumulates violations during a validation pass.
type collector struct {
	violations []Violation
}

// add records a violation at the given path with a formatted message.
func (c *collector) add(path, format string, args ...any) {
	c.violations = append(c.violations, Violation{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// childPath extends a path with an object key.
func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// indexPath extends a path with an array index.
func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
