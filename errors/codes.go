// Package errors provides a foundational error handling system for the
// OpenIntent libraries. It extends Go's standard error handling with
// structured error codes, context preservation, and API serialization
// capabilities.
package errors

// ErrorCode represents a specific error condition in the OpenIntent libraries.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Input errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidDocument indicates a document is structurally unusable
	// before schema validation could run (for example, not an object).
	CodeInvalidDocument ErrorCode = "INVALID_DOCUMENT"

	// CodeSchemaFailed indicates the document failed schema validation.
	CodeSchemaFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"

	// CodeUnsupportedVersion indicates the document declares a version
	// this library cannot consume.
	CodeUnsupportedVersion ErrorCode = "UNSUPPORTED_VERSION"

	// Loading errors.

	// CodeLoadFailed indicates a document could not be read from its source.
	CodeLoadFailed ErrorCode = "LOAD_FAILED"

	// CodeDecodeFailed indicates a document could not be decoded from its
	// serialized form (JSON or YAML).
	CodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// System errors.

	// CodeInternal indicates an internal system error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
