package schema

// FieldType represents the declared type of a data field.
type FieldType string

const (
	// FieldString is a short text value.
	FieldString FieldType = "string"

	// FieldText is a long text value.
	FieldText FieldType = "text"

	// FieldInteger is a 32-bit integer value.
	FieldInteger FieldType = "integer"

	// FieldBigint is a 64-bit integer value.
	FieldBigint FieldType = "bigint"

	// FieldFloat is a floating-point value.
	FieldFloat FieldType = "float"

	// FieldDecimal is an exact decimal value.
	FieldDecimal FieldType = "decimal"

	// FieldBoolean is a true/false value.
	FieldBoolean FieldType = "boolean"

	// FieldDatetime is a timestamp value.
	FieldDatetime FieldType = "datetime"

	// FieldDate is a calendar date value.
	FieldDate FieldType = "date"

	// FieldTime is a time-of-day value.
	FieldTime FieldType = "time"

	// FieldUUID is a UUID value.
	FieldUUID FieldType = "uuid"

	// FieldJSON is an arbitrary structured value.
	FieldJSON FieldType = "json"

	// FieldEnum is a value restricted to a declared set of strings.
	// Fields of this type must declare enum_values.
	FieldEnum FieldType = "enum"

	// FieldArray is an ordered collection of a scalar element type.
	// Fields of this type must declare array_type.
	FieldArray FieldType = "array"

	// FieldBytes is a raw binary value.
	FieldBytes FieldType = "bytes"
)

// String returns the string representation of the FieldType.
func (t FieldType) String() string {
	return string(t)
}

// IsValid reports whether the FieldType is a member of the closed enumeration.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldString, FieldText, FieldInteger, FieldBigint, FieldFloat,
		FieldDecimal, FieldBoolean, FieldDatetime, FieldDate, FieldTime,
		FieldUUID, FieldJSON, FieldEnum, FieldArray, FieldBytes:
		return true
	}
	return false
}

// AllowedAsArrayElement reports whether the FieldType may be used as the
// element type of an array field. Only scalar types are permitted;
// datetime, date, time, json, enum, array, and bytes are excluded.
func (t FieldType) AllowedAsArrayElement() bool {
	switch t {
	case FieldString, FieldText, FieldInteger, FieldBigint, FieldFloat,
		FieldDecimal, FieldBoolean, FieldUUID:
		return true
	}
	return false
}

// FieldSpec describes one data field declared by an intent.
//
// Default is deliberately unvalidated against Type: the schema accepts any
// value there, and downstream tooling is responsible for interpreting it.
type FieldSpec struct {
	// Name is the field name. Never empty in a validated document.
	Name string `json:"name"`

	// Type is the declared field type.
	Type FieldType `json:"type"`

	// Required marks the field as mandatory in generated models.
	Required bool `json:"required,omitempty"`

	// Unique marks the field as a uniqueness constraint target.
	Unique bool `json:"unique,omitempty"`

	// Default is the declared default value, if any. It is not checked
	// against Type.
	Default any `json:"default,omitempty"`

	// MaxLength bounds the field length. Zero means unbounded.
	MaxLength int `json:"max_length,omitempty"`

	// ArrayType is the element type of an array field. Set exactly when
	// Type is FieldArray.
	ArrayType FieldType `json:"array_type,omitempty"`

	// EnumValues are the permitted values of an enum field. Non-empty
	// exactly when Type is FieldEnum.
	EnumValues []string `json:"enum_values,omitempty"`
}
