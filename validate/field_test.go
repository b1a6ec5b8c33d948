package validate

import (
	"testing"

	"github.com/oimladmin/oiml/schema"
)

// docWithField wraps a single field specification in an otherwise valid
// add_entity intent.
func docWithField(field map[string]any) map[string]any {
	return docWith(map[string]any{
		"kind":   "add_entity",
		"scope":  "data",
		"entity": "Order",
		"fields": []any{field},
	})
}

func TestValidateFieldSpec_ArrayType(t *testing.T) {
	t.Run("missing array_type on array field", func(t *testing.T) {
		verr := requireInvalid(t, docWithField(map[string]any{
			"name": "tags", "type": "array",
		}))
		if !hasViolation(verr, "intents[0].fields[0]", `"array_type" is required`) {
			t.Errorf("missing conditional violation, got %v", verr.Violations)
		}
	})

	t.Run("every permitted element type accepted", func(t *testing.T) {
		for _, elem := range []string{
			"string", "text", "integer", "bigint", "float", "decimal", "boolean", "uuid",
		} {
			_, err := Validate(docWithField(map[string]any{
				"name": "tags", "type": "array", "array_type": elem,
			}))
			if err != nil {
				t.Errorf("array_type %q rejected: %v", elem, err)
			}
		}
	})

	t.Run("excluded element types rejected", func(t *testing.T) {
		for _, elem := range []string{"json", "enum", "array", "datetime", "date", "time", "bytes"} {
			verr := requireInvalid(t, docWithField(map[string]any{
				"name": "tags", "type": "array", "array_type": elem,
			}))
			if !hasViolation(verr, "intents[0].fields[0].array_type", "invalid array element type") {
				t.Errorf("array_type %q: missing violation, got %v", elem, verr.Violations)
			}
		}
	})

	t.Run("array_type forbidden on non-array field", func(t *testing.T) {
		verr := requireInvalid(t, docWithField(map[string]any{
			"name": "title", "type": "string", "array_type": "string",
		}))
		if !hasViolation(verr, "intents[0].fields[0].array_type", "only permitted") {
			t.Errorf("missing forbidden-direction violation, got %v", verr.Violations)
		}
	})
}

func TestValidateFieldSpec_EnumValues(t *testing.T) {
	t.Run("missing enum_values on enum field", func(t *testing.T) {
		verr := requireInvalid(t, docWithField(map[string]any{
			"name": "status", "type": "enum",
		}))
		if !hasViolation(verr, "intents[0].fields[0]", `"enum_values" is required`) {
			t.Errorf("missing conditional violation, got %v", verr.Violations)
		}
	})

	t.Run("empty enum_values rejected", func(t *testing.T) {
		verr := requireInvalid(t, docWithField(map[string]any{
			"name": "status", "type": "enum", "enum_values": []any{},
		}))
		if !hasViolation(verr, "intents[0].fields[0].enum_values", "at least one value") {
			t.Errorf("missing emptiness violation, got %v", verr.Violations)
		}
	})

	t.Run("non-empty enum_values accepted", func(t *testing.T) {
		doc, err := Validate(docWithField(map[string]any{
			"name": "status", "type": "enum",
			"enum_values": []any{"open", "closed"},
		}))
		if err != nil {
			t.Fatalf("Validate() unexpected error: %v", err)
		}
		field := doc.Intents[0].(*schema.AddEntity).Fields[0]
		if len(field.EnumValues) != 2 {
			t.Errorf("EnumValues = %v", field.EnumValues)
		}
	})

	t.Run("enum_values forbidden on non-enum field", func(t *testing.T) {
		verr := requireInvalid(t, docWithField(map[string]any{
			"name": "title", "type": "string", "enum_values": []any{"a"},
		}))
		if !hasViolation(verr, "intents[0].fields[0].enum_values", "only permitted") {
			t.Errorf("missing forbidden-direction violation, got %v", verr.Violations)
		}
	})

	t.Run("non-string enum_values rejected", func(t *testing.T) {
		verr := requireInvalid(t, docWithField(map[string]any{
			"name": "status", "type": "enum", "enum_values": []any{float64(1)},
		}))
		if !hasViolation(verr, "intents[0].fields[0].enum_values", "array of strings") {
			t.Errorf("missing type violation, got %v", verr.Violations)
		}
	})
}

func TestValidateFieldSpec_DefaultIsUnchecked(t *testing.T) {
	// The default value is accepted no matter how badly it disagrees with
	// the declared type. This mirrors the format definition exactly.
	defaults := []any{
		"not a number",
		float64(3.5),
		true,
		map[string]any{"nested": "object"},
		[]any{"list"},
		nil,
	}

	for _, def := range defaults {
		doc, err := Validate(docWithField(map[string]any{
			"name": "count", "type": "integer", "default": def,
		}))
		if err != nil {
			t.Errorf("default %#v rejected: %v", def, err)
			continue
		}
		// Non-nil defaults must survive into the typed form.
		if def != nil {
			field := doc.Intents[0].(*schema.AddEntity).Fields[0]
			if field.Default == nil {
				t.Errorf("default %#v dropped from typed field", def)
			}
		}
	}
}

func TestValidateFieldSpec_Shape(t *testing.T) {
	tests := []struct {
		name    string
		field   map[string]any
		path    string
		message string
	}{
		{
			name:    "missing name",
			field:   map[string]any{"type": "string"},
			path:    "intents[0].fields[0]",
			message: `required key "name" missing`,
		},
		{
			name:    "empty name",
			field:   map[string]any{"name": "", "type": "string"},
			path:    "intents[0].fields[0].name",
			message: "must not be empty",
		},
		{
			name:    "missing type",
			field:   map[string]any{"name": "id"},
			path:    "intents[0].fields[0]",
			message: `required key "type" missing`,
		},
		{
			name:    "unknown type",
			field:   map[string]any{"name": "id", "type": "varchar"},
			path:    "intents[0].fields[0].type",
			message: `unknown field type "varchar"`,
		},
		{
			name:    "required not boolean",
			field:   map[string]any{"name": "id", "type": "uuid", "required": "yes"},
			path:    "intents[0].fields[0].required",
			message: "must be a boolean",
		},
		{
			name:    "zero max_length",
			field:   map[string]any{"name": "id", "type": "string", "max_length": float64(0)},
			path:    "intents[0].fields[0].max_length",
			message: "positive integer",
		},
		{
			name:    "fractional max_length",
			field:   map[string]any{"name": "id", "type": "string", "max_length": float64(2.5)},
			path:    "intents[0].fields[0].max_length",
			message: "must be an integer",
		},
		{
			name:    "unknown key",
			field:   map[string]any{"name": "id", "type": "uuid", "indexed": true},
			path:    "intents[0].fields[0].indexed",
			message: "unknown key",
		},
		{
			name:    "not an object",
			field:   nil,
			path:    "intents[0].fields[0]",
			message: "field must be an object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verr *ValidationError
			if tt.field == nil {
				verr = requireInvalid(t, docWith(map[string]any{
					"kind": "add_entity", "scope": "data", "entity": "Order",
					"fields": []any{"id"},
				}))
			} else {
				verr = requireInvalid(t, docWithField(tt.field))
			}
			if !hasViolation(verr, tt.path, tt.message) {
				t.Errorf("want violation at %q containing %q, got %v",
					tt.path, tt.message, verr.Violations)
			}
		})
	}
}

func TestValidateFieldSpec_TypedConstruction(t *testing.T) {
	doc, err := Validate(docWithField(map[string]any{
		"name":       "code",
		"type":       "string",
		"required":   true,
		"unique":     true,
		"max_length": float64(12),
		"default":    "UNSET",
	}))
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	field := doc.Intents[0].(*schema.AddEntity).Fields[0]
	if field.Name != "code" || field.Type != schema.FieldString {
		t.Errorf("field identity = %+v", field)
	}
	if !field.Required || !field.Unique || field.MaxLength != 12 {
		t.Errorf("field attributes = %+v", field)
	}
	if field.Default != "UNSET" {
		t.Errorf("Default = %#v, want %q", field.Default, "UNSET")
	}
}
