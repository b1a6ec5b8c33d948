package validate

import (
	"github.com/oimladmin/oiml/schema"
)

// validateFieldList checks the fields key of an intent. When required is
// true the key must be present and hold at least one field specification;
// otherwise an absent key is fine but a present one must still be an array
// of valid field specifications.
func validateFieldList(c *collector, path string, obj map[string]any, required bool) []schema.FieldSpec {
	v, present := obj["fields"]
	if !present {
		if required {
			c.add(path, "required key %q missing", "fields")
		}
		return nil
	}

	fPath := childPath(path, "fields")
	list, ok := v.([]any)
	if !ok {
		c.add(fPath, "must be an array, got %s", typeName(v))
		return nil
	}
	if required && len(list) == 0 {
		c.add(fPath, "must contain at least one field")
		return nil
	}

	fields := make([]schema.FieldSpec, 0, len(list))
	for i, elem := range list {
		fields = append(fields, validateFieldSpec(c, indexPath(fPath, i), elem))
	}
	return fields
}

// validateFieldSpec checks one field specification, including the
// conditional rules tying array_type to type == "array" and enum_values to
// type == "enum". Both directions are violations: missing-when-required and
// present-when-forbidden.
//
// The default value is accepted unchecked against the declared type. That
// is a deliberate escape hatch of the format, not an oversight.
func validateFieldSpec(c *collector, path string, v any) schema.FieldSpec {
	var spec schema.FieldSpec

	obj, ok := v.(map[string]any)
	if !ok {
		c.add(path, "field must be an object, got %s", typeName(v))
		return spec
	}

	checkUnknownKeys(c, path, obj,
		"name", "type", "required", "unique", "default", "max_length", "array_type", "enum_values")

	spec.Name = requireNonEmptyString(c, path, obj, "name")

	typeKnown := false
	if tv, present := obj["type"]; !present {
		c.add(path, "required key %q missing", "type")
	} else if s, ok := tv.(string); !ok {
		c.add(childPath(path, "type"), "must be a string, got %s", typeName(tv))
	} else if ft := schema.FieldType(s); !ft.IsValid() {
		c.add(childPath(path, "type"), "unknown field type %q", s)
	} else {
		spec.Type = ft
		typeKnown = true
	}

	spec.Required = optionalBool(c, path, obj, "required")
	spec.Unique = optionalBool(c, path, obj, "unique")

	if dv, present := obj["default"]; present {
		spec.Default = dv
	}

	if mv, present := obj["max_length"]; present {
		mPath := childPath(path, "max_length")
		if n, ok := asInt(mv); !ok {
			c.add(mPath, "must be an integer, got %s", typeName(mv))
		} else if n <= 0 {
			c.add(mPath, "must be a positive integer, got %d", n)
		} else {
			spec.MaxLength = n
		}
	}

	validateArrayType(c, path, obj, &spec, typeKnown)
	validateEnumValues(c, path, obj, &spec, typeKnown)

	return spec
}

// validateArrayType enforces: array_type present iff type == "array", and
// restricted to the scalar element enumeration when present.
func validateArrayType(c *collector, path string, obj map[string]any, spec *schema.FieldSpec, typeKnown bool) {
	v, present := obj["array_type"]
	aPath := childPath(path, "array_type")

	switch {
	case typeKnown && spec.Type == schema.FieldArray:
		if !present {
			c.add(path, "%q is required when type is %q", "array_type", "array")
			return
		}
		if s, ok := v.(string); !ok {
			c.add(aPath, "must be a string, got %s", typeName(v))
		} else if et := schema.FieldType(s); !et.AllowedAsArrayElement() {
			c.add(aPath, "invalid array element type %q", s)
		} else {
			spec.ArrayType = et
		}
	case present && typeKnown:
		c.add(aPath, "only permitted when type is %q", "array")
	}
	// When the type itself is missing or unknown, that violation is already
	// reported; a conditional-rule report on top of it would be noise.
}

// validateEnumValues enforces: enum_values present and non-empty iff
// type == "enum".
func validateEnumValues(c *collector, path string, obj map[string]any, spec *schema.FieldSpec, typeKnown bool) {
	v, present := obj["enum_values"]
	ePath := childPath(path, "enum_values")

	switch {
	case typeKnown && spec.Type == schema.FieldEnum:
		if !present {
			c.add(path, "%q is required when type is %q", "enum_values", "enum")
			return
		}
		if vals, ok := asStringSlice(v); !ok {
			c.add(ePath, "must be an array of strings")
		} else if len(vals) == 0 {
			c.add(ePath, "must contain at least one value")
		} else {
			spec.EnumValues = vals
		}
	case present && typeKnown:
		c.add(ePath, "only permitted when type is %q", "enum")
	}
}
