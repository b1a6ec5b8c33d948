package validate

import (
	"fmt"
	"sort"
)

// typeName names a decoded value using JSON data-model terms for error
// messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// asInt converts a decoded numeric value to an int. encoding/json decodes
// numbers as float64; yaml.v3 decodes them as int. Non-integral floats do
// not convert.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// asStringSlice converts a decoded array to []string. Returns false if the
// value is not an array or any element is not a string.
func asStringSlice(v any) ([]string, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// checkUnknownKeys reports a violation for every key of obj not in allowed.
// Keys are reported in sorted order so violation lists are deterministic.
func checkUnknownKeys(c *collector, path string, obj map[string]any, allowed ...string) {
	permitted := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		permitted[k] = struct{}{}
	}

	var unknown []string
	for k := range obj {
		if _, ok := permitted[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)

	for _, k := range unknown {
		c.add(childPath(path, k), "unknown key %q", k)
	}
}

// requireNonEmptyString validates that obj[key] is present and a non-empty
// string, reporting violations otherwise. Returns the value, or "" when
// invalid.
func requireNonEmptyString(c *collector, path string, obj map[string]any, key string) string {
	v, present := obj[key]
	if !present {
		c.add(path, "required key %q missing", key)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		c.add(childPath(path, key), "must be a string, got %s", typeName(v))
		return ""
	}
	if s == "" {
		c.add(childPath(path, key), "must not be empty")
		return ""
	}
	return s
}

// optionalString validates that obj[key], when present, is a string.
// Returns "" when absent or invalid.
func optionalString(c *collector, path string, obj map[string]any, key string) string {
	v, present := obj[key]
	if !present {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		c.add(childPath(path, key), "must be a string, got %s", typeName(v))
		return ""
	}
	return s
}

// optionalBool validates that obj[key], when present, is a boolean.
// Returns false when absent or invalid.
func optionalBool(c *collector, path string, obj map[string]any, key string) bool {
	v, present := obj[key]
	if !present {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		c.add(childPath(path, key), "must be a boolean, got %s", typeName(v))
		return false
	}
	return b
}
