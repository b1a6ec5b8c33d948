package validate

import (
	"github.com/oimladmin/oiml/schema"
)

// Validate checks an arbitrary decoded value against the OpenIntent document
// schema. On success it returns the fully-typed document, with every intent
// resolved to exactly one variant and every field specification checked
// against the cross-field rules. On failure it returns a *ValidationError
// carrying every violation found in one pass.
//
// The input is not mutated. Malformed input is the expected failure mode and
// never causes a panic.
func Validate(input any) (*schema.IntentDocument, error) {
	c := &collector{}
	doc := validateDocument(c, input)
	if len(c.violations) > 0 {
		return nil, &ValidationError{Violations: c.violations}
	}
	return doc, nil
}

// validateDocument checks the top-level shape: exactly the three permitted
// keys, a strict semver version, and a non-empty intents array.
func validateDocument(c *collector, input any) *schema.IntentDocument {
	root, ok := input.(map[string]any)
	if !ok {
		c.add("", "document must be an object, got %s", typeName(input))
		return nil
	}

	doc := &schema.IntentDocument{}
	checkUnknownKeys(c, "", root, "version", "provenance", "intents")

	if v, present := root["version"]; !present {
		c.add("version", "required key %q missing", "version")
	} else if s, ok := v.(string); !ok {
		c.add("version", "must be a string, got %s", typeName(v))
	} else if !versionPattern.MatchString(s) {
		c.add("version", "must match MAJOR.MINOR.PATCH with no leading zeros, got %q", s)
	} else {
		doc.Version = s
	}

	// A malformed provenance block must not abort intent validation; its
	// violations are scoped under provenance.* independently.
	if p, present := root["provenance"]; present {
		doc.Provenance = validateProvenance(c, "provenance", p)
	}

	if v, present := root["intents"]; !present {
		c.add("intents", "required key %q missing", "intents")
	} else if list, ok := v.([]any); !ok {
		c.add("intents", "must be an array, got %s", typeName(v))
	} else if len(list) == 0 {
		c.add("intents", "must contain at least one intent")
	} else {
		doc.Intents = make([]schema.Intent, 0, len(list))
		for i, elem := range list {
			intent := validateIntent(c, indexPath("intents", i), elem)
			if intent != nil {
				doc.Intents = append(doc.Intents, intent)
			}
		}
	}

	return doc
}

// validateProvenance checks the optional provenance metadata block.
func validateProvenance(c *collector, path string, v any) *schema.Provenance {
	obj, ok := v.(map[string]any)
	if !ok {
		c.add(path, "must be an object, got %s", typeName(v))
		return nil
	}

	checkUnknownKeys(c, path, obj, "created_by", "created_at", "source", "model")

	prov := &schema.Provenance{}

	if cb, present := obj["created_by"]; present {
		prov.CreatedBy = validateCreatedBy(c, childPath(path, "created_by"), cb)
	}

	if ca, present := obj["created_at"]; present {
		caPath := childPath(path, "created_at")
		if s, ok := ca.(string); !ok {
			c.add(caPath, "must be a string, got %s", typeName(ca))
		} else if !isStrictTimestamp(s) {
			c.add(caPath, "must be a UTC timestamp of the form YYYY-MM-DDTHH:MM:SSZ, got %q", s)
		} else {
			prov.CreatedAt = s
		}
	}

	prov.Source = optionalString(c, path, obj, "source")
	prov.Model = optionalString(c, path, obj, "model")

	return prov
}

// validateCreatedBy checks the actor block inside provenance.
func validateCreatedBy(c *collector, path string, v any) *schema.CreatedBy {
	obj, ok := v.(map[string]any)
	if !ok {
		c.add(path, "must be an object, got %s", typeName(v))
		return nil
	}

	checkUnknownKeys(c, path, obj, "type", "name", "id")

	cb := &schema.CreatedBy{Type: schema.DefaultActorType}

	if tv, present := obj["type"]; present {
		tPath := childPath(path, "type")
		if s, ok := tv.(string); !ok {
			c.add(tPath, "must be a string, got %s", typeName(tv))
		} else if at := schema.ActorType(s); !at.IsValid() {
			c.add(tPath, "must be one of human, agent, system, got %q", s)
		} else {
			cb.Type = at
		}
	}

	cb.Name = optionalString(c, path, obj, "name")
	cb.ID = optionalString(c, path, obj, "id")

	return cb
}
