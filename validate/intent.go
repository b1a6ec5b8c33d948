package validate

import (
	"github.com/oimladmin/oiml/schema"
)

// validateIntent dispatches one element of the intents array to its variant
// by the kind discriminator. Returns nil when the element produced
// violations that prevent constructing a typed intent.
//
// A kind matching no built-in variant and failing the extension pattern
// yields a single "unrecognized intent kind" violation for the element, not
// one failure per variant.
func validateIntent(c *collector, path string, v any) schema.Intent {
	obj, ok := v.(map[string]any)
	if !ok {
		c.add(path, "intent must be an object, got %s", typeName(v))
		return nil
	}

	kv, present := obj["kind"]
	if !present {
		c.add(path, "required key %q missing", "kind")
		return nil
	}
	kind, ok := kv.(string)
	if !ok {
		c.add(childPath(path, "kind"), "must be a string, got %s", typeName(kv))
		return nil
	}

	before := len(c.violations)

	var intent schema.Intent
	switch kind {
	case schema.KindAddEntity:
		entity, fields := validateEntityShape(c, path, obj, kind)
		intent = &schema.AddEntity{
			Kind: kind, Scope: schema.ScopeData, Entity: entity, Fields: fields,
		}
	case schema.KindAddField:
		entity, fields := validateEntityShape(c, path, obj, kind)
		intent = &schema.AddField{
			Kind: kind, Scope: schema.ScopeData, Entity: entity, Fields: fields,
		}
	case schema.KindAddEndpoint:
		intent = validateAddEndpoint(c, path, obj)
	case schema.KindAddComponent:
		intent = validateAddComponent(c, path, obj)
	default:
		if !extensionKindPattern.MatchString(kind) {
			c.add(path, "unrecognized intent kind %q", kind)
			return nil
		}
		intent = validateExtension(c, path, obj, kind)
	}

	if len(c.violations) > before {
		return nil
	}
	return intent
}

// validateEntityShape checks the shared shape of add_entity and add_field
// intents: a fixed data scope, a non-empty entity name, and at least one
// field specification.
func validateEntityShape(c *collector, path string, obj map[string]any, kind string) (string, []schema.FieldSpec) {
	checkUnknownKeys(c, path, obj, "kind", "scope", "entity", "fields")
	requireFixedScope(c, path, obj, kind, schema.ScopeData)

	entity := requireNonEmptyString(c, path, obj, "entity")
	fields := validateFieldList(c, path, obj, true)

	return entity, fields
}

// validateAddEndpoint checks an add_endpoint intent.
func validateAddEndpoint(c *collector, path string, obj map[string]any) *schema.AddEndpoint {
	checkUnknownKeys(c, path, obj, "kind", "scope", "method", "path", "entity", "fields", "auth")
	requireFixedScope(c, path, obj, schema.KindAddEndpoint, schema.ScopeAPI)

	ep := &schema.AddEndpoint{Kind: schema.KindAddEndpoint, Scope: schema.ScopeAPI}

	if mv, present := obj["method"]; !present {
		c.add(path, "required key %q missing", "method")
	} else if s, ok := mv.(string); !ok {
		c.add(childPath(path, "method"), "must be a string, got %s", typeName(mv))
	} else if m := schema.HTTPMethod(s); !m.IsValid() {
		c.add(childPath(path, "method"), "must be one of GET, POST, PATCH, DELETE, got %q", s)
	} else {
		ep.Method = m
	}

	if pv, present := obj["path"]; !present {
		c.add(path, "required key %q missing", "path")
	} else if s, ok := pv.(string); !ok {
		c.add(childPath(path, "path"), "must be a string, got %s", typeName(pv))
	} else if len(s) == 0 || s[0] != '/' {
		c.add(childPath(path, "path"), `must start with "/", got %q`, s)
	} else {
		ep.Path = s
	}

	if _, present := obj["entity"]; present {
		ep.Entity = requireNonEmptyString(c, path, obj, "entity")
	}
	ep.Fields = validateFieldList(c, path, obj, false)

	if av, present := obj["auth"]; present {
		ep.Auth = validateAuth(c, childPath(path, "auth"), av)
	}

	return ep
}

// validateAuth checks the optional auth block of an endpoint intent.
func validateAuth(c *collector, path string, v any) *schema.AuthSpec {
	obj, ok := v.(map[string]any)
	if !ok {
		c.add(path, "must be an object, got %s", typeName(v))
		return nil
	}

	checkUnknownKeys(c, path, obj, "required", "roles")

	auth := &schema.AuthSpec{}
	auth.Required = optionalBool(c, path, obj, "required")

	if rv, present := obj["roles"]; present {
		roles, ok := asStringSlice(rv)
		if !ok {
			c.add(childPath(path, "roles"), "must be an array of strings")
		} else {
			auth.Roles = roles
		}
	}

	return auth
}

// validateAddComponent checks an add_component intent.
func validateAddComponent(c *collector, path string, obj map[string]any) *schema.AddComponent {
	checkUnknownKeys(c, path, obj,
		"kind", "scope", "component", "template", "entity", "display_fields", "route")
	requireFixedScope(c, path, obj, schema.KindAddComponent, schema.ScopeUI)

	comp := &schema.AddComponent{
		Kind:     schema.KindAddComponent,
		Scope:    schema.ScopeUI,
		Template: schema.DefaultComponentTemplate,
	}

	comp.Component = requireNonEmptyString(c, path, obj, "component")

	if tv, present := obj["template"]; present {
		tPath := childPath(path, "template")
		if s, ok := tv.(string); !ok {
			c.add(tPath, "must be a string, got %s", typeName(tv))
		} else if ct := schema.ComponentTemplate(s); !ct.IsValid() {
			c.add(tPath, "must be one of List, Form, Custom, got %q", s)
		} else {
			comp.Template = ct
		}
	}

	if _, present := obj["entity"]; present {
		comp.Entity = requireNonEmptyString(c, path, obj, "entity")
	}

	if dv, present := obj["display_fields"]; present {
		fields, ok := asStringSlice(dv)
		if !ok {
			c.add(childPath(path, "display_fields"), "must be an array of strings")
		} else {
			comp.DisplayFields = fields
		}
	}

	comp.Route = optionalString(c, path, obj, "route")

	return comp
}

// validateExtension checks a vendor extension intent. The kind has already
// matched the x- pattern; scope is unconstrained free text by design, and
// payload contents are opaque.
func validateExtension(c *collector, path string, obj map[string]any, kind string) *schema.Extension {
	checkUnknownKeys(c, path, obj, "kind", "scope", "payload")

	ext := &schema.Extension{Kind: kind}

	if sv, present := obj["scope"]; !present {
		c.add(path, "required key %q missing", "scope")
	} else if s, ok := sv.(string); !ok {
		c.add(childPath(path, "scope"), "must be a string, got %s", typeName(sv))
	} else {
		ext.Scope = s
	}

	if pv, present := obj["payload"]; !present {
		c.add(path, "required key %q missing", "payload")
	} else if payload, ok := pv.(map[string]any); !ok {
		c.add(childPath(path, "payload"), "must be an object, got %s", typeName(pv))
	} else {
		ext.Payload = payload
	}

	return ext
}

// requireFixedScope validates the fixed scope literal of a built-in intent
// kind.
func requireFixedScope(c *collector, path string, obj map[string]any, kind string, want schema.Scope) {
	sv, present := obj["scope"]
	if !present {
		c.add(path, "required key %q missing", "scope")
		return
	}
	s, ok := sv.(string)
	if !ok {
		c.add(childPath(path, "scope"), "must be a string, got %s", typeName(sv))
		return
	}
	if s != want.String() {
		c.add(childPath(path, "scope"), "must be %q for %s intents, got %q", want, kind, s)
	}
}
