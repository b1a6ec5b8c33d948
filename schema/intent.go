package schema

// Intent kind discriminator values for the built-in variants.
const (
	// KindAddEntity declares a new entity in the data model.
	KindAddEntity = "add_entity"

	// KindAddField adds fields to an existing entity.
	KindAddField = "add_field"

	// KindAddEndpoint declares a new API endpoint.
	KindAddEndpoint = "add_endpoint"

	// KindAddComponent declares a new UI component.
	KindAddComponent = "add_component"
)

// Intent is one discrete declared change within a document. It is a sum type
// over the four built-in variants plus Extension, discriminated by the kind
// field (and, for the built-in variants, a fixed scope).
type Intent interface {
	// IntentKind returns the discriminator value of the variant.
	IntentKind() string

	// IntentScope returns the subsystem the intent targets. Fixed for the
	// built-in variants; free text for extension intents.
	IntentScope() Scope
}

// AddEntity declares a new entity with an initial set of fields.
// Its scope is always ScopeData.
type AddEntity struct {
	Kind   string      `json:"kind"`
	Scope  Scope       `json:"scope"`
	Entity string      `json:"entity"`
	Fields []FieldSpec `json:"fields"`
}

// IntentKind implements Intent.
func (i *AddEntity) IntentKind() string { return KindAddEntity }

// IntentScope implements Intent.
func (i *AddEntity) IntentScope() Scope { return ScopeData }

// AddField adds one or more fields to an existing entity.
// Its scope is always ScopeData.
type AddField struct {
	Kind   string      `json:"kind"`
	Scope  Scope       `json:"scope"`
	Entity string      `json:"entity"`
	Fields []FieldSpec `json:"fields"`
}

// IntentKind implements Intent.
func (i *AddField) IntentKind() string { return KindAddField }

// IntentScope implements Intent.
func (i *AddField) IntentScope() Scope { return ScopeData }

// AuthSpec declares the authentication requirements of an endpoint.
type AuthSpec struct {
	// Required gates the endpoint behind authentication.
	Required bool `json:"required"`

	// Roles restricts access to the named roles. Empty means any
	// authenticated caller.
	Roles []string `json:"roles,omitempty"`
}

// AddEndpoint declares a new API endpoint. Its scope is always ScopeAPI.
type AddEndpoint struct {
	Kind   string     `json:"kind"`
	Scope  Scope      `json:"scope"`
	Method HTTPMethod `json:"method"`

	// Path is the endpoint route. Always starts with "/" in a validated
	// document.
	Path string `json:"path"`

	// Entity optionally names the entity the endpoint operates on.
	Entity string `json:"entity,omitempty"`

	// Fields optionally declare the request/response shape.
	Fields []FieldSpec `json:"fields,omitempty"`

	// Auth optionally declares authentication requirements.
	Auth *AuthSpec `json:"auth,omitempty"`
}

// IntentKind implements Intent.
func (i *AddEndpoint) IntentKind() string { return KindAddEndpoint }

// IntentScope implements Intent.
func (i *AddEndpoint) IntentScope() Scope { return ScopeAPI }

// AddComponent declares a new UI component. Its scope is always ScopeUI.
type AddComponent struct {
	Kind      string `json:"kind"`
	Scope     Scope  `json:"scope"`
	Component string `json:"component"`

	// Template selects the rendering template. Defaults to TemplateCustom
	// when absent from the source document.
	Template ComponentTemplate `json:"template,omitempty"`

	// Entity optionally names the entity the component renders.
	Entity string `json:"entity,omitempty"`

	// DisplayFields optionally restrict which fields the component shows.
	DisplayFields []string `json:"display_fields,omitempty"`

	// Route optionally binds the component to a client-side route.
	Route string `json:"route,omitempty"`
}

// IntentKind implements Intent.
func (i *AddComponent) IntentKind() string { return KindAddComponent }

// IntentScope implements Intent.
func (i *AddComponent) IntentScope() Scope { return ScopeUI }

// Extension is a vendor- or project-specific intent outside the built-in
// set. Its kind is namespaced with an "x-" prefix and its scope is
// unconstrained free text. Payload contents are opaque to this library;
// the format guarantees only that Payload is a key-value mapping. This is
// the sole forward-compatibility mechanism of the document format.
type Extension struct {
	Kind    string         `json:"kind"`
	Scope   string         `json:"scope"`
	Payload map[string]any `json:"payload"`
}

// IntentKind implements Intent.
func (i *Extension) IntentKind() string { return i.Kind }

// IntentScope implements Intent.
func (i *Extension) IntentScope() Scope { return Scope(i.Scope) }

// PayloadString returns the named payload entry as a string.
// Returns the value and true if present and a string, "" and false otherwise.
func (i *Extension) PayloadString(key string) (string, bool) {
	v, ok := i.Payload[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// PayloadBool returns the named payload entry as a bool.
// Returns the value and true if present and a bool, false and false otherwise.
func (i *Extension) PayloadBool(key string) (bool, bool) {
	v, ok := i.Payload[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}
