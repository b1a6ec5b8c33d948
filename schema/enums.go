package schema

// Scope represents the subsystem an intent targets.
// Built-in intent kinds carry a fixed scope; extension intents may use any
// string value, so a Scope outside the constants below is valid there.
type Scope string

const (
	// ScopeData indicates an intent that changes the data model.
	ScopeData Scope = "data"

	// ScopeAPI indicates an intent that changes the API surface.
	ScopeAPI Scope = "api"

	// ScopeUI indicates an intent that changes the user interface.
	ScopeUI Scope = "ui"
)

// String returns the string representation of the Scope.
func (s Scope) String() string {
	return string(s)
}

// ActorType represents the kind of actor that produced a document.
type ActorType string

const (
	// ActorTypeHuman indicates the document was authored by a person.
	ActorTypeHuman ActorType = "human"

	// ActorTypeAgent indicates the document was produced by an AI agent.
	ActorTypeAgent ActorType = "agent"

	// ActorTypeSystem indicates the document was produced by automation.
	ActorTypeSystem ActorType = "system"
)

// DefaultActorType is assumed when a provenance block omits created_by.type.
const DefaultActorType = ActorTypeHuman

// String returns the string representation of the ActorType.
func (a ActorType) String() string {
	return string(a)
}

// IsValid reports whether the ActorType is one of the known values.
func (a ActorType) IsValid() bool {
	switch a {
	case ActorTypeHuman, ActorTypeAgent, ActorTypeSystem:
		return true
	}
	return false
}

// HTTPMethod represents the HTTP method of an endpoint intent.
type HTTPMethod string

const (
	// MethodGet declares a read endpoint.
	MethodGet HTTPMethod = "GET"

	// MethodPost declares a create endpoint.
	MethodPost HTTPMethod = "POST"

	// MethodPatch declares a partial-update endpoint.
	MethodPatch HTTPMethod = "PATCH"

	// MethodDelete declares a delete endpoint.
	MethodDelete HTTPMethod = "DELETE"
)

// String returns the string representation of the HTTPMethod.
func (m HTTPMethod) String() string {
	return string(m)
}

// IsValid reports whether the HTTPMethod is one of the permitted methods.
func (m HTTPMethod) IsValid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPatch, MethodDelete:
		return true
	}
	return false
}

// ComponentTemplate represents the rendering template of a UI component intent.
type ComponentTemplate string

const (
	// TemplateList renders a collection view of an entity.
	TemplateList ComponentTemplate = "List"

	// TemplateForm renders an input form for an entity.
	TemplateForm ComponentTemplate = "Form"

	// TemplateCustom leaves rendering to project-specific code.
	TemplateCustom ComponentTemplate = "Custom"
)

// DefaultComponentTemplate is assumed when a component intent omits template.
const DefaultComponentTemplate = TemplateCustom

// String returns the string representation of the ComponentTemplate.
func (c ComponentTemplate) String() string {
	return string(c)
}

// IsValid reports whether the ComponentTemplate is one of the known values.
func (c ComponentTemplate) IsValid() bool {
	switch c {
	case TemplateList, TemplateForm, TemplateCustom:
		return true
	}
	return false
}
