package schema

// IntentDocument is the top level of a validated OpenIntent document.
// A validated document carries at least one intent and a version string
// matching the strict MAJOR.MINOR.PATCH pattern.
type IntentDocument struct {
	// Version is the document format version.
	Version string `json:"version"`

	// Provenance optionally records who or what produced the document.
	Provenance *Provenance `json:"provenance,omitempty"`

	// Intents are the declared changes, in document order. Never empty in
	// a validated document.
	Intents []Intent `json:"intents"`
}

// Provenance records metadata about the origin of a document.
type Provenance struct {
	// CreatedBy optionally identifies the producing actor.
	CreatedBy *CreatedBy `json:"created_by,omitempty"`

	// CreatedAt is the production timestamp in strict UTC form
	// (YYYY-MM-DDTHH:MM:SSZ), or empty when not recorded.
	CreatedAt string `json:"created_at,omitempty"`

	// Source is free-text describing the producing tool or workflow.
	Source string `json:"source,omitempty"`

	// Model optionally names the model that generated the document.
	Model string `json:"model,omitempty"`
}

// CreatedBy identifies the actor that produced a document.
type CreatedBy struct {
	// Type classifies the actor as human, agent, or system. Defaults to
	// DefaultActorType when absent from the source document.
	Type ActorType `json:"type,omitempty"`

	// Name is the actor's display name, if recorded.
	Name string `json:"name,omitempty"`

	// ID is a stable identifier for the actor, if recorded.
	ID string `json:"id,omitempty"`
}
