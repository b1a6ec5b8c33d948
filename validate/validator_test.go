package validate

import (
	"encoding/json"
	stderrors "errors"
	"reflect"
	"strings"
	"testing"

	"github.com/oimladmin/oiml/errors"
	"github.com/oimladmin/oiml/schema"
)

// validDoc returns a minimal valid document for tests to mutate.
func validDoc() map[string]any {
	return map[string]any{
		"version": "1.0.0",
		"intents": []any{
			map[string]any{
				"kind":   "add_entity",
				"scope":  "data",
				"entity": "Order",
				"fields": []any{
					map[string]any{"name": "id", "type": "uuid", "required": true},
				},
			},
		},
	}
}

// requireInvalid validates input, failing the test unless it is rejected
// with a *ValidationError.
func requireInvalid(t *testing.T, input any) *ValidationError {
	t.Helper()
	_, err := Validate(input)
	if err == nil {
		t.Fatal("Validate() expected error, got nil")
	}
	verr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	return verr
}

// hasViolation reports whether verr contains a violation at path whose
// message contains msgSub.
func hasViolation(verr *ValidationError, path, msgSub string) bool {
	for _, v := range verr.Violations {
		if v.Path == path && strings.Contains(v.Message, msgSub) {
			return true
		}
	}
	return false
}

func TestValidate_EndToEnd(t *testing.T) {
	doc, err := Validate(validDoc())
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	if doc.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", doc.Version, "1.0.0")
	}
	if len(doc.Intents) != 1 {
		t.Fatalf("len(Intents) = %d, want 1", len(doc.Intents))
	}

	entity, ok := doc.Intents[0].(*schema.AddEntity)
	if !ok {
		t.Fatalf("Intents[0] = %T, want *schema.AddEntity", doc.Intents[0])
	}
	if entity.Entity != "Order" {
		t.Errorf("Entity = %q, want %q", entity.Entity, "Order")
	}
	if len(entity.Fields) != 1 {
		t.Fatalf("len(Fields) = %d, want 1", len(entity.Fields))
	}
	field := entity.Fields[0]
	if field.Name != "id" || field.Type != schema.FieldUUID || !field.Required {
		t.Errorf("Fields[0] = %+v, want id/uuid/required", field)
	}
}

func TestValidate_RoundTrip(t *testing.T) {
	// A fully-explicit document must survive validation and re-marshaling
	// structurally unchanged: validation is non-mutating and adds nothing.
	input := map[string]any{
		"version": "1.2.3",
		"provenance": map[string]any{
			"created_by": map[string]any{
				"type": "agent",
				"name": "planner",
				"id":   "agent-7",
			},
			"created_at": "2024-01-15T10:30:00Z",
			"source":     "chat session",
			"model":      "planner-2024-05",
		},
		"intents": []any{
			map[string]any{
				"kind":   "add_entity",
				"scope":  "data",
				"entity": "Order",
				"fields": []any{
					map[string]any{"name": "id", "type": "uuid", "required": true},
				},
			},
		},
	}

	doc, err := Validate(input)
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if !reflect.DeepEqual(got, input) {
		t.Errorf("round trip mismatch:\n got: %#v\nwant: %#v", got, input)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	input := validDoc()

	data, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var snapshot map[string]any
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if _, err := Validate(input); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(input, snapshot) {
		t.Error("Validate() mutated its input")
	}
}

func TestValidate_NonObjectDocument(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"string", "hello"},
		{"number", float64(42)},
		{"array", []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := requireInvalid(t, tt.input)
			if !hasViolation(verr, "", "must be an object") {
				t.Errorf("missing document-level violation, got %v", verr.Violations)
			}
		})
	}
}

//nolint:funlen // Comprehensive table-driven test with many test cases
func TestValidate_TopLevelShape(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc map[string]any)
		path    string
		message string
	}{
		{
			name:    "missing version",
			mutate:  func(doc map[string]any) { delete(doc, "version") },
			path:    "version",
			message: "required key",
		},
		{
			name:    "version not a string",
			mutate:  func(doc map[string]any) { doc["version"] = float64(1) },
			path:    "version",
			message: "must be a string",
		},
		{
			name:    "version with leading zero minor",
			mutate:  func(doc map[string]any) { doc["version"] = "1.01.0" },
			path:    "version",
			message: "no leading zeros",
		},
		{
			name:    "version with leading zero major",
			mutate:  func(doc map[string]any) { doc["version"] = "01.0.0" },
			path:    "version",
			message: "no leading zeros",
		},
		{
			name:    "version missing patch",
			mutate:  func(doc map[string]any) { doc["version"] = "1.0" },
			path:    "version",
			message: "MAJOR.MINOR.PATCH",
		},
		{
			name:    "extra top-level key",
			mutate:  func(doc map[string]any) { doc["extra"] = true },
			path:    "extra",
			message: "unknown key",
		},
		{
			name:    "missing intents",
			mutate:  func(doc map[string]any) { delete(doc, "intents") },
			path:    "intents",
			message: "required key",
		},
		{
			name:    "intents not an array",
			mutate:  func(doc map[string]any) { doc["intents"] = "nope" },
			path:    "intents",
			message: "must be an array",
		},
		{
			name:    "empty intents",
			mutate:  func(doc map[string]any) { doc["intents"] = []any{} },
			path:    "intents",
			message: "at least one intent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			tt.mutate(doc)
			verr := requireInvalid(t, doc)
			if !hasViolation(verr, tt.path, tt.message) {
				t.Errorf("want violation at %q containing %q, got %v",
					tt.path, tt.message, verr.Violations)
			}
		})
	}
}

func TestValidate_Provenance(t *testing.T) {
	tests := []struct {
		name       string
		provenance any
		path       string
		message    string
	}{
		{
			name:       "not an object",
			provenance: "by hand",
			path:       "provenance",
			message:    "must be an object",
		},
		{
			name:       "unknown key",
			provenance: map[string]any{"author": "me"},
			path:       "provenance.author",
			message:    "unknown key",
		},
		{
			name:       "offset timestamp rejected",
			provenance: map[string]any{"created_at": "2024-01-15T10:30:00+00:00"},
			path:       "provenance.created_at",
			message:    "YYYY-MM-DDTHH:MM:SSZ",
		},
		{
			name:       "fractional seconds rejected",
			provenance: map[string]any{"created_at": "2024-01-15T10:30:00.000Z"},
			path:       "provenance.created_at",
			message:    "YYYY-MM-DDTHH:MM:SSZ",
		},
		{
			name:       "impossible date rejected",
			provenance: map[string]any{"created_at": "2024-13-45T10:30:00Z"},
			path:       "provenance.created_at",
			message:    "YYYY-MM-DDTHH:MM:SSZ",
		},
		{
			name: "invalid actor type",
			provenance: map[string]any{
				"created_by": map[string]any{"type": "robot"},
			},
			path:    "provenance.created_by.type",
			message: "must be one of",
		},
		{
			name: "created_by unknown key",
			provenance: map[string]any{
				"created_by": map[string]any{"email": "a@b.c"},
			},
			path:    "provenance.created_by.email",
			message: "unknown key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			doc["provenance"] = tt.provenance
			verr := requireInvalid(t, doc)
			if !hasViolation(verr, tt.path, tt.message) {
				t.Errorf("want violation at %q containing %q, got %v",
					tt.path, tt.message, verr.Violations)
			}
		})
	}
}

func TestValidate_ValidProvenance(t *testing.T) {
	doc := validDoc()
	doc["provenance"] = map[string]any{
		"created_by": map[string]any{"name": "alice"},
		"created_at": "2024-01-15T10:30:00Z",
		"source":     "design review",
	}

	typed, err := Validate(doc)
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if typed.Provenance == nil || typed.Provenance.CreatedBy == nil {
		t.Fatal("Provenance not populated")
	}
	if typed.Provenance.CreatedBy.Type != schema.ActorTypeHuman {
		t.Errorf("CreatedBy.Type = %q, want default %q",
			typed.Provenance.CreatedBy.Type, schema.ActorTypeHuman)
	}
	if typed.Provenance.CreatedAt != "2024-01-15T10:30:00Z" {
		t.Errorf("CreatedAt = %q", typed.Provenance.CreatedAt)
	}
}

func TestValidate_ProvenanceDoesNotAbortIntents(t *testing.T) {
	// A malformed provenance block and a malformed intent must both be
	// reported in one pass.
	doc := validDoc()
	doc["provenance"] = map[string]any{"created_at": "yesterday"}
	doc["intents"] = []any{
		map[string]any{"kind": "add_widget", "scope": "data"},
	}

	verr := requireInvalid(t, doc)
	if !hasViolation(verr, "provenance.created_at", "YYYY-MM-DDTHH:MM:SSZ") {
		t.Errorf("missing provenance violation, got %v", verr.Violations)
	}
	if !hasViolation(verr, "intents[0]", "unrecognized intent kind") {
		t.Errorf("missing intent violation, got %v", verr.Violations)
	}
}

func TestValidate_ReportsAllDefectsInOnePass(t *testing.T) {
	doc := map[string]any{
		"version": "1.01.0",
		"extra":   true,
		"intents": []any{
			map[string]any{
				"kind":   "add_entity",
				"scope":  "data",
				"entity": "",
				"fields": []any{
					map[string]any{"name": "tags", "type": "array"},
				},
			},
		},
	}

	verr := requireInvalid(t, doc)
	for _, want := range []struct{ path, msg string }{
		{"version", "no leading zeros"},
		{"extra", "unknown key"},
		{"intents[0].entity", "must not be empty"},
		{"intents[0].fields[0]", `"array_type" is required`},
	} {
		if !hasViolation(verr, want.path, want.msg) {
			t.Errorf("want violation at %q containing %q, got %v",
				want.path, want.msg, verr.Violations)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	verr := &ValidationError{Violations: []Violation{
		{Path: "version", Message: "required key \"version\" missing"},
		{Path: "", Message: "document must be an object, got null"},
	}}

	msg := verr.Error()
	if !strings.Contains(msg, "document validation failed") {
		t.Errorf("Error() = %q, missing prefix", msg)
	}
	if !strings.Contains(msg, "version: required key") {
		t.Errorf("Error() = %q, missing path-qualified violation", msg)
	}
}

func TestValidationError_UnwrapsToSchemaCode(t *testing.T) {
	doc := validDoc()
	doc["version"] = "1.01.0"
	_, err := Validate(doc)
	if err == nil {
		t.Fatal("Validate expected error")
	}

	if !stderrors.Is(err, ErrSchemaValidation) {
		t.Error("errors.Is(err, ErrSchemaValidation) = false")
	}
	if got := errors.GetCode(err); got != errors.CodeSchemaFailed {
		t.Errorf("GetCode = %q, want %q", got, errors.CodeSchemaFailed)
	}
}
