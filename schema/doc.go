// Package schema provides the typed data model for OpenIntent documents.
//
// An OpenIntent document declares a set of structured change intents
// (add an entity, add fields, add an API endpoint, add a UI component, or a
// vendor extension) intended to drive downstream code-generation tooling.
//
// This package includes:
//   - Document types (IntentDocument, Provenance, CreatedBy)
//   - The Intent sum type and its five variants
//   - Field specifications (FieldSpec) and the field type enumeration
//   - Version management utilities for schema compatibility checking
//
// Values of these types are normally produced by the validate package, which
// checks an untyped decoded document against the full set of structural and
// cross-field rules before constructing the typed form. A typed document is
// safe for downstream consumption without further shape checks.
package schema
