package document

import (
	"context"
	"sort"

	"github.com/oimladmin/oiml/errors"
	"github.com/oimladmin/oiml/fs"
	"github.com/oimladmin/oiml/schema"
)

// Document wraps schema.IntentDocument with helper methods for convenient
// access to document data. All methods are read-only; documents are
// immutable after loading.
type Document struct {
	*schema.IntentDocument // Embedded for direct access to all schema fields
}

// New wraps an already-validated typed document.
func New(doc *schema.IntentDocument) *Document {
	return &Document{IntentDocument: doc}
}

// LoadOptions configures the behavior of document loading operations.
type LoadOptions struct {
	// SkipVersionCheck disables the schema-version compatibility check
	// performed after validation. Schema validation itself always runs,
	// since the typed document form is produced by the validator.
	SkipVersionCheck bool
}

// LoadDocument loads and validates a document from the specified path.
// The serialization format is selected by file extension: .yaml and .yml
// are decoded as YAML, everything else as JSON.
//
// Parameters:
//   - ctx: Context for cancellation and deadlines
//   - filesystem: Filesystem abstraction to read the document from
//   - path: Path to the document file (e.g., "intents/orders.json")
//
// Returns the loaded and validated Document, or an error if loading,
// decoding, or validation fails.
func LoadDocument(ctx context.Context, filesystem fs.ReadFS, path string) (*Document, error) {
	return loadDocument(ctx, filesystem, path, LoadOptions{})
}

// LoadDocumentWithOptions loads a document with custom options.
//
// Parameters:
//   - ctx: Context for cancellation and deadlines
//   - filesystem: Filesystem abstraction to read the document from
//   - path: Path to the document file (e.g., "intents/orders.yaml")
//   - opts: Loading options to customize behavior
//
// Returns the loaded Document, or an error if loading fails.
func LoadDocumentWithOptions(ctx context.Context, filesystem fs.ReadFS, path string, opts LoadOptions) (*Document, error) {
	return loadDocument(ctx, filesystem, path, opts)
}

// ParseDocument decodes and validates a JSON document held in memory.
func ParseDocument(data []byte) (*Document, error) {
	return parseDocument(data, FormatJSON, LoadOptions{})
}

// ParseDocumentWithOptions decodes and validates an in-memory document in
// the given format with custom options.
func ParseDocumentWithOptions(data []byte, format Format, opts LoadOptions) (*Document, error) {
	return parseDocument(data, format, opts)
}

// CheckVersion verifies the document's declared version is compatible with
// the schema version this library supports. Returns nil when compatible.
func (d *Document) CheckVersion() error {
	if d.IntentDocument == nil {
		return errors.New(errors.CodeInvalidDocument, "no document loaded")
	}
	ok, err := schema.IsCompatible(d.Version)
	if err != nil {
		return errors.Wrap(err, errors.CodeUnsupportedVersion, "cannot check document version")
	}
	if !ok {
		return errors.Newf(errors.CodeUnsupportedVersion,
			"document version %s is not compatible with schema version %s",
			d.Version, schema.SchemaVersion)
	}
	return nil
}

// Intent access helper methods

// IntentsForScope returns the intents targeting the given scope, in
// document order.
func (d *Document) IntentsForScope(scope schema.Scope) []schema.Intent {
	if d.IntentDocument == nil {
		return nil
	}
	var result []schema.Intent
	for _, intent := range d.Intents {
		if intent.IntentScope() == scope {
			result = append(result, intent)
		}
	}
	return result
}

// ListKinds returns a sorted list of the distinct intent kinds appearing in
// the document.
func (d *Document) ListKinds() []string {
	if d.IntentDocument == nil {
		return []string{}
	}
	seen := make(map[string]bool)
	for _, intent := range d.Intents {
		seen[intent.IntentKind()] = true
	}
	kinds := make([]string, 0, len(seen))
	for kind := range seen {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Entities returns a sorted list of the distinct entity names referenced by
// data-scope intents.
func (d *Document) Entities() []string {
	if d.IntentDocument == nil {
		return []string{}
	}
	seen := make(map[string]bool)
	for _, intent := range d.Intents {
		switch i := intent.(type) {
		case *schema.AddEntity:
			seen[i.Entity] = true
		case *schema.AddField:
			seen[i.Entity] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Endpoints returns the add_endpoint intents, in document order.
func (d *Document) Endpoints() []*schema.AddEndpoint {
	if d.IntentDocument == nil {
		return nil
	}
	var result []*schema.AddEndpoint
	for _, intent := range d.Intents {
		if ep, ok := intent.(*schema.AddEndpoint); ok {
			result = append(result, ep)
		}
	}
	return result
}

// Components returns the add_component intents, in document order.
func (d *Document) Components() []*schema.AddComponent {
	if d.IntentDocument == nil {
		return nil
	}
	var result []*schema.AddComponent
	for _, intent := range d.Intents {
		if comp, ok := intent.(*schema.AddComponent); ok {
			result = append(result, comp)
		}
	}
	return result
}

// Extensions returns the vendor extension intents, in document order.
func (d *Document) Extensions() []*schema.Extension {
	if d.IntentDocument == nil {
		return nil
	}
	var result []*schema.Extension
	for _, intent := range d.Intents {
		if ext, ok := intent.(*schema.Extension); ok {
			result = append(result, ext)
		}
	}
	return result
}

// ExtensionsByKind returns the extension intents with the given kind, in
// document order.
func (d *Document) ExtensionsByKind(kind string) []*schema.Extension {
	var result []*schema.Extension
	for _, ext := range d.Extensions() {
		if ext.Kind == kind {
			result = append(result, ext)
		}
	}
	return result
}

// Provenance helper methods

// HasProvenance reports whether the document carries a provenance block.
func (d *Document) HasProvenance() bool {
	return d.IntentDocument != nil && d.Provenance != nil
}

// CreatedByType returns the actor type recorded in provenance, or
// schema.DefaultActorType when the document records none.
func (d *Document) CreatedByType() schema.ActorType {
	if !d.HasProvenance() || d.Provenance.CreatedBy == nil {
		return schema.DefaultActorType
	}
	return d.Provenance.CreatedBy.Type
}
