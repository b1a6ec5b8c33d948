// Package document provides parsing, validation, and convenient access to
// OpenIntent documents in JSON or YAML form.
//
// The package wraps the typed model from the schema package with helper
// methods and provides straightforward loading and validation capabilities.
//
// # Basic Usage
//
// Load a document from a filesystem:
//
//	import (
//	    "context"
//	    "github.com/oimladmin/oiml/document"
//	    "github.com/oimladmin/oiml/fs/billy"
//	)
//
//	func main() {
//	    ctx := context.Background()
//	    fsys := billy.NewOSFS("/path/to/project")
//
//	    // Load a document (validates schema and version by default)
//	    doc, err := document.LoadDocument(ctx, fsys, "intents/orders.json")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Access the document using helpers
//	    for _, ep := range doc.Endpoints() {
//	        fmt.Printf("endpoint: %s %s\n", ep.Method, ep.Path)
//	    }
//	}
//
// Parse a document already held in memory:
//
//	doc, err := document.ParseDocument(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Validation Failures
//
// Schema violations are reported through the validate package; the full
// list survives error wrapping:
//
//	doc, err := document.ParseDocument(data)
//	if verr, ok := validate.AsValidationError(err); ok {
//	    for _, v := range verr.Violations {
//	        fmt.Printf("%s: %s\n", v.Path, v.Message)
//	    }
//	}
//
// # Advanced Usage
//
// Skip the version compatibility check during loading:
//
//	opts := document.LoadOptions{SkipVersionCheck: true}
//	doc, err := document.LoadDocumentWithOptions(ctx, fsys, "intents.json", opts)
//
// Schema validation itself always runs: the typed document form is produced
// by the validator, so there is no unvalidated loading mode.
package document
