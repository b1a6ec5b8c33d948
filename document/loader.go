package document

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oimladmin/oiml/errors"
	"github.com/oimladmin/oiml/fs"
	"github.com/oimladmin/oiml/validate"
)

// Format identifies the serialization format of a document.
type Format string

const (
	// FormatJSON is the canonical document format.
	FormatJSON Format = "json"

	// FormatYAML is the YAML document form. It decodes to the same data
	// model and passes through the same validator.
	FormatYAML Format = "yaml"
)

// loadDocument loads a document from the specified path.
// This is the internal function called by the public LoadDocument functions.
//
// The function performs the following steps:
// 1. Reads the file through the filesystem abstraction
// 2. Selects the format from the file extension
// 3. Decodes and validates via parseDocument
//
// All errors are wrapped with context using the errors package.
func loadDocument(_ context.Context, filesystem fs.ReadFS, path string, opts LoadOptions) (*Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(
			err,
			errors.CodeLoadFailed,
			"failed to load document",
			map[string]any{
				"path": path,
			},
		)
	}

	return parseDocument(data, formatForPath(path), opts)
}

// parseDocument decodes data in the given format, validates it against the
// document schema, and checks version compatibility unless disabled.
func parseDocument(data []byte, format Format, opts LoadOptions) (*Document, error) {
	var raw any
	var decodeErr error
	switch format {
	case FormatYAML:
		if decodeErr = yaml.Unmarshal(data, &raw); decodeErr == nil {
			raw = normalizeYAML(raw)
		}
	default:
		decodeErr = json.Unmarshal(data, &raw)
	}
	if decodeErr != nil {
		return nil, errors.WrapWithContext(
			decodeErr,
			errors.CodeDecodeFailed,
			"failed to decode document",
			map[string]any{
				"format": string(format),
			},
		)
	}

	typed, err := validate.Validate(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSchemaFailed, "document failed schema validation")
	}

	doc := New(typed)

	if !opts.SkipVersionCheck {
		if err := doc.CheckVersion(); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// normalizeYAML rewrites values the YAML resolver typed beyond the JSON data
// model. Unquoted timestamps decode to time.Time and are rewritten to their
// canonical string form; mappings with non-string keys are rewritten to
// string-keyed maps. The result contains only JSON-model values, matching
// what json.Unmarshal would have produced for the equivalent document.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[k] = normalizeYAML(item)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return m
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	case time.Time:
		return val.UTC().Format("2006-01-02T15:04:05Z")
	default:
		return v
	}
}

// formatForPath selects the serialization format from a file extension.
func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
