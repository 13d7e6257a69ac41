// Package schemas provides JSON Schema validation for structured LLM
// responses. Schemas are embedded at compile time and validated in memory;
// nothing touches the filesystem.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names accepted by Validate.
const (
	StringArray  = "string_array"
	MatchReport  = "match_report"
	ParsedResume = "parsed_resume"
)

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("response does not match %s schema:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Schema string
	Cause  error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Schema, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks jsonText against the named embedded schema. It returns a
// *ValidationError when the document is well-formed JSON but does not match,
// and a plain error when the document is not JSON at all.
func Validate(schema, jsonText string) error {
	raw, err := schemaFiles.ReadFile(schema + ".schema.json")
	if err != nil {
		return &SchemaLoadError{Schema: schema, Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(raw),
		gojsonschema.NewStringLoader(jsonText),
	)
	if err != nil {
		return fmt.Errorf("invalid JSON document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: schema}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
