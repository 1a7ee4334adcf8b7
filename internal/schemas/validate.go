// Package schemas validates inbound API request bodies against embedded
// JSON Schemas before any structured decoding happens.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed match_request.schema.json
var matchRequestSchema string

// ValidationError reports the schema violations found in a request body.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports a failure loading or compiling the schema itself.
// Request-body problems never surface as this type; they are the caller's
// fault and come back as ValidationError.
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var (
	matchSchemaOnce sync.Once
	matchSchema     *gojsonschema.Schema
	matchSchemaErr  error
)

// ValidateMatchRequest checks a raw match request body against the embedded
// schema. A nil return means the body is well-formed JSON that satisfies the
// schema; structured decoding may still apply stricter rules.
func ValidateMatchRequest(body []byte) error {
	matchSchemaOnce.Do(func() {
		matchSchema, matchSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(matchRequestSchema))
	})
	if matchSchemaErr != nil {
		return &SchemaLoadError{Name: "match_request", Message: "failed to compile", Cause: matchSchemaErr}
	}

	result, err := matchSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		// The schema compiled, so a validate error here means the body
		// itself could not be parsed as JSON.
		return &ValidationError{
			Errors: []FieldError{{Field: "(root)", Message: "request body is not valid JSON"}},
		}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
