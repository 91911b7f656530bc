package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Error Messages
const (
	ErrMsgSchemaNotFound    = "schema not registered"
	ErrMsgSchemaInvalid     = "invalid schema"
	ErrMsgDocumentNotJSON   = "failed to parse JSON data"
	ErrMsgSchemaFailed      = "schema validation failed"
	ErrMsgDocumentNotEncode = "document cannot be encoded as JSON"
)

// SchemaValidator validates documents against registered JSON schemas
type SchemaValidator interface {
	// AddSchema compiles schema and registers it under name
	AddSchema(name string, schema []byte) error
	// ValidateBytes validates JSON data against the schema registered as name
	ValidateBytes(data []byte, name string) error
	// ValidateDocument validates any JSON-encodable value, such as a decoded YAML document
	ValidateDocument(doc interface{}, name string) error
}

type schemaValidator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &schemaValidator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

func (v *schemaValidator) AddSchema(name string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgSchemaInvalid, name, err)
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgSchemaInvalid, name, err)
	}
	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgSchemaInvalid, name, err)
	}

	v.schemas[name] = compiled
	return nil
}

func (v *schemaValidator) ValidateBytes(data []byte, name string) error {
	v.mu.Lock()
	schema, ok := v.schemas[name]
	v.mu.Unlock()
	if !ok {
		return fmt.Errorf("%s: %s", ErrMsgSchemaNotFound, name)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDocumentNotJSON, err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func (v *schemaValidator) ValidateDocument(doc interface{}, name string) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDocumentNotEncode, err)
	}
	return v.ValidateBytes(data, name)
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errors []string
		collectErrors(validationErr, &errors)
		return fmt.Errorf("%s:\n%s", ErrMsgSchemaFailed, strings.Join(errors, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects the leaf validation errors
func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	if len(err.Causes) == 0 {
		*errors = append(*errors, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
