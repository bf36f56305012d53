package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func asteroidsSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("asteroids.schema.json", asteroidsSchemaJSON)
	})
	return compiledSchema, schemaErr
}

// ValidateYAML checks a YAML config document against the embedded JSON schema.
// Unknown keys and out-of-range values are reported with their JSON pointer.
func ValidateYAML(data []byte) error {
	schema, err := asteroidsSchema()
	if err != nil {
		return fmt.Errorf("config: compile schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// The validator works on JSON value types, so normalize YAML ints and maps.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: normalize document: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return fmt.Errorf("config: normalize document: %w", err)
	}

	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
