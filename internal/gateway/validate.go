package gateway

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compiled validators keyed by *Schema identity.
// The domain schemas (quiz, evaluation, lesson, mastery) are package-level
// singletons, so each compiles exactly once per process.
var compiledSchemas sync.Map // map[*Schema]*jsonschema.Schema

// validateResponse checks raw model output against the request's Schema.
// A nil schema means free text and always passes; any failure comes back
// as *ErrInvalidResponse so the retry layer can grant one more attempt.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compiledFor(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return nil
}

func compiledFor(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(schema); ok {
		return cached.(*jsonschema.Schema), nil
	}
	compiled, err := compileDefinition(schema.Name, schema.Definition)
	if err != nil {
		return nil, err
	}
	compiledSchemas.Store(schema, compiled)
	return compiled, nil
}

// compileDefinition turns a definition map into a validator. The compiler
// wants a parsed JSON value rather than Go maps with typed values, so the
// definition round-trips through encoding/json first.
func compileDefinition(name string, def map[string]any) (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
