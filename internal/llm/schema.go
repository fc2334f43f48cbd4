package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildClassifyJSONSchema returns the JSON-Schema (draft 2020-12 subset) for
// classifier output as a generic map. We pass it to the provider as a
// structured-output constraint and also validate locally against it.
func BuildClassifyJSONSchema(fieldNames []string, withIndices bool) map[string]any {
	fieldProps := map[string]any{
		"field_name": map[string]any{"type": "string", "enum": fieldNames},
		"value":      map[string]any{"type": []string{"string", "null"}},
		"confidence": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"reasoning":  map[string]any{"type": "string"},
	}
	required := []string{"field_name", "value", "confidence"}
	if withIndices {
		fieldProps["word_indices"] = map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "integer", "minimum": 0},
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"fields": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           fieldProps,
					"required":             required,
				},
			},
			"image_roles": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "enum": []string{"front", "back", "other"}},
			},
			"beverage_type": map[string]any{"type": "string"},
		},
		"required": []string{"fields"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
