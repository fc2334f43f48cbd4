package llm

import (
	"encoding/json"
	"testing"
)

func decodeFields(t *testing.T, doc []byte) []map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		t.Fatalf("unmarshal sanitized doc: %v", err)
	}
	raw, ok := m["fields"].([]any)
	if !ok {
		t.Fatalf("fields missing from %s", doc)
	}
	out := make([]map[string]any, len(raw))
	for i, rf := range raw {
		out[i] = rf.(map[string]any)
	}
	return out
}

func TestSanitizeClassifierJSON(t *testing.T) {
	raw := []byte(`{
		"fields": [
			{"field_name": "brand_name", "value": "Old Tavern", "confidence": 0.92},
			{"field_name": "vintage", "value": "null", "confidence": 80},
			{"field_name": "appellation", "value": "  ", "confidence": -5},
			{"field_name": "net_contents", "value": "750 mL", "confidence": 150,
			 "word_indices": [3, -1, 4.5, 7]}
		],
		"commentary": "model chatter"
	}`)

	out, repairs, err := SanitizeClassifierJSON(raw)
	if err != nil {
		t.Fatalf("SanitizeClassifierJSON: %v", err)
	}
	if len(repairs) == 0 {
		t.Error("repairs empty, want the applied fixes listed")
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["commentary"]; ok {
		t.Error("unknown top-level key survived")
	}

	fields := decodeFields(t, out)
	if got := fields[0]["confidence"].(float64); got != 92 {
		t.Errorf("fractional confidence = %v, want 92", got)
	}
	if fields[1]["value"] != nil {
		t.Errorf(`"null" value = %v, want nil`, fields[1]["value"])
	}
	if fields[2]["value"] != nil {
		t.Errorf("blank value = %v, want nil", fields[2]["value"])
	}
	if got := fields[2]["confidence"].(float64); got != 0 {
		t.Errorf("negative confidence = %v, want 0", got)
	}
	if got := fields[3]["confidence"].(float64); got != 100 {
		t.Errorf("overflow confidence = %v, want 100", got)
	}

	indices := fields[3]["word_indices"].([]any)
	if len(indices) != 2 {
		t.Fatalf("word_indices = %v, want the two valid entries", indices)
	}
	if indices[0].(float64) != 3 || indices[1].(float64) != 7 {
		t.Errorf("word_indices = %v, want [3 7]", indices)
	}
}

func TestSanitizeClassifierJSONNegativeFraction(t *testing.T) {
	raw := []byte(`{"fields": [
		{"field_name": "brand_name", "value": "Old Tavern", "confidence": -0.5}
	]}`)

	out, _, err := SanitizeClassifierJSON(raw)
	if err != nil {
		t.Fatalf("SanitizeClassifierJSON: %v", err)
	}
	fields := decodeFields(t, out)
	if got := fields[0]["confidence"].(float64); got != 0 {
		t.Errorf("negative fractional confidence = %v, want 0", got)
	}

	schema := BuildClassifyJSONSchema([]string{"brand_name"}, false)
	if err := ValidateJSONAgainstSchema(schema, out); err != nil {
		t.Errorf("sanitized document failed validation: %v", err)
	}
}

func TestSanitizeClassifierJSONErrors(t *testing.T) {
	if _, _, err := SanitizeClassifierJSON([]byte("not json")); err == nil {
		t.Error("want error for malformed JSON")
	}
	if _, _, err := SanitizeClassifierJSON([]byte(`{"fields": "oops"}`)); err == nil {
		t.Error("want error when fields is not an array")
	}
}

func TestSanitizedOutputValidates(t *testing.T) {
	raw := []byte(`{
		"fields": [
			{"field_name": "brand_name", "value": "Old Tavern", "confidence": 0.9,
			 "word_indices": [1, 2.5]}
		],
		"extra": true
	}`)
	schema := BuildClassifyJSONSchema([]string{"brand_name"}, true)

	if err := ValidateJSONAgainstSchema(schema, raw); err == nil {
		t.Fatal("raw document should not validate")
	}

	cleaned, _, err := SanitizeClassifierJSON(raw)
	if err != nil {
		t.Fatalf("SanitizeClassifierJSON: %v", err)
	}
	if err := ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		t.Errorf("sanitized document failed validation: %v", err)
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildClassifyJSONSchema([]string{"brand_name", "vintage"}, false)

	good := []byte(`{"fields": [
		{"field_name": "brand_name", "value": "Old Tavern", "confidence": 92},
		{"field_name": "vintage", "value": null, "confidence": 0}
	]}`)
	if err := ValidateJSONAgainstSchema(schema, good); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field name", `{"fields": [{"field_name": "bogus", "value": "x", "confidence": 50}]}`},
		{"missing confidence", `{"fields": [{"field_name": "vintage", "value": "2019"}]}`},
		{"missing fields key", `{}`},
		{"confidence out of range", `{"fields": [{"field_name": "vintage", "value": "2019", "confidence": 150}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(schema, []byte(tt.doc)); err == nil {
				t.Error("invalid document accepted")
			}
		})
	}
}
