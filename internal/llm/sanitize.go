package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// SanitizeClassifierJSON repairs the recurring shape offenses in classifier
// output so the document can still validate:
//
//   - unknown top-level keys removed (additionalProperties = false friendliness)
//   - confidence given as a 0..1 float rescaled to the 0..100 integer range
//   - empty-string or literal "null" values turned into real nulls
//   - fractional or negative word indices dropped
//
// Only shape is touched, never content. Returns the cleaned document plus the
// list of repairs for logging.
func SanitizeClassifierJSON(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var repaired []string

	for k := range m {
		switch k {
		case "fields", "image_roles", "beverage_type":
		default:
			delete(m, k)
			repaired = append(repaired, k+"(unknown)")
		}
	}

	rawFields, ok := m["fields"].([]any)
	if !ok {
		return nil, repaired, fmt.Errorf("sanitize: fields is not an array")
	}

	for _, rf := range rawFields {
		f, ok := rf.(map[string]any)
		if !ok {
			continue
		}
		name, _ := f["field_name"].(string)

		if v, ok := f["value"].(string); ok {
			s := strings.TrimSpace(v)
			if s == "" || strings.EqualFold(s, "null") {
				f["value"] = nil
				repaired = append(repaired, name+".value(empty)")
			}
		}

		if c, ok := f["confidence"].(float64); ok {
			switch {
			case c < 0:
				f["confidence"] = 0
				repaired = append(repaired, name+".confidence(negative)")
			case c > 0 && c <= 1:
				f["confidence"] = int(math.Round(c * 100))
				repaired = append(repaired, name+".confidence(fraction)")
			case c != math.Trunc(c):
				f["confidence"] = int(math.Round(c))
				repaired = append(repaired, name+".confidence(float)")
			case c > 100:
				f["confidence"] = 100
				repaired = append(repaired, name+".confidence(overflow)")
			}
		}

		if wi, ok := f["word_indices"].([]any); ok {
			kept := make([]any, 0, len(wi))
			for _, v := range wi {
				n, ok := v.(float64)
				if !ok || n < 0 || n != math.Trunc(n) {
					repaired = append(repaired, name+".word_indices(bad)")
					continue
				}
				kept = append(kept, int(n))
			}
			f["word_indices"] = kept
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, repaired, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, repaired, nil
}
