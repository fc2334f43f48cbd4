package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/labelcheck/labelcheck/constants"
)

// BuildSystemPrompt composes the system message: the field taxonomy, the
// citation rules, and strict-but-practical formatting rules.
func BuildSystemPrompt(req ClassifyRequest, fieldNames []string) string {
	parts := []string{
		"You are a beverage label examiner. Return ONLY JSON that matches the provided JSON Schema.",
		"Identify each of the following fields on the label text: " + strings.Join(fieldNames, ", ") + ".",
		"Report every field once. If a field is not present on the label, set its value to null.",
		"Transcribe values exactly as printed on the label; do not correct spelling or casing.",
		"Set confidence as an integer 0-100 reflecting how certain you are of the transcription.",
	}

	if req.BeverageType != "" && req.BeverageType != constants.Undetermined {
		parts = append(parts, "The label is for a "+strings.ReplaceAll(string(req.BeverageType), "_", " ")+".")
	}
	if req.DetectType {
		parts = append(parts,
			"Also report 'beverage_type' as one of: wine, distilled_spirits, malt_beverage.")
	}
	if len(req.Words) > 0 {
		parts = append(parts,
			"A numbered word list accompanies the label text. For each field you find, "+
				"report 'word_indices': the indices of the exact words the value was read from. "+
				"Cite only indices from the list; omit word_indices when unsure.")
	}
	if len(req.ImageDataURLs) > 1 {
		parts = append(parts,
			"Multiple label images are attached in order. Report 'image_roles' with one of "+
				"front, back, other per image, in the same order.")
	}

	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the OCR text, the expected application values (for
// disambiguation only, never to be echoed back as extracted values), and the
// optional numbered word list.
func BuildUserPrompt(req ClassifyRequest) string {
	var b strings.Builder
	b.WriteString("Label text (OCR):\n")
	b.WriteString(req.FullText)
	b.WriteString("\n")

	if len(req.ExpectedValues) > 0 {
		b.WriteString("\nApplication values for disambiguation (the label may differ; report what the LABEL says):\n")
		keys := make([]string, 0, len(req.ExpectedValues))
		for k := range req.ExpectedValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", k, req.ExpectedValues[k])
		}
	}

	if len(req.Words) > 0 {
		b.WriteString("\nNumbered word list:\n")
		for _, w := range req.Words {
			fmt.Fprintf(&b, "%d:%s ", w.Index, w.Text)
		}
		b.WriteString("\n")
	}

	return b.String()
}
