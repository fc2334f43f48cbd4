package llm

import (
	"context"

	"github.com/labelcheck/labelcheck/constants"
)

// ClassifiedField is one label field as identified by the classifier. Value is
// nil when the classifier could not find the field on the label. WordIndices
// reference the global OCR word list when the pipeline variant supplies one;
// indices are advisory and may be stale or out of range.
type ClassifiedField struct {
	FieldName   string  `json:"field_name"`
	Value       *string `json:"value"`
	Confidence  int     `json:"confidence"` // 0..100
	Reasoning   string  `json:"reasoning,omitempty"`
	WordIndices []int   `json:"word_indices,omitempty"`
}

// WordRef is one (global index, text) pair handed to the classifier so it can
// cite word indices back.
type WordRef struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// TokenUsage carries the provider's token counters for cost accounting.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ClassifyRequest is everything the classifier needs for one label.
type ClassifyRequest struct {
	FullText       string
	BeverageType   constants.BeverageType
	ExpectedValues map[string]string // application values, for disambiguation only
	Words          []WordRef         // optional; present in the standard variant
	ImageDataURLs  []string          // optional; present in the multimodal variant
	DetectType     bool              // ask the model for a beverage type fallback
}

// ClassifyResult is the validated classifier output.
type ClassifyResult struct {
	Fields       []ClassifiedField
	ImageRoles   []string // optional front/back/other hints, by image index
	BeverageType string   // optional detected type, free-form
	Usage        TokenUsage
}

// FieldClassifier is the classification collaborator. The engine performs no
// language-model inference itself; output shape is validated at this boundary
// and never trusted beyond it.
type FieldClassifier interface {
	ClassifyFields(ctx context.Context, req ClassifyRequest) (ClassifyResult, []byte /*rawJSON*/, error)
}
