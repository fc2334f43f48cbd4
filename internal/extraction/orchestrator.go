// Package extraction combines per-image OCR results with one classification
// result into fully-located fields, and carries the text heuristics that need
// no external call (image roles, beverage-type detection).
package extraction

import (
	"log/slog"

	"github.com/labelcheck/labelcheck/internal/align"
	"github.com/labelcheck/labelcheck/internal/geometry"
	"github.com/labelcheck/labelcheck/internal/llm"
	"github.com/labelcheck/labelcheck/internal/vision"
)

// Variant selects how classified fields are aligned to geometry.
type Variant string

const (
	// VariantStandard expects word-index citations from the classifier.
	VariantStandard Variant = "standard"
	// VariantSubmissionFast runs value-only classification and recovers
	// geometry with the fuzzy text matcher.
	VariantSubmissionFast Variant = "submission_fast"
)

// ExtractedField is the externally visible output for one classified field.
// BoundingBox is nil when no geometry could be resolved. Confidence and
// Reasoning are preserved verbatim from the classifier.
type ExtractedField struct {
	FieldName   string                `json:"field_name"`
	Value       *string               `json:"value"`
	Confidence  int                   `json:"confidence"`
	Reasoning   string                `json:"reasoning,omitempty"`
	BoundingBox *geometry.BoundingBox `json:"bounding_box,omitempty"`
	ImageIndex  int                   `json:"image_index"`
}

// Extract aligns every classified field to a location on the source images.
// Fields carrying word indices go through the index aligner; the rest go
// through the fuzzy text matcher against the global word list.
func Extract(results []*vision.OcrResult, fields []llm.ClassifiedField, logger *slog.Logger) []ExtractedField {
	if logger == nil {
		logger = slog.Default()
	}
	arena := align.BuildArena(results)

	out := make([]ExtractedField, 0, len(fields))
	for _, f := range fields {
		var loc align.Location
		switch {
		case len(f.WordIndices) > 0:
			loc = align.ByIndices(f.WordIndices, arena, results)
		case f.Value != nil:
			matched := align.FindMatchingWords(arena, *f.Value)
			loc = align.Locate(matched, results)
		}

		if f.Value != nil && loc.Box == nil {
			logger.Debug("extraction.align.no_geometry", "field", f.FieldName)
		}

		out = append(out, ExtractedField{
			FieldName:   f.FieldName,
			Value:       f.Value,
			Confidence:  f.Confidence,
			Reasoning:   f.Reasoning,
			BoundingBox: loc.Box,
			ImageIndex:  loc.ImageIndex,
		})
	}
	return out
}
