// Package align resolves classified fields to word geometry. Two paths exist:
// explicit word-index references from the classifier, and an LLM-free fuzzy
// text search used when no indices are available.
package align

import (
	"github.com/labelcheck/labelcheck/internal/geometry"
	"github.com/labelcheck/labelcheck/internal/normalize"
	"github.com/labelcheck/labelcheck/internal/vision"
)

// IndexedWord is an OCR word plus its position in the per-extraction arena.
// GlobalIndex is unique across the concatenation of all images' word lists and
// is only meaningful for the lifetime of one extraction call.
type IndexedWord struct {
	Word        vision.OcrWord
	GlobalIndex int
	ImageIndex  int
	LocalIndex  int
}

// BuildArena flattens per-image OCR results into one indexed word list,
// image-major then local order. Built once per extraction call and discarded;
// nothing here is shared across calls.
func BuildArena(results []*vision.OcrResult) []IndexedWord {
	var arena []IndexedWord
	global := 0
	for imageIdx, r := range results {
		if r == nil {
			continue
		}
		for localIdx, w := range r.Words {
			arena = append(arena, IndexedWord{
				Word:        w,
				GlobalIndex: global,
				ImageIndex:  imageIdx,
				LocalIndex:  localIdx,
			})
			global++
		}
	}
	return arena
}

// Location is resolved geometry for one field: the primary image it sits on
// and its normalized bounding box. Box is nil when no geometry could be
// resolved.
type Location struct {
	ImageIndex int
	Box        *geometry.BoundingBox
}

// Locate reduces a set of referenced words to a Location. The primary image is
// the one with the most referenced words, ties broken by lowest image index.
// Words whose normalized text is empty are dropped before the box is computed
// so punctuation-only tokens from a stray line cannot stretch the box; if that
// filter empties the set the box is nil but the primary image index is kept.
func Locate(words []IndexedWord, results []*vision.OcrResult) Location {
	if len(words) == 0 {
		return Location{ImageIndex: 0}
	}

	counts := make(map[int]int)
	for _, w := range words {
		counts[w.ImageIndex]++
	}
	primary := -1
	for _, w := range words {
		if primary < 0 || counts[w.ImageIndex] > counts[primary] ||
			(counts[w.ImageIndex] == counts[primary] && w.ImageIndex < primary) {
			primary = w.ImageIndex
		}
	}

	var quads []geometry.Quad
	for _, w := range words {
		if w.ImageIndex != primary {
			continue
		}
		if normalize.String(w.Word.Text) == "" {
			continue
		}
		quads = append(quads, w.Word.Polygon)
	}

	loc := Location{ImageIndex: primary}
	if primary >= 0 && primary < len(results) && results[primary] != nil {
		r := results[primary]
		loc.Box = geometry.BoundingBoxOf(quads, r.ImageWidth, r.ImageHeight)
	}
	return loc
}
