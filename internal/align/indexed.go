package align

import "github.com/labelcheck/labelcheck/internal/vision"

// ByIndices resolves a classified field's declared global word indices to a
// Location. Out-of-range, stale, or repeated indices are dropped silently; a
// malformed reference from the classifier must never fail the whole pipeline.
// Duplicates are dropped so a twice-cited word cannot double-vote in the
// primary-image election.
func ByIndices(indices []int, arena []IndexedWord, results []*vision.OcrResult) Location {
	var referenced []IndexedWord
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(arena) || seen[idx] {
			continue
		}
		seen[idx] = true
		referenced = append(referenced, arena[idx])
	}
	return Locate(referenced, results)
}
