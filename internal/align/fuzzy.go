package align

import (
	"strings"

	"github.com/labelcheck/labelcheck/internal/normalize"
)

const (
	// maxWindowWords caps how many words one window may span.
	maxWindowWords = 60
	// minCoverage is the fraction of the target that a partial window must
	// account for before it is accepted.
	minCoverage = 0.60
)

// FindMatchingWords locates the span of OCR words whose concatenated text best
// matches value, used when the classifier returned no word indices. It slides
// a growing window from every word with non-empty normalized text:
//
//   - exact normalized equality returns immediately (minimal span);
//   - a window still contained in the target is tracked by coverage;
//   - a window that has overshot but contains the target counts as full;
//   - growth stops once the window exceeds 1.5×target length + 20 characters.
//
// Tokens are joined with a space except when the accumulated text ends in a
// digit (optionally a bare trailing period) and the next token starts with a
// digit, period, or percent sign — OCR routinely splits "12.5%" into several
// tokens and the seam must close before normalization.
//
// Returns nil when the best coverage is below minCoverage.
func FindMatchingWords(words []IndexedWord, value string) []IndexedWord {
	target := normalize.String(value)
	if target == "" {
		return nil
	}
	maxChars := int(1.5*float64(len(target))) + 20

	var best []IndexedWord
	bestCoverage := 0.0

	for start := range words {
		if normalize.String(words[start].Word.Text) == "" {
			continue
		}

		var acc strings.Builder
		for end := start; end < len(words) && end-start < maxWindowWords; end++ {
			appendToken(&acc, words[end].Word.Text)

			got := normalize.String(acc.String())
			if got == target {
				return words[start : end+1]
			}
			if got != "" && strings.Contains(target, got) {
				coverage := float64(len(got)) / float64(len(target))
				if coverage > bestCoverage {
					bestCoverage = coverage
					best = words[start : end+1]
				}
			} else if strings.Contains(got, target) {
				// Overshot but the target is fully inside the window.
				if bestCoverage < 1 {
					bestCoverage = 1
					best = words[start : end+1]
				}
				break
			}
			if acc.Len() > maxChars {
				break
			}
		}
	}

	if bestCoverage < minCoverage {
		return nil
	}
	return best
}

// appendToken writes token onto acc with the smart digit join.
func appendToken(acc *strings.Builder, token string) {
	if acc.Len() == 0 {
		acc.WriteString(token)
		return
	}
	if joinsBare(acc.String(), token) {
		acc.WriteString(token)
		return
	}
	acc.WriteByte(' ')
	acc.WriteString(token)
}

// joinsBare reports whether next should be glued to accumulated without a
// space: accumulated ends in a digit (optionally followed by a bare period)
// and next begins with a digit, period, or percent sign.
func joinsBare(accumulated, next string) bool {
	if accumulated == "" || next == "" {
		return false
	}
	tail := accumulated
	if strings.HasSuffix(tail, ".") {
		tail = tail[:len(tail)-1]
	}
	if tail == "" {
		return false
	}
	last := tail[len(tail)-1]
	if last < '0' || last > '9' {
		return false
	}
	switch next[0] {
	case '.', '%':
		return true
	default:
		return next[0] >= '0' && next[0] <= '9'
	}
}
