package extraction

import (
	"strings"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/internal/vision"
)

// ImageRole is the heuristic front/back/other call for one source image.
type ImageRole string

const (
	RoleFront ImageRole = "front"
	RoleBack  ImageRole = "back"
	RoleOther ImageRole = "other"
)

// ClassifyImageRoles assigns a role to each image from its OCR text alone. A
// single image is always the front. Otherwise each image is scored as
// front-keyword hits minus back-keyword hits, ties broken by word count
// (fewer words favors front); the best-scoring image is the front, any image
// with at least two back-keyword hits is a back, and the rest are other.
func ClassifyImageRoles(results []*vision.OcrResult) []ImageRole {
	if len(results) == 0 {
		return nil
	}
	if len(results) == 1 {
		return []ImageRole{RoleFront}
	}

	type scored struct {
		front int
		back  int
		words int
	}
	scores := make([]scored, len(results))
	for i, r := range results {
		if r == nil {
			continue
		}
		text := strings.ToLower(r.FullText)
		scores[i] = scored{
			front: keywordHits(text, constants.FrontKeywords),
			back:  keywordHits(text, constants.BackKeywords),
			words: len(r.Words),
		}
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		si, sb := scores[i], scores[best]
		netI, netB := si.front-si.back, sb.front-sb.back
		if netI > netB || (netI == netB && si.words < sb.words) {
			best = i
		}
	}

	roles := make([]ImageRole, len(results))
	for i := range results {
		switch {
		case i == best:
			roles[i] = RoleFront
		case scores[i].back >= 2:
			roles[i] = RoleBack
		default:
			roles[i] = RoleOther
		}
	}
	return roles
}

func keywordHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}
