package extraction

import (
	"testing"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/internal/geometry"
	"github.com/labelcheck/labelcheck/internal/llm"
	"github.com/labelcheck/labelcheck/internal/vision"
)

func ocrResult(texts ...string) *vision.OcrResult {
	r := &vision.OcrResult{ImageWidth: 1000, ImageHeight: 800}
	for i, text := range texts {
		x := float64(i * 60)
		r.Words = append(r.Words, vision.OcrWord{
			Text: text,
			Polygon: geometry.Quad{
				{X: x, Y: 100}, {X: x + 50, Y: 100},
				{X: x + 50, Y: 120}, {X: x, Y: 120},
			},
			Confidence: 0.9,
		})
		if i > 0 {
			r.FullText += " "
		}
		r.FullText += text
	}
	return r
}

func TestDetectBeverageType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.BeverageType
	}{
		{
			"wine",
			"NAPA VALLEY WINERY estate bottled Cabernet Sauvignon contains sulfites",
			constants.Wine,
		},
		{
			"spirits",
			"Kentucky Straight Bourbon Whiskey, aged in oak barrels, 90 proof, small batch",
			constants.DistilledSpirits,
		},
		{
			"malt",
			"India Pale Ale brewed with cascade hops by the Riverbend Brewing Company",
			constants.MaltBeverage,
		},
		{"no keywords", "a plain product description", constants.Undetermined},
		{"empty", "", constants.Undetermined},
		{
			// One wine hit and one spirits hit cancel out.
			"ambiguous",
			"vintage cask",
			constants.Undetermined,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectBeverageType(tt.text); got != tt.want {
				t.Errorf("DetectBeverageType() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyImageRolesSingleImage(t *testing.T) {
	roles := ClassifyImageRoles([]*vision.OcrResult{ocrResult("anything")})
	if len(roles) != 1 || roles[0] != RoleFront {
		t.Errorf("roles = %v, want [front]", roles)
	}
	if roles := ClassifyImageRoles(nil); roles != nil {
		t.Errorf("roles = %v, want nil for no images", roles)
	}
}

func TestClassifyImageRolesFrontAndBack(t *testing.T) {
	front := ocrResult("Estate", "Reserve", "Cabernet")
	back := ocrResult("GOVERNMENT", "WARNING:", "Surgeon", "General")
	back.FullText = "GOVERNMENT WARNING: according to the Surgeon General... contains sulfites. Produced and bottled by Riverbend."

	roles := ClassifyImageRoles([]*vision.OcrResult{back, front})
	if roles[1] != RoleFront {
		t.Errorf("roles[1] = %s, want front", roles[1])
	}
	if roles[0] != RoleBack {
		t.Errorf("roles[0] = %s, want back", roles[0])
	}
}

func TestClassifyImageRolesTieFavorsFewerWords(t *testing.T) {
	// No keyword hits on either image; the sparser one is the front.
	sparse := ocrResult("Brand", "Name")
	dense := ocrResult("lots", "of", "body", "copy", "on", "this", "panel")

	roles := ClassifyImageRoles([]*vision.OcrResult{dense, sparse})
	if roles[1] != RoleFront {
		t.Errorf("roles[1] = %s, want front for the sparser image", roles[1])
	}
	if roles[0] != RoleOther {
		t.Errorf("roles[0] = %s, want other without back keywords", roles[0])
	}
}

func TestExtractWithWordIndices(t *testing.T) {
	results := []*vision.OcrResult{ocrResult("OLD", "TAVERN", "WINERY")}
	value := "Old Tavern"
	fields := []llm.ClassifiedField{{
		FieldName:   string(constants.FieldBrandName),
		Value:       &value,
		Confidence:  92,
		WordIndices: []int{0, 1},
	}}

	out := Extract(results, fields, nil)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	f := out[0]
	if f.BoundingBox == nil {
		t.Fatal("BoundingBox = nil, want geometry from the cited words")
	}
	if f.ImageIndex != 0 {
		t.Errorf("ImageIndex = %d, want 0", f.ImageIndex)
	}
	if f.Confidence != 92 {
		t.Errorf("Confidence = %d, want 92 preserved", f.Confidence)
	}
	// Two cited words at x 0..50 and 60..110 of a 1000px image.
	if f.BoundingBox.X != 0 || f.BoundingBox.Width != 0.11 {
		t.Errorf("box = %+v, want X=0 Width=0.11", f.BoundingBox)
	}
}

func TestExtractFuzzyFallback(t *testing.T) {
	results := []*vision.OcrResult{ocrResult("from", "OLD", "TAVERN", "cellars")}
	value := "Old Tavern"
	fields := []llm.ClassifiedField{{
		FieldName: string(constants.FieldBrandName),
		Value:     &value,
	}}

	out := Extract(results, fields, nil)
	if out[0].BoundingBox == nil {
		t.Fatal("BoundingBox = nil, want fuzzy-matched geometry")
	}
	// The matched span starts at the second word (x=60).
	if out[0].BoundingBox.X != 0.06 {
		t.Errorf("box.X = %v, want 0.06", out[0].BoundingBox.X)
	}
}

func TestExtractNilValue(t *testing.T) {
	results := []*vision.OcrResult{ocrResult("anything")}
	fields := []llm.ClassifiedField{{FieldName: string(constants.FieldVintage)}}

	out := Extract(results, fields, nil)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].Value != nil || out[0].BoundingBox != nil {
		t.Errorf("out[0] = %+v, want nil value and box passed through", out[0])
	}
}
