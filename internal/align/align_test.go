package align

import (
	"testing"

	"github.com/labelcheck/labelcheck/internal/geometry"
	"github.com/labelcheck/labelcheck/internal/vision"
)

func word(text string, x, y float64) vision.OcrWord {
	return vision.OcrWord{
		Text: text,
		Polygon: geometry.Quad{
			{X: x, Y: y},
			{X: x + 50, Y: y},
			{X: x + 50, Y: y + 20},
			{X: x, Y: y + 20},
		},
		Confidence: 0.95,
	}
}

func result(texts ...string) *vision.OcrResult {
	r := &vision.OcrResult{ImageWidth: 1000, ImageHeight: 800}
	for i, text := range texts {
		r.Words = append(r.Words, word(text, float64(i*60), 100))
	}
	return r
}

func TestBuildArena(t *testing.T) {
	results := []*vision.OcrResult{
		result("napa", "valley"),
		nil,
		result("estate"),
	}
	arena := BuildArena(results)
	if len(arena) != 3 {
		t.Fatalf("len(arena) = %d, want 3", len(arena))
	}
	for i, w := range arena {
		if w.GlobalIndex != i {
			t.Errorf("arena[%d].GlobalIndex = %d, want %d", i, w.GlobalIndex, i)
		}
	}
	if arena[2].ImageIndex != 2 || arena[2].LocalIndex != 0 {
		t.Errorf("arena[2] = image %d local %d, want image 2 local 0",
			arena[2].ImageIndex, arena[2].LocalIndex)
	}
	if arena[1].ImageIndex != 0 || arena[1].LocalIndex != 1 {
		t.Errorf("arena[1] = image %d local %d, want image 0 local 1",
			arena[1].ImageIndex, arena[1].LocalIndex)
	}
}

func TestLocatePrimaryImage(t *testing.T) {
	results := []*vision.OcrResult{
		result("one"),
		result("two", "words"),
	}
	arena := BuildArena(results)

	// Two referenced words on image 1 vs one on image 0.
	loc := Locate([]IndexedWord{arena[0], arena[1], arena[2]}, results)
	if loc.ImageIndex != 1 {
		t.Errorf("ImageIndex = %d, want 1", loc.ImageIndex)
	}
	if loc.Box == nil {
		t.Error("Box = nil, want box on primary image")
	}

	// Tie: one word each, lowest image index wins.
	loc = Locate([]IndexedWord{arena[2], arena[0]}, results)
	if loc.ImageIndex != 0 {
		t.Errorf("tie ImageIndex = %d, want 0", loc.ImageIndex)
	}
}

func TestLocateEmpty(t *testing.T) {
	results := []*vision.OcrResult{result("x")}
	loc := Locate(nil, results)
	if loc.ImageIndex != 0 || loc.Box != nil {
		t.Errorf("Locate(nil) = %+v, want zero location with nil box", loc)
	}
}

func TestLocatePunctuationOnlyWords(t *testing.T) {
	results := []*vision.OcrResult{result("---", "...")}
	arena := BuildArena(results)
	loc := Locate(arena, results)
	if loc.ImageIndex != 0 {
		t.Errorf("ImageIndex = %d, want 0", loc.ImageIndex)
	}
	if loc.Box != nil {
		t.Errorf("Box = %+v, want nil when every word normalizes empty", loc.Box)
	}
}

func TestLocateFiltersPunctuationFromBox(t *testing.T) {
	r := &vision.OcrResult{ImageWidth: 1000, ImageHeight: 800}
	r.Words = []vision.OcrWord{
		word("napa", 100, 100),
		word("---", 900, 700), // must not stretch the box
	}
	results := []*vision.OcrResult{r}
	arena := BuildArena(results)
	loc := Locate(arena, results)
	if loc.Box == nil {
		t.Fatal("Box = nil, want box")
	}
	if loc.Box.X+loc.Box.Width > 0.2 {
		t.Errorf("box extends to %v, punctuation word was not filtered",
			loc.Box.X+loc.Box.Width)
	}
}

func TestByIndices(t *testing.T) {
	results := []*vision.OcrResult{result("napa", "valley", "red")}
	arena := BuildArena(results)

	loc := ByIndices([]int{0, 1, -5, 99}, arena, results)
	if loc.ImageIndex != 0 {
		t.Errorf("ImageIndex = %d, want 0", loc.ImageIndex)
	}
	if loc.Box == nil {
		t.Fatal("Box = nil, want box from the two valid indices")
	}

	// All indices out of range behaves like no reference at all.
	loc = ByIndices([]int{-1, 100}, arena, results)
	if loc.Box != nil {
		t.Errorf("Box = %+v, want nil for all-invalid indices", loc.Box)
	}
}

func TestByIndicesDuplicatesDoNotDoubleVote(t *testing.T) {
	results := []*vision.OcrResult{
		result("napa"),
		result("valley"),
	}
	arena := BuildArena(results)

	// One word per image; citing the image-1 word twice must not break
	// the tie away from the lowest image index.
	loc := ByIndices([]int{1, 1, 0}, arena, results)
	if loc.ImageIndex != 0 {
		t.Errorf("ImageIndex = %d, want 0 with duplicates deduplicated", loc.ImageIndex)
	}
}

func TestFindMatchingWordsExact(t *testing.T) {
	results := []*vision.OcrResult{result("old", "napa", "valley", "red")}
	arena := BuildArena(results)

	got := FindMatchingWords(arena, "Napa Valley")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].GlobalIndex != 1 || got[1].GlobalIndex != 2 {
		t.Errorf("matched indices %d..%d, want 1..2",
			got[0].GlobalIndex, got[1].GlobalIndex)
	}
}

func TestFindMatchingWordsSplitNumber(t *testing.T) {
	results := []*vision.OcrResult{result("alcohol", "12", ".5", "%", "by", "volume")}
	arena := BuildArena(results)

	got := FindMatchingWords(arena, "12.5%")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (the split 12 .5 %% tokens)", len(got))
	}
	if got[0].Word.Text != "12" || got[2].Word.Text != "%" {
		t.Errorf("matched %q..%q, want 12..%%", got[0].Word.Text, got[2].Word.Text)
	}
}

func TestFindMatchingWordsOvershoot(t *testing.T) {
	// One OCR token contains more than the target; full containment still
	// counts as a complete match.
	results := []*vision.OcrResult{result("12.5%abv")}
	arena := BuildArena(results)

	got := FindMatchingWords(arena, "12.5%")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
}

func TestFindMatchingWordsCoverage(t *testing.T) {
	// Target has four words; only the first two appear. Coverage is below
	// 0.60, so no match.
	results := []*vision.OcrResult{result("estate", "bottled")}
	arena := BuildArena(results)
	if got := FindMatchingWords(arena, "estate bottled reserve selection"); got != nil {
		t.Errorf("got %d words, want nil below coverage threshold", len(got))
	}

	// Three of four words pushes coverage past the threshold.
	results = []*vision.OcrResult{result("estate", "bottled", "reserve")}
	arena = BuildArena(results)
	got := FindMatchingWords(arena, "estate bottled reserve selection")
	if len(got) != 3 {
		t.Errorf("len = %d, want 3 for partial coverage above threshold", len(got))
	}
}

func TestFindMatchingWordsSkipsPunctuationStarts(t *testing.T) {
	results := []*vision.OcrResult{result("---", "napa", "valley")}
	arena := BuildArena(results)
	got := FindMatchingWords(arena, "napa valley")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Word.Text != "napa" {
		t.Errorf("first matched word = %q, want napa", got[0].Word.Text)
	}
}

func TestFindMatchingWordsEmptyTarget(t *testing.T) {
	results := []*vision.OcrResult{result("napa")}
	arena := BuildArena(results)
	if got := FindMatchingWords(arena, "  ...  "); got != nil {
		t.Errorf("got %d words for empty normalized target, want nil", len(got))
	}
}
