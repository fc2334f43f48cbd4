package vision

import (
	"context"

	"github.com/labelcheck/labelcheck/internal/geometry"
)

// OcrWord is one recognized word with its pixel-space polygon. Immutable once
// produced.
type OcrWord struct {
	Text       string        `json:"text"`
	Polygon    geometry.Quad `json:"polygon"`
	Confidence float64       `json:"confidence"` // 0..1
}

// OcrResult is the full read of one source image.
type OcrResult struct {
	Words       []OcrWord `json:"words"`
	FullText    string    `json:"full_text"`
	ImageWidth  int       `json:"image_width"`
	ImageHeight int       `json:"image_height"`
}

// Client is the OCR collaborator: raw image bytes in, one OcrResult out. The
// engine performs no OCR itself.
type Client interface {
	Read(ctx context.Context, image []byte) (*OcrResult, error)
}
