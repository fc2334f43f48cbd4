package llm

import (
	"encoding/base64"
	"net/http"
)

// MaxVisionMB caps the size of any single image attached to a multimodal
// classification request.
const MaxVisionMB = 16

// ImageDataURL encodes image bytes as a data URL for multimodal attachment.
// Returns "" (skip the attachment) when the image is oversized; content type
// is sniffed from the bytes.
func ImageDataURL(image []byte) string {
	if len(image) == 0 || len(image) > MaxVisionMB*1024*1024 {
		return ""
	}
	mt := http.DetectContentType(image)
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(image)
}
