// Package azure adapts the Azure Image Analysis read API to vision.Client.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/labelcheck/labelcheck/internal/geometry"
	"github.com/labelcheck/labelcheck/internal/vision"
)

const analyzePath = "/computervision/imageanalysis:analyze?api-version=2024-02-01&features=read"

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// analyzeResponse mirrors the subset of the Image Analysis payload we consume.
type analyzeResponse struct {
	Metadata struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"metadata"`
	ReadResult struct {
		Blocks []struct {
			Lines []struct {
				Text  string `json:"text"`
				Words []struct {
					Text            string  `json:"text"`
					BoundingPolygon []point `json:"boundingPolygon"`
					Confidence      float64 `json:"confidence"`
				} `json:"words"`
			} `json:"lines"`
		} `json:"blocks"`
	} `json:"readResult"`
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Read submits image bytes and decodes the word polygons.
func (c *Client) Read(ctx context.Context, image []byte) (*vision.OcrResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("vision.read.start", "req_id", rid, "image_bytes", len(image))

	url := strings.TrimRight(c.cfg.Endpoint, "/") + analyzePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("vision.read.send_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("vision.read.body_close_error", "req_id", rid, "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		c.log.Error("vision.read.http_error", "req_id", rid,
			"status", resp.StatusCode, "bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("vision read: non-2xx status: %d", resp.StatusCode)
	}

	var ar analyzeResponse
	if err := json.Unmarshal(raw, &ar); err != nil {
		c.log.Error("vision.read.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, fmt.Errorf("decode vision response: %w", err)
	}

	out := &vision.OcrResult{
		ImageWidth:  ar.Metadata.Width,
		ImageHeight: ar.Metadata.Height,
	}
	var lines []string
	for _, block := range ar.ReadResult.Blocks {
		for _, line := range block.Lines {
			lines = append(lines, line.Text)
			for _, w := range line.Words {
				ow := vision.OcrWord{Text: w.Text, Confidence: w.Confidence}
				for i := 0; i < len(w.BoundingPolygon) && i < 4; i++ {
					ow.Polygon[i] = geometry.Vertex{X: w.BoundingPolygon[i].X, Y: w.BoundingPolygon[i].Y}
				}
				out.Words = append(out.Words, ow)
			}
		}
	}
	out.FullText = strings.Join(lines, "\n")

	c.log.Info("vision.read.ok", "req_id", rid,
		"words", len(out.Words),
		"image_width", out.ImageWidth, "image_height", out.ImageHeight,
		"elapsed_ms", time.Since(start).Milliseconds())
	return out, nil
}
