// Package openai implements llm.FieldClassifier against the chat/completions
// API, with structured JSON output and an optional multimodal variant that
// attaches label images as data URLs.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/internal/llm"
)

// ClassifyFields sends one classification request and validates the response
// against the output schema before decoding it.
func (c *Client) ClassifyFields(ctx context.Context, req llm.ClassifyRequest) (llm.ClassifyResult, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	fieldNames := constants.AllFieldNames()
	withIndices := len(req.Words) > 0

	c.log.Info("llm.classify.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.FullText),
		"beverage_type", req.BeverageType,
		"word_refs", len(req.Words),
		"images", len(req.ImageDataURLs),
	)

	schema := llm.BuildClassifyJSONSchema(fieldNames, withIndices)
	sys := llm.BuildSystemPrompt(req, fieldNames)
	user := llm.BuildUserPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": userContent(user, req.ImageDataURLs)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, httpErr := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if httpErr != nil {
		c.log.Error("llm.classify.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds())
		return llm.ClassifyResult{}, raw, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.classify.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return llm.ClassifyResult{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.classify.no_choices", "req_id", rid, "raw", string(raw))
		return llm.ClassifyResult{}, raw, fmt.Errorf("no choices in openai response")
	}
	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	// Validate strictly first; lenient path sanitizes shape and revalidates.
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if !c.cfg.Lenient {
			c.log.Error("llm.classify.schema_validation_failed",
				"req_id", rid, "error", err, "content", string(rawContent))
			return llm.ClassifyResult{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
		}
		cleaned, repaired, sErr := llm.SanitizeClassifierJSON(rawContent)
		if sErr != nil {
			c.log.Error("llm.classify.sanitize_failed", "req_id", rid, "error", sErr)
			return llm.ClassifyResult{}, rawContent, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("llm.classify.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned))
			return llm.ClassifyResult{}, cleaned, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.log.Warn("llm.classify.lenient_sanitize_applied", "req_id", rid, "repaired", repaired)
		rawContent = cleaned
	}

	var decoded struct {
		Fields       []llm.ClassifiedField `json:"fields"`
		ImageRoles   []string              `json:"image_roles"`
		BeverageType string                `json:"beverage_type"`
	}
	if err := json.Unmarshal(rawContent, &decoded); err != nil {
		c.log.Error("llm.classify.unmarshal_failed", "req_id", rid, "error", err)
		return llm.ClassifyResult{}, rawContent, fmt.Errorf("unmarshal fields: %w", err)
	}

	out := llm.ClassifyResult{
		Fields:       decoded.Fields,
		ImageRoles:   decoded.ImageRoles,
		BeverageType: decoded.BeverageType,
		Usage: llm.TokenUsage{
			PromptTokens:     cc.Usage.PromptTokens,
			CompletionTokens: cc.Usage.CompletionTokens,
			TotalTokens:      cc.Usage.TotalTokens,
		},
	}

	c.log.Info("llm.classify.ok",
		"req_id", rid,
		"fields", len(out.Fields),
		"detected_type", out.BeverageType,
		"total_tokens", out.Usage.TotalTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

// userContent builds either a plain string message or the multimodal content
// array when label images are attached.
func userContent(text string, imageDataURLs []string) any {
	if len(imageDataURLs) == 0 {
		return text + "\n\nReturn ONLY JSON that matches the provided schema."
	}
	parts := []map[string]any{
		{"type": "text", "text": text + "\n\nReturn ONLY JSON that matches the provided schema."},
	}
	for _, u := range imageDataURLs {
		parts = append(parts, map[string]any{
			"type":      "image_url",
			"image_url": map[string]any{"url": u},
		})
	}
	return parts
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
