// runverify is a diagnostic: it runs OCR, classification, alignment, and
// comparison for label images on disk and prints the verdict as JSON, without
// touching the database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/internal/common"
	"github.com/labelcheck/labelcheck/internal/compare"
	"github.com/labelcheck/labelcheck/internal/extraction"
	"github.com/labelcheck/labelcheck/internal/llm"
	"github.com/labelcheck/labelcheck/internal/llm/openai"
	"github.com/labelcheck/labelcheck/internal/status"
	"github.com/labelcheck/labelcheck/internal/vision"
	"github.com/labelcheck/labelcheck/internal/vision/azure"
)

type fieldReport struct {
	FieldName  string                    `json:"field_name"`
	Expected   string                    `json:"expected"`
	Extracted  *string                   `json:"extracted"`
	Comparison compare.Comparison        `json:"comparison"`
	Location   extraction.ExtractedField `json:"location"`
}

func main() {
	var (
		beverage    = flag.String("beverage", "", "beverage type (wine, distilled_spirits, malt_beverage)")
		containerML = flag.Int("container-ml", 750, "container size in mL")
		expectedArg = flag.String("expected", "", "expected values as field=value pairs, comma separated")
	)
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: runverify [flags] image...")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	expected := map[string]string{}
	for _, pair := range strings.Split(*expectedArg, ",") {
		if k, v, ok := strings.Cut(strings.TrimSpace(pair), "="); ok {
			expected[k] = v
		}
	}

	bt := constants.Undetermined
	if *beverage != "" {
		var ok bool
		if bt, ok = constants.CanonicalBeverageType(*beverage); !ok {
			fmt.Fprintf(os.Stderr, "unknown beverage type %q\n", *beverage)
			os.Exit(2)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ocrClient := azure.NewClient(azure.Config{
		Endpoint: cfg.Vision.Endpoint,
		APIKey:   cfg.Vision.APIKey,
		Timeout:  cfg.Vision.Timeout,
	}, logger)

	results := make([]*vision.OcrResult, flag.NArg())
	var texts []string
	for i, path := range flag.Args() {
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
			os.Exit(1)
		}
		res, err := ocrClient.Read(ctx, raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ocr %s: %v\n", path, err)
			os.Exit(1)
		}
		results[i] = res
		texts = append(texts, res.FullText)
	}
	fullText := strings.Join(texts, "\n\n")

	if bt == constants.Undetermined {
		bt = extraction.DetectBeverageType(fullText)
	}

	classifier := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Lenient:     cfg.LLM.Lenient,
	}, logger)

	result, _, err := classifier.ClassifyFields(ctx, llm.ClassifyRequest{
		FullText:       fullText,
		BeverageType:   bt,
		ExpectedValues: expected,
		DetectType:     bt == constants.Undetermined,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "classify: %v\n", err)
		os.Exit(1)
	}
	if bt == constants.Undetermined {
		if canonical, ok := constants.CanonicalBeverageType(result.BeverageType); ok {
			bt = canonical
		}
	}

	extracted := extraction.Extract(results, result.Fields, logger)
	byName := make(map[string]extraction.ExtractedField, len(extracted))
	for _, f := range extracted {
		byName[f.FieldName] = f
	}

	engine := compare.NewEngine(compare.Config{})
	var reports []fieldReport
	statuses := map[constants.FieldName]compare.Status{}
	for _, name := range constants.AllFieldNames() {
		want, ok := expected[name]
		if !ok {
			continue
		}
		got := byName[name]
		cmp := engine.Compare(constants.FieldName(name), want, got.Value)
		statuses[constants.FieldName(name)] = cmp.Status
		reports = append(reports, fieldReport{
			FieldName:  name,
			Expected:   want,
			Extracted:  got.Value,
			Comparison: cmp,
			Location:   got,
		})
	}

	decision := status.Determine(status.Input{
		Fields:       statuses,
		BeverageType: bt,
		ContainerML:  *containerML,
	}, time.Now())

	out := map[string]any{
		"beverage_type": bt,
		"image_roles":   extraction.ClassifyImageRoles(results),
		"fields":        reports,
		"status":        decision.Status,
		"reasoning":     decision.Reasoning,
	}
	if decision.CorrectionDeadline != nil {
		out["correction_deadline"] = decision.CorrectionDeadline.Format(time.RFC3339)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}
