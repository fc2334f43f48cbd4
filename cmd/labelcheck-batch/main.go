package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/internal/common"
	"github.com/labelcheck/labelcheck/internal/compare"
	"github.com/labelcheck/labelcheck/internal/extraction"
	"github.com/labelcheck/labelcheck/internal/llm/openai"
	"github.com/labelcheck/labelcheck/internal/pipeline"
	"github.com/labelcheck/labelcheck/internal/repository"
	"github.com/labelcheck/labelcheck/internal/vision/azure"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		limit      = flag.Int("limit", 0, "max pending labels to verify (0 = all)")
		variant    = flag.String("variant", "standard", "pipeline variant: standard or submission_fast")
		autoDetect = flag.Bool("auto-detect", false, "detect beverage type from label text")
		attach     = flag.Bool("attach-images", false, "attach label images to the classification request")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		printError("Error: DB_URL is required\n")
		os.Exit(1)
	}

	opts := pipeline.Options{
		Variant:        extraction.VariantStandard,
		AutoDetectType: *autoDetect,
		AttachImages:   *attach,
	}
	switch *variant {
	case string(extraction.VariantStandard):
	case string(extraction.VariantSubmissionFast):
		opts.Variant = extraction.VariantSubmissionFast
	default:
		printError("Error: unknown variant %q\n", *variant)
		os.Exit(1)
	}

	ctx := context.Background()
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		printError("Error: open db: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = entc.Close()
		if pool != nil {
			pool.Close()
		}
	}()

	labels := repository.NewLabelRepository(entc, logger)
	jobs := repository.NewVerificationJobRepository(entc, logger)
	items := repository.NewValidationItemRepository(entc, logger)

	ocrClient := azure.NewClient(azure.Config{
		Endpoint: cfg.Vision.Endpoint,
		APIKey:   cfg.Vision.APIKey,
		Timeout:  cfg.Vision.Timeout,
	}, logger)
	classifier := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Lenient:     cfg.LLM.Lenient,
	}, logger)

	engine := compare.NewEngine(compare.Config{MinorFields: cfg.Verify.MinorFields})
	ocrStage := pipeline.NewOCRStage(labels, jobs, ocrClient, logger)
	verifyStage := pipeline.NewVerifyStage(labels, jobs, items, classifier, engine, cfg.Verify, logger)
	processor := pipeline.NewProcessor(logger, labels, jobs, ocrStage, verifyStage, cfg.Verify.PipelineTimeout)

	pending, err := labels.ListByStatus(ctx, constants.LabelStatusPending, *limit)
	if err != nil {
		printError("Error: list pending labels: %v\n", err)
		os.Exit(1)
	}
	if len(pending) == 0 {
		fmt.Println("no pending labels")
		return
	}

	ids := make([]uuid.UUID, len(pending))
	for i, l := range pending {
		ids[i] = l.ID
	}

	start := time.Now()
	results := processor.ProcessBatch(ctx, ids, opts, cfg.Verify.BatchConcurrency)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			printError("label %s: %v\n", r.LabelID, r.Err)
			continue
		}
		fmt.Printf("label %s -> %s (job %s)\n", r.LabelID, r.Decision.Status, r.JobID)
	}
	fmt.Printf("verified %d labels (%d failed) in %s\n", len(results)-failed, failed, time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}
