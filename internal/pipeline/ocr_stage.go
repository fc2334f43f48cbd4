package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/labelcheck/labelcheck/internal/repository"
	"github.com/labelcheck/labelcheck/internal/vision"
)

// OCRStage reads every image on a label through the OCR collaborator. Images
// run concurrently (fan-out/fan-in, bounded by the image count — typically
// 1-4 per label); results keep submission order.
type OCRStage struct {
	Labels repository.LabelRepository
	Jobs   repository.VerificationJobRepository
	OCR    vision.Client
	Logger *slog.Logger
}

func NewOCRStage(labels repository.LabelRepository, jobs repository.VerificationJobRepository, ocr vision.Client, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{Labels: labels, Jobs: jobs, OCR: ocr, Logger: logger}
}

// OCROutput is everything later stages need from stage 1.
type OCROutput struct {
	Results  []*vision.OcrResult // ordered by image position
	Images   [][]byte            // raw bytes, same order (for the multimodal variant)
	ImageIDs []uuid.UUID
	FullText string
}

// Run loads a label's images, OCRs them concurrently, and persists the
// combined text under the job.
func (s *OCRStage) Run(ctx context.Context, jobID, labelID uuid.UUID) (OCROutput, error) {
	images, err := s.Labels.ListImages(ctx, labelID)
	if err != nil {
		return OCROutput{}, fmt.Errorf("list label images: %w", err)
	}
	if len(images) == 0 {
		return OCROutput{}, fmt.Errorf("label %s has no images", labelID)
	}

	out := OCROutput{
		Results:  make([]*vision.OcrResult, len(images)),
		Images:   make([][]byte, len(images)),
		ImageIDs: make([]uuid.UUID, len(images)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, img := range images {
		out.ImageIDs[i] = img.ID
		g.Go(func() error {
			raw, err := os.ReadFile(img.SourcePath)
			if err != nil {
				return fmt.Errorf("read image %d: %w", i, err)
			}
			res, err := s.OCR.Read(gctx, raw)
			if err != nil {
				return fmt.Errorf("ocr image %d: %w", i, err)
			}
			out.Images[i] = raw
			out.Results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return OCROutput{}, err
	}

	var texts []string
	for _, r := range out.Results {
		texts = append(texts, r.FullText)
	}
	out.FullText = strings.Join(texts, "\n\n")

	if err := s.Jobs.FinishOCR(ctx, jobID, out.FullText); err != nil {
		return OCROutput{}, err
	}

	s.Logger.Info("pipeline.ocr.ok",
		"job_id", jobID, "label_id", labelID,
		"images", len(images), "ocr_bytes", len(out.FullText))
	return out, nil
}
