package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/gen/ent"
	"github.com/labelcheck/labelcheck/internal/common"
	"github.com/labelcheck/labelcheck/internal/compare"
	"github.com/labelcheck/labelcheck/internal/extraction"
	"github.com/labelcheck/labelcheck/internal/llm"
	"github.com/labelcheck/labelcheck/internal/repository"
	"github.com/labelcheck/labelcheck/internal/status"
)

// Options selects the pipeline variant for one run.
type Options struct {
	// Variant controls field-to-geometry alignment: standard sends the word
	// list and expects index citations; submission_fast classifies values
	// only and recovers geometry with the fuzzy matcher.
	Variant extraction.Variant
	// AutoDetectType runs keyword beverage detection before classification
	// and falls back to the classifier's detected type when undetermined.
	AutoDetectType bool
	// AttachImages adds label images to the classification request.
	AttachImages bool
}

// VerifyStage runs classification, alignment, comparison, and status
// determination for one label, then hands everything to the sink.
type VerifyStage struct {
	Labels   repository.LabelRepository
	Jobs     repository.VerificationJobRepository
	Items    repository.ValidationItemRepository
	Classify llm.FieldClassifier
	Engine   *compare.Engine
	Verify   common.VerifyConfig
	Logger   *slog.Logger
}

func NewVerifyStage(
	labels repository.LabelRepository,
	jobs repository.VerificationJobRepository,
	items repository.ValidationItemRepository,
	classifier llm.FieldClassifier,
	engine *compare.Engine,
	verify common.VerifyConfig,
	logger *slog.Logger,
) *VerifyStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerifyStage{
		Labels:   labels,
		Jobs:     jobs,
		Items:    items,
		Classify: classifier,
		Engine:   engine,
		Verify:   verify,
		Logger:   logger,
	}
}

// Run executes stages 2-4 for a label whose OCR output is already in hand.
func (s *VerifyStage) Run(ctx context.Context, jobID uuid.UUID, label *ent.Label, ocr OCROutput, opts Options) (status.Decision, error) {
	beverageType := constants.BeverageType(label.BeverageType)
	detectExternally := false
	if opts.AutoDetectType && beverageType == constants.Undetermined {
		beverageType = extraction.DetectBeverageType(ocr.FullText)
		detectExternally = beverageType == constants.Undetermined
	}

	req := llm.ClassifyRequest{
		FullText:       ocr.FullText,
		BeverageType:   beverageType,
		ExpectedValues: label.ApplicationValues,
		DetectType:     detectExternally,
	}
	if opts.Variant == extraction.VariantStandard {
		arenaRefs := make([]llm.WordRef, 0, 256)
		idx := 0
		for _, r := range ocr.Results {
			for _, w := range r.Words {
				arenaRefs = append(arenaRefs, llm.WordRef{Index: idx, Text: w.Text})
				idx++
			}
		}
		req.Words = arenaRefs
	}
	if opts.AttachImages {
		for _, raw := range ocr.Images {
			if u := llm.ImageDataURL(raw); u != "" {
				req.ImageDataURLs = append(req.ImageDataURLs, u)
			}
		}
	}

	result, rawJSON, err := s.Classify.ClassifyFields(ctx, req)
	if err != nil {
		_ = s.Jobs.FinishFailure(ctx, jobID, err.Error())
		return status.Decision{}, fmt.Errorf("classify fields: %w", err)
	}
	if err := s.Jobs.FinishClassification(ctx, jobID, rawJSON, "",
		result.Usage.PromptTokens, result.Usage.CompletionTokens); err != nil {
		return status.Decision{}, err
	}

	// External beverage-type fallback when keywords were inconclusive.
	if detectExternally {
		if bt, ok := constants.CanonicalBeverageType(result.BeverageType); ok {
			beverageType = bt
		}
	}

	extracted := extraction.Extract(ocr.Results, result.Fields, s.Logger)

	roles := extraction.ClassifyImageRoles(ocr.Results)
	for i, role := range roles {
		if i < len(ocr.ImageIDs) {
			if err := s.Labels.SetImageRole(ctx, ocr.ImageIDs[i], string(role)); err != nil {
				s.Logger.Warn("pipeline.verify.image_role_persist_failed",
					"image_id", ocr.ImageIDs[i], "err", err)
			}
		}
	}

	items, fieldStatuses := s.compareAll(label.ApplicationValues, extracted)

	decision := status.Determine(status.Input{
		Fields:       fieldStatuses,
		BeverageType: beverageType,
		ContainerML:  label.ContainerMl,
		MinorFields:  s.Verify.MinorFields,
	}, time.Now())

	// A clean verdict only auto-approves when the settings allow it and every
	// extracted field cleared the confidence bar; otherwise a human reviews.
	if decision.Status == constants.LabelStatusApproved && !s.autoApprovable(extracted) {
		decision.Status = constants.LabelStatusPendingReview
		decision.Reasoning += "; queued for review"
	}

	if err := s.Items.CreateAll(ctx, jobID, items); err != nil {
		return decision, err
	}
	if err := s.Labels.SetStatus(ctx, label.ID, decision.Status, decision.CorrectionDeadline, decision.Reasoning); err != nil {
		return decision, err
	}
	if err := s.Jobs.FinishVerified(ctx, jobID); err != nil {
		return decision, err
	}

	s.Logger.Info("pipeline.verify.ok",
		"job_id", jobID, "label_id", label.ID,
		"status", decision.Status,
		"fields", len(items),
		"beverage_type", beverageType)
	return decision, nil
}

// compareAll evaluates every application value against its extracted
// counterpart, in canonical field order. Fields the classifier never returned
// compare as not_found.
func (s *VerifyStage) compareAll(expected map[string]string, extracted []extraction.ExtractedField) ([]repository.ItemInput, map[constants.FieldName]compare.Status) {
	byName := make(map[string]extraction.ExtractedField, len(extracted))
	for _, f := range extracted {
		byName[f.FieldName] = f
	}

	var items []repository.ItemInput
	statuses := make(map[constants.FieldName]compare.Status)
	for _, name := range constants.AllFieldNames() {
		want, ok := expected[name]
		if !ok {
			continue // not part of this application
		}
		field := constants.FieldName(name)

		got, found := byName[name]
		var value *string
		if found {
			value = got.Value
		}

		cmp := s.Engine.Compare(field, want, value)
		statuses[field] = cmp.Status
		items = append(items, repository.ItemInput{
			FieldName:  name,
			Expected:   want,
			Extracted:  value,
			Comparison: cmp,
			Box:        got.BoundingBox,
			ImageIndex: got.ImageIndex,
		})
	}
	return items, statuses
}

func (s *VerifyStage) autoApprovable(extracted []extraction.ExtractedField) bool {
	if !s.Verify.AutoApprove {
		return false
	}
	for _, f := range extracted {
		if f.Value != nil && f.Confidence < s.Verify.AutoApproveThreshold {
			return false
		}
	}
	return true
}
