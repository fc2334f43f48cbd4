package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/internal/common"
	"github.com/labelcheck/labelcheck/internal/repository"
	"github.com/labelcheck/labelcheck/internal/status"
)

// Processor coordinates OCR then classification/verification for one label.
type Processor struct {
	Logger  *slog.Logger
	Labels  repository.LabelRepository
	Jobs    repository.VerificationJobRepository
	OCR     *OCRStage
	Verify  *VerifyStage
	Timeout time.Duration // bounds the whole external-call chain per label
}

func NewProcessor(logger *slog.Logger, labels repository.LabelRepository, jobs repository.VerificationJobRepository, ocr *OCRStage, verify *VerifyStage, timeout time.Duration) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Processor{Logger: logger, Labels: labels, Jobs: jobs, OCR: ocr, Verify: verify, Timeout: timeout}
}

// ProcessLabel runs the full pipeline for one label. On timeout of the
// external OCR/classification chain it returns common.ErrExternalTimeout and
// schedules a best-effort reset of the label back to pending so it never
// sticks in processing; the timed-out external call may still complete in the
// background with no further effect.
func (p *Processor) ProcessLabel(ctx context.Context, labelID uuid.UUID, opts Options) (uuid.UUID, status.Decision, error) {
	label, err := p.Labels.Get(ctx, labelID)
	if err != nil {
		return uuid.Nil, status.Decision{}, fmt.Errorf("load label: %w", err)
	}

	if err := p.Labels.SetStatus(ctx, labelID, constants.LabelStatusProcessing, nil, "verification in progress"); err != nil {
		return uuid.Nil, status.Decision{}, err
	}

	job, err := p.Jobs.Start(ctx, labelID, string(opts.Variant))
	if err != nil {
		return uuid.Nil, status.Decision{}, err
	}

	runCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	ocrOut, err := p.OCR.Run(runCtx, job.ID, labelID)
	if err != nil {
		return job.ID, status.Decision{}, p.failed(runCtx, job.ID, labelID, "ocr", err)
	}
	p.Logger.Info("processor.ocr.ok",
		"label_id", labelID, "job_id", job.ID,
		"images", len(ocrOut.Results), "ocr_bytes", len(ocrOut.FullText))

	decision, err := p.Verify.Run(runCtx, job.ID, label, ocrOut, opts)
	if err != nil {
		return job.ID, status.Decision{}, p.failed(runCtx, job.ID, labelID, "verify", err)
	}
	p.Logger.Info("processor.verify.ok", "label_id", labelID, "job_id", job.ID, "status", decision.Status)
	return job.ID, decision, nil
}

// failed classifies the error, marks the job failed, and resets the label.
// Timeouts become the named recoverable condition; no partial extraction
// state is salvaged either way.
func (p *Processor) failed(ctx context.Context, jobID, labelID uuid.UUID, stage string, err error) error {
	timedOut := errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)

	p.Logger.Error("processor."+stage+".failed",
		"label_id", labelID, "job_id", jobID, "err", err, "timed_out", timedOut)

	p.resetToPending(jobID, labelID, err.Error())

	if timedOut {
		return fmt.Errorf("%s: %w", stage, common.ErrExternalTimeout)
	}
	return err
}

// resetToPending marks the job failed and moves the label back to a
// retryable status. Fire-and-forget on a fresh context: the run context may
// already be dead, and the label must not stay in processing either way.
func (p *Processor) resetToPending(jobID, labelID uuid.UUID, message string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Jobs.FinishFailure(ctx, jobID, message); err != nil {
			p.Logger.Warn("processor.reset.job_failed", "job_id", jobID, "err", err)
		}
		if err := p.Labels.SetStatus(ctx, labelID, constants.LabelStatusPending, nil, "reset after failure: "+message); err != nil {
			p.Logger.Warn("processor.reset.label_failed", "label_id", labelID, "err", err)
		}
	}()
}
