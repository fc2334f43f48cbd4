package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/gen/ent"
)

type VerificationJobRepository interface {
	Start(ctx context.Context, labelID uuid.UUID, variant string) (*ent.VerificationJob, error)
	FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string) error
	FinishClassification(ctx context.Context, jobID uuid.UUID, classifiedJSON []byte, modelName string, promptTokens, completionTokens int) error
	FinishVerified(ctx context.Context, jobID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type verificationJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewVerificationJobRepository(entc *ent.Client, log *slog.Logger) VerificationJobRepository {
	return &verificationJobRepo{ent: entc, log: log}
}

func (r *verificationJobRepo) Start(ctx context.Context, labelID uuid.UUID, variant string) (*ent.VerificationJob, error) {
	job, err := r.ent.VerificationJob.
		Create().
		SetLabelID(labelID).
		SetStatus(string(constants.JobStatusRunning)).
		SetPipelineVariant(variant).
		Save(ctx)
	if err != nil {
		r.log.Error("verification_job start failed", "label_id", labelID, "err", err)
		return nil, err
	}
	r.log.Info("verification_job started", "job_id", job.ID, "label_id", labelID, "variant", variant)
	return job, nil
}

func (r *verificationJobRepo) FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string) error {
	_, err := r.ent.VerificationJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("verification_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("verification_job finished OCR", "job_id", jobID, "ocr_bytes", len(ocrText))
	return nil
}

func (r *verificationJobRepo) FinishClassification(ctx context.Context, jobID uuid.UUID, classifiedJSON []byte, modelName string, promptTokens, completionTokens int) error {
	_, err := r.ent.VerificationJob.
		UpdateOneID(jobID).
		SetClassifiedJSON(json.RawMessage(classifiedJSON)).
		SetModelName(modelName).
		SetPromptTokens(promptTokens).
		SetCompletionTokens(completionTokens).
		SetStatus(string(constants.JobStatusClassified)).
		Save(ctx)
	if err != nil {
		r.log.Error("verification_job finish(CLASSIFIED) failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *verificationJobRepo) FinishVerified(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.VerificationJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusVerified)).
		Save(ctx)
	if err != nil {
		r.log.Error("verification_job finish(VERIFIED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("verification_job finished", "job_id", jobID)
	return nil
}

func (r *verificationJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.VerificationJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("verification_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("verification_job failed", "job_id", jobID, "error", message)
	return nil
}
