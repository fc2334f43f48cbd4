package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/gen/ent"
	"github.com/labelcheck/labelcheck/gen/ent/label"
	"github.com/labelcheck/labelcheck/gen/ent/labelimage"
	"github.com/labelcheck/labelcheck/internal/status"
)

type LabelRepository interface {
	Create(ctx context.Context, beverageType constants.BeverageType, containerML int, applicationValues map[string]string) (*ent.Label, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.Label, error)
	ListByStatus(ctx context.Context, s constants.LabelStatus, limit int) ([]*ent.Label, error)
	SetStatus(ctx context.Context, id uuid.UUID, s constants.LabelStatus, deadline *time.Time, reasoning string) error
	AddImage(ctx context.Context, labelID uuid.UUID, position int, sourcePath string, contentHash []byte) (*ent.LabelImage, error)
	ListImages(ctx context.Context, labelID uuid.UUID) ([]*ent.LabelImage, error)
	SetImageRole(ctx context.Context, imageID uuid.UUID, role string) error
}

type labelRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewLabelRepository(entc *ent.Client, log *slog.Logger) LabelRepository {
	return &labelRepo{ent: entc, log: log}
}

func (r *labelRepo) Create(ctx context.Context, beverageType constants.BeverageType, containerML int, applicationValues map[string]string) (*ent.Label, error) {
	l, err := r.ent.Label.
		Create().
		SetBeverageType(string(beverageType)).
		SetContainerMl(containerML).
		SetApplicationValues(applicationValues).
		Save(ctx)
	if err != nil {
		r.log.Error("label create failed", "err", err)
		return nil, err
	}
	r.log.Info("label created", "label_id", l.ID, "beverage_type", beverageType)
	return l, nil
}

// Get loads a label and applies the lazy expiration rule: the effective
// status is recomputed from the stored status plus deadline versus now. When
// the effective status differs, a best-effort asynchronous write-back is
// scheduled so storage eventually converges; correctness does not depend on
// that write running.
func (r *labelRepo) Get(ctx context.Context, id uuid.UUID) (*ent.Label, error) {
	l, err := r.ent.Label.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stored := constants.LabelStatus(l.Status)
	effective := status.Effective(stored, l.CorrectionDeadline, time.Now())
	if effective != stored {
		l.Status = string(effective)
		r.scheduleStatusWriteBack(id, effective)
	}
	return l, nil
}

// scheduleStatusWriteBack persists an expired status transition in the
// background. Fire-and-forget: failures are logged and abandoned.
func (r *labelRepo) scheduleStatusWriteBack(id uuid.UUID, s constants.LabelStatus) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := r.ent.Label.UpdateOneID(id).SetStatus(string(s)).Save(ctx); err != nil {
			r.log.Warn("label status write-back failed", "label_id", id, "status", s, "err", err)
			return
		}
		r.log.Info("label status write-back", "label_id", id, "status", s)
	}()
}

func (r *labelRepo) ListByStatus(ctx context.Context, s constants.LabelStatus, limit int) ([]*ent.Label, error) {
	q := r.ent.Label.
		Query().
		Where(label.StatusEQ(string(s))).
		Order(ent.Asc(label.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.All(ctx)
}

func (r *labelRepo) SetStatus(ctx context.Context, id uuid.UUID, s constants.LabelStatus, deadline *time.Time, reasoning string) error {
	upd := r.ent.Label.
		UpdateOneID(id).
		SetStatus(string(s)).
		SetStatusReasoning(reasoning)
	if deadline != nil {
		upd = upd.SetCorrectionDeadline(*deadline)
	} else {
		upd = upd.ClearCorrectionDeadline()
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("label status update failed", "label_id", id, "status", s, "err", err)
		return err
	}
	r.log.Info("label status updated", "label_id", id, "status", s, "has_deadline", deadline != nil)
	return nil
}

func (r *labelRepo) AddImage(ctx context.Context, labelID uuid.UUID, position int, sourcePath string, contentHash []byte) (*ent.LabelImage, error) {
	img, err := r.ent.LabelImage.
		Create().
		SetLabelID(labelID).
		SetPosition(position).
		SetSourcePath(sourcePath).
		SetContentHash(contentHash).
		Save(ctx)
	if err != nil {
		r.log.Error("label image create failed", "label_id", labelID, "err", err)
		return nil, err
	}
	return img, nil
}

func (r *labelRepo) ListImages(ctx context.Context, labelID uuid.UUID) ([]*ent.LabelImage, error) {
	return r.ent.LabelImage.
		Query().
		Where(labelimage.LabelIDEQ(labelID)).
		Order(ent.Asc(labelimage.FieldPosition)).
		All(ctx)
}

func (r *labelRepo) SetImageRole(ctx context.Context, imageID uuid.UUID, role string) error {
	_, err := r.ent.LabelImage.UpdateOneID(imageID).SetRole(role).Save(ctx)
	return err
}
