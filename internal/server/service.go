// Package server exposes the verification engine over gRPC. Thin shell: all
// semantics live in the pipeline and engine packages.
package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/gen/ent"
	labelcheckv1 "github.com/labelcheck/labelcheck/gen/labelcheck/v1"
	"github.com/labelcheck/labelcheck/internal/common"
	"github.com/labelcheck/labelcheck/internal/export"
	"github.com/labelcheck/labelcheck/internal/extraction"
	"github.com/labelcheck/labelcheck/internal/pipeline"
	"github.com/labelcheck/labelcheck/internal/repository"
)

type VerificationService struct {
	labelcheckv1.UnimplementedLabelVerificationServiceServer

	labels    repository.LabelRepository
	items     repository.ValidationItemRepository
	processor *pipeline.Processor
	exporter  *export.Service
	logger    *slog.Logger
}

func NewVerificationService(
	labels repository.LabelRepository,
	items repository.ValidationItemRepository,
	processor *pipeline.Processor,
	exporter *export.Service,
	logger *slog.Logger,
) *VerificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerificationService{
		labels:    labels,
		items:     items,
		processor: processor,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *VerificationService) CreateLabel(ctx context.Context, req *labelcheckv1.CreateLabelRequest) (*labelcheckv1.CreateLabelResponse, error) {
	if len(req.GetImagePaths()) == 0 {
		return nil, common.InvalidArgumentError("at least one image path is required")
	}

	bt := constants.Undetermined
	if req.GetBeverageType() != "" {
		canonical, ok := constants.CanonicalBeverageType(req.GetBeverageType())
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown beverage type %q", req.GetBeverageType())
		}
		bt = canonical
	}

	label, err := s.labels.Create(ctx, bt, int(req.GetContainerMl()), req.GetApplicationValues())
	if err != nil {
		s.logger.Error("create label failed", "err", err)
		return nil, common.InternalError("create label failed")
	}
	for i, path := range req.GetImagePaths() {
		if _, err := s.labels.AddImage(ctx, label.ID, i, path, nil); err != nil {
			s.logger.Error("add label image failed", "label_id", label.ID, "err", err)
			return nil, common.InternalError("add label image failed")
		}
	}

	return &labelcheckv1.CreateLabelResponse{Label: toProtoLabel(label)}, nil
}

func (s *VerificationService) GetLabel(ctx context.Context, req *labelcheckv1.GetLabelRequest) (*labelcheckv1.GetLabelResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("invalid label id")
	}

	label, err := s.labels.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("label not found")
		}
		s.logger.Error("get label failed", "label_id", id, "err", err)
		return nil, common.InternalError("get label failed")
	}
	return &labelcheckv1.GetLabelResponse{Label: toProtoLabel(label)}, nil
}

func (s *VerificationService) VerifyLabel(ctx context.Context, req *labelcheckv1.VerifyLabelRequest) (*labelcheckv1.VerifyLabelResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("invalid label id")
	}

	opts := pipeline.Options{
		Variant:        extraction.VariantStandard,
		AutoDetectType: req.GetAutoDetectType(),
		AttachImages:   req.GetAttachImages(),
	}
	if req.GetVariant() == string(extraction.VariantSubmissionFast) {
		opts.Variant = extraction.VariantSubmissionFast
	}

	jobID, _, err := s.processor.ProcessLabel(ctx, id, opts)
	if err != nil {
		if errors.Is(err, common.ErrExternalTimeout) {
			return nil, common.DeadlineExceededError("verification timed out; label reset for retry")
		}
		s.logger.Error("verify label failed", "label_id", id, "err", err)
		return nil, common.InternalError("verify label failed")
	}

	label, err := s.labels.Get(ctx, id)
	if err != nil {
		s.logger.Error("reload label failed", "label_id", id, "err", err)
		return nil, common.InternalError("verify label failed")
	}
	return &labelcheckv1.VerifyLabelResponse{
		JobId: jobID.String(),
		Label: toProtoLabel(label),
	}, nil
}

func (s *VerificationService) ListValidationItems(ctx context.Context, req *labelcheckv1.ListValidationItemsRequest) (*labelcheckv1.ListValidationItemsResponse, error) {
	jobID, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, common.InvalidArgumentError("invalid job id")
	}

	items, err := s.items.ListByJob(ctx, jobID)
	if err != nil {
		s.logger.Error("list validation items failed", "job_id", jobID, "err", err)
		return nil, common.InternalError("list validation items failed")
	}

	out := make([]*labelcheckv1.ValidationItem, 0, len(items))
	for _, it := range items {
		out = append(out, toProtoItem(it))
	}
	return &labelcheckv1.ListValidationItemsResponse{Items: out}, nil
}

func (s *VerificationService) ExportValidation(ctx context.Context, req *labelcheckv1.ExportValidationRequest) (*labelcheckv1.ExportValidationResponse, error) {
	jobID, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, common.InvalidArgumentError("invalid job id")
	}

	xlsx, err := s.exporter.ExportValidationXLSX(ctx, jobID)
	if err != nil {
		s.logger.Error("export validation failed", "job_id", jobID, "err", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &labelcheckv1.ExportValidationResponse{Xlsx: xlsx}, nil
}

func toProtoLabel(l *ent.Label) *labelcheckv1.Label {
	out := &labelcheckv1.Label{
		Id:                l.ID.String(),
		Status:            l.Status,
		BeverageType:      l.BeverageType,
		ContainerMl:       int32(l.ContainerMl),
		ApplicationValues: l.ApplicationValues,
		CreatedAt:         timestamppb.New(l.CreatedAt),
		UpdatedAt:         timestamppb.New(l.UpdatedAt),
	}
	if l.CorrectionDeadline != nil {
		out.CorrectionDeadline = timestamppb.New(*l.CorrectionDeadline)
	}
	if l.StatusReasoning != nil {
		out.StatusReasoning = *l.StatusReasoning
	}
	return out
}

func toProtoItem(it *ent.ValidationItem) *labelcheckv1.ValidationItem {
	out := &labelcheckv1.ValidationItem{
		FieldName:            it.FieldName,
		ExpectedValue:        it.ExpectedValue,
		ExtractedValue:       it.ExtractedValue,
		ComparisonStatus:     it.ComparisonStatus,
		ComparisonConfidence: int32(it.ComparisonConfidence),
		ComparisonReasoning:  it.ComparisonReasoning,
		ImageIndex:           int32(it.ImageIndex),
	}
	if it.BoxX != nil && it.BoxY != nil && it.BoxWidth != nil && it.BoxHeight != nil {
		box := &labelcheckv1.BoundingBox{
			X:      *it.BoxX,
			Y:      *it.BoxY,
			Width:  *it.BoxWidth,
			Height: *it.BoxHeight,
		}
		if it.BoxAngle != nil {
			box.Angle = int32(*it.BoxAngle)
		}
		out.BoundingBox = box
	}
	return out
}
