package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/labelcheck/labelcheck/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// validation-result exports.
type Service struct {
	items  repository.ValidationItemRepository
	logger *slog.Logger
}

func NewService(items repository.ValidationItemRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{items: items, logger: logger}
}

// ExportValidationXLSX returns an XLSX workbook (as bytes) with one row per
// validation item of the given verification job, in evaluation order.
func (s *Service) ExportValidationXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	start := time.Now()

	items, err := s.items.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("query validation items: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Validation"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Field",
		"Expected (Application)",
		"Extracted (Label)",
		"Verdict",
		"Confidence",
		"Reasoning",
		"Image",
		"Box (x, y, w, h)",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, it := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, it.FieldName)
		write(2, it.ExpectedValue)
		if it.ExtractedValue != nil {
			write(3, *it.ExtractedValue)
		} else {
			write(3, "-")
		}
		write(4, it.ComparisonStatus)
		write(5, it.ComparisonConfidence)
		write(6, it.ComparisonReasoning)
		write(7, it.ImageIndex)
		if it.BoxX != nil && it.BoxY != nil && it.BoxWidth != nil && it.BoxHeight != nil {
			write(8, fmt.Sprintf("%.3f, %.3f, %.3f, %.3f", *it.BoxX, *it.BoxY, *it.BoxWidth, *it.BoxHeight))
		} else {
			write(8, "")
		}
		row++
	}

	out, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.validation.ok",
		"job_id", jobID, "rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds())
	return out.Bytes(), nil
}
