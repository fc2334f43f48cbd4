package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/labelcheck/labelcheck/gen/ent"
	"github.com/labelcheck/labelcheck/internal/repository"
)

type fakeItems struct {
	items []*ent.ValidationItem
	err   error
}

func (f *fakeItems) CreateAll(ctx context.Context, jobID uuid.UUID, items []repository.ItemInput) error {
	return errors.New("not supported")
}

func (f *fakeItems) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.ValidationItem, error) {
	return f.items, f.err
}

func floatptr(v float64) *float64 { return &v }
func intptr(v int) *int           { return &v }
func strptr(s string) *string     { return &s }

func TestExportValidationXLSX(t *testing.T) {
	items := []*ent.ValidationItem{
		{
			FieldName:            "brand_name",
			ExpectedValue:        "Old Tavern",
			ExtractedValue:       strptr("OLD TAVERN"),
			ComparisonStatus:     "match",
			ComparisonConfidence: 100,
			ComparisonReasoning:  "match after normalization",
			ImageIndex:           0,
			BoxX:                 floatptr(0.1),
			BoxY:                 floatptr(0.2),
			BoxWidth:             floatptr(0.3),
			BoxHeight:            floatptr(0.05),
			BoxAngle:             intptr(0),
		},
		{
			FieldName:            "vintage",
			ExpectedValue:        "2019",
			ComparisonStatus:     "not_found",
			ComparisonConfidence: 0,
			ComparisonReasoning:  "vintage not found on label",
		},
	}
	svc := NewService(&fakeItems{items: items}, nil)

	out, err := svc.ExportValidationXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportValidationXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Validation")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2 items", len(rows))
	}
	if rows[0][0] != "Field" {
		t.Errorf("header[0] = %q, want Field", rows[0][0])
	}
	if rows[1][0] != "brand_name" || rows[1][3] != "match" {
		t.Errorf("row 1 = %v, want brand_name match", rows[1])
	}
	if rows[1][7] != "0.100, 0.200, 0.300, 0.050" {
		t.Errorf("box cell = %q", rows[1][7])
	}
	if rows[2][2] != "-" {
		t.Errorf("missing extracted value cell = %q, want placeholder", rows[2][2])
	}
}

func TestExportValidationXLSXQueryError(t *testing.T) {
	svc := NewService(&fakeItems{err: errors.New("db down")}, nil)
	if _, err := svc.ExportValidationXLSX(context.Background(), uuid.New()); err == nil {
		t.Fatal("want error when the item query fails")
	}
}
