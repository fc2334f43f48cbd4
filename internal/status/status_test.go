package status

import (
	"strings"
	"testing"
	"time"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/internal/compare"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func allMatch() map[constants.FieldName]compare.Status {
	fields := make(map[constants.FieldName]compare.Status)
	for _, name := range constants.AllFieldNames() {
		fields[constants.FieldName(name)] = compare.StatusMatch
	}
	return fields
}

func TestDetermineApproved(t *testing.T) {
	d := Determine(Input{
		Fields:       allMatch(),
		BeverageType: constants.Wine,
		ContainerML:  750,
	}, now)
	if d.Status != constants.LabelStatusApproved {
		t.Errorf("Status = %s, want approved (%s)", d.Status, d.Reasoning)
	}
	if d.CorrectionDeadline != nil {
		t.Errorf("CorrectionDeadline = %v, want nil", d.CorrectionDeadline)
	}
}

func TestDetermineIllegalFill(t *testing.T) {
	// 720 mL is not a standard of fill for spirits; the rule fires even when
	// every field matches.
	d := Determine(Input{
		Fields:       allMatch(),
		BeverageType: constants.DistilledSpirits,
		ContainerML:  720,
	}, now)
	if d.Status != constants.LabelStatusRejected {
		t.Errorf("Status = %s, want rejected (%s)", d.Status, d.Reasoning)
	}
	if !strings.Contains(d.Reasoning, "720") {
		t.Errorf("Reasoning = %q, want the offending size named", d.Reasoning)
	}

	// The same size is fine for malt beverages, which have no fill standards.
	d = Determine(Input{
		Fields:       allMatch(),
		BeverageType: constants.MaltBeverage,
		ContainerML:  720,
	}, now)
	if d.Status != constants.LabelStatusApproved {
		t.Errorf("malt Status = %s, want approved", d.Status)
	}
}

func TestDetermineWarningMissing(t *testing.T) {
	fields := allMatch()
	fields[constants.FieldHealthWarning] = compare.StatusNotFound
	// Another discrepancy present too; the warning rule outranks it.
	fields[constants.FieldBrandName] = compare.StatusMismatch

	d := Determine(Input{
		Fields:       fields,
		BeverageType: constants.Wine,
		ContainerML:  750,
	}, now)
	if d.Status != constants.LabelStatusRejected {
		t.Errorf("Status = %s, want rejected (%s)", d.Status, d.Reasoning)
	}
}

func TestDetermineNeedsCorrection(t *testing.T) {
	fields := allMatch()
	fields[constants.FieldBrandName] = compare.StatusMismatch
	// A minor discrepancy is also present; the non-minor one takes priority.
	fields[constants.FieldVintage] = compare.StatusNeedsCorrection

	d := Determine(Input{
		Fields:       fields,
		BeverageType: constants.Wine,
		ContainerML:  750,
	}, now)
	if d.Status != constants.LabelStatusNeedsCorrection {
		t.Fatalf("Status = %s, want needs_correction (%s)", d.Status, d.Reasoning)
	}
	if d.CorrectionDeadline == nil {
		t.Fatal("CorrectionDeadline = nil, want 30 days out")
	}
	if want := now.Add(CorrectionWindow); !d.CorrectionDeadline.Equal(want) {
		t.Errorf("CorrectionDeadline = %v, want %v", d.CorrectionDeadline, want)
	}
}

func TestDetermineMinorFieldNotFoundIgnoredByHardRule(t *testing.T) {
	// not_found on a minor field must not trigger the 30-day rule.
	fields := allMatch()
	fields[constants.FieldFancifulName] = compare.StatusNotFound

	d := Determine(Input{
		Fields:       fields,
		BeverageType: constants.Wine,
		ContainerML:  750,
	}, now)
	if d.Status != constants.LabelStatusApproved {
		t.Errorf("Status = %s, want approved (%s)", d.Status, d.Reasoning)
	}
}

func TestDetermineConditionallyApproved(t *testing.T) {
	fields := allMatch()
	fields[constants.FieldVintage] = compare.StatusNeedsCorrection

	d := Determine(Input{
		Fields:       fields,
		BeverageType: constants.Wine,
		ContainerML:  750,
	}, now)
	if d.Status != constants.LabelStatusConditionallyApproved {
		t.Fatalf("Status = %s, want conditionally_approved (%s)", d.Status, d.Reasoning)
	}
	if d.CorrectionDeadline == nil {
		t.Fatal("CorrectionDeadline = nil, want 7 days out")
	}
	if want := now.Add(MinorCorrectionWindow); !d.CorrectionDeadline.Equal(want) {
		t.Errorf("CorrectionDeadline = %v, want %v", d.CorrectionDeadline, want)
	}
}

func TestDetermineCustomMinorFields(t *testing.T) {
	fields := allMatch()
	fields[constants.FieldVintage] = compare.StatusMismatch

	d := Determine(Input{
		Fields:       fields,
		BeverageType: constants.Wine,
		ContainerML:  750,
		MinorFields:  map[constants.FieldName]struct{}{constants.FieldClassType: {}},
	}, now)
	// Vintage is not minor under the custom set, so its mismatch is hard.
	if d.Status != constants.LabelStatusNeedsCorrection {
		t.Errorf("Status = %s, want needs_correction (%s)", d.Status, d.Reasoning)
	}
}

func TestDetermineReproducible(t *testing.T) {
	fields := allMatch()
	fields[constants.FieldBrandName] = compare.StatusMismatch
	fields[constants.FieldNetContents] = compare.StatusMismatch

	in := Input{Fields: fields, BeverageType: constants.Wine, ContainerML: 750}
	first := Determine(in, now)
	for i := 0; i < 20; i++ {
		if d := Determine(in, now); d.Reasoning != first.Reasoning {
			t.Fatalf("Reasoning varies across runs: %q vs %q", d.Reasoning, first.Reasoning)
		}
	}
}

func TestEffective(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		stored   constants.LabelStatus
		deadline *time.Time
		want     constants.LabelStatus
	}{
		{"no deadline", constants.LabelStatusNeedsCorrection, nil, constants.LabelStatusNeedsCorrection},
		{"future deadline", constants.LabelStatusNeedsCorrection, &tomorrow, constants.LabelStatusNeedsCorrection},
		{"expired needs_correction", constants.LabelStatusNeedsCorrection, &yesterday, constants.LabelStatusRejected},
		{"expired conditionally_approved", constants.LabelStatusConditionallyApproved, &yesterday, constants.LabelStatusNeedsCorrection},
		{"expired deadline on approved is inert", constants.LabelStatusApproved, &yesterday, constants.LabelStatusApproved},
		{"deadline equal to now has not expired", constants.LabelStatusNeedsCorrection, &now, constants.LabelStatusNeedsCorrection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Effective(tt.stored, tt.deadline, now); got != tt.want {
				t.Errorf("Effective() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEffectiveIsPure(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	for i := 0; i < 5; i++ {
		if got := Effective(constants.LabelStatusConditionallyApproved, &yesterday, now); got != constants.LabelStatusNeedsCorrection {
			t.Fatalf("call %d: Effective() = %s, want needs_correction", i, got)
		}
	}
}
