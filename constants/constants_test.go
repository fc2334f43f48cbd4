package constants

import "testing"

func TestIsLegalFill(t *testing.T) {
	tests := []struct {
		name string
		bt   BeverageType
		ml   int
		want bool
	}{
		{"wine 750", Wine, 750, true},
		{"wine 187 split", Wine, 187, true},
		{"wine 720 illegal", Wine, 720, false},
		{"spirits 700", DistilledSpirits, 700, true},
		{"spirits 720 illegal", DistilledSpirits, 720, false},
		{"spirits 1750 handle", DistilledSpirits, 1750, true},
		{"malt any size", MaltBeverage, 720, true},
		{"malt odd size", MaltBeverage, 333, true},
		{"undetermined not gated", Undetermined, 123, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLegalFill(tt.bt, tt.ml); got != tt.want {
				t.Errorf("IsLegalFill(%s, %d) = %v, want %v", tt.bt, tt.ml, got, tt.want)
			}
		})
	}
}

func TestCanonicalBeverageType(t *testing.T) {
	tests := []struct {
		in     string
		want   BeverageType
		wantOK bool
	}{
		{"wine", Wine, true},
		{"Wine", Wine, true},
		{"distilled_spirits", DistilledSpirits, true},
		{"distilled spirits", DistilledSpirits, true},
		{"spirits", DistilledSpirits, true},
		{"liquor", DistilledSpirits, true},
		{"beer", MaltBeverage, true},
		{"malt beverage", MaltBeverage, true},
		{"  Malt  ", MaltBeverage, true},
		{"kombucha", Undetermined, false},
		{"", Undetermined, false},
	}
	for _, tt := range tests {
		got, ok := CanonicalBeverageType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CanonicalBeverageType(%q) = (%s, %v), want (%s, %v)",
				tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLabelStatusHelpers(t *testing.T) {
	for _, s := range []LabelStatus{LabelStatusConditionallyApproved, LabelStatusNeedsCorrection} {
		if !s.CarriesDeadline() {
			t.Errorf("%s.CarriesDeadline() = false, want true", s)
		}
	}
	for _, s := range []LabelStatus{LabelStatusPending, LabelStatusApproved, LabelStatusRejected} {
		if s.CarriesDeadline() {
			t.Errorf("%s.CarriesDeadline() = true, want false", s)
		}
	}
	for _, s := range []LabelStatus{LabelStatusApproved, LabelStatusRejected} {
		if !s.Terminal() {
			t.Errorf("%s.Terminal() = false, want true", s)
		}
	}
	if LabelStatusPendingReview.Terminal() {
		t.Error("pending_review must not be terminal")
	}
}
