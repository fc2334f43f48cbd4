package compare

import (
	"strings"
	"testing"

	"github.com/labelcheck/labelcheck/constants"
)

func strptr(s string) *string { return &s }

func TestCompareNotFound(t *testing.T) {
	e := NewEngine(Config{})
	cmp := e.Compare(constants.FieldBrandName, "Old Tavern", nil)
	if cmp.Status != StatusNotFound {
		t.Errorf("Status = %s, want not_found", cmp.Status)
	}
	if cmp.Confidence != 0 {
		t.Errorf("Confidence = %d, want 0", cmp.Confidence)
	}
}

func TestCompareFuzzy(t *testing.T) {
	e := NewEngine(Config{})
	tests := []struct {
		name      string
		expected  string
		extracted string
		want      Status
	}{
		{"identical", "Old Tavern Winery", "Old Tavern Winery", StatusMatch},
		{"case and punctuation", "OLD TAVERN WINERY", "Old Tavern, Winery.", StatusMatch},
		{"diacritics", "Chateau Rose", "Château Rosé", StatusMatch},
		{"small typo", "Old Tavern Winery", "Old Tavern Winary", StatusMatch},
		{"different name", "Old Tavern Winery", "New Cellars", StatusMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := e.Compare(constants.FieldBrandName, tt.expected, strptr(tt.extracted))
			if cmp.Status != tt.want {
				t.Errorf("Status = %s, want %s (%s)", cmp.Status, tt.want, cmp.Reasoning)
			}
		})
	}
}

func TestCompareFuzzyAcceptedVariant(t *testing.T) {
	e := NewEngine(Config{
		Variants: map[constants.FieldName][]VariantPair{
			constants.FieldBrandName: {
				{Canonical: "Old Tavern Winery", Variant: "O.T.W."},
			},
		},
	})
	cmp := e.Compare(constants.FieldBrandName, "Old Tavern Winery", strptr("OTW"))
	if cmp.Status != StatusMatch {
		t.Errorf("Status = %s, want match via whitelist (%s)", cmp.Status, cmp.Reasoning)
	}
	// Whitelist applies in both directions.
	cmp = e.Compare(constants.FieldBrandName, "O.T.W.", strptr("Old Tavern Winery"))
	if cmp.Status != StatusMatch {
		t.Errorf("reversed Status = %s, want match", cmp.Status)
	}
}

func TestCompareAlcoholContent(t *testing.T) {
	e := NewEngine(Config{})
	tests := []struct {
		name      string
		expected  string
		extracted string
		want      Status
	}{
		{"percent vs percent with proof", "45%", "45% Alc./Vol. (90 Proof)", StatusMatch},
		{"proof only on label", "45% Alc. by Vol.", "90 Proof", StatusMatch},
		{"decimal", "12.5%", "Alc. 12.5% by Vol.", StatusMatch},
		{"different value", "12.5%", "13.5% Alc./Vol.", StatusMismatch},
		{"unparseable", "12.5%", "unknown", StatusMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := e.Compare(constants.FieldAlcoholContent, tt.expected, strptr(tt.extracted))
			if cmp.Status != tt.want {
				t.Errorf("Status = %s, want %s (%s)", cmp.Status, tt.want, cmp.Reasoning)
			}
		})
	}
}

func TestCompareNetContents(t *testing.T) {
	e := NewEngine(Config{})
	tests := []struct {
		name      string
		expected  string
		extracted string
		want      Status
	}{
		{"same unit", "750 mL", "750 ML", StatusMatch},
		{"liters", "750 mL", "0.75L", StatusMatch},
		{"centiliters", "750 mL", "75 cl", StatusMatch},
		{"spelled out", "1000 mL", "1 Liter", StatusMatch},
		{"bare number", "750 mL", "750", StatusMatch},
		{"different size", "750 mL", "700 mL", StatusMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := e.Compare(constants.FieldNetContents, tt.expected, strptr(tt.extracted))
			if cmp.Status != tt.want {
				t.Errorf("Status = %s, want %s (%s)", cmp.Status, tt.want, cmp.Reasoning)
			}
		})
	}
}

func TestCompareHealthWarning(t *testing.T) {
	e := NewEngine(Config{})
	statement := "GOVERNMENT WARNING: (1) According to the Surgeon General, women should not drink alcoholic beverages during pregnancy because of the risk of birth defects."

	cmp := e.Compare(constants.FieldHealthWarning, statement, strptr(statement))
	if cmp.Status != StatusMatch {
		t.Errorf("Status = %s, want match (%s)", cmp.Status, cmp.Reasoning)
	}

	// Same words but the header not in capitals is a hard mismatch.
	lowered := strings.Replace(statement, "GOVERNMENT WARNING", "Government Warning", 1)
	cmp = e.Compare(constants.FieldHealthWarning, statement, strptr(lowered))
	if cmp.Status != StatusMismatch {
		t.Errorf("lowercase header Status = %s, want mismatch", cmp.Status)
	}

	// Different statement text mismatches even with the header intact.
	cmp = e.Compare(constants.FieldHealthWarning, statement, strptr("GOVERNMENT WARNING: drink responsibly."))
	if cmp.Status != StatusMismatch {
		t.Errorf("altered text Status = %s, want mismatch", cmp.Status)
	}
}

func TestCompareEnum(t *testing.T) {
	e := NewEngine(Config{})
	tests := []struct {
		name      string
		field     constants.FieldName
		expected  string
		extracted string
		want      Status
	}{
		{"same phrasing", constants.FieldClassType, "Red Wine", "RED WINE", StatusMatch},
		{"ampersand folding", constants.FieldClassType, "Gin & Tonic", "Gin and Tonic", StatusMatch},
		{"equivalent group", constants.FieldClassType, "Kentucky Straight Bourbon Whiskey", "Straight Bourbon Whiskey", StatusMatch},
		{"sulfite group", constants.FieldSulfiteDeclaration, "Contains Sulfites", "Contains Sulphites", StatusMatch},
		{"different class", constants.FieldClassType, "Red Wine", "White Wine", StatusMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := e.Compare(tt.field, tt.expected, strptr(tt.extracted))
			if cmp.Status != tt.want {
				t.Errorf("Status = %s, want %s (%s)", cmp.Status, tt.want, cmp.Reasoning)
			}
		})
	}
}

func TestCompareContains(t *testing.T) {
	e := NewEngine(Config{})
	tests := []struct {
		name      string
		expected  string
		extracted string
		want      Status
	}{
		{"label phrase contains country", "France", "Product of France", StatusMatch},
		{"expected contains label", "Product of Italy", "Italy", StatusMatch},
		{"no containment", "France", "Product of Spain", StatusMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := e.Compare(constants.FieldCountryOfOrigin, tt.expected, strptr(tt.extracted))
			if cmp.Status != tt.want {
				t.Errorf("Status = %s, want %s (%s)", cmp.Status, tt.want, cmp.Reasoning)
			}
		})
	}
}

func TestCompareMinorReclassification(t *testing.T) {
	e := NewEngine(Config{})

	// Vintage is a default minor field; a mismatch downgrades to
	// needs_correction with the reclassification noted.
	cmp := e.Compare(constants.FieldVintage, "2019", strptr("2020"))
	if cmp.Status != StatusNeedsCorrection {
		t.Errorf("Status = %s, want needs_correction", cmp.Status)
	}
	if !strings.Contains(cmp.Reasoning, "minor discrepancy") {
		t.Errorf("Reasoning = %q, want reclassification note", cmp.Reasoning)
	}

	// not_found on a minor field stays not_found; only mismatches downgrade.
	cmp = e.Compare(constants.FieldVintage, "2019", nil)
	if cmp.Status != StatusNotFound {
		t.Errorf("nil value Status = %s, want not_found", cmp.Status)
	}

	// A non-minor field keeps the hard mismatch.
	cmp = e.Compare(constants.FieldHealthWarning, "GOVERNMENT WARNING: x", strptr("something else"))
	if cmp.Status != StatusMismatch {
		t.Errorf("non-minor Status = %s, want mismatch", cmp.Status)
	}
}

func TestCompareMinorFieldOverride(t *testing.T) {
	e := NewEngine(Config{
		MinorFields: map[constants.FieldName]struct{}{
			constants.FieldClassType: {},
		},
	})

	// Vintage is no longer minor under the override.
	cmp := e.Compare(constants.FieldVintage, "2019", strptr("2020"))
	if cmp.Status != StatusMismatch {
		t.Errorf("Vintage Status = %s, want mismatch under override", cmp.Status)
	}
	cmp = e.Compare(constants.FieldClassType, "Red Wine", strptr("White Wine"))
	if cmp.Status != StatusNeedsCorrection {
		t.Errorf("ClassType Status = %s, want needs_correction under override", cmp.Status)
	}
}

func TestStrategyOverride(t *testing.T) {
	e := NewEngine(Config{
		StrategyOverrides: map[constants.FieldName]Strategy{
			constants.FieldBrandName: StrategyExact,
		},
	})
	// Exact comparison no longer tolerates the typo fuzzy would accept.
	cmp := e.Compare(constants.FieldBrandName, "Old Tavern Winery", strptr("Old Tavern Winary"))
	if cmp.Status != StatusMismatch {
		t.Errorf("Status = %s, want mismatch under exact override", cmp.Status)
	}
}

func TestParseAlcoholPercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"45% Alc./Vol. (90 Proof)", 45, true},
		{"45%", 45, true},
		{"Alc. 12.5% by Vol.", 12.5, true},
		{"90 Proof", 45, true},
		{"80 proof", 40, true},
		{"no numbers here", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseAlcoholPercent(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseAlcoholPercent(%q) = (%v, %v), want (%v, %v)",
				tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseVolumeML(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"750 mL", 750, true},
		{"750ml", 750, true},
		{"0.75L", 750, true},
		{"75 cl", 750, true},
		{"1 Liter", 1000, true},
		{"1.75 litres", 1750, true},
		{"355 Milliliters", 355, true},
		{"750", 750, true},
		{"no volume", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseVolumeML(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseVolumeML(%q) = (%v, %v), want (%v, %v)",
				tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
