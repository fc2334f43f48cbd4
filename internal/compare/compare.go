// Package compare computes match verdicts between expected application values
// and values extracted from the label, using field-appropriate semantics.
package compare

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/internal/normalize"
)

// Status is the verdict for one field.
type Status string

const (
	StatusMatch           Status = "match"
	StatusMismatch        Status = "mismatch"
	StatusNotFound        Status = "not_found"
	StatusNeedsCorrection Status = "needs_correction"
)

// Comparison is the outcome of comparing one field.
type Comparison struct {
	Status     Status `json:"status"`
	Confidence int    `json:"confidence"` // 0..100
	Reasoning  string `json:"reasoning"`
}

// Strategy selects the comparison semantics for a field.
type Strategy string

const (
	StrategyExact      Strategy = "exact"
	StrategyFuzzy      Strategy = "fuzzy"
	StrategyNormalized Strategy = "normalized"
	StrategyEnum       Strategy = "enum"
	StrategyContains   Strategy = "contains"
)

// fieldStrategies maps each field to its comparison semantics.
var fieldStrategies = map[constants.FieldName]Strategy{
	constants.FieldBrandName:          StrategyFuzzy,
	constants.FieldFancifulName:       StrategyFuzzy,
	constants.FieldClassType:          StrategyEnum,
	constants.FieldAlcoholContent:     StrategyNormalized,
	constants.FieldNetContents:        StrategyNormalized,
	constants.FieldHealthWarning:      StrategyExact,
	constants.FieldNameAndAddress:     StrategyFuzzy,
	constants.FieldCountryOfOrigin:    StrategyContains,
	constants.FieldAppellation:        StrategyContains,
	constants.FieldSulfiteDeclaration: StrategyEnum,
	constants.FieldVintage:            StrategyExact,
}

// fuzzyThreshold is the minimum edit-distance similarity for a fuzzy match.
const fuzzyThreshold = 0.85

// Engine compares fields under a settings-supplied configuration. Zero-value
// Config falls back to the built-in defaults.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}

// Compare computes the verdict for one (expected, extracted) pair. A nil
// extracted value is not_found, never an error. A mismatch on a configured
// minor-discrepancy field is reclassified to needs_correction so cosmetic
// discrepancies stay correctable without being hidden.
func (e *Engine) Compare(field constants.FieldName, expected string, extracted *string) Comparison {
	if extracted == nil {
		return Comparison{
			Status:     StatusNotFound,
			Confidence: 0,
			Reasoning:  fmt.Sprintf("%s not found on label", field),
		}
	}

	strategy := e.cfg.strategyFor(field)
	var cmp Comparison
	switch strategy {
	case StrategyExact:
		cmp = e.compareExact(field, expected, *extracted)
	case StrategyFuzzy:
		cmp = e.compareFuzzy(field, expected, *extracted)
	case StrategyNormalized:
		cmp = compareNormalized(field, expected, *extracted)
	case StrategyEnum:
		cmp = e.compareEnum(field, expected, *extracted)
	case StrategyContains:
		cmp = compareContains(expected, *extracted)
	default:
		cmp = e.compareExact(field, expected, *extracted)
	}

	if cmp.Status == StatusMismatch && e.cfg.isMinor(field) {
		cmp.Status = StatusNeedsCorrection
		cmp.Reasoning += " (minor discrepancy, correctable)"
	}
	return cmp
}

// compareExact requires equality after case and whitespace canonicalization.
// The mandatory warning field additionally requires the literal header token
// in all caps on the label as printed.
func (e *Engine) compareExact(field constants.FieldName, expected, extracted string) Comparison {
	if field == constants.FieldHealthWarning &&
		!strings.Contains(extracted, constants.HealthWarningHeader) {
		return Comparison{
			Status:     StatusMismatch,
			Confidence: 100,
			Reasoning:  fmt.Sprintf("header %q must appear in capital letters", constants.HealthWarningHeader),
		}
	}

	a := collapseSpace(strings.ToLower(expected))
	b := collapseSpace(strings.ToLower(extracted))
	if a == b {
		return Comparison{Status: StatusMatch, Confidence: 100, Reasoning: "exact match"}
	}
	return Comparison{
		Status:     StatusMismatch,
		Confidence: 100,
		Reasoning:  fmt.Sprintf("expected %q, label shows %q", expected, extracted),
	}
}

// compareFuzzy is case/punctuation/diacritic-insensitive, consults the
// accepted-variants whitelist first, then tolerates small edit distances with
// confidence scaled by similarity.
func (e *Engine) compareFuzzy(field constants.FieldName, expected, extracted string) Comparison {
	a := normalize.String(normalize.FoldDiacritics(expected))
	b := normalize.String(normalize.FoldDiacritics(extracted))

	if a == b {
		return Comparison{Status: StatusMatch, Confidence: 100, Reasoning: "match after normalization"}
	}
	if e.cfg.isAcceptedVariant(field, a, b) {
		return Comparison{Status: StatusMatch, Confidence: 95, Reasoning: "accepted variant"}
	}

	similarity := levenshtein.Similarity(a, b, nil)
	conf := int(similarity * 100)
	if similarity >= fuzzyThreshold {
		return Comparison{
			Status:     StatusMatch,
			Confidence: conf,
			Reasoning:  fmt.Sprintf("near match (%.0f%% similar)", similarity*100),
		}
	}
	return Comparison{
		Status:     StatusMismatch,
		Confidence: conf,
		Reasoning:  fmt.Sprintf("expected %q, label shows %q", expected, extracted),
	}
}

// compareEnum checks membership in the accepted phrasings for the field,
// case-insensitive with ampersand/"and" folding.
func (e *Engine) compareEnum(field constants.FieldName, expected, extracted string) Comparison {
	a := enumFold(expected)
	b := enumFold(extracted)
	if a == b {
		return Comparison{Status: StatusMatch, Confidence: 100, Reasoning: "accepted phrasing"}
	}
	if e.cfg.sameEnumGroup(field, a, b) {
		return Comparison{Status: StatusMatch, Confidence: 95, Reasoning: "equivalent accepted phrasing"}
	}
	return Comparison{
		Status:     StatusMismatch,
		Confidence: 100,
		Reasoning:  fmt.Sprintf("expected %q, label shows %q", expected, extracted),
	}
}

// compareContains accepts substring containment in either direction after
// normalization, e.g. a country phrase containing the expected country name.
func compareContains(expected, extracted string) Comparison {
	a := normalize.String(normalize.FoldDiacritics(expected))
	b := normalize.String(normalize.FoldDiacritics(extracted))
	if a != "" && b != "" && (strings.Contains(b, a) || strings.Contains(a, b)) {
		return Comparison{Status: StatusMatch, Confidence: 100, Reasoning: "containment match"}
	}
	return Comparison{
		Status:     StatusMismatch,
		Confidence: 100,
		Reasoning:  fmt.Sprintf("expected %q, label shows %q", expected, extracted),
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// enumFold canonicalizes an enum phrasing: lowercase, "&" to "and", collapsed
// whitespace.
func enumFold(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", " and ")
	return collapseSpace(s)
}
