package compare

import (
	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/internal/normalize"
)

// foldForVariant applies the same canonicalization the fuzzy strategy uses so
// whitelist entries match regardless of case, punctuation, or diacritics.
func foldForVariant(s string) string {
	return normalize.String(normalize.FoldDiacritics(s))
}

// VariantPair is one canonical↔variant equivalence accepted for a field.
type VariantPair struct {
	Canonical string
	Variant   string
}

// Config is the settings-collaborator view of comparison behavior: per-field
// strategy overrides, the minor-discrepancy field set, and accepted-variant
// whitelists. All values are read-only to the engine.
type Config struct {
	StrategyOverrides map[constants.FieldName]Strategy
	MinorFields       map[constants.FieldName]struct{}
	Variants          map[constants.FieldName][]VariantPair
	EnumGroups        map[constants.FieldName][][]string
}

func (c Config) withDefaults() Config {
	if c.MinorFields == nil {
		c.MinorFields = constants.DefaultMinorFields
	}
	if c.EnumGroups == nil {
		c.EnumGroups = defaultEnumGroups
	}
	return c
}

func (c Config) strategyFor(field constants.FieldName) Strategy {
	if s, ok := c.StrategyOverrides[field]; ok {
		return s
	}
	if s, ok := fieldStrategies[field]; ok {
		return s
	}
	return StrategyExact
}

func (c Config) isMinor(field constants.FieldName) bool {
	_, ok := c.MinorFields[field]
	return ok
}

// isAcceptedVariant checks the whitelist in both directions. Inputs are
// already normalized; pairs are normalized on the way in.
func (c Config) isAcceptedVariant(field constants.FieldName, a, b string) bool {
	for _, p := range c.Variants[field] {
		canonical := foldForVariant(p.Canonical)
		variant := foldForVariant(p.Variant)
		if (a == canonical && b == variant) || (a == variant && b == canonical) {
			return true
		}
	}
	return false
}

// sameEnumGroup reports whether two enum-folded phrasings belong to the same
// accepted equivalence group.
func (c Config) sameEnumGroup(field constants.FieldName, a, b string) bool {
	for _, group := range c.EnumGroups[field] {
		inA, inB := false, false
		for _, phrase := range group {
			folded := enumFold(phrase)
			if folded == a {
				inA = true
			}
			if folded == b {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}

// defaultEnumGroups lists phrasings treated as equivalent out of the box.
var defaultEnumGroups = map[constants.FieldName][][]string{
	constants.FieldSulfiteDeclaration: {
		{"Contains Sulfites", "Contains Sulphites", "Contains Sulfiting Agents"},
	},
	constants.FieldClassType: {
		{"Kentucky Straight Bourbon Whiskey", "Straight Bourbon Whiskey"},
		{"Blended Scotch Whisky", "Scotch Whisky, a Blend"},
	},
}
