package compare

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/labelcheck/labelcheck/constants"
)

var leadingNumber = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// compareNormalized canonicalizes both sides into a number before comparing:
// percentage parsing for alcohol content (proof annotations stripped), unit
// conversion to milliliters for net contents.
func compareNormalized(field constants.FieldName, expected, extracted string) Comparison {
	var (
		a, b float64
		okA  bool
		okB  bool
		unit string
	)
	switch field {
	case constants.FieldNetContents:
		a, okA = parseVolumeML(expected)
		b, okB = parseVolumeML(extracted)
		unit = "mL"
	default:
		a, okA = parseAlcoholPercent(expected)
		b, okB = parseAlcoholPercent(extracted)
		unit = "%"
	}

	if !okA || !okB {
		return Comparison{
			Status:     StatusMismatch,
			Confidence: 100,
			Reasoning:  fmt.Sprintf("could not parse %q vs %q", expected, extracted),
		}
	}
	if math.Abs(a-b) < 0.01 {
		return Comparison{
			Status:     StatusMatch,
			Confidence: 100,
			Reasoning:  fmt.Sprintf("both equal %g%s", a, unit),
		}
	}
	return Comparison{
		Status:     StatusMismatch,
		Confidence: 100,
		Reasoning:  fmt.Sprintf("expected %g%s, label shows %g%s", a, unit, b, unit),
	}
}

// parseAlcoholPercent extracts the percentage from strings like
// "45% Alc./Vol. (90 Proof)", "45%", or "Alc. 45% by Vol". Proof annotations
// are stripped first so "90 Proof" never wins over the percentage.
func parseAlcoholPercent(s string) (float64, bool) {
	lower := strings.ToLower(s)
	stripped := lower

	// Drop everything from the proof annotation back to its opening paren (or
	// the start of its number) so "90 Proof" never wins over the percentage.
	if i := strings.Index(lower, "proof"); i >= 0 {
		cut := strings.LastIndex(lower[:i], "(")
		if cut < 0 {
			cut = strings.LastIndexFunc(strings.TrimRight(lower[:i], " "), func(r rune) bool {
				return !('0' <= r && r <= '9') && r != '.' && r != ' '
			})
			if cut < 0 {
				cut = 0
			}
		}
		stripped = lower[:cut]
	}

	if m := leadingNumber.FindString(stripped); m != "" {
		v, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return v, true
		}
	}

	// No percentage, only a proof statement: proof is twice ABV.
	if strings.Contains(lower, "proof") {
		if m := leadingNumber.FindString(lower); m != "" {
			v, err := strconv.ParseFloat(m, 64)
			if err == nil {
				return v / 2, true
			}
		}
	}
	return 0, false
}

// parseVolumeML extracts a container volume and converts it to milliliters.
// Accepts mL, cL, and L with common spellings ("750 mL", "0.75L", "75 cl",
// "1 liter").
func parseVolumeML(s string) (float64, bool) {
	lower := strings.ToLower(strings.TrimSpace(s))

	m := leadingNumber.FindString(lower)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}

	rest := strings.TrimSpace(lower[strings.Index(lower, m)+len(m):])
	switch {
	case strings.HasPrefix(rest, "ml"), strings.HasPrefix(rest, "milliliter"), strings.HasPrefix(rest, "millilitre"):
		return v, true
	case strings.HasPrefix(rest, "cl"), strings.HasPrefix(rest, "centiliter"), strings.HasPrefix(rest, "centilitre"):
		return v * 10, true
	case strings.HasPrefix(rest, "l"), strings.HasPrefix(rest, "liter"), strings.HasPrefix(rest, "litre"):
		return v * 1000, true
	default:
		// Bare number: assume milliliters.
		return v, true
	}
}
