// Package status reduces per-field verdicts into one overall label status
// with correction-deadline policy, and recomputes time-dependent status at
// read time.
package status

import (
	"fmt"
	"sort"
	"time"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/internal/compare"
)

const (
	// CorrectionWindow is the deadline granted for real discrepancies.
	CorrectionWindow = 30 * 24 * time.Hour
	// MinorCorrectionWindow is the deadline granted for minor discrepancies.
	MinorCorrectionWindow = 7 * 24 * time.Hour
)

// Input is everything the determination needs for one label evaluation.
type Input struct {
	Fields       map[constants.FieldName]compare.Status
	BeverageType constants.BeverageType
	ContainerML  int
	MinorFields  map[constants.FieldName]struct{} // nil means the defaults
}

// Decision is the overall verdict plus deadline policy.
type Decision struct {
	Status             constants.LabelStatus
	CorrectionDeadline *time.Time
	Reasoning          string
}

// Determine applies the status rules in strict priority order; the first
// matching rule wins, there is no weighted scoring:
//
//  1. illegal container size for the beverage type -> rejected
//  2. mandatory warning not_found or hard mismatch -> rejected
//  3. any non-minor mismatch or not_found -> needs_correction, 30 days
//  4. any minor needs_correction -> conditionally_approved, 7 days
//  5. otherwise -> approved, no deadline
func Determine(in Input, now time.Time) Decision {
	minor := in.MinorFields
	if minor == nil {
		minor = constants.DefaultMinorFields
	}

	if !constants.IsLegalFill(in.BeverageType, in.ContainerML) {
		return Decision{
			Status: constants.LabelStatusRejected,
			Reasoning: fmt.Sprintf("%d mL is not a legal standard of fill for %s",
				in.ContainerML, in.BeverageType),
		}
	}

	if s, ok := in.Fields[constants.FieldHealthWarning]; ok {
		if s == compare.StatusNotFound || s == compare.StatusMismatch {
			return Decision{
				Status:    constants.LabelStatusRejected,
				Reasoning: "mandatory health warning statement missing or incorrect",
			}
		}
	}

	ordered := orderedFields(in.Fields)

	for _, name := range ordered {
		if _, isMinor := minor[name]; isMinor {
			continue
		}
		if s := in.Fields[name]; s == compare.StatusMismatch || s == compare.StatusNotFound {
			deadline := now.Add(CorrectionWindow)
			return Decision{
				Status:             constants.LabelStatusNeedsCorrection,
				CorrectionDeadline: &deadline,
				Reasoning:          fmt.Sprintf("%s does not match the application", name),
			}
		}
	}

	for _, name := range ordered {
		if in.Fields[name] == compare.StatusNeedsCorrection {
			deadline := now.Add(MinorCorrectionWindow)
			return Decision{
				Status:             constants.LabelStatusConditionallyApproved,
				CorrectionDeadline: &deadline,
				Reasoning:          fmt.Sprintf("minor discrepancy on %s", name),
			}
		}
	}

	return Decision{
		Status:    constants.LabelStatusApproved,
		Reasoning: "all fields match the application",
	}
}

// orderedFields returns the field names sorted so rule evaluation, and the
// reasoning it emits, is reproducible across runs.
func orderedFields(fields map[constants.FieldName]compare.Status) []constants.FieldName {
	out := make([]constants.FieldName, 0, len(fields))
	for name := range fields {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Effective recomputes the label's status from what was stored plus the
// correction deadline, decoupled from any scheduler. Consulted on every read
// path; callers may schedule a best-effort write-back of the result but
// correctness never depends on that write happening.
func Effective(stored constants.LabelStatus, deadline *time.Time, now time.Time) constants.LabelStatus {
	if deadline == nil || !deadline.Before(now) {
		return stored
	}
	switch stored {
	case constants.LabelStatusNeedsCorrection:
		return constants.LabelStatusRejected
	case constants.LabelStatusConditionallyApproved:
		return constants.LabelStatusNeedsCorrection
	default:
		return stored
	}
}
