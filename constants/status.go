package constants

// LabelStatus is the canonical status for rows in labels.
type LabelStatus string

// Stable values (store these exact strings in DB).
const (
	LabelStatusPending               LabelStatus = "pending"                // awaiting verification
	LabelStatusProcessing            LabelStatus = "processing"             // verification in flight
	LabelStatusApproved              LabelStatus = "approved"               // terminal OK
	LabelStatusPendingReview         LabelStatus = "pending_review"         // needs human review before a verdict
	LabelStatusConditionallyApproved LabelStatus = "conditionally_approved" // minor discrepancies, deadline attached
	LabelStatusNeedsCorrection       LabelStatus = "needs_correction"       // real discrepancies, deadline attached
	LabelStatusRejected              LabelStatus = "rejected"               // terminal failure
)

// CarriesDeadline reports whether a status is accompanied by a correction
// deadline. Only conditionally_approved and needs_correction ever do.
func (s LabelStatus) CarriesDeadline() bool {
	return s == LabelStatusConditionallyApproved || s == LabelStatusNeedsCorrection
}

// Terminal reports whether the status is a final verdict.
func (s LabelStatus) Terminal() bool {
	return s == LabelStatusApproved || s == LabelStatusRejected
}

// JobStatus is the canonical status for rows in verification_job.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning    JobStatus = "RUNNING"    // in progress
	JobStatusOCROK      JobStatus = "OCR_OK"     // stage 1 completed (all images read)
	JobStatusClassified JobStatus = "CLASSIFIED" // stage 2 completed (fields classified)
	JobStatusVerified   JobStatus = "VERIFIED"   // stage 3 completed (comparisons + status written)
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
)
