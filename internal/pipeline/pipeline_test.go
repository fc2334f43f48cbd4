package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/labelcheck/labelcheck/constants"
	"github.com/labelcheck/labelcheck/gen/ent"
	"github.com/labelcheck/labelcheck/internal/common"
	"github.com/labelcheck/labelcheck/internal/compare"
	"github.com/labelcheck/labelcheck/internal/extraction"
	"github.com/labelcheck/labelcheck/internal/geometry"
	"github.com/labelcheck/labelcheck/internal/llm"
	"github.com/labelcheck/labelcheck/internal/repository"
	"github.com/labelcheck/labelcheck/internal/vision"
)

// ---- fakes -----------------------------------------------------------------

type fakeLabels struct {
	mu       sync.Mutex
	labels   map[uuid.UUID]*ent.Label
	images   map[uuid.UUID][]*ent.LabelImage
	statuses map[uuid.UUID]constants.LabelStatus
	roles    map[uuid.UUID]string
}

func newFakeLabels() *fakeLabels {
	return &fakeLabels{
		labels:   make(map[uuid.UUID]*ent.Label),
		images:   make(map[uuid.UUID][]*ent.LabelImage),
		statuses: make(map[uuid.UUID]constants.LabelStatus),
		roles:    make(map[uuid.UUID]string),
	}
}

func (f *fakeLabels) add(l *ent.Label, imagePaths ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.labels[l.ID] = l
	f.statuses[l.ID] = constants.LabelStatus(l.Status)
	for i, p := range imagePaths {
		f.images[l.ID] = append(f.images[l.ID], &ent.LabelImage{
			ID:         uuid.New(),
			LabelID:    l.ID,
			Position:   i,
			SourcePath: p,
		})
	}
}

func (f *fakeLabels) status(id uuid.UUID) constants.LabelStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statuses[id]
}

func (f *fakeLabels) Create(ctx context.Context, bt constants.BeverageType, containerML int, vals map[string]string) (*ent.Label, error) {
	l := &ent.Label{
		ID:                uuid.New(),
		Status:            string(constants.LabelStatusPending),
		BeverageType:      string(bt),
		ContainerMl:       containerML,
		ApplicationValues: vals,
	}
	f.add(l)
	return l, nil
}

func (f *fakeLabels) Get(ctx context.Context, id uuid.UUID) (*ent.Label, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.labels[id]
	if !ok {
		return nil, fmt.Errorf("label %s not found", id)
	}
	return l, nil
}

func (f *fakeLabels) ListByStatus(ctx context.Context, s constants.LabelStatus, limit int) ([]*ent.Label, error) {
	return nil, nil
}

func (f *fakeLabels) SetStatus(ctx context.Context, id uuid.UUID, s constants.LabelStatus, deadline *time.Time, reasoning string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[id] = s
	return nil
}

func (f *fakeLabels) AddImage(ctx context.Context, labelID uuid.UUID, position int, sourcePath string, contentHash []byte) (*ent.LabelImage, error) {
	return nil, errors.New("not supported")
}

func (f *fakeLabels) ListImages(ctx context.Context, labelID uuid.UUID) ([]*ent.LabelImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.images[labelID], nil
}

func (f *fakeLabels) SetImageRole(ctx context.Context, imageID uuid.UUID, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[imageID] = role
	return nil
}

type fakeJobs struct {
	mu          sync.Mutex
	transitions []string
	failure     string
}

func (f *fakeJobs) record(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transitions = append(f.transitions, s)
}

func (f *fakeJobs) history() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.transitions...)
}

func (f *fakeJobs) Start(ctx context.Context, labelID uuid.UUID, variant string) (*ent.VerificationJob, error) {
	f.record("RUNNING")
	return &ent.VerificationJob{ID: uuid.New(), LabelID: labelID}, nil
}

func (f *fakeJobs) FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string) error {
	f.record("OCR_OK")
	return nil
}

func (f *fakeJobs) FinishClassification(ctx context.Context, jobID uuid.UUID, classifiedJSON []byte, modelName string, promptTokens, completionTokens int) error {
	f.record("CLASSIFIED")
	return nil
}

func (f *fakeJobs) FinishVerified(ctx context.Context, jobID uuid.UUID) error {
	f.record("VERIFIED")
	return nil
}

func (f *fakeJobs) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	f.mu.Lock()
	f.failure = message
	f.mu.Unlock()
	f.record("FAILED")
	return nil
}

type fakeItems struct {
	mu    sync.Mutex
	items []repository.ItemInput
}

func (f *fakeItems) CreateAll(ctx context.Context, jobID uuid.UUID, items []repository.ItemInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeItems) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.ValidationItem, error) {
	return nil, nil
}

// fakeOCR returns one canned result for every image, or blocks until the
// context dies when block is set.
type fakeOCR struct {
	result *vision.OcrResult
	block  bool
}

func (f *fakeOCR) Read(ctx context.Context, image []byte) (*vision.OcrResult, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.result, nil
}

type fakeClassifier struct {
	result llm.ClassifyResult
	err    error
}

func (f *fakeClassifier) ClassifyFields(ctx context.Context, req llm.ClassifyRequest) (llm.ClassifyResult, []byte, error) {
	if f.err != nil {
		return llm.ClassifyResult{}, nil, f.err
	}
	return f.result, []byte(`{"fields":[]}`), nil
}

// ---- helpers ---------------------------------------------------------------

func labelWords(texts ...string) *vision.OcrResult {
	r := &vision.OcrResult{ImageWidth: 1000, ImageHeight: 800}
	for i, text := range texts {
		x := float64(i * 60)
		r.Words = append(r.Words, vision.OcrWord{
			Text: text,
			Polygon: geometry.Quad{
				{X: x, Y: 100}, {X: x + 50, Y: 100},
				{X: x + 50, Y: 120}, {X: x, Y: 120},
			},
		})
		if i > 0 {
			r.FullText += " "
		}
		r.FullText += text
	}
	return r
}

func classified(field, value string, confidence int) llm.ClassifiedField {
	v := value
	return llm.ClassifiedField{FieldName: field, Value: &v, Confidence: confidence}
}

func writeImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not really a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

type fixture struct {
	labels  *fakeLabels
	jobs    *fakeJobs
	items   *fakeItems
	proc    *Processor
	labelID uuid.UUID
}

func newFixture(t *testing.T, ocr vision.Client, classify llm.FieldClassifier, verify common.VerifyConfig, timeout time.Duration) *fixture {
	t.Helper()
	labels := newFakeLabels()
	jobs := &fakeJobs{}
	items := &fakeItems{}

	label := &ent.Label{
		ID:           uuid.New(),
		Status:       string(constants.LabelStatusPending),
		BeverageType: string(constants.Wine),
		ContainerMl:  750,
		ApplicationValues: map[string]string{
			"brand_name":   "Old Tavern",
			"net_contents": "750 mL",
		},
	}
	labels.add(label, writeImage(t, t.TempDir(), "front.jpg"))

	ocrStage := NewOCRStage(labels, jobs, ocr, nil)
	verifyStage := NewVerifyStage(labels, jobs, items, classify, compare.NewEngine(compare.Config{}), verify, nil)
	proc := NewProcessor(nil, labels, jobs, ocrStage, verifyStage, timeout)

	return &fixture{labels: labels, jobs: jobs, items: items, proc: proc, labelID: label.ID}
}

// ---- tests -----------------------------------------------------------------

func TestProcessLabelApproved(t *testing.T) {
	ocr := &fakeOCR{result: labelWords("OLD", "TAVERN", "750", "mL")}
	classify := &fakeClassifier{result: llm.ClassifyResult{
		Fields: []llm.ClassifiedField{
			classified("brand_name", "OLD TAVERN", 95),
			classified("net_contents", "750 mL", 96),
		},
	}}
	fx := newFixture(t, ocr, classify,
		common.VerifyConfig{AutoApprove: true, AutoApproveThreshold: 85}, time.Minute)

	_, decision, err := fx.proc.ProcessLabel(context.Background(), fx.labelID, Options{
		Variant: extraction.VariantSubmissionFast,
	})
	if err != nil {
		t.Fatalf("ProcessLabel: %v", err)
	}
	if decision.Status != constants.LabelStatusApproved {
		t.Errorf("Status = %s, want approved (%s)", decision.Status, decision.Reasoning)
	}
	if got := fx.labels.status(fx.labelID); got != constants.LabelStatusApproved {
		t.Errorf("persisted status = %s, want approved", got)
	}

	want := []string{"RUNNING", "OCR_OK", "CLASSIFIED", "VERIFIED"}
	got := fx.jobs.history()
	if len(got) != len(want) {
		t.Fatalf("job transitions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("job transitions = %v, want %v", got, want)
		}
	}

	// One validation row per application value, in canonical field order.
	if len(fx.items.items) != 2 {
		t.Fatalf("items = %d, want 2", len(fx.items.items))
	}
	if fx.items.items[0].FieldName != "brand_name" || fx.items.items[1].FieldName != "net_contents" {
		t.Errorf("item order = %s, %s", fx.items.items[0].FieldName, fx.items.items[1].FieldName)
	}
	if fx.items.items[0].Box == nil {
		t.Error("brand_name item has no bounding box, want fuzzy-matched geometry")
	}
}

func TestProcessLabelQueuedForReview(t *testing.T) {
	ocr := &fakeOCR{result: labelWords("OLD", "TAVERN", "750", "mL")}
	classify := &fakeClassifier{result: llm.ClassifyResult{
		Fields: []llm.ClassifiedField{
			classified("brand_name", "OLD TAVERN", 95),
			classified("net_contents", "750 mL", 96),
		},
	}}
	// Auto-approval disabled: clean verdicts park for a human.
	fx := newFixture(t, ocr, classify, common.VerifyConfig{}, time.Minute)

	_, decision, err := fx.proc.ProcessLabel(context.Background(), fx.labelID, Options{
		Variant: extraction.VariantSubmissionFast,
	})
	if err != nil {
		t.Fatalf("ProcessLabel: %v", err)
	}
	if decision.Status != constants.LabelStatusPendingReview {
		t.Errorf("Status = %s, want pending_review", decision.Status)
	}
}

func TestProcessLabelLowConfidenceBlocksAutoApproval(t *testing.T) {
	ocr := &fakeOCR{result: labelWords("OLD", "TAVERN", "750", "mL")}
	classify := &fakeClassifier{result: llm.ClassifyResult{
		Fields: []llm.ClassifiedField{
			classified("brand_name", "OLD TAVERN", 95),
			classified("net_contents", "750 mL", 40), // below the bar
		},
	}}
	fx := newFixture(t, ocr, classify,
		common.VerifyConfig{AutoApprove: true, AutoApproveThreshold: 85}, time.Minute)

	_, decision, err := fx.proc.ProcessLabel(context.Background(), fx.labelID, Options{
		Variant: extraction.VariantSubmissionFast,
	})
	if err != nil {
		t.Fatalf("ProcessLabel: %v", err)
	}
	if decision.Status != constants.LabelStatusPendingReview {
		t.Errorf("Status = %s, want pending_review for low-confidence field", decision.Status)
	}
}

func TestProcessLabelDiscrepancy(t *testing.T) {
	ocr := &fakeOCR{result: labelWords("NEW", "CELLARS", "750", "mL")}
	classify := &fakeClassifier{result: llm.ClassifyResult{
		Fields: []llm.ClassifiedField{
			classified("brand_name", "NEW CELLARS", 95),
			classified("net_contents", "750 mL", 96),
		},
	}}
	fx := newFixture(t, ocr, classify, common.VerifyConfig{}, time.Minute)

	_, decision, err := fx.proc.ProcessLabel(context.Background(), fx.labelID, Options{
		Variant: extraction.VariantSubmissionFast,
	})
	if err != nil {
		t.Fatalf("ProcessLabel: %v", err)
	}
	if decision.Status != constants.LabelStatusNeedsCorrection {
		t.Fatalf("Status = %s, want needs_correction (%s)", decision.Status, decision.Reasoning)
	}
	if decision.CorrectionDeadline == nil {
		t.Error("CorrectionDeadline = nil, want one attached")
	}
	if got := fx.labels.status(fx.labelID); got != constants.LabelStatusNeedsCorrection {
		t.Errorf("persisted status = %s, want needs_correction", got)
	}
}

func TestProcessLabelMissingFieldNotFound(t *testing.T) {
	ocr := &fakeOCR{result: labelWords("OLD", "TAVERN")}
	// Classifier only returned one of the two expected fields.
	classify := &fakeClassifier{result: llm.ClassifyResult{
		Fields: []llm.ClassifiedField{
			classified("brand_name", "OLD TAVERN", 95),
		},
	}}
	fx := newFixture(t, ocr, classify, common.VerifyConfig{}, time.Minute)

	_, decision, err := fx.proc.ProcessLabel(context.Background(), fx.labelID, Options{
		Variant: extraction.VariantSubmissionFast,
	})
	if err != nil {
		t.Fatalf("ProcessLabel: %v", err)
	}
	if decision.Status != constants.LabelStatusNeedsCorrection {
		t.Errorf("Status = %s, want needs_correction for missing net_contents", decision.Status)
	}
	var netContents *repository.ItemInput
	for i := range fx.items.items {
		if fx.items.items[i].FieldName == "net_contents" {
			netContents = &fx.items.items[i]
		}
	}
	if netContents == nil {
		t.Fatal("no validation item for net_contents")
	}
	if netContents.Comparison.Status != compare.StatusNotFound {
		t.Errorf("net_contents status = %s, want not_found", netContents.Comparison.Status)
	}
}

func TestProcessLabelTimeout(t *testing.T) {
	ocr := &fakeOCR{block: true}
	classify := &fakeClassifier{}
	fx := newFixture(t, ocr, classify, common.VerifyConfig{}, 30*time.Millisecond)

	_, _, err := fx.proc.ProcessLabel(context.Background(), fx.labelID, Options{})
	if !errors.Is(err, common.ErrExternalTimeout) {
		t.Fatalf("err = %v, want ErrExternalTimeout", err)
	}

	// The reset runs fire-and-forget on a fresh context; poll for it.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if fx.labels.status(fx.labelID) == constants.LabelStatusPending {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("label status = %s, want reset to pending", fx.labels.status(fx.labelID))
}

func TestProcessLabelClassifierError(t *testing.T) {
	ocr := &fakeOCR{result: labelWords("OLD", "TAVERN")}
	classify := &fakeClassifier{err: errors.New("provider unavailable")}
	fx := newFixture(t, ocr, classify, common.VerifyConfig{}, time.Minute)

	_, _, err := fx.proc.ProcessLabel(context.Background(), fx.labelID, Options{})
	if err == nil {
		t.Fatal("want error from classifier")
	}
	if errors.Is(err, common.ErrExternalTimeout) {
		t.Error("non-timeout failure must not be reported as a timeout")
	}
}

func TestProcessBatchPartialFailure(t *testing.T) {
	ocr := &fakeOCR{result: labelWords("OLD", "TAVERN", "750", "mL")}
	classify := &fakeClassifier{result: llm.ClassifyResult{
		Fields: []llm.ClassifiedField{
			classified("brand_name", "OLD TAVERN", 95),
			classified("net_contents", "750 mL", 96),
		},
	}}
	fx := newFixture(t, ocr, classify,
		common.VerifyConfig{AutoApprove: true, AutoApproveThreshold: 85}, time.Minute)

	// A second, broken label: no images.
	broken := &ent.Label{
		ID:                uuid.New(),
		Status:            string(constants.LabelStatusPending),
		BeverageType:      string(constants.Wine),
		ContainerMl:       750,
		ApplicationValues: map[string]string{"brand_name": "Old Tavern"},
	}
	fx.labels.add(broken)

	ids := []uuid.UUID{fx.labelID, broken.ID, fx.labelID}
	results := fx.proc.ProcessBatch(context.Background(), ids, Options{
		Variant: extraction.VariantSubmissionFast,
	}, 2)

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i, r := range results {
		if r.LabelID != ids[i] {
			t.Errorf("results[%d].LabelID = %s, want %s (input order)", i, r.LabelID, ids[i])
		}
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("healthy labels failed: %v, %v", results[0].Err, results[2].Err)
	}
	if results[1].Err == nil {
		t.Error("broken label succeeded, want error")
	}
	if results[0].Decision.Status != constants.LabelStatusApproved {
		t.Errorf("results[0].Status = %s, want approved", results[0].Decision.Status)
	}
}
