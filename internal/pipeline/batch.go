package pipeline

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/labelcheck/labelcheck/internal/status"
)

// BatchResult is the outcome for one label in a batch run. Err is nil on
// success; a failed item never aborts its siblings.
type BatchResult struct {
	LabelID  uuid.UUID
	JobID    uuid.UUID
	Decision status.Decision
	Err      error
}

// ProcessBatch verifies many labels through a bounded worker pool.
// Concurrency caps simultaneous calls to the external collaborators; each
// label's pipeline execution is independent. Results come back in input
// order.
func (p *Processor) ProcessBatch(ctx context.Context, labelIDs []uuid.UUID, opts Options, concurrency int) []BatchResult {
	if concurrency <= 0 {
		concurrency = 4
	}
	if concurrency > len(labelIDs) {
		concurrency = len(labelIDs)
	}

	results := make([]BatchResult, len(labelIDs))
	work := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				id := labelIDs[i]
				jobID, decision, err := p.ProcessLabel(ctx, id, opts)
				results[i] = BatchResult{LabelID: id, JobID: jobID, Decision: decision, Err: err}
			}
		}()
	}

	for i := range labelIDs {
		select {
		case work <- i:
		case <-ctx.Done():
			results[i] = BatchResult{LabelID: labelIDs[i], Err: ctx.Err()}
		}
	}
	close(work)
	wg.Wait()

	succeeded, failed := 0, 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		} else {
			succeeded++
		}
	}
	p.Logger.Info("processor.batch.done",
		"total", len(labelIDs), "succeeded", succeeded, "failed", failed,
		"concurrency", concurrency)

	return results
}
