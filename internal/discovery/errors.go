// Package discovery provides the batch discovery pipeline: dedup, concurrent
// scoring, deterministic ranking, and notify-threshold filtering.
package discovery

import (
	"fmt"

	"github.com/melissa/career-advisor/internal/types"
)

// PartialBatchFailure reports that one or more postings in a batch were
// skipped while the batch overall succeeded. It is always recoverable: the
// ranked results accompany it and skipped entries carry per-item reasons so
// callers can audit why a posting didn't appear.
type PartialBatchFailure struct {
	Skipped []types.SkippedPosting
}

func (e *PartialBatchFailure) Error() string {
	return fmt.Sprintf("%d posting(s) skipped during discovery", len(e.Skipped))
}
