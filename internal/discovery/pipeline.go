package discovery

import (
	"context"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/melissa/career-advisor/internal/scoring"
	"github.com/melissa/career-advisor/internal/types"
)

// DefaultNotifyThreshold is the minimum aggregate score for a result to be
// included in the actionable subset.
const DefaultNotifyThreshold = 70

// Options configures a discovery pipeline
type Options struct {
	// NotifyThreshold is the minimum score for the actionable subset.
	// Zero means DefaultNotifyThreshold.
	NotifyThreshold int
	// Workers bounds the concurrent scoring pool. Zero means GOMAXPROCS.
	Workers int
	// AllowPartial controls cancellation semantics: when set, a cancelled run
	// returns the results scored so far marked Incomplete alongside ctx.Err();
	// otherwise partial results are discarded and only the error is returned.
	AllowPartial bool
}

// Pipeline deduplicates, scores, and ranks batches of postings for a profile.
// It is stateless and idempotent: the caller owns persistence of the seen-set.
type Pipeline struct {
	scorer *scoring.Scorer
	opts   Options
	log    *zap.Logger
}

// NewPipeline creates a discovery pipeline around the given scorer
func NewPipeline(scorer *scoring.Scorer, opts Options, log *zap.Logger) *Pipeline {
	if opts.NotifyThreshold <= 0 {
		opts.NotifyThreshold = DefaultNotifyThreshold
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{scorer: scorer, opts: opts, log: log}
}

// scoredSlot holds the outcome of scoring one candidate posting.
// Slots are index-addressed so workers never contend on shared state.
type scoredSlot struct {
	result  *types.CompatibilityResult
	skipped *types.SkippedPosting
}

// Discover scores the batch against the profile and returns the ranked
// results plus the identifiers newly surfaced in this call.
//
// Postings already in alreadySeen or duplicated within the batch are dropped.
// A posting that fails scoring is excluded and recorded as a skipped entry;
// the batch never aborts on one bad record. When any posting was skipped the
// returned error is a *PartialBatchFailure and the results are still valid.
func (p *Pipeline) Discover(
	ctx context.Context,
	profile *types.Profile,
	postings []types.Posting,
	alreadySeen map[string]struct{},
) (*types.RankedDiscovery, []string, error) {
	if err := profile.Validate(); err != nil {
		return nil, nil, err
	}

	candidates := p.dedupe(postings, alreadySeen)

	slots := make([]scoredSlot, len(candidates))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for i := range candidates {
		g.Go(func() error {
			// Cancellation is checked between posting evaluations.
			if err := gCtx.Err(); err != nil {
				return err
			}

			posting := &candidates[i]
			result, err := p.scorer.Score(profile, posting)
			if err != nil {
				p.log.Warn("posting skipped",
					zap.String("posting_id", posting.ID),
					zap.Error(err))
				slots[i] = scoredSlot{skipped: &types.SkippedPosting{
					PostingID: posting.ID,
					Reason:    err.Error(),
				}}
				return nil
			}
			slots[i] = scoredSlot{result: result}
			return nil
		})
	}

	waitErr := g.Wait()
	if waitErr != nil && !p.opts.AllowPartial {
		return nil, nil, waitErr
	}

	discovery := &types.RankedDiscovery{Incomplete: waitErr != nil}
	var newlySeen []string
	for _, slot := range slots {
		switch {
		case slot.result != nil:
			discovery.Results = append(discovery.Results, *slot.result)
			newlySeen = append(newlySeen, slot.result.PostingID)
		case slot.skipped != nil:
			discovery.Skipped = append(discovery.Skipped, *slot.skipped)
		}
	}

	sortResults(discovery.Results)
	sort.Strings(newlySeen)

	for _, result := range discovery.Results {
		if result.Score >= p.opts.NotifyThreshold {
			discovery.Actionable = append(discovery.Actionable, result)
		}
	}

	p.log.Info("discovery batch complete",
		zap.String("profile_id", profile.ID),
		zap.Int("candidates", len(candidates)),
		zap.Int("ranked", len(discovery.Results)),
		zap.Int("actionable", len(discovery.Actionable)),
		zap.Int("skipped", len(discovery.Skipped)),
		zap.Bool("incomplete", discovery.Incomplete))

	if waitErr != nil {
		return discovery, newlySeen, waitErr
	}
	if len(discovery.Skipped) > 0 {
		return discovery, newlySeen, &PartialBatchFailure{Skipped: discovery.Skipped}
	}
	return discovery, newlySeen, nil
}

// dedupe drops postings already surfaced to the user and duplicate
// identifiers within the batch, preserving batch order.
func (p *Pipeline) dedupe(postings []types.Posting, alreadySeen map[string]struct{}) []types.Posting {
	inBatch := make(map[string]struct{}, len(postings))
	candidates := make([]types.Posting, 0, len(postings))
	for _, posting := range postings {
		if posting.ID != "" {
			if _, seen := alreadySeen[posting.ID]; seen {
				continue
			}
			if _, dup := inBatch[posting.ID]; dup {
				continue
			}
			inBatch[posting.ID] = struct{}{}
		}
		candidates = append(candidates, posting)
	}
	return candidates
}

// sortResults orders results by score descending, then by more recent posted
// timestamp, then by posting identifier ascending for full determinism.
func sortResults(results []types.CompatibilityResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if !results[i].PostedAt.Equal(results[j].PostedAt) {
			return results[i].PostedAt.After(results[j].PostedAt)
		}
		return results[i].PostingID < results[j].PostingID
	})
}
