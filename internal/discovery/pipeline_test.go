package discovery

import (
	"context"
	"testing"
	"time"

	"github.com/melissa/career-advisor/internal/scoring"
	"github.com/melissa/career-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func testProfile() *types.Profile {
	return &types.Profile{
		ID:              "user-1",
		Skills:          []string{"python", "aws"},
		TargetLocations: []string{"Remote"},
		MinSalary:       100000,
		Experience:      types.ExperienceMid,
	}
}

func testPosting(id string, skills []string, postedAt time.Time) types.Posting {
	return types.Posting{
		ID:       id,
		Title:    "Software Engineer",
		Skills:   skills,
		Salary:   &types.SalaryRange{Min: 110000, Max: 150000},
		Remote:   true,
		PostedAt: postedAt,
	}
}

func newTestPipeline(t *testing.T, opts Options) *Pipeline {
	t.Helper()
	scorer, err := scoring.NewScorer(scoring.DefaultWeights())
	require.NoError(t, err)
	return NewPipeline(scorer, opts, nil)
}

func TestDiscover_EmptyBatch(t *testing.T) {
	p := newTestPipeline(t, Options{})

	result, newlySeen, err := p.Discover(context.Background(), testProfile(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.Empty(t, result.Actionable)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, newlySeen)
}

func TestDiscover_RanksAndFilters(t *testing.T) {
	p := newTestPipeline(t, Options{NotifyThreshold: 70})
	postings := []types.Posting{
		testPosting("job-strong", []string{"python", "aws"}, testNow.AddDate(0, 0, -1)),
		{ID: "job-weak", Title: "Accountant", Skills: []string{"excel", "sap", "audit"}, PostedAt: testNow.AddDate(0, 0, -2)},
		testPosting("job-partial", []string{"python", "aws", "react", "terraform"}, testNow.AddDate(0, 0, -3)),
	}

	result, newlySeen, err := p.Discover(context.Background(), testProfile(), postings, nil)
	require.NoError(t, err)
	require.Len(t, result.Results, 3)

	assert.Equal(t, "job-strong", result.Results[0].PostingID)
	assert.Equal(t, "job-weak", result.Results[2].PostingID)

	// The full list and the actionable subset are separate outputs.
	assert.NotEmpty(t, result.Actionable)
	assert.Less(t, len(result.Actionable), len(result.Results))
	for _, r := range result.Actionable {
		assert.GreaterOrEqual(t, r.Score, 70)
	}

	assert.Equal(t, []string{"job-partial", "job-strong", "job-weak"}, newlySeen)
}

func TestDiscover_DeterministicTieBreaks(t *testing.T) {
	p := newTestPipeline(t, Options{})
	older := testNow.AddDate(0, 0, -10)
	newer := testNow.AddDate(0, 0, -2)

	// Identical content apart from ID and posted time yields identical scores.
	postings := []types.Posting{
		testPosting("job-b", []string{"python"}, older),
		testPosting("job-a", []string{"python"}, older),
		testPosting("job-c", []string{"python"}, newer),
	}

	for i := 0; i < 3; i++ {
		result, _, err := p.Discover(context.Background(), testProfile(), postings, nil)
		require.NoError(t, err)
		require.Len(t, result.Results, 3)
		assert.Equal(t, "job-c", result.Results[0].PostingID, "more recent posting ranks first on ties")
		assert.Equal(t, "job-a", result.Results[1].PostingID, "identifier breaks remaining ties")
		assert.Equal(t, "job-b", result.Results[2].PostingID)
	}
}

func TestDiscover_IdempotentWithSeenSet(t *testing.T) {
	p := newTestPipeline(t, Options{})
	postings := []types.Posting{
		testPosting("job-1", []string{"python"}, testNow),
		testPosting("job-2", []string{"aws"}, testNow),
	}

	seen := map[string]struct{}{}
	first, newlySeen, err := p.Discover(context.Background(), testProfile(), postings, seen)
	require.NoError(t, err)
	assert.Len(t, first.Results, 2)
	assert.Len(t, newlySeen, 2)

	for _, id := range newlySeen {
		seen[id] = struct{}{}
	}

	second, newlySeen, err := p.Discover(context.Background(), testProfile(), postings, seen)
	require.NoError(t, err)
	assert.Empty(t, second.Results, "an unchanged batch yields nothing new the second time")
	assert.Empty(t, newlySeen)
}

func TestDiscover_DeduplicatesWithinBatch(t *testing.T) {
	p := newTestPipeline(t, Options{})
	postings := []types.Posting{
		testPosting("job-1", []string{"python"}, testNow),
		testPosting("job-1", []string{"python"}, testNow),
	}

	result, _, err := p.Discover(context.Background(), testProfile(), postings, nil)
	require.NoError(t, err)
	assert.Len(t, result.Results, 1)
}

func TestDiscover_SkipsMalformedPostings(t *testing.T) {
	p := newTestPipeline(t, Options{})
	postings := []types.Posting{
		testPosting("job-good", []string{"python"}, testNow),
		{Title: "No identifier"},
		{ID: "job-bad-salary", Salary: &types.SalaryRange{Min: 100, Max: 1}},
	}

	result, newlySeen, err := p.Discover(context.Background(), testProfile(), postings, nil)
	require.Error(t, err)

	var partial *PartialBatchFailure
	require.ErrorAs(t, err, &partial)
	assert.Len(t, partial.Skipped, 2)

	require.Len(t, result.Results, 1)
	assert.Equal(t, "job-good", result.Results[0].PostingID)
	assert.Equal(t, []string{"job-good"}, newlySeen, "skipped postings are not marked seen")

	for _, skipped := range result.Skipped {
		assert.NotEmpty(t, skipped.Reason)
	}
}

func TestDiscover_CancelledContext(t *testing.T) {
	p := newTestPipeline(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	postings := []types.Posting{testPosting("job-1", []string{"python"}, testNow)}
	result, newlySeen, err := p.Discover(ctx, testProfile(), postings, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
	assert.Nil(t, newlySeen)
}

func TestDiscover_CancelledContextAllowPartial(t *testing.T) {
	p := newTestPipeline(t, Options{AllowPartial: true})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	postings := []types.Posting{testPosting("job-1", []string{"python"}, testNow)}
	result, _, err := p.Discover(ctx, testProfile(), postings, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.True(t, result.Incomplete, "partial results are explicitly marked incomplete")
}

func TestDiscover_InvalidProfile(t *testing.T) {
	p := newTestPipeline(t, Options{})

	_, _, err := p.Discover(context.Background(), &types.Profile{}, nil, nil)
	require.Error(t, err)
	var invalid *types.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}
