package resume

import (
	"testing"

	"github.com/melissa/career-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankMissingByFrequency(t *testing.T) {
	posting := &types.Posting{
		ID:     "job-1",
		Title:  "Spark Engineer",
		Skills: []string{"spark", "Spark", "airflow", "kafka"},
	}

	ranked := rankMissingByFrequency([]string{"kafka", "airflow", "spark"}, posting)
	assert.Equal(t, "spark", ranked[0], "keywords repeated in skills and title rank first")
	assert.Equal(t, []string{"kafka", "airflow"}, ranked[1:], "ties keep their original order")
}

func TestStructureSuggestions(t *testing.T) {
	withSections := "Skills:\ngo\n\nExperience\n- worked"
	assert.Empty(t, structureSuggestions(withSections))

	without := "I am a developer who writes code."
	suggestions := structureSuggestions(without)
	require.Len(t, suggestions, 2)
	for _, s := range suggestions {
		assert.Equal(t, types.SuggestionATSStructure, s.Category)
	}
}

func TestMetricsSuggestions(t *testing.T) {
	quantified := "- Cut latency by 40%\n- Saved $10k per month"
	assert.Empty(t, metricsSuggestions(quantified))

	mixed := "- Cut latency by 40%\n- Improved reliability\n• Led the team"
	suggestions := metricsSuggestions(mixed)
	require.Len(t, suggestions, 1)
	assert.Equal(t, types.SuggestionImpactMetrics, suggestions[0].Category)
	assert.Contains(t, suggestions[0].Description, "2 bullet")
}

func TestClampImpacts(t *testing.T) {
	suggestions := []types.Suggestion{
		{Impact: 3}, {Impact: 3}, {Impact: 3},
	}

	clamped := clampImpacts(suggestions, 4)
	assert.Equal(t, []int{3, 1, 0}, []int{clamped[0].Impact, clamped[1].Impact, clamped[2].Impact})

	clamped = clampImpacts([]types.Suggestion{{Impact: 5}}, -1)
	assert.Equal(t, 0, clamped[0].Impact)
}

func TestKeywordImpact(t *testing.T) {
	assert.Equal(t, 2, keywordImpact(5))
	assert.Equal(t, 1, keywordImpact(20), "impact never drops below one point")
	assert.Equal(t, 10, keywordImpact(0))
}
