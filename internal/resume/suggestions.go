package resume

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/melissa/career-advisor/internal/parsing"
	"github.com/melissa/career-advisor/internal/types"
)

// sectionHeaders are the resume sections ATS filters commonly look for
var sectionHeaders = []string{"skills", "experience"}

// buildSuggestions produces the ordered improvement list: keyword gaps first
// (highest estimated impact), then structural heuristics, then quantification
// heuristics. Estimated impacts are clamped so their sum never exceeds the
// remaining headroom to a perfect ATS score.
func buildSuggestions(resumeText string, posting *types.Posting, missing []string, headroom int) []types.Suggestion {
	var suggestions []types.Suggestion

	perKeyword := keywordImpact(len(parsing.NormalizeSkillTokens(posting.Skills)))
	for _, keyword := range rankMissingByFrequency(missing, posting) {
		suggestions = append(suggestions, types.Suggestion{
			Category:    types.SuggestionKeywordGap,
			Description: fmt.Sprintf("Add the keyword %q where your experience supports it", keyword),
			Impact:      perKeyword,
		})
	}

	suggestions = append(suggestions, structureSuggestions(resumeText)...)
	suggestions = append(suggestions, metricsSuggestions(resumeText)...)

	return clampImpacts(suggestions, headroom)
}

// keywordImpact estimates the ATS points gained by adding one missing keyword
func keywordImpact(requiredCount int) int {
	if requiredCount < 1 {
		requiredCount = 1
	}
	impact := int(math.Round(float64(maxATSScore) / float64(requiredCount)))
	if impact < 1 {
		impact = 1
	}
	return impact
}

// rankMissingByFrequency orders missing keywords by how often they occur in
// the posting (raw skill list plus title), most frequent first, preserving
// posting order on ties.
func rankMissingByFrequency(missing []string, posting *types.Posting) []string {
	counts := make(map[string]int, len(missing))
	for _, raw := range posting.Skills {
		normalized := parsing.NormalizeSkillToken(raw)
		if normalized != "" {
			counts[normalized]++
		}
	}
	titleLower := strings.ToLower(posting.Title)
	for keyword := range counts {
		if strings.Contains(titleLower, keyword) {
			counts[keyword]++
		}
	}

	ranked := append([]string(nil), missing...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}

// structureSuggestions flags missing resume sections that ATS filters parse
func structureSuggestions(resumeText string) []types.Suggestion {
	lower := strings.ToLower(resumeText)

	var suggestions []types.Suggestion
	for _, header := range sectionHeaders {
		if !hasSectionHeader(lower, header) {
			suggestions = append(suggestions, types.Suggestion{
				Category:    types.SuggestionATSStructure,
				Description: fmt.Sprintf("Add a dedicated %q section so automated filters can locate it", header),
				Impact:      1,
			})
		}
	}
	return suggestions
}

// hasSectionHeader reports whether any line of the resume reads as the given
// section header: a short line containing the header word.
func hasSectionHeader(lowerText, header string) bool {
	for _, line := range strings.Split(lowerText, "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), ":"))
		if strings.Contains(line, header) && len(line) <= len(header)+20 {
			return true
		}
	}
	return false
}

// metricsSuggestions flags bullet lines that carry no quantified outcome
func metricsSuggestions(resumeText string) []types.Suggestion {
	unquantified := 0
	for _, line := range strings.Split(resumeText, "\n") {
		trimmed := strings.TrimSpace(line)
		if !isBulletLine(trimmed) {
			continue
		}
		if !strings.ContainsAny(trimmed, "0123456789") {
			unquantified++
		}
	}

	if unquantified == 0 {
		return nil
	}
	return []types.Suggestion{{
		Category:    types.SuggestionImpactMetrics,
		Description: fmt.Sprintf("Quantify %d bullet point(s) with a concrete number (%%, $, time saved)", unquantified),
		Impact:      1,
	}}
}

// isBulletLine reports whether the line is a resume bullet
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, "•")
}

// clampImpacts walks the ordered suggestions and trims estimated impacts so
// their sum never exceeds the available headroom. Suggestions beyond the
// budget are still reported, with zero estimated impact, so callers see the
// full gap list.
func clampImpacts(suggestions []types.Suggestion, headroom int) []types.Suggestion {
	if headroom < 0 {
		headroom = 0
	}
	remaining := headroom
	for i := range suggestions {
		if suggestions[i].Impact > remaining {
			suggestions[i].Impact = remaining
		}
		remaining -= suggestions[i].Impact
	}
	return suggestions
}
