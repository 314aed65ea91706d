// Package resume scores resume text against a target posting and identifies
// improvement actions. It never rewrites the resume itself; turning the
// suggestions into prose is delegated to an external text-generation
// collaborator.
package resume

import (
	"math"

	"github.com/melissa/career-advisor/internal/parsing"
	"github.com/melissa/career-advisor/internal/types"
)

// maxATSScore is the top of the ATS score scale
const maxATSScore = 10

// Optimize computes the ATS compatibility score for a (resume, posting) pair
// and a ranked list of suggested edits. The posting's skill tokens are the
// required keyword set; tokenization is shared with the compatibility scorer
// so scores stay comparable across components.
func Optimize(resumeText string, posting *types.Posting) (*types.ResumeOptimizationResult, error) {
	if err := posting.Validate(); err != nil {
		return nil, err
	}

	required := parsing.NormalizeSkillTokens(posting.Skills)
	matched, missing := splitKeywords(resumeText, required)

	baseline := atsScore(len(matched), len(required))

	result := &types.ResumeOptimizationResult{
		ATSScore:        baseline,
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}
	result.Suggestions = buildSuggestions(resumeText, posting, missing, maxATSScore-baseline)
	return result, nil
}

// Rescore fills RevisedATSScore from caller-edited resume text.
// The optimizer never fabricates the improved document; the edited text must
// come from the caller (typically after applying suggestions via an external
// generator).
func Rescore(result *types.ResumeOptimizationResult, revisedText string, posting *types.Posting) error {
	if result == nil {
		return &types.InvalidInputError{Field: "result", Message: "optimization result is nil"}
	}
	if err := posting.Validate(); err != nil {
		return err
	}

	required := parsing.NormalizeSkillTokens(posting.Skills)
	matched, _ := splitKeywords(revisedText, required)

	revised := atsScore(len(matched), len(required))
	result.RevisedATSScore = &revised
	return nil
}

// atsScore maps a matched/required keyword ratio onto the 0-10 ATS scale
func atsScore(matched, required int) int {
	if required < 1 {
		required = 1
	}
	score := int(math.Round(maxATSScore * float64(matched) / float64(required)))
	if score > maxATSScore {
		score = maxATSScore
	}
	return score
}

// splitKeywords partitions the required keywords into those present in the
// resume text and those missing, preserving the required-keyword order.
func splitKeywords(resumeText string, required []string) (matched, missing []string) {
	matched = make([]string, 0, len(required))
	missing = make([]string, 0, len(required))
	for _, keyword := range required {
		if parsing.ContainsKeyword(resumeText, keyword) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	return matched, missing
}
