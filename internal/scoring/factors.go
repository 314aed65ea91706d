package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/melissa/career-advisor/internal/parsing"
	"github.com/melissa/career-advisor/internal/types"
)

// salaryShortfallLimit is the fraction by which a posting's max salary may
// fall below the profile minimum before the salary-fit term reaches zero.
const salaryShortfallLimit = 0.3

// locationRankPenalty is the score deducted per preference rank below the top
const locationRankPenalty = 25

// computeSkillOverlap returns the skill overlap subscore (0-100) and the list
// of matched normalized skills. The denominator is the posting's skill count,
// so an empty posting skill list scores zero rather than dividing by zero.
func computeSkillOverlap(profileSkills, postingSkills []string) (int, []string) {
	required := parsing.NormalizeSkillTokens(postingSkills)
	if len(required) == 0 {
		return 0, nil
	}

	have := parsing.SkillSet(profileSkills)
	matched := make([]string, 0, len(required))
	for _, skill := range required {
		if have[skill] {
			matched = append(matched, skill)
		}
	}

	score := int(math.Round(100 * float64(len(matched)) / float64(len(required))))
	return score, matched
}

// computeSalaryFit returns the salary-fit subscore (0-100). An absent salary
// range is neutral (50). The score is 100 whenever the posting max covers the
// profile minimum and decays linearly to 0 as the posting max falls short by
// up to salaryShortfallLimit of the minimum.
func computeSalaryFit(minSalary int, salary *types.SalaryRange) int {
	if salary == nil {
		return 50
	}
	if minSalary <= 0 || salary.Max >= minSalary {
		return 100
	}

	shortfall := float64(minSalary-salary.Max) / float64(minSalary)
	if shortfall >= salaryShortfallLimit {
		return 0
	}
	return int(math.Round(100 * (1 - shortfall/salaryShortfallLimit)))
}

// computeLocationFit returns the location-fit subscore (0-100). Remote
// postings and top-preference locations score 100; lower-ranked preferences
// decay by locationRankPenalty per rank; no match scores 0.
func computeLocationFit(preferences []string, location string, remote bool) int {
	if remote {
		return 100
	}

	normalized := strings.ToLower(strings.TrimSpace(location))
	if normalized == "" {
		return 0
	}

	for rank, pref := range preferences {
		if strings.ToLower(strings.TrimSpace(pref)) == normalized {
			score := 100 - rank*locationRankPenalty
			if score < 0 {
				return 0
			}
			return score
		}
	}
	return 0
}

// computeExperienceFit returns the experience-fit subscore: 100 for an exact
// level match, 50 for a one-level mismatch, 0 for two levels apart.
func computeExperienceFit(profileLevel, postingLevel types.ExperienceLevel) int {
	switch profileLevel.Distance(postingLevel) {
	case 0:
		return 100
	case 1:
		return 50
	default:
		return 0
	}
}

// DetectPostingLevel infers the seniority level of a posting from its title.
// Titles without a recognizable level marker default to Mid.
func DetectPostingLevel(title string) types.ExperienceLevel {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "senior"),
		strings.Contains(lower, "staff"),
		strings.Contains(lower, "lead"),
		strings.Contains(lower, "principal"):
		return types.ExperienceSenior
	case strings.Contains(lower, "junior"),
		strings.Contains(lower, "entry"),
		strings.Contains(lower, "intern"),
		strings.Contains(lower, "graduate"):
		return types.ExperienceEntry
	default:
		return types.ExperienceMid
	}
}

// urgencyScore rates how quickly an application should go out based on
// posting age: fresh postings see less competition.
func urgencyScore(postedAt, now time.Time) int {
	if postedAt.IsZero() || postedAt.After(now) {
		return 30
	}

	days := int(now.Sub(postedAt).Hours() / 24)
	switch {
	case days <= 3:
		return 90
	case days <= 7:
		return 70
	case days <= 14:
		return 50
	default:
		return 30
	}
}

// buildReasons creates a brief human-readable explanation of the score
func buildReasons(factors types.FactorScores, matched []string, posting *types.Posting) []string {
	var reasons []string

	switch {
	case factors.SkillOverlap >= 70:
		reasons = append(reasons, fmt.Sprintf("Strong skill match (%s)", strings.Join(matched, ", ")))
	case factors.SkillOverlap >= 40:
		reasons = append(reasons, fmt.Sprintf("Moderate skill match (%s)", strings.Join(matched, ", ")))
	case len(matched) > 0:
		reasons = append(reasons, fmt.Sprintf("Weak skill match (%s)", strings.Join(matched, ", ")))
	default:
		reasons = append(reasons, "No skill matches")
	}

	switch {
	case posting.Salary == nil:
		reasons = append(reasons, "No salary information; treated as neutral")
	case factors.SalaryFit == 100:
		reasons = append(reasons, "Salary range meets your minimum")
	case factors.SalaryFit > 0:
		reasons = append(reasons, "Salary range is close to your minimum")
	default:
		reasons = append(reasons, "Salary range is below your minimum")
	}

	if factors.LocationFit == 100 {
		if posting.Remote {
			reasons = append(reasons, "Remote position")
		} else {
			reasons = append(reasons, "Matches your top location preference")
		}
	} else if factors.LocationFit == 0 {
		reasons = append(reasons, "Location matches none of your preferences")
	}

	if factors.ExperienceFit == 100 {
		reasons = append(reasons, "Experience level is a good match")
	}

	return reasons
}
