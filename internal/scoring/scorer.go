// Package scoring provides the multi-factor compatibility scorer for
// (profile, posting) pairs. Scores are deterministic: identical inputs always
// produce an identical CompatibilityResult.
package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/melissa/career-advisor/internal/types"
)

// Default weights for the aggregate score. These are a declared policy, not a
// per-call knob: keeping them fixed makes scores comparable across postings
// and across time.
const (
	defaultSkillWeight      = 0.4
	defaultSalaryWeight     = 0.25
	defaultLocationWeight   = 0.2
	defaultExperienceWeight = 0.15

	weightTolerance = 1e-9
)

// Weights holds the factor weights for the aggregate compatibility score.
// The four weights must sum to 1.0.
type Weights struct {
	Skill      float64 `json:"skill"`
	Salary     float64 `json:"salary"`
	Location   float64 `json:"location"`
	Experience float64 `json:"experience"`
}

// DefaultWeights returns the declared default scoring policy
func DefaultWeights() Weights {
	return Weights{
		Skill:      defaultSkillWeight,
		Salary:     defaultSalaryWeight,
		Location:   defaultLocationWeight,
		Experience: defaultExperienceWeight,
	}
}

// Validate checks that all weights are non-negative and sum to 1.0
func (w Weights) Validate() error {
	if w.Skill < 0 || w.Salary < 0 || w.Location < 0 || w.Experience < 0 {
		return fmt.Errorf("scoring weights must be non-negative: %+v", w)
	}
	sum := w.Skill + w.Salary + w.Location + w.Experience
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("scoring weights must sum to 1.0, got %.6f", sum)
	}
	return nil
}

// Scorer scores postings against a profile using a fixed weight policy
type Scorer struct {
	weights Weights
	now     func() time.Time // injectable for deterministic urgency scoring in tests
}

// NewScorer creates a Scorer with the given weights.
// Returns an error if the weights do not sum to 1.0.
func NewScorer(weights Weights) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: weights, now: time.Now}, nil
}

// Weights returns the scorer's weight policy
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score computes the compatibility between a profile and a posting.
// Missing optional posting fields degrade gracefully (absent salary range
// scores neutral, empty skill list scores zero overlap); only a malformed
// required field returns an InvalidInputError.
func (s *Scorer) Score(profile *types.Profile, posting *types.Posting) (*types.CompatibilityResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := posting.Validate(); err != nil {
		return nil, err
	}

	skillScore, matched := computeSkillOverlap(profile.Skills, posting.Skills)
	salaryScore := computeSalaryFit(profile.MinSalary, posting.Salary)
	locationScore := computeLocationFit(profile.TargetLocations, posting.Location, posting.Remote)
	experienceScore := computeExperienceFit(profile.Experience, DetectPostingLevel(posting.Title))

	aggregate := s.weights.Skill*float64(skillScore) +
		s.weights.Salary*float64(salaryScore) +
		s.weights.Location*float64(locationScore) +
		s.weights.Experience*float64(experienceScore)

	score := int(math.Round(aggregate))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	factors := types.FactorScores{
		SkillOverlap:  skillScore,
		SalaryFit:     salaryScore,
		LocationFit:   locationScore,
		ExperienceFit: experienceScore,
	}

	return &types.CompatibilityResult{
		PostingID:     posting.ID,
		Score:         score,
		Factors:       factors,
		MatchedSkills: matched,
		Reasons:       buildReasons(factors, matched, posting),
		UrgencyScore:  urgencyScore(posting.PostedAt, s.now()),
		PostedAt:      posting.PostedAt,
	}, nil
}
