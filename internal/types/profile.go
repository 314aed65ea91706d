// Package types provides type definitions for structured data used throughout the career-advisor engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceLevel represents a candidate or posting seniority level
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

// levelRank maps experience levels to ordinal positions for distance calculations
var levelRank = map[ExperienceLevel]int{
	ExperienceEntry:  0,
	ExperienceMid:    1,
	ExperienceSenior: 2,
}

// Valid reports whether the experience level is one of the known values
func (l ExperienceLevel) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

// Distance returns the number of levels between two experience levels (0, 1, or 2).
// Unknown levels are treated as Mid.
func (l ExperienceLevel) Distance(other ExperienceLevel) int {
	a, ok := levelRank[l]
	if !ok {
		a = levelRank[ExperienceMid]
	}
	b, ok := levelRank[other]
	if !ok {
		b = levelRank[ExperienceMid]
	}
	if a > b {
		return a - b
	}
	return b - a
}

// UrgencyTier classifies how soon a user needs job-search results
type UrgencyTier string

const (
	TierUrgent    UrgencyTier = "urgent"
	TierPlanning  UrgencyTier = "planning"
	TierStrategic UrgencyTier = "strategic"
)

// Strategy is the timeline-derived job-search strategy attached to a profile
type Strategy struct {
	Tier            UrgencyTier `json:"tier"`
	Name            string      `json:"name"`
	Summary         string      `json:"summary"`
	MonthsRemaining int         `json:"months_remaining"`
}

// Profile represents a candidate profile supplied by the caller.
// The engine never mutates a profile in place; WithStrategy returns a tagged copy.
type Profile struct {
	ID              string          `json:"id" validate:"required"`
	Skills          []string        `json:"skills"`
	TargetDomain    string          `json:"target_domain,omitempty"`
	TargetLocations []string        `json:"target_locations,omitempty"` // ordered by preference
	MinSalary       int             `json:"min_salary,omitempty"`
	Experience      ExperienceLevel `json:"experience_level" validate:"required"`
	Strategy        *Strategy       `json:"strategy,omitempty"`
}

// Validate checks that the profile carries the required fields
func (p *Profile) Validate() error {
	if p == nil {
		return &InvalidInputError{Field: "profile", Message: "profile is nil"}
	}
	if p.ID == "" {
		return &InvalidInputError{Field: "id", Message: "profile identifier is required"}
	}
	if p.Experience != "" && !p.Experience.Valid() {
		return &InvalidInputError{Field: "experience_level", Message: "unknown experience level: " + string(p.Experience)}
	}
	return nil
}

// WithStrategy returns a copy of the profile tagged with the given strategy.
// The receiver is left untouched.
func (p Profile) WithStrategy(s Strategy) Profile {
	tagged := p
	tagged.Skills = append([]string(nil), p.Skills...)
	tagged.TargetLocations = append([]string(nil), p.TargetLocations...)
	tagged.Strategy = &s
	return tagged
}
