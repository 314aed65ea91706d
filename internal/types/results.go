package types

import "time"

// FactorScores holds the per-factor compatibility subscores, each on a 0-100 scale
type FactorScores struct {
	SkillOverlap  int `json:"skill_overlap"`
	SalaryFit     int `json:"salary_fit"`
	LocationFit   int `json:"location_fit"`
	ExperienceFit int `json:"experience_fit"`
}

// CompatibilityResult represents the scored fit between one profile and one posting.
// Score is a declared weighted combination of the factor subscores and is
// deterministic for identical inputs.
type CompatibilityResult struct {
	PostingID     string       `json:"posting_id"`
	Score         int          `json:"score"` // 0-100 aggregate
	Factors       FactorScores `json:"factors"`
	MatchedSkills []string     `json:"matched_skills,omitempty"`
	Reasons       []string     `json:"reasons,omitempty"`
	UrgencyScore  int          `json:"urgency_score"` // advisory, based on posting age; not part of the aggregate
	PostedAt      time.Time    `json:"posted_at"`
}

// SkippedPosting records a posting excluded from a discovery batch and why
type SkippedPosting struct {
	PostingID string `json:"posting_id"`
	Reason    string `json:"reason"`
}

// RankedDiscovery is the ordered output of a discovery run.
// Results holds every scored posting, highest score first, ties broken by more
// recent posted timestamp and then by identifier. Actionable is the subset at
// or above the notify threshold; the two are returned separately so "show
// everything" and "notify on these" callers are not conflated.
type RankedDiscovery struct {
	Results    []CompatibilityResult `json:"results"`
	Actionable []CompatibilityResult `json:"actionable"`
	Skipped    []SkippedPosting      `json:"skipped,omitempty"`
	Incomplete bool                  `json:"incomplete,omitempty"` // set when a cancelled run returns partial results
}

// SuggestionCategory tags the kind of resume improvement a suggestion describes
type SuggestionCategory string

const (
	SuggestionKeywordGap    SuggestionCategory = "keyword-gap"
	SuggestionATSStructure  SuggestionCategory = "ats-structure"
	SuggestionImpactMetrics SuggestionCategory = "impact-metrics"
)

// Suggestion is a single resume improvement action with its estimated score impact
type Suggestion struct {
	Category    SuggestionCategory `json:"category"`
	Description string             `json:"description"`
	Impact      int                `json:"impact"` // estimated ATS points gained
}

// ResumeOptimizationResult holds the ATS scoring and gap analysis for one
// (resume, posting) pair. RevisedATSScore is populated only when the caller
// supplies edited resume text in a follow-up rescore; the engine never
// fabricates an improved document itself.
type ResumeOptimizationResult struct {
	ATSScore        int          `json:"ats_score"` // 0-10
	RevisedATSScore *int         `json:"revised_ats_score,omitempty"`
	Suggestions     []Suggestion `json:"suggestions"`
	MatchedKeywords []string     `json:"matched_keywords"`
	MissingKeywords []string     `json:"missing_keywords"`
}
