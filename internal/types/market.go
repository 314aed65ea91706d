package types

// MarketSample is one raw observation of the job market for a domain/location.
// Salary is an annual figure; DemandIndex and AutomationRisk are 0-10 signals
// supplied by the caller's data source; GrowthRate is a signed percentage.
type MarketSample struct {
	Salary         int      `json:"salary"`
	Skills         []string `json:"skills,omitempty"`
	Remote         bool     `json:"remote,omitempty"`
	DemandIndex    float64  `json:"demand_index,omitempty"`
	AutomationRisk float64  `json:"automation_risk,omitempty"`
	GrowthRate     float64  `json:"growth_rate,omitempty"`
}

// SalaryPercentiles holds nearest-rank order statistics over sample salaries.
// Invariant: P25 <= P50 <= P75.
type SalaryPercentiles struct {
	P25 int `json:"p25"`
	P50 int `json:"p50"`
	P75 int `json:"p75"`
}

// NegotiationRange is the suggested salary negotiation band derived from the percentiles
type NegotiationRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// SkillDemand records how often a skill appeared across market samples
type SkillDemand struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// MarketInsight is the synthesized view of a domain/location market.
// SecurityScore is clamped to [0,10] and GrowthRate to [-100,100] even when
// raw inputs exceed those ranges.
type MarketInsight struct {
	Domain        string            `json:"domain"`
	Location      string            `json:"location"`
	SampleSize    int               `json:"sample_size"`
	Percentiles   SalaryPercentiles `json:"salary_percentiles"`
	SecurityScore float64           `json:"security_score"`
	GrowthRate    float64           `json:"growth_rate"`
	TopSkills     []SkillDemand     `json:"top_skills"`
	Negotiation   NegotiationRange  `json:"negotiation_range"`
	RemoteShare   float64           `json:"remote_share"` // fraction of samples marked remote
}
