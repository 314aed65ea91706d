package market

import (
	"sort"

	"github.com/melissa/career-advisor/internal/parsing"
	"github.com/melissa/career-advisor/internal/types"
)

const (
	// minSamples is the smallest sample set a synthesis will accept
	minSamples = 1

	// topSkillCount caps the in-demand skill ranking
	topSkillCount = 10

	// Security score combination: demand signals and automation stability
	// (10 minus automation risk) contribute equally.
	demandWeight    = 0.5
	stabilityWeight = 0.5

	securityScoreMin = 0.0
	securityScoreMax = 10.0
	growthRateMin    = -100.0
	growthRateMax    = 100.0
)

// Synthesize aggregates raw market samples into a MarketInsight.
// At least one sample is required; zero samples return an
// InsufficientDataError rather than a fabricated record. Out-of-range risk
// and demand inputs are clamped, never rejected.
func Synthesize(domain, location string, samples []types.MarketSample) (*types.MarketInsight, error) {
	if len(samples) < minSamples {
		return nil, &InsufficientDataError{Needed: minSamples, Got: len(samples)}
	}

	salaries := make([]int, 0, len(samples))
	remoteCount := 0
	var demandSum, riskSum, growthSum float64
	for _, sample := range samples {
		salaries = append(salaries, sample.Salary)
		if sample.Remote {
			remoteCount++
		}
		demandSum += clamp(sample.DemandIndex, 0, 10)
		riskSum += clamp(sample.AutomationRisk, 0, 10)
		growthSum += sample.GrowthRate
	}

	n := float64(len(samples))
	security := demandWeight*(demandSum/n) + stabilityWeight*(10-riskSum/n)

	percentiles := types.SalaryPercentiles{
		P25: nearestRank(salaries, 25),
		P50: nearestRank(salaries, 50),
		P75: nearestRank(salaries, 75),
	}

	return &types.MarketInsight{
		Domain:        domain,
		Location:      location,
		SampleSize:    len(samples),
		Percentiles:   percentiles,
		SecurityScore: clamp(security, securityScoreMin, securityScoreMax),
		GrowthRate:    clamp(growthSum/n, growthRateMin, growthRateMax),
		TopSkills:     topSkills(samples),
		Negotiation:   types.NegotiationRange{Low: percentiles.P50, High: percentiles.P75},
		RemoteShare:   float64(remoteCount) / n,
	}, nil
}

// nearestRank returns the p-th percentile of values using the nearest-rank
// order-statistic method. The input slice is not modified.
func nearestRank(values []int, p int) int {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	rank := (p*len(sorted) + 99) / 100 // ceil(p/100 * n)
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// topSkills counts normalized skill tokens across all samples that carry
// skill lists and returns the most frequent, ties broken alphabetically.
func topSkills(samples []types.MarketSample) []types.SkillDemand {
	counts := make(map[string]int)
	for _, sample := range samples {
		// Dedup within a sample so one listing can't vote twice.
		for _, skill := range parsing.NormalizeSkillTokens(sample.Skills) {
			counts[skill]++
		}
	}

	ranked := make([]types.SkillDemand, 0, len(counts))
	for skill, count := range counts {
		ranked = append(ranked, types.SkillDemand{Skill: skill, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Skill < ranked[j].Skill
	})

	if len(ranked) > topSkillCount {
		ranked = ranked[:topSkillCount]
	}
	return ranked
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
