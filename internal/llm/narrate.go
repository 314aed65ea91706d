package llm

import (
	"fmt"
	"strings"

	"github.com/melissa/career-advisor/internal/types"
)

// maxNarratedResults caps how many ranked results a discovery prompt includes
const maxNarratedResults = 5

// BuildDiscoveryPrompt renders a ranked discovery into a prompt asking for a
// short narrative summary. The prompt carries only the engine's structured
// output; the model is never asked to invent scores or postings.
func BuildDiscoveryPrompt(profile *types.Profile, discovery *types.RankedDiscovery) string {
	var sb strings.Builder

	sb.WriteString("You are a career advisor. Summarize the following job matches for the candidate in plain language.\n")
	sb.WriteString("Do not invent postings or change any score; explain what is already there.\n\n")
	fmt.Fprintf(&sb, "Candidate skills: %s\n", strings.Join(profile.Skills, ", "))
	if profile.Strategy != nil {
		fmt.Fprintf(&sb, "Search strategy: %s (%s)\n", profile.Strategy.Name, profile.Strategy.Tier)
	}

	sb.WriteString("\nRanked matches:\n")
	for i, result := range discovery.Results {
		if i >= maxNarratedResults {
			break
		}
		fmt.Fprintf(&sb, "%d. posting %s, score %d/100, matched skills: %s, reasons: %s\n",
			i+1, result.PostingID, result.Score,
			strings.Join(result.MatchedSkills, ", "),
			strings.Join(result.Reasons, "; "))
	}

	if len(discovery.Skipped) > 0 {
		fmt.Fprintf(&sb, "\n%d posting(s) were skipped due to malformed data.\n", len(discovery.Skipped))
	}
	return sb.String()
}

// BuildOptimizationPrompt renders a resume optimization result into a prompt
// asking for prose guidance on applying the suggested edits.
func BuildOptimizationPrompt(result *types.ResumeOptimizationResult, posting *types.Posting) string {
	var sb strings.Builder

	sb.WriteString("You are a resume coach. Turn the following structured suggestions into short, actionable advice.\n")
	sb.WriteString("Never fabricate experience the candidate does not claim.\n\n")
	fmt.Fprintf(&sb, "Target posting: %s at %s\n", posting.Title, posting.Company)
	fmt.Fprintf(&sb, "Current ATS score: %d/10\n", result.ATSScore)
	fmt.Fprintf(&sb, "Missing keywords: %s\n", strings.Join(result.MissingKeywords, ", "))

	sb.WriteString("\nSuggested edits (ranked by estimated impact):\n")
	for _, s := range result.Suggestions {
		fmt.Fprintf(&sb, "- [%s, +%d] %s\n", s.Category, s.Impact, s.Description)
	}
	return sb.String()
}

// BuildInsightPrompt renders a market insight into a prompt asking for a
// strategic narrative for the given domain and location.
func BuildInsightPrompt(insight *types.MarketInsight) string {
	var sb strings.Builder

	sb.WriteString("You are a labor-market analyst. Explain this market snapshot to a job seeker.\n\n")
	fmt.Fprintf(&sb, "Domain: %s, location: %s (%d samples)\n", insight.Domain, insight.Location, insight.SampleSize)
	fmt.Fprintf(&sb, "Salary percentiles: p25=%d p50=%d p75=%d\n",
		insight.Percentiles.P25, insight.Percentiles.P50, insight.Percentiles.P75)
	fmt.Fprintf(&sb, "Suggested negotiation band: %d-%d\n", insight.Negotiation.Low, insight.Negotiation.High)
	fmt.Fprintf(&sb, "Job security score: %.1f/10, growth rate: %+.1f%%, remote share: %.0f%%\n",
		insight.SecurityScore, insight.GrowthRate, insight.RemoteShare*100)

	if len(insight.TopSkills) > 0 {
		sb.WriteString("In-demand skills: ")
		names := make([]string, len(insight.TopSkills))
		for i, s := range insight.TopSkills {
			names[i] = s.Skill
		}
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}
