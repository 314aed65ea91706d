// Package timeline classifies a graduation or availability date into an
// urgency tier and a recommended job-search strategy.
package timeline

import (
	"time"

	"github.com/melissa/career-advisor/internal/types"
)

// Tier thresholds in months remaining. The lower bound of each tier is
// inclusive: exactly 3 months is Planning, exactly 12 months is still Planning.
const (
	urgentBelowMonths  = 3
	planningUpToMonths = 12
)

// strategyByTier is the fixed tier-to-strategy mapping
var strategyByTier = map[types.UrgencyTier]struct {
	name    string
	summary string
}{
	types.TierUrgent: {
		name:    "fast-track",
		summary: "Apply immediately to high-match postings, prioritize interview readiness over new skills.",
	},
	types.TierPlanning: {
		name:    "skill-building",
		summary: "Close the highest-impact skill gaps while applying selectively to strong matches.",
	},
	types.TierStrategic: {
		name:    "market-study",
		summary: "Track market trends and build a long-horizon skill portfolio before applying broadly.",
	},
}

// Classify maps a reference date (graduation/availability) and the current
// time to an urgency tier and its fixed strategy. A reference date in the past
// is valid and always yields the Urgent tier. A zero time on either input
// signals an InvalidInputError.
func Classify(referenceDate, now time.Time) (types.UrgencyTier, types.Strategy, error) {
	if referenceDate.IsZero() {
		return "", types.Strategy{}, &types.InvalidInputError{Field: "reference_date", Message: "reference date is unset"}
	}
	if now.IsZero() {
		return "", types.Strategy{}, &types.InvalidInputError{Field: "now", Message: "current time is unset"}
	}

	months := monthsBetween(now, referenceDate)

	var tier types.UrgencyTier
	switch {
	case months < urgentBelowMonths:
		tier = types.TierUrgent
	case months <= planningUpToMonths:
		tier = types.TierPlanning
	default:
		tier = types.TierStrategic
	}

	fixed := strategyByTier[tier]
	strategy := types.Strategy{
		Tier:            tier,
		Name:            fixed.name,
		Summary:         fixed.summary,
		MonthsRemaining: months,
	}
	return tier, strategy, nil
}

// monthsBetween returns the number of whole months from a to b, negative when
// b is before a. Partial months round toward zero, so a date one day out is
// zero months away and still classifies as Urgent.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())

	// Back off one month when the day-of-month hasn't been reached yet.
	if months > 0 && b.Day() < a.Day() {
		months--
	}
	if months < 0 && b.Day() > a.Day() {
		months++
	}
	return months
}
