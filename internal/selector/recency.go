package selector

import "math"

// RecencyPenalty returns a score penalty for re-testing a skill soon after
// it was last administered. tested is the skill IDs already administered,
// in order. The penalty decays exponentially from 50: a skill tested one
// question ago scores 50, two ago 25, and so on. Never-tested skills score 0.
func RecencyPenalty(skillID string, tested []string) float64 {
	mostRecent := -1
	for i, id := range tested {
		if id == skillID {
			mostRecent = i
		}
	}
	if mostRecent < 0 {
		return 0
	}
	questionsSince := len(tested) - mostRecent
	return 50 * math.Pow(0.5, float64(questionsSince-1))
}
