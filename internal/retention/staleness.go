// Package retention decides when previously mastered skills should be
// re-probed, folds probe results back into mastery records, and reports
// checkpoint metrics on retention over time.
package retention

import (
	"math"
	"time"
)

const (
	// freshDays is the grace period after practice during which a skill
	// is considered fully fresh.
	freshDays = 7

	// staleDays is the age at which a skill is considered fully stale.
	staleDays = 90
)

// Staleness maps time since last practice onto [0, 1]. Skills practiced
// within the last week score exactly 0 and skills untouched for 90 days or
// more score exactly 1; between those the curve rises sublinearly, so the
// first weeks of neglect matter more than the last. A zero lastPracticed
// means the skill was never practiced and scores 1.
func Staleness(lastPracticed, now time.Time) float64 {
	if lastPracticed.IsZero() {
		return 1
	}
	days := now.Sub(lastPracticed).Hours() / 24
	if days <= freshDays {
		return 0
	}
	if days >= staleDays {
		return 1
	}
	return math.Pow((days-freshDays)/(staleDays-freshDays), 0.7)
}
