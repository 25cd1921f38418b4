package irt

import "math"

const (
	// DefaultDifficulty substitutes for a missing or invalid item difficulty.
	DefaultDifficulty = 0.0

	// DefaultDiscrimination substitutes for a missing or invalid discrimination.
	DefaultDiscrimination = 1.0
)

// Response is a single scored attempt at a calibrated item.
// Immutable once recorded.
type Response struct {
	ItemID              string  `json:"item_id"`
	SkillID             string  `json:"skill_id"`
	Difficulty          float64 `json:"difficulty"`
	Discrimination      float64 `json:"discrimination"`
	Correct             bool    `json:"correct"`
	ResponseTimeSeconds float64 `json:"response_time_seconds"`
}

// Sanitize returns a copy of r safe for estimation, substituting catalog
// defaults for missing or non-finite item parameters. The second return
// reports whether any substitution occurred. A single bad item must not
// break a session, so invalid parameters are repaired here rather than
// propagated as NaN.
func Sanitize(r Response) (Response, bool) {
	substituted := false
	if math.IsNaN(r.Difficulty) || math.IsInf(r.Difficulty, 0) {
		r.Difficulty = DefaultDifficulty
		substituted = true
	}
	if math.IsNaN(r.Discrimination) || math.IsInf(r.Discrimination, 0) || r.Discrimination <= 0 {
		r.Discrimination = DefaultDiscrimination
		substituted = true
	}
	return r, substituted
}
