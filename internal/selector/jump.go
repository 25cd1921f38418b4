package selector

import "math"

// Difficulty targets stay within the calibrated item range.
const (
	MinTargetDifficulty = -3.0
	MaxTargetDifficulty = 3.0
)

// JumpSize returns the signed difficulty adjustment applied after a
// response. Jumps start large and dampen as confidence grows (lower
// standard error) and as the session progresses, so early responses move
// the target quickly while late ones fine-tune.
//
// Correct answers jump up from a base of +1.5, never less than +0.3.
// Incorrect answers step down from a base of -0.7, never shallower than
// -0.2; a miss late in the session with a tight estimate is more likely a
// careless error than new information.
func JumpSize(correct bool, questionNumber int, standardError float64) float64 {
	confidenceDampen := math.Max(standardError, 0.3)
	timeDampen := math.Pow(0.9, float64(questionNumber-1))

	if correct {
		jump := 1.5 * confidenceDampen * timeDampen
		return math.Max(0.3, math.Min(jump, 1.5))
	}
	step := -0.7 * confidenceDampen * timeDampen
	return math.Max(-0.7, math.Min(step, -0.2))
}

// TargetTheta returns the next target difficulty: the current ability
// estimate plus the post-response jump, clamped to the calibrated range.
func TargetTheta(theta float64, correct bool, questionNumber int, standardError float64) float64 {
	target := theta + JumpSize(correct, questionNumber, standardError)
	return math.Max(MinTargetDifficulty, math.Min(target, MaxTargetDifficulty))
}
