package irt

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestProbability_Midpoint(t *testing.T) {
	// At theta == difficulty the 2PL probability is exactly 0.5.
	p := Probability(0.7, 0.7, 1.3)
	if !almostEqual(p, 0.5) {
		t.Errorf("Probability = %f, want 0.5", p)
	}
}

func TestProbability_IncreasingInTheta(t *testing.T) {
	prev := 0.0
	for theta := -4.0; theta <= 4.0; theta += 0.25 {
		p := Probability(theta, 0.5, 1.2)
		if p <= prev {
			t.Fatalf("Probability not strictly increasing at theta=%f: %f <= %f", theta, p, prev)
		}
		prev = p
	}
}

func TestProbability_DecreasingInDifficulty(t *testing.T) {
	prev := 1.0
	for b := -3.0; b <= 3.0; b += 0.25 {
		p := Probability(0.0, b, 1.0)
		if p >= prev {
			t.Fatalf("Probability not strictly decreasing at difficulty=%f: %f >= %f", b, p, prev)
		}
		prev = p
	}
}

func TestItemInformation_PeaksAtDifficulty(t *testing.T) {
	atMatch := ItemInformation(1.0, 1.0, 1.5)
	above := ItemInformation(1.0, 2.5, 1.5)
	below := ItemInformation(1.0, -0.5, 1.5)
	if atMatch <= above || atMatch <= below {
		t.Errorf("information should peak where difficulty matches theta: at=%f above=%f below=%f",
			atMatch, above, below)
	}
}

func TestSanitize_InvalidParameters(t *testing.T) {
	r, fixed := Sanitize(Response{Difficulty: math.NaN(), Discrimination: -2})
	if !fixed {
		t.Error("expected substitution for NaN difficulty and negative discrimination")
	}
	if r.Difficulty != DefaultDifficulty || r.Discrimination != DefaultDiscrimination {
		t.Errorf("got (%f, %f), want defaults (%f, %f)",
			r.Difficulty, r.Discrimination, DefaultDifficulty, DefaultDiscrimination)
	}

	r, fixed = Sanitize(Response{Difficulty: 0.5, Discrimination: 1.1})
	if fixed {
		t.Error("valid parameters must pass through unchanged")
	}
	if r.Difficulty != 0.5 || r.Discrimination != 1.1 {
		t.Errorf("valid parameters mutated: got (%f, %f)", r.Difficulty, r.Discrimination)
	}
}

func TestEstimateAbility_Empty(t *testing.T) {
	est := EstimateAbility(nil, Options{InitialTheta: 0.4})
	if !almostEqual(est.Theta, 0.4) {
		t.Errorf("Theta = %f, want initial 0.4", est.Theta)
	}
	if est.StandardError != MaxStandardError {
		t.Errorf("StandardError = %f, want %f", est.StandardError, MaxStandardError)
	}
}

func TestEstimateAbility_AllCorrectClamps(t *testing.T) {
	var responses []Response
	for i := 0; i < 10; i++ {
		responses = append(responses, Response{Difficulty: 0, Discrimination: 1.0, Correct: true})
	}
	est := EstimateAbility(responses, Options{})
	if est.Theta > MaxAbility || math.IsInf(est.Theta, 0) || math.IsNaN(est.Theta) {
		t.Errorf("Theta = %f, must be clamped to [%f, %f]", est.Theta, -MaxAbility, MaxAbility)
	}
	if est.StandardError <= 0 {
		t.Errorf("StandardError = %f, want > 0", est.StandardError)
	}
	// No wrong answers means the estimate is weakly identified.
	if est.StandardError < 0.5 {
		t.Errorf("StandardError = %f, expected a large value for a degenerate history", est.StandardError)
	}
}

func TestEstimateAbility_InvalidParametersSubstituted(t *testing.T) {
	responses := []Response{
		{Difficulty: math.NaN(), Discrimination: 1.0, Correct: true},
		{Difficulty: 0.5, Discrimination: math.Inf(1), Correct: false},
		{Difficulty: -0.5, Discrimination: 1.2, Correct: true},
	}
	est := EstimateAbility(responses, Options{})
	if math.IsNaN(est.Theta) || math.IsNaN(est.StandardError) {
		t.Fatalf("NaN leaked through estimation: theta=%f se=%f", est.Theta, est.StandardError)
	}
	if est.Substituted != 2 {
		t.Errorf("Substituted = %d, want 2", est.Substituted)
	}
}

func TestEstimateAbility_SEShrinksWithEvidence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	trueTheta := 0.5

	var responses []Response
	prevSE := math.Inf(1)
	for i := 0; i < 30; i++ {
		difficulty := trueTheta + rng.Float64()*1.2 - 0.6
		p := Probability(trueTheta, difficulty, 1.3)
		responses = append(responses, Response{
			Difficulty:     difficulty,
			Discrimination: 1.3,
			Correct:        rng.Float64() < p,
		})
		if (i+1)%10 == 0 {
			est := EstimateAbility(responses, Options{})
			if est.StandardError > prevSE+0.05 {
				t.Errorf("after %d responses SE = %f, expected non-increasing (prev %f)",
					i+1, est.StandardError, prevSE)
			}
			prevSE = est.StandardError
		}
	}
}

// TestEstimateAbility_Recovery simulates examinees answering adaptively
// selected 2PL items, estimated the way a session estimates: MAP with a
// normal prior for the first ten responses, pure MLE after. With 30
// responses per run, the estimate should fall within one standard error
// of the true ability in at least 68% of runs, and within 1.0 in
// essentially all runs.
func TestEstimateAbility_Recovery(t *testing.T) {
	const runs = 200
	const mapLimit = 10
	prior := Prior{Mean: 0, SD: 1.25}
	trueTheta := 1.0

	withinSE := 0
	for seed := 0; seed < runs; seed++ {
		rng := rand.New(rand.NewSource(int64(seed)))

		var responses []Response
		theta := 0.0
		for i := 0; i < 30; i++ {
			// Adaptive: administer near the running estimate.
			difficulty := clamp(theta+rng.Float64()*0.6-0.3, -3, 3)
			discrimination := 1.0 + rng.Float64()
			p := Probability(trueTheta, difficulty, discrimination)
			responses = append(responses, Response{
				Difficulty:     difficulty,
				Discrimination: discrimination,
				Correct:        rng.Float64() < p,
			})
			// The prior anchors the estimate while the history is short;
			// without it the early MLE swings to the clamp and drags item
			// selection with it.
			if len(responses) <= mapLimit {
				theta = EstimateAbilityMAP(responses, prior, Options{InitialTheta: theta}).Theta
			} else {
				theta = EstimateAbility(responses, Options{InitialTheta: theta}).Theta
			}
		}

		est := EstimateAbility(responses, Options{InitialTheta: theta})
		errAbs := math.Abs(est.Theta - trueTheta)
		if errAbs <= est.StandardError {
			withinSE++
		}
		if errAbs > 1.0 {
			t.Errorf("seed %d: estimate %f too far from true ability %f (se=%f)",
				seed, est.Theta, trueTheta, est.StandardError)
		}
	}

	if coverage := float64(withinSE) / runs; coverage < 0.68 {
		t.Errorf("only %.0f%% of runs within one SE of true ability, want >= 68%%", coverage*100)
	}
}

func TestEstimateAbilityMAP_PullsTowardPrior(t *testing.T) {
	responses := []Response{
		{Difficulty: 0, Discrimination: 1.0, Correct: true},
		{Difficulty: 0.5, Discrimination: 1.0, Correct: true},
	}
	mle := EstimateAbility(responses, Options{})
	mapEst := EstimateAbilityMAP(responses, Prior{Mean: 0, SD: 1.0}, Options{})

	if mapEst.Theta >= mle.Theta {
		t.Errorf("MAP estimate %f should sit below the MLE %f with a zero-mean prior",
			mapEst.Theta, mle.Theta)
	}
	if mapEst.StandardError >= mle.StandardError {
		t.Errorf("prior information should narrow the SE: map=%f mle=%f",
			mapEst.StandardError, mle.StandardError)
	}
}

func TestThetaToPercentile(t *testing.T) {
	cases := []struct {
		theta float64
		want  int
	}{
		{0, 50},
		{-4, 0},
		{4, 100},
	}
	for _, c := range cases {
		if got := ThetaToPercentile(c.theta); got != c.want {
			t.Errorf("ThetaToPercentile(%f) = %d, want %d", c.theta, got, c.want)
		}
	}

	// Monotone over the reporting range.
	prev := -1
	for theta := -4.0; theta <= 4.0; theta += 0.5 {
		p := ThetaToPercentile(theta)
		if p < prev {
			t.Errorf("percentile decreased at theta=%f: %d < %d", theta, p, prev)
		}
		prev = p
	}
}

func TestLogLikelihood_PeaksNearTrueAbility(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	trueTheta := -0.5

	var responses []Response
	for i := 0; i < 40; i++ {
		difficulty := rng.Float64()*4 - 2
		p := Probability(trueTheta, difficulty, 1.5)
		responses = append(responses, Response{
			Difficulty:     difficulty,
			Discrimination: 1.5,
			Correct:        rng.Float64() < p,
		})
	}

	best, bestLL := 0.0, math.Inf(-1)
	for theta := -3.0; theta <= 3.0; theta += 0.1 {
		if ll := LogLikelihood(theta, responses); ll > bestLL {
			best, bestLL = theta, ll
		}
	}
	if math.Abs(best-trueTheta) > 0.75 {
		t.Errorf("likelihood peak at %f, want near %f", best, trueTheta)
	}
}
