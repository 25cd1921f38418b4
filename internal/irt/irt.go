// Package irt implements the two-parameter logistic (2PL) item response
// theory model: response probability, likelihood, Fisher information, and
// maximum-likelihood ability estimation.
//
// The 2PL model gives the probability of a correct response to an item of
// difficulty b and discrimination a, for a learner of ability theta:
//
//	P(correct | theta, b, a) = 1 / (1 + exp(-a * (theta - b)))
package irt

import "math"

// Probability returns the 2PL probability of a correct response.
// For fixed a > 0 it is strictly increasing in theta and strictly
// decreasing in difficulty.
func Probability(theta, difficulty, discrimination float64) float64 {
	return 1.0 / (1.0 + math.Exp(-discrimination*(theta-difficulty)))
}

// LogLikelihood returns the log-likelihood of the response pattern at theta.
func LogLikelihood(theta float64, responses []Response) float64 {
	ll := 0.0
	for _, r := range responses {
		r, _ = Sanitize(r)
		p := Probability(theta, r.Difficulty, r.Discrimination)
		if r.Correct {
			ll += math.Log(p)
		} else {
			ll += math.Log(1 - p)
		}
	}
	return ll
}

// ItemInformation returns the Fisher information a single item contributes
// at theta: a^2 * P * (1-P).
func ItemInformation(theta, difficulty, discrimination float64) float64 {
	p := Probability(theta, difficulty, discrimination)
	return discrimination * discrimination * p * (1 - p)
}

// Information returns the total Fisher information of the response set at
// theta. The standard error of an ability estimate is 1/sqrt(Information).
func Information(theta float64, responses []Response) float64 {
	info := 0.0
	for _, r := range responses {
		r, _ = Sanitize(r)
		info += ItemInformation(theta, r.Difficulty, r.Discrimination)
	}
	return info
}
